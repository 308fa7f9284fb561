package docstash

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/n2code/docstash/internal/location"
	"github.com/n2code/docstash/internal/output"
)

const schemeSuffix = ":" + string(filepath.Separator) + string(filepath.Separator)

func rootScheme(kind location.Kind) string {
	return kind.String() + schemeSuffix
}

func (s *stash) DisplayPath(absolute string) string {
	root := s.resolver.ActiveRoot()
	rootPath, ok := root.Path()
	if !ok {
		return filepath.Clean(absolute)
	}
	wd, err := os.Getwd()
	if err != nil {
		wd = string(filepath.Separator) //treat as far outside of any root
	}
	scheme := rootScheme(root.Kind())
	pleasant := pleasantPath(filepath.Clean(absolute), rootPath, scheme, wd)
	if s.fancy && strings.HasPrefix(pleasant, scheme) {
		pleasant = strings.Replace(pleasant, scheme, output.TerminalFormatAsDim(scheme), 1)
	}
	return pleasant
}

const dot string = "."
const dirSeparator = string(filepath.Separator)
const dotDirSeparator = dot + dirSeparator
const doubleDot = dot + dot
const doubleDotDirSeparator = doubleDot + dirSeparator

func isChildOf(child string, parent string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return !(rel == dot || rel == doubleDot || strings.HasPrefix(rel, doubleDotDirSeparator))
}

func isInside(path string, dir string) bool {
	return path == dir || isChildOf(path, dir)
}

// pleasantPath turns an absolute path into something easily understandable from the current context.
// If the working directory is inside the root a relative path is emitted, with leading "./" to stress relativity.
// If the working directory is outside the root an anchored path is printed and the root is abbreviated by its scheme.
// Targets outside of the root are reflected unchanged.
func pleasantPath(absolute string, root string, scheme string, wd string) string {
	if !isInside(absolute, root) {
		return absolute
	}
	if !isInside(wd, root) {
		anchored, _ := filepath.Rel(root, absolute) //error impossible because both are rooted
		if anchored == dot {
			anchored = ""
		}
		return scheme + anchored
	}

	relative, _ := filepath.Rel(wd, absolute) //error impossible because both are rooted
	if relative == dot || strings.HasPrefix(relative, doubleDotDirSeparator) || relative == doubleDot {
		return relative
	}
	return dotDirSeparator + relative
}
