package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"github.com/n2code/docstash/internal/document"
	"github.com/n2code/docstash/internal/location"
)

// Catalog lists the managed documents of whatever root is active at call time.
// Access failures never surface as errors, they degrade to an empty listing.
type Catalog struct {
	roots     location.RootSource
	extension document.Extension
	log       *zap.Logger
	stat      func(path string) (fs.FileInfo, error)
}

func New(roots location.RootSource, extension document.Extension, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{roots: roots, extension: extension, log: logger, stat: os.Stat}
}

// Scan reads the root directory non-recursively.
// Hidden entries, sub-directories and files without the managed extension are skipped.
func (c *Catalog) Scan(order SortOrder) []Entry {
	entries := c.scan(false)
	sortEntries(entries, order)
	return entries
}

// scan returns entries in directory order. With occupants set, sub-directories carrying the
// extension are kept since they block the document path of their name all the same.
func (c *Catalog) scan(occupants bool) []Entry {
	root := c.roots.ActiveRoot()
	rootPath, ok := root.Path()
	if !ok {
		c.log.Debug("no active root, catalog is empty", zap.Stringer("root", root))
		return []Entry{}
	}
	dirEntries, err := os.ReadDir(rootPath)
	if err != nil {
		c.log.Debug("reading root failed, catalog is empty", zap.String("root", rootPath), zap.Error(err))
		return []Entry{}
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		fileName := d.Name()
		if strings.HasPrefix(fileName, ".") || !c.extension.Matches(fileName) {
			continue
		}
		entry := Entry{FileName: fileName, Name: c.extension.NameOf(fileName)}
		isDir := d.IsDir()
		info, err := c.stat(filepath.Join(rootPath, fileName))
		if err != nil {
			c.log.Debug("modification time unknown", zap.String("file", fileName), zap.Error(err))
		} else {
			isDir = info.IsDir()
			entry.Modified = info.ModTime()
			entry.HasModified = true
			entry.Size = info.Size()
		}
		if isDir && !occupants {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

func sortEntries(entries []Entry, order SortOrder) {
	switch order {
	case ByModificationTimeDescending:
		sort.SliceStable(entries, func(i, j int) bool {
			a, b := entries[i], entries[j]
			if a.HasModified != b.HasModified {
				return !a.HasModified //unknown first
			}
			return a.Modified.After(b.Modified)
		})
	default:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].FileName < entries[j].FileName
		})
	}
}

// List yields the file names (with extension) of Scan.
func (c *Catalog) List(order SortOrder) []string {
	return fileNames(c.Scan(order))
}

// ListMatching narrows List down to file names matching a doublestar glob, e.g. "Note*".
func (c *Catalog) ListMatching(order SortOrder, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %q", ErrBadPattern, pattern)
	}
	matching := make([]string, 0)
	for _, name := range c.List(order) {
		if ok, _ := doublestar.Match(pattern, name); ok {
			matching = append(matching, name)
		}
	}
	return matching, nil
}

func fileNames(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.FileName
	}
	return names
}
