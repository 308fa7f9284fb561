package location

import (
	"os"
	"path/filepath"

	"github.com/n2code/docstash/internal/document"
)

// Purpose selects the base directory of a built path.
type Purpose int

const (
	Persistent Purpose = iota //active root, follows the cloud/local switch
	Cache                     //fixed temporary directory for transient artifacts
)

// RootSource is anything able to resolve the active root, usually a *Resolver.
type RootSource interface {
	ActiveRoot() Root
}

// Builder derives document paths, it never touches the filesystem.
type Builder struct {
	roots     RootSource
	cacheDir  string
	extension document.Extension
}

// NewBuilder uses os.TempDir() if cacheDir is empty.
func NewBuilder(roots RootSource, cacheDir string, extension document.Extension) *Builder {
	if cacheDir == "" {
		cacheDir = os.TempDir()
	}
	return &Builder{roots: roots, cacheDir: cacheDir, extension: extension}
}

// Path builds <base>/<name>.<ext>. It fails for invalid names and, for persistent paths,
// if no root is active.
func (b *Builder) Path(name document.Name, purpose Purpose) (string, bool) {
	if name.Validate() != nil {
		return "", false
	}
	var base string
	switch purpose {
	case Cache:
		base = b.cacheDir
	default:
		root, ok := b.roots.ActiveRoot().Path()
		if !ok {
			return "", false
		}
		base = root
	}
	return filepath.Join(base, b.extension.FileName(name)), true
}

func (b *Builder) PersistentPath(name document.Name) (string, bool) {
	return b.Path(name, Persistent)
}

func (b *Builder) CachePath(name document.Name) (string, bool) {
	return b.Path(name, Cache)
}

func (b *Builder) CacheDir() string {
	return b.cacheDir
}
