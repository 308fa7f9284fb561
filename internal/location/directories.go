package location

import "os"

// Directories hands out the externally obtained directory handles.
// Both may be unavailable, the resolver never creates them.
type Directories interface {
	LocalDocuments() (path string, ok bool)
	// CloudContainer is the root of the sync container, documents live in its CloudDocumentsDir.
	CloudContainer() (path string, ok bool)
}

// StaticDirectories serves configured paths, an empty path is unavailable.
// With RequireExisting a configured path only counts if it is an existing directory,
// which is how an unmounted or not yet set up sync container is detected.
type StaticDirectories struct {
	Local           string
	Container       string
	RequireExisting bool
}

func (d StaticDirectories) LocalDocuments() (string, bool) {
	return d.lookup(d.Local)
}

func (d StaticDirectories) CloudContainer() (string, bool) {
	return d.lookup(d.Container)
}

func (d StaticDirectories) lookup(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	if d.RequireExisting {
		stat, err := os.Stat(path)
		if err != nil || !stat.IsDir() {
			return "", false
		}
	}
	return path, true
}
