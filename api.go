package docstash

import (
	"time"

	"github.com/n2code/docstash/internal/catalog"
	"github.com/n2code/docstash/internal/location"
)

// Stash gives access to the documents folder of the currently active location, see New.
// Every call resolves the location anew, so switching between cloud and local storage takes effect immediately.
// All names are given without extension.
type Stash interface {

	// ActiveRoot reports which directory currently holds the documents, or why there is none.
	ActiveRoot() Root

	// ActiveRootAvailable is a shortcut for ActiveRoot().Available().
	ActiveRootAvailable() bool

	// PersistentPath yields the absolute path of a document below the active root.
	// It fails for invalid names or if no root is available. The file does not have to exist.
	PersistentPath(name string) (path string, ok bool)

	// CachePath yields a path below the cache directory, regardless of the active root.
	CachePath(name string) (path string, ok bool)

	// List returns the file names (with extension) of all documents in the requested order.
	// Any failure to read the folder yields an empty list.
	List(order SortOrder) []string

	// Entries is List with the modification time and size read during the same scan.
	Entries(order SortOrder) []Entry

	// ListMatching works like List but only keeps file names matching a glob pattern such as "Note*".
	// The only error is a malformed pattern.
	ListMatching(order SortOrder, pattern string) ([]string, error)

	// IsNameAvailable reports whether no document of the given name exists, ignoring case.
	// Invalid names are never available.
	IsNameAvailable(name string) bool

	// AvailableName returns the proposed name if unused, otherwise the first free "<proposed> <n>" with n counting from 1.
	// Another process may still claim the name before it is used.
	AvailableName(proposed string) (string, error)

	// CreationDate is absent if the document is missing or the filesystem does not record birth times.
	CreationDate(name string) (time.Time, bool)

	ModificationDate(name string) (time.Time, bool)

	// Size in bytes.
	Size(name string) (int64, bool)

	// ContentType is the detected MIME type of the document content, e.g. "text/plain; charset=utf-8".
	ContentType(name string) (string, bool)

	// DisplayPath shortens an absolute path for humans: relative to the working directory if that is inside the active root,
	// otherwise anchored at the root using the "local://" or "cloud://" scheme. Paths elsewhere are returned unchanged.
	DisplayPath(absolute string) string
}

type (
	Root              = location.Root
	RootKind          = location.Kind
	Signal            = location.Signal
	StaticSignal      = location.StaticSignal
	SignalFunc        = location.SignalFunc
	FileSignal        = location.FileSignal
	Directories       = location.Directories
	StaticDirectories = location.StaticDirectories
	SortOrder         = catalog.SortOrder
	Entry             = catalog.Entry
)

const (
	Unavailable = location.Unavailable
	Local       = location.Local
	Cloud       = location.Cloud
)

const (
	ByName                       = catalog.ByName
	ByModificationTimeDescending = catalog.ByModificationTimeDescending
)

var ErrBadPattern = catalog.ErrBadPattern
