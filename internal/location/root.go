// Package location decides which directory currently holds the documents and derives file paths from it.
package location

import "fmt"

// Kind discriminates the possible outcomes of a root resolution.
type Kind int

const (
	Unavailable Kind = iota
	Local
	Cloud
)

func (k Kind) String() string {
	switch k {
	case Local:
		return "local"
	case Cloud:
		return "cloud"
	default:
		return "unavailable"
	}
}

// Root is the result of a resolution: Local(path), Cloud(path) or Unavailable.
// The zero value is an unavailable root.
type Root struct {
	kind   Kind
	wanted Kind //side that was selected by the signal, also set if unavailable
	path   string
}

func LocalRoot(path string) Root {
	return Root{kind: Local, wanted: Local, path: path}
}

func CloudRoot(path string) Root {
	return Root{kind: Cloud, wanted: Cloud, path: path}
}

// NoRoot represents the case that the selected side cannot provide a directory.
func NoRoot(wanted Kind) Root {
	return Root{kind: Unavailable, wanted: wanted}
}

func (r Root) Kind() Kind {
	return r.kind
}

// Wanted tells which side the availability signal selected, regardless of the outcome.
func (r Root) Wanted() Kind {
	return r.wanted
}

func (r Root) Available() bool {
	return r.kind != Unavailable
}

// Path yields the directory, ok is false for an unavailable root.
func (r Root) Path() (path string, ok bool) {
	return r.path, r.Available()
}

func (r Root) String() string {
	if !r.Available() {
		return fmt.Sprintf("%s (%s requested)", r.kind, r.wanted)
	}
	return fmt.Sprintf("%s:%s", r.kind, r.path)
}
