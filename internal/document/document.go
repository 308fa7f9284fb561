package document

import (
	"fmt"
	"os"
	"strings"
)

// Validate checks that the name can be turned into a file directly below a storage root.
// Names starting with a dot are rejected because hidden files never show up in listings.
func (n Name) Validate() error {
	switch {
	case n == "":
		return ErrEmptyName
	case strings.ContainsRune(string(n), '/') || strings.ContainsRune(string(n), os.PathSeparator):
		return fmt.Errorf("%w: %q", ErrNameHasSeparator, n)
	case strings.HasPrefix(string(n), dot):
		return fmt.Errorf("%w: %q", ErrHiddenName, n)
	}
	return nil
}

// Key is the representation used for case-insensitive uniqueness checks.
func (n Name) Key() string {
	return strings.ToLower(string(n))
}

// WithCounter derives the n-th alternative of a taken name, e.g. "Untitled 2".
func (n Name) WithCounter(counter int) Name {
	return Name(fmt.Sprintf("%s %d", n, counter))
}

func (n Name) String() string {
	return string(n)
}

func (e Extension) Validate() error {
	switch {
	case e == "":
		return ErrEmptyExtension
	case strings.ContainsAny(string(e), "/"+string(os.PathSeparator)) || strings.HasPrefix(string(e), dot):
		return fmt.Errorf("%w: %q", ErrBadExtension, e)
	}
	return nil
}

// Suffix yields the extension including its leading dot.
func (e Extension) Suffix() string {
	return dot + string(e)
}

// Matches reports whether a directory entry name carries the managed extension.
// The bare suffix (".txt") does not count since it is a hidden file without a name.
func (e Extension) Matches(fileName string) bool {
	return len(fileName) > len(e.Suffix()) && strings.HasSuffix(fileName, e.Suffix())
}
