// Package catalog enumerates the documents below the active root and hands out unused names.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBadPattern = errors.New("invalid match pattern")
var ErrUnknownOrder = errors.New("unknown sort order")

func (o SortOrder) String() string {
	switch o {
	case ByName:
		return "name"
	case ByModificationTimeDescending:
		return "modified"
	default:
		return fmt.Sprintf("SortOrder(%d)", int(o))
	}
}

// ParseSortOrder accepts the names produced by SortOrder.String, ignoring case.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(s) {
	case "name":
		return ByName, nil
	case "modified", "mtime":
		return ByModificationTimeDescending, nil
	}
	return ByName, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}
