package catalog

import (
	"time"

	"github.com/n2code/docstash/internal/document"
)

type SortOrder int

const (
	ByName SortOrder = iota
	ByModificationTimeDescending
)

// Entry is one document found by a scan. It is a snapshot and never cached.
type Entry struct {
	FileName    string
	Name        document.Name
	Modified    time.Time
	HasModified bool //false if the modification time could not be read
	Size        int64
}
