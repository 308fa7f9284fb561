package catalog

import (
	"github.com/n2code/docstash/internal/document"
)

// Allocator proposes names not yet used in the catalog.
// It only reads: two processes may still race for the same name.
type Allocator struct {
	catalog *Catalog
}

func NewAllocator(catalog *Catalog) *Allocator {
	return &Allocator{catalog: catalog}
}

// IsAvailable is false for invalid names and names taken case-insensitively,
// also by a sub-directory that would collide with the document path.
func (a *Allocator) IsAvailable(name document.Name) bool {
	if name.Validate() != nil {
		return false
	}
	_, taken := a.snapshot()[name.Key()]
	return !taken
}

// AvailableName tries proposed, then "proposed 1", "proposed 2" and so on.
// All candidates are checked against one single listing.
func (a *Allocator) AvailableName(proposed document.Name) (document.Name, error) {
	if err := proposed.Validate(); err != nil {
		return "", err
	}
	taken := a.snapshot()
	candidate := proposed
	for counter := 1; ; counter++ {
		if _, exists := taken[candidate.Key()]; !exists {
			return candidate, nil
		}
		candidate = proposed.WithCounter(counter)
	}
}

func (a *Allocator) snapshot() map[string]struct{} {
	entries := a.catalog.scan(true)
	taken := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		taken[e.Name.Key()] = struct{}{}
	}
	return taken
}
