// Package docstash locates, lists and names the documents of a single folder that lives either locally or in a synced cloud container.
package docstash

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/n2code/docstash/internal/catalog"
	"github.com/n2code/docstash/internal/document"
	"github.com/n2code/docstash/internal/location"
	"github.com/n2code/docstash/internal/metadata"
)

// CreateConfig holds the start-up settings of a Stash.
// The zero value is a sensible default.
type CreateConfig struct {
	Extension     string      //managed file extension, "txt" if empty, a leading dot is tolerated
	CacheDir      string      //base of CachePath, system temp dir if empty
	Logger        *zap.Logger //receives debug output about degraded filesystem access, discarded if nil
	FancyTerminal bool        //allows escape sequences in DisplayPath
}

// New checks the start-up preconditions and returns a ready Stash.
// Neither directory needs to exist: a missing folder simply lists as empty.
func New(signal Signal, dirs Directories, config CreateConfig) (Stash, error) {
	extension := document.DefaultExtension
	if config.Extension != "" {
		ext, err := document.ParseExtension(config.Extension)
		if err != nil {
			return nil, newInitError("unusable extension", err)
		}
		extension = ext
	}
	resolver, err := location.NewResolver(signal, dirs)
	if err != nil {
		return nil, newInitError("location setup failed", err)
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	builder := location.NewBuilder(resolver, config.CacheDir, extension)
	docs := catalog.New(resolver, extension, logger.Named("catalog"))
	s := &stash{
		resolver:  resolver,
		paths:     builder,
		catalog:   docs,
		allocator: catalog.NewAllocator(docs),
		metadata:  metadata.NewReader(builder, logger.Named("metadata")),
		log:       logger,
		fancy:     config.FancyTerminal,
	}
	logger.Debug("stash ready", zap.String("extension", string(extension)), zap.String("cache", builder.CacheDir()))
	return s, nil
}

type stash struct {
	resolver  *location.Resolver
	paths     *location.Builder
	catalog   *catalog.Catalog
	allocator *catalog.Allocator
	metadata  *metadata.Reader
	log       *zap.Logger
	fancy     bool
}

func (s *stash) ActiveRoot() Root {
	return s.resolver.ActiveRoot()
}

func (s *stash) ActiveRootAvailable() bool {
	return s.resolver.ActiveRoot().Available()
}

func (s *stash) PersistentPath(name string) (string, bool) {
	return s.paths.PersistentPath(document.Name(name))
}

func (s *stash) CachePath(name string) (string, bool) {
	return s.paths.CachePath(document.Name(name))
}

func (s *stash) List(order SortOrder) []string {
	return s.catalog.List(order)
}

func (s *stash) Entries(order SortOrder) []Entry {
	return s.catalog.Scan(order)
}

func (s *stash) ListMatching(order SortOrder, pattern string) ([]string, error) {
	return s.catalog.ListMatching(order, pattern)
}

func (s *stash) IsNameAvailable(name string) bool {
	return s.allocator.IsAvailable(document.Name(name))
}

func (s *stash) AvailableName(proposed string) (string, error) {
	name, err := s.allocator.AvailableName(document.Name(proposed))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidName, err)
	}
	return name.String(), nil
}

func (s *stash) CreationDate(name string) (time.Time, bool) {
	return s.metadata.Created(document.Name(name))
}

func (s *stash) ModificationDate(name string) (time.Time, bool) {
	return s.metadata.Modified(document.Name(name))
}

func (s *stash) Size(name string) (int64, bool) {
	return s.metadata.Size(document.Name(name))
}

func (s *stash) ContentType(name string) (string, bool) {
	return s.metadata.ContentType(document.Name(name))
}
