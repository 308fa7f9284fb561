package location

import (
	"errors"
	"path/filepath"
)

// CloudDocumentsDir is the fixed sub-path of the sync container holding the documents.
const CloudDocumentsDir = "Documents"

var (
	ErrNoSignal      = errors.New("no cloud availability signal provided")
	ErrNoDirectories = errors.New("no directory provider given")
)

// Resolver picks the active root per call, nothing is cached.
type Resolver struct {
	signal Signal
	dirs   Directories
}

// NewResolver checks the start-up preconditions so misconfiguration surfaces immediately
// instead of deep inside a later call.
func NewResolver(signal Signal, dirs Directories) (*Resolver, error) {
	if signal == nil {
		return nil, ErrNoSignal
	}
	if dirs == nil {
		return nil, ErrNoDirectories
	}
	return &Resolver{signal: signal, dirs: dirs}, nil
}

// ActiveRoot evaluates the signal and returns exactly one outcome.
func (r *Resolver) ActiveRoot() Root {
	if r.signal.CloudAvailable() {
		container, ok := r.dirs.CloudContainer()
		if !ok {
			return NoRoot(Cloud)
		}
		return CloudRoot(filepath.Join(container, CloudDocumentsDir))
	}
	local, ok := r.dirs.LocalDocuments()
	if !ok {
		return NoRoot(Local)
	}
	return LocalRoot(local)
}
