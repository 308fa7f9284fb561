package location

import "os"

// Signal reports whether a cloud identity/session is currently active.
// It is queried on every resolution, implementations must not block for long.
type Signal interface {
	CloudAvailable() bool
}

// StaticSignal is a fixed answer, e.g. from a command line override.
type StaticSignal bool

func (s StaticSignal) CloudAvailable() bool {
	return bool(s)
}

// SignalFunc adapts a plain function supplied by the host environment.
type SignalFunc func() bool

func (f SignalFunc) CloudAvailable() bool {
	return f()
}

// FileSignal is up while an identity token file exists at the given path.
// An empty path never signals availability.
type FileSignal string

func (f FileSignal) CloudAvailable() bool {
	if f == "" {
		return false
	}
	_, err := os.Stat(string(f))
	return err == nil
}
