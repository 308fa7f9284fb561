// Package metadata reads file attributes of stored documents.
// Every accessor reports absence instead of inventing a zero value.
package metadata

import (
	"io/fs"
	"os"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/n2code/docstash/internal/document"
)

// PathSource resolves the persistent path of a document, usually a *location.Builder.
type PathSource interface {
	PersistentPath(name document.Name) (string, bool)
}

type Reader struct {
	paths PathSource
	log   *zap.Logger
}

func NewReader(paths PathSource, logger *zap.Logger) *Reader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reader{paths: paths, log: logger}
}

// Created is the birth time recorded by the filesystem.
// It is absent where the platform or filesystem does not track it, the modification time is never substituted.
func (r *Reader) Created(name document.Name) (time.Time, bool) {
	path, _, ok := r.regularFile(name)
	if !ok {
		return time.Time{}, false
	}
	created, ok := birthTime(path)
	if !ok {
		r.log.Debug("creation time not recorded", zap.String("path", path))
	}
	return created, ok
}

func (r *Reader) Modified(name document.Name) (time.Time, bool) {
	_, info, ok := r.regularFile(name)
	if !ok {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func (r *Reader) Size(name document.Name) (int64, bool) {
	_, info, ok := r.regularFile(name)
	if !ok {
		return 0, false
	}
	return info.Size(), true
}

// ContentType sniffs the MIME type from the leading bytes of the document.
func (r *Reader) ContentType(name document.Name) (string, bool) {
	path, _, ok := r.regularFile(name)
	if !ok {
		return "", false
	}
	detected, err := mimetype.DetectFile(path)
	if err != nil {
		r.log.Debug("content type detection failed", zap.String("path", path), zap.Error(err))
		return "", false
	}
	return detected.String(), true
}

func (r *Reader) regularFile(name document.Name) (path string, info fs.FileInfo, ok bool) {
	path, ok = r.paths.PersistentPath(name)
	if !ok {
		return "", nil, false
	}
	info, err := os.Stat(path)
	if err != nil {
		r.log.Debug("document attributes unreadable", zap.String("path", path), zap.Error(err))
		return "", nil, false
	}
	if !info.Mode().IsRegular() {
		return "", nil, false
	}
	return path, info, true
}
