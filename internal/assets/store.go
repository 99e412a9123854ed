// Package assets stores uploaded profile images under generated names and
// addresses them by a public "/uploads/<name>" path.
//
// Names are built as "<uuid>_<sanitized original name>". Sanitization keeps
// only [A-Za-z0-9.-]; everything else becomes "_". A generated name that still
// contains ".." is rejected. Deletes only accept the public prefix and re-check
// that the resolved location stays inside the storage root.
package assets

import (
	"context"
	"errors"
	"io"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// PublicPrefix is the path prefix under which stored assets are addressed.
const PublicPrefix = "/uploads/"

var (
	ErrInvalidName = errors.New("file name contains invalid path sequence")
	ErrStorageIO   = errors.New("asset storage failure")
	ErrNotFound    = errors.New("asset not found")
)

type Store interface {
	Store(ctx context.Context, r io.Reader, originalName string) (string, error)
	Delete(ctx context.Context, path string) DeleteResult
	Resolve(fileName string) string
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Stat(ctx context.Context, path string) (Info, error)
}

// Info describes a stored asset. ContentType is empty when unknown.
type Info struct {
	Size        int64
	ContentType string
}

// DeleteResult reports what a delete actually did. Only DeleteRemoved means a
// file was removed; none of the outcomes is an error for the caller.
type DeleteResult int

const (
	DeleteRemoved DeleteResult = iota
	DeleteNotFound
	DeleteRejected
	DeleteFailed
)

func (r DeleteResult) Removed() bool { return r == DeleteRemoved }

func (r DeleteResult) String() string {
	switch r {
	case DeleteRemoved:
		return "removed"
	case DeleteNotFound:
		return "not_found"
	case DeleteRejected:
		return "rejected"
	case DeleteFailed:
		return "failed"
	default:
		return "unknown"
	}
}

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// SanitizeName replaces every character outside [A-Za-z0-9.-] with "_".
func SanitizeName(originalName string) string {
	return unsafeNameChars.ReplaceAllString(originalName, "_")
}

// GenerateName returns "<uuid>_<sanitized name>" or ErrInvalidName.
func GenerateName(originalName string) (string, error) {
	name := uuid.NewString() + "_" + SanitizeName(originalName)
	if strings.Contains(name, "..") {
		return "", ErrInvalidName
	}
	return name, nil
}

// PublicPath maps a generated name to its public path.
func PublicPath(name string) string {
	return PublicPrefix + name
}

// NameFromPublicPath strips PublicPrefix; ok is false for anything else.
func NameFromPublicPath(path string) (string, bool) {
	if !strings.HasPrefix(path, PublicPrefix) {
		return "", false
	}
	return strings.TrimPrefix(path, PublicPrefix), true
}
