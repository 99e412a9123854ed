package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yungbote/profile-backend/internal/platform/gcp"
	"github.com/yungbote/profile-backend/internal/platform/logger"
)

type fsStore struct {
	log  *logger.Logger
	root string
}

// NewFileSystemStore creates root (and parents) when missing and returns a
// Store that keeps assets as plain files directly under it.
func NewFileSystemStore(log *logger.Logger, root string) (Store, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("upload dir required")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve upload dir %q: %w", root, err)
	}
	abs = filepath.Clean(abs)
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %q: %w", abs, err)
	}
	storeLog := log.With("service", "FileSystemAssetStore")
	storeLog.Info("Asset store ready", "root", abs)
	return &fsStore{log: storeLog, root: abs}, nil
}

func (s *fsStore) Store(ctx context.Context, r io.Reader, originalName string) (string, error) {
	name, err := GenerateName(originalName)
	if err != nil {
		return "", fmt.Errorf("store %q: %w", originalName, err)
	}
	target := s.Resolve(name)

	f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("open %s: %w: %v", name, ErrStorageIO, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(target)
		return "", fmt.Errorf("write %s: %w: %v", name, ErrStorageIO, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(target)
		return "", fmt.Errorf("close %s: %w: %v", name, ErrStorageIO, err)
	}
	s.log.Debug("Asset stored", "name", name)
	return PublicPath(name), nil
}

func (s *fsStore) Delete(ctx context.Context, path string) DeleteResult {
	name, ok := NameFromPublicPath(path)
	if !ok {
		return DeleteRejected
	}
	target, ok := s.contained(name)
	if !ok {
		s.log.Warn("Refusing to delete asset outside upload root", "path", path)
		return DeleteRejected
	}
	if err := os.Remove(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DeleteNotFound
		}
		s.log.Warn("Failed to delete asset", "path", path, "error", err)
		return DeleteFailed
	}
	return DeleteRemoved
}

func (s *fsStore) Resolve(fileName string) string {
	return filepath.Join(s.root, fileName)
}

func (s *fsStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	name, ok := NameFromPublicPath(path)
	if !ok {
		return nil, fmt.Errorf("open %q: %w", path, ErrNotFound)
	}
	target, ok := s.contained(name)
	if !ok {
		return nil, fmt.Errorf("open %q: %w", path, ErrNotFound)
	}
	f, err := os.Open(target)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("open %q: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("open %q: %w: %v", path, ErrStorageIO, err)
	}
	return f, nil
}

func (s *fsStore) Stat(ctx context.Context, path string) (Info, error) {
	name, ok := NameFromPublicPath(path)
	if !ok {
		return Info{}, fmt.Errorf("stat %q: %w", path, ErrNotFound)
	}
	target, ok := s.contained(name)
	if !ok {
		return Info{}, fmt.Errorf("stat %q: %w", path, ErrNotFound)
	}
	fi, err := os.Stat(target)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Info{}, fmt.Errorf("stat %q: %w", path, ErrNotFound)
		}
		return Info{}, fmt.Errorf("stat %q: %w: %v", path, ErrStorageIO, err)
	}
	if fi.IsDir() {
		return Info{}, fmt.Errorf("stat %q: %w", path, ErrNotFound)
	}
	return Info{Size: fi.Size(), ContentType: gcp.ContentTypeForKey(name)}, nil
}

// Root is the absolute storage directory, used for static serving.
func (s *fsStore) Root() string { return s.root }

// contained resolves name under root and reports whether the result is a
// strict child of root.
func (s *fsStore) contained(name string) (string, bool) {
	target := filepath.Clean(filepath.Join(s.root, name))
	rel, err := filepath.Rel(s.root, target)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return target, true
}

// RootDir returns the directory backing store when it is filesystem based.
func RootDir(store Store) (string, bool) {
	fs, ok := store.(*fsStore)
	if !ok {
		return "", false
	}
	return fs.Root(), true
}
