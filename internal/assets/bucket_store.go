package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/yungbote/profile-backend/internal/platform/dbctx"
	"github.com/yungbote/profile-backend/internal/platform/gcp"
	"github.com/yungbote/profile-backend/internal/platform/logger"
)

const bucketKeyPrefix = "uploads"

type bucketStore struct {
	log    *logger.Logger
	bucket gcp.BucketService
}

// NewBucketStore keeps assets as objects under "uploads/" in the configured bucket.
// Public paths are identical to the filesystem store.
func NewBucketStore(log *logger.Logger, bucket gcp.BucketService) (Store, error) {
	if bucket == nil {
		return nil, fmt.Errorf("bucket service required")
	}
	return &bucketStore{log: log.With("service", "BucketAssetStore"), bucket: bucket}, nil
}

func (s *bucketStore) Store(ctx context.Context, r io.Reader, originalName string) (string, error) {
	name, err := GenerateName(originalName)
	if err != nil {
		return "", fmt.Errorf("store %q: %w", originalName, err)
	}
	if err := s.bucket.UploadFile(dbctx.Context{Ctx: ctx}, s.Resolve(name), r); err != nil {
		return "", fmt.Errorf("upload %s: %w: %v", name, ErrStorageIO, err)
	}
	return PublicPath(name), nil
}

func (s *bucketStore) Delete(ctx context.Context, p string) DeleteResult {
	key, ok := s.keyFor(p)
	if !ok {
		return DeleteRejected
	}
	if err := s.bucket.DeleteFile(dbctx.Context{Ctx: ctx}, key); err != nil {
		if errors.Is(err, gcp.ErrObjectNotFound) {
			return DeleteNotFound
		}
		s.log.Warn("Failed to delete asset", "path", p, "error", err)
		return DeleteFailed
	}
	return DeleteRemoved
}

// Resolve returns the object key for fileName.
func (s *bucketStore) Resolve(fileName string) string {
	return path.Join(bucketKeyPrefix, fileName)
}

func (s *bucketStore) Open(ctx context.Context, p string) (io.ReadCloser, error) {
	key, ok := s.keyFor(p)
	if !ok {
		return nil, fmt.Errorf("open %q: %w", p, ErrNotFound)
	}
	rc, err := s.bucket.DownloadFile(ctx, key)
	if err != nil {
		if errors.Is(err, gcp.ErrObjectNotFound) {
			return nil, fmt.Errorf("open %q: %w", p, ErrNotFound)
		}
		return nil, fmt.Errorf("open %q: %w: %v", p, ErrStorageIO, err)
	}
	return rc, nil
}

func (s *bucketStore) Stat(ctx context.Context, p string) (Info, error) {
	key, ok := s.keyFor(p)
	if !ok {
		return Info{}, fmt.Errorf("stat %q: %w", p, ErrNotFound)
	}
	attrs, err := s.bucket.GetObjectAttrs(ctx, key)
	if err != nil {
		if errors.Is(err, gcp.ErrObjectNotFound) {
			return Info{}, fmt.Errorf("stat %q: %w", p, ErrNotFound)
		}
		return Info{}, fmt.Errorf("stat %q: %w: %v", p, ErrStorageIO, err)
	}
	ct := attrs.ContentType
	if ct == "" {
		ct = gcp.ContentTypeForKey(key)
	}
	return Info{Size: attrs.Size, ContentType: ct}, nil
}

// keyFor applies the same prefix and containment rules as the filesystem store,
// with the "uploads/" key prefix standing in for the root directory.
func (s *bucketStore) keyFor(p string) (string, bool) {
	name, ok := NameFromPublicPath(p)
	if !ok {
		return "", false
	}
	key := path.Clean(path.Join(bucketKeyPrefix, name))
	if !strings.HasPrefix(key, bucketKeyPrefix+"/") {
		return "", false
	}
	return key, true
}
