package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yungbote/profile-backend/internal/platform/dbctx"
	"github.com/yungbote/profile-backend/internal/platform/gcp"
	"github.com/yungbote/profile-backend/internal/platform/logger"
)

func TestClassifyStorageProviderBootstrapError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want StorageProviderBootstrapErrorCode
	}{
		{"invalid mode", &gcp.ObjectStorageConfigError{Code: gcp.ObjectStorageConfigErrorInvalidMode}, StorageProviderBootstrapErrorInvalidMode},
		{"missing bucket", &gcp.ObjectStorageConfigError{Code: gcp.ObjectStorageConfigErrorMissingBucket}, StorageProviderBootstrapErrorMissingBucket},
		{"missing emulator host", &gcp.ObjectStorageConfigError{Code: gcp.ObjectStorageConfigErrorMissingEmulatorHost}, StorageProviderBootstrapErrorMissingEmulatorHost},
		{"invalid emulator host", &gcp.ObjectStorageConfigError{Code: gcp.ObjectStorageConfigErrorInvalidEmulatorHost}, StorageProviderBootstrapErrorInvalidEmulatorHost},
		{"wrapped config error", errors.Join(errors.New("validate"), &gcp.ObjectStorageConfigError{Code: gcp.ObjectStorageConfigErrorMissingBucket}), StorageProviderBootstrapErrorMissingBucket},
		{"connect failed", errors.New("dial tcp: connection refused"), StorageProviderBootstrapErrorConnectFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := classifyStorageProviderBootstrapError(gcp.ObjectStorageConfig{Mode: gcp.ObjectStorageModeGCS}, tc.err)
			var got *StorageProviderBootstrapError
			if !errors.As(err, &got) {
				t.Fatalf("expected StorageProviderBootstrapError, got=%T", err)
			}
			if got.Code != tc.want {
				t.Fatalf("code: want=%q got=%q", tc.want, got.Code)
			}
			if !errors.Is(err, tc.err) {
				t.Fatalf("cause not preserved")
			}
		})
	}
}

func TestResolveBucketServiceInvalidMode(t *testing.T) {
	_, err := resolveBucketService(logger.Nop(), Config{ObjectStorageMode: "s3"})
	if got := storageProviderBootstrapErrorCode(err); got != StorageProviderBootstrapErrorInvalidMode {
		t.Fatalf("code: want=%q got=%q (err=%v)", StorageProviderBootstrapErrorInvalidMode, got, err)
	}
}

func TestResolveBucketServiceValidation(t *testing.T) {
	orig := newBucketServiceWithConfig
	t.Cleanup(func() { newBucketServiceWithConfig = orig })
	newBucketServiceWithConfig = gcp.NewBucketServiceWithConfig

	cases := []struct {
		name string
		cfg  Config
		want StorageProviderBootstrapErrorCode
	}{
		{"missing bucket", Config{ObjectStorageMode: "gcs"}, StorageProviderBootstrapErrorMissingBucket},
		{"missing emulator host", Config{ObjectStorageMode: "gcs_emulator", UploadsBucketName: "b"}, StorageProviderBootstrapErrorMissingEmulatorHost},
		{"invalid emulator host", Config{ObjectStorageMode: "gcs_emulator", UploadsBucketName: "b", StorageEmulatorHost: "not-a-url"}, StorageProviderBootstrapErrorInvalidEmulatorHost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := resolveBucketService(logger.Nop(), tc.cfg)
			if got := storageProviderBootstrapErrorCode(err); got != tc.want {
				t.Fatalf("code: want=%q got=%q (err=%v)", tc.want, got, err)
			}
		})
	}
}

func TestResolveAssetStoreBucketModes(t *testing.T) {
	orig := newBucketServiceWithConfig
	t.Cleanup(func() { newBucketServiceWithConfig = orig })

	var captured gcp.ObjectStorageConfig
	expected := &testBucketService{}
	newBucketServiceWithConfig = func(_ *logger.Logger, cfg gcp.ObjectStorageConfig) (gcp.BucketService, error) {
		captured = cfg
		return expected, nil
	}

	store, bucket, err := resolveAssetStore(logger.Nop(), Config{
		ObjectStorageMode:   string(gcp.ObjectStorageModeGCSEmulator),
		StorageEmulatorHost: "http://fake-gcs:4443",
		UploadsBucketName:   "profile-uploads",
	})
	if err != nil {
		t.Fatalf("resolveAssetStore: %v", err)
	}
	if bucket != expected {
		t.Fatalf("bucket: expected stub bucket instance")
	}
	if captured.Mode != gcp.ObjectStorageModeGCSEmulator || captured.EmulatorHost != "http://fake-gcs:4443" || captured.BucketName != "profile-uploads" {
		t.Fatalf("unexpected storage config: %+v", captured)
	}

	p, err := store.Store(context.Background(), strings.NewReader("x"), "a.png")
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if !strings.HasPrefix(p, "/uploads/") {
		t.Fatalf("unexpected public path %q", p)
	}
	if len(expected.uploaded) != 1 || !strings.HasPrefix(expected.uploaded[0], "uploads/") {
		t.Fatalf("unexpected uploaded keys: %v", expected.uploaded)
	}
}

func TestResolveAssetStoreLocal(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	store, bucket, err := resolveAssetStore(logger.Nop(), Config{ObjectStorageMode: StorageModeLocal, UploadDir: dir})
	if err != nil {
		t.Fatalf("resolveAssetStore: %v", err)
	}
	if bucket != nil {
		t.Fatalf("local mode should not create a bucket")
	}
	if store == nil {
		t.Fatalf("expected a store")
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("upload dir not created: %v", err)
	}

	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	_, _, err = resolveAssetStore(logger.Nop(), Config{ObjectStorageMode: StorageModeLocal, UploadDir: filepath.Join(blocker, "sub")})
	if got := storageProviderBootstrapErrorCode(err); got != StorageProviderBootstrapErrorLocalDir {
		t.Fatalf("code: want=%q got=%q", StorageProviderBootstrapErrorLocalDir, got)
	}
}

type testBucketService struct {
	uploaded []string
}

func (t *testBucketService) UploadFile(_ dbctx.Context, key string, file io.Reader) error {
	_, _ = io.Copy(io.Discard, file)
	t.uploaded = append(t.uploaded, key)
	return nil
}

func (t *testBucketService) DeleteFile(dbctx.Context, string) error { return nil }

func (t *testBucketService) DownloadFile(context.Context, string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("")), nil
}

func (t *testBucketService) GetObjectAttrs(context.Context, string) (*gcp.ObjectAttrs, error) {
	return &gcp.ObjectAttrs{}, nil
}

func (t *testBucketService) Close() error { return nil }
