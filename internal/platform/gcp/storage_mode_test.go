package gcp

import (
	"errors"
	"testing"
)

func TestValidateObjectStorageConfig(t *testing.T) {
	cases := []struct {
		name string
		cfg  ObjectStorageConfig
		code ObjectStorageConfigErrorCode
	}{
		{"gcs ok", ObjectStorageConfig{Mode: ObjectStorageModeGCS, BucketName: "uploads"}, ""},
		{"emulator ok", ObjectStorageConfig{Mode: ObjectStorageModeGCSEmulator, BucketName: "uploads", EmulatorHost: "http://fake-gcs:4443"}, ""},
		{"bad mode", ObjectStorageConfig{Mode: "s4", BucketName: "uploads"}, ObjectStorageConfigErrorInvalidMode},
		{"no bucket", ObjectStorageConfig{Mode: ObjectStorageModeGCS}, ObjectStorageConfigErrorMissingBucket},
		{"no emulator host", ObjectStorageConfig{Mode: ObjectStorageModeGCSEmulator, BucketName: "uploads"}, ObjectStorageConfigErrorMissingEmulatorHost},
		{"relative emulator host", ObjectStorageConfig{Mode: ObjectStorageModeGCSEmulator, BucketName: "uploads", EmulatorHost: "fake-gcs:4443"}, ObjectStorageConfigErrorInvalidEmulatorHost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateObjectStorageConfig(tc.cfg)
			if tc.code == "" {
				if err != nil {
					t.Fatalf("ValidateObjectStorageConfig: unexpected error: %v", err)
				}
				return
			}
			var cfgErr *ObjectStorageConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ObjectStorageConfigError, got=%T (%v)", err, err)
			}
			if cfgErr.Code != tc.code {
				t.Fatalf("code: want=%q got=%q", tc.code, cfgErr.Code)
			}
			if cfgErr.Error() == "" {
				t.Fatalf("empty error message")
			}
		})
	}
}
