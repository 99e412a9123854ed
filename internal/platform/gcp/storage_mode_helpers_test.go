package gcp

import "testing"

func TestObjectStorageModeHelpers(t *testing.T) {
	if !IsSupportedObjectStorageMode(ObjectStorageModeGCS) {
		t.Fatalf("ObjectStorageModeGCS should be supported")
	}
	if !IsSupportedObjectStorageMode(ObjectStorageModeGCSEmulator) {
		t.Fatalf("ObjectStorageModeGCSEmulator should be supported")
	}
	if IsSupportedObjectStorageMode(ObjectStorageMode("local")) {
		t.Fatalf("local is not a bucket mode")
	}

	if (ObjectStorageConfig{Mode: ObjectStorageModeGCS}).IsEmulatorMode() {
		t.Fatalf("gcs config should not be emulator mode")
	}
	if !(ObjectStorageConfig{Mode: ObjectStorageModeGCSEmulator}).IsEmulatorMode() {
		t.Fatalf("gcs_emulator config should be emulator mode")
	}
}
