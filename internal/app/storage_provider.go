package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yungbote/profile-backend/internal/assets"
	"github.com/yungbote/profile-backend/internal/platform/gcp"
	"github.com/yungbote/profile-backend/internal/platform/logger"
)

var newBucketServiceWithConfig = gcp.NewBucketServiceWithConfig

type StorageProviderBootstrapErrorCode string

const (
	StorageProviderBootstrapErrorInvalidMode         StorageProviderBootstrapErrorCode = "invalid_mode"
	StorageProviderBootstrapErrorMissingBucket       StorageProviderBootstrapErrorCode = "missing_bucket"
	StorageProviderBootstrapErrorMissingEmulatorHost StorageProviderBootstrapErrorCode = "missing_emulator_host"
	StorageProviderBootstrapErrorInvalidEmulatorHost StorageProviderBootstrapErrorCode = "invalid_emulator_host"
	StorageProviderBootstrapErrorLocalDir            StorageProviderBootstrapErrorCode = "local_dir_unavailable"
	StorageProviderBootstrapErrorConnectFailed       StorageProviderBootstrapErrorCode = "connect_failed"
)

type StorageProviderBootstrapError struct {
	Code         StorageProviderBootstrapErrorCode
	Mode         string
	EmulatorHost string
	Cause        error
}

func (e *StorageProviderBootstrapError) Error() string {
	if e == nil {
		return "asset storage bootstrap failed"
	}
	return fmt.Sprintf(
		"asset storage bootstrap failed (code=%s mode=%q emulator_host=%q): %v",
		e.Code,
		e.Mode,
		e.EmulatorHost,
		e.Cause,
	)
}

func (e *StorageProviderBootstrapError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// resolveAssetStore picks the asset backend for cfg.ObjectStorageMode. The
// returned bucket is nil for the local backend and must be closed otherwise.
func resolveAssetStore(log *logger.Logger, cfg Config) (assets.Store, gcp.BucketService, error) {
	mode := strings.TrimSpace(cfg.ObjectStorageMode)
	if mode == "" || mode == StorageModeLocal {
		log.Info("Selecting asset storage provider", "mode", StorageModeLocal, "upload_dir", cfg.UploadDir)
		store, err := assets.NewFileSystemStore(log, cfg.UploadDir)
		if err != nil {
			bootErr := &StorageProviderBootstrapError{Code: StorageProviderBootstrapErrorLocalDir, Mode: StorageModeLocal, Cause: err}
			log.Error("Asset storage provider bootstrap failed", "mode", StorageModeLocal, "error_code", bootErr.Code, "error", err)
			return nil, nil, bootErr
		}
		return store, nil, nil
	}

	bucket, err := resolveBucketService(log, cfg)
	if err != nil {
		return nil, nil, err
	}
	store, err := assets.NewBucketStore(log, bucket)
	if err != nil {
		_ = bucket.Close()
		return nil, nil, err
	}
	return store, bucket, nil
}

func resolveBucketService(log *logger.Logger, cfg Config) (gcp.BucketService, error) {
	storageCfg := gcp.ObjectStorageConfig{
		Mode:         gcp.ObjectStorageMode(strings.TrimSpace(cfg.ObjectStorageMode)),
		EmulatorHost: strings.TrimSpace(cfg.StorageEmulatorHost),
		BucketName:   strings.TrimSpace(cfg.UploadsBucketName),
	}

	if !gcp.IsSupportedObjectStorageMode(storageCfg.Mode) {
		err := &StorageProviderBootstrapError{
			Code:         StorageProviderBootstrapErrorInvalidMode,
			Mode:         string(storageCfg.Mode),
			EmulatorHost: storageCfg.EmulatorHost,
			Cause:        fmt.Errorf("unsupported object storage mode %q", storageCfg.Mode),
		}
		log.Error(
			"Asset storage provider selection failed",
			"mode", storageCfg.Mode,
			"emulator_host", storageCfg.EmulatorHost,
			"error_code", err.Code,
			"error", err,
		)
		return nil, err
	}

	log.Info(
		"Selecting asset storage provider",
		"mode", storageCfg.Mode,
		"bucket", storageCfg.BucketName,
		"emulator_host", storageCfg.EmulatorHost,
	)

	bucket, err := newBucketServiceWithConfig(log, storageCfg)
	if err != nil {
		classified := classifyStorageProviderBootstrapError(storageCfg, err)
		log.Error(
			"Asset storage provider bootstrap failed",
			"mode", storageCfg.Mode,
			"emulator_host", storageCfg.EmulatorHost,
			"error_code", storageProviderBootstrapErrorCode(classified),
			"error", classified,
		)
		return nil, classified
	}
	return bucket, nil
}

var configErrorCodes = map[gcp.ObjectStorageConfigErrorCode]StorageProviderBootstrapErrorCode{
	gcp.ObjectStorageConfigErrorInvalidMode:         StorageProviderBootstrapErrorInvalidMode,
	gcp.ObjectStorageConfigErrorMissingBucket:       StorageProviderBootstrapErrorMissingBucket,
	gcp.ObjectStorageConfigErrorMissingEmulatorHost: StorageProviderBootstrapErrorMissingEmulatorHost,
	gcp.ObjectStorageConfigErrorInvalidEmulatorHost: StorageProviderBootstrapErrorInvalidEmulatorHost,
}

func classifyStorageProviderBootstrapError(storageCfg gcp.ObjectStorageConfig, err error) error {
	code := StorageProviderBootstrapErrorConnectFailed
	var cfgErr *gcp.ObjectStorageConfigError
	if errors.As(err, &cfgErr) {
		if mapped, ok := configErrorCodes[cfgErr.Code]; ok {
			code = mapped
		}
	}
	return &StorageProviderBootstrapError{
		Code:         code,
		Mode:         string(storageCfg.Mode),
		EmulatorHost: storageCfg.EmulatorHost,
		Cause:        err,
	}
}

func storageProviderBootstrapErrorCode(err error) StorageProviderBootstrapErrorCode {
	var bootstrapErr *StorageProviderBootstrapError
	if errors.As(err, &bootstrapErr) && bootstrapErr.Code != "" {
		return bootstrapErr.Code
	}
	return StorageProviderBootstrapErrorConnectFailed
}
