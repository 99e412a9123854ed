package handlers

import (
	"errors"
	"net/http"

	"github.com/yungbote/profile-backend/internal/assets"
	"github.com/yungbote/profile-backend/internal/platform/apierr"
	"github.com/yungbote/profile-backend/internal/services"
)

// classify maps service and store errors onto API error codes.
func classify(err error) *apierr.Error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, services.ErrProfileNotFound):
		return apierr.New(http.StatusNotFound, "profile_not_found", err)
	case errors.Is(err, services.ErrThemeNotFound):
		return apierr.New(http.StatusNotFound, "theme_not_found", err)
	case errors.Is(err, assets.ErrInvalidName):
		return apierr.New(http.StatusBadRequest, "invalid_file_name", err)
	case errors.Is(err, assets.ErrStorageIO):
		return apierr.New(http.StatusInternalServerError, "storage_failed", err)
	default:
		return apierr.From(err)
	}
}
