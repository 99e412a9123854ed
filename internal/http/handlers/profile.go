package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/profile-backend/internal/http/response"
	"github.com/yungbote/profile-backend/internal/platform/ctxutil"
	"github.com/yungbote/profile-backend/internal/services"
)

const DefaultMaxUploadBytes int64 = 10 << 20

type ProfileHandler struct {
	profiles       services.ProfileService
	maxUploadBytes int64
}

func NewProfileHandler(profiles services.ProfileService, maxUploadBytes int64) *ProfileHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &ProfileHandler{profiles: profiles, maxUploadBytes: maxUploadBytes}
}

// principal is set by middleware.AttachPrincipal on every /profile/:userId route.
func principal(c *gin.Context) (int64, bool) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID <= 0 {
		response.RespondError(c, http.StatusBadRequest, "invalid_user_id", fmt.Errorf("user id not resolved"))
		return 0, false
	}
	return rd.UserID, true
}

// GET /api/profile/:userId
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}
	view, err := h.profiles.GetProfileView(c.Request.Context(), userID)
	if err != nil {
		response.RespondAPIError(c, classify(err))
		return
	}
	response.RespondOK(c, gin.H{"profile": view.Profile, "theme": view.Theme})
}

// POST /api/profile/:userId/initialize-profile
func (h *ProfileHandler) InitializeProfile(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}
	p, err := h.profiles.CreateDefault(c.Request.Context(), userID)
	if err != nil {
		response.RespondAPIError(c, classify(err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"profile": p})
}

// POST /api/profile/:userId/background-image (multipart/form-data, field "file")
func (h *ProfileHandler) UploadBackgroundImage(c *gin.Context) {
	h.upload(c, h.profiles.UpdateBackgroundImage)
}

// POST /api/profile/:userId/avatar (multipart/form-data, field "file")
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	h.upload(c, h.profiles.UpdateAvatar)
}

type uploadFunc func(ctx context.Context, userID int64, r io.Reader, originalName string) (string, error)

func (h *ProfileHandler) upload(c *gin.Context, apply uploadFunc) {
	userID, ok := principal(c)
	if !ok {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+(1<<20))

	fh, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			response.RespondError(c, http.StatusBadRequest, "file_too_large", fmt.Errorf("upload exceeds %d bytes", h.maxUploadBytes))
			return
		}
		response.RespondError(c, http.StatusBadRequest, "missing_file", fmt.Errorf("multipart field \"file\" is required"))
		return
	}
	if fh.Size > h.maxUploadBytes {
		response.RespondError(c, http.StatusBadRequest, "file_too_large", fmt.Errorf("upload exceeds %d bytes", h.maxUploadBytes))
		return
	}

	f, err := fh.Open()
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "open_file_failed", err)
		return
	}
	defer f.Close()

	url, err := apply(c.Request.Context(), userID, f, fh.Filename)
	if err != nil {
		response.RespondAPIError(c, classify(err))
		return
	}
	response.RespondOK(c, gin.H{"url": url})
}

// PUT /api/profile/:userId/button-style
// body: { "buttonStyleConfig": "..." }
func (h *ProfileHandler) UpdateButtonStyle(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}
	var req struct {
		ButtonStyleConfig *string `json:"buttonStyleConfig"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ButtonStyleConfig == nil {
		response.RespondError(c, http.StatusBadRequest, "button_style_config_required", fmt.Errorf("buttonStyleConfig is required"))
		return
	}
	p, err := h.profiles.UpdateButtonStyleConfig(c.Request.Context(), userID, *req.ButtonStyleConfig)
	if err != nil {
		response.RespondAPIError(c, classify(err))
		return
	}
	response.RespondOK(c, gin.H{"profile": p})
}

// PUT /api/profile/:userId/theme
// body: { "themeId": 1 }
func (h *ProfileHandler) UpdateTheme(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}
	var req struct {
		ThemeID *int64 `json:"themeId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ThemeID == nil {
		response.RespondError(c, http.StatusBadRequest, "theme_id_required", fmt.Errorf("themeId is required"))
		return
	}
	p, err := h.profiles.UpdateCurrentTheme(c.Request.Context(), userID, *req.ThemeID)
	if err != nil {
		response.RespondAPIError(c, classify(err))
		return
	}
	response.RespondOK(c, gin.H{"profile": p})
}
