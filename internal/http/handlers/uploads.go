package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/profile-backend/internal/assets"
	"github.com/yungbote/profile-backend/internal/http/response"
)

// UploadsHandler streams stored assets for backends without a local directory.
type UploadsHandler struct {
	store assets.Store
}

func NewUploadsHandler(store assets.Store) *UploadsHandler {
	return &UploadsHandler{store: store}
}

// GET /uploads/*filepath
func (h *UploadsHandler) Serve(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("filepath"), "/")
	if name == "" || strings.Contains(name, "/") {
		response.RespondError(c, http.StatusNotFound, "asset_not_found", assets.ErrNotFound)
		return
	}
	p := assets.PublicPath(name)
	info, err := h.store.Stat(c.Request.Context(), p)
	if err != nil {
		h.respondOpenError(c, err)
		return
	}
	rc, err := h.store.Open(c.Request.Context(), p)
	if err != nil {
		h.respondOpenError(c, err)
		return
	}
	defer rc.Close()
	contentType := info.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, info.Size, contentType, rc, nil)
}

func (h *UploadsHandler) respondOpenError(c *gin.Context, err error) {
	if errors.Is(err, assets.ErrNotFound) {
		response.RespondError(c, http.StatusNotFound, "asset_not_found", assets.ErrNotFound)
		return
	}
	response.RespondAPIError(c, classify(err))
}
