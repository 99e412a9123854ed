package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/profile-backend/internal/http/response"
	"github.com/yungbote/profile-backend/internal/services"
)

type ThemeHandler struct {
	themes services.ThemeService
}

func NewThemeHandler(themes services.ThemeService) *ThemeHandler {
	return &ThemeHandler{themes: themes}
}

// GET /api/themes
func (h *ThemeHandler) ListThemes(c *gin.Context) {
	themes, err := h.themes.GetAll(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, classify(err))
		return
	}
	response.RespondOK(c, gin.H{"themes": themes})
}

// GET /api/themes/:themeId
func (h *ThemeHandler) GetTheme(c *gin.Context) {
	raw := c.Param("themeId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		response.RespondError(c, http.StatusBadRequest, "invalid_theme_id", fmt.Errorf("invalid theme id %q", raw))
		return
	}
	theme, err := h.themes.GetByID(c.Request.Context(), id)
	if err != nil {
		response.RespondAPIError(c, classify(err))
		return
	}
	response.RespondOK(c, gin.H{"theme": theme})
}
