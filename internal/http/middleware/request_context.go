package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/profile-backend/internal/http/response"
	"github.com/yungbote/profile-backend/internal/platform/ctxutil"
)

const userIDParam = "userId"

// AttachPrincipal parses the :userId route segment into ctxutil.RequestData.
// Identity is trusted as given; authentication happens upstream.
func AttachPrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.Param(userIDParam))
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.RespondError(c, http.StatusBadRequest, "invalid_user_id", fmt.Errorf("invalid user id %q", raw))
			c.Abort()
			return
		}
		ctx := ctxutil.WithRequestData(c.Request.Context(), &ctxutil.RequestData{UserID: id})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
