package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCORSAllowsConfiguredOrigins(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name    string
		origins []string
		origin  string
		allowed bool
	}{
		{name: "default localhost", origin: "http://localhost:5173", allowed: true},
		{name: "default loopback", origin: "http://127.0.0.1:3000", allowed: true},
		{name: "configured", origins: []string{"https://app.example.com"}, origin: "https://app.example.com", allowed: true},
		{name: "not configured", origins: []string{"https://app.example.com"}, origin: "http://localhost:5173", allowed: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := gin.New()
			r.Use(CORS(tc.origins))
			r.OPTIONS("/api/profile/1/theme", func(c *gin.Context) {
				c.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodOptions, "/api/profile/1/theme", nil)
			req.Header.Set("Origin", tc.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPut)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			got := rec.Header().Get("Access-Control-Allow-Origin")
			if tc.allowed {
				if rec.Code != http.StatusNoContent {
					t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusNoContent)
				}
				if got != tc.origin {
					t.Fatalf("unexpected allow-origin header: got=%q want=%q", got, tc.origin)
				}
				return
			}
			if got != "" {
				t.Fatalf("expected no allow-origin header, got %q", got)
			}
		})
	}
}
