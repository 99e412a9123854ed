package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/profile-backend/internal/assets"
	"github.com/yungbote/profile-backend/internal/platform/logger"
)

func TestUploadsHandlerStreamsStoredAssets(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store, err := assets.NewFileSystemStore(logger.Nop(), filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)
	p, err := store.Store(context.Background(), strings.NewReader("webp-bytes"), "bg.webp")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/uploads/*filepath", NewUploadsHandler(store).Serve)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, p, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "webp-bytes", rec.Body.String())
	assert.Equal(t, "image/webp", rec.Header().Get("Content-Type"))
	assert.Equal(t, "10", rec.Header().Get("Content-Length"))

	for _, path := range []string{"/uploads/nope.png", "/uploads/", "/uploads/a/b.png"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

// assetStore is embedded under a name that does not collide with the
// interface's Store method, so all assets.Store methods are promoted.
type assetStore = assets.Store

type attrStore struct {
	assetStore
	info    assets.Info
	body    string
	statErr error
}

func (s *attrStore) Stat(context.Context, string) (assets.Info, error) {
	return s.info, s.statErr
}

func (s *attrStore) Open(context.Context, string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(s.body)), nil
}

func TestUploadsHandlerUsesStoredAttributes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := &attrStore{info: assets.Info{Size: 5, ContentType: "image/avif"}, body: "avif!"}
	r := gin.New()
	r.GET("/uploads/*filepath", NewUploadsHandler(store).Serve)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uploads/x_photo", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/avif", rec.Header().Get("Content-Type"))
	assert.Equal(t, "5", rec.Header().Get("Content-Length"))
	assert.Equal(t, "avif!", rec.Body.String())

	store.info = assets.Info{Size: 3}
	store.body = "raw"
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uploads/x_blob", nil))
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))

	store.statErr = fmt.Errorf("attrs: %w", assets.ErrStorageIO)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uploads/x_blob", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestClassify(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{assets.ErrInvalidName, http.StatusBadRequest, "invalid_file_name"},
		{assets.ErrStorageIO, http.StatusInternalServerError, "storage_failed"},
		{context.Canceled, http.StatusInternalServerError, "internal"},
	}
	for _, tc := range cases {
		ae := classify(tc.err)
		require.NotNil(t, ae)
		assert.Equal(t, tc.status, ae.Status)
		assert.Equal(t, tc.code, ae.Code)
	}
	assert.Nil(t, classify(nil))
}
