package assets

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/profile-backend/internal/platform/logger"
)

func newTestFSStore(t *testing.T) (Store, string) {
	t.Helper()
	root := filepath.Join(t.TempDir(), "uploads")
	store, err := NewFileSystemStore(logger.Nop(), root)
	require.NoError(t, err)
	return store, root
}

func TestNewFileSystemStoreCreatesRoot(t *testing.T) {
	_, root := newTestFSStore(t)
	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = NewFileSystemStore(logger.Nop(), "  ")
	require.Error(t, err)
}

func TestFSStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, root := newTestFSStore(t)
	payload := []byte("\x89PNG fake image bytes")

	p, err := store.Store(ctx, bytes.NewReader(payload), "my avatar.png")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(p, PublicPrefix))
	assert.True(t, strings.HasSuffix(p, "_my_avatar.png"))

	name, _ := NameFromPublicPath(p)
	onDisk, err := os.ReadFile(filepath.Join(root, name))
	require.NoError(t, err)
	assert.Equal(t, payload, onDisk)

	rc, err := store.Open(ctx, p)
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	info, err := store.Stat(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), info.Size)
	assert.Equal(t, "image/png", info.ContentType)

	assert.Equal(t, DeleteRemoved, store.Delete(ctx, p))
	assert.Equal(t, DeleteNotFound, store.Delete(ctx, p))

	_, err = store.Open(ctx, p)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = store.Stat(ctx, p)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFSStoreTraversalNameStaysUnderRoot(t *testing.T) {
	ctx := context.Background()
	store, root := newTestFSStore(t)

	// "../../etc/passwd" sanitizes to ".._.._etc_passwd", which still carries "..".
	_, err := store.Store(ctx, strings.NewReader("x"), "../../etc/passwd")
	require.ErrorIs(t, err, ErrInvalidName)

	p, err := store.Store(ctx, strings.NewReader("x"), "/etc/passwd")
	require.NoError(t, err)
	name, _ := NameFromPublicPath(p)
	assert.NotContains(t, name, "/")
	assert.NotContains(t, name, "..")

	resolved := store.Resolve(name)
	rel, err := filepath.Rel(root, resolved)
	require.NoError(t, err)
	assert.False(t, strings.HasPrefix(rel, ".."))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFSStoreDeleteRejectsForeignPaths(t *testing.T) {
	ctx := context.Background()
	store, root := newTestFSStore(t)

	outside := filepath.Join(filepath.Dir(root), "keep.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o644))

	assert.Equal(t, DeleteRejected, store.Delete(ctx, "/etc/passwd"))
	assert.Equal(t, DeleteRejected, store.Delete(ctx, ""))
	assert.Equal(t, DeleteRejected, store.Delete(ctx, "/uploads/../keep.txt"))
	assert.Equal(t, DeleteRejected, store.Delete(ctx, "/uploads/"))
	assert.False(t, store.Delete(ctx, "/etc/passwd").Removed())

	_, err := os.Stat(outside)
	require.NoError(t, err)
}

func TestFSStoreResolveIsPureJoin(t *testing.T) {
	store, root := newTestFSStore(t)
	assert.Equal(t, filepath.Join(root, "missing.png"), store.Resolve("missing.png"))

	dir, ok := RootDir(store)
	require.True(t, ok)
	assert.Equal(t, root, dir)
}
