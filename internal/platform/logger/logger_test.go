package logger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"test", "development", "production"} {
		log, err := New(mode)
		require.NoError(t, err, mode)
		require.NotNil(t, log.SugaredLogger, mode)
		log.With("service", "LoggerTest").Info("hello", "mode", mode)
	}
}

func TestSanitizeValue(t *testing.T) {
	assert.Equal(t, "[REDACTED]", sanitizeValue("authorization", "Bearer abc"))
	assert.Equal(t, "[REDACTED]", sanitizeValue("refresh_token", "abc"))
	assert.Equal(t, "rounded-blue", sanitizeValue("button_style_config", "rounded-blue"))

	hashed, ok := sanitizeValue("user_id", int64(42)).(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(hashed, "hash:"))
	assert.Equal(t, hashed, sanitizeValue("user_id", "42"))

	nested := sanitizeValue("payload", map[string]interface{}{"password": "pw", "name": "x"}).(map[string]interface{})
	assert.Equal(t, "[REDACTED]", nested["password"])
	assert.Equal(t, "x", nested["name"])
}

func TestSanitizeKVsOddLength(t *testing.T) {
	out := sanitizeKVs([]interface{}{"path", "/uploads/a.png", "dangling"})
	require.Len(t, out, 3)
	assert.Equal(t, "dangling", out[2])
}
