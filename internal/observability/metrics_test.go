package observability

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsExposition(t *testing.T) {
	m := NewMetrics()
	m.ObserveAPI("get", "/api/profile/:userId", "200", 30*time.Millisecond)
	m.ObserveAPI("GET", "/api/profile/:userId", "200", 2*time.Second)
	m.ObserveAsset("delete", "rejected")
	m.ObserveAsset("delete", "rejected")
	m.ObserveThemeCache("hit")

	var buf bytes.Buffer
	require.NoError(t, m.WritePrometheus(&buf))
	out := buf.String()

	assert.Contains(t, out, `profile_api_requests_total{method="GET",route="/api/profile/:userId",status="200"} 2`)
	assert.Contains(t, out, `profile_api_request_duration_seconds_bucket{method="GET",route="/api/profile/:userId",le="0.05"} 1`)
	assert.Contains(t, out, `profile_api_request_duration_seconds_bucket{method="GET",route="/api/profile/:userId",le="+Inf"} 2`)
	assert.Contains(t, out, `profile_api_request_duration_seconds_count{method="GET",route="/api/profile/:userId"} 2`)
	assert.Contains(t, out, `profile_asset_operations_total{op="delete",result="rejected"} 2`)
	assert.Contains(t, out, `profile_theme_cache_lookups_total{result="hit"} 1`)
	assert.Equal(t, float64(2), m.AssetOps("delete", "rejected"))
}

func TestNilMetricsAreNoops(t *testing.T) {
	var m *Metrics
	m.ObserveAPI("GET", "/", "200", time.Millisecond)
	m.ObserveAsset("store", "ok")
	m.APIInflightAdd(1)
	assert.Zero(t, m.AssetOps("store", "ok"))

	rec := httptest.NewRecorder()
	m.WriteHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	assert.Nil(t, Init(false))
}

func TestLabelEscaping(t *testing.T) {
	got := labelString([]string{"route"}, []string{"a\"b\\c\n"})
	assert.Equal(t, `{route="a\"b\\c\n"}`, got)
	assert.Equal(t, `{le="1"}`, withLe("", "1"))
	assert.True(t, strings.HasSuffix(withLe(`{a="x"}`, "+Inf"), `,le="+Inf"}`))
}

func TestParseHeaders(t *testing.T) {
	assert.Nil(t, parseHeaders(""))
	assert.Equal(t, map[string]string{"x-api-key": "abc", "tenant": "t1"}, parseHeaders(" x-api-key=abc, bad ,tenant = t1,empty="))
	assert.Equal(t, 0.0, clampRatio(-1))
	assert.Equal(t, 1.0, clampRatio(3))
}
