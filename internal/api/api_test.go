package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, cfg Config) http.Handler {
	t.Helper()
	return New(cfg).Handler()
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	rec := get(t, newTestHandler(t, Config{}), "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestRomanEndpoint(t *testing.T) {
	h := newTestHandler(t, Config{})

	t.Run("ok", func(t *testing.T) {
		rec := get(t, h, "/v1/roman/1994")
		require.Equal(t, http.StatusOK, rec.Code)

		var got romanResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

		want := romanResponse{Input: 1994, Roman: "MCMXCIV"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("response mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("not an integer", func(t *testing.T) {
		rec := get(t, h, "/v1/roman/xiv")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("zero", func(t *testing.T) {
		rec := get(t, h, "/v1/roman/0")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body["error"], "no roman representation")
	})

	t.Run("negative", func(t *testing.T) {
		rec := get(t, h, "/v1/roman/-5")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("above range", func(t *testing.T) {
		rec := get(t, h, "/v1/roman/4000")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body["error"], "out of range")
	})
}

func TestTernaryEndpoint(t *testing.T) {
	h := newTestHandler(t, Config{})

	t.Run("positive", func(t *testing.T) {
		rec := get(t, h, "/v1/ternary/2")
		require.Equal(t, http.StatusOK, rec.Code)

		var got ternaryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, ternaryResponse{Input: 2, Ternary: "+-"}, got)
	})

	t.Run("negative", func(t *testing.T) {
		rec := get(t, h, "/v1/ternary/-1")
		require.Equal(t, http.StatusOK, rec.Code)

		var got ternaryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, ternaryResponse{Input: -1, Ternary: "-"}, got)
	})

	t.Run("overflow", func(t *testing.T) {
		rec := get(t, h, "/v1/ternary/99999999999999999999")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestHandler(t, Config{})

	// Drive at least one conversion so the counter vec has a sample.
	get(t, h, "/v1/roman/7")

	rec := get(t, h, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "numerals_conversions_total")
}

func TestRateLimit(t *testing.T) {
	h := newTestHandler(t, Config{RateLimit: 2, RateWindow: time.Minute})

	assert.Equal(t, http.StatusOK, get(t, h, "/v1/roman/1").Code)
	assert.Equal(t, http.StatusOK, get(t, h, "/v1/roman/2").Code)

	rec := get(t, h, "/v1/roman/3")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}
