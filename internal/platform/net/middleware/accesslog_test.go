package middleware_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"housepricing/internal/platform/logger"
	"housepricing/internal/platform/net/middleware"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serveLogged runs h behind AccessLog with a buffer logger and returns the
// response and the decoded log line
func serveLogged(t *testing.T, slow time.Duration, target string, h http.HandlerFunc) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = req.WithContext(logger.Into(req.Context(), zerolog.New(&buf)))
	rec := httptest.NewRecorder()
	middleware.AccessLog(slow)(h).ServeHTTP(rec, req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), buf.String())
	return rec, line
}

func TestAccessLog_Fields(t *testing.T) {
	rec, line := serveLogged(t, 0, "/api/v1/prices/search?start=2009K1", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, "chart")
		_, _ = io.WriteString(w, "data")
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "chartdata", rec.Body.String())

	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "request done", line["message"])
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, "/api/v1/prices/search", line["path"])
	assert.Equal(t, "start=2009K1", line["query"])
	assert.EqualValues(t, 201, line["status"])
	assert.EqualValues(t, 9, line["bytes"])
}

func TestAccessLog_ImplicitOK(t *testing.T) {
	_, line := serveLogged(t, 0, "/", func(w http.ResponseWriter, _ *http.Request) {})
	assert.EqualValues(t, 200, line["status"])
}

func TestAccessLog_Levels(t *testing.T) {
	_, line := serveLogged(t, 0, "/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	assert.Equal(t, "error", line["level"])

	_, line = serveLogged(t, time.Nanosecond, "/", func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(50 * time.Microsecond)
	})
	assert.Equal(t, "warn", line["level"])

	_, line = serveLogged(t, time.Hour, "/", func(w http.ResponseWriter, _ *http.Request) {})
	assert.Equal(t, "info", line["level"])
}

func TestRequestLogger_TagsRequestAndClient(t *testing.T) {
	var buf bytes.Buffer
	var h http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.C(r.Context()).Info().Msg("inside")
	})
	h = chimw.RequestID(chimw.RealIP(middleware.RequestLogger(h)))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history", nil)
	req.Header.Set("X-Request-ID", "rid-77")
	req.Header.Set("X-Forwarded-For", "10.1.2.3")
	req = req.WithContext(logger.Into(req.Context(), zerolog.New(&buf)))
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"request_id":"rid-77"`)
	assert.Contains(t, buf.String(), `"client_ip":"10.1.2.3"`)
}

func TestRequestLogger_BareRemoteAddr(t *testing.T) {
	var buf bytes.Buffer
	h := middleware.RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.C(r.Context()).Info().Msg("inside")
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.7"
	req = req.WithContext(logger.Into(req.Context(), zerolog.New(&buf)))
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"client_ip":"192.0.2.7"`)
}
