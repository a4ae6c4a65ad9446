package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "housepricing/internal/platform/errors"
	pnet "housepricing/internal/platform/net"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func TestAdapt(t *testing.T) {
	cases := []struct {
		name   string
		out    any
		err    error
		status int
		kind   string
	}{
		{"value", map[string]string{"start": "2009K1"}, nil, 200, ""},
		{"response", Created("saved"), nil, 201, ""},
		{"zero status", Response{Body: 1}, nil, 200, ""},
		{"perr", nil, perr.New(perr.ErrorCodeRangeOrder, "End must be after start"), 422, "range_order"},
		{"foreign", nil, errors.New("boom"), 500, "unknown"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Adapt(func(*http.Request) (any, error) { return c.out, c.err })(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, c.status, rec.Code)
			env := decode(t, rec)
			assert.Equal(t, c.status, env.StatusCode)
			if c.kind != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, c.kind, env.Error.Kind)
			} else {
				assert.Nil(t, env.Error)
			}
		})
	}
}

func TestAdapt_HeadersAndRequestID(t *testing.T) {
	h := Adapt(func(*http.Request) (any, error) {
		return Response{Body: "x", Header: http.Header{"Location": {"/api/v1/history"}}}, nil
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(pnet.WithRequestID(req.Context(), "rid-9"))
	rec := httptest.NewRecorder()
	h(rec, req)

	assert.Equal(t, "/api/v1/history", rec.Header().Get("Location"))
	assert.Equal(t, "rid-9", rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "rid-9", decode(t, rec).RequestID)
}

func TestAdaptJSON(t *testing.T) {
	type sel struct {
		Start string `json:"start" validate:"required"`
	}
	called := 0
	h := AdaptJSON(func(_ *http.Request, in sel) (any, error) {
		called++
		return in.Start, nil
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"start":"2009K1"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2009K1", decode(t, rec).Data)

	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "start", decode(t, rec).Error.Field)

	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "json", decode(t, rec).Error.Kind)

	assert.Equal(t, 1, called)
}
