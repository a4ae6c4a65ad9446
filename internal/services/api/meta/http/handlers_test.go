package http

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	phttp "housepricing/internal/platform/net/http"
	ptime "housepricing/internal/platform/time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

var now = time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)

func get(t *testing.T, d Deps, path string, out any) int {
	t.Helper()
	mux := chi.NewRouter()
	phttp.AdaptChi(mux).Route("/meta", func(r phttp.Router) { Register(r, d) })
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, path, nil))
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NoError(t, json.Unmarshal(env.Data, out))
	return rec.Code
}

func deps() Deps {
	return Deps{ServiceName: "housepricing-api", StartedAt: now.Add(-5 * time.Minute), Clock: ptime.Fixed(now)}
}

func TestHealthAndService(t *testing.T) {
	var hr HealthResponse
	require.Equal(t, stdhttp.StatusOK, get(t, deps(), "/meta/health", &hr))
	assert.True(t, hr.OK)
	assert.Equal(t, "2025-08-20T12:00:00.000Z", hr.Now)

	var sr ServiceResponse
	get(t, deps(), "/meta/service", &sr)
	assert.EqualValues(t, 300, sr.Uptime)
}

func TestReady(t *testing.T) {
	cases := []struct {
		name   string
		pg, ch any
		want   string
		code   int
	}{
		{"nothing configured", nil, nil, "ok", stdhttp.StatusOK},
		{"both up", pinger{}, pinger{}, "ok", stdhttp.StatusOK},
		{"ch down", pinger{}, pinger{err: errors.New("refused")}, "fail", stdhttp.StatusServiceUnavailable},
		{"pg cannot ping", struct{}{}, nil, "degraded", stdhttp.StatusOK},
		{"unverifiable and down", struct{}{}, pinger{err: errors.New("refused")}, "fail", stdhttp.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := deps()
			d.Probes = []Probe{{Name: "pg", Check: tc.pg}, {Name: "ch", Check: tc.ch}}
			var rr ReadyResponse
			assert.Equal(t, tc.code, get(t, d, "/meta/ready", &rr))
			assert.Equal(t, tc.want, rr.Status)
			require.Len(t, rr.Checks, 2)
			assert.Equal(t, "pg", rr.Checks[0].Name)
		})
	}
}

func TestVersion(t *testing.T) {
	var v struct {
		Service string `json:"service"`
	}
	get(t, deps(), "/meta/version", &v)
	assert.Equal(t, "housepricing-api", v.Service)
}

func TestOptions(t *testing.T) {
	var o OptionsResponse
	get(t, deps(), "/meta/options", &o)
	assert.Equal(t, "2009K1", o.Earliest)
	assert.Equal(t, "2025K2", o.Latest)
	require.Len(t, o.HouseTypes, 3)
	assert.Equal(t, "Total", o.HouseTypes[0].Label)
	assert.Equal(t, "2010K1", o.Defaults.EndQuarter)
}

func TestReady_ErrorText(t *testing.T) {
	d := deps()
	d.Probes = []Probe{{Name: "ch", Check: pinger{err: errors.New("connection refused")}}}
	var rr ReadyResponse
	require.Equal(t, stdhttp.StatusServiceUnavailable, get(t, d, "/meta/ready", &rr))
	require.Len(t, rr.Checks, 1)
	assert.Equal(t, ReadyCheck{Name: "ch", Status: StatusFail, Error: "connection refused"}, rr.Checks[0])
}
