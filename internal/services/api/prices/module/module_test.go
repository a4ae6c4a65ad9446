package module

import (
	"context"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"housepricing/internal/adapters/ssb"
	modkit "housepricing/internal/modkit"
	"housepricing/internal/platform/config"
	phttp "housepricing/internal/platform/net/http"
	"housepricing/internal/platform/testkit"
	ptime "housepricing/internal/platform/time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticFetcher struct{ calls int }

func (f *staticFetcher) Fetch(context.Context, ssb.QueryBody) ([]byte, error) {
	f.calls++
	return []byte(`{"dimension":{"Boligtype":{"category":{"index":{"00":0}}},"Tid":{"category":{"label":{"2009K1":"2009K1"}}}},"value":[100]}`), nil
}

func (f *staticFetcher) Table() string { return "07241" }

type recCH struct {
	execs   int
	inserts int
}

func (c *recCH) Insert(context.Context, string, [][]any) error { c.inserts++; return nil }
func (c *recCH) Exec(context.Context, string, ...any) error    { c.execs++; return nil }
func (c *recCH) Ping(context.Context) error                    { return nil }
func (c *recCH) Close() error                                  { return nil }

func TestFromConfig_Defaults(t *testing.T) {
	o := FromConfig(config.New())
	assert.Equal(t, "https://data.ssb.no/api", o.SSB.BaseURL)
	assert.Equal(t, "v0", o.SSB.APIVersion)
	assert.Equal(t, "07241", o.SSB.Table)
	assert.Equal(t, 15*time.Second, o.SSB.Timeout)
	assert.Zero(t, o.Throttle)
	assert.True(t, o.Sink)
}

func TestFromConfig_Env(t *testing.T) {
	testkit.Env(t, map[string]string{
		"SSB_BASE_URL":    "http://localhost:9999/api/",
		"SSB_TABLE":       "07221",
		"PRICES_THROTTLE": "4",
		"PRICES_SINK":     "false",
	})
	o := FromConfig(config.New())
	assert.Equal(t, "http://localhost:9999/api", o.SSB.BaseURL)
	assert.Equal(t, "07221", o.SSB.Table)
	assert.Equal(t, 4, o.Throttle)
	assert.False(t, o.Sink)
}

func TestModule_MountsSearchAndFeedsSink(t *testing.T) {
	t.Setenv("PRICES_THROTTLE", "2")
	f := &staticFetcher{}
	ch := &recCH{}
	m := NewWith(modkit.Deps{
		Cfg:   config.New(),
		CH:    ch,
		Clock: ptime.Fixed(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
	}, []Option{WithFetcher(f)})

	assert.Equal(t, Name, m.Name())
	assert.Equal(t, 1, ch.execs, "schema applied once")

	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))

	req := httptest.NewRequest(stdhttp.MethodPost, "/prices/search",
		strings.NewReader(`{"houseTypes":["00"],"startQuarter":"2009K1","endQuarter":"2009K1"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, stdhttp.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 1, f.calls)
	assert.Equal(t, 1, ch.inserts)
}

func TestModule_NoClickhouseNoSink(t *testing.T) {
	f := &staticFetcher{}
	m := NewWith(modkit.Deps{Cfg: config.New()}, []Option{WithFetcher(f)})
	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))

	req := httptest.NewRequest(stdhttp.MethodGet, "/prices/search?start=2009K1&end=2009K1&houseTypes=00", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, stdhttp.StatusOK, rec.Code, rec.Body.String())
}
