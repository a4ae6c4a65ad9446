package ssb

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"housepricing/internal/core/housetype"
	perr "housepricing/internal/platform/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(Options{})
	assert.Equal(t, "https://data.ssb.no/api/v0/no/table/07241", c.Endpoint())
	assert.Equal(t, "07241", c.Table())

	c = NewClient(Options{BaseURL: "http://x/api/", APIVersion: "v1", Table: "1"})
	assert.Equal(t, "http://x/api/v1/no/table/1", c.Endpoint())
}

func TestFetch_PostsQueryOnce(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v0/no/table/07241", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "housepricing-test", r.Header.Get("User-Agent"))

		var body QueryBody
		b, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(b, &body))
		assert.Equal(t, []string{"00"}, body.Query[0].Selection.Values)
		assert.Equal(t, "json-stat2", body.Response.Format)

		_, _ = w.Write([]byte(`{"value":[1]}`))
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL + "/api", UserAgent: "housepricing-test"})
	raw, err := c.Fetch(context.Background(), BuildQueryBody([]housetype.Code{"00"}, []string{"2010K1"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":[1]}`, string(raw))
	assert.Equal(t, 1, calls)
}

func TestFetch_ServerErrorIsNotRetried(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL})
	_, err := c.Fetch(context.Background(), BuildQueryBody(nil, nil))
	require.Error(t, err)
	assert.Equal(t, 1, calls)

	e, ok := perr.As(err)
	require.True(t, ok)
	assert.Equal(t, perr.ErrorCodeUnavailable, e.Code())
	assert.Equal(t, "503", e.Meta("status"))
	assert.Equal(t, "Could not fetch data", e.Message())
}

func TestFetch_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(Options{BaseURL: url, Timeout: time.Second})
	_, err := c.Fetch(context.Background(), BuildQueryBody(nil, nil))
	assert.True(t, perr.IsCode(err, perr.ErrorCodeUnavailable))
}

func TestFetch_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewClient(Options{BaseURL: srv.URL}).Fetch(ctx, BuildQueryBody(nil, nil))
	assert.Error(t, err)
}
