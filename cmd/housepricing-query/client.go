package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"housepricing/internal/core/filter"
	"housepricing/internal/core/version"
	perr "housepricing/internal/platform/errors"
	historydomain "housepricing/internal/services/api/history/domain"
	pricedomain "housepricing/internal/services/api/prices/domain"
)

const (
	apiPrefix         = "/api/v1"
	defaultAPITimeout = 20 * time.Second
)

// apiClient talks to a running housepricing-api
type apiClient struct {
	base string
	http *http.Client
}

func newAPIClient(base string, timeout time.Duration) *apiClient {
	if timeout <= 0 {
		timeout = defaultAPITimeout
	}
	return &apiClient{base: strings.TrimRight(base, "/"), http: &http.Client{Timeout: timeout}}
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *perr.Wire      `json:"error"`
}

// Search posts sel to the price search route
func (c *apiClient) Search(ctx context.Context, sel filter.Selection) (pricedomain.SearchResult, error) {
	var out pricedomain.SearchResult
	err := c.do(ctx, http.MethodPost, "/prices/search", sel, &out)
	return out, err
}

// AppendHistory saves sel
func (c *apiClient) AppendHistory(ctx context.Context, sel filter.Selection) (historydomain.Entry, error) {
	var out historydomain.Entry
	err := c.do(ctx, http.MethodPost, "/history", sel, &out)
	return out, err
}

// History lists saved searches, oldest first
func (c *apiClient) History(ctx context.Context, limit int) ([]historydomain.Entry, error) {
	path := "/history"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var out []historydomain.Entry
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *apiClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return perr.Wrap(err, perr.ErrorCodeJSON, "encode request")
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+apiPrefix+path, body)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeInvalidArgument, "bad api base")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent("housepricing-query"))
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "api unreachable")
	}
	defer func() { _ = resp.Body.Close() }()

	var env envelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, 16<<20)).Decode(&env); err != nil {
		return perr.Wrap(err, perr.ErrorCodeMalformedResponse, "api returned "+resp.Status)
	}
	if env.Error != nil {
		return fromWire(*env.Error)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return perr.Newf(perr.ErrorCodeUnavailable, "api returned %s", resp.Status)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return perr.Wrap(err, perr.ErrorCodeMalformedResponse, "unexpected api payload")
	}
	return nil
}

// fromWire rebuilds a project error from its envelope form
func fromWire(w perr.Wire) error {
	err := perr.New(w.Code, w.Message)
	if w.Field != "" {
		err = perr.WithField(err, w.Field)
	}
	for k, v := range w.Meta {
		err = perr.WithMeta(err, k, v)
	}
	return err
}
