package ssb

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	perr "housepricing/internal/platform/errors"
	"housepricing/internal/platform/logger"
)

const (
	baseURLDefault    = "https://data.ssb.no/api"
	apiVersionDefault = "v0"
	tableDefault      = "07241"
	defaultTimeout    = 15 * time.Second
	defaultUA         = "housepricing"
	maxBody           = 16 << 20
)

// Options configures the Client
type Options struct {
	BaseURL    string
	APIVersion string
	Table      string
	UserAgent  string
	Timeout    time.Duration

	// HTTPClient overrides the transport, mostly for tests
	HTTPClient *http.Client
}

// Client posts table queries. It sends exactly one request per call and
// never retries; a failed fetch is reported to the caller as is
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	now  func() time.Time
}

// NewClient creates a Client with defaults for the public SSB API
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.APIVersion == "" {
		o.APIVersion = apiVersionDefault
	}
	if o.Table == "" {
		o.Table = tableDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	hc := o.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: o.Timeout}
	}
	return &Client{
		http: hc,
		opts: o,
		log:  *logger.Named("ssb"),
		now:  time.Now,
	}
}

// Endpoint is the table URL queries are posted to
func (c *Client) Endpoint() string {
	return c.opts.BaseURL + "/" + c.opts.APIVersion + "/no/table/" + c.opts.Table
}

// Table is the table id the client queries
func (c *Client) Table() string { return c.opts.Table }

// Fetch posts body and returns the raw json-stat2 payload
func (c *Client) Fetch(ctx context.Context, body QueryBody) ([]byte, error) {
	payload, err := body.JSON()
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "ssb encode query failed")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(payload))
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "ssb new request failed")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.opts.UserAgent)

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		c.log.Warn().Err(err).Dur("latency", lat).Str("table", c.opts.Table).Msg("ssb request failed")
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "Could not fetch data")
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug().
		Str("table", c.opts.Table).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Int64("content_length", resp.ContentLength).
		Msg("ssb http response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		tail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		err := perr.Newf(perr.ErrorCodeUnavailable, "Could not fetch data")
		err = perr.WithMeta(err, "status", strconv.Itoa(resp.StatusCode))
		c.log.Warn().Int("status", resp.StatusCode).Str("body", string(tail)).Msg("ssb unexpected status")
		return nil, err
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "Could not fetch data")
	}
	return raw, nil
}
