// Package http serves the meta endpoints: liveness, readiness, build info
// and the options a search form needs
package http

import (
	"context"
	"net/http"
	"time"

	"housepricing/internal/core/filter"
	"housepricing/internal/core/housetype"
	"housepricing/internal/core/quarter"
	"housepricing/internal/core/version"
	"housepricing/internal/modkit/httpkit"
	ptime "housepricing/internal/platform/time"
)

// Pinger is satisfied by backends that can report readiness
type Pinger interface {
	Ping(context.Context) error
}

// Probe names one optional backend. A nil Check means the backend is not
// configured; a Check without Ping cannot be verified
type Probe struct {
	Name  string
	Check any
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Clock       ptime.Clock
	Probes      []Probe
	// ProbeTimeout bounds all pings of one readiness call; zero means 2s
	ProbeTimeout time.Duration
}

// Check statuses
const (
	StatusOK       = "ok"
	StatusFail     = "fail"
	StatusSkipped  = "skipped"
	StatusUnknown  = "unknown"
	StatusDegraded = "degraded"
)

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.ProbeTimeout <= 0 {
		d.ProbeTimeout = 2 * time.Second
	}
	h := &handlers{Deps: d, clock: ptime.OrSystem(d.Clock)}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/options", h.options)
}

type handlers struct {
	Deps
	clock ptime.Clock
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"housepricing-api"`
	Started string `json:"started" example:"2025-09-03T13:00:00.000Z"`
	Now     string `json:"now"     example:"2025-09-03T13:05:00.000Z"`
}

// ReadyCheck is the outcome of one probe
type ReadyCheck struct {
	Name   string `json:"name"            example:"pg"`
	Status string `json:"status"          example:"ok"`
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432: connect: connection refused"`
}

// ReadyResponse summarizes readiness. Status is fail when any probe fails,
// degraded when one cannot be verified, else ok
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2025-09-03T13:05:00.000Z"`
}

// ServiceResponse carries the process start and uptime in seconds
type ServiceResponse struct {
	Name    string `json:"name"    example:"housepricing-api"`
	Started string `json:"started" example:"2025-09-03T13:00:00.000Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// OptionsResponse is what a search form needs to render
type OptionsResponse struct {
	HouseTypes []housetype.HouseType `json:"houseTypes"`
	Earliest   string                `json:"earliest" example:"2009K1"`
	Latest     string                `json:"latest"   example:"2025K3"`
	Defaults   filter.Selection      `json:"defaults"`
}

// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(*http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.ServiceName,
		Started: ptime.UTCStamp(h.StartedAt),
		Now:     ptime.UTCStamp(h.clock.Now()),
	}, nil
}

// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok or degraded"
// @Failure 503 {object} ReadyResponse "a backend failed its probe"
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := context.WithTimeout(r.Context(), h.ProbeTimeout)
	defer cancel()

	out := ReadyResponse{Status: StatusOK, Checks: make([]ReadyCheck, 0, len(h.Probes))}
	for _, p := range h.Probes {
		c := probe(ctx, p)
		switch {
		case c.Status == StatusFail:
			out.Status = StatusFail
		case c.Status == StatusUnknown && out.Status == StatusOK:
			out.Status = StatusDegraded
		}
		out.Checks = append(out.Checks, c)
	}
	out.Now = ptime.UTCStamp(h.clock.Now())
	if out.Status == StatusFail {
		return httpkit.Response{Status: http.StatusServiceUnavailable, Body: out}, nil
	}
	return out, nil
}

func probe(ctx context.Context, p Probe) ReadyCheck {
	c := ReadyCheck{Name: p.Name}
	if p.Check == nil {
		c.Status = StatusSkipped
		return c
	}
	pinger, ok := p.Check.(Pinger)
	if !ok {
		c.Status = StatusUnknown
		return c
	}
	if err := pinger.Ping(ctx); err != nil {
		c.Status, c.Error = StatusFail, err.Error()
		return c
	}
	c.Status = StatusOK
	return c
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(*http.Request) (any, error) {
	return version.Info(h.ServiceName), nil
}

// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(*http.Request) (any, error) {
	return ServiceResponse{
		Name:    h.ServiceName,
		Started: ptime.UTCStamp(h.StartedAt),
		Uptime:  int64(h.clock.Now().Sub(h.StartedAt) / time.Second),
	}, nil
}

// @Summary House types, the selectable quarter window and form defaults
// @Tags Meta
// @Produce json
// @Success 200 {object} OptionsResponse "ok"
// @Router /meta/options [get]
func (h *handlers) options(*http.Request) (any, error) {
	now := h.clock.Now()
	return OptionsResponse{
		HouseTypes: housetype.All(),
		Earliest:   quarter.Format(quarter.MinYear, 1),
		Latest:     quarter.Format(now.Year(), quarter.CurrentQuarter(now)),
		Defaults:   filter.Default(),
	}, nil
}
