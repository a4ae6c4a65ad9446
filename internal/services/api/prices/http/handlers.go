// Package http provides http transport for price searches
package http

import (
	stdhttp "net/http"

	"housepricing/internal/core/filter"
	"housepricing/internal/core/urlstate"
	"housepricing/internal/modkit/httpkit"
	"housepricing/internal/platform/net/http/bind"
	svc "housepricing/internal/services/api/prices/service"
)

// Register mounts the router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[filter.Selection](r, "/search", h.search)
	httpkit.Get(r, "/search", h.replay)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /prices/search Prices pricesSearch
// @Summary Square meter prices per house type and quarter
// @Tags Prices
// @Accept json
// @Produce json
// @Param payload body filter.Selection true "House types and quarter range"
// @Success 200 {object} domain.SearchResult "chart data"
// @Failure 400 {object} httpkit.Envelope "malformed selection"
// @Failure 422 {object} httpkit.Envelope "range out of bounds, in the future or reversed"
// @Failure 502 {object} httpkit.Envelope "malformed upstream response"
// @Failure 503 {object} httpkit.Envelope "upstream unavailable"
// @Router /prices/search [post]
func (h *handlers) search(r *stdhttp.Request, in filter.Selection) (any, error) {
	return h.svc.Search(r.Context(), in)
}

// swagger:route GET /prices/search Prices pricesReplay
// @Summary Replay a shared search from query parameters
// @Description Incomplete parameters fall back to the default selection
// @Tags Prices
// @Produce json
// @Param start query string false "first quarter, YYYYKQ"
// @Param end query string false "last quarter, YYYYKQ"
// @Param houseTypes query string false "comma separated codes, e.g. 00,02"
// @Success 200 {object} domain.SearchResult "chart data"
// @Failure 400 {object} httpkit.Envelope "malformed selection"
// @Failure 422 {object} httpkit.Envelope "range out of bounds, in the future or reversed"
// @Failure 502 {object} httpkit.Envelope "malformed upstream response"
// @Failure 503 {object} httpkit.Envelope "upstream unavailable"
// @Router /prices/search [get]
func (h *handlers) replay(r *stdhttp.Request) (any, error) {
	sel, fromURL := urlstate.DecodeOrDefault(r.URL.Query())
	if err := bind.Validate(sel); err != nil {
		return nil, err
	}
	res, err := h.svc.Search(r.Context(), sel)
	if err != nil {
		return nil, err
	}
	res.FromURL = fromURL
	return res, nil
}
