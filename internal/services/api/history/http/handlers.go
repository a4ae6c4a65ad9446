// Package http provides http transport for search history
package http

import (
	stdhttp "net/http"
	"strconv"

	"housepricing/internal/core/filter"
	"housepricing/internal/modkit/httpkit"
	perr "housepricing/internal/platform/errors"
	"housepricing/internal/platform/net/http/bind"
	"housepricing/internal/services/api/history/domain"
	svc "housepricing/internal/services/api/history/service"
)

// Register mounts the router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.list)
	httpkit.PostJSON[filter.Selection](r, "/", h.append)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /history History historyList
// @Summary Saved searches, oldest first
// @Tags History
// @Produce json
// @Param limit query int false "max entries (1..500)"
// @Success 200 {array} domain.Entry "ok"
// @Failure 400 {object} httpkit.Envelope "bad limit"
// @Router /history [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	var in domain.ListInput
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, perr.WithField(perr.New(perr.ErrorCodeValidation, "limit must be a number"), "limit")
		}
		in.Limit = n
	}
	if err := bind.Validate(in); err != nil {
		return nil, err
	}
	return h.svc.List(r.Context(), in), nil
}

// swagger:route POST /history History historyAppend
// @Summary Save a search
// @Tags History
// @Accept json
// @Produce json
// @Param payload body filter.Selection true "Search to save"
// @Success 201 {object} domain.Entry "saved"
// @Failure 503 {object} httpkit.Envelope "history storage unavailable"
// @Router /history [post]
func (h *handlers) append(r *stdhttp.Request, in filter.Selection) (any, error) {
	e, err := h.svc.Append(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(e), nil
}
