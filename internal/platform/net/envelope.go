package net

import (
	"encoding/json"
	"net/http"

	perr "housepricing/internal/platform/errors"
)

// Envelope is the body of every API response. Data is set on success,
// Code and Error on failure
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      *perr.Wire     `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// Success wraps data with status
func Success(status int, data any, reqID string) Envelope {
	return Envelope{
		StatusCode: status,
		Status:     http.StatusText(status),
		RequestID:  reqID,
		Data:       data,
	}
}

// Failure wraps err; the status follows its code. A nil err is an empty 200
func Failure(err error, reqID string) Envelope {
	if err == nil {
		return Success(http.StatusOK, nil, reqID)
	}
	status := perr.HTTPStatus(err)
	wire := perr.WireFrom(err)
	return Envelope{
		StatusCode: status,
		Status:     http.StatusText(status),
		Code:       wire.Code,
		Error:      &wire,
		RequestID:  reqID,
	}
}

// Write sends env as JSON with env.StatusCode, echoing the request id header
func Write(w http.ResponseWriter, env Envelope) {
	h := w.Header()
	h.Set("Content-Type", "application/json; charset=utf-8")
	if env.RequestID != "" {
		h.Set("X-Request-ID", env.RequestID)
	}
	w.WriteHeader(env.StatusCode)
	_ = json.NewEncoder(w).Encode(env)
}
