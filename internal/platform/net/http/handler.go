package http

import (
	"net/http"

	pnet "housepricing/internal/platform/net"
	"housepricing/internal/platform/net/http/bind"
)

// Envelope is the response body type, for API docs
type Envelope = pnet.Envelope

// Response lets a handler choose a non 200 status or add headers
type Response struct {
	Status int
	Body   any
	Header http.Header
}

// Created is a 201 Response
func Created(data any) Response { return Response{Status: http.StatusCreated, Body: data} }

// Adapt turns a value returning handler into a Handler. A nil error writes
// the value in a 200 envelope, or the Response as given; an error writes
// the failure envelope its code maps to
func Adapt(fn func(*http.Request) (any, error)) Handler {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := fn(r)
		reply(w, r, out, err)
	}
}

// AdaptJSON is Adapt for handlers taking a JSON body. The body is decoded
// and validated into T first; failures never reach fn
func AdaptJSON[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Adapt(func(r *http.Request) (any, error) {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return nil, err
		}
		return fn(r, in)
	})
}

func reply(w http.ResponseWriter, r *http.Request, out any, err error) {
	reqID := pnet.RequestID(r.Context())
	if err != nil {
		pnet.Write(w, pnet.Failure(err, reqID))
		return
	}
	resp, ok := out.(Response)
	if !ok {
		resp = Response{Body: out}
	}
	for k, vs := range resp.Header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	if resp.Status == 0 {
		resp.Status = http.StatusOK
	}
	pnet.Write(w, pnet.Success(resp.Status, resp.Body, reqID))
}
