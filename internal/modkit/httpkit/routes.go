package httpkit

import (
	"net/http"
	"strings"
)

// MountUnder scopes mount to prefix. Middleware applies first, then wrap
// (when non-nil) may replace the scoped router
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, wrap func(Router) Router, mount func(Router)) {
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		if wrap != nil {
			sub = wrap(sub)
		}
		if mount != nil {
			mount(sub)
		}
	})
}

// MountAPI scopes mount to /api/{version} behind the shared stack
func MountAPI(r Router, version string, stack []func(http.Handler) http.Handler, mount func(Router)) {
	MountUnder(r, "/api/"+strings.Trim(version, "/"), stack, nil, mount)
}

// MountAPIV1 is MountAPI for v1
func MountAPIV1(r Router, stack []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, "v1", stack, mount)
}
