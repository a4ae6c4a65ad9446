// Package swaggerkit mounts the Swagger UI and the decorated OpenAPI document
package swaggerkit

import (
	"net/http"

	phttp "housepricing/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Options configure the docs mount
type Options struct {
	Enabled bool
	// BasePath is advertised as the server url, e.g. /api/v1
	BasePath string
	// TitleSuffix is appended to the document title, e.g. "(staging)"
	TitleSuffix string
}

// Mount serves the UI at /api/docs/ and the document at /api/docs/doc.json
func Mount(r phttp.Router, o Options) {
	if !o.Enabled {
		return
	}
	if o.BasePath == "" {
		o.BasePath = "/api/v1"
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(o))
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
