// Package swaggerkit serves Swagger UI and the OpenAPI document for the API
package swaggerkit

import (
	"net/http"

	"dollarwords/internal/platform/config"
	phttp "dollarwords/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Mount serves /api/docs when enabled
func Mount(r phttp.Router, cfg config.Conf, enabled bool) {
	if !enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(cfg))
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
