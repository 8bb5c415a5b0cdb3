package httpserver

import (
	"net/http"
	"time"

	"protein-tracker/internal/config"
)

// New builds the HTTP server. The write deadline leaves room for a handler
// that hits the request timeout to still send its error response.
func New(cfg config.Config, handler http.Handler) *http.Server {
	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	if cfg.RequestTimeout > 0 {
		srv.WriteTimeout = cfg.RequestTimeout + 5*time.Second
	}
	return srv
}
