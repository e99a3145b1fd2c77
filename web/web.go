// Package web serves plots, toroidal model exports and stellarator build
// slices over HTTP. Request bodies are YAML documents.
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/svalinn/radialbuild/config"
)

var log = config.NamedLogger("web")

const shutdownTimeout = 5 * time.Second

// NewRouter ...
func NewRouter() http.Handler {
	return setupRoutes(&handler{})
}

// ListenAndServe serves the API on conf.Address until ctx is done.
func ListenAndServe(ctx context.Context, conf *config.Config) error {
	server := &http.Server{
		Addr:              conf.Address,
		Handler:           NewRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infof("Listening on %s", conf.Address)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("Shutting down")
		return server.Shutdown(shutdownCtx)
	}
}
