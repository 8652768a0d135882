package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tavsec/gin-healthcheck/checks"

	"ctoup.com/devconnect/pkg/shared/server/core"
)

const shutdownTimeout = 10 * time.Second

// RunRESTServer serves the API on address until ctx is canceled, then drains in-flight requests.
func RunRESTServer(ctx context.Context, deps core.Dependencies, address string, additionalChecks ...checks.Check) error {
	serverConfig := core.NewServerConfig(deps, additionalChecks...)

	srv := &http.Server{
		Addr:              address,
		Handler:           serverConfig.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Run the server in a goroutine so we can listen for ctx cancellation
	serverErrorChan := make(chan error, 1)
	go func() {
		log.Info().Str("address", address).Msg("REST server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrorChan <- err
		}
		close(serverErrorChan)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("Context canceled, shutting down REST server...")
	case err := <-serverErrorChan:
		if err != nil {
			log.Error().Err(err).Msg("Server error")
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		return err
	}
	log.Info().Msg("REST server stopped")
	return nil
}
