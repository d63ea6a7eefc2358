package registryapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/margined-protocol/mrgnd-perpetuals/logger"
)

// Serve runs handler on addr until ctx is done.
// The returned channel yields a listen or shutdown error and is closed once the server stops.
func Serve(ctx context.Context, addr string, handler http.Handler, log logger.Logger) <-chan error {
	log.Info("Starting registry server", logger.WithField("addr", addr))
	errChan := make(chan error, 1)
	httpServer := http.Server{
		Addr:    addr,
		Handler: handler,
	}
	done := make(chan struct{})

	// shutdown server on context done
	go func() {
		defer close(errChan)
		select {
		case <-ctx.Done():
			log.Info("shutdown signal received")
			if err := httpServer.Shutdown(context.Background()); err != nil {
				errChan <- err
			}
			<-done
			log.Info("shutdown completed")
		case <-done:
		}
	}()

	go func() {
		defer close(done)
		err := httpServer.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("server closed")
			return
		}
		errChan <- fmt.Errorf("registry server failed: %w", err)
	}()
	return errChan
}
