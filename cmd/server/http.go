package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/sam-maryland/sleeper-league-hub/internal/api"
)

func httpCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "http",
		Short: "Serve the league views as JSON over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, a *app) error {
				if port == 0 {
					port = a.cfg.HTTPPort
				}
				return serveHTTP(ctx, a, port)
			})
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "Listen port (defaults to HTTP_PORT)")
	return cmd
}

func serveHTTP(ctx context.Context, a *app, port int) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      api.NewRouter(a.service, a.logger),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.WithField("addr", srv.Addr).Info("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.WithError(err).Error("Shutdown error")
		return err
	}
	a.logger.Info("Server stopped")
	return nil
}
