package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"mediconnect/internal/adapters/auth/remote"
	"mediconnect/internal/ports/auth"
	"mediconnect/internal/router"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta la API HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}

			opts := router.Options{
				Logger:   log,
				Location: cfg.Location(),
			}

			if cfg.DBDSN != "" {
				db, err := openDB(cfg)
				if err != nil {
					return err
				}
				defer db.Close()
				opts.DB = db
			}

			// sin verifier => modo dev (X-Debug-User-ID)
			var verifier auth.AuthVerifier
			if cfg.AuthConfigured() {
				v, err := remote.NewVerifier(remote.Config{
					BaseURL: cfg.AuthBaseURL,
					APIKey:  cfg.AuthAPIKey,
					Timeout: cfg.AuthTimeout,
				})
				if err != nil {
					return err
				}
				verifier = v
			} else {
				log.Warn("auth verifier not configured, trusting X-Debug-User-ID", nil)
			}
			opts.AuthVerifier = verifier

			srv := &http.Server{
				Addr:         cfg.Addr(),
				Handler:      router.NewRouter(opts),
				ReadTimeout:  5 * time.Second,
				WriteTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Info("starting server", map[string]any{
					"addr":     cfg.Addr(),
					"timezone": cfg.Location().String(),
				})
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

			log.Info("shutting down", nil)
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
