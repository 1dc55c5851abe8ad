package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlchart-go/internal/config"
	"github.com/ukaji3/xlchart-go/internal/handlers"
	"github.com/ukaji3/xlchart-go/internal/logging"
	"github.com/ukaji3/xlchart-go/internal/metrics"
	"github.com/ukaji3/xlchart-go/internal/router"
	"github.com/ukaji3/xlchart-go/internal/session"
)

func newServeCmd(c *cli) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if port != "" {
				cfg.Port = port
			}
			logger := c.logger
			if !cmd.Flags().Changed("log-level") && cfg.LogLevel != "" {
				level, err := logging.ParseLevel(cfg.LogLevel)
				if err != nil {
					return err
				}
				logger = logging.New(level)
			}

			store, closeStore, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			m := metrics.New()
			h := handlers.New(store, m, logger, handlers.Options{
				DefaultTitle:   cfg.DefaultTitle,
				ChartWidth:     cfg.ChartWidth,
				ChartHeight:    cfg.ChartHeight,
				MaxUploadBytes: cfg.MaxUploadBytes(),
				SessionTTL:     cfg.SessionTTL,
			})

			server := &http.Server{
				Addr:         fmt.Sprintf(":%s", cfg.Port),
				Handler:      router.New(h, m.Handler()),
				ReadTimeout:  60 * time.Second,
				WriteTimeout: 60 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			// Graceful shutdown
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				logger.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()
				server.Shutdown(shutdownCtx)
			}()

			logger.Info("xlchart ready", "addr", "http://localhost:"+cfg.Port, "env", cfg.Env)
			if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "Listen port (default: $PORT or 8080)")
	return cmd
}

// openStore picks the Redis store when REDIS_URL is set, else the memory store.
func openStore(ctx context.Context, cfg *config.Config) (session.Store, func(), error) {
	if cfg.RedisURL == "" {
		return session.NewMemoryStore(), func() {}, nil
	}

	store, err := session.NewRedisStore(ctx, cfg.RedisURL, session.WithTTL(cfg.SessionTTL))
	if err != nil {
		return nil, nil, fmt.Errorf("redis connection failed: %w", err)
	}
	return store, func() { store.Close() }, nil
}
