package main

import (
	"context"
	"discovery/internal/api"
	"discovery/internal/api/handler/v1handler"
	"discovery/internal/catalog"
	"discovery/internal/config"
	"discovery/internal/feed"
	"discovery/internal/proximity"
	"discovery/internal/suggestions"
	"discovery/internal/worker"
	"discovery/pkg/curator"
	"discovery/pkg/curator/llm"
	"discovery/pkg/logger"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newCurator returns the language-model curator, or nil when it is disabled.
func newCurator(ctx context.Context, cfg *config.Config) curator.Curator {
	if !cfg.Curator.Enabled {
		logger.Info(ctx, "language model curator is disabled, using deterministic suggestions")

		return nil
	}

	return llm.New(&http.Client{Timeout: cfg.Curator.Timeout}, llm.Options{
		BaseURL:           cfg.Curator.BaseURL,
		Model:             cfg.Curator.Model,
		APIKey:            cfg.Curator.APIKey,
		Timeout:           cfg.Curator.Timeout,
		RequestsPerMinute: cfg.Curator.RequestsPerMinute,
		FailureThreshold:  cfg.Curator.FailureThreshold,
		OpenTimeout:       cfg.Curator.OpenTimeout,
	})
}

func setupServer(
	ctx context.Context,
	cfg *config.Config,
	deps api.Deps,
) func(ctx context.Context) {
	server, err := api.NewServer(ctx, deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			suggester := suggestions.New(strg, newCurator(ctx, cfg), suggestions.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, strg.Pool, suggester, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Feed:        feed.New(strg, feed.NewServiceOptions(cfg)),
					Proximity:   proximity.New(strg, proximity.NewOptions(cfg)),
					Suggestions: suggester,
					Catalog:     catalog.New(strg, suggester),
				},
				Storage:     strg,
				RiverClient: riverClient,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers gracefully", zap.Error(err))
			}
		},
	}

	return cmd
}
