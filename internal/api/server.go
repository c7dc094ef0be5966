// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the discovery service.
package api

import (
	"context"
	"discovery/internal/api/handler/v1handler"
	"discovery/internal/config"
	"discovery/pkg/controller"
	"discovery/pkg/logger"
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riverqueue/river"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"riverqueue.com/riverui"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// SecHandlerOptions configures the bearer authentication of v1 endpoints.
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// RateLimit is the per-user request budget per minute; zero disables it.
	RateLimit int
	// AllowedOrigins is passed to the CORS middleware.
	AllowedOrigins []string
	// RiverUIEnabled mounts the job dashboard under /riverui/.
	RiverUIEnabled bool
}

// NewOptions constructs an Options value from the provided application configuration.
// It maps HTTP server-related settings from config.Config to the Options used by the API server.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		RateLimit:         cfg.HTTP.RateLimit,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
		RiverUIEnabled:    cfg.HTTP.RiverUIEnabled,
	}
}

// readinessTimeout bounds the dependency checks of /readyz.
const readinessTimeout = 2 * time.Second

type Deps struct {
	v1handler.Deps

	// Storage is pinged by the readiness probe.
	Storage controller.Pinger

	// RiverClient backs the job dashboard. It may be nil when the dashboard
	// is disabled.
	RiverClient *river.Client[pgx.Tx]
}

// timeoutBody is written by http.TimeoutHandler.
const timeoutBody = `{"code":"TIMEOUT","message":"request timed out"}`

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - liveness and readiness probes
// - Prometheus metrics endpoint (MetricsPath)
// - OpenTelemetry metrics exporter (Prometheus)
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes behind bearer authentication and per-user rate limiting
// - pprof endpoints for profiling
// - the River job dashboard when enabled
// It also wraps the router with CORS and logging middlewares and applies a request timeout.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	r := chi.NewRouter()
	r.Use(controller.WithLogger, controller.CORS(opts.AllowedOrigins), chimiddleware.Recoverer)

	// probes
	r.Get("/healthz", controller.Liveness)
	var pingers []controller.Pinger
	if deps.Storage != nil {
		pingers = append(pingers, deps.Storage)
	}
	r.Get("/readyz", controller.Readiness(readinessTimeout, pingers...))

	// prometheus metrics server
	r.Handle(opts.MetricsPath, promhttp.Handler())

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	withMetrics, err := controller.WithMetrics(mp.Meter("discovery/api"))
	if err != nil {
		return nil, fmt.Errorf("could not create metrics middleware: %w", err)
	}

	// v1 specs file
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})

	// v1 api
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	v1 := v1handler.New(deps.Deps)
	r.Route("/v1", func(r chi.Router) {
		// swagger playground
		r.Handle("/docs/*", v5emb.New(
			"Denver Discovery Service",
			"/specs/v1.yaml",
			"/v1/docs/",
		))

		r.Group(func(r chi.Router) {
			r.Use(withMetrics, secHandler.Middleware(v1))
			if opts.RateLimit > 0 {
				r.Use(v1.RateLimit(opts.RateLimit))
			}
			v1.Routes(r)
		})
	})

	// pprof
	r.Mount("/debug/pprof", controller.Pprof())

	// river dashboard
	if opts.RiverUIEnabled && deps.RiverClient != nil {
		uiHandler, err := riverui.NewHandler(&riverui.HandlerOpts{
			Endpoints: riverui.NewEndpoints(deps.RiverClient, nil),
			Logger:    logger.Slog(ctx),
			Prefix:    "/riverui",
		})
		if err != nil {
			return nil, fmt.Errorf("could not create river ui handler: %w", err)
		}
		if err := uiHandler.Start(ctx); err != nil {
			return nil, fmt.Errorf("could not start river ui handler: %w", err)
		}
		r.Mount("/riverui", uiHandler)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           http.TimeoutHandler(r, opts.RequestTimeout, timeoutBody),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
