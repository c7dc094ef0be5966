// Package controller contains HTTP middlewares and helper handlers shared by
// the API server.
//
// Middlewares: CORS, WithLogger (request ID and access log) and WithMetrics
// (OpenTelemetry request counters). Handlers: Pprof and Readiness.
package controller
