// Package httpapi exposes a cronparser.Parser over HTTP, as a read-only JSON API.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/zalgonoise/cfg"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	cronparser "github.com/TobiAdeniyi/cron-expression-parser"
	"github.com/TobiAdeniyi/cron-expression-parser/cronerr"
	"github.com/TobiAdeniyi/cron-expression-parser/log"
	"github.com/TobiAdeniyi/cron-expression-parser/metrics"
)

const (
	// ParsePath is the route serving cron expression parsing, taking the expression in the `expr` query parameter.
	ParsePath = "/v1/parse"

	exprParam       = "expr"
	contentType     = "application/json"
	readTimeout     = 5 * time.Second
	shutdownTimeout = 10 * time.Second

	kindFormat      = "format"
	kindUnsupported = "unsupported"
	kindInternal    = "internal"
)

// Metrics describes the actions that register HTTP API metrics.
type Metrics interface {
	// IncAPIRequests increases the count of API requests, labeled with the response status code.
	IncAPIRequests(ctx context.Context, code int)
}

// ErrorResponse is the body of a failed request.
type ErrorResponse struct {
	Error  string `json:"error"`
	Kind   string `json:"kind"`
	Reason string `json:"reason,omitempty"`
	Field  string `json:"field,omitempty"`
	Value  string `json:"value,omitempty"`
}

// Server serves a cronparser.Parser over HTTP.
type Server struct {
	parser  cronparser.Parser
	metrics Metrics
	logger  *slog.Logger
	tracer  trace.Tracer

	server *http.Server
}

// New creates a Server for the input cronparser.Parser, configured with the input cfg.Option(s).
//
// A nil Parser is replaced with the default cronparser.New() Parser.
func New(p cronparser.Parser, options ...cfg.Option[Config]) *Server {
	config := cfg.Set(defaultConfig(), options...)

	if p == nil {
		p = cronparser.New()
	}

	s := &Server{
		parser:  p,
		metrics: config.metrics,
		logger:  slog.New(config.handler),
		tracer:  config.tracer,
	}

	s.server = &http.Server{
		Addr:              config.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readTimeout,
	}

	return s
}

// Handler returns the http.Handler routing the API's endpoints.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+ParsePath, s.parse)

	return mux
}

// ListenAndServe serves the API until the input context is canceled, gracefully shutting down the server.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.InfoContext(ctx, "serving cron parser API", slog.String("addr", s.server.Addr))

		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return err
		}

		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	}
}

func (s *Server) parse(w http.ResponseWriter, r *http.Request) {
	ctx, span := s.tracer.Start(r.Context(), "Server.Parse")
	defer span.End()

	expr := r.URL.Query().Get(exprParam)

	sched, err := s.parser.Parse(ctx, expr)
	if err != nil {
		code, body := toErrorResponse(err)

		span.SetAttributes(attribute.Int("status_code", code))
		s.logger.InfoContext(ctx, "rejected cron expression",
			slog.String("expression", expr),
			slog.Int("status_code", code),
			slog.String("reason", body.Reason),
		)

		s.write(ctx, w, code, body)

		return
	}

	span.SetAttributes(attribute.Int("status_code", http.StatusOK))
	s.write(ctx, w, http.StatusOK, sched)
}

func (s *Server) write(ctx context.Context, w http.ResponseWriter, code int, body any) {
	s.metrics.IncAPIRequests(ctx, code)

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.WarnContext(ctx, "failed to write response", slog.String("error", err.Error()))
	}
}

func toErrorResponse(err error) (int, ErrorResponse) {
	res := ErrorResponse{
		Error: err.Error(),
		Kind:  kindInternal,
	}

	var e *cronerr.Error
	if errors.As(err, &e) {
		res.Reason = e.Reason.String()
		res.Field = e.Field
		res.Value = e.Value
	}

	switch {
	case errors.Is(err, cronerr.ErrFormat):
		res.Kind = kindFormat

		return http.StatusBadRequest, res
	case errors.Is(err, cronerr.ErrUnsupportedFeature):
		res.Kind = kindUnsupported

		return http.StatusUnprocessableEntity, res
	default:
		return http.StatusInternalServerError, res
	}
}

func defaultConfig() Config {
	return Config{
		addr:    defaultAddr,
		handler: log.NoOp(),
		metrics: metrics.NoOp(),
		tracer:  noop.NewTracerProvider().Tracer("httpapi"),
	}
}
