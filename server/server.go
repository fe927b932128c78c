// Package server exposes sinspline models over HTTP: an HTML page with the
// parameter form and figure, a JSON API, the bare SVG figure, Prometheus
// metrics and a health probe.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/katalvlaran/sinspline/config"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sgostarter/i/l"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Server serves one configuration.
type Server struct {
	cfg     *config.Config
	logger  l.Wrapper
	models  *ModelCache
	handler http.Handler
}

// New validates cfg and wires the routes. A nil logger discards output.
func New(cfg *config.Config, logger l.Wrapper) (*Server, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mode, err := cfg.Mode()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	reg := prometheus.NewRegistry()
	m := newMetrics(reg)

	s := &Server{
		cfg:    cfg,
		logger: logger.WithFields(l.StringField(l.ClsKey, "Server")),
		models: newModelCache(cfg.CacheTTL, mode, logger, m),
	}

	r := mux.NewRouter()
	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/api/spline", s.handleSpline).Methods(http.MethodGet)
	r.HandleFunc("/figure.svg", s.handleFigure).Methods(http.MethodGet)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	s.handler = logRequests(gzhttp.GzipHandler(r), s.logger, m)

	return s, nil
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.handler }

// Models returns the model cache.
func (s *Server) Models() *ModelCache { return s.models }

// Run listens on the configured address until ctx is done, then shuts down
// within ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Listen,
		Handler:      s.handler,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithFields(l.StringField("listen", s.cfg.Listen)).Info("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	s.logger.Info("stopped")

	return nil
}
