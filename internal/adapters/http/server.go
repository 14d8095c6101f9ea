// Package http exposes card rendering over a JSON API.
package http

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cardwright/cardwright/internal/observability"
	"github.com/cardwright/cardwright/pkg/builder"
	"github.com/cardwright/cardwright/pkg/domain"
	"github.com/cardwright/cardwright/pkg/loader"
	"github.com/cardwright/cardwright/pkg/ports"
)

// maxDefinitionBytes bounds the accepted request body.
const maxDefinitionBytes = 1 << 20

// Config carries the server collaborators.
type Config struct {
	Logger     *slog.Logger
	Translator ports.Translator // optional; required only for ?lang requests
	Registry   *prometheus.Registry
}

// Server renders card definitions received over HTTP.
type Server struct {
	logger     *slog.Logger
	translator ports.Translator
	registry   *prometheus.Registry
	metrics    *observability.Metrics
}

// NewHandler creates the HTTP handler for the card rendering API.
func NewHandler(cfg Config) http.Handler {
	s := &Server{
		logger:     cfg.Logger,
		translator: cfg.Translator,
		registry:   cfg.Registry,
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}
	s.metrics = observability.New(s.registry)

	r := chi.NewRouter()
	r.Post("/cards/render", s.renderCard)
	r.Get("/healthz", s.health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// renderCard handles POST /cards/render: the body is a YAML card definition,
// the optional lang query parameter requests translation before serializing.
func (s *Server) renderCard(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxDefinitionBytes))
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	def, err := loader.Parse(body)
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid definition: %v", err), http.StatusBadRequest)
		return
	}

	opts := []builder.Option{
		builder.WithLogger(s.logger),
		builder.WithLifecycleHooks(s.metrics.Hooks()),
	}
	if s.translator != nil {
		opts = append(opts, builder.WithTranslator(s.translator))
	}

	card, err := def.NewCard(opts...)
	if err != nil {
		if errors.Is(err, domain.ErrContainerMismatch) {
			s.logger.Debug("definition routes to a missing container", "error", err)
		}
		http.Error(w, fmt.Sprintf("build error: %v", err), http.StatusBadRequest)
		return
	}

	if lang := r.URL.Query().Get("lang"); lang != "" {
		if err := card.Translate(r.Context(), lang); err != nil {
			s.logger.Warn("translation failed", "lang", lang, "error", err)
			http.Error(w, fmt.Sprintf("translate error: %v", err), http.StatusBadGateway)
			return
		}
	}

	out, err := card.JSON()
	if err != nil {
		http.Error(w, fmt.Sprintf("serialize error: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(out)
}
