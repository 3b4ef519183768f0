// Package server exposes the reporting pipeline over a small JSON API:
// option lists from the registry feed, spreadsheet upload and processing,
// and ad hoc embed checks.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/showline/report-cli/internal/config"
	"github.com/showline/report-cli/internal/embed"
	"github.com/showline/report-cli/internal/fetcher"
	"github.com/showline/report-cli/internal/model"
	"github.com/showline/report-cli/internal/registry"
)

// ReferenceFetcher is the slice of the registry client the handlers use.
type ReferenceFetcher interface {
	FetchReference(ctx context.Context) ([]model.ReferenceRecord, error)
}

// URLChecker is the slice of the embed checker the handlers use.
type URLChecker interface {
	CheckURLs(ctx context.Context, urls []string) map[string]model.Classification
}

// Server wires the pipeline's collaborators behind the HTTP API.
type Server struct {
	cfg         *config.Config
	registry    ReferenceFetcher
	pageFetcher embed.PageFetcher
	checker     URLChecker
}

// New builds a Server from configuration.
func New(cfg *config.Config) *Server {
	f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		Timeout: time.Duration(cfg.Registry.TimeoutSecs) * time.Second,
	})

	checkTimeout := time.Duration(cfg.Check.TimeoutSecs) * time.Second
	pageFetcher := embed.NewHTTPPageFetcher(checkTimeout, cfg.Check.UserAgent, cfg.Check.MaxBodyBytes)

	return &Server{
		cfg:         cfg,
		registry:    registry.NewClient(f, cfg.Registry),
		pageFetcher: pageFetcher,
		checker:     embed.NewChecker(pageFetcher, cfg.Check.Concurrency, checkTimeout),
	}
}

// Router assembles the chi router with request-ID, logging, and CORS
// middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(logRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/options", s.handleOptions)
		r.Post("/process", s.handleProcess)
		r.Post("/check-urls", s.handleCheckURLs)
	})

	return r
}
