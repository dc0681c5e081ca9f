// Package api exposes the PDF parser over HTTP.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/MalithGihan/pdfparser-service/internal/ingest"
)

const ServiceName = "pdf-parser"

type Options struct {
	// MaxUploadBytes caps the request body of POST /parse.
	MaxUploadBytes int64
}

// NewRouter wires the health and parse endpoints.
func NewRouter(log zerolog.Logger, ex ingest.Extractor, opts Options) http.Handler {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 64 << 20
	}
	h := &Handler{extractor: ex, maxUpload: opts.MaxUploadBytes}

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(RequestID)
	r.Use(AccessLog(log))
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", h.Health)
	r.Post("/parse", h.Parse)
	return r
}
