package documents

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"legalflow/internal/registry"
	"legalflow/pkg/platform/httputil"
)

// Generator is the document contract the HTTP layer depends on.
type Generator interface {
	Generate(ctx context.Context, req Request) (Result, error)
}

type Handler struct {
	svc    Generator
	logger *slog.Logger
}

func NewHandler(svc Generator, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// Register registers document routes on a router scoped to /documents.
func (h *Handler) Register(r chi.Router) {
	r.Get("/types", h.handleTypes)
	r.Post("/", h.handleGenerate)
}

func (h *Handler) handleTypes(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, Types)
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := httputil.DecodeJSON(r.Body, &req); err != nil {
		registry.WriteError(r.Context(), h.logger, w, err)
		return
	}
	res, err := h.svc.Generate(r.Context(), req)
	if err != nil {
		registry.WriteError(r.Context(), h.logger, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}
