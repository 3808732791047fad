package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"legalflow/internal/cases/models"
	"legalflow/internal/registry"
	"legalflow/pkg/platform/httputil"
)

// Service defines the case operations the handler needs beyond plain CRUD.
type Service interface {
	ListProcesses(ctx context.Context, caseID string) ([]models.Process, error)
	CreateProcess(ctx context.Context, caseID string, p models.Process) (models.Process, error)
	UpdateProcess(ctx context.Context, caseID, id string, p models.Process) (models.Process, error)
	DeleteProcess(ctx context.Context, caseID, id string) error
}

// Handler serves cases and their nested processes.
type Handler struct {
	crud      *registry.Handler[models.Case]
	processes Service
	logger    *slog.Logger
}

// New creates a case Handler.
func New(cases registry.CRUD[models.Case], processes Service, logger *slog.Logger) *Handler {
	return &Handler{
		crud:      registry.NewHandler(cases, logger),
		processes: processes,
		logger:    logger,
	}
}

// Register registers case and process routes on a router scoped to /cases.
func (h *Handler) Register(r chi.Router) {
	h.crud.Register(r)
	r.Get("/{id}/processes", h.handleListProcesses)
	r.Post("/{id}/processes", h.handleCreateProcess)
	r.Put("/{id}/processes/{pid}", h.handleReplaceProcess)
	r.Delete("/{id}/processes/{pid}", h.handleDeleteProcess)
}

func (h *Handler) handleListProcesses(w http.ResponseWriter, r *http.Request) {
	list, err := h.processes.ListProcesses(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		registry.WriteError(r.Context(), h.logger, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) handleCreateProcess(w http.ResponseWriter, r *http.Request) {
	var p models.Process
	if err := httputil.DecodeJSON(r.Body, &p); err != nil {
		registry.WriteError(r.Context(), h.logger, w, err)
		return
	}
	created, err := h.processes.CreateProcess(r.Context(), chi.URLParam(r, "id"), p)
	if err != nil {
		registry.WriteError(r.Context(), h.logger, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleReplaceProcess(w http.ResponseWriter, r *http.Request) {
	var p models.Process
	if err := httputil.DecodeJSON(r.Body, &p); err != nil {
		registry.WriteError(r.Context(), h.logger, w, err)
		return
	}
	updated, err := h.processes.UpdateProcess(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "pid"), p)
	if err != nil {
		registry.WriteError(r.Context(), h.logger, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleDeleteProcess(w http.ResponseWriter, r *http.Request) {
	if err := h.processes.DeleteProcess(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "pid")); err != nil {
		registry.WriteError(r.Context(), h.logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
