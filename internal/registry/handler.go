package registry

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	dErrors "legalflow/pkg/domain-errors"
	"legalflow/pkg/platform/httputil"
	"legalflow/pkg/requestcontext"
)

// CRUD is the registry contract the HTTP layer depends on.
type CRUD[T any] interface {
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, id string, rec T) (T, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (T, error)
	List(ctx context.Context) ([]T, error)
}

// Handler serves list/create/get/replace/delete for one entity kind.
type Handler[T any] struct {
	logger *slog.Logger
	svc    CRUD[T]
}

// NewHandler creates a CRUD handler.
func NewHandler[T any](svc CRUD[T], logger *slog.Logger) *Handler[T] {
	return &Handler[T]{svc: svc, logger: logger}
}

// Register registers the CRUD routes on a router already scoped to the
// entity's collection path.
func (h *Handler[T]) Register(r chi.Router) {
	r.Get("/", h.handleList)
	r.Post("/", h.handleCreate)
	r.Get("/{id}", h.handleGet)
	r.Put("/{id}", h.handleReplace)
	r.Delete("/{id}", h.handleDelete)
}

func (h *Handler[T]) handleList(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.List(r.Context())
	if err != nil {
		WriteError(r.Context(), h.logger, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, recs)
}

func (h *Handler[T]) handleCreate(w http.ResponseWriter, r *http.Request) {
	var rec T
	if err := httputil.DecodeJSON(r.Body, &rec); err != nil {
		WriteError(r.Context(), h.logger, w, err)
		return
	}
	created, err := h.svc.Create(r.Context(), rec)
	if err != nil {
		WriteError(r.Context(), h.logger, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler[T]) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(r.Context(), h.logger, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, rec)
}

func (h *Handler[T]) handleReplace(w http.ResponseWriter, r *http.Request) {
	var rec T
	if err := httputil.DecodeJSON(r.Body, &rec); err != nil {
		WriteError(r.Context(), h.logger, w, err)
		return
	}
	updated, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), rec)
	if err != nil {
		WriteError(r.Context(), h.logger, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler[T]) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		WriteError(r.Context(), h.logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// WriteError logs err at a level matching its code and writes the response.
func WriteError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, err error) {
	if logger != nil {
		level := slog.LevelWarn
		if !isClientError(err) {
			level = slog.LevelError
		}
		logger.Log(ctx, level, "request failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
	}
	httputil.WriteError(w, err)
}

func isClientError(err error) bool {
	return dErrors.HasCode(err, dErrors.CodeValidation) ||
		dErrors.HasCode(err, dErrors.CodeBadRequest) ||
		dErrors.HasCode(err, dErrors.CodeNotFound)
}
