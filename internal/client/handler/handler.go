package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"legalflow/internal/client/form"
	"legalflow/internal/client/models"
	"legalflow/internal/registry"
	"legalflow/pkg/platform/httputil"
)

// Handler serves the client registry and the client form composer.
type Handler struct {
	crud   *registry.Handler[models.Client]
	logger *slog.Logger
}

// New creates a client Handler.
func New(clients registry.CRUD[models.Client], logger *slog.Logger) *Handler {
	return &Handler{
		crud:   registry.NewHandler(clients, logger),
		logger: logger,
	}
}

// Register registers the client CRUD routes on a router scoped to /clients.
func (h *Handler) Register(r chi.Router) {
	h.crud.Register(r)
}

// RegisterForms registers the form composer on a router scoped to /forms.
func (h *Handler) RegisterForms(r chi.Router) {
	r.Post("/client", h.handleComposeForm)
}

// handleComposeForm lays out the submitted client form with every
// validation error attached to its field. It never stores anything.
func (h *Handler) handleComposeForm(w http.ResponseWriter, r *http.Request) {
	var in models.Input
	if err := httputil.DecodeJSON(r.Body, &in); err != nil {
		registry.WriteError(r.Context(), h.logger, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, form.Compose(in))
}
