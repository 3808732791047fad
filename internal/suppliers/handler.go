package suppliers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"legalflow/internal/registry"
	"legalflow/pkg/platform/httputil"
)

// Handler serves suppliers and their read-only expenses.
type Handler struct {
	crud     *registry.Handler[Supplier]
	expenses *Expenses
	logger   *slog.Logger
}

func NewHandler(suppliers registry.CRUD[Supplier], expenses *Expenses, logger *slog.Logger) *Handler {
	return &Handler{
		crud:     registry.NewHandler(suppliers, logger),
		expenses: expenses,
		logger:   logger,
	}
}

// Register registers supplier routes on a router scoped to /suppliers.
func (h *Handler) Register(r chi.Router) {
	h.crud.Register(r)
	r.Get("/{id}/expenses", h.handleListExpenses)
}

func (h *Handler) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	list, err := h.expenses.BySupplier(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		registry.WriteError(r.Context(), h.logger, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, list)
}
