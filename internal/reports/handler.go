package reports

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"legalflow/internal/registry"
	dErrors "legalflow/pkg/domain-errors"
	"legalflow/pkg/platform/httputil"
	"legalflow/pkg/requestcontext"
)

type Handler struct {
	svc    *Service
	logger *slog.Logger
}

func NewHandler(svc *Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// Register registers report routes on a router scoped to /reports.
func (h *Handler) Register(r chi.Router) {
	r.Get("/birthdays", h.handleBirthdays)
	r.Get("/summary", h.handleSummary)
}

// handleBirthdays defaults to the current month when ?month is absent.
func (h *Handler) handleBirthdays(w http.ResponseWriter, r *http.Request) {
	month := requestcontext.Now(r.Context()).Month()
	if raw := r.URL.Query().Get("month"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			registry.WriteError(r.Context(), h.logger, w, dErrors.New(dErrors.CodeBadRequest, "month must be a number between 1 and 12"))
			return
		}
		month = time.Month(n)
	}
	list, err := h.svc.Birthdays(r.Context(), month)
	if err != nil {
		registry.WriteError(r.Context(), h.logger, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.Summary(r.Context())
	if err != nil {
		registry.WriteError(r.Context(), h.logger, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, sum)
}
