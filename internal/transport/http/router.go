package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"legalflow/internal/platform/metrics"
	"legalflow/internal/platform/middleware"
	"legalflow/pkg/platform/httputil"
)

// Registrar mounts a feature's routes on a router scoped to its path.
type Registrar interface {
	Register(r chi.Router)
}

// Routes are the feature handlers exposed under /api.
type Routes struct {
	Clients      Registrar
	Forms        func(r chi.Router)
	Cases        Registrar
	Lawyers      Registrar
	Partners     Registrar
	Suppliers    Registrar
	Holidays     Registrar
	ProcessTypes Registrar
	Documents    Registrar
	Reports      Registrar
}

// Deps are the ambient pieces of the router.
type Deps struct {
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	AllowedOrigins []string
}

// NewRouter wires every public endpoint behind the shared middleware chain.
// Nil routes are skipped.
func NewRouter(routes Routes, deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.Logger(deps.Logger))
	if deps.Metrics != nil {
		r.Use(middleware.Latency(deps.Metrics))
	}
	r.Use(middleware.CORS(deps.AllowedOrigins))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if deps.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(api chi.Router) {
		mount(api, "/clients", routes.Clients)
		mount(api, "/cases", routes.Cases)
		mount(api, "/lawyers", routes.Lawyers)
		mount(api, "/partners", routes.Partners)
		mount(api, "/suppliers", routes.Suppliers)
		mount(api, "/holidays", routes.Holidays)
		mount(api, "/process-types", routes.ProcessTypes)
		mount(api, "/documents", routes.Documents)
		mount(api, "/reports", routes.Reports)
		if routes.Forms != nil {
			api.Route("/forms", routes.Forms)
		}
	})
	return r
}

func mount(r chi.Router, path string, h Registrar) {
	if h == nil {
		return
	}
	r.Route(path, h.Register)
}
