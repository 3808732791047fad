// Package app wires the registries, services and HTTP server into an fx
// application.
package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	casehandler "legalflow/internal/cases/handler"
	casemodels "legalflow/internal/cases/models"
	caseservice "legalflow/internal/cases/service"
	clienthandler "legalflow/internal/client/handler"
	clientmodels "legalflow/internal/client/models"
	"legalflow/internal/documents"
	"legalflow/internal/documents/textgen"
	"legalflow/internal/lawyers"
	"legalflow/internal/partners"
	"legalflow/internal/platform/config"
	"legalflow/internal/platform/httpserver"
	"legalflow/internal/platform/metrics"
	"legalflow/internal/registry"
	"legalflow/internal/reports"
	"legalflow/internal/seed"
	"legalflow/internal/settings"
	"legalflow/internal/suppliers"
	httptransport "legalflow/internal/transport/http"
)

type (
	clientService      = registry.Service[clientmodels.Client, *clientmodels.Client]
	lawyerService      = registry.Service[lawyers.Lawyer, *lawyers.Lawyer]
	partnerService     = registry.Service[partners.Partner, *partners.Partner]
	supplierService    = registry.Service[suppliers.Supplier, *suppliers.Supplier]
	holidayService     = registry.Service[settings.Holiday, *settings.Holiday]
	processTypeService = registry.Service[settings.ProcessType, *settings.ProcessType]
	expenseStore       = registry.Store[suppliers.Expense, *suppliers.Expense]
)

// Options returns the whole application. cfg and logger are supplied by
// the caller.
func Options(cfg config.Server, logger *slog.Logger) fx.Option {
	return fx.Options(
		fx.Supply(cfg, logger),
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Provide(
			newPrometheusRegistry,
			newMetrics,
			newRegistryOptions,
			newClients,
			newCases,
			newLawyers,
			newPartners,
			newSuppliers,
			newExpenses,
			newHolidays,
			newProcessTypes,
			newTextGenerator,
			newDocuments,
			newReports,
			newRouter,
			newServer,
		),
		fx.Invoke(registerSeedHook, registerServerHooks),
	)
}

func newPrometheusRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func newMetrics(reg *prometheus.Registry) *metrics.Metrics {
	return metrics.New(reg)
}

func newRegistryOptions(logger *slog.Logger, m *metrics.Metrics) []registry.Option {
	return []registry.Option{registry.WithLogger(logger), registry.WithMetrics(m)}
}

func newClients(opts []registry.Option) *clientService {
	return registry.NewService[clientmodels.Client]("client", registry.NewStore[clientmodels.Client](), opts...)
}

func newCases(clients *clientService, opts []registry.Option) *caseservice.Service {
	return caseservice.New(clients, registry.NewStore[casemodels.Case](), registry.NewStore[casemodels.Process](), opts...)
}

func newLawyers(opts []registry.Option) *lawyerService {
	return lawyers.NewService(registry.NewStore[lawyers.Lawyer](), opts...)
}

func newPartners(opts []registry.Option) *partnerService {
	return partners.NewService(registry.NewStore[partners.Partner](), opts...)
}

func newSuppliers(opts []registry.Option) *supplierService {
	return suppliers.NewService(registry.NewStore[suppliers.Supplier](), opts...)
}

func newExpenses() *expenseStore {
	return registry.NewStore[suppliers.Expense]()
}

func newHolidays(opts []registry.Option) *holidayService {
	return settings.NewHolidayService(registry.NewStore[settings.Holiday](), opts...)
}

func newProcessTypes(opts []registry.Option) *processTypeService {
	return settings.NewProcessTypeService(registry.NewStore[settings.ProcessType](), opts...)
}

func newTextGenerator(cfg config.Server, logger *slog.Logger) documents.TextGenerator {
	if cfg.TextGen.URL == "" {
		logger.Warn("TEXTGEN_URL not set; document generation is disabled")
		return textgen.Disabled{}
	}
	return textgen.New(cfg.TextGen.URL,
		textgen.WithAPIKey(cfg.TextGen.APIKey),
		textgen.WithModel(cfg.TextGen.Model),
	)
}

func newDocuments(gen documents.TextGenerator, cfg config.Server, logger *slog.Logger, m *metrics.Metrics) *documents.Service {
	return documents.New(gen,
		documents.WithTimeout(cfg.TextGen.Timeout),
		documents.WithLogger(logger),
		documents.WithMetrics(m),
	)
}

type reportParams struct {
	fx.In

	Clients   *clientService
	Cases     *caseservice.Service
	Lawyers   *lawyerService
	Partners  *partnerService
	Suppliers *supplierService
	Documents *documents.Service
}

func newReports(p reportParams) *reports.Service {
	return reports.New(reports.Sources{
		Clients:   p.Clients,
		Cases:     reports.CountOf[casemodels.Case](p.Cases.Cases()),
		Lawyers:   reports.CountOf[lawyers.Lawyer](p.Lawyers),
		Partners:  reports.CountOf[partners.Partner](p.Partners),
		Suppliers: reports.CountOf[suppliers.Supplier](p.Suppliers),
		Documents: p.Documents,
	})
}

type routerParams struct {
	fx.In

	Config       config.Server
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
	Registry     *prometheus.Registry
	Clients      *clientService
	Cases        *caseservice.Service
	Lawyers      *lawyerService
	Partners     *partnerService
	Suppliers    *supplierService
	Expenses     *expenseStore
	Holidays     *holidayService
	ProcessTypes *processTypeService
	Documents    *documents.Service
	Reports      *reports.Service
}

func newRouter(p routerParams) http.Handler {
	clients := clienthandler.New(p.Clients, p.Logger)
	return httptransport.NewRouter(httptransport.Routes{
		Clients:      clients,
		Forms:        clients.RegisterForms,
		Cases:        casehandler.New(p.Cases.Cases(), p.Cases, p.Logger),
		Lawyers:      registry.NewHandler[lawyers.Lawyer](p.Lawyers, p.Logger),
		Partners:     registry.NewHandler[partners.Partner](p.Partners, p.Logger),
		Suppliers:    suppliers.NewHandler(p.Suppliers, suppliers.NewExpenses(p.Expenses), p.Logger),
		Holidays:     registry.NewHandler[settings.Holiday](p.Holidays, p.Logger),
		ProcessTypes: registry.NewHandler[settings.ProcessType](p.ProcessTypes, p.Logger),
		Documents:    documents.NewHandler(p.Documents, p.Logger),
		Reports:      reports.NewHandler(p.Reports, p.Logger),
	}, httptransport.Deps{
		Logger:         p.Logger,
		Metrics:        p.Metrics,
		Gatherer:       p.Registry,
		AllowedOrigins: p.Config.AllowedOrigins,
	})
}

func newServer(cfg config.Server, handler http.Handler, logger *slog.Logger) *http.Server {
	return httpserver.New(cfg.Addr, handler, logger)
}

type seedParams struct {
	fx.In

	Lifecycle    fx.Lifecycle
	Config       config.Server
	Logger       *slog.Logger
	Clients      *clientService
	Cases        *caseservice.Service
	Lawyers      *lawyerService
	Partners     *partnerService
	Suppliers    *supplierService
	Expenses     *expenseStore
	Holidays     *holidayService
	ProcessTypes *processTypeService
}

// registerSeedHook loads demo data on start, before the server hook opens
// the listener.
func registerSeedHook(p seedParams) {
	if !p.Config.Seed.Enabled {
		return
	}
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			data, err := seed.ReadFile(p.Config.Seed.File)
			if err != nil {
				return err
			}
			return seed.Load(ctx, data, seed.Targets{
				Clients:      p.Clients,
				Cases:        p.Cases.Cases(),
				Processes:    p.Cases,
				Lawyers:      p.Lawyers,
				Partners:     p.Partners,
				Suppliers:    p.Suppliers,
				Expenses:     p.Expenses,
				Holidays:     p.Holidays,
				ProcessTypes: p.ProcessTypes,
			}, p.Logger)
		},
	})
}

func registerServerHooks(lc fx.Lifecycle, srv *http.Server, cfg config.Server, logger *slog.Logger, shutdowner fx.Shutdowner) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.InfoContext(ctx, "starting legalflow", "addr", ln.Addr().String())
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server failed", "error", err)
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if cfg.ShutdownTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, cfg.ShutdownTimeout)
				defer cancel()
			}
			logger.InfoContext(ctx, "shutting down server")
			if err := srv.Shutdown(ctx); err != nil {
				logger.ErrorContext(ctx, "server forced to shutdown", "error", err)
				return err
			}
			return nil
		},
	})
}
