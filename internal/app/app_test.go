package app

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"legalflow/internal/platform/config"
	"legalflow/pkg/testutil"
)

func testConfig() config.Server {
	return config.Server{
		Addr:            "127.0.0.1:0",
		LogLevel:        "error",
		AllowedOrigins:  []string{"http://localhost:9002"},
		ShutdownTimeout: time.Second,
		Seed:            config.Seed{Enabled: true},
		TextGen:         config.TextGen{Timeout: time.Second},
	}
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOptionsAreValid(t *testing.T) {
	require.NoError(t, fx.ValidateApp(Options(testConfig(), discard())))
}

func TestApplication(t *testing.T) {
	var handler http.Handler
	app := fxtest.New(t, Options(testConfig(), discard()), fx.Populate(&handler))
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	testutil.Given(t, "seeded demo data", func(t *testing.T) {
		rr := testutil.DoRequest(handler, testutil.NewRequest(t, http.MethodGet, "/api/lawyers"))
		testutil.Then(t, "the lawyers are listed", func(t *testing.T) {
			testutil.AssertStatusOK(t, rr)
			assert.Len(t, *testutil.UnmarshalResponse[[]map[string]any](t, rr), 3)
		})

		rr = testutil.DoRequest(handler, testutil.NewRequest(t, http.MethodGet, "/api/reports/summary"))
		testutil.Then(t, "the dashboard counts every registry", func(t *testing.T) {
			testutil.AssertStatusOK(t, rr)
			testutil.AssertJSONContains(t, rr, "clients", float64(4))
			testutil.AssertJSONContains(t, rr, "cases", float64(3))
			testutil.AssertJSONContains(t, rr, "documentsGenerated", float64(0))
		})
	})

	testutil.Given(t, "no text generator configured", func(t *testing.T) {
		rr := testutil.DoRequest(handler, testutil.NewJSONRequest(t, http.MethodPost, "/api/documents", map[string]string{
			"documentType": "Capa", "clientData": "{}", "caseData": "{}",
		}))
		testutil.Then(t, "generation fails as an external error", func(t *testing.T) {
			testutil.AssertStatusAndError(t, rr, http.StatusBadGateway, "external_service_error")
		})
	})

	testutil.Given(t, "an invalid client", func(t *testing.T) {
		rr := testutil.DoRequest(handler, testutil.NewJSONRequest(t, http.MethodPost, "/api/clients", map[string]any{
			"clientType":  "legalEntity",
			"cnpj":        "11.111.111/1111-11",
			"razaoSocial": "Empresa Teste",
		}))
		testutil.Then(t, "the tax id is rejected", func(t *testing.T) {
			testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_error")
			testutil.AssertFieldError(t, rr, "cnpj")
		})
	})
}
