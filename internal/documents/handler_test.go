package documents

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"legalflow/internal/documents/mocks"
	"legalflow/pkg/testutil"
)

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockTextGenerator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	generator := mocks.NewMockTextGenerator(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	r.Route("/api/documents", NewHandler(New(generator, WithLogger(logger)), logger).Register)
	return r, generator
}

func TestHandleTypes(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/documents/types"))

	testutil.AssertStatusOK(t, rr)
	got := *testutil.UnmarshalResponse[[]Type](t, rr)
	assert.Equal(t, Types, got)
}

func TestHandleGenerate(t *testing.T) {
	testutil.Given(t, "a valid request", func(t *testing.T) {
		router, generator := newTestRouter(t)
		generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("PROCURAÇÃO", nil)

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/documents", Request{
			DocumentType: TypePowerOfAttorney, ClientData: "{}", CaseData: "{}",
		}))

		testutil.Then(t, "the generated text is returned", func(t *testing.T) {
			testutil.AssertStatusOK(t, rr)
			testutil.AssertJSONContains(t, rr, "documentText", "PROCURAÇÃO")
		})
	})

	testutil.Given(t, "invalid client data", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/documents", Request{
			DocumentType: TypeCover, ClientData: "not json", CaseData: "{}",
		}))

		testutil.Then(t, "the generator is never called", func(t *testing.T) {
			testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_error")
			testutil.AssertFieldError(t, rr, "clientData")
		})
	})

	testutil.Given(t, "a failing generator", func(t *testing.T) {
		router, generator := newTestRouter(t)
		generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("upstream unavailable"))

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/documents", Request{
			DocumentType: TypeCover, ClientData: "{}", CaseData: "{}",
		}))

		testutil.Then(t, "a bad gateway is reported", func(t *testing.T) {
			testutil.AssertStatusAndError(t, rr, http.StatusBadGateway, "external_service_error")
		})
	})

	testutil.Given(t, "an unknown field", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rr := testutil.DoRequest(router, testutil.NewRequestWithBody(t, http.MethodPost, "/api/documents",
			`{"documentType":"Capa","clientData":"{}","caseData":"{}","model":"x"}`))

		testutil.Then(t, "the body is rejected", func(t *testing.T) {
			testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
		})
	})
}
