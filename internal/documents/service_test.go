package documents

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/mock/gomock"

	"legalflow/internal/documents/mocks"
	"legalflow/internal/platform/metrics"
	dErrors "legalflow/pkg/domain-errors"
)

type ServiceSuite struct {
	suite.Suite
	ctx       context.Context
	generator *mocks.MockTextGenerator
	metrics   *metrics.Metrics
	service   *Service
}

func (s *ServiceSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.T().Cleanup(ctrl.Finish)
	s.ctx = context.Background()
	s.generator = mocks.NewMockTextGenerator(ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.service = New(s.generator,
		WithMetrics(s.metrics),
		WithTracer(noop.NewTracerProvider().Tracer("test")),
	)
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) fieldMessages(err error) map[string]string {
	out := map[string]string{}
	for _, f := range dErrors.FieldsOf(err) {
		out[f.Path] = f.Message
	}
	return out
}

func (s *ServiceSuite) TestValidationHappensBeforeGenerating() {
	s.Run("client data that is not json", func() {
		_, err := s.service.Generate(s.ctx, Request{DocumentType: TypeCover, ClientData: "not json", CaseData: "{}"})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Equal(map[string]string{"clientData": "Dados do cliente devem ser um JSON válido."}, s.fieldMessages(err))
	})

	s.Run("both blobs reported in one pass", func() {
		_, err := s.service.Generate(s.ctx, Request{DocumentType: TypeCover, ClientData: "{", CaseData: "[1,"})
		s.Equal(map[string]string{
			"clientData": "Dados do cliente devem ser um JSON válido.",
			"caseData":   "Dados do caso devem ser um JSON válido.",
		}, s.fieldMessages(err))
	})

	s.Run("missing fields", func() {
		_, err := s.service.Generate(s.ctx, Request{})
		s.Equal(map[string]string{
			"documentType": "Tipo de documento é obrigatório.",
			"clientData":   "Dados do cliente são obrigatórios.",
			"caseData":     "Dados do caso são obrigatórios.",
		}, s.fieldMessages(err))
	})

	s.Run("unknown document type", func() {
		_, err := s.service.Generate(s.ctx, Request{DocumentType: "Petição", ClientData: "{}", CaseData: "{}"})
		s.Equal(map[string]string{"documentType": "Tipo de documento inválido."}, s.fieldMessages(err))
	})

	s.Equal(4.0, promtest.ToFloat64(s.metrics.DocumentFailures.WithLabelValues("validation")))
	s.Equal(int64(0), s.service.Generated())
}

func (s *ServiceSuite) TestGenerate() {
	s.Run("forwards the rendered prompt and returns the text unchanged", func() {
		clientData := `{"nomeCompleto":"João Silva"}`
		caseData := `{"numeroAno":"001/2024"}`
		var sent string
		s.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, prompt string) (string, error) {
				sent = prompt
				return "  CAPA\n", nil
			})

		res, err := s.service.Generate(s.ctx, Request{DocumentType: TypeCover, ClientData: clientData, CaseData: caseData})
		s.Require().NoError(err)
		s.Equal("  CAPA\n", res.DocumentText)
		s.Contains(sent, `"Capa"`)
		s.Contains(sent, "Client Data: "+clientData+"\n")
		s.Contains(sent, "Case Data: "+caseData+"\n")
		s.Equal(int64(1), s.service.Generated())
		s.Equal(1.0, promtest.ToFloat64(s.metrics.DocumentsGenerated))
	})

	s.Run("collaborator failure is surfaced with its message", func() {
		s.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("quota exceeded"))

		_, err := s.service.Generate(s.ctx, Request{DocumentType: TypeLOASForm, ClientData: "{}", CaseData: "{}"})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeExternalService))
		s.Contains(err.Error(), "quota exceeded")
		s.Equal(1.0, promtest.ToFloat64(s.metrics.DocumentFailures.WithLabelValues("collaborator")))
	})

	s.Run("empty text is an external failure", func() {
		s.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(" \n", nil)

		_, err := s.service.Generate(s.ctx, Request{DocumentType: TypeCover, ClientData: "{}", CaseData: "{}"})
		s.True(dErrors.HasCode(err, dErrors.CodeExternalService))
		s.Equal(1.0, promtest.ToFloat64(s.metrics.DocumentFailures.WithLabelValues("empty")))
	})
}

func (s *ServiceSuite) TestTimeout() {
	svc := New(s.generator, WithMetrics(s.metrics), WithTimeout(20*time.Millisecond))
	s.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		})

	_, err := svc.Generate(s.ctx, Request{DocumentType: TypeCover, ClientData: "{}", CaseData: "{}"})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeExternalService))
	s.True(errors.Is(err, context.DeadlineExceeded))
	s.Equal(1.0, promtest.ToFloat64(s.metrics.DocumentFailures.WithLabelValues("timeout")))
}

func TestPromptMatchesTemplate(t *testing.T) {
	req := Request{DocumentType: TypeServiceContract, ClientData: `{"a":1}`, CaseData: `[]`}
	want := "You are a legal document generation expert.\n\n" +
		"You will generate a legal document of type \"Contrato de prestação de serviço\" using the provided client and case data.\n\n" +
		"Client Data: {\"a\":1}\n" +
		"Case Data: []\n\n" +
		"Ensure the generated document is well-formatted and legally sound.\n"
	if got := req.Prompt(); got != want {
		t.Fatalf("prompt mismatch:\n%s", got)
	}
}

func TestTypesOrder(t *testing.T) {
	want := []Type{
		"Capa", "Procuração", "Contrato de prestação de serviço", "Autodeclaração Trab. Rural",
		"Termo de Representação", "Declaração de Recebimento de Aposentadoria", "Declaração Residência",
		"Termo de autorização BPC", "Formulário LOAS",
	}
	if len(Types) != len(want) {
		t.Fatalf("got %d types", len(Types))
	}
	for i := range want {
		if Types[i] != want[i] {
			t.Errorf("type %d: got %q want %q", i, Types[i], want[i])
		}
	}
}
