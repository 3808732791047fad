// Package documents assembles legal-document prompts from client and case
// data and hands them to an external text generator.
package documents

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks TextGenerator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"legalflow/internal/platform/metrics"
	"legalflow/internal/validation"
	dErrors "legalflow/pkg/domain-errors"
	"legalflow/pkg/requestcontext"
)

// Type is one of the fixed document kinds the generator is asked for.
type Type string

const (
	TypeCover                Type = "Capa"
	TypePowerOfAttorney      Type = "Procuração"
	TypeServiceContract      Type = "Contrato de prestação de serviço"
	TypeRuralWorkerStatement Type = "Autodeclaração Trab. Rural"
	TypeRepresentationTerm   Type = "Termo de Representação"
	TypeRetirementReceipt    Type = "Declaração de Recebimento de Aposentadoria"
	TypeResidenceStatement   Type = "Declaração Residência"
	TypeBPCAuthorization     Type = "Termo de autorização BPC"
	TypeLOASForm             Type = "Formulário LOAS"
)

// Types lists every document kind in selection order.
var Types = []Type{
	TypeCover,
	TypePowerOfAttorney,
	TypeServiceContract,
	TypeRuralWorkerStatement,
	TypeRepresentationTerm,
	TypeRetirementReceipt,
	TypeResidenceStatement,
	TypeBPCAuthorization,
	TypeLOASForm,
}

const promptTemplate = `You are a legal document generation expert.

You will generate a legal document of type "%s" using the provided client and case data.

Client Data: %s
Case Data: %s

Ensure the generated document is well-formatted and legally sound.
`

// Request carries the document kind and the raw JSON blobs embedded in the
// prompt.
type Request struct {
	DocumentType Type   `json:"documentType"`
	ClientData   string `json:"clientData"`
	CaseData     string `json:"caseData"`
}

// Result is the generator's text, unchanged.
type Result struct {
	DocumentText string `json:"documentText"`
}

// TextGenerator turns a prompt into document text.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Validate checks the request without calling out. Both blobs are checked in
// the same pass so every failure is reported at once.
func (r Request) Validate() error {
	names := make([]string, len(Types))
	for i, t := range Types {
		names[i] = string(t)
	}
	c := validation.New()
	c.Field("documentType", string(r.DocumentType),
		validation.Required("Tipo de documento é obrigatório."),
		validation.Optional(validation.OneOf("Tipo de documento inválido.", names...)),
	)
	c.Field("clientData", r.ClientData,
		validation.Required("Dados do cliente são obrigatórios."),
		validation.Optional(validation.JSON("Dados do cliente devem ser um JSON válido.")),
	)
	c.Field("caseData", r.CaseData,
		validation.Required("Dados do caso são obrigatórios."),
		validation.Optional(validation.JSON("Dados do caso devem ser um JSON válido.")),
	)
	return c.Err()
}

// Prompt renders the instruction text. The blobs are interpolated verbatim.
func (r Request) Prompt() string {
	return fmt.Sprintf(promptTemplate, r.DocumentType, r.ClientData, r.CaseData)
}

type Service struct {
	generator TextGenerator
	timeout   time.Duration
	tracer    trace.Tracer
	logger    *slog.Logger
	metrics   *metrics.Metrics
	generated atomic.Int64
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTimeout bounds each generator call. Zero waits indefinitely.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		s.timeout = d
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

func New(generator TextGenerator, opts ...Option) *Service {
	s := &Service{
		generator: generator,
		tracer:    otel.Tracer("legalflow/internal/documents"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate validates req, renders the prompt and returns the generator's
// text. Nothing is sent when validation fails. Generator failures are not
// retried.
func (s *Service) Generate(ctx context.Context, req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		s.fail(ctx, "validation", req.DocumentType, err)
		return Result{}, err
	}

	ctx, span := s.tracer.Start(ctx, "documents.Generate",
		trace.WithAttributes(attribute.String("document.type", string(req.DocumentType))),
	)
	defer span.End()

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	prompt := req.Prompt()
	start := time.Now()
	text, err := s.generator.Generate(ctx, prompt)
	if s.metrics != nil {
		s.metrics.ObserveDocumentDuration(time.Since(start))
	}
	if err != nil {
		reason := "collaborator"
		msg := err.Error()
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			reason = "timeout"
			msg = fmt.Sprintf("text generation timed out after %s", s.timeout)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, msg)
		wrapped := dErrors.Wrap(err, dErrors.CodeExternalService, msg)
		s.fail(ctx, reason, req.DocumentType, wrapped)
		return Result{}, wrapped
	}
	if strings.TrimSpace(text) == "" {
		err := dErrors.New(dErrors.CodeExternalService, "text generator returned an empty document")
		span.SetStatus(codes.Error, err.Error())
		s.fail(ctx, "empty", req.DocumentType, err)
		return Result{}, err
	}

	s.generated.Add(1)
	if s.metrics != nil {
		s.metrics.IncrementDocumentsGenerated()
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "document generated",
			"document_type", string(req.DocumentType),
			"prompt_bytes", len(prompt),
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	return Result{DocumentText: text}, nil
}

// Generated reports how many documents this process has produced.
func (s *Service) Generated() int64 {
	return s.generated.Load()
}

func (s *Service) fail(ctx context.Context, reason string, docType Type, err error) {
	if s.metrics != nil {
		s.metrics.IncrementDocumentFailures(reason)
	}
	if s.logger != nil {
		s.logger.WarnContext(ctx, "document generation failed",
			"reason", reason,
			"document_type", string(docType),
			"error", err.Error(),
			"request_id", requestcontext.RequestID(ctx),
		)
	}
}
