package registry

import (
	"context"
	"errors"
	"log/slog"

	"legalflow/internal/platform/metrics"
	dErrors "legalflow/pkg/domain-errors"
	"legalflow/pkg/platform/sentinel"
	"legalflow/pkg/requestcontext"
)

// Entity is a record that can normalize and validate itself.
type Entity[T any] interface {
	Record[T]
	Normalize()
	Validate() error
}

// DeleteHook runs after a record is deleted. Case uses it to remove its
// processes.
type DeleteHook func(ctx context.Context, id string) error

type options struct {
	logger   *slog.Logger
	metrics  *metrics.Metrics
	checks   []func(ctx context.Context, rec any) error
	onDelete []DeleteHook
}

type Option func(o *options)

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithCheck adds a validation step that needs context, such as verifying a
// referenced record exists. Validation errors it returns are merged with
// the record's own.
func WithCheck[T any](check func(ctx context.Context, rec *T) error) Option {
	return func(o *options) {
		o.checks = append(o.checks, func(ctx context.Context, rec any) error {
			return check(ctx, rec.(*T))
		})
	}
}

func WithDeleteHook(hook DeleteHook) Option {
	return func(o *options) {
		o.onDelete = append(o.onDelete, hook)
	}
}

// Service validates records before they reach the repository and translates
// repository errors into domain errors. Validation failures never mutate
// the repository.
type Service[T any, P Entity[T]] struct {
	entity string
	repo   Repository[T]
	options
}

// NewService builds a service for one entity kind. entity names the kind in
// logs, metrics and error messages.
func NewService[T any, P Entity[T]](entity string, repo Repository[T], opts ...Option) *Service[T, P] {
	s := &Service[T, P]{entity: entity, repo: repo}
	for _, opt := range opts {
		opt(&s.options)
	}
	return s
}

// Entity returns the kind name.
func (s *Service[T, P]) Entity() string {
	return s.entity
}

func (s *Service[T, P]) Create(ctx context.Context, rec T) (T, error) {
	var zero T
	if err := s.validate(ctx, &rec); err != nil {
		return zero, err
	}
	created, err := s.repo.Create(ctx, rec)
	if err != nil {
		return zero, s.translate(err, "create")
	}
	id := P(&created).StampRef().ID
	s.logAudit(ctx, s.entity+"_created", "id", id)
	if s.metrics != nil {
		s.metrics.IncrementRecordsCreated(s.entity)
	}
	return created, nil
}

// Update replaces the body of record id. The stored id and registration
// date survive whatever the caller sends.
func (s *Service[T, P]) Update(ctx context.Context, id string, rec T) (T, error) {
	var zero T
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return zero, s.translate(err, "load")
	}
	*P(&rec).StampRef() = *P(&existing).StampRef()
	if err := s.validate(ctx, &rec); err != nil {
		return zero, err
	}
	updated, err := s.repo.Update(ctx, id, rec)
	if err != nil {
		return zero, s.translate(err, "update")
	}
	s.logAudit(ctx, s.entity+"_updated", "id", id)
	if s.metrics != nil {
		s.metrics.IncrementRecordsUpdated(s.entity)
	}
	return updated, nil
}

func (s *Service[T, P]) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.translate(err, "delete")
	}
	s.logAudit(ctx, s.entity+"_deleted", "id", id)
	if s.metrics != nil {
		s.metrics.AddRecordsDeleted(s.entity, 1)
	}
	for _, hook := range s.onDelete {
		if err := hook(ctx, id); err != nil {
			return s.translate(err, "cascade delete")
		}
	}
	return nil
}

func (s *Service[T, P]) Get(ctx context.Context, id string) (T, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		var zero T
		return zero, s.translate(err, "load")
	}
	return rec, nil
}

func (s *Service[T, P]) List(ctx context.Context) ([]T, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.translate(err, "list")
	}
	return recs, nil
}

// DeleteWhere removes every matching record. No delete hooks run.
func (s *Service[T, P]) DeleteWhere(ctx context.Context, match func(T) bool) (int, error) {
	n, err := s.repo.DeleteWhere(ctx, match)
	if err != nil {
		return 0, s.translate(err, "delete")
	}
	if n > 0 {
		s.logAudit(ctx, s.entity+"_deleted", "count", n)
		if s.metrics != nil {
			s.metrics.AddRecordsDeleted(s.entity, n)
		}
	}
	return n, nil
}

// Validate normalizes rec in place and runs every rule and check without
// touching the repository.
func (s *Service[T, P]) Validate(ctx context.Context, rec *T) error {
	return s.validate(ctx, rec)
}

func (s *Service[T, P]) validate(ctx context.Context, rec *T) error {
	P(rec).Normalize()
	var fields []dErrors.FieldError
	collect := func(err error) error {
		if err == nil {
			return nil
		}
		if !dErrors.HasCode(err, dErrors.CodeValidation) {
			return err
		}
		fields = append(fields, dErrors.FieldsOf(err)...)
		return nil
	}
	if err := collect(P(rec).Validate()); err != nil {
		return s.translate(err, "validate")
	}
	for _, check := range s.checks {
		if err := collect(check(ctx, rec)); err != nil {
			return s.translate(err, "validate")
		}
	}
	if len(fields) == 0 {
		return nil
	}
	if s.metrics != nil {
		s.metrics.IncrementValidationFailures(s.entity)
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "validation failed",
			"entity", s.entity,
			"fields", len(fields),
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	return dErrors.NewValidation(fields)
}

func (s *Service[T, P]) translate(err error, op string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, s.entity+" not found")
	}
	if _, ok := dErrors.As(err); ok {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to "+op+" "+s.entity)
}

func (s *Service[T, P]) logAudit(ctx context.Context, event string, attributes ...any) {
	if s.logger == nil {
		return
	}
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	args := append(attributes, "event", event, "log_type", "audit")
	s.logger.InfoContext(ctx, event, args...)
}
