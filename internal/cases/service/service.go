package service

import (
	"context"
	"errors"

	"legalflow/internal/cases/models"
	clientmodels "legalflow/internal/client/models"
	"legalflow/internal/registry"
	dErrors "legalflow/pkg/domain-errors"
	"legalflow/pkg/platform/sentinel"
)

// ClientReader resolves the client a case refers to.
type ClientReader interface {
	Get(ctx context.Context, id string) (clientmodels.Client, error)
}

// Service manages cases and the processes each case owns. Deleting a case
// deletes its processes; deleting a client leaves its cases alone.
type Service struct {
	cases     *registry.Service[models.Case, *models.Case]
	processes *registry.Service[models.Process, *models.Process]
}

// New wires the case and process registries. opts apply to both.
func New(
	clients ClientReader,
	caseRepo registry.Repository[models.Case],
	processRepo registry.Repository[models.Process],
	opts ...registry.Option,
) *Service {
	s := &Service{}
	s.processes = registry.NewService[models.Process]("process", processRepo, opts...)

	caseOpts := append([]registry.Option{
		registry.WithCheck(func(ctx context.Context, c *models.Case) error {
			return checkClient(ctx, clients, c.ClienteID)
		}),
		registry.WithDeleteHook(s.deleteProcessesOf),
	}, opts...)
	s.cases = registry.NewService[models.Case]("case", caseRepo, caseOpts...)
	return s
}

// Cases exposes the case registry.
func (s *Service) Cases() *registry.Service[models.Case, *models.Case] {
	return s.cases
}

// ListProcesses returns the processes of caseID in insertion order.
func (s *Service) ListProcesses(ctx context.Context, caseID string) ([]models.Process, error) {
	if _, err := s.cases.Get(ctx, caseID); err != nil {
		return nil, err
	}
	all, err := s.processes.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Process, 0)
	for _, p := range all {
		if p.CaseID == caseID {
			out = append(out, p)
		}
	}
	return out, nil
}

// CreateProcess files p under caseID.
func (s *Service) CreateProcess(ctx context.Context, caseID string, p models.Process) (models.Process, error) {
	if _, err := s.cases.Get(ctx, caseID); err != nil {
		return models.Process{}, err
	}
	p.CaseID = caseID
	return s.processes.Create(ctx, p)
}

// UpdateProcess replaces process id of caseID. A process never moves to
// another case.
func (s *Service) UpdateProcess(ctx context.Context, caseID, id string, p models.Process) (models.Process, error) {
	if _, err := s.processOf(ctx, caseID, id); err != nil {
		return models.Process{}, err
	}
	p.CaseID = caseID
	return s.processes.Update(ctx, id, p)
}

// DeleteProcess removes process id of caseID.
func (s *Service) DeleteProcess(ctx context.Context, caseID, id string) error {
	if _, err := s.processOf(ctx, caseID, id); err != nil {
		return err
	}
	return s.processes.Delete(ctx, id)
}

func (s *Service) processOf(ctx context.Context, caseID, id string) (models.Process, error) {
	p, err := s.processes.Get(ctx, id)
	if err != nil {
		return models.Process{}, err
	}
	if p.CaseID != caseID {
		return models.Process{}, dErrors.New(dErrors.CodeNotFound, "process not found")
	}
	return p, nil
}

func (s *Service) deleteProcessesOf(ctx context.Context, caseID string) error {
	_, err := s.processes.DeleteWhere(ctx, func(p models.Process) bool {
		return p.CaseID == caseID
	})
	return err
}

func checkClient(ctx context.Context, clients ClientReader, id string) error {
	if id == "" || clients == nil {
		return nil
	}
	if _, err := clients.Get(ctx, id); err != nil {
		if dErrors.HasCode(err, dErrors.CodeNotFound) || errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.NewValidation([]dErrors.FieldError{{Path: "clienteId", Message: "Cliente não encontrado."}})
		}
		return err
	}
	return nil
}
