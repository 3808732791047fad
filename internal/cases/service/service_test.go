package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"legalflow/internal/address"
	"legalflow/internal/cases/models"
	clientmodels "legalflow/internal/client/models"
	"legalflow/internal/registry"
	dErrors "legalflow/pkg/domain-errors"
)

type CaseServiceSuite struct {
	suite.Suite
	ctx       context.Context
	clients   *registry.Service[clientmodels.Client, *clientmodels.Client]
	processes *registry.Store[models.Process, *models.Process]
	service   *Service
	clientID  string
}

func (s *CaseServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.clients = registry.NewService[clientmodels.Client]("client", registry.NewStore[clientmodels.Client]())
	s.processes = registry.NewStore[models.Process]()
	s.service = New(s.clients, registry.NewStore[models.Case](), s.processes)

	created, err := s.clients.Create(s.ctx, clientmodels.Client{Party: &clientmodels.Individual{
		Person: clientmodels.Person{CPF: "123.456.789-09", NomeCompleto: "João Silva"},
		Endereco: address.Address{
			Street: "Rua A", Neighborhood: "Centro", City: "Campinas", State: "SP", ZipCode: "13010-000",
		},
	}})
	s.Require().NoError(err)
	s.clientID = created.ID
}

func TestCaseServiceSuite(t *testing.T) {
	suite.Run(t, new(CaseServiceSuite))
}

func (s *CaseServiceSuite) newCase() models.Case {
	c, err := s.service.Cases().Create(s.ctx, models.Case{ClienteID: s.clientID, NumeroAno: "001/2024", Tipo: "Cível"})
	s.Require().NoError(err)
	return c
}

func (s *CaseServiceSuite) TestCaseRequiresExistingClient() {
	_, err := s.service.Cases().Create(s.ctx, models.Case{ClienteID: "ghost", NumeroAno: "002/2024", Tipo: "Cível"})
	s.Require().True(dErrors.HasCode(err, dErrors.CodeValidation))
	fields := dErrors.FieldsOf(err)
	s.Require().Len(fields, 1)
	s.Equal("clienteId", fields[0].Path)
	s.Equal("Cliente não encontrado.", fields[0].Message)
}

func (s *CaseServiceSuite) TestNewCaseStartsAsNovo() {
	s.Equal(models.StatusNew, s.newCase().Status)
}

func (s *CaseServiceSuite) TestDeletingCaseRemovesItsProcesses() {
	doomed := s.newCase()
	kept := s.newCase()

	for _, valor := range []int64{5000, 1200} {
		_, err := s.service.CreateProcess(s.ctx, doomed.ID, models.Process{Valor: decimal.NewFromInt(valor)})
		s.Require().NoError(err)
	}
	survivor, err := s.service.CreateProcess(s.ctx, kept.ID, models.Process{Valor: decimal.NewFromInt(12000)})
	s.Require().NoError(err)

	s.Require().NoError(s.service.Cases().Delete(s.ctx, doomed.ID))

	all, err := s.processes.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Equal(survivor.ID, all[0].ID)

	_, err = s.service.ListProcesses(s.ctx, doomed.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *CaseServiceSuite) TestDeletingClientKeepsCases() {
	c := s.newCase()
	s.Require().NoError(s.clients.Delete(s.ctx, s.clientID))

	found, err := s.service.Cases().Get(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Equal(s.clientID, found.ClienteID)
}

func (s *CaseServiceSuite) TestProcessesStayWithTheirCase() {
	first := s.newCase()
	second := s.newCase()
	p, err := s.service.CreateProcess(s.ctx, first.ID, models.Process{CaseID: second.ID, Advogados: []string{"Dr. Carlos"}})
	s.Require().NoError(err)
	s.Equal(first.ID, p.CaseID, "route case wins over body")

	s.Run("update keeps the owning case", func() {
		updated, err := s.service.UpdateProcess(s.ctx, first.ID, p.ID, models.Process{CaseID: second.ID, ParceiroNome: "Advocacia Associada"})
		s.Require().NoError(err)
		s.Equal(first.ID, updated.CaseID)
		s.Equal("Advocacia Associada", updated.ParceiroNome)
	})

	s.Run("another case cannot reach it", func() {
		_, err := s.service.UpdateProcess(s.ctx, second.ID, p.ID, models.Process{})
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
		s.True(dErrors.HasCode(s.service.DeleteProcess(s.ctx, second.ID, p.ID), dErrors.CodeNotFound))
	})

	s.Run("listing is scoped to the case", func() {
		list, err := s.service.ListProcesses(s.ctx, second.ID)
		s.Require().NoError(err)
		s.Empty(list)

		list, err = s.service.ListProcesses(s.ctx, first.ID)
		s.Require().NoError(err)
		s.Len(list, 1)
	})

	s.Run("delete", func() {
		s.Require().NoError(s.service.DeleteProcess(s.ctx, first.ID, p.ID))
		list, _ := s.service.ListProcesses(s.ctx, first.ID)
		s.Empty(list)
	})
}

func (s *CaseServiceSuite) TestCreateProcessForUnknownCase() {
	_, err := s.service.CreateProcess(s.ctx, "missing", models.Process{})
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}
