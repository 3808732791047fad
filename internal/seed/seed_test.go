package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	casemodels "legalflow/internal/cases/models"
	caseservice "legalflow/internal/cases/service"
	clientmodels "legalflow/internal/client/models"
	"legalflow/internal/lawyers"
	"legalflow/internal/partners"
	"legalflow/internal/registry"
	"legalflow/internal/settings"
	"legalflow/internal/suppliers"
)

type registries struct {
	clients      *registry.Service[clientmodels.Client, *clientmodels.Client]
	cases        *caseservice.Service
	lawyers      *registry.Service[lawyers.Lawyer, *lawyers.Lawyer]
	partners     *registry.Service[partners.Partner, *partners.Partner]
	suppliers    *registry.Service[suppliers.Supplier, *suppliers.Supplier]
	expenses     *registry.Store[suppliers.Expense, *suppliers.Expense]
	holidays     *registry.Service[settings.Holiday, *settings.Holiday]
	processTypes *registry.Service[settings.ProcessType, *settings.ProcessType]
}

func newRegistries() registries {
	r := registries{
		clients:      registry.NewService[clientmodels.Client]("client", registry.NewStore[clientmodels.Client]()),
		lawyers:      lawyers.NewService(registry.NewStore[lawyers.Lawyer]()),
		partners:     partners.NewService(registry.NewStore[partners.Partner]()),
		suppliers:    suppliers.NewService(registry.NewStore[suppliers.Supplier]()),
		expenses:     registry.NewStore[suppliers.Expense](),
		holidays:     settings.NewHolidayService(registry.NewStore[settings.Holiday]()),
		processTypes: settings.NewProcessTypeService(registry.NewStore[settings.ProcessType]()),
	}
	r.cases = caseservice.New(r.clients, registry.NewStore[casemodels.Case](), registry.NewStore[casemodels.Process]())
	return r
}

func (r registries) targets() Targets {
	return Targets{
		Clients:      r.clients,
		Cases:        r.cases.Cases(),
		Processes:    r.cases,
		Lawyers:      r.lawyers,
		Partners:     r.partners,
		Suppliers:    r.suppliers,
		Expenses:     r.expenses,
		Holidays:     r.holidays,
		ProcessTypes: r.processTypes,
	}
}

func TestLoadDefault(t *testing.T) {
	ctx := context.Background()
	r := newRegistries()

	require.NoError(t, Load(ctx, Default, r.targets(), nil))

	clients, _ := r.clients.List(ctx)
	require.Len(t, clients, 4)
	assert.Equal(t, "João Silva", clients[0].DisplayName())
	assert.Equal(t, clientmodels.KindLegalEntity, clients[2].Kind())

	cases, _ := r.cases.Cases().List(ctx)
	require.Len(t, cases, 3)
	assert.Equal(t, clients[0].ID, cases[0].ClienteID)
	assert.Equal(t, casemodels.Status("Em Andamento"), cases[0].Status)

	procs, err := r.cases.ListProcesses(ctx, cases[0].ID)
	require.NoError(t, err)
	require.Len(t, procs, 1)
	assert.Equal(t, "5000", procs[0].Valor.String())
	assert.Equal(t, []string{"Dr. Carlos", "Dra. Ana"}, procs[0].Advogados)

	empty, err := r.cases.ListProcesses(ctx, cases[2].ID)
	require.NoError(t, err)
	assert.Empty(t, empty)

	lawyerList, _ := r.lawyers.List(ctx)
	assert.Len(t, lawyerList, 3)
	partnerList, _ := r.partners.List(ctx)
	assert.Len(t, partnerList, 2)
	holidayList, _ := r.holidays.List(ctx)
	assert.Len(t, holidayList, 3)
	typeList, _ := r.processTypes.List(ctx)
	assert.Len(t, typeList, 3)

	supplierList, _ := r.suppliers.List(ctx)
	require.Len(t, supplierList, 2)
	total, err := suppliers.NewExpenses(r.expenses).Total(ctx, supplierList[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "1200", total.String())
}

func TestLoadErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown section", func(t *testing.T) {
		err := Load(ctx, []byte("vendors: []\n"), newRegistries().targets(), nil)
		assert.ErrorContains(t, err, "parse seed file")
	})

	t.Run("invalid record", func(t *testing.T) {
		err := Load(ctx, []byte("lawyers:\n  - nome: Dr. Sem OAB\n"), newRegistries().targets(), nil)
		assert.ErrorContains(t, err, "lawyers[0]")
	})

	t.Run("case referring to an unknown client", func(t *testing.T) {
		data := []byte("cases:\n  - client: ghost\n    record:\n      numeroAno: 001/2024\n      tipo: Cível\n")
		err := Load(ctx, data, newRegistries().targets(), nil)
		assert.ErrorContains(t, err, `unknown client "ghost"`)
	})
}

func TestReadFile(t *testing.T) {
	data, err := ReadFile("")
	require.NoError(t, err)
	assert.Equal(t, Default, data)

	_, err = ReadFile("/nonexistent/seed.yaml")
	assert.Error(t, err)
}
