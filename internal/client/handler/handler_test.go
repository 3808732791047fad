package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalflow/internal/client/form"
	"legalflow/internal/client/models"
	"legalflow/internal/registry"
	"legalflow/pkg/testutil"
)

func newRouter() http.Handler {
	svc := registry.NewService[models.Client]("client", registry.NewStore[models.Client]())
	h := New(svc, nil)
	r := chi.NewRouter()
	r.Route("/api/clients", h.Register)
	r.Route("/api/forms", h.RegisterForms)
	return r
}

var individualPayload = map[string]any{
	"clientType":   "individual",
	"cpf":          "123.456.789-09",
	"nomeCompleto": "João Silva",
	"genero":       "Masculino",
	"endereco": map[string]any{
		"street": "Rua A", "neighborhood": "Centro", "city": "Campinas", "state": "SP", "zipCode": "13010-000",
	},
	"attachments": []any{},
}

func TestCreateClient(t *testing.T) {
	router := newRouter()

	testutil.Given(t, "a valid individual", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/clients/", individualPayload))

		testutil.Then(t, "it is stored with a fresh id", func(t *testing.T) {
			testutil.AssertStatus(t, rr, http.StatusCreated)
			created := testutil.UnmarshalResponse[map[string]any](t, rr)
			assert.NotEmpty(t, (*created)["id"])
			assert.Equal(t, "individual", (*created)["clientType"])
			assert.Equal(t, "João Silva", (*created)["nomeCompleto"])
		})
	})

	testutil.Given(t, "an individual with only cpf and name", func(t *testing.T) {
		body := testutil.MustMarshal(t, map[string]any{
			"clientType": "individual", "cpf": "123.456.789-00", "nomeCompleto": "João Silva",
		})

		testutil.When(t, "it is posted", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewRequestWithBody(t, http.MethodPost, "/api/clients/", body))

			testutil.Then(t, "it is accepted without an address", func(t *testing.T) {
				testutil.AssertStatus(t, rr, http.StatusCreated)
				testutil.AssertJSONHasKey(t, rr, "id")
			})
		})
	})

	testutil.Given(t, "an individual with a partially filled address", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/clients/", map[string]any{
			"clientType": "individual", "cpf": "123.456.789-00", "nomeCompleto": "João Silva",
			"endereco": map[string]any{"zipCode": "13010-000"},
		}))

		testutil.Then(t, "the missing address fields are reported", func(t *testing.T) {
			testutil.AssertStatus(t, rr, http.StatusBadRequest)
			testutil.AssertErrorCode(t, rr, "validation_error")
			resp := testutil.UnmarshalErrorResponse(t, rr)
			paths := []string{}
			for _, f := range resp.Fields {
				paths = append(paths, f.Path)
			}
			assert.Equal(t, []string{"endereco.street", "endereco.neighborhood", "endereco.city", "endereco.state"}, paths)
			assert.Equal(t, "Rua é obrigatória", resp.Fields[0].Message)
		})
	})

	testutil.Given(t, "a legal entity with a bad tax id", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/clients/", map[string]any{
			"clientType":  "legalEntity",
			"cnpj":        "11.111.111/1111-11",
			"razaoSocial": "Empresa XYZ Ltda",
			"responsavel": map[string]any{"nome": "Carla Mendes", "cpf": "987.654.321-00"},
			"enderecoPJ": map[string]any{
				"street": "Av. Paulista", "neighborhood": "Bela Vista", "city": "São Paulo", "state": "SP", "zipCode": "01310-100",
			},
		}))

		testutil.Then(t, "the error is addressed at cnpj", func(t *testing.T) {
			testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_error")
			testutil.AssertFieldError(t, rr, "cnpj")
		})
	})

	testutil.Given(t, "an unknown field", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequestWithBody(t, http.MethodPost, "/api/clients/", `{"clientType":"individual","apelidos":"x"}`))
		testutil.Then(t, "it is rejected", func(t *testing.T) {
			testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
		})
	})
}

func TestComposeClientForm(t *testing.T) {
	router := newRouter()

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/forms/client", map[string]any{
		"clientType":        "individual",
		"cpf":               "123",
		"hasRepresentative": true,
		"representative":    map[string]any{"grauParentesco": "Pai"},
	}))
	testutil.AssertStatusOK(t, rr)

	comp := testutil.UnmarshalResponse[form.Composition](t, rr)
	assert.False(t, comp.Valid)
	require.NotEmpty(t, comp.Groups)

	errorsAt := map[string][]string{}
	for _, g := range comp.Groups {
		for _, f := range g.Fields {
			if len(f.Errors) > 0 {
				errorsAt[f.Path] = f.Errors
			}
		}
	}
	assert.Equal(t, []string{"CPF inválido."}, errorsAt["cpf"])
	assert.Equal(t, []string{"CPF do representante é obrigatório."}, errorsAt["representative.cpf"])
	assert.NotContains(t, errorsAt, "representative.grauParentesco")
}

func TestStoredClientsAreNotShared(t *testing.T) {
	store := registry.NewStore[models.Client]()
	ctx := context.Background()
	created, err := store.Create(ctx, models.Client{
		Party:             &models.Individual{Person: models.Person{CPF: "123.456.789-09", NomeCompleto: "João Silva"}},
		HasRepresentative: true,
		Representative:    &models.Representative{Person: models.Person{NomeCompleto: "Maria Silva"}},
	})
	require.NoError(t, err)

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	ind, ok := got.Individual()
	require.True(t, ok)
	ind.NomeCompleto = "Outro"
	got.Representative.NomeCompleto = "Outra"

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "João Silva", all[0].DisplayName())
	assert.Equal(t, "Maria Silva", all[0].Representative.NomeCompleto)
}
