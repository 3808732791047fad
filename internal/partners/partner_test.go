package partners

import (
	"testing"

	"github.com/stretchr/testify/assert"

	dErrors "legalflow/pkg/domain-errors"
)

func TestPartnerValidate(t *testing.T) {
	tests := []struct {
		name    string
		partner Partner
		paths   []string
	}{
		{
			name:    "qualitative commission without contact",
			partner: Partner{Name: "Peritos Associados", CommissionRate: "Variável", Type: "Serviços Técnicos"},
		},
		{
			name:    "empty contact email is allowed",
			partner: Partner{Name: "Consultoria Legal ABC", Type: "Indicação", ContactEmail: ""},
		},
		{
			name:    "short name, missing type and bad email",
			partner: Partner{Name: "AB", ContactEmail: "contato"},
			paths:   []string{"name", "type", "contactEmail"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.partner.Validate()
			if tt.paths == nil {
				assert.NoError(t, err)
				return
			}
			got := []string{}
			for _, f := range dErrors.FieldsOf(err) {
				got = append(got, f.Path)
			}
			assert.Equal(t, tt.paths, got)
		})
	}
}
