// Package partners keeps the firms and professionals the practice works
// with.
package partners

import (
	"strings"

	"legalflow/internal/registry"
	"legalflow/internal/validation"
	"legalflow/pkg/domain"
)

// Partner refers or serves cases. CommissionRate is free text such as
// "10%" or "Variável".
type Partner struct {
	domain.Stamp
	Name           string `json:"name"`
	CommissionRate string `json:"commissionRate"`
	Type           string `json:"type"`
	ContactName    string `json:"contactName"`
	ContactEmail   string `json:"contactEmail"`
	ContactPhone   string `json:"contactPhone"`
	Notes          string `json:"notes"`
}

func (p *Partner) Normalize() {
	for _, f := range []*string{
		&p.Name, &p.CommissionRate, &p.Type, &p.ContactName, &p.ContactEmail, &p.ContactPhone, &p.Notes,
	} {
		*f = strings.TrimSpace(*f)
	}
}

func (p *Partner) Validate() error {
	c := validation.New()
	c.Field("name", p.Name, validation.MinLen(3, "Nome do parceiro é obrigatório e deve ter pelo menos 3 caracteres."))
	c.Field("type", p.Type, validation.Required("Tipo de parceria é obrigatório."))
	c.Field("contactEmail", p.ContactEmail, validation.Optional(validation.Email("Email de contato inválido.")))
	return c.Err()
}

// NewService builds the partner registry service.
func NewService(repo registry.Repository[Partner], opts ...registry.Option) *registry.Service[Partner, *Partner] {
	return registry.NewService[Partner]("partner", repo, opts...)
}
