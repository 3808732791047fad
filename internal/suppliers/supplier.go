// Package suppliers keeps the practice's suppliers and the expenses paid to
// them.
package suppliers

import (
	"strings"

	"legalflow/internal/address"
	"legalflow/internal/registry"
	"legalflow/internal/validation"
	"legalflow/pkg/domain"
)

// Supplier provides goods or services to the practice.
type Supplier struct {
	domain.Stamp
	Name         string           `json:"name"`
	Category     string           `json:"category"`
	CNPJ         string           `json:"cnpj"`
	ContactName  string           `json:"contactName"`
	ContactEmail string           `json:"contactEmail"`
	ContactPhone string           `json:"contactPhone"`
	Address      *address.Address `json:"address,omitempty"`
	Notes        string           `json:"notes"`
}

func (s *Supplier) Normalize() {
	for _, f := range []*string{
		&s.Name, &s.Category, &s.CNPJ, &s.ContactName, &s.ContactEmail, &s.ContactPhone, &s.Notes,
	} {
		*f = strings.TrimSpace(*f)
	}
	if s.Address != nil {
		s.Address.Normalize()
		if s.Address.IsZero() {
			s.Address = nil
		}
	}
}

func (s Supplier) Clone() Supplier {
	if s.Address != nil {
		addr := *s.Address
		s.Address = &addr
	}
	return s
}

// Validate checks the supplier. The tax id is optional; when given, only
// its check digits matter and punctuation is ignored.
func (s *Supplier) Validate() error {
	c := validation.New()
	c.Field("name", s.Name, validation.MinLen(3, "Nome do fornecedor é obrigatório (mín. 3 caracteres)."))
	c.Field("category", s.Category, validation.Required("Categoria é obrigatória."))
	c.Field("cnpj", s.CNPJ, validation.Optional(validation.CNPJChecksum("CNPJ inválido.")))
	c.Field("contactEmail", s.ContactEmail, validation.Optional(validation.Email("Email de contato inválido.")))
	if s.Address != nil {
		s.Address.ValidateOptional(c.At("address"), "CEP inválido (formato: 00000-000)")
	}
	return c.Err()
}

// NewService builds the supplier registry service. Deleting a supplier
// keeps its expenses.
func NewService(repo registry.Repository[Supplier], opts ...registry.Option) *registry.Service[Supplier, *Supplier] {
	return registry.NewService[Supplier]("supplier", repo, opts...)
}
