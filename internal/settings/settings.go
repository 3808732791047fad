// Package settings keeps the reference tables edited under the settings
// screens: holidays and process types.
package settings

import (
	"strings"

	"legalflow/internal/registry"
	"legalflow/internal/validation"
	"legalflow/pkg/domain"
)

// Holiday is a day without court deadlines. Several holidays may share a
// date.
type Holiday struct {
	domain.Stamp
	Date        string `json:"date"`
	Description string `json:"description"`
}

func (h *Holiday) Normalize() {
	h.Date = strings.TrimSpace(h.Date)
	h.Description = strings.TrimSpace(h.Description)
}

func (h *Holiday) Validate() error {
	c := validation.New()
	c.Field("date", h.Date, validation.Required("Data é obrigatória."), validation.Optional(validation.ISODate("Data inválida.")))
	c.Field("description", h.Description, validation.Required("Descrição é obrigatória."))
	return c.Err()
}

// ProcessType is an entry of the process type catalogue, e.g.
// "Cível - Ação de Cobrança" in category "Cível".
type ProcessType struct {
	domain.Stamp
	Name     string `json:"name"`
	Category string `json:"category"`
}

func (p *ProcessType) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.TrimSpace(p.Category)
}

func (p *ProcessType) Validate() error {
	c := validation.New()
	c.Field("name", p.Name, validation.Required("Nome é obrigatório."))
	c.Field("category", p.Category, validation.Required("Categoria é obrigatória."))
	return c.Err()
}

func NewHolidayService(repo registry.Repository[Holiday], opts ...registry.Option) *registry.Service[Holiday, *Holiday] {
	return registry.NewService[Holiday]("holiday", repo, opts...)
}

func NewProcessTypeService(repo registry.Repository[ProcessType], opts ...registry.Option) *registry.Service[ProcessType, *ProcessType] {
	return registry.NewService[ProcessType]("process_type", repo, opts...)
}
