// Package lawyers keeps the practice's lawyer roster.
package lawyers

import (
	"strings"

	"legalflow/internal/registry"
	"legalflow/internal/validation"
	"legalflow/pkg/domain"
)

// Lawyer is a member of the practice.
type Lawyer struct {
	domain.Stamp
	Nome          string `json:"nome"`
	OAB           string `json:"oab"`
	Especialidade string `json:"especialidade"`
	Contato       string `json:"contato"`
}

func (l *Lawyer) Normalize() {
	l.Nome = strings.TrimSpace(l.Nome)
	l.OAB = strings.ToUpper(strings.TrimSpace(l.OAB))
	l.Especialidade = strings.TrimSpace(l.Especialidade)
	l.Contato = strings.TrimSpace(l.Contato)
}

func (l *Lawyer) Validate() error {
	c := validation.New()
	c.Field("nome", l.Nome, validation.Required("Nome é obrigatório."))
	c.Field("oab", l.OAB, validation.Required("OAB é obrigatória."))
	return c.Err()
}

// NewService builds the lawyer registry service.
func NewService(repo registry.Repository[Lawyer], opts ...registry.Option) *registry.Service[Lawyer, *Lawyer] {
	return registry.NewService[Lawyer]("lawyer", repo, opts...)
}
