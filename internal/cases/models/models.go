package models

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"legalflow/internal/validation"
	"legalflow/pkg/domain"
	pstrings "legalflow/pkg/platform/strings"
)

// Status tracks where a case stands.
type Status string

const (
	StatusNew        Status = "Novo"
	StatusInProgress Status = "Em Andamento"
	StatusDone       Status = "Concluído"
	StatusArchived   Status = "Arquivado"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusNew, StatusInProgress, StatusDone, StatusArchived}

// Case is a client's folder. Its registration date is the opening date.
type Case struct {
	domain.Stamp
	ClienteID string `json:"clienteId"`
	NumeroAno string `json:"numeroAno"`
	Tipo      string `json:"tipo"`
	Status    Status `json:"status"`
}

func (c *Case) Normalize() {
	c.ClienteID = strings.TrimSpace(c.ClienteID)
	c.NumeroAno = strings.TrimSpace(c.NumeroAno)
	c.Tipo = strings.TrimSpace(c.Tipo)
	c.Status = Status(strings.TrimSpace(string(c.Status)))
	if c.Status == "" {
		c.Status = StatusNew
	}
}

func (c *Case) Validate() error {
	chk := validation.New()
	chk.Field("clienteId", c.ClienteID, validation.Required("Cliente é obrigatório."))
	chk.Field("numeroAno", c.NumeroAno, validation.Required("Número/Ano da pasta é obrigatório."))
	chk.Field("tipo", c.Tipo, validation.Required("Tipo de processo é obrigatório."))
	allowed := make([]string, len(Statuses))
	for i, s := range Statuses {
		allowed[i] = string(s)
	}
	chk.Field("status", string(c.Status), validation.OneOf("Status inválido.", allowed...))
	return chk.Err()
}

// Process is a lawsuit filed within a case. It belongs to exactly one case.
type Process struct {
	domain.Stamp
	CaseID       string          `json:"caseId"`
	Valor        decimal.Decimal `json:"valor"`
	Advogados    []string        `json:"advogados"`
	ParceiroNome string          `json:"parceiroNome"`
	Financeiros  []string        `json:"financeiros"`
}

func (p *Process) Normalize() {
	p.CaseID = strings.TrimSpace(p.CaseID)
	p.ParceiroNome = strings.TrimSpace(p.ParceiroNome)
	p.Advogados = orEmpty(pstrings.DedupeAndTrim(p.Advogados))
	p.Financeiros = orEmpty(pstrings.DedupeAndTrim(p.Financeiros))
}

// Clone copies the lawyer and financial lists.
func (p Process) Clone() Process {
	p.Advogados = slices.Clone(p.Advogados)
	p.Financeiros = slices.Clone(p.Financeiros)
	return p
}

func (p *Process) Validate() error {
	chk := validation.New()
	chk.Field("caseId", p.CaseID, validation.Required("Pasta é obrigatória."))
	chk.Refine(!p.Valor.IsNegative(), "valor", "Valor não pode ser negativo.")
	return chk.Err()
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
