package models

import (
	"strings"

	"legalflow/internal/address"
	"legalflow/internal/validation"
)

// Kind discriminates the client variants.
type Kind string

const (
	KindIndividual  Kind = "individual"
	KindLegalEntity Kind = "legalEntity"
)

// Party is the variant-specific half of a client: *Individual or
// *LegalEntity. Each variant carries its own rule set, so fields of the
// other variant are never checked.
type Party interface {
	Kind() Kind
	DisplayName() string
	normalize()
	validate(c *validation.Checker)
}

// Individual is a natural person client.
type Individual struct {
	Person
	Endereco address.Address `json:"endereco"`
}

func (*Individual) Kind() Kind { return KindIndividual }

func (i *Individual) DisplayName() string { return i.NomeCompleto }

func (i *Individual) normalize() {
	i.Person.normalize()
	i.Endereco.Normalize()
}

func (i *Individual) validate(c *validation.Checker) {
	c.Field("cpf", i.CPF, validation.CPF("CPF inválido."))
	c.Field("nomeCompleto", i.NomeCompleto, validation.MinLen(3, "Nome completo é obrigatório."))
	i.validateDetails(c)
	i.Endereco.ValidateIfPresent(c.At("endereco"))
}

// ResponsiblePerson is the legally responsible contact of an organization.
type ResponsiblePerson struct {
	Nome    string `json:"nome"`
	Apelido string `json:"apelido"`
	CPF     string `json:"cpf"`
	Fone    string `json:"fone"`
	Email   string `json:"email"`
}

// LegalEntity is an organization client.
type LegalEntity struct {
	CNPJ               string            `json:"cnpj"`
	RazaoSocial        string            `json:"razaoSocial"`
	NomeFantasia       string            `json:"nomeFantasia"`
	InscricaoEstadual  string            `json:"inscricaoEstadual"`
	InscricaoMunicipal string            `json:"inscricaoMunicipal"`
	Responsavel        ResponsiblePerson `json:"responsavel"`
	EnderecoPJ         address.Address   `json:"enderecoPJ"`
}

func (*LegalEntity) Kind() Kind { return KindLegalEntity }

func (l *LegalEntity) DisplayName() string {
	if l.NomeFantasia != "" {
		return l.NomeFantasia
	}
	return l.RazaoSocial
}

func (l *LegalEntity) normalize() {
	for _, f := range []*string{
		&l.CNPJ, &l.RazaoSocial, &l.NomeFantasia, &l.InscricaoEstadual, &l.InscricaoMunicipal,
		&l.Responsavel.Nome, &l.Responsavel.Apelido, &l.Responsavel.CPF, &l.Responsavel.Fone, &l.Responsavel.Email,
	} {
		*f = strings.TrimSpace(*f)
	}
	l.EnderecoPJ.Normalize()
}

func (l *LegalEntity) validate(c *validation.Checker) {
	c.Field("cnpj", l.CNPJ, validation.CNPJ("CNPJ inválido."))
	c.Field("razaoSocial", l.RazaoSocial, validation.MinLen(3, "Razão Social é obrigatória."))
	resp := c.At("responsavel")
	resp.Field("nome", l.Responsavel.Nome, validation.MinLen(3, "Nome do Responsável é obrigatório."))
	resp.Field("cpf", l.Responsavel.CPF, validation.CPF("CPF do Responsável inválido."))
	resp.Field("email", l.Responsavel.Email, validation.Optional(validation.Email("Email do responsável inválido")))
	l.EnderecoPJ.ValidateIfPresent(c.At("enderecoPJ"))
}

// Representative acts for a client, typically a relative of a minor or an
// incapable person.
type Representative struct {
	Person
	GrauParentesco string           `json:"grauParentesco"`
	Endereco       *address.Address `json:"endereco,omitempty"`
	Attachments    []Attachment     `json:"attachments"`
}

func (r *Representative) normalize() {
	r.Person.normalize()
	r.GrauParentesco = strings.TrimSpace(r.GrauParentesco)
	if r.Endereco != nil {
		r.Endereco.Normalize()
		if r.Endereco.IsZero() {
			r.Endereco = nil
		}
	}
	r.Attachments = normalizeAttachments(r.Attachments)
}

func (r *Representative) validate(c *validation.Checker) {
	c.Field("cpf", r.CPF,
		validation.Required("CPF do representante é obrigatório."),
		validation.Optional(validation.CPF("CPF inválido.")))
	c.Field("nomeCompleto", r.NomeCompleto,
		validation.Required("Nome completo do representante é obrigatório."),
		validation.Optional(validation.MinLen(3, "Nome completo deve ter pelo menos 3 caracteres.")))
	c.Field("grauParentesco", r.GrauParentesco, validation.Required("Grau de parentesco do representante é obrigatório."))
	r.validateDetails(c)
	if r.Endereco != nil {
		r.Endereco.Validate(c.At("endereco"))
	}
	validateAttachments(c, r.Attachments)
}
