package models

import (
	"strings"

	"legalflow/internal/validation"
)

// Gender values accepted for genero.
var Genders = []string{"Masculino", "Feminino", "Outro", "Não informar"}

// MaritalStatuses values accepted for estadoCivil.
var MaritalStatuses = []string{"Solteiro(a)", "Casado(a)", "Divorciado(a)", "Viúvo(a)", "União Estável", "Outro"}

// Person holds the identity fields shared by individual clients and
// representatives.
type Person struct {
	CPF            string `json:"cpf"`
	NomeCompleto   string `json:"nomeCompleto"`
	Apelido        string `json:"apelido"`
	DataNascimento string `json:"dataNascimento"`
	Naturalidade   string `json:"naturalidade"`
	RG             string `json:"rg"`
	OrgaoEmissor   string `json:"orgaoEmissor"`
	Genero         string `json:"genero"`
	EstadoCivil    string `json:"estadoCivil"`
	NomeMae        string `json:"nomeMae"`
	NomePai        string `json:"nomePai"`
	Contato        string `json:"contato"`
	Email          string `json:"email"`
}

func (p *Person) normalize() {
	for _, f := range []*string{
		&p.CPF, &p.NomeCompleto, &p.Apelido, &p.DataNascimento, &p.Naturalidade, &p.RG,
		&p.OrgaoEmissor, &p.Genero, &p.EstadoCivil, &p.NomeMae, &p.NomePai, &p.Contato, &p.Email,
	} {
		*f = strings.TrimSpace(*f)
	}
}

// validateDetails checks the optional fields common to every person.
func (p Person) validateDetails(c *validation.Checker) {
	c.Field("dataNascimento", p.DataNascimento, validation.Optional(validation.ISODate("Data de nascimento inválida")))
	c.Field("genero", p.Genero, validation.Optional(validation.OneOf("Gênero inválido.", Genders...)))
	c.Field("estadoCivil", p.EstadoCivil, validation.Optional(validation.OneOf("Estado civil inválido.", MaritalStatuses...)))
	c.Field("email", p.Email, validation.Optional(validation.Email("Email inválido")))
}

// Attachment names a supporting document. Only the name and media type are
// kept.
type Attachment struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func normalizeAttachments(list []Attachment) []Attachment {
	if len(list) == 0 {
		return []Attachment{}
	}
	out := make([]Attachment, len(list))
	for i, a := range list {
		out[i] = Attachment{Name: strings.TrimSpace(a.Name), Type: strings.TrimSpace(a.Type)}
	}
	return out
}

func validateAttachments(c *validation.Checker, list []Attachment) {
	for i, a := range list {
		c.Index("attachments", i).Field("name", a.Name, validation.Required("Nome do anexo é obrigatório."))
	}
}
