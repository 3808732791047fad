// Package address holds the postal address shared by clients,
// representatives and suppliers.
package address

import (
	"strings"

	"legalflow/internal/validation"
)

// Address is a Brazilian postal address.
type Address struct {
	Street         string `json:"street"`
	Number         string `json:"number"`
	Complement     string `json:"complement"`
	Neighborhood   string `json:"neighborhood"`
	City           string `json:"city"`
	State          string `json:"state"`
	ZipCode        string `json:"zipCode"`
	ReferencePoint string `json:"referencePoint"`
}

const stateLenMsg = "UF deve ter 2 caracteres"

// Normalize trims every field and upper-cases the state code.
func (a *Address) Normalize() {
	for _, f := range []*string{
		&a.Street, &a.Number, &a.Complement, &a.Neighborhood,
		&a.City, &a.State, &a.ZipCode, &a.ReferencePoint,
	} {
		*f = strings.TrimSpace(*f)
	}
	a.State = strings.ToUpper(a.State)
}

// IsZero reports whether no field was filled in.
func (a Address) IsZero() bool {
	return a == Address{}
}

// Validate checks a mandatory address.
func (a Address) Validate(c *validation.Checker) {
	c.Field("street", a.Street, validation.Required("Rua é obrigatória"))
	c.Field("neighborhood", a.Neighborhood, validation.Required("Bairro é obrigatório"))
	c.Field("city", a.City, validation.Required("Cidade é obrigatória"))
	c.Field("state", a.State, validation.ExactLen(2, stateLenMsg))
	c.Field("zipCode", a.ZipCode, validation.ZipCode("CEP inválido"))
}

// ValidateIfPresent skips an address left blank and applies Validate to
// anything else.
func (a Address) ValidateIfPresent(c *validation.Checker) {
	if a.IsZero() {
		return
	}
	a.Validate(c)
}

// ValidateOptional checks only the format of fields that were filled in.
func (a Address) ValidateOptional(c *validation.Checker, zipMsg string) {
	c.Field("state", a.State, validation.Optional(validation.ExactLen(2, stateLenMsg)))
	c.Field("zipCode", a.ZipCode, validation.Optional(validation.ZipCode(zipMsg)))
}
