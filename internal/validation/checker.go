// Package validation evaluates declarative field rules against candidate
// records and collects every failure as a dotted field path and message.
//
// A rule set is a sequence of Field and Refine calls on a Checker. Checks are
// never short-circuited: all violations found in one pass are reported.
//
//	c := validation.New()
//	c.Field("nomeCompleto", in.NomeCompleto, validation.MinLen(3, "Nome completo é obrigatório."))
//	addr := c.At("endereco")
//	addr.Field("zipCode", in.Endereco.ZipCode, validation.ZipCode("CEP inválido"))
//	return c.Err()
package validation

import (
	"strconv"

	dErrors "legalflow/pkg/domain-errors"
)

// Checker accumulates field errors under a path prefix. Checkers derived
// with At or Index share the same error list.
type Checker struct {
	errs   *[]dErrors.FieldError
	prefix string
}

// New returns an empty root checker.
func New() *Checker {
	return &Checker{errs: &[]dErrors.FieldError{}}
}

// At returns a checker whose paths are nested under name.
func (c *Checker) At(name string) *Checker {
	return &Checker{errs: c.errs, prefix: c.path(name)}
}

// Index returns a checker for element i of the repeated field name.
func (c *Checker) Index(name string, i int) *Checker {
	return c.At(name).At(strconv.Itoa(i))
}

// Field applies every rule to value and records each failure at name.
func (c *Checker) Field(name, value string, rules ...Rule) {
	for _, rule := range rules {
		if msg := rule(value); msg != "" {
			c.Add(name, msg)
		}
	}
}

// Refine records msg at name unless ok holds. Used for cross-field rules.
func (c *Checker) Refine(ok bool, name, msg string) {
	if !ok {
		c.Add(name, msg)
	}
}

// Add records a failure at name.
func (c *Checker) Add(name, msg string) {
	*c.errs = append(*c.errs, dErrors.FieldError{Path: c.path(name), Message: msg})
}

// Errors returns the failures recorded so far, in check order.
func (c *Checker) Errors() []dErrors.FieldError {
	return *c.errs
}

// Err returns a validation error carrying every failure, or nil.
func (c *Checker) Err() error {
	if len(*c.errs) == 0 {
		return nil
	}
	fields := make([]dErrors.FieldError, len(*c.errs))
	copy(fields, *c.errs)
	return dErrors.NewValidation(fields)
}

func (c *Checker) path(name string) string {
	switch {
	case c.prefix == "":
		return name
	case name == "":
		return c.prefix
	default:
		return c.prefix + "." + name
	}
}
