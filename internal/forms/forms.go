// Package forms describes editable field groups derived from entity rule
// sets. Field paths use the same dotted form as validation errors, so
// errors attach to the exact input that produced them.
package forms

import (
	"strconv"
	"strings"

	dErrors "legalflow/pkg/domain-errors"
)

// Kind tells a renderer which input to draw.
type Kind string

const (
	KindText     Kind = "text"
	KindDate     Kind = "date"
	KindSelect   Kind = "select"
	KindCheckbox Kind = "checkbox"
)

// Field is one editable input.
type Field struct {
	Path     string   `json:"path"`
	Label    string   `json:"label"`
	Kind     Kind     `json:"kind"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
	Value    any      `json:"value"`
	Errors   []string `json:"errors,omitempty"`
}

// Group is a titled set of fields and nested groups. Hidden groups keep
// their values so toggling visibility never loses input.
type Group struct {
	Name   string   `json:"name"`
	Label  string   `json:"label"`
	Path   string   `json:"path"`
	Key    string   `json:"key,omitempty"`
	Hidden bool     `json:"hidden"`
	Fields []Field  `json:"fields,omitempty"`
	Groups []Group  `json:"groups,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

// Join builds a dotted path, skipping empty segments.
func Join(parts ...string) string {
	nonEmpty := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ".")
}

// Index builds the path of element i under prefix.
func Index(prefix string, i int) string {
	return Join(prefix, strconv.Itoa(i))
}

func Text(path, label, value string, required bool) Field {
	return Field{Path: path, Label: label, Kind: KindText, Required: required, Value: value}
}

func Date(path, label, value string, required bool) Field {
	return Field{Path: path, Label: label, Kind: KindDate, Required: required, Value: value}
}

func Select(path, label, value string, required bool, options ...string) Field {
	return Field{Path: path, Label: label, Kind: KindSelect, Required: required, Options: options, Value: value}
}

func Checkbox(path, label string, value bool) Field {
	return Field{Path: path, Label: label, Kind: KindCheckbox, Value: value}
}

// AttachErrors places each field error on the field or group with the same
// path and returns the errors that matched nothing.
func AttachErrors(groups []Group, errs []dErrors.FieldError) []dErrors.FieldError {
	var unmatched []dErrors.FieldError
	for _, e := range errs {
		if !attach(groups, e) {
			unmatched = append(unmatched, e)
		}
	}
	return unmatched
}

func attach(groups []Group, e dErrors.FieldError) bool {
	for gi := range groups {
		g := &groups[gi]
		if g.Path != "" && g.Path == e.Path {
			g.Errors = append(g.Errors, e.Message)
			return true
		}
		for fi := range g.Fields {
			if g.Fields[fi].Path == e.Path {
				g.Fields[fi].Errors = append(g.Fields[fi].Errors, e.Message)
				return true
			}
		}
		if attach(g.Groups, e) {
			return true
		}
	}
	return false
}
