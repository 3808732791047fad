package validation

import (
	"encoding/json"
	"net/mail"
	"regexp"
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

// Rule checks a single value. It returns the failure message, or "" when the
// value passes.
type Rule func(value string) string

var (
	cpfPattern  = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	cnpjPattern = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`)
	zipPattern  = regexp.MustCompile(`^\d{5}-\d{3}$`)
)

// Required fails on blank values.
func Required(msg string) Rule {
	return func(v string) string {
		if strings.TrimSpace(v) == "" {
			return msg
		}
		return ""
	}
}

// MinLen fails when the trimmed value has fewer than n characters.
func MinLen(n int, msg string) Rule {
	return func(v string) string {
		if utf8.RuneCountInString(strings.TrimSpace(v)) < n {
			return msg
		}
		return ""
	}
}

// ExactLen fails unless the value has exactly n characters.
func ExactLen(n int, msg string) Rule {
	return func(v string) string {
		if utf8.RuneCountInString(v) != n {
			return msg
		}
		return ""
	}
}

// Matches fails unless re matches the value.
func Matches(re *regexp.Regexp, msg string) Rule {
	return func(v string) string {
		if !re.MatchString(v) {
			return msg
		}
		return ""
	}
}

// OneOf fails unless the value is one of allowed.
func OneOf(msg string, allowed ...string) Rule {
	return func(v string) string {
		if !slices.Contains(allowed, v) {
			return msg
		}
		return ""
	}
}

// Email fails unless the value is a bare address such as ana@example.com.
func Email(msg string) Rule {
	return func(v string) string {
		addr, err := mail.ParseAddress(v)
		if err != nil || addr.Address != v || !strings.Contains(v[strings.LastIndex(v, "@"):], ".") {
			return msg
		}
		return ""
	}
}

// ISODate fails unless the value is a YYYY-MM-DD calendar date.
func ISODate(msg string) Rule {
	return func(v string) string {
		if _, err := time.Parse("2006-01-02", v); err != nil {
			return msg
		}
		return ""
	}
}

// CPF checks the formatted individual tax id pattern DDD.DDD.DDD-DD.
func CPF(msg string) Rule {
	return Matches(cpfPattern, msg)
}

// CNPJ checks the formatted organization tax id pattern DD.DDD.DDD/DDDD-DD
// and its check digits, reporting a single failure for either.
func CNPJ(msg string) Rule {
	return func(v string) string {
		if !cnpjPattern.MatchString(v) || !ValidCNPJ(v) {
			return msg
		}
		return ""
	}
}

// CNPJChecksum checks only the check digits, ignoring punctuation.
func CNPJChecksum(msg string) Rule {
	return func(v string) string {
		if !ValidCNPJ(v) {
			return msg
		}
		return ""
	}
}

// ZipCode checks the postal code pattern DDDDD-DDD.
func ZipCode(msg string) Rule {
	return Matches(zipPattern, msg)
}

// Optional applies rules only to non-blank values.
func Optional(rules ...Rule) Rule {
	return func(v string) string {
		if strings.TrimSpace(v) == "" {
			return ""
		}
		for _, rule := range rules {
			if msg := rule(v); msg != "" {
				return msg
			}
		}
		return ""
	}
}

// JSON fails unless the value is syntactically valid JSON. The content is not
// inspected.
func JSON(msg string) Rule {
	return func(v string) string {
		if !json.Valid([]byte(v)) {
			return msg
		}
		return ""
	}
}
