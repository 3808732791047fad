package validation

import (
	"legalflow/pkg/platform/strings"
)

var (
	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// ValidCNPJ reports whether the organization tax id carries valid check
// digits. Punctuation is ignored; the id must have exactly 14 digits that
// are not all the same.
func ValidCNPJ(value string) bool {
	digits := strings.DigitsOnly(value)
	if len(digits) != 14 || repeated(digits) {
		return false
	}
	d := make([]int, len(digits))
	for i := range digits {
		d[i] = int(digits[i] - '0')
	}
	return checkDigit(d[:12], cnpjFirstWeights) == d[12] &&
		checkDigit(d[:13], cnpjSecondWeights) == d[13]
}

func checkDigit(digits, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += digits[i] * w
	}
	if r := sum % 11; r >= 2 {
		return 11 - r
	}
	return 0
}

func repeated(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}
