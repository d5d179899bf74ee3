package cronlex

import (
	"strconv"
	"strings"
)

// ValidateSyntax is a conservative pre-check on a cron field, before it is expanded. It reports whether the field is
// a lone wildcard (`*` or `?`), or is composed exclusively of digits and the `*?/,-` symbols, where every number in
// it lies within the minimum and maximum bounds.
//
// It is a predicate and not a parser: it returns false on any violation, leaving it to the caller to describe the
// offending field.
func ValidateSyntax(field string, minimum, maximum int) bool {
	if field == "*" || field == "?" {
		return true
	}

	if !validateCharacters(field) {
		return false
	}

	for _, n := range strings.FieldsFunc(field, isSymbol) {
		num, err := strconv.Atoi(n)
		if err != nil || num < minimum || num > maximum {
			return false
		}
	}

	return true
}

func validateCharacters(s string) bool {
	if s == "" {
		return false
	}

	for i := range s {
		if (s[i] >= '0' && s[i] <= '9') || isSymbol(rune(s[i])) {
			continue
		}

		return false
	}

	return true
}

func isSymbol(r rune) bool {
	return r == '*' || r == '?' || r == '/' || r == ',' || r == '-'
}
