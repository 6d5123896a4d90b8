package namer

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// Namer is the function that change the name with some prepared formatting.
type Namer func(string) string

// NamingSnake is a Namer function that converts the 'raw' into the 'snake_case_name'.
func NamingSnake(raw string) string {
	return strcase.ToSnake(raw)
}

// NamingKebab is a Namer function that converts the 'raw' into the 'kebab-case-name'.
func NamingKebab(raw string) string {
	return strcase.ToKebab(raw)
}

// IsSnake checks if the 'name' is a non empty lower snake case identifier,
// safe to be used as a query parameter or a column name.
func IsSnake(name string) bool {
	if name == "" || name[0] == '_' || (name[0] >= '0' && name[0] <= '9') {
		return false
	}
	return strings.IndexFunc(name, func(r rune) bool {
		return !(r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'))
	}) == -1
}

// IsIdentifier checks if the 'name' is composed only of the ASCII letters, digits and underscores
// and doesn't start with a digit.
func IsIdentifier(name string) bool {
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		return false
	}
	return strings.IndexFunc(name, func(r rune) bool {
		return !(r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'))
	}) == -1
}
