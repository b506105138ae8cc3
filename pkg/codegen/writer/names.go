package writer

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
)

// ExportedName converts a schema name to an UpperCamelCase identifier
func ExportedName(name string) string {
	return safeStart(strcase.ToCamel(identChars(name)), "X")
}

// LowerName converts a schema name to a lowerCamelCase identifier
func LowerName(name string) string {
	return safeStart(strcase.ToLowerCamel(identChars(name)), "x")
}

// ConstName converts a SCREAMING_SNAKE case name to UpperCamelCase, so that
// NORMAL_MODE becomes NormalMode and _1 becomes 1
func ConstName(caseName string) string {
	var sb strings.Builder
	for _, part := range strings.Split(identChars(caseName), "_") {
		for i, r := range part {
			if i == 0 {
				sb.WriteRune(unicode.ToUpper(r))
			} else {
				sb.WriteRune(unicode.ToLower(r))
			}
		}
	}
	return sb.String()
}

// Unique hands out identifiers, suffixing repeats with 2, 3, ...
type Unique struct {
	taken map[string]bool
}

// NewUnique creates a name set with reserved names already taken
func NewUnique(reserved ...string) *Unique {
	u := &Unique{taken: make(map[string]bool)}
	for _, r := range reserved {
		u.taken[r] = true
	}
	return u
}

// Name returns name, or name with the lowest free numeric suffix
func (u *Unique) Name(name string) string {
	candidate := name
	for n := 2; u.taken[candidate]; n++ {
		candidate = name + strconv.Itoa(n)
	}
	u.taken[candidate] = true
	return candidate
}

// identChars replaces characters that cannot appear in an identifier with _
func identChars(name string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, name)
}

func safeStart(ident, prefix string) string {
	if ident == "" {
		return prefix
	}
	if unicode.IsDigit(rune(ident[0])) {
		return prefix + ident
	}
	return ident
}
