// Package symbol interns identifier strings into comparable handles,
// grounded on the teacher's core/symbol/symbol.go use of the standard
// library's unique.Handle[string]. Interning gives Symbol == Symbol a
// cheap pointer-style comparison, which the expr package's isSame
// (spec 4.1) and hashing rely on.
package symbol

import (
	"strconv"
	"unicode"
	"unique"
)

// Symbol is an interned identifier. The zero value is not a valid
// Symbol; always construct with New.
type Symbol unique.Handle[string]

// New interns s and returns its Symbol handle. It does not validate the
// identifier grammar — callers that box raw host input must call
// Valid first (package engine's Box does).
func New(s string) Symbol {
	return Symbol(unique.Make(s))
}

func (s Symbol) String() string {
	return unique.Handle[string](s).Value()
}

// IsWildcard reports whether this symbol names a pattern variable
// (spec GLOSSARY: "an identifier starting with _"). Wildcards cannot be
// reassigned a value definition.
func (s Symbol) IsWildcard() bool {
	str := s.String()
	return len(str) > 0 && str[0] == '_'
}

// Valid reports whether s follows the core identifier grammar: it must
// start with a letter or underscore (underscore reserved for
// wildcards), continue with letters, digits or underscores, and contain
// no whitespace.
func Valid(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !validFirst(r) {
				return false
			}
			continue
		}
		if !validRest(r) {
			return false
		}
	}
	return true
}

func validFirst(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func validRest(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// QuotedInputForm renders s the way a serializer would need to quote it
// if it is not a bare valid identifier (used by expr's debug String()).
func QuotedInputForm(s string) string {
	if Valid(s) {
		return s
	}
	return "Symbol(" + strconv.Quote(s) + ")"
}
