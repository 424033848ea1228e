package engine

import "github.com/casengine/core/expr"

// Error kind constants name spec 7's eleven inline error kinds. Each is
// carried as an ErrorExpr's ErrorType, distinct from a Go error: a
// domain error is always a first-class Expression that propagates
// through further operations (expr.Contagion), never a Go error
// return from Box/Evaluate/Simplify.
const (
	ErrInvalidSymbol      = "invalid-symbol"
	ErrUnknownSymbol      = "unknown-symbol"
	ErrMissingArgument    = "missing-argument"
	ErrUnexpectedArgument = "unexpected-argument"
	ErrIncompatibleType   = "incompatible-type"
	ErrDomainError        = "domain-error"
	ErrDivisionByZero     = "division-by-zero"
	ErrIndeterminate      = "indeterminate"
	ErrCyclicDefinition   = "cyclic-definition"
	ErrPrecisionExceeded  = "precision-exceeded"
	ErrCancelled          = "cancelled"
)

// newDomainError builds an inline Error expression of the given kind,
// the boxing surface's error return shape for every recoverable
// failure spec 7 names. offending, if non-nil, is recorded as the
// ErrorExpr's Cause so a caller can inspect what triggered it.
func newDomainError(kind, message string, offending expr.Expression) *expr.ErrorExpr {
	return expr.NewErrorExpr(kind, message, offending)
}

// duplicateDeclarationError is the specific domain error defineSymbol/
// defineFunction raise when re-declaring a name whose existing
// definition was not inferred (spec 6: "Re-declaration ... raises
// duplicate-declaration").
func duplicateDeclarationError(name string) *expr.ErrorExpr {
	return newDomainError("duplicate-declaration", "symbol already declared: "+name, expr.NewSymbol(name))
}
