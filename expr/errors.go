package expr

import (
	"fmt"

	"github.com/casengine/core/domain"
	"github.com/casengine/core/symbol"
)

var headError = symbol.New("Error")

// ErrorExpr is the inline, contagious error node of spec section 7:
// domain errors (division by zero, argument type mismatches, domain
// violations) are represented as ordinary Expression values that
// propagate through further operations rather than aborting with a Go
// error. This is grounded directly on the teacher's core/errors.go
// ErrorExpr/StackFrame types; Go's error/panic machinery is reserved
// for catastrophic failures (stack overflow guard, internal
// invariant violations), never for domain errors a caller should be
// able to inspect and recover from symbolically.
type ErrorExpr struct {
	ErrorType string // "DivisionByZero", "DomainError", "ArgumentError", ...
	Message   string
	Cause     Expression     // the expression that triggered the error, if any
	Stack     []StackFrame   // evaluation frames active when the error was raised
	meta      *Metadata
}

// StackFrame records one frame of the evaluation stack (spec 5.4's
// EvaluationStack) at the point an error was raised, for diagnostics.
type StackFrame struct {
	Head       string
	Expression string
}

func NewErrorExpr(errorType, message string, cause Expression) *ErrorExpr {
	return &ErrorExpr{ErrorType: errorType, Message: message, Cause: cause}
}

func (e *ErrorExpr) Kind() Kind            { return KindError }
func (e *ErrorExpr) Head() symbol.Symbol   { return headError }
func (e *ErrorExpr) IsAtom() bool          { return true }
func (e *ErrorExpr) IsCanonical() bool     { return true }
func (e *ErrorExpr) Metadata() *Metadata   { return e.meta }
func (e *ErrorExpr) Domain() domain.Domain { return domain.Lit(domain.Anything) }

func (e *ErrorExpr) String() string {
	return fmt.Sprintf("Error(%s, %q)", e.ErrorType, e.Message)
}

// Error satisfies the Go error interface so an ErrorExpr can also be
// passed wherever a Go error value is expected.
func (e *ErrorExpr) Error() string { return fmt.Sprintf("%s: %s", e.ErrorType, e.Message) }

func (e *ErrorExpr) isSame(o Expression) bool {
	other, ok := o.(*ErrorExpr)
	if !ok {
		return false
	}
	if e.ErrorType != other.ErrorType || e.Message != other.Message {
		return false
	}
	if e.Cause == nil || other.Cause == nil {
		return e.Cause == other.Cause
	}
	return e.Cause.isSame(other.Cause)
}

// WithFrame returns a copy of e with one more stack frame pushed,
// mirroring ErrorExpr.Wrap in the teacher, used as an error
// propagates back up through nested evaluation calls.
func (e *ErrorExpr) WithFrame(head, exprStr string) *ErrorExpr {
	frames := make([]StackFrame, len(e.Stack), len(e.Stack)+1)
	copy(frames, e.Stack)
	frames = append(frames, StackFrame{Head: head, Expression: exprStr})
	return &ErrorExpr{ErrorType: e.ErrorType, Message: e.Message, Cause: e.Cause, Stack: frames}
}

// IsError reports whether e is an ErrorExpr, the check
// every rule family must perform before consuming its arguments (spec
// 7's contagion rule: any operation touching an Error yields an Error).
func IsError(e Expression) (*ErrorExpr, bool) {
	err, ok := e.(*ErrorExpr)
	return err, ok
}

// Contagion scans args for an ErrorExpr and returns the first one
// found, nil otherwise. Rule families call this before attempting any
// rewrite so an error argument short-circuits straight through.
func Contagion(args ...Expression) *ErrorExpr {
	for _, a := range args {
		if err, ok := IsError(a); ok {
			return err
		}
	}
	return nil
}
