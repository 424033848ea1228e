package engine

import (
	"context"

	"github.com/casengine/core/expr"
	"github.com/casengine/core/simplify"
)

// Evaluate runs spec 4.5's canonicalize-then-simplify pipeline to a
// fixpoint, the synchronous core that never suspends (spec 5:
// "The synchronous core never suspends; suspension is only observable
// to callers of the async variant").
func (e *ComputeEngine) Evaluate(ex expr.Expression) expr.Expression {
	mustEngine(e)
	return e.simplify.Simplify(ex)
}

// cancelled is the panic sentinel EvaluateAsync's trace hook raises
// once ctx is done; recovered by EvaluateAsync itself, never escapes.
type cancelledSentinel struct{}

var cancelled = cancelledSentinel{}

// EvaluateAsync runs Evaluate with a cancellation signal checked at
// the safe points spec 5 names: after each accepted rule application
// and after each simplifier fixpoint iteration (the two points
// simplify.Simplifier.OnStep already fires at). A tripped signal
// raises spec 7's *cancelled* condition, returned as an inline
// Error("cancelled") expression rather than unwinding as a Go panic,
// matching spec 7's "cancellation signal tripped (async path only)"
// kind, which is a recoverable domain condition, not a catastrophic
// one.
func (e *ComputeEngine) EvaluateAsync(ctx context.Context, ex expr.Expression) (result expr.Expression) {
	mustEngine(e)
	prevHook := e.simplify.OnStep
	e.simplify.OnStep = func(s simplify.Step) {
		if prevHook != nil {
			prevHook(s)
		}
		select {
		case <-ctx.Done():
			panic(cancelled)
		default:
		}
	}
	defer func() {
		e.simplify.OnStep = prevHook
		if r := recover(); r != nil {
			if r == cancelled {
				result = newDomainError(ErrCancelled, "evaluation cancelled", ex)
				return
			}
			panic(r)
		}
	}()
	result = e.simplify.Simplify(ex)
	return
}

// PushScope creates a fresh child lexical scope and makes it current
// (spec 3's "function evaluation creates a fresh scope per call to
// keep parameter bindings local").
func (e *ComputeEngine) PushScope() {
	mustEngine(e)
	e.scopeStack = append(e.scopeStack, e.current)
	e.current = e.current.Push()
	e.simplify.Scope = e.current
}

// PopScope discards the current scope's bindings and restores its
// parent, a no-op if already at the root.
func (e *ComputeEngine) PopScope() {
	mustEngine(e)
	if len(e.scopeStack) == 0 {
		return
	}
	e.current = e.scopeStack[len(e.scopeStack)-1]
	e.scopeStack = e.scopeStack[:len(e.scopeStack)-1]
	e.simplify.Scope = e.current
}

// WithScope brackets fn with a Push/Pop pair using defer, so the scope
// is released even if fn panics (spec 5's "Exceptional exits
// (cancellation, invariant failure) must still unwind the scope
// stack; implementations use guaranteed-release semantics around
// push").
func (e *ComputeEngine) WithScope(fn func()) {
	mustEngine(e)
	e.PushScope()
	defer e.PopScope()
	fn()
}
