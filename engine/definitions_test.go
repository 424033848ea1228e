package engine

import (
	"testing"

	"github.com/casengine/core/domain"
	"github.com/casengine/core/expr"
	"github.com/casengine/core/numeric"
	"github.com/casengine/core/symbol"
)

func TestDefineSymbolFirstDeclaration(t *testing.T) {
	e := NewComputeEngine()
	out := e.DefineSymbol("x", ValueDef{Value: expr.NewNumber(numeric.NewInt(5)), Type: domain.Lit(domain.Integers)})
	if _, ok := expr.IsError(out); ok {
		t.Fatalf("first DefineSymbol should not error: %v", out)
	}
	def, ok := e.Scope().GetValue("x")
	if !ok || !expr.IsSame(def.Value, expr.NewNumber(numeric.NewInt(5))) {
		t.Fatalf("x not bound to 5: %v", def)
	}
}

func TestDefineSymbolDuplicateDeclaration(t *testing.T) {
	e := NewComputeEngine()
	e.DefineSymbol("x", ValueDef{Value: expr.NewNumber(numeric.NewInt(5))})
	out := e.DefineSymbol("x", ValueDef{Value: expr.NewNumber(numeric.NewInt(6))})
	errExpr, ok := expr.IsError(out)
	if !ok || errExpr.ErrorType != "duplicate-declaration" {
		t.Fatalf("redeclaring x should raise duplicate-declaration, got %v", out)
	}
}

func TestDefineSymbolUpdatesInferred(t *testing.T) {
	e := NewComputeEngine()
	e.Box(RawSym("y"), BoxOptions{AutoBind: true})
	out := e.DefineSymbol("y", ValueDef{Value: expr.NewNumber(numeric.NewInt(7))})
	if _, ok := expr.IsError(out); ok {
		t.Fatalf("declaring over an inferred definition should succeed: %v", out)
	}
	def, _ := e.Scope().GetValue("y")
	if !expr.IsSame(def.Value, expr.NewNumber(numeric.NewInt(7))) {
		t.Fatal("y should now hold the explicit value 7")
	}
}

func TestDefineFunctionDuplicateDeclaration(t *testing.T) {
	e := NewComputeEngine()
	sig := domain.FunctionOf(domain.Lit(domain.Integers), domain.Lit(domain.Integers)).(domain.FunctionOfDomain)
	e.DefineFunction("Double", OperatorDef{Signature: sig})
	out := e.DefineFunction("Double", OperatorDef{Signature: sig})
	errExpr, ok := expr.IsError(out)
	if !ok || errExpr.ErrorType != "duplicate-declaration" {
		t.Fatalf("redeclaring Double should raise duplicate-declaration, got %v", out)
	}
}

func TestAssumeAndAsk(t *testing.T) {
	e := NewComputeEngine()
	x := expr.NewSymbol("x")
	prop := expr.NewFunction(symbol.New("Greater"), x, expr.NewNumber(numeric.NewInt(0)))
	e.Assume(prop)
	if got := e.Ask(prop); got != expr.True {
		t.Fatalf("Ask(assumed proposition) = %v, want True", got)
	}
}

func TestForgetClearsAssumptions(t *testing.T) {
	e := NewComputeEngine()
	x := expr.NewSymbol("x")
	prop := expr.NewFunction(symbol.New("Greater"), x, expr.NewNumber(numeric.NewInt(0)))
	e.Assume(prop)
	e.Forget(x)
	if got := e.Ask(prop); got == expr.True {
		t.Fatal("Ask after Forget should no longer be True")
	}
}
