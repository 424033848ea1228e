package engine

import (
	"testing"

	"github.com/casengine/core/expr"
)

func TestBoxNumber(t *testing.T) {
	e := NewComputeEngine()
	out := e.Box(RawInt(3), BoxOptions{Canonical: true})
	n, ok := out.(*expr.NumberExpr)
	if !ok || n.Val.Float64() != 3 {
		t.Fatalf("Box(3) = %v, want Number(3)", out)
	}
}

func TestBoxSymbolValidatesIdentifier(t *testing.T) {
	e := NewComputeEngine()
	out := e.Box(RawSym("1bad"), BoxOptions{})
	errExpr, ok := expr.IsError(out)
	if !ok || errExpr.ErrorType != ErrInvalidSymbol {
		t.Fatalf("Box(1bad) = %v, want invalid-symbol error", out)
	}
}

func TestBoxSymbolAutoBind(t *testing.T) {
	e := NewComputeEngine()
	e.Box(RawSym("x"), BoxOptions{AutoBind: true})
	if !e.isInferred("x") {
		t.Fatal("expected x to be marked inferred after auto-bind")
	}
	if _, ok := e.Scope().GetValue("x"); !ok {
		t.Fatal("expected x to have a value definition installed")
	}
}

func TestBoxOperatorNestsOperands(t *testing.T) {
	e := NewComputeEngine()
	out := e.Box(RawOp("Plus", RawInt(1), RawInt(2)), BoxOptions{})
	fn, ok := out.(*expr.FunctionExpr)
	if !ok || fn.Name.String() != "Plus" || len(fn.Args) != 2 {
		t.Fatalf("Box(Plus(1,2)) = %v, want a 2-arg Plus function", out)
	}
}

func TestBoxOperatorInvalidName(t *testing.T) {
	e := NewComputeEngine()
	out := e.Box(RawOp("9Bad"), BoxOptions{})
	errExpr, ok := expr.IsError(out)
	if !ok || errExpr.ErrorType != ErrInvalidSymbol {
		t.Fatalf("Box(9Bad(...)) = %v, want invalid-symbol error", out)
	}
}

func TestBoxDictionary(t *testing.T) {
	e := NewComputeEngine()
	out := e.Box(RawDict(RawPair{Key: RawStr("a"), Value: RawInt(1)}), BoxOptions{})
	d, ok := out.(*expr.DictionaryExpr)
	if !ok || len(d.Keys()) != 1 {
		t.Fatalf("Box(Dictionary{a:1}) = %v, want a 1-entry dictionary", out)
	}
}

func TestBoxStringLiteral(t *testing.T) {
	e := NewComputeEngine()
	out := e.Box(RawStr("hello"), BoxOptions{})
	s, ok := out.(*expr.StringExpr)
	if !ok || s.Val != "hello" {
		t.Fatalf("Box(\"hello\") = %v, want String(hello)", out)
	}
}
