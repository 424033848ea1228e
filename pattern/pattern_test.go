package pattern

import (
	"testing"

	"github.com/casengine/core/expr"
	"github.com/casengine/core/numeric"
	"github.com/casengine/core/symbol"
)

func TestMatchBlank(t *testing.T) {
	n := expr.NewNumber(numeric.NewInt(5))
	if _, ok := Match(B(), n, nil); !ok {
		t.Fatalf("expected Blank to match any single expression")
	}
}

func TestMatchNamedBinding(t *testing.T) {
	n := expr.NewNumber(numeric.NewInt(7))
	b, ok := Match(Bind("x", B()), n, nil)
	if !ok {
		t.Fatalf("expected match")
	}
	if !expr.IsSame(b["x"], n) {
		t.Fatalf("expected x bound to the matched number")
	}
}

func TestMatchHeadWithSequence(t *testing.T) {
	f := expr.NewFunction(symbol.New("Plus"),
		expr.NewSymbol("a"), expr.NewSymbol("b"), expr.NewSymbol("c"))
	p := Fn("Plus", Bind("first", B()), Bind("rest", BSeq()))
	b, ok := Match(p, f, nil)
	if !ok {
		t.Fatalf("expected Head pattern with a trailing sequence to match")
	}
	if !expr.IsSame(b["first"], expr.NewSymbol("a")) {
		t.Fatalf("expected first bound to a")
	}
	rest, ok := b["rest"].(*expr.TensorExpr)
	if !ok || len(rest.Elems) != 2 {
		t.Fatalf("expected rest to bind the remaining two arguments, got %v", b["rest"])
	}
}

func TestMatchNullSequenceAllowsEmpty(t *testing.T) {
	f := expr.NewFunction(symbol.New("Plus"), expr.NewSymbol("a"))
	p := Fn("Plus", Bind("first", B()), Bind("rest", BNullSeq()))
	b, ok := Match(p, f, nil)
	if !ok {
		t.Fatalf("expected NullSeq to allow zero remaining arguments")
	}
	rest := b["rest"].(*expr.TensorExpr)
	if len(rest.Elems) != 0 {
		t.Fatalf("expected empty rest binding, got %d elems", len(rest.Elems))
	}
}

func TestRuleApply(t *testing.T) {
	zero := expr.NewNumber(numeric.NewInt(0))
	rule := NewRule("Plus:DropZero",
		Fn("Plus", Bind("x", B()), L(zero)),
		func(b Bindings) expr.Expression { return b["x"] },
	)
	target := expr.NewFunction(symbol.New("Plus"), expr.NewSymbol("x"), zero)
	out, ok := rule.Apply(target)
	if !ok || !expr.IsSame(out, expr.NewSymbol("x")) {
		t.Fatalf("expected Plus(x, 0) -> x, got %v ok=%v", out, ok)
	}
}
