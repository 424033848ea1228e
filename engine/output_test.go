package engine

import (
	"reflect"
	"testing"

	"github.com/casengine/core/expr"
	"github.com/casengine/core/numeric"
	"github.com/casengine/core/symbol"
)

func TestToJSONShorthandDefaults(t *testing.T) {
	sum := expr.NewFunction(symbol.New("Plus"), expr.NewNumber(numeric.NewInt(1)), expr.NewSymbol("x"))
	got := ToJSON(sum)
	want := []any{"Plus", int64(1), "x"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ToJSON(Plus(1,x)) = %#v, want %#v", got, want)
	}
}

func TestToMathJSONExplicitFunction(t *testing.T) {
	sum := expr.NewFunction(symbol.New("Plus"), expr.NewNumber(numeric.NewInt(1)), expr.NewSymbol("x"))
	opts := DefaultMathJSONOptions()
	opts.Function = ShorthandNone
	got := ToMathJSON(sum, opts)
	obj, ok := got.(map[string]any)
	if !ok || obj["fn"] != "Plus" {
		t.Fatalf("ToMathJSON with ShorthandNone = %#v, want an explicit fn record", got)
	}
	args, ok := obj["args"].([]any)
	if !ok || len(args) != 2 {
		t.Fatalf("explicit fn record args = %#v, want 2 entries", obj["args"])
	}
}

func TestToMathJSONExcludeForcesExplicit(t *testing.T) {
	sum := expr.NewFunction(symbol.New("Plus"), expr.NewNumber(numeric.NewInt(1)), expr.NewNumber(numeric.NewInt(2)))
	opts := DefaultMathJSONOptions()
	opts.Exclude = map[string]bool{"Plus": true}
	got := ToMathJSON(sum, opts)
	if _, ok := got.(map[string]any); !ok {
		t.Fatalf("excluded operator should render explicit, got %#v", got)
	}
}

func TestToMathJSONSymbolShorthand(t *testing.T) {
	x := expr.NewSymbol("x")
	opts := DefaultMathJSONOptions()
	if got := ToMathJSON(x, opts); got != "x" {
		t.Fatalf("shorthand symbol = %#v, want bare \"x\"", got)
	}
	opts.Symbol = ShorthandNone
	got := ToMathJSON(x, opts)
	obj, ok := got.(map[string]any)
	if !ok || obj["sym"] != "x" {
		t.Fatalf("explicit symbol = %#v, want {sym: x}", got)
	}
}

func TestToMathJSONDigitBudgetRounds(t *testing.T) {
	n := expr.NewNumber(numeric.NewFloat(1.0 / 3.0))
	opts := DefaultMathJSONOptions()
	opts.Digits = DigitBudget{N: 3}
	got := ToMathJSON(n, opts)
	f, ok := got.(float64)
	if !ok {
		t.Fatalf("rounded float JSON = %#v, want a float64", got)
	}
	if f < 0.332 || f > 0.334 {
		t.Fatalf("rounded 1/3 to 3 digits = %v, want ~0.333", f)
	}
}

func TestToMathJSONErrorCarriesCause(t *testing.T) {
	errExpr := newDomainError(ErrDomainError, "bad", expr.NewSymbol("x"))
	got := ToMathJSON(errExpr, DefaultMathJSONOptions())
	obj, ok := got.(map[string]any)
	if !ok || obj["error"] != ErrDomainError {
		t.Fatalf("error JSON = %#v, want an error record", got)
	}
	if obj["cause"] != "x" {
		t.Fatalf("error JSON cause = %#v, want shorthand symbol x", obj["cause"])
	}
}

func TestToMathJSONDictionary(t *testing.T) {
	d := expr.NewDictionary([]expr.Expression{expr.NewString("a")}, []expr.Expression{expr.NewNumber(numeric.NewInt(1))})
	got := ToMathJSON(d, DefaultMathJSONOptions())
	obj, ok := got.(map[string]any)
	if !ok || obj["a"] != int64(1) {
		t.Fatalf("dictionary JSON = %#v, want {a: 1}", got)
	}
}
