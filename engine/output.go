package engine

import (
	"strconv"

	"github.com/casengine/core/expr"
	"github.com/casengine/core/numeric"
)

// ShorthandMode is spec 6's `toMathJson(options)` shorthand control:
// how aggressively a node collapses to its bare-value form rather than
// a fully explicit `[operator, ...]`/`{...}` tree.
type ShorthandMode int

const (
	ShorthandAll ShorthandMode = iota
	ShorthandNumber
	ShorthandSymbol
	ShorthandFunction
	ShorthandString
	ShorthandNone
)

// DigitBudget controls how many significant digits a Number node's
// JSON form carries.
type DigitBudget struct {
	Auto bool
	Max  bool
	N    int // used when neither Auto nor Max is set
}

// MathJSONOptions is spec 6's `toMathJson(options)` argument: shorthand
// selection per variant, metadata inclusion, a digit budget, and an
// exclusion list of operator names that must never collapse to a
// shorthand even when the corresponding ShorthandMode would otherwise
// allow it.
type MathJSONOptions struct {
	Number    ShorthandMode
	Symbol    ShorthandMode
	Function  ShorthandMode
	String    ShorthandMode
	Metadata  bool // include wikidata/description/url when present
	Digits    DigitBudget
	Exclude   map[string]bool // operator names to always render explicit
}

// DefaultMathJSONOptions is the shorthand-everywhere default that
// backs Expression.json (spec 6: "a MathJSON tree using shorthand
// where permitted").
func DefaultMathJSONOptions() MathJSONOptions {
	return MathJSONOptions{
		Number: ShorthandAll, Symbol: ShorthandAll,
		Function: ShorthandAll, String: ShorthandAll,
		Digits: DigitBudget{Auto: true},
	}
}

// ToJSON renders e with DefaultMathJSONOptions, spec 6's plain `json`
// property every Expression exposes.
func ToJSON(e expr.Expression) any {
	return ToMathJSON(e, DefaultMathJSONOptions())
}

// ToMathJSON renders e as a MathJSON tree under the given options,
// spec 6's `toMathJson(options)`. A Number renders as a bare value
// unless options.Number is ShorthandNone, in which case as an explicit
// `{num: "..."}` record; a Symbol as a bare string or `{sym: "..."}`;
// a String as a bare quoted string or `{str: "..."}`; a Function as
// `[operator, ...operands]` or `{fn: operator, args: [...]}` — an
// operator listed in options.Exclude always takes the explicit form
// regardless of options.Function.
func ToMathJSON(e expr.Expression, opts MathJSONOptions) any {
	switch v := e.(type) {
	case *expr.NumberExpr:
		return numberJSON(v, opts)
	case *expr.SymbolExpr:
		return symbolJSON(v, opts)
	case *expr.StringExpr:
		return stringJSON(v, opts)
	case *expr.ErrorExpr:
		return errorJSON(v, opts)
	case *expr.FunctionExpr:
		return functionJSON(v, opts)
	case *expr.TensorExpr:
		return tensorJSON(v, opts)
	case *expr.DictionaryExpr:
		return dictionaryJSON(v, opts)
	default:
		return nil
	}
}

func withMetadata(m *expr.Metadata, opts MathJSONOptions, obj map[string]any) map[string]any {
	if !opts.Metadata || m == nil {
		return obj
	}
	if m.Wikidata != "" {
		obj["wikidata"] = m.Wikidata
	}
	if m.Description != "" {
		obj["description"] = m.Description
	}
	if m.URL != "" {
		obj["url"] = m.URL
	}
	return obj
}

func numberJSON(n *expr.NumberExpr, opts MathJSONOptions) any {
	if opts.Number != ShorthandNone {
		return numberValueJSON(n.Val, opts.Digits)
	}
	return withMetadata(n.Metadata(), opts, map[string]any{"num": numberValueJSON(n.Val, opts.Digits)})
}

// numberValueJSON renders the bare numeric value, using an exact
// string for the tiers that aren't faithfully representable as a JSON
// number (BigInt/Rational/BigFloat) and a {re, im} record of the two
// rendered parts for a Complex, matching spec 6's requirement that
// exactness survive the digit budget unless Digits forces rounding. An
// inexact Float honors the digit budget: Auto/Max keep full machine
// precision (Go's shortest round-tripping form), a fixed N rounds to
// that many significant digits.
func numberValueJSON(v numeric.Value, digits DigitBudget) any {
	switch x := v.(type) {
	case numeric.Int:
		return int64(x)
	case numeric.Float:
		if !digits.Auto && !digits.Max && digits.N > 0 {
			return mustParseFloat(strconv.FormatFloat(float64(x), 'g', digits.N, 64))
		}
		return float64(x)
	case numeric.Complex:
		return map[string]any{"re": numberValueJSON(x.Re, digits), "im": numberValueJSON(x.Im, digits)}
	default:
		return v.String()
	}
}

func mustParseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func symbolJSON(s *expr.SymbolExpr, opts MathJSONOptions) any {
	if opts.Symbol != ShorthandNone {
		return s.Name.String()
	}
	return withMetadata(s.Metadata(), opts, map[string]any{"sym": s.Name.String()})
}

func stringJSON(s *expr.StringExpr, opts MathJSONOptions) any {
	if opts.String != ShorthandNone {
		return s.Val
	}
	return withMetadata(s.Metadata(), opts, map[string]any{"str": s.Val})
}

func errorJSON(e *expr.ErrorExpr, opts MathJSONOptions) any {
	obj := map[string]any{"error": e.ErrorType, "message": e.Message}
	if e.Cause != nil {
		obj["cause"] = ToMathJSON(e.Cause, opts)
	}
	return obj
}

func functionJSON(f *expr.FunctionExpr, opts MathJSONOptions) any {
	head := f.Name.String()
	args := make([]any, len(f.Args))
	for i, a := range f.Args {
		args[i] = ToMathJSON(a, opts)
	}
	excluded := opts.Exclude != nil && opts.Exclude[head]
	if opts.Function != ShorthandNone && !excluded {
		out := make([]any, 0, len(args)+1)
		out = append(out, head)
		out = append(out, args...)
		return out
	}
	return withMetadata(f.Metadata(), opts, map[string]any{"fn": head, "args": args})
}

func tensorJSON(t *expr.TensorExpr, opts MathJSONOptions) any {
	out := make([]any, len(t.Elems))
	for i, el := range t.Elems {
		out[i] = ToMathJSON(el, opts)
	}
	return out
}

func dictionaryJSON(d *expr.DictionaryExpr, opts MathJSONOptions) any {
	obj := make(map[string]any, len(d.Keys()))
	for _, k := range d.Keys() {
		v, _ := d.Get(k)
		obj[dictionaryKeyString(k)] = ToMathJSON(v, opts)
	}
	return obj
}

func dictionaryKeyString(k expr.Expression) string {
	if s, ok := k.(*expr.StringExpr); ok {
		return s.Val
	}
	return k.String()
}
