package expr

import (
	"strings"

	"github.com/casengine/core/domain"
	"github.com/casengine/core/symbol"
)

var headTensor = symbol.New("List")

// TensorExpr boxes spec 3.1's Tensor variant: a (possibly nested)
// rectangular array of expressions. A rank-1 tensor is a vector; a
// rank-2 tensor with equal row lengths is a matrix. Irregular nesting
// is rejected at construction, matching the teacher's List type, which
// is always a flat sequence — Tensor generalizes it to N dimensions by
// storing nested TensorExpr elements and validating shape.
type TensorExpr struct {
	Elems []Expression // either all *TensorExpr (deeper rank) or all leaves
	meta  *Metadata
}

// NewVector builds a rank-1 tensor.
func NewVector(elems ...Expression) *TensorExpr { return &TensorExpr{Elems: elems} }

// NewTensor builds a tensor from rows, validating every row has the
// same shape (spec 3.1's rectangularity requirement).
func NewTensor(rows ...*TensorExpr) (*TensorExpr, bool) {
	if len(rows) == 0 {
		return &TensorExpr{}, true
	}
	want := rows[0].Shape()
	elems := make([]Expression, len(rows))
	for i, r := range rows {
		got := r.Shape()
		if len(got) != len(want) {
			return nil, false
		}
		for j := range got {
			if got[j] != want[j] {
				return nil, false
			}
		}
		elems[i] = r
	}
	return &TensorExpr{Elems: elems}, true
}

func (t *TensorExpr) Kind() Kind            { return KindTensor }
func (t *TensorExpr) Head() symbol.Symbol   { return headTensor }
func (t *TensorExpr) IsAtom() bool          { return false }
func (t *TensorExpr) IsCanonical() bool     { return true }
func (t *TensorExpr) Metadata() *Metadata   { return t.meta }
func (t *TensorExpr) Domain() domain.Domain { return domain.Lit(domain.Lists) }

func (t *TensorExpr) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range t.Elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	b.WriteByte('}')
	return b.String()
}

func (t *TensorExpr) isSame(o Expression) bool {
	other, ok := o.(*TensorExpr)
	if !ok || len(t.Elems) != len(other.Elems) {
		return false
	}
	for i := range t.Elems {
		if !t.Elems[i].isSame(other.Elems[i]) {
			return false
		}
	}
	return true
}

// Shape returns the dimensions of the tensor, outermost first. A
// ragged (non-rectangular) tensor never arises because NewTensor
// refuses to build one.
func (t *TensorExpr) Shape() []int {
	shape := []int{len(t.Elems)}
	if len(t.Elems) == 0 {
		return shape
	}
	if child, ok := t.Elems[0].(*TensorExpr); ok {
		shape = append(shape, child.Shape()...)
	}
	return shape
}

func (t *TensorExpr) Rank() int { return len(t.Shape()) }

func (t *TensorExpr) flatten() []Expression { return t.Elems }
