package scope

import (
	"testing"

	"github.com/casengine/core/domain"
	"github.com/casengine/core/expr"
	"github.com/casengine/core/numeric"
)

func TestValueLookupAcrossParent(t *testing.T) {
	root := NewRootScope(0)
	root.SetValue("x", &ValueDefinition{Value: expr.NewNumber(numeric.NewInt(1)), Domain: domain.Lit(domain.Integers)})

	child := root.Push()
	if v, ok := child.GetValue("x"); !ok || v == nil {
		t.Fatalf("expected child scope to see parent's binding")
	}
}

func TestLocalShadowsParent(t *testing.T) {
	root := NewRootScope(0)
	root.SetValue("x", &ValueDefinition{Value: expr.NewNumber(numeric.NewInt(1))})

	child := root.Push()
	child.DefineLocal("x")
	child.SetValue("x", &ValueDefinition{Value: expr.NewNumber(numeric.NewInt(2))})

	v, _ := child.GetValue("x")
	if !expr.IsSame(v.Value, expr.NewNumber(numeric.NewInt(2))) {
		t.Fatalf("expected local binding to shadow parent")
	}
	pv, _ := root.GetValue("x")
	if !expr.IsSame(pv.Value, expr.NewNumber(numeric.NewInt(1))) {
		t.Fatalf("expected parent binding to be unaffected by local shadow")
	}
}

func TestOperatorAttributesShared(t *testing.T) {
	root := NewRootScope(0)
	root.DefineOperator("Plus", &OperatorDefinition{Attributes: []Attribute{Flat, Orderless}})
	child := root.Push()

	def, ok := child.GetOperator("Plus")
	if !ok || !def.Has(Flat) || !def.Has(Orderless) {
		t.Fatalf("expected child scope to see operator definitions registered on root")
	}
}

func TestEvaluationStackDepthGuard(t *testing.T) {
	s := NewEvaluationStack(2)
	if err := s.Push("Plus", nil); err != nil {
		t.Fatalf("unexpected error on first push: %v", err)
	}
	if err := s.Push("Plus", nil); err != nil {
		t.Fatalf("unexpected error on second push: %v", err)
	}
	if err := s.Push("Plus", nil); err == nil {
		t.Fatalf("expected the third push to exceed maxDepth and error")
	}
}
