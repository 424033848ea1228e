package engine

import "testing"

func TestNewComputeEngineDefaults(t *testing.T) {
	e := NewComputeEngine()
	if e.Config.IterationLimit != 256 {
		t.Fatalf("IterationLimit = %d, want 256", e.Config.IterationLimit)
	}
	if e.Config.AngularUnit != Radians {
		t.Fatalf("AngularUnit = %v, want Radians", e.Config.AngularUnit)
	}
	if e.simplify == nil {
		t.Fatal("simplifier not wired")
	}
}

func TestNewComputeEngineOptions(t *testing.T) {
	e := NewComputeEngine(WithPrecision(50), WithIterationLimit(10), WithAngularUnit(Degrees))
	if e.Config.Precision != 50 {
		t.Fatalf("Precision = %d, want 50", e.Config.Precision)
	}
	if e.simplify.MaxIterations != 10 {
		t.Fatalf("MaxIterations = %d, want 10", e.simplify.MaxIterations)
	}
	if e.Config.AngularUnit != Degrees {
		t.Fatal("AngularUnit not applied")
	}
}

func TestSetPrecisionInvalidatesConstants(t *testing.T) {
	e := NewComputeEngine(WithPrecision(20))
	first := e.Pi()
	if _, ok := e.constants.values["Pi"]; !ok {
		t.Fatal("Pi not cached after first call")
	}
	e.SetPrecision(40)
	if _, ok := e.constants.values["Pi"]; ok {
		t.Fatal("Pi cache not invalidated by SetPrecision")
	}
	second := e.Pi()
	_ = first
	_ = second
}

func TestMustEngineOnNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on nil engine")
		}
	}()
	var e *ComputeEngine
	e.Evaluate(nil)
}
