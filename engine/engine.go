// Package engine implements the public surface of spec section 6: the
// ComputeEngine that owns a scope stack, a definition registry, an
// assumption store, per-operator caches, and the simplifier wired with
// the default rule families plus any user-registered rules.
//
// Grounded on the teacher's engine/context.go Context (owns a
// SymbolTable/FunctionRegistry/EvaluationStack shared across a scope
// chain) and engine/evaluator.go's Evaluator, generalized to the
// ComputeEngine/EngineOptions shape spec 6's Configuration record
// requires. Unlike the teacher, where Context/Evaluator/FunctionRegistry
// are three separate collaborating types, this package collapses them
// into one ComputeEngine since package scope already owns the
// context-chain concern and package simplify already owns the
// evaluator's fixpoint loop; ComputeEngine is the thing that wires
// those packages together and adds the configuration/definition/output
// surface spec 6 names.
package engine

import (
	"github.com/casengine/core/assume"
	"github.com/casengine/core/logic"
	"github.com/casengine/core/rules"
	"github.com/casengine/core/scope"
	"github.com/casengine/core/simplify"
	"github.com/casengine/core/trig"
)

// AngularUnit re-exports package trig's enum so callers configuring an
// engine never need to import trig directly.
type AngularUnit = trig.AngularUnit

const (
	Radians  = trig.Radians
	Degrees  = trig.Degrees
	Gradians = trig.Gradians
	Turns    = trig.Turns
)

// Config is spec 6's Configuration record: precision (0 means
// "machine"), tolerance, angular unit, default numeric-approximation
// mode, the rule-application iteration limit, the cost function, the
// default scope, and strict mode. Strict is recorded here but no
// engine method reads it: signatures are not re-validated on call.
type Config struct {
	Precision            uint // 0 means machine precision
	Tolerance            float64
	AngularUnit          AngularUnit
	NumericApproximation bool
	IterationLimit       int
	CostFunc             simplify.CostFunc
	DefaultScope         *scope.Scope
	Strict               bool

	// TraceFunc, when non-nil, is invoked at each accepted rule
	// application and each fixpoint iteration (spec 5's evaluation
	// visibility surface), wired straight through to
	// simplify.Simplifier.OnStep.
	TraceFunc func(simplify.Step)
}

// Option mutates a Config under construction, mirroring the teacher's
// NewContext/NewChildContext pair generalized to a functional-option
// constructor since spec 6 names eight independent settings rather
// than the teacher's single maxDepth.
type Option func(*Config)

func WithPrecision(digits uint) Option    { return func(c *Config) { c.Precision = digits } }
func WithTolerance(tol float64) Option    { return func(c *Config) { c.Tolerance = tol } }
func WithAngularUnit(u AngularUnit) Option { return func(c *Config) { c.AngularUnit = u } }
func WithNumericApproximation(b bool) Option {
	return func(c *Config) { c.NumericApproximation = b }
}
func WithIterationLimit(n int) Option { return func(c *Config) { c.IterationLimit = n } }
func WithCostFunc(f simplify.CostFunc) Option {
	return func(c *Config) { c.CostFunc = f }
}
func WithStrict(b bool) Option { return func(c *Config) { c.Strict = b } }
func WithTraceFunc(f func(simplify.Step)) Option {
	return func(c *Config) { c.TraceFunc = f }
}

func defaultConfig() Config {
	return Config{
		Tolerance:      1e-12,
		AngularUnit:    Radians,
		IterationLimit: 256,
	}
}

// constantCache holds precision-dependent constants (Pi, ExponentialE)
// computed lazily and invalidated on a precision change (spec 5's
// "Precision changes" rule, spec 8's boundary behavior "Precision
// change invalidates cached Pi, ExponentialE").
type constantCache struct {
	values map[string]any
}

func newConstantCache() *constantCache {
	return &constantCache{values: make(map[string]any)}
}

func (c *constantCache) reset() { c.values = make(map[string]any) }

// ComputeEngine is spec 5's shared-resource owner: the scope stack, the
// assumption store, per-operator caches, and the simplifier. Rule
// handlers receive the engine only through the narrow entry points
// listed in spec 5 (Assume/Forget/Ask, PushScope/PopScope); nothing in
// this package lets a rule mutate the engine directly.
type ComputeEngine struct {
	Config Config

	root       *scope.Scope
	current    *scope.Scope
	assumes    *assume.Store
	rules      *compositeProvider
	simplify   *simplify.Simplifier
	constants  *constantCache
	inferred   map[string]bool
	scopeStack []*scope.Scope
}

// NewComputeEngine builds a ComputeEngine with the default rule
// families (rules.Provider, logic.Provider, trig.Provider) wired in,
// applying opts over defaultConfig. This is the spec 6 analogue of the
// teacher's NewContext: fresh scope, fresh registries, fresh stack.
func NewComputeEngine(opts ...Option) *ComputeEngine {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	root := cfg.DefaultScope
	if root == nil {
		root = scope.NewRootScope(cfg.IterationLimit * 16)
		seedDefaultAttributes(root)
	}
	e := &ComputeEngine{
		Config:    cfg,
		root:      root,
		current:   root,
		assumes:   assume.NewStore(),
		rules:     newCompositeProvider(rules.NewProvider(), logic.NewProvider(), trig.NewProvider()),
		constants: newConstantCache(),
		inferred:  make(map[string]bool),
	}
	s := simplify.New(e.current, e.rules)
	if cfg.CostFunc != nil {
		s.Cost = cfg.CostFunc
	}
	if cfg.IterationLimit > 0 {
		s.MaxIterations = cfg.IterationLimit
	}
	s.OnStep = cfg.TraceFunc
	e.simplify = s
	registerEqualityHandlers()
	return e
}

// Scope returns the engine's current lexical scope, for callers that
// need direct access to value/operator definitions (e.g. tests).
func (e *ComputeEngine) Scope() *scope.Scope { return e.current }

// Assumptions returns the engine's assumption store.
func (e *ComputeEngine) Assumptions() *assume.Store { return e.assumes }

// SetPrecision changes the engine's working precision and invalidates
// every cached precision-dependent constant (spec 5's "Precision
// changes" rule): subsequent reads of Pi, ExponentialE, etc. recompute
// on demand at the new precision.
func (e *ComputeEngine) SetPrecision(digits uint) {
	e.Config.Precision = digits
	e.constants.reset()
}

// mustEngine panics on a nil engine: spec 7's catastrophic-condition
// rule ("calling evaluate with no engine" never becomes an inline
// Error expression, it is a programmer error).
func mustEngine(e *ComputeEngine) {
	if e == nil {
		panic("engine: method called on a nil *ComputeEngine")
	}
}
