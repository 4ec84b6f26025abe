// Package plinput defines the abstract shape a parsed lifted planning
// description is consumed through. The grounding core never parses text
// itself — text parsing and PDDL-specific syntax are an external
// collaborator's concern (see spec's Out-of-scope list); this package
// only fixes the tree shape a translator must hand to pkg/prepare.
package plinput

// TermExpr is a parsed term: either a reference to a parameter name local
// to the enclosing scope, or a reference to a named object/constant.
type TermExpr struct {
	IsParameter bool
	Name        string // parameter name, or object/constant name
}

// AtomExpr is a parsed predicate application.
type AtomExpr struct {
	Predicate string
	Terms     []TermExpr
}

// LiteralExpr is a parsed atom with a polarity.
type LiteralExpr struct {
	Atom    AtomExpr
	Negated bool
}

// OperatorKindExpr mirrors model.OperatorKind at the parse-tree level, so
// pkg/prepare doesn't need to import model into a parser-facing package.
type OperatorKindExpr string

const (
	OpExprNegate       OperatorKindExpr = "negate"
	OpExprAdd          OperatorKindExpr = "+"
	OpExprSub          OperatorKindExpr = "-"
	OpExprMul          OperatorKindExpr = "*"
	OpExprDiv          OperatorKindExpr = "/"
	OpExprEqual        OperatorKindExpr = "="
	OpExprNotEqual     OperatorKindExpr = "!="
	OpExprLessEqual    OperatorKindExpr = "<="
	OpExprLess         OperatorKindExpr = "<"
	OpExprGreaterEqual OperatorKindExpr = ">="
	OpExprGreater      OperatorKindExpr = ">"
)

// FunctionTermExpr is a parsed function application (no value attached —
// values are only known once terms are ground).
type FunctionTermExpr struct {
	Function string
	Terms    []TermExpr
}

// NumExprTag discriminates FunctionExpr's alternatives at the parse-tree
// level.
type NumExprTag uint8

const (
	NumExprConstant NumExprTag = iota
	NumExprFunctionTerm
	NumExprOperator
)

// FunctionExpr is a parsed numeric expression.
type FunctionExpr struct {
	Tag      NumExprTag
	Constant float64
	Term     FunctionTermExpr
	Operator OperatorKindExpr
	Operands []FunctionExpr // one for Negate, two for binary, n for multi
}

// NumericConstraintExpr is a parsed comparison between two numeric
// expressions, used inside a precondition.
type NumericConstraintExpr struct {
	Operator OperatorKindExpr
	Lhs      FunctionExpr
	Rhs      FunctionExpr
}

// ConditionExpr is a parsed conjunctive condition: a precondition, an
// axiom body, or a `when` guard. Parameters is the scope's own parameter
// name list (not including any enclosing scope's parameters, which the
// builder tracks separately via the scope stack).
type ConditionExpr struct {
	Parameters []string
	Literals   []LiteralExpr
	Numeric    []NumericConstraintExpr
}

// NumericEffectExpr is a parsed numeric effect: apply Operator to the
// function term's current value and Expr's evaluated value.
type NumericEffectExpr struct {
	Operator OperatorKindExpr
	Target   FunctionTermExpr
	Expr     FunctionExpr
}

// EffectExpr is a parsed, possibly-conditional effect: `forall`
// parameters, an optional `when` guard, and the unconditional body that
// applies once the guard holds.
type EffectExpr struct {
	ForallParameters []string
	When             *ConditionExpr // nil if unconditional
	AddLiterals      []AtomExpr
	DeleteLiterals   []AtomExpr
	NumericEffects   []NumericEffectExpr
}

// ActionDef is a parsed parameterised action schema.
type ActionDef struct {
	Name         string
	Parameters   []string
	Precondition ConditionExpr
	Effects      []EffectExpr
}

// AxiomDef is a parsed parameterised derived-predicate rule.
type AxiomDef struct {
	HeadPredicate string
	HeadTerms     []TermExpr
	Parameters    []string
	Body          ConditionExpr
}

// MetricExpr is the optional parsed plan-quality objective.
type MetricExpr struct {
	Minimize   bool
	Expression FunctionExpr
}

// Domain is the parsed domain half of a lifted description: every symbol
// and schema, with predicates/functions not yet classified by kind.
type Domain struct {
	Name       string
	Predicates []PredicateDecl
	Functions  []FunctionDecl
	Actions    []ActionDef
	Axioms     []AxiomDef
}

// PredicateDecl is a parsed predicate signature, kind not yet assigned.
type PredicateDecl struct {
	Name  string
	Arity int
}

// FunctionDecl is a parsed function signature, kind not yet assigned.
type FunctionDecl struct {
	Name  string
	Arity int
}

// Problem is the parsed problem half: the object universe, initial
// facts/values, goal, and optional metric.
type Problem struct {
	Name                  string
	Objects               []string
	InitialAtoms          []AtomExpr
	InitialFunctionValues []InitialFunctionValue
	Goal                  ConditionExpr
	Metric                *MetricExpr
}

// InitialFunctionValue is a parsed `(= (fn args...) value)` initial
// assignment.
type InitialFunctionValue struct {
	Term  FunctionTermExpr
	Value float64
}

// Description is the abstract translator interface the core consumes: an
// already-parsed domain+problem pair. A concrete parser (PDDL, JSON
// fixture, or any other front end) implements this to hand trees to
// pkg/prepare without the core depending on any parsing library.
type Description interface {
	Domain() *Domain
	Problem() *Problem
}
