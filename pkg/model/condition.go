package model

import "github.com/mrlab-ai/groundcore/pkg/intern"

// NumericConstraint is a binary comparison (<=, <, >=, >, =, !=) between
// two function expressions, evaluated once the action or axiom's
// parameters are bound.
type NumericConstraint struct {
	Kind OperatorKind
	Lhs  FunctionExpressionID
	Rhs  FunctionExpressionID
}

// GroundNumericConstraint is the ground counterpart of NumericConstraint,
// used directly at the problem level (the goal condition has no
// parameters to bind, so its constraints are ground from construction).
type GroundNumericConstraint struct {
	Kind OperatorKind
	Lhs  GroundFunctionExpressionID
	Rhs  GroundFunctionExpressionID
}

// ConjunctiveCondition is the body of a lifted rule (action precondition,
// axiom body, or derived-rule body): a parameter list plus literals
// partitioned by the kind of their predicate, and a list of numeric
// constraints. The partition by kind is the reason pkg/prepare must run
// before any ConjunctiveCondition is built — literal kind is not known
// until every predicate has been classified.
//
// Nullary literals (arity 0) are split out from Static/Fluent/Derived
// because they never participate in the clique enumerator's graph (they
// have no argument positions to bind to a parameter) and are instead
// checked once, directly against the current state, as a cheap
// short-circuit before enumeration even starts.
type ConjunctiveCondition struct {
	NumParameters      int32
	StaticLiterals     []LiteralID
	FluentLiterals     []LiteralID
	DerivedLiterals    []LiteralID
	NullaryLiterals    []LiteralID
	NumericConstraints []NumericConstraint
}

func (c ConjunctiveCondition) IsCanonical() bool { return true }

func (c ConjunctiveCondition) Encode() []byte {
	e := intern.NewEncoder(64)
	e.Int(c.NumParameters)
	e.IDs(toIDs(c.StaticLiterals))
	e.IDs(toIDs(c.FluentLiterals))
	e.IDs(toIDs(c.DerivedLiterals))
	e.IDs(toIDs(c.NullaryLiterals))
	e.Int(int32(len(c.NumericConstraints)))
	for _, nc := range c.NumericConstraints {
		e.Tag(byte(nc.Kind)).ID(intern.ID(nc.Lhs)).ID(intern.ID(nc.Rhs))
	}
	return e.Bytes()
}

func toIDs(lits []LiteralID) []intern.ID {
	ids := make([]intern.ID, len(lits))
	for i, l := range lits {
		ids[i] = intern.ID(l)
	}
	return ids
}
