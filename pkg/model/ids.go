// Package model defines the formal entity families of a lifted planning
// description (and their ground counterparts): variables, objects, terms,
// predicates, functions, atoms, literals, function terms/expressions,
// conjunctive conditions and effects, actions, axioms, rules, and their
// ground variants. Every family is hash-consed through pkg/intern: equal
// canonical content always yields the same identifier.
package model

import "github.com/mrlab-ai/groundcore/pkg/intern"

// Distinct identifier types per entity family. Using named types instead
// of a single bare intern.ID catches cross-family id mix-ups (passing an
// ObjectID where a VariableID is wanted) at compile time.
type (
	VariableID                 intern.ID
	ObjectID                   intern.ID
	PredicateID                intern.ID
	FunctionID                 intern.ID
	LiteralID                  intern.ID
	GroundLiteralID            intern.ID
	FunctionTermID             intern.ID
	GroundFunctionTermID       intern.ID
	GroundFunctionValueID      intern.ID
	UnaryOperatorID            intern.ID
	BinaryOperatorID           intern.ID
	MultiOperatorID            intern.ID
	FunctionExpressionID       intern.ID
	GroundFunctionExpressionID intern.ID
	ConjunctiveConditionID     intern.ID
	ConjunctiveEffectID        intern.ID
	ConditionalEffectID        intern.ID
	ActionID                   intern.ID
	AxiomID                    intern.ID
	RuleID                     intern.ID
	GroundRuleID               intern.ID
	GroundActionID             intern.ID
	GroundAxiomID              intern.ID
	BindingID                  intern.ID
	MetricID                   intern.ID
	FDRVariableID              intern.ID
	FDRFactID                  intern.ID
)

// AtomID and GroundAtomID are composite: dense within their predicate's
// group, per spec.md's "(predicate-id, local-index)" grouped identifier.
type AtomID = intern.GroupedID
type GroundAtomID = intern.GroupedID

// NoVariable/NoObject etc. are not defined: zero-value IDs are valid
// (identifier 0 is the first interned entity of its kind), so absence must
// be represented by the caller (e.g. a pointer, or an explicit bool), not
// a sentinel id value.
