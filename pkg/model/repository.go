package model

import (
	"github.com/mrlab-ai/groundcore/pkg/arena"
	"github.com/mrlab-ai/groundcore/pkg/intern"
)

// Repository aggregates one hash-consed store per entity family defined
// in this package, all backed by a single shared arena.Buffer. It is the
// concrete implementation of the repository contract: every family's
// GetOrCreate enforces canonical form, and every lookup is by dense
// identifier into an append-only backing store.
type Repository struct {
	buf *arena.Buffer

	Variables  *intern.Store[Variable]
	Objects    *intern.Store[Object]
	Predicates *intern.Store[Predicate]
	Functions  *intern.Store[Function]

	Atoms       *intern.GroupedStore[Atom]
	GroundAtoms *intern.GroupedStore[GroundAtom]

	Literals       *intern.Store[Literal]
	GroundLiterals *intern.Store[GroundLiteral]

	FunctionTerms        *intern.Store[FunctionTerm]
	GroundFunctionTerms  *intern.Store[GroundFunctionTerm]
	GroundFunctionValues *intern.Store[GroundFunctionValue]

	UnaryOperators  *intern.Store[UnaryOperator]
	BinaryOperators *intern.Store[BinaryOperator]
	MultiOperators  *intern.Store[MultiOperator]

	FunctionExpressions       *intern.Store[FunctionExpression]
	GroundFunctionExpressions *intern.Store[GroundFunctionExpression]

	ConjunctiveConditions *intern.Store[ConjunctiveCondition]
	ConjunctiveEffects    *intern.Store[ConjunctiveEffect]
	ConditionalEffects    *intern.Store[ConditionalEffect]

	Actions *intern.Store[Action]
	Axioms  *intern.Store[Axiom]
	Rules   *intern.Store[Rule]

	GroundRules   *intern.Store[GroundRule]
	GroundActions *intern.Store[GroundAction]
	GroundAxioms  *intern.Store[GroundAxiom]

	Bindings *intern.Store[Binding]

	Metrics *intern.Store[Metric]

	FDRVariables *intern.Store[FDRVariable]
	FDRFacts     *intern.Store[FDRFact]
}

// NewRepository returns an empty Repository with every family's store
// allocated and backed by a fresh arena.
func NewRepository() *Repository {
	buf := arena.New()
	return &Repository{
		buf: buf,

		Variables:  intern.NewStore[Variable](buf, "variable"),
		Objects:    intern.NewStore[Object](buf, "object"),
		Predicates: intern.NewStore[Predicate](buf, "predicate"),
		Functions:  intern.NewStore[Function](buf, "function"),

		Atoms:       intern.NewGroupedStore[Atom](buf, "atom"),
		GroundAtoms: intern.NewGroupedStore[GroundAtom](buf, "ground_atom"),

		Literals:       intern.NewStore[Literal](buf, "literal"),
		GroundLiterals: intern.NewStore[GroundLiteral](buf, "ground_literal"),

		FunctionTerms:        intern.NewStore[FunctionTerm](buf, "function_term"),
		GroundFunctionTerms:  intern.NewStore[GroundFunctionTerm](buf, "ground_function_term"),
		GroundFunctionValues: intern.NewStore[GroundFunctionValue](buf, "ground_function_value"),

		UnaryOperators:  intern.NewStore[UnaryOperator](buf, "unary_operator"),
		BinaryOperators: intern.NewStore[BinaryOperator](buf, "binary_operator"),
		MultiOperators:  intern.NewStore[MultiOperator](buf, "multi_operator"),

		FunctionExpressions:       intern.NewStore[FunctionExpression](buf, "function_expression"),
		GroundFunctionExpressions: intern.NewStore[GroundFunctionExpression](buf, "ground_function_expression"),

		ConjunctiveConditions: intern.NewStore[ConjunctiveCondition](buf, "conjunctive_condition"),
		ConjunctiveEffects:    intern.NewStore[ConjunctiveEffect](buf, "conjunctive_effect"),
		ConditionalEffects:    intern.NewStore[ConditionalEffect](buf, "conditional_effect"),

		Actions: intern.NewStore[Action](buf, "action"),
		Axioms:  intern.NewStore[Axiom](buf, "axiom"),
		Rules:   intern.NewStore[Rule](buf, "rule"),

		GroundRules:   intern.NewStore[GroundRule](buf, "ground_rule"),
		GroundActions: intern.NewStore[GroundAction](buf, "ground_action"),
		GroundAxioms:  intern.NewStore[GroundAxiom](buf, "ground_axiom"),

		Bindings: intern.NewStore[Binding](buf, "binding"),

		Metrics: intern.NewStore[Metric](buf, "metric"),

		FDRVariables: intern.NewStore[FDRVariable](buf, "fdr_variable"),
		FDRFacts:     intern.NewStore[FDRFact](buf, "fdr_fact"),
	}
}

// Size reports the total bytes committed to the repository's shared
// arena, across every entity family.
func (r *Repository) Size() int { return r.buf.Len() }

// PredicateKind returns the classification of a previously-interned
// predicate. pkg/prepare uses it to sort a condition's literals into
// their static/fluent/derived partitions and to check axiom heads.
func (r *Repository) PredicateKind(id PredicateID) Kind {
	return r.Predicates.Get(intern.ID(id)).Kind
}

// FunctionKind returns the classification of a previously-interned
// function.
func (r *Repository) FunctionKind(id FunctionID) Kind {
	return r.Functions.Get(intern.ID(id)).Kind
}
