package model

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/mrlab-ai/groundcore/pkg/arena"
	"github.com/mrlab-ai/groundcore/pkg/intern"
)

// Save writes every store of r to w, preceded by a header stamped with
// buildTag. Stores are written in the same order NewRepository allocates
// them, which is also the order Load must read them back in.
func Save(w io.Writer, r *Repository, buildTag uuid.UUID) error {
	if err := intern.WriteHeader(w, intern.NewHeader(buildTag)); err != nil {
		return fmt.Errorf("model: write header: %w", err)
	}

	writers := []func() error{
		func() error { return intern.WriteStore(w, r.Variables) },
		func() error { return intern.WriteStore(w, r.Objects) },
		func() error { return intern.WriteStore(w, r.Predicates) },
		func() error { return intern.WriteStore(w, r.Functions) },

		func() error { return intern.WriteGroupedStore(w, r.Atoms) },
		func() error { return intern.WriteGroupedStore(w, r.GroundAtoms) },

		func() error { return intern.WriteStore(w, r.Literals) },
		func() error { return intern.WriteStore(w, r.GroundLiterals) },

		func() error { return intern.WriteStore(w, r.FunctionTerms) },
		func() error { return intern.WriteStore(w, r.GroundFunctionTerms) },
		func() error { return intern.WriteStore(w, r.GroundFunctionValues) },

		func() error { return intern.WriteStore(w, r.UnaryOperators) },
		func() error { return intern.WriteStore(w, r.BinaryOperators) },
		func() error { return intern.WriteStore(w, r.MultiOperators) },

		func() error { return intern.WriteStore(w, r.FunctionExpressions) },
		func() error { return intern.WriteStore(w, r.GroundFunctionExpressions) },

		func() error { return intern.WriteStore(w, r.ConjunctiveConditions) },
		func() error { return intern.WriteStore(w, r.ConjunctiveEffects) },
		func() error { return intern.WriteStore(w, r.ConditionalEffects) },

		func() error { return intern.WriteStore(w, r.Actions) },
		func() error { return intern.WriteStore(w, r.Axioms) },
		func() error { return intern.WriteStore(w, r.Rules) },

		func() error { return intern.WriteStore(w, r.GroundRules) },
		func() error { return intern.WriteStore(w, r.GroundActions) },
		func() error { return intern.WriteStore(w, r.GroundAxioms) },

		func() error { return intern.WriteStore(w, r.Bindings) },

		func() error { return intern.WriteStore(w, r.Metrics) },

		func() error { return intern.WriteStore(w, r.FDRVariables) },
		func() error { return intern.WriteStore(w, r.FDRFacts) },
	}
	for _, write := range writers {
		if err := write(); err != nil {
			return fmt.Errorf("model: write store: %w", err)
		}
	}
	return nil
}

// Load rebuilds a Repository from bytes written by Save, refusing to
// proceed if the persisted header does not match current (a different
// build's dense identifiers cannot be trusted to mean the same thing here).
func Load(r io.Reader, current intern.Header) (*Repository, error) {
	header, err := intern.ReadHeader(r)
	if err != nil {
		return nil, fmt.Errorf("model: read header: %w", err)
	}
	if !header.Compatible(current) {
		return nil, fmt.Errorf("model: persisted header %+v incompatible with current build %+v", header, current)
	}

	buf := arena.New()
	repo := &Repository{buf: buf}

	if repo.Variables, err = intern.ReadStore(r, buf, "variable", decodeVariable); err != nil {
		return nil, err
	}
	if repo.Objects, err = intern.ReadStore(r, buf, "object", decodeObject); err != nil {
		return nil, err
	}
	if repo.Predicates, err = intern.ReadStore(r, buf, "predicate", decodePredicate); err != nil {
		return nil, err
	}
	if repo.Functions, err = intern.ReadStore(r, buf, "function", decodeFunction); err != nil {
		return nil, err
	}

	if repo.Atoms, err = intern.ReadGroupedStore(r, buf, "atom", decodeAtom); err != nil {
		return nil, err
	}
	if repo.GroundAtoms, err = intern.ReadGroupedStore(r, buf, "ground_atom", decodeGroundAtom); err != nil {
		return nil, err
	}

	if repo.Literals, err = intern.ReadStore(r, buf, "literal", decodeLiteral); err != nil {
		return nil, err
	}
	if repo.GroundLiterals, err = intern.ReadStore(r, buf, "ground_literal", decodeGroundLiteral); err != nil {
		return nil, err
	}

	if repo.FunctionTerms, err = intern.ReadStore(r, buf, "function_term", decodeFunctionTerm); err != nil {
		return nil, err
	}
	if repo.GroundFunctionTerms, err = intern.ReadStore(r, buf, "ground_function_term", decodeGroundFunctionTerm); err != nil {
		return nil, err
	}
	if repo.GroundFunctionValues, err = intern.ReadStore(r, buf, "ground_function_value", decodeGroundFunctionValue); err != nil {
		return nil, err
	}

	if repo.UnaryOperators, err = intern.ReadStore(r, buf, "unary_operator", decodeUnaryOperator); err != nil {
		return nil, err
	}
	if repo.BinaryOperators, err = intern.ReadStore(r, buf, "binary_operator", decodeBinaryOperator); err != nil {
		return nil, err
	}
	if repo.MultiOperators, err = intern.ReadStore(r, buf, "multi_operator", decodeMultiOperator); err != nil {
		return nil, err
	}

	if repo.FunctionExpressions, err = intern.ReadStore(r, buf, "function_expression", decodeFunctionExpression); err != nil {
		return nil, err
	}
	if repo.GroundFunctionExpressions, err = intern.ReadStore(r, buf, "ground_function_expression", decodeGroundFunctionExpression); err != nil {
		return nil, err
	}

	if repo.ConjunctiveConditions, err = intern.ReadStore(r, buf, "conjunctive_condition", decodeConjunctiveCondition); err != nil {
		return nil, err
	}
	if repo.ConjunctiveEffects, err = intern.ReadStore(r, buf, "conjunctive_effect", decodeConjunctiveEffect); err != nil {
		return nil, err
	}
	if repo.ConditionalEffects, err = intern.ReadStore(r, buf, "conditional_effect", decodeConditionalEffect); err != nil {
		return nil, err
	}

	if repo.Actions, err = intern.ReadStore(r, buf, "action", decodeAction); err != nil {
		return nil, err
	}
	if repo.Axioms, err = intern.ReadStore(r, buf, "axiom", decodeAxiom); err != nil {
		return nil, err
	}
	if repo.Rules, err = intern.ReadStore(r, buf, "rule", decodeRule); err != nil {
		return nil, err
	}

	if repo.GroundRules, err = intern.ReadStore(r, buf, "ground_rule", decodeGroundRule); err != nil {
		return nil, err
	}
	if repo.GroundActions, err = intern.ReadStore(r, buf, "ground_action", decodeGroundAction); err != nil {
		return nil, err
	}
	if repo.GroundAxioms, err = intern.ReadStore(r, buf, "ground_axiom", decodeGroundAxiom); err != nil {
		return nil, err
	}

	if repo.Bindings, err = intern.ReadStore(r, buf, "binding", decodeBinding); err != nil {
		return nil, err
	}

	if repo.Metrics, err = intern.ReadStore(r, buf, "metric", decodeMetric); err != nil {
		return nil, err
	}

	if repo.FDRVariables, err = intern.ReadStore(r, buf, "fdr_variable", decodeFDRVariable); err != nil {
		return nil, err
	}
	if repo.FDRFacts, err = intern.ReadStore(r, buf, "fdr_fact", decodeFDRFact); err != nil {
		return nil, err
	}

	return repo, nil
}
