// Package prepare implements the one-pass classification and bottom-up
// interning of a parsed lifted description (pkg/plinput) into a
// pkg/model.Repository: predicate/function kind inference, scope mapping
// for parameter names, effect normalization into conditional-effect
// lists, and construction of every lifted entity the clique enumerator
// and grounder need downstream.
package prepare

import (
	"github.com/mrlab-ai/groundcore/pkg/model"
	"github.com/mrlab-ai/groundcore/pkg/plinput"
)

const totalCostFunction = "total-cost"

// classifyPredicates implements the kind-consistency invariant: fluent
// iff some action effect rewrites one of its atoms, derived iff it
// appears as an axiom head, static otherwise. A predicate that is both
// rewritten by an effect and an axiom head stays fluent, so
// buildAxiomRule rejects that axiom with a KindMismatch.
func classifyPredicates(domain *plinput.Domain) map[string]model.Kind {
	kinds := make(map[string]model.Kind, len(domain.Predicates))
	for _, p := range domain.Predicates {
		kinds[p.Name] = model.KindStatic
	}
	for _, action := range domain.Actions {
		for _, eff := range action.Effects {
			markFluentPredicates(eff, kinds)
		}
	}
	for _, axiom := range domain.Axioms {
		if kinds[axiom.HeadPredicate] != model.KindFluent {
			kinds[axiom.HeadPredicate] = model.KindDerived
		}
	}
	return kinds
}

func markFluentPredicates(eff plinput.EffectExpr, kinds map[string]model.Kind) {
	for _, a := range eff.AddLiterals {
		if kinds[a.Predicate] != model.KindDerived {
			kinds[a.Predicate] = model.KindFluent
		}
	}
	for _, a := range eff.DeleteLiterals {
		if kinds[a.Predicate] != model.KindDerived {
			kinds[a.Predicate] = model.KindFluent
		}
	}
}

// classifyFunctions implements the analogous rule for functions:
// total-cost is auxiliary, any numeric-effect target is fluent, all
// others are static.
func classifyFunctions(domain *plinput.Domain) map[string]model.Kind {
	kinds := make(map[string]model.Kind, len(domain.Functions))
	for _, f := range domain.Functions {
		if f.Name == totalCostFunction {
			kinds[f.Name] = model.KindAuxiliary
		} else {
			kinds[f.Name] = model.KindStatic
		}
	}
	for _, action := range domain.Actions {
		for _, eff := range action.Effects {
			for _, ne := range eff.NumericEffects {
				if kinds[ne.Target.Function] != model.KindAuxiliary {
					kinds[ne.Target.Function] = model.KindFluent
				}
			}
		}
	}
	return kinds
}
