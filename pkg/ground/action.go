package ground

import (
	"github.com/mrlab-ai/groundcore/pkg/intern"
	"github.com/mrlab-ai/groundcore/pkg/model"
)

func (g *Grounder) groundAction(actionID model.ActionID, bindingID model.BindingID, objects []model.ObjectID) (model.GroundActionID, error) {
	action := g.repo.Actions.Get(intern.ID(actionID))

	precondition, err := g.groundConditionLiterals(action.Precondition, objects)
	if err != nil {
		return 0, err
	}
	numeric, err := g.groundConditionNumeric(action.Precondition, objects)
	if err != nil {
		return 0, err
	}

	var effects []model.GroundConditionalEffect
	for _, ceID := range action.Effects {
		grounded, err := g.groundConditionalEffect(ceID, objects)
		if err != nil {
			return 0, err
		}
		effects = append(effects, grounded...)
	}

	id, _, err := g.repo.GroundActions.GetOrCreate(model.GroundAction{
		Action:             actionID,
		Binding:            bindingID,
		GroundPrecondition: precondition,
		GroundNumeric:      numeric,
		GroundEffects:      effects,
	})
	return model.GroundActionID(id), err
}

// groundConditionalEffect grounds one ConditionalEffect under the action's
// binding. A forall-free effect produces exactly one
// GroundConditionalEffect; a forall effect produces one per combination of
// objects assigned to its extra parameters, ranging over every object in
// the problem (PDDL's unrestricted "forall" quantifies over the whole
// object universe, not just objects appearing elsewhere in the effect).
func (g *Grounder) groundConditionalEffect(ceID model.ConditionalEffectID, objects []model.ObjectID) ([]model.GroundConditionalEffect, error) {
	ce := g.repo.ConditionalEffects.Get(intern.ID(ceID))

	if ce.NumExtraParameters == 0 {
		effect, err := g.groundEffectTail(ce, objects)
		if err != nil {
			return nil, err
		}
		return []model.GroundConditionalEffect{effect}, nil
	}

	universe := make([]model.ObjectID, g.repo.Objects.Len())
	for i := range universe {
		universe[i] = model.ObjectID(i)
	}

	var out []model.GroundConditionalEffect
	extra := make([]model.ObjectID, ce.NumExtraParameters)
	var enumerate func(pos int) error
	enumerate = func(pos int) error {
		if pos == len(extra) {
			extended := make([]model.ObjectID, len(objects)+len(extra))
			copy(extended, objects)
			copy(extended[len(objects):], extra)
			effect, err := g.groundEffectTail(ce, extended)
			if err != nil {
				return err
			}
			out = append(out, effect)
			return nil
		}
		for _, o := range universe {
			extra[pos] = o
			if err := enumerate(pos + 1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := enumerate(0); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *Grounder) groundEffectTail(ce model.ConditionalEffect, objects []model.ObjectID) (model.GroundConditionalEffect, error) {
	condition, err := g.groundConditionLiterals(ce.Condition, objects)
	if err != nil {
		return model.GroundConditionalEffect{}, err
	}

	effect := g.repo.ConjunctiveEffects.Get(intern.ID(ce.Effect))

	add := make([]model.GroundAtomID, 0, len(effect.AddLiterals))
	for _, a := range effect.AddLiterals {
		ga, err := g.groundAtom(a, objects)
		if err != nil {
			return model.GroundConditionalEffect{}, err
		}
		add = append(add, ga)
	}
	del := make([]model.GroundAtomID, 0, len(effect.DeleteLiterals))
	for _, a := range effect.DeleteLiterals {
		ga, err := g.groundAtom(a, objects)
		if err != nil {
			return model.GroundConditionalEffect{}, err
		}
		del = append(del, ga)
	}
	numeric := make([]model.GroundNumericEffect, 0, len(effect.NumericEffects))
	for _, ne := range effect.NumericEffects {
		term, err := g.groundFunctionTerm(ne.Term, objects)
		if err != nil {
			return model.GroundConditionalEffect{}, err
		}
		expr, err := g.groundFunctionExpr(ne.Expr, objects)
		if err != nil {
			return model.GroundConditionalEffect{}, err
		}
		numeric = append(numeric, model.GroundNumericEffect{Kind: ne.Kind, Term: term, Expr: expr})
	}

	return model.GroundConditionalEffect{Condition: condition, Add: add, Delete: del, Numeric: numeric}, nil
}
