package prepare

import (
	"github.com/mrlab-ai/groundcore/pkg/model"
	"github.com/mrlab-ai/groundcore/pkg/perrors"
	"github.com/mrlab-ai/groundcore/pkg/plinput"
)

func (b *Builder) buildAxiomRule(axiom plinput.AxiomDef) (model.RuleID, error) {
	b.scope.push(axiom.Parameters)
	defer b.scope.pop(len(axiom.Parameters))

	headPred, err := b.predicate(axiom.HeadPredicate)
	if err != nil {
		return 0, err
	}
	if b.repo.PredicateKind(headPred) != model.KindDerived {
		return 0, &perrors.KindMismatch{
			At: noCoord, Symbol: axiom.HeadPredicate,
			Wanted: model.KindDerived.String(), Got: b.repo.PredicateKind(headPred).String(),
			Message: "axiom head must be a derived predicate",
		}
	}

	head, err := b.buildLiteral(plinput.LiteralExpr{
		Atom:    plinput.AtomExpr{Predicate: axiom.HeadPredicate, Terms: axiom.HeadTerms},
		Negated: false,
	})
	if err != nil {
		return 0, err
	}

	body, err := b.buildCondition(axiom.Body)
	if err != nil {
		return 0, err
	}

	axiomID, _, err := b.repo.Axioms.GetOrCreate(model.Axiom{
		Head: head, NumParameters: int32(len(axiom.Parameters)), Body: body,
	})
	if err != nil {
		return 0, err
	}

	ruleID, _, err := b.repo.Rules.GetOrCreate(model.Rule{
		NumParameters: int32(len(axiom.Parameters)),
		Body:          body,
		Origin:        model.RuleFromAxiom,
		Axiom:         model.AxiomID(axiomID),
	})
	return model.RuleID(ruleID), err
}
