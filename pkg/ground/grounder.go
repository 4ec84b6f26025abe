// Package ground implements binding substitution: turning a lifted Rule
// plus one satisfying object binding (as found by pkg/clique) into the
// concrete ground entities — GroundAction or GroundAxiom, and the atoms,
// literals, and function expressions they reference — interned into the
// same Repository that holds the lifted entities they were built from.
package ground

import (
	"github.com/mrlab-ai/groundcore/pkg/intern"
	"github.com/mrlab-ai/groundcore/pkg/model"
	"github.com/mrlab-ai/groundcore/pkg/perrors"
)

// Grounder substitutes object bindings into lifted entities.
type Grounder struct {
	repo *model.Repository
}

// New returns a Grounder backed by repo. repo must already hold every
// lifted entity Instantiate will be asked to ground (i.e. pkg/prepare has
// already run).
func New(repo *model.Repository) *Grounder {
	return &Grounder{repo: repo}
}

// Result is the outcome of instantiating one Rule with one binding: the
// shared GroundRule plus whichever of Action/Axiom the rule's Origin
// produced.
type Result struct {
	GroundRule model.GroundRuleID
	Action     *model.GroundActionID
	Axiom      *model.GroundAxiomID
}

// Instantiate binds rule's parameters to objects — one object per
// parameter position, in the order the clique enumerator reports a
// completed clique — and interns the resulting ground entities.
func (g *Grounder) Instantiate(ruleID model.RuleID, objects []model.ObjectID) (Result, error) {
	rule := g.repo.Rules.Get(intern.ID(ruleID))
	if int32(len(objects)) != rule.NumParameters {
		return Result{}, &perrors.InvariantViolation{
			Component: "ground",
			Message:   "binding arity does not match rule parameter count",
		}
	}

	bindingID, _, err := g.repo.Bindings.GetOrCreate(model.Binding{Objects: objects})
	if err != nil {
		return Result{}, err
	}

	groundRuleID, _, err := g.repo.GroundRules.GetOrCreate(model.GroundRule{Rule: ruleID, Binding: bindingID})
	if err != nil {
		return Result{}, err
	}

	result := Result{GroundRule: groundRuleID}
	switch rule.Origin {
	case model.RuleFromAction:
		actionID, err := g.groundAction(rule.Action, bindingID, objects)
		if err != nil {
			return Result{}, err
		}
		result.Action = &actionID
	case model.RuleFromAxiom:
		axiomID, err := g.groundAxiom(rule.Axiom, bindingID, objects)
		if err != nil {
			return Result{}, err
		}
		result.Axiom = &axiomID
	}
	return result, nil
}
