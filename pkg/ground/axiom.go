package ground

import (
	"github.com/mrlab-ai/groundcore/pkg/intern"
	"github.com/mrlab-ai/groundcore/pkg/model"
)

func (g *Grounder) groundAxiom(axiomID model.AxiomID, bindingID model.BindingID, objects []model.ObjectID) (model.GroundAxiomID, error) {
	axiom := g.repo.Axioms.Get(intern.ID(axiomID))

	head, err := g.groundLiteral(axiom.Head, objects)
	if err != nil {
		return 0, err
	}
	headLit := g.repo.GroundLiterals.Get(intern.ID(head))

	body, err := g.groundConditionLiterals(axiom.Body, objects)
	if err != nil {
		return 0, err
	}
	numeric, err := g.groundConditionNumeric(axiom.Body, objects)
	if err != nil {
		return 0, err
	}

	id, _, err := g.repo.GroundAxioms.GetOrCreate(model.GroundAxiom{
		Axiom:         axiomID,
		Binding:       bindingID,
		Head:          headLit.Atom,
		GroundBody:    body,
		GroundNumeric: numeric,
	})
	return model.GroundAxiomID(id), err
}
