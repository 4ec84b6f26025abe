package task

import (
	"sort"

	"github.com/mrlab-ai/groundcore/pkg/fdr"
	"github.com/mrlab-ai/groundcore/pkg/intern"
	"github.com/mrlab-ai/groundcore/pkg/matchtree"
	"github.com/mrlab-ai/groundcore/pkg/model"
)

// BuildFDR assigns one binary finite-domain variable to every ground atom
// discovered so far (value 0: the atom is absent, value 1: it holds) and
// computes its packed bit layout. This is the trivial default grouping —
// deciding which ground atoms are mutually exclusive and therefore belong
// together in one multi-valued variable is invariant synthesis, out of
// scope here alongside pattern databases (see DESIGN.md) — but it is
// enough to produce a real FDRTask surface rather than leaving pkg/fdr
// permanently unreachable from grounding. Call after Seed, or after
// Advance has reached a fixed point for a complete layout; the returned
// order matches the one fdr.Build used, so FDRVariables can be looked up
// again by position.
func (b *GroundTaskBuilder) BuildFDR() (*fdr.Layout, []model.FDRVariableID, error) {
	atoms := append([]model.GroundAtomID(nil), b.Snapshot().GroundAtoms...)
	sort.Slice(atoms, func(i, j int) bool {
		if atoms[i].Group != atoms[j].Group {
			return atoms[i].Group < atoms[j].Group
		}
		return atoms[i].Local < atoms[j].Local
	})

	order := make([]model.FDRVariableID, 0, len(atoms))
	for _, atom := range atoms {
		varID, _, err := b.repo.FDRVariables.GetOrCreate(model.FDRVariable{
			DomainSize: 2,
			Atoms:      []model.GroundAtomID{atom},
		})
		if err != nil {
			return nil, nil, err
		}
		if _, _, err := b.repo.FDRFacts.GetOrCreate(model.FDRFact{
			Variable: model.FDRVariableID(varID),
			Value:    1,
		}); err != nil {
			return nil, nil, err
		}
		order = append(order, model.FDRVariableID(varID))
	}
	return fdr.Build(b.repo, order), order, nil
}

// BuildMatchTrees builds the applicability indices over the ground
// actions and ground axioms accumulated so far: one matchtree.Tree per
// kind, keyed by each element's ground precondition/body literals and
// numeric constraints. Element identifiers are the int32 form of the
// originating GroundActionID/GroundAxiomID.
func (b *GroundTaskBuilder) BuildMatchTrees() (actions *matchtree.Tree, axioms *matchtree.Tree) {
	return matchtree.Build(b.actionElements()), matchtree.Build(b.axiomElements())
}

func (b *GroundTaskBuilder) actionElements() []matchtree.Element {
	elements := make([]matchtree.Element, 0, len(b.actions))
	for _, id := range b.actions {
		ga := b.repo.GroundActions.Get(intern.ID(id))
		elements = append(elements, matchtree.Element{
			ID:      int32(id),
			Atoms:   literalRequirements(b.repo, ga.GroundPrecondition),
			Numeric: ga.GroundNumeric,
		})
	}
	return elements
}

func (b *GroundTaskBuilder) axiomElements() []matchtree.Element {
	elements := make([]matchtree.Element, 0, len(b.axioms))
	for _, id := range b.axioms {
		ax := b.repo.GroundAxioms.Get(intern.ID(id))
		elements = append(elements, matchtree.Element{
			ID:      int32(id),
			Atoms:   literalRequirements(b.repo, ax.GroundBody),
			Numeric: ax.GroundNumeric,
		})
	}
	return elements
}

// literalRequirements resolves a list of ground literals to the
// Present/Absent atom tests matchtree.Element expects.
func literalRequirements(repo *model.Repository, lits []model.GroundLiteralID) []matchtree.AtomRequirement {
	reqs := make([]matchtree.AtomRequirement, len(lits))
	for i, lit := range lits {
		l := repo.GroundLiterals.Get(intern.ID(lit))
		reqs[i] = matchtree.AtomRequirement{Atom: l.Atom, Present: !l.Negated}
	}
	return reqs
}
