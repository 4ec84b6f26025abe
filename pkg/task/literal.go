package task

import (
	"sort"

	"github.com/mrlab-ai/groundcore/pkg/intern"
	"github.com/mrlab-ai/groundcore/pkg/model"
)

// binding maps a rule's parameter positions to objects. Used both to
// evaluate a lifted literal against a candidate assignment (forward) and,
// structurally, to recover one from a newly discovered ground atom
// (reverse, see matchAtomPattern).
type binding map[int32]model.ObjectID

// distinctParams returns the sorted, deduplicated parameter positions
// terms references. A term list referencing zero positions is a nullary
// literal (no parameters at all) or fully ground (only constant terms).
func distinctParams(terms []model.Term) []int32 {
	seen := make(map[int32]bool)
	var ps []int32
	for _, t := range terms {
		if t.Tag == model.TermParameter && !seen[t.Parameter] {
			seen[t.Parameter] = true
			ps = append(ps, t.Parameter)
		}
	}
	sort.Slice(ps, func(i, j int) bool { return ps[i] < ps[j] })
	return ps
}

// literalHolds evaluates a lifted literal against a (possibly partial —
// only the parameters the literal's atom actually references need to be
// present) binding, against the atoms currently known true in holds.
func literalHolds(repo *model.Repository, lit model.Literal, b binding, holds map[model.GroundAtomID]bool) bool {
	atom := repo.Atoms.Get(lit.Atom)
	objects := make([]model.ObjectID, len(atom.Terms))
	for i, t := range atom.Terms {
		if t.Tag == model.TermObject {
			objects[i] = t.Object
		} else {
			objects[i] = b[t.Parameter]
		}
	}
	groundAtom := model.GroundAtom{Predicate: atom.Predicate, Objects: objects}
	id, found := repo.GroundAtoms.Find(intern.ID(lit.Predicate), groundAtom)
	present := found && holds[id]
	if lit.Negated {
		return !present
	}
	return present
}

// allLiteralsHold is literalHolds conjoined over a list of literals.
func allLiteralsHold(repo *model.Repository, lits []model.LiteralID, b binding, holds map[model.GroundAtomID]bool) bool {
	for _, id := range lits {
		lit := repo.Literals.Get(intern.ID(id))
		if !literalHolds(repo, lit, b, holds) {
			return false
		}
	}
	return true
}

// matchAtomPattern structurally unifies a lifted atom's term pattern
// against an already-ground atom's objects, returning the binding implied
// by that match (or ok=false if the atom's constant positions or repeated
// parameter positions are inconsistent with objects). Unlike literalHolds,
// this never consults holds — it is used to derive which parameter
// positions a newly-true ground atom fixes, not to test truth.
func matchAtomPattern(terms []model.Term, objects []model.ObjectID) (binding, bool) {
	b := make(binding, len(terms))
	for i, t := range terms {
		switch t.Tag {
		case model.TermObject:
			if t.Object != objects[i] {
				return nil, false
			}
		case model.TermParameter:
			if existing, ok := b[t.Parameter]; ok {
				if existing != objects[i] {
					return nil, false
				}
			} else {
				b[t.Parameter] = objects[i]
			}
		}
	}
	return b, true
}
