package model

import "github.com/mrlab-ai/groundcore/pkg/intern"

// Atom is {predicate-id, terms}, keyed by (predicate-id, term-list) within
// the predicate's group. Its identifier is a GroupedID: the group is the
// predicate, and the local index is dense within that predicate's atoms,
// matching the repository's per-predicate AtomID numbering.
//
// Atom has no canonical-form requirement of its own: argument order is
// significant (predicates are not commutative), so every well-formed Atom
// is already canonical.
type Atom struct {
	Predicate PredicateID
	Terms     []Term
}

func (a Atom) IsCanonical() bool { return true }

func (a Atom) Encode() []byte {
	e := intern.NewEncoder(8 + 8*len(a.Terms))
	e.ID(intern.ID(a.Predicate))
	encodeTerms(e, a.Terms)
	return e.Bytes()
}

// GroundAtom is {predicate-id, objects}, the fully-bound counterpart of
// Atom: every Term has been resolved to an Object. Like Atom it has no
// separate canonical form — argument position already fixes identity.
type GroundAtom struct {
	Predicate PredicateID
	Objects   []ObjectID
}

func (g GroundAtom) IsCanonical() bool { return true }

func (g GroundAtom) Encode() []byte {
	e := intern.NewEncoder(8 + 4*len(g.Objects))
	e.ID(intern.ID(g.Predicate))
	e.Int(int32(len(g.Objects)))
	for _, o := range g.Objects {
		e.ID(intern.ID(o))
	}
	return e.Bytes()
}
