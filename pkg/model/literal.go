package model

import "github.com/mrlab-ai/groundcore/pkg/intern"

// Literal is {atom-id, polarity}, keyed by (atom-id, polarity). Polarity
// distinguishes a positive literal from its negation; the two share the
// same underlying Atom but are separate interned entities since a
// condition's static/fluent/derived partitioning is sensitive to polarity.
type Literal struct {
	Atom      AtomID
	Negated   bool
	Predicate PredicateID // denormalized for cheap kind lookups without a join
}

func (l Literal) IsCanonical() bool { return true }

func (l Literal) Encode() []byte {
	e := intern.NewEncoder(16)
	e.ID(intern.ID(l.Predicate))
	e.ID(l.Atom.Group)
	e.ID(l.Atom.Local)
	if l.Negated {
		e.Tag(1)
	} else {
		e.Tag(0)
	}
	return e.Bytes()
}

// GroundLiteral is the fully-bound counterpart of Literal, referencing a
// GroundAtom instead of an Atom.
type GroundLiteral struct {
	Atom      GroundAtomID
	Negated   bool
	Predicate PredicateID
}

func (l GroundLiteral) IsCanonical() bool { return true }

func (l GroundLiteral) Encode() []byte {
	e := intern.NewEncoder(16)
	e.ID(intern.ID(l.Predicate))
	e.ID(l.Atom.Group)
	e.ID(l.Atom.Local)
	if l.Negated {
		e.Tag(1)
	} else {
		e.Tag(0)
	}
	return e.Bytes()
}
