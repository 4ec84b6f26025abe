// Package matchtree implements the applicability index: a hash-consed
// decision DAG over ground-atom, finite-domain-fact, and numeric-constraint
// tests, whose leaves enumerate the ground actions or axioms applicable at
// whatever point in state space satisfies the tests on the path to them.
//
// A Tree is built once from a complete Element list via Build; it is
// immutable afterward. Elements are opaque int32 identifiers the caller
// assigns (typically the int32 form of a GroundActionID or GroundAxiomID) —
// this package never interprets them, only stores and replays them.
package matchtree

import (
	"github.com/mrlab-ai/groundcore/pkg/intern"
	"github.com/mrlab-ai/groundcore/pkg/model"
)

// NodeID is a dense identifier for a node within one Tree's store. NoNode
// is the sentinel for "no subtree" — a branch that applies to no element.
type NodeID int32

const NoNode NodeID = -1

// Kind discriminates Node's branching alternatives.
type Kind uint8

const (
	KindAtom Kind = iota
	KindFDRFact
	KindNumeric
	KindLeaf
)

// fdrBranch is one value-indexed child of a KindFDRFact node.
type fdrBranch struct {
	Value int32
	Child NodeID
}

// Node is a tagged union over the four node shapes spec.md's match tree
// describes: an atom test (three-way: Present/Absent/DontCare), an FDR-fact
// test (value-indexed Branches plus DontCare), a numeric-constraint test
// (two-way: Satisfied/DontCare), and a leaf listing the elements reachable
// at this point. Only the fields belonging to Kind are meaningful.
type Node struct {
	Kind Kind

	Atom    model.GroundAtomID
	Present NodeID
	Absent  NodeID

	Variable model.FDRVariableID
	Branches []fdrBranch

	Numeric   model.GroundNumericConstraint
	Satisfied NodeID

	// DontCare is shared by Atom, FDRFact, and Numeric nodes: the subtree
	// of elements indifferent to this particular test, always walked in
	// addition to the state-determined branch.
	DontCare NodeID

	Elements []int32 // Leaf only; sorted, deduplicated.
}

func (n Node) IsCanonical() bool { return true }

func (n Node) Encode() []byte {
	e := intern.NewEncoder(32).Tag(byte(n.Kind))
	switch n.Kind {
	case KindAtom:
		e.ID(n.Atom.Group).ID(n.Atom.Local)
		e.Int(int32(n.Present)).Int(int32(n.Absent)).Int(int32(n.DontCare))
	case KindFDRFact:
		e.ID(intern.ID(n.Variable))
		e.Int(int32(len(n.Branches)))
		for _, b := range n.Branches {
			e.Int(b.Value).Int(int32(b.Child))
		}
		e.Int(int32(n.DontCare))
	case KindNumeric:
		e.Tag(byte(n.Numeric.Kind)).ID(intern.ID(n.Numeric.Lhs)).ID(intern.ID(n.Numeric.Rhs))
		e.Int(int32(n.Satisfied)).Int(int32(n.DontCare))
	case KindLeaf:
		e.Int(int32(len(n.Elements)))
		for _, el := range n.Elements {
			e.Int(el)
		}
	}
	return e.Bytes()
}
