package matchtree

import (
	"iter"

	"github.com/mrlab-ai/groundcore/pkg/intern"
	"github.com/mrlab-ai/groundcore/pkg/model"
)

// State is the read-only view of the current state a Tree queries against:
// ground-atom membership, the current value of an FDR variable, and
// whether a numeric constraint currently holds. pkg/task's ground state
// representation satisfies this directly; it is kept minimal here so this
// package never depends on a concrete state implementation.
type State interface {
	HasAtom(atom model.GroundAtomID) bool
	Value(variable model.FDRVariableID) int32
	Satisfied(c model.GroundNumericConstraint) bool
}

// Tree is an immutable, hash-consed match tree built by Build.
type Tree struct {
	nodes *intern.Store[Node]
	root  NodeID
}

// NumNodes reports the number of distinct nodes interned into this tree.
func (t *Tree) NumNodes() int { return t.nodes.Len() }

// Applicable yields, in unspecified order, every element reachable in
// state: every leaf found by walking the state-determined branch plus the
// DontCare branch at each internal node, per spec's lookup rule.
func (t *Tree) Applicable(state State) iter.Seq[int32] {
	return func(yield func(int32) bool) {
		t.walk(t.root, state, yield)
	}
}

// walk returns false once yield has asked to stop, so callers higher up
// the recursion can unwind without visiting the rest of the tree.
func (t *Tree) walk(id NodeID, state State, yield func(int32) bool) bool {
	if id == NoNode {
		return true
	}
	n := t.nodes.Get(intern.ID(id))

	switch n.Kind {
	case KindLeaf:
		for _, el := range n.Elements {
			if !yield(el) {
				return false
			}
		}
		return true

	case KindAtom:
		branch := n.Absent
		if state.HasAtom(n.Atom) {
			branch = n.Present
		}
		if !t.walk(branch, state, yield) {
			return false
		}
		return t.walk(n.DontCare, state, yield)

	case KindFDRFact:
		value := state.Value(n.Variable)
		for _, b := range n.Branches {
			if b.Value == value {
				if !t.walk(b.Child, state, yield) {
					return false
				}
				break
			}
		}
		return t.walk(n.DontCare, state, yield)

	case KindNumeric:
		if state.Satisfied(n.Numeric) {
			if !t.walk(n.Satisfied, state, yield) {
				return false
			}
		}
		return t.walk(n.DontCare, state, yield)
	}

	return true
}
