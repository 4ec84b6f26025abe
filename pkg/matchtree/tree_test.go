package matchtree_test

import (
	"iter"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrlab-ai/groundcore/pkg/matchtree"
	"github.com/mrlab-ai/groundcore/pkg/model"
)

type fakeState struct {
	atoms  map[model.GroundAtomID]bool
	values map[model.FDRVariableID]int32
	sat    map[model.GroundNumericConstraint]bool
}

func (s fakeState) HasAtom(a model.GroundAtomID) bool              { return s.atoms[a] }
func (s fakeState) Value(v model.FDRVariableID) int32              { return s.values[v] }
func (s fakeState) Satisfied(c model.GroundNumericConstraint) bool { return s.sat[c] }

func collect(seq iter.Seq[int32]) []int32 {
	var out []int32
	for v := range seq {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func TestApplicableWalksPresentAbsentAndDontCareBranches(t *testing.T) {
	atomX := model.GroundAtomID{Group: 0, Local: 0}
	tree := matchtree.Build([]matchtree.Element{
		{ID: 1, Atoms: []matchtree.AtomRequirement{{Atom: atomX, Present: true}}},
		{ID: 2, Atoms: []matchtree.AtomRequirement{{Atom: atomX, Present: false}}},
		{ID: 3}, // indifferent to atomX
	})

	withX := fakeState{atoms: map[model.GroundAtomID]bool{atomX: true}}
	require.Equal(t, []int32{1, 3}, collect(tree.Applicable(withX)))

	withoutX := fakeState{atoms: map[model.GroundAtomID]bool{atomX: false}}
	require.Equal(t, []int32{2, 3}, collect(tree.Applicable(withoutX)))
}

func TestApplicableIndexesFDRFactsByValuePlusDontCare(t *testing.T) {
	v := model.FDRVariableID(7)
	tree := matchtree.Build([]matchtree.Element{
		{ID: 1, FDRFacts: []matchtree.FDRRequirement{{Variable: v, Value: 2}}},
		{ID: 2, FDRFacts: []matchtree.FDRRequirement{{Variable: v, Value: 5}}},
		{ID: 3}, // indifferent to v
	})

	require.Equal(t, []int32{1, 3}, collect(tree.Applicable(fakeState{values: map[model.FDRVariableID]int32{v: 2}})))
	require.Equal(t, []int32{2, 3}, collect(tree.Applicable(fakeState{values: map[model.FDRVariableID]int32{v: 5}})))
	require.Equal(t, []int32{3}, collect(tree.Applicable(fakeState{values: map[model.FDRVariableID]int32{v: 9}})))
}

func TestApplicableNumericIsTwoWay(t *testing.T) {
	c := model.GroundNumericConstraint{Kind: model.OpGreaterEqual, Lhs: 1, Rhs: 2}
	tree := matchtree.Build([]matchtree.Element{
		{ID: 1, Numeric: []model.GroundNumericConstraint{c}},
		{ID: 2}, // indifferent to c
	})

	satisfied := fakeState{sat: map[model.GroundNumericConstraint]bool{c: true}}
	require.Equal(t, []int32{1, 2}, collect(tree.Applicable(satisfied)))

	unsatisfied := fakeState{sat: map[model.GroundNumericConstraint]bool{c: false}}
	require.Equal(t, []int32{2}, collect(tree.Applicable(unsatisfied)))
}

func TestBuildSharesOneLeafAcrossElementsWithIdenticalRequirements(t *testing.T) {
	atomX := model.GroundAtomID{Group: 0, Local: 1}
	tree := matchtree.Build([]matchtree.Element{
		{ID: 1, Atoms: []matchtree.AtomRequirement{{Atom: atomX, Present: true}}},
		{ID: 2, Atoms: []matchtree.AtomRequirement{{Atom: atomX, Present: true}}},
		{ID: 3, Atoms: []matchtree.AtomRequirement{{Atom: atomX, Present: true}}},
	})

	// One atom-test node plus one leaf holding all three elements — no
	// per-element subtree duplication.
	require.Equal(t, 2, tree.NumNodes())

	got := collect(tree.Applicable(fakeState{atoms: map[model.GroundAtomID]bool{atomX: true}}))
	require.Equal(t, []int32{1, 2, 3}, got)
}

func TestApplicableOnEmptyTreeYieldsNothing(t *testing.T) {
	tree := matchtree.Build(nil)
	require.Empty(t, collect(tree.Applicable(fakeState{})))
}
