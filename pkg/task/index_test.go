package task_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrlab-ai/groundcore/pkg/intern"
	"github.com/mrlab-ai/groundcore/pkg/model"
	"github.com/mrlab-ai/groundcore/pkg/prepare"
	"github.com/mrlab-ai/groundcore/pkg/task"
)

func TestBuildFDRAssignsOneBinaryVariablePerGroundAtom(t *testing.T) {
	desc := roadChainDomain()
	repo, prepared, err := prepare.New().Prepare(desc)
	require.NoError(t, err)

	b := task.New(repo, prepared)
	rounds := runToFixedPoint(t, b)
	require.GreaterOrEqual(t, rounds, 2)

	snap := b.Snapshot()
	layout, order, err := b.BuildFDR()
	require.NoError(t, err)
	require.Len(t, order, len(snap.GroundAtoms))
	require.Equal(t, len(snap.GroundAtoms), repo.FDRVariables.Len())
	require.Equal(t, len(snap.GroundAtoms), repo.FDRFacts.Len())

	for _, varID := range order {
		v := repo.FDRVariables.Get(intern.ID(varID))
		require.Equal(t, int32(2), v.DomainSize)
		require.Len(t, v.Atoms, 1)
	}

	state := layout.NewState()
	require.NoError(t, state.Set(order[0], 1))
	value, err := state.Get(order[0])
	require.NoError(t, err)
	require.Equal(t, int32(1), value)
}

func TestBuildMatchTreesCoverEveryGroundAction(t *testing.T) {
	desc := roadChainDomain()
	repo, prepared, err := prepare.New().Prepare(desc)
	require.NoError(t, err)

	b := task.New(repo, prepared)
	runToFixedPoint(t, b)

	snap := b.Snapshot()
	actions, axioms := b.BuildMatchTrees()
	require.NotNil(t, actions)
	require.NotNil(t, axioms)

	seen := make(map[int32]bool)
	for el := range actions.Applicable(alwaysTrueState{}) {
		seen[el] = true
	}
	for _, id := range snap.GroundActions {
		require.True(t, seen[int32(id)], "ground action %d should be reachable from an all-true state", id)
	}
}

// alwaysTrueState satisfies matchtree.State by reporting every atom
// present, every FDR variable at its first named value, and every
// numeric constraint satisfied — enough to walk every Present/Satisfied
// branch of a freshly built tree and confirm every leaf is reachable.
type alwaysTrueState struct{}

func (alwaysTrueState) HasAtom(model.GroundAtomID) bool { return true }

func (alwaysTrueState) Value(model.FDRVariableID) int32 { return 1 }

func (alwaysTrueState) Satisfied(model.GroundNumericConstraint) bool { return true }
