package fdr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrlab-ai/groundcore/pkg/fdr"
	"github.com/mrlab-ai/groundcore/pkg/intern"
	"github.com/mrlab-ai/groundcore/pkg/model"
)

func TestBitWidthMatchesCeilLog2(t *testing.T) {
	cases := map[int32]uint{1: 0, 2: 1, 3: 2, 4: 2, 5: 3, 8: 3, 9: 4, 64: 6, 65: 7}
	for domainSize, want := range cases {
		require.Equalf(t, want, fdr.BitWidth(domainSize), "domainSize=%d", domainSize)
	}
}

func internVariable(repo *model.Repository, domainSize int32, atomCount int) model.FDRVariableID {
	atoms := make([]model.GroundAtomID, atomCount)
	for i := range atoms {
		atoms[i] = model.GroundAtomID{Group: intern.ID(0), Local: intern.ID(i)}
	}
	id, _, err := repo.FDRVariables.GetOrCreate(model.FDRVariable{DomainSize: domainSize, Atoms: atoms})
	if err != nil {
		panic(err)
	}
	return model.FDRVariableID(id)
}

func TestLayoutPacksSmallVariablesIntoOneWord(t *testing.T) {
	repo := model.NewRepository()
	a := internVariable(repo, 3, 2)  // 2 bits
	b := internVariable(repo, 9, 8)  // 4 bits
	c := internVariable(repo, 2, 1)  // 1 bit

	layout := fdr.Build(repo, []model.FDRVariableID{a, b, c})
	require.Equal(t, 1, layout.NumWords())

	state := layout.NewState()
	require.NoError(t, state.Set(a, 2))
	require.NoError(t, state.Set(b, 9))
	require.NoError(t, state.Set(c, 1))

	va, err := state.Get(a)
	require.NoError(t, err)
	require.Equal(t, int32(2), va)
	vb, err := state.Get(b)
	require.NoError(t, err)
	require.Equal(t, int32(9), vb)
	vc, err := state.Get(c)
	require.NoError(t, err)
	require.Equal(t, int32(1), vc)
}

func TestLayoutSplitsAVariableAcrossWordsWhenItDoesNotFit(t *testing.T) {
	repo := model.NewRepository()

	// v1 and v2 each take the widest bit width an int32 domain size can
	// produce (31 bits), leaving only 2 free bits in the first 64-bit
	// word; v3 needs 8 bits and must straddle the word boundary.
	v1 := internVariable(repo, math.MaxInt32, 1)
	v2 := internVariable(repo, math.MaxInt32, 2) // same bit width as v1, distinct content
	v3 := internVariable(repo, 256, 1)

	layout := fdr.Build(repo, []model.FDRVariableID{v1, v2, v3})
	require.Equal(t, 2, layout.NumWords())

	state := layout.NewState()
	require.NoError(t, state.Set(v1, 1<<30))
	require.NoError(t, state.Set(v2, (1<<30)+7))
	require.NoError(t, state.Set(v3, 200))

	got1, err := state.Get(v1)
	require.NoError(t, err)
	require.Equal(t, int32(1<<30), got1)
	got2, err := state.Get(v2)
	require.NoError(t, err)
	require.Equal(t, int32((1<<30)+7), got2)
	got3, err := state.Get(v3)
	require.NoError(t, err)
	require.Equal(t, int32(200), got3)
}

func TestStateGetRejectsUnknownVariable(t *testing.T) {
	repo := model.NewRepository()
	a := internVariable(repo, 4, 3)
	other := internVariable(repo, 5, 4) // interned but not part of this layout

	layout := fdr.Build(repo, []model.FDRVariableID{a})
	state := layout.NewState()
	_, err := state.Get(other)
	require.Error(t, err)
}
