package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrlab-ai/groundcore/pkg/graph"
	"github.com/mrlab-ai/groundcore/pkg/intern"
	"github.com/mrlab-ai/groundcore/pkg/model"
)

func TestAddVertexListsGlobalIndicesPerPartition(t *testing.T) {
	g := graph.NewStatic(2)
	v0 := g.AddVertex(0, model.ObjectID(intern.ID(1)))
	v1 := g.AddVertex(0, model.ObjectID(intern.ID(2)))
	v2 := g.AddVertex(1, model.ObjectID(intern.ID(3)))

	require.Equal(t, 3, g.NumVertices())
	require.Equal(t, []int32{v0, v1}, g.Partition[0])
	require.Equal(t, []int32{v2}, g.Partition[1])
}

func TestAddEdgeIsUndirectedAndIgnoresSelfLoops(t *testing.T) {
	g := graph.NewStatic(2)
	v0 := g.AddVertex(0, model.ObjectID(intern.ID(1)))
	v1 := g.AddVertex(1, model.ObjectID(intern.ID(2)))

	g.AddEdge(v0, v0) // self loop, must be a no-op
	require.False(t, g.Adjacent(v0, v1))

	g.AddEdge(v0, v1)
	require.True(t, g.Adjacent(v0, v1))
	require.True(t, g.Adjacent(v1, v0))
	require.ElementsMatch(t, []int32{v1}, g.Neighbors(v0))
	require.ElementsMatch(t, []int32{v0}, g.Neighbors(v1))
}
