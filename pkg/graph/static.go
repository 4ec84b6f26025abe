// Package graph builds the static consistency graph the clique enumerator
// searches: one vertex per legal (parameter-position, candidate-object)
// pair, and one edge per pair of vertices that are jointly consistent with
// some static atom in the rule body. The graph is built once per rule and
// never changes afterward — only fluent/derived edges vary round to
// round, and those are supplied separately by pkg/clique's delta view.
package graph

import "github.com/mrlab-ai/groundcore/pkg/model"

// Vertex is one candidate binding of a single parameter position to one
// object.
type Vertex struct {
	Parameter int32
	Object    model.ObjectID
}

// Edge connects two vertices whose parameters differ, meaning a pair of
// argument positions that some static literal in the body constrains
// jointly.
type Edge struct {
	From, To int32 // indices into Static.Vertices
}

// Static is the consistency graph for one rule: a k-partite graph with one
// partition per parameter position, vertices restricted to the candidates
// consistent with every unary static literal, and edges restricted to
// pairs consistent with every binary static literal. Static literals over
// three or more parameters are not used for edges.
type Static struct {
	NumParameters int32
	Vertices      []Vertex
	// Partition[p] lists the indices into Vertices belonging to parameter p.
	Partition [][]int32
	// adjacency[v] lists the indices of vertices adjacent to v.
	adjacency [][]int32
}

// NewStatic allocates an empty Static graph with the given number of
// partitions (one per rule parameter).
func NewStatic(numParameters int32) *Static {
	return &Static{
		NumParameters: numParameters,
		Partition:     make([][]int32, numParameters),
	}
}

// AddVertex inserts a candidate binding and returns its index. Callers
// (pkg/task's buildRuleGraph, driven by a unary static-literal scan of the
// seeded state) must not insert the same (parameter, object) pair twice.
func (g *Static) AddVertex(parameter int32, object model.ObjectID) int32 {
	idx := int32(len(g.Vertices))
	g.Vertices = append(g.Vertices, Vertex{Parameter: parameter, Object: object})
	g.Partition[parameter] = append(g.Partition[parameter], idx)
	g.adjacency = append(g.adjacency, nil)
	return idx
}

// AddEdge connects two vertices in different partitions. Edges are
// undirected; AddEdge records both directions.
func (g *Static) AddEdge(from, to int32) {
	if from == to {
		return
	}
	g.adjacency[from] = append(g.adjacency[from], to)
	g.adjacency[to] = append(g.adjacency[to], from)
}

// Adjacent reports whether v and w are connected.
func (g *Static) Adjacent(v, w int32) bool {
	for _, n := range g.adjacency[v] {
		if n == w {
			return true
		}
	}
	return false
}

// Neighbors returns the vertex indices adjacent to v.
func (g *Static) Neighbors(v int32) []int32 { return g.adjacency[v] }

// NumVertices returns the total vertex count across all partitions.
func (g *Static) NumVertices() int { return len(g.Vertices) }
