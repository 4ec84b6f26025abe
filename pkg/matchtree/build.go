package matchtree

import (
	"sort"

	"github.com/mrlab-ai/groundcore/pkg/arena"
	"github.com/mrlab-ai/groundcore/pkg/intern"
	"github.com/mrlab-ai/groundcore/pkg/model"
)

// AtomRequirement says element is reachable only through states where atom
// is present (Present true) or absent (Present false).
type AtomRequirement struct {
	Atom    model.GroundAtomID
	Present bool
}

// FDRRequirement says element is reachable only through states where
// Variable holds exactly Value.
type FDRRequirement struct {
	Variable model.FDRVariableID
	Value    int32
}

// Element is one leaf payload (a ground action or axiom id, caller-assigned
// and caller-interpreted) together with the tests that must hold for it.
// An element's requirement lists may be empty — it is then reachable from
// every state, living only on DontCare branches throughout the tree.
type Element struct {
	ID       int32
	Atoms    []AtomRequirement
	FDRFacts []FDRRequirement
	Numeric  []model.GroundNumericConstraint
}

type testKind uint8

const (
	testAtom testKind = iota
	testFDRFact
	testNumeric
)

// test identifies one position in the tree's global, canonically ordered
// test sequence. Every element's requirements are matched against this same
// sequence, which is what lets unrelated elements share prefixes and what
// makes DontCare mean "doesn't mention this test" rather than "failed it".
type test struct {
	kind     testKind
	atom     model.GroundAtomID
	variable model.FDRVariableID
	numeric  model.GroundNumericConstraint
}

// Build constructs a complete match tree for elements in one pass. The
// tree is hash-consed as it is built: structurally identical subtrees —
// most commonly shared suffixes of the test sequence — collapse to a
// single stored Node via intern.Store's GetOrCreate.
func Build(elements []Element) *Tree {
	buf := arena.New()
	nodes := intern.NewStore[Node](buf, "matchtree_node")

	order := collectTestOrder(elements)
	root := buildNode(nodes, elements, order, 0)
	return &Tree{nodes: nodes, root: root}
}

func collectTestOrder(elements []Element) []test {
	seenAtom := make(map[model.GroundAtomID]bool)
	seenVar := make(map[model.FDRVariableID]bool)
	seenNumeric := make(map[model.GroundNumericConstraint]bool)

	var tests []test
	for _, el := range elements {
		for _, r := range el.Atoms {
			if !seenAtom[r.Atom] {
				seenAtom[r.Atom] = true
				tests = append(tests, test{kind: testAtom, atom: r.Atom})
			}
		}
		for _, r := range el.FDRFacts {
			if !seenVar[r.Variable] {
				seenVar[r.Variable] = true
				tests = append(tests, test{kind: testFDRFact, variable: r.Variable})
			}
		}
		for _, c := range el.Numeric {
			if !seenNumeric[c] {
				seenNumeric[c] = true
				tests = append(tests, test{kind: testNumeric, numeric: c})
			}
		}
	}

	sort.Slice(tests, func(i, j int) bool { return testLess(tests[i], tests[j]) })
	return tests
}

func testLess(a, b test) bool {
	if a.kind != b.kind {
		return a.kind < b.kind
	}
	switch a.kind {
	case testAtom:
		if a.atom.Group != b.atom.Group {
			return a.atom.Group < b.atom.Group
		}
		return a.atom.Local < b.atom.Local
	case testFDRFact:
		return a.variable < b.variable
	case testNumeric:
		if a.numeric.Kind != b.numeric.Kind {
			return a.numeric.Kind < b.numeric.Kind
		}
		if a.numeric.Lhs != b.numeric.Lhs {
			return a.numeric.Lhs < b.numeric.Lhs
		}
		return a.numeric.Rhs < b.numeric.Rhs
	}
	return false
}

func buildNode(nodes *intern.Store[Node], elements []Element, order []test, pos int) NodeID {
	if pos == len(order) {
		return buildLeaf(nodes, elements)
	}

	switch order[pos].kind {
	case testAtom:
		return buildAtomNode(nodes, elements, order, pos)
	case testFDRFact:
		return buildFDRNode(nodes, elements, order, pos)
	default:
		return buildNumericNode(nodes, elements, order, pos)
	}
}

func buildLeaf(nodes *intern.Store[Node], elements []Element) NodeID {
	if len(elements) == 0 {
		return NoNode
	}
	ids := make([]int32, len(elements))
	for i, el := range elements {
		ids[i] = el.ID
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	ids = dedupSorted(ids)

	id, _, err := nodes.GetOrCreate(Node{Kind: KindLeaf, Elements: ids})
	if err != nil {
		panic(err) // leaf content is always canonical by construction
	}
	return NodeID(id)
}

func dedupSorted(ids []int32) []int32 {
	out := ids[:0]
	for i, id := range ids {
		if i == 0 || id != ids[i-1] {
			out = append(out, id)
		}
	}
	return out
}

func buildAtomNode(nodes *intern.Store[Node], elements []Element, order []test, pos int) NodeID {
	atom := order[pos].atom
	var present, absent, indifferent []Element
	for _, el := range elements {
		switch r, ok := findAtomRequirement(el, atom); {
		case !ok:
			indifferent = append(indifferent, el)
		case r.Present:
			present = append(present, el)
		default:
			absent = append(absent, el)
		}
	}

	presentID := buildNode(nodes, present, order, pos+1)
	absentID := buildNode(nodes, absent, order, pos+1)
	dontCareID := buildNode(nodes, indifferent, order, pos+1)
	if presentID == NoNode && absentID == NoNode {
		return dontCareID
	}

	id, _, err := nodes.GetOrCreate(Node{
		Kind: KindAtom, Atom: atom,
		Present: presentID, Absent: absentID, DontCare: dontCareID,
	})
	if err != nil {
		panic(err)
	}
	return NodeID(id)
}

func buildFDRNode(nodes *intern.Store[Node], elements []Element, order []test, pos int) NodeID {
	variable := order[pos].variable
	byValue := make(map[int32][]Element)
	var indifferent []Element
	for _, el := range elements {
		if r, ok := findFDRRequirement(el, variable); ok {
			byValue[r.Value] = append(byValue[r.Value], el)
		} else {
			indifferent = append(indifferent, el)
		}
	}

	values := make([]int32, 0, len(byValue))
	for v := range byValue {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	var branches []fdrBranch
	for _, v := range values {
		child := buildNode(nodes, byValue[v], order, pos+1)
		if child != NoNode {
			branches = append(branches, fdrBranch{Value: v, Child: child})
		}
	}
	dontCareID := buildNode(nodes, indifferent, order, pos+1)
	if len(branches) == 0 {
		return dontCareID
	}

	id, _, err := nodes.GetOrCreate(Node{
		Kind: KindFDRFact, Variable: variable,
		Branches: branches, DontCare: dontCareID,
	})
	if err != nil {
		panic(err)
	}
	return NodeID(id)
}

func buildNumericNode(nodes *intern.Store[Node], elements []Element, order []test, pos int) NodeID {
	numeric := order[pos].numeric
	var satisfied, indifferent []Element
	for _, el := range elements {
		if hasNumericRequirement(el, numeric) {
			satisfied = append(satisfied, el)
		} else {
			indifferent = append(indifferent, el)
		}
	}

	satisfiedID := buildNode(nodes, satisfied, order, pos+1)
	dontCareID := buildNode(nodes, indifferent, order, pos+1)
	if satisfiedID == NoNode {
		return dontCareID
	}

	id, _, err := nodes.GetOrCreate(Node{
		Kind: KindNumeric, Numeric: numeric,
		Satisfied: satisfiedID, DontCare: dontCareID,
	})
	if err != nil {
		panic(err)
	}
	return NodeID(id)
}

func findAtomRequirement(el Element, atom model.GroundAtomID) (AtomRequirement, bool) {
	for _, r := range el.Atoms {
		if r.Atom == atom {
			return r, true
		}
	}
	return AtomRequirement{}, false
}

func findFDRRequirement(el Element, variable model.FDRVariableID) (FDRRequirement, bool) {
	for _, r := range el.FDRFacts {
		if r.Variable == variable {
			return r, true
		}
	}
	return FDRRequirement{}, false
}

func hasNumericRequirement(el Element, c model.GroundNumericConstraint) bool {
	for _, n := range el.Numeric {
		if n == c {
			return true
		}
	}
	return false
}
