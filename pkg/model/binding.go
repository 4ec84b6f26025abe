package model

import "github.com/mrlab-ai/groundcore/pkg/intern"

// Binding is an ordered list of objects, one per parameter position of
// the rule it instantiates, keyed by the object sequence itself. Bindings
// are the clique enumerator's output: each satisfying k-clique corresponds
// to exactly one Binding.
type Binding struct {
	Objects []ObjectID
}

func (b Binding) IsCanonical() bool { return true }

func (b Binding) Encode() []byte {
	e := intern.NewEncoder(4 * len(b.Objects))
	e.Int(int32(len(b.Objects)))
	for _, o := range b.Objects {
		e.ID(intern.ID(o))
	}
	return e.Bytes()
}

// At returns the object bound to parameter position i.
func (b Binding) At(i int32) ObjectID { return b.Objects[i] }

// Len returns the number of bound parameters.
func (b Binding) Len() int { return len(b.Objects) }
