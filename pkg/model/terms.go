package model

import "github.com/mrlab-ai/groundcore/pkg/intern"

// Variable is {name}, keyed by name. Lifted entities reference variables
// only indirectly, through a scope's parameter list; Variable itself
// exists so a human-facing name can be recovered for diagnostics and
// pretty-printing.
type Variable struct {
	Name string
}

func (v Variable) IsCanonical() bool { return true }
func (v Variable) Encode() []byte    { return intern.NewEncoder(len(v.Name)).Str(v.Name).Bytes() }

// Object is {name}, keyed by name. Objects are the only legal bindings for
// a Term in object position once an entity is grounded.
type Object struct {
	Name string
}

func (o Object) IsCanonical() bool { return true }
func (o Object) Encode() []byte    { return intern.NewEncoder(len(o.Name)).Str(o.Name).Bytes() }

// TermTag discriminates Term's two alternatives.
type TermTag uint8

const (
	// TermObject holds a concrete ObjectID.
	TermObject TermTag = iota
	// TermParameter holds a position local to the enclosing lifted scope
	// (action, axiom, rule, or forall effect).
	TermParameter
)

// Term is a tagged union {object-id | parameter-position}. It is never
// interned on its own — it is inline content within Atom, FunctionTerm,
// and similar compound entities, and its identity is purely structural
// (the tag plus the payload), so hashing the enclosing entity's encoding
// is sufficient.
type Term struct {
	Tag       TermTag
	Object    ObjectID // valid iff Tag == TermObject
	Parameter int32    // valid iff Tag == TermParameter, local to the scope
}

// ObjectTerm constructs a Term bound to a concrete object.
func ObjectTerm(id ObjectID) Term { return Term{Tag: TermObject, Object: id} }

// ParameterTerm constructs a Term referring to a parameter position.
func ParameterTerm(pos int32) Term { return Term{Tag: TermParameter, Parameter: pos} }

// IsGround reports whether the term is free of parameters.
func (t Term) IsGround() bool { return t.Tag == TermObject }

func encodeTerm(e *intern.Encoder, t Term) {
	e.Tag(byte(t.Tag))
	if t.Tag == TermObject {
		e.ID(intern.ID(t.Object))
	} else {
		e.Int(t.Parameter)
	}
}

func encodeTerms(e *intern.Encoder, terms []Term) {
	e.Int(int32(len(terms)))
	for _, t := range terms {
		encodeTerm(e, t)
	}
}
