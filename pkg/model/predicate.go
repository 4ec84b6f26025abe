package model

import "github.com/mrlab-ai/groundcore/pkg/intern"

// Predicate is {name, arity, kind}, keyed by (kind, name, arity). Kind is
// assigned exactly once by the preparation pass (pkg/prepare); two
// predicate declarations with the same name and arity always resolve to
// the same Kind, so in practice name+arity alone determine identity, but
// the kind tag is still part of the canonical encoding that is hashed and
// compared.
type Predicate struct {
	Kind  Kind
	Name  string
	Arity int32
}

func (p Predicate) IsCanonical() bool { return true }

func (p Predicate) Encode() []byte {
	return intern.NewEncoder(len(p.Name) + 8).
		Tag(byte(p.Kind)).
		Str(p.Name).
		Int(p.Arity).
		Bytes()
}

// Function is {name, arity, kind}, analogous to Predicate. KindAuxiliary is
// reserved for the domain's designated cost function (conventionally named
// "total-cost"); KindDerived never applies to functions.
type Function struct {
	Kind  Kind
	Name  string
	Arity int32
}

func (f Function) IsCanonical() bool { return true }

func (f Function) Encode() []byte {
	return intern.NewEncoder(len(f.Name) + 8).
		Tag(byte(f.Kind)).
		Str(f.Name).
		Int(f.Arity).
		Bytes()
}
