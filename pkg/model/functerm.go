package model

import "github.com/mrlab-ai/groundcore/pkg/intern"

// FunctionTerm is {function-id, terms}, the numeric-function analogue of
// Atom: it names a function application but carries no value, since a
// lifted function's value is only known once the terms are ground.
type FunctionTerm struct {
	Function FunctionID
	Terms    []Term
}

func (f FunctionTerm) IsCanonical() bool { return true }

func (f FunctionTerm) Encode() []byte {
	e := intern.NewEncoder(8 + 8*len(f.Terms))
	e.ID(intern.ID(f.Function))
	encodeTerms(e, f.Terms)
	return e.Bytes()
}

// GroundFunctionTerm is {function-id, objects}, the ground counterpart of
// FunctionTerm.
type GroundFunctionTerm struct {
	Function FunctionID
	Objects  []ObjectID
}

func (f GroundFunctionTerm) IsCanonical() bool { return true }

func (f GroundFunctionTerm) Encode() []byte {
	e := intern.NewEncoder(8 + 4*len(f.Objects))
	e.ID(intern.ID(f.Function))
	e.Int(int32(len(f.Objects)))
	for _, o := range f.Objects {
		e.ID(intern.ID(o))
	}
	return e.Bytes()
}

// GroundFunctionValue is {ground-function-term-id, value}, the current
// numeric binding of a ground function term. It is the one entity family
// whose content is mutable across a plan (fluent function assignments
// change), so it is never hash-consed against equal value content the way
// every other family is: identity is the ground function term alone, and
// Value is looked up, not fingerprinted.
type GroundFunctionValue struct {
	Term  GroundFunctionTermID
	Value float64
}

func (g GroundFunctionValue) IsCanonical() bool { return true }

func (g GroundFunctionValue) Encode() []byte {
	return intern.NewEncoder(12).ID(intern.ID(g.Term)).Bytes()
}
