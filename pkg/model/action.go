package model

import "github.com/mrlab-ai/groundcore/pkg/intern"

// Action is {name, num-parameters, precondition, effects}, keyed by
// (name, num-parameters) — two actions with the same name but different
// arity (e.g. overloaded schema names, which some front ends allow) are
// distinct entities.
type Action struct {
	Name          string
	NumParameters int32
	Precondition  ConjunctiveConditionID
	Effects       []ConditionalEffectID
}

func (a Action) IsCanonical() bool { return true }

func (a Action) Encode() []byte {
	e := intern.NewEncoder(32 + len(a.Name))
	e.Str(a.Name)
	e.Int(a.NumParameters)
	e.ID(intern.ID(a.Precondition))
	e.Int(int32(len(a.Effects)))
	for _, eff := range a.Effects {
		e.ID(intern.ID(eff))
	}
	return e.Bytes()
}

// Axiom is {derived-literal-head, num-parameters, body}, keyed by
// (head, num-parameters, body). Head names the single derived literal the
// axiom can establish; Body is the condition that must hold for it to
// fire.
type Axiom struct {
	Head          LiteralID
	NumParameters int32
	Body          ConjunctiveConditionID
}

func (a Axiom) IsCanonical() bool { return true }

func (a Axiom) Encode() []byte {
	return intern.NewEncoder(20).
		ID(intern.ID(a.Head)).
		Int(a.NumParameters).
		ID(intern.ID(a.Body)).
		Bytes()
}

// Rule generalizes Action and Axiom for the enumerator's purposes: every
// lifted entity the clique enumerator grounds is, at bottom, "a body
// (ConjunctiveCondition) plus a number of parameters to bind", whether it
// came from an action precondition or an axiom body. Rule records which
// concrete entity it was derived from so grounding can dispatch back to
// the right effect/head application.
type Rule struct {
	NumParameters int32
	Body          ConjunctiveConditionID
	Origin        RuleOrigin
	Action        ActionID
	Axiom         AxiomID
}

// RuleOrigin discriminates which lifted entity a Rule was built from.
type RuleOrigin uint8

const (
	RuleFromAction RuleOrigin = iota
	RuleFromAxiom
)

func (r Rule) IsCanonical() bool { return true }

func (r Rule) Encode() []byte {
	e := intern.NewEncoder(24).
		Int(r.NumParameters).
		ID(intern.ID(r.Body)).
		Tag(byte(r.Origin))
	switch r.Origin {
	case RuleFromAction:
		e.ID(intern.ID(r.Action))
	case RuleFromAxiom:
		e.ID(intern.ID(r.Axiom))
	}
	return e.Bytes()
}
