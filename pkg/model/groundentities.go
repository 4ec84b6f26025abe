package model

import "github.com/mrlab-ai/groundcore/pkg/intern"

// GroundRule is {rule-id, binding}, keyed by (rule-id, binding) — the
// result of the clique enumerator finding one satisfying assignment of a
// Rule's parameters to objects. It is the shared representation that the
// grounder specializes into a GroundAction or GroundAxiom depending on
// the originating Rule's Origin.
type GroundRule struct {
	Rule    RuleID
	Binding BindingID
}

func (g GroundRule) IsCanonical() bool { return true }

func (g GroundRule) Encode() []byte {
	return intern.NewEncoder(8).ID(intern.ID(g.Rule)).ID(intern.ID(g.Binding)).Bytes()
}

// GroundAction is {action-id, binding, ground-precondition,
// ground-effects}: a fully instantiated action, ready for use by a
// downstream search/validation consumer.
type GroundAction struct {
	Action             ActionID
	Binding            BindingID
	GroundPrecondition []GroundLiteralID
	GroundNumeric      []GroundNumericConstraint
	GroundEffects      []GroundConditionalEffect
}

func (g GroundAction) IsCanonical() bool { return true }

func (g GroundAction) Encode() []byte {
	e := intern.NewEncoder(32)
	e.ID(intern.ID(g.Action))
	e.ID(intern.ID(g.Binding))
	e.Int(int32(len(g.GroundPrecondition)))
	for _, l := range g.GroundPrecondition {
		e.ID(intern.ID(l))
	}
	e.Int(int32(len(g.GroundNumeric)))
	for _, nc := range g.GroundNumeric {
		e.Tag(byte(nc.Kind)).ID(intern.ID(nc.Lhs)).ID(intern.ID(nc.Rhs))
	}
	e.Int(int32(len(g.GroundEffects)))
	for _, eff := range g.GroundEffects {
		e.Int(int32(len(eff.Condition)))
		for _, l := range eff.Condition {
			e.ID(intern.ID(l))
		}
		e.Int(int32(len(eff.Add)))
		for _, a := range eff.Add {
			e.ID(a.Group).ID(a.Local)
		}
		e.Int(int32(len(eff.Delete)))
		for _, a := range eff.Delete {
			e.ID(a.Group).ID(a.Local)
		}
		e.Int(int32(len(eff.Numeric)))
		for _, ne := range eff.Numeric {
			e.Tag(byte(ne.Kind)).ID(intern.ID(ne.Term)).ID(intern.ID(ne.Expr))
		}
	}
	return e.Bytes()
}

// GroundConditionalEffect is the ground counterpart of ConditionalEffect:
// a (possibly empty) condition under which a set of ground atoms are
// added/deleted and numeric values updated.
type GroundConditionalEffect struct {
	Condition []GroundLiteralID
	Add       []GroundAtomID
	Delete    []GroundAtomID
	Numeric   []GroundNumericEffect
}

// GroundAxiom is {axiom-id, binding, ground-head, ground-body}: a fully
// instantiated axiom, used by the match tree to derive the head atom
// whenever the body holds in the current state.
type GroundAxiom struct {
	Axiom         AxiomID
	Binding       BindingID
	Head          GroundAtomID
	GroundBody    []GroundLiteralID
	GroundNumeric []GroundNumericConstraint
}

func (g GroundAxiom) IsCanonical() bool { return true }

func (g GroundAxiom) Encode() []byte {
	e := intern.NewEncoder(24)
	e.ID(intern.ID(g.Axiom))
	e.ID(intern.ID(g.Binding))
	e.ID(g.Head.Group).ID(g.Head.Local)
	e.Int(int32(len(g.GroundBody)))
	for _, l := range g.GroundBody {
		e.ID(intern.ID(l))
	}
	e.Int(int32(len(g.GroundNumeric)))
	for _, nc := range g.GroundNumeric {
		e.Tag(byte(nc.Kind)).ID(intern.ID(nc.Lhs)).ID(intern.ID(nc.Rhs))
	}
	return e.Bytes()
}
