package model

import "github.com/mrlab-ai/groundcore/pkg/intern"

// NumericEffect assigns (or increments/decrements/scales) a fluent
// function term by evaluating a function expression.
type NumericEffect struct {
	Kind OperatorKind // assign is represented as OpAdd/OpSub/... per the PDDL effect form it came from; assign proper uses a dedicated zero value upstream in pkg/prepare
	Term FunctionTermID
	Expr FunctionExpressionID
}

// GroundNumericEffect is the ground counterpart of NumericEffect, produced
// once a conditional effect's parameters are bound.
type GroundNumericEffect struct {
	Kind OperatorKind
	Term GroundFunctionTermID
	Expr GroundFunctionExpressionID
}

// ConjunctiveEffect is the unconditional tail of an effect: the atoms to
// add, the atoms to delete, and the numeric effects to apply, all in
// terms of the enclosing action's parameters.
type ConjunctiveEffect struct {
	NumParameters  int32
	AddLiterals    []AtomID
	DeleteLiterals []AtomID
	NumericEffects []NumericEffect
}

func (c ConjunctiveEffect) IsCanonical() bool { return true }

func (c ConjunctiveEffect) Encode() []byte {
	e := intern.NewEncoder(64)
	e.Int(c.NumParameters)
	encodeAtomIDs(e, c.AddLiterals)
	encodeAtomIDs(e, c.DeleteLiterals)
	e.Int(int32(len(c.NumericEffects)))
	for _, ne := range c.NumericEffects {
		e.Tag(byte(ne.Kind)).ID(intern.ID(ne.Term)).ID(intern.ID(ne.Expr))
	}
	return e.Bytes()
}

func encodeAtomIDs(e *intern.Encoder, atoms []AtomID) {
	e.Int(int32(len(atoms)))
	for _, a := range atoms {
		e.ID(a.Group).ID(a.Local)
	}
}

// ConditionalEffect is {parameters, condition, effect}: a forall/when
// clause attached to an action. Parameters introduced by the forall are
// appended after the enclosing action's own parameters, so Condition and
// Effect index into the combined parameter list. An unconditional
// top-level effect is represented as a ConditionalEffect with an empty
// Condition and zero extra parameters.
type ConditionalEffect struct {
	NumExtraParameters int32
	Condition          ConjunctiveConditionID
	Effect             ConjunctiveEffectID
}

func (c ConditionalEffect) IsCanonical() bool { return true }

func (c ConditionalEffect) Encode() []byte {
	return intern.NewEncoder(12).
		Int(c.NumExtraParameters).
		ID(intern.ID(c.Condition)).
		ID(intern.ID(c.Effect)).
		Bytes()
}
