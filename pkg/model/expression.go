package model

import "github.com/mrlab-ai/groundcore/pkg/intern"

// ExpressionTag discriminates FunctionExpression's alternatives.
type ExpressionTag uint8

const (
	ExprConstant ExpressionTag = iota
	ExprFunctionTerm
	ExprUnary
	ExprBinary
	ExprMulti
)

// FunctionExpression is a tagged union over {numeric constant,
// function-term, unary operator, binary operator, multi operator}. Only
// one payload field is valid at a time, selected by Tag.
type FunctionExpression struct {
	Tag      ExpressionTag
	Constant float64
	Term     FunctionTermID
	Unary    UnaryOperatorID
	Binary   BinaryOperatorID
	Multi    MultiOperatorID
}

func (f FunctionExpression) IsCanonical() bool { return true }

func (f FunctionExpression) Encode() []byte {
	e := intern.NewEncoder(16).Tag(byte(f.Tag))
	switch f.Tag {
	case ExprConstant:
		e.Float(f.Constant)
	case ExprFunctionTerm:
		e.ID(intern.ID(f.Term))
	case ExprUnary:
		e.ID(intern.ID(f.Unary))
	case ExprBinary:
		e.ID(intern.ID(f.Binary))
	case ExprMulti:
		e.ID(intern.ID(f.Multi))
	}
	return e.Bytes()
}

// GroundFunctionExpression mirrors FunctionExpression over ground payload
// types: the function-term alternative resolves to a
// GroundFunctionValueID instead of a FunctionTermID, and the operator
// alternatives reference other GroundFunctionExpressionIDs.
type GroundFunctionExpression struct {
	Tag      ExpressionTag
	Constant float64
	Value    GroundFunctionValueID
	Unary    struct {
		Kind    OperatorKind
		Operand GroundFunctionExpressionID
	}
	Binary struct {
		Kind OperatorKind
		Lhs  GroundFunctionExpressionID
		Rhs  GroundFunctionExpressionID
	}
	Multi struct {
		Kind     OperatorKind
		Operands []GroundFunctionExpressionID
	}
}

func (g GroundFunctionExpression) IsCanonical() bool { return true }

func (g GroundFunctionExpression) Encode() []byte {
	e := intern.NewEncoder(32).Tag(byte(g.Tag))
	switch g.Tag {
	case ExprConstant:
		e.Float(g.Constant)
	case ExprFunctionTerm:
		e.ID(intern.ID(g.Value))
	case ExprUnary:
		e.Tag(byte(g.Unary.Kind)).ID(intern.ID(g.Unary.Operand))
	case ExprBinary:
		e.Tag(byte(g.Binary.Kind)).ID(intern.ID(g.Binary.Lhs)).ID(intern.ID(g.Binary.Rhs))
	case ExprMulti:
		e.Tag(byte(g.Multi.Kind))
		e.Int(int32(len(g.Multi.Operands)))
		for _, id := range g.Multi.Operands {
			e.ID(intern.ID(id))
		}
	}
	return e.Bytes()
}
