package model

import "github.com/mrlab-ai/groundcore/pkg/intern"

// OperatorKind enumerates the arithmetic and boolean operators usable
// inside a FunctionExpression. Arithmetic operators combine numeric
// sub-expressions into a number; boolean (comparison) operators combine
// two numeric sub-expressions into a truth value used as a numeric
// constraint.
type OperatorKind uint8

const (
	OpNegate OperatorKind = iota // unary: -x
	OpAdd                        // commutative
	OpSub                        // non-commutative
	OpMul                        // commutative
	OpDiv                        // non-commutative
	OpEqual
	OpNotEqual
	OpLessEqual
	OpLess
	OpGreaterEqual
	OpGreater
)

func (k OperatorKind) String() string {
	switch k {
	case OpNegate:
		return "-"
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpEqual:
		return "="
	case OpNotEqual:
		return "!="
	case OpLessEqual:
		return "<="
	case OpLess:
		return "<"
	case OpGreaterEqual:
		return ">="
	case OpGreater:
		return ">"
	default:
		return "?"
	}
}

// commutative reports whether swapping a binary operator's two operands
// never changes the result, and therefore whether the operands must be
// sorted into a canonical order before interning.
func (k OperatorKind) commutative() bool {
	return k == OpAdd || k == OpMul || k == OpEqual || k == OpNotEqual
}

// UnaryOperator is {kind, operand}, keyed by (kind, operand). Unary
// operators have no commutativity to normalize away.
type UnaryOperator struct {
	Kind    OperatorKind
	Operand FunctionExpressionID
}

func (u UnaryOperator) IsCanonical() bool { return true }

func (u UnaryOperator) Encode() []byte {
	return intern.NewEncoder(8).Tag(byte(u.Kind)).ID(intern.ID(u.Operand)).Bytes()
}

// BinaryOperator is {kind, lhs, rhs}, keyed by (kind, lhs, rhs). For
// commutative kinds, canonical form requires Lhs.ID() <= Rhs.ID(); the
// caller (pkg/prepare, building these bottom-up) must sort operands by
// identifier before calling GetOrCreate, since child sub-expressions are
// always interned before their parent.
type BinaryOperator struct {
	Kind OperatorKind
	Lhs  FunctionExpressionID
	Rhs  FunctionExpressionID
}

// IsCanonical reports whether a commutative operator's operands are
// already in sorted order. Non-commutative operators are always
// canonical.
func (b BinaryOperator) IsCanonical() bool {
	if !b.Kind.commutative() {
		return true
	}
	return b.Lhs <= b.Rhs
}

func (b BinaryOperator) Encode() []byte {
	return intern.NewEncoder(12).
		Tag(byte(b.Kind)).
		ID(intern.ID(b.Lhs)).
		ID(intern.ID(b.Rhs)).
		Bytes()
}

// MultiOperator is {kind, operands}, an n-ary generalization used for
// chained commutative sums/products (+ a b c ...). Canonical form requires
// Operands to be sorted by identifier and to contain no duplicates removed
// by normalization upstream — duplicates themselves are legal content
// (a + a is not the same expression as a), only the order is normalized.
type MultiOperator struct {
	Kind     OperatorKind
	Operands []FunctionExpressionID
}

// IsCanonical enforces both of MultiOperator's invariants: sorted
// operands (per the doc comment above) and spec.md §3's restriction of
// multi-operators to the associative, commutative operators {+, ×} —
// every other operator kind, including the commutative comparisons
// {=, !=}, is binary-only and must never reach a MultiOperator. This is
// the Store-level backstop; pkg/prepare's buildOperatorExpr is the
// construction-site check that should reject the malformed input before
// it ever gets here.
func (m MultiOperator) IsCanonical() bool {
	if m.Kind != OpAdd && m.Kind != OpMul {
		return false
	}
	for i := 1; i < len(m.Operands); i++ {
		if m.Operands[i-1] > m.Operands[i] {
			return false
		}
	}
	return true
}

func (m MultiOperator) Encode() []byte {
	e := intern.NewEncoder(8 + 4*len(m.Operands))
	e.Tag(byte(m.Kind))
	e.Int(int32(len(m.Operands)))
	for _, id := range m.Operands {
		e.ID(intern.ID(id))
	}
	return e.Bytes()
}
