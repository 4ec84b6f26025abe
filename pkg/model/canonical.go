package model

import "sort"

// Canonicalization lives here, separate from the Entity.IsCanonical
// checks each type implements: IsCanonical only ever verifies, it never
// rewrites. These helpers are what pkg/prepare calls bottom-up while
// building each entity, so that the value it hands to Store.GetOrCreate
// is already canonical by construction.

// CanonicalBinaryOperator returns lhs, rhs reordered (if kind is
// commutative) so that the smaller identifier comes first.
func CanonicalBinaryOperator(kind OperatorKind, lhs, rhs FunctionExpressionID) (FunctionExpressionID, FunctionExpressionID) {
	if !kind.commutative() {
		return lhs, rhs
	}
	if lhs <= rhs {
		return lhs, rhs
	}
	return rhs, lhs
}

// CanonicalMultiOperands sorts operand identifiers in place for a
// commutative MultiOperator; non-commutative kinds are returned
// unchanged. Only OpAdd/OpMul ever reach a MultiOperator in practice —
// pkg/prepare's buildOperatorExpr rejects every other kind, including
// the commutative comparisons OpEqual/OpNotEqual, before calling this —
// but the helper stays total on kind rather than panicking on misuse.
func CanonicalMultiOperands(kind OperatorKind, operands []FunctionExpressionID) []FunctionExpressionID {
	if !kind.commutative() {
		return operands
	}
	sorted := append([]FunctionExpressionID(nil), operands...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted
}

// SortLiteralIDs returns a sorted copy of lits. ConjunctiveCondition's
// four literal partitions are sorted so that two logically equal
// conditions built in a different source order still intern to the same
// entity.
func SortLiteralIDs(lits []LiteralID) []LiteralID {
	sorted := append([]LiteralID(nil), lits...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted
}

// SortAtomIDs returns a sorted copy of atoms, ordering first by group
// (predicate) then by local index.
func SortAtomIDs(atoms []AtomID) []AtomID {
	sorted := append([]AtomID(nil), atoms...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Group != sorted[j].Group {
			return sorted[i].Group < sorted[j].Group
		}
		return sorted[i].Local < sorted[j].Local
	})
	return sorted
}
