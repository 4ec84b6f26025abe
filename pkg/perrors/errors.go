// Package perrors defines the domain-facing error taxonomy shared by every
// stage of the grounding core: preparation, interning, enumeration, and
// grounding all report failures through these types so callers can use
// errors.As to recover the precise kind without parsing strings.
package perrors

import "fmt"

// Coordinate identifies a location in the source lifted description, as
// supplied by the (out of scope) parser. A zero Coordinate means unknown.
type Coordinate struct {
	File   string
	Line   int
	Column int
}

func (c Coordinate) String() string {
	if c.File == "" && c.Line == 0 {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", c.File, c.Line, c.Column)
}

// TranslationError reports that a lifted description references an unknown
// symbol, uses an unsupported construct, or has an unbound variable.
type TranslationError struct {
	At      Coordinate
	Message string
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("translation error at %s: %s", e.At, e.Message)
}

// KindMismatch reports that an effect targets a symbol the preparation pass
// classified as non-fluent, or an axiom targets a non-derived head.
type KindMismatch struct {
	At      Coordinate
	Symbol  string
	Wanted  string
	Got     string
	Message string
}

func (e *KindMismatch) Error() string {
	return fmt.Sprintf("kind mismatch at %s: %s: wanted %s, got %s (%s)", e.At, e.Symbol, e.Wanted, e.Got, e.Message)
}

// InvariantViolation reports an internal call that tried to intern
// non-canonical content, or a referential-closure check that failed. The
// repository never recovers from this; the caller must fix the input.
type InvariantViolation struct {
	Component string
	Message   string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation in %s: %s", e.Component, e.Message)
}

// CapacityExceeded reports that identifier space, binding arity, or bitset
// width exceeded an implementation limit.
type CapacityExceeded struct {
	Limit   string
	Wanted  int
	Allowed int
}

func (e *CapacityExceeded) Error() string {
	return fmt.Sprintf("capacity exceeded: %s wants %d, allowed %d", e.Limit, e.Wanted, e.Allowed)
}

// EnumerationAborted is a sentinel, not a true failure: it signals that a
// user callback asked the enumerator to stop early.
type EnumerationAborted struct{}

func (e *EnumerationAborted) Error() string { return "enumeration aborted by callback" }

// AllocationFailed reports an out-of-memory condition during construction.
type AllocationFailed struct {
	Component string
}

func (e *AllocationFailed) Error() string {
	return fmt.Sprintf("allocation failed in %s", e.Component)
}
