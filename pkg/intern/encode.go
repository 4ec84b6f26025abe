package intern

import (
	"encoding/binary"
	"math"
)

// Encoder accumulates a deterministic canonical byte encoding for an
// entity. It is a thin wrapper over append-based varint/tag writes; the
// point is not a general serialization format, only a stable, unambiguous
// byte representation to hash and compare for structural equality.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an empty Encoder with capacity hint n bytes.
func NewEncoder(n int) *Encoder {
	return &Encoder{buf: make([]byte, 0, n)}
}

// Tag writes a single byte discriminator (e.g. for tagged unions).
func (e *Encoder) Tag(b byte) *Encoder {
	e.buf = append(e.buf, b)
	return e
}

// Int writes a signed 32-bit identifier or small integer as a varint.
func (e *Encoder) Int(v int32) *Encoder {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutVarint(tmp[:], int64(v))
	e.buf = append(e.buf, tmp[:n]...)
	return e
}

// ID writes an intern.ID as a varint.
func (e *Encoder) ID(id ID) *Encoder {
	return e.Int(int32(id))
}

// Float writes a float64 in fixed 8-byte big-endian form, so byte
// comparisons are stable regardless of host endianness.
func (e *Encoder) Float(v float64) *Encoder {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], math.Float64bits(v))
	e.buf = append(e.buf, tmp[:]...)
	return e
}

// Str writes a length-prefixed UTF-8 string.
func (e *Encoder) Str(s string) *Encoder {
	e.Int(int32(len(s)))
	e.buf = append(e.buf, s...)
	return e
}

// IDs writes a length-prefixed list of identifiers, in the order given —
// callers must sort beforehand if canonical order requires it.
func (e *Encoder) IDs(ids []ID) *Encoder {
	e.Int(int32(len(ids)))
	for _, id := range ids {
		e.ID(id)
	}
	return e
}

// Bytes returns the accumulated encoding.
func (e *Encoder) Bytes() []byte {
	return e.buf
}
