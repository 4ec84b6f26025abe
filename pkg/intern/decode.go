package intern

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Decoder reads back the byte encoding an Encoder produced: the exact
// inverse, field for field, of the sequence of Encoder calls a type's
// Encode method makes. Decoder is the piece Encode never needed on its
// own — interning only ever hashes and compares bytes — but that
// persistence (see persist.go) needs to turn stored bytes back into
// values to replay through GetOrCreate.
type Decoder struct {
	buf []byte
	pos int
}

// NewDecoder returns a Decoder reading from buf.
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

// Done reports whether every byte has been consumed.
func (d *Decoder) Done() bool { return d.pos >= len(d.buf) }

// Tag reads one byte discriminator.
func (d *Decoder) Tag() (byte, error) {
	if d.pos >= len(d.buf) {
		return 0, fmt.Errorf("intern: decode tag: unexpected end of input")
	}
	b := d.buf[d.pos]
	d.pos++
	return b, nil
}

// Int reads a varint-encoded int32.
func (d *Decoder) Int() (int32, error) {
	v, n := binary.Varint(d.buf[d.pos:])
	if n <= 0 {
		return 0, fmt.Errorf("intern: decode int: malformed varint")
	}
	d.pos += n
	return int32(v), nil
}

// ID reads an intern.ID.
func (d *Decoder) ID() (ID, error) {
	v, err := d.Int()
	return ID(v), err
}

// Float reads a fixed 8-byte big-endian float64.
func (d *Decoder) Float() (float64, error) {
	if len(d.buf)-d.pos < 8 {
		return 0, fmt.Errorf("intern: decode float: unexpected end of input")
	}
	bits := binary.BigEndian.Uint64(d.buf[d.pos : d.pos+8])
	d.pos += 8
	return math.Float64frombits(bits), nil
}

// Str reads a length-prefixed UTF-8 string.
func (d *Decoder) Str() (string, error) {
	n, err := d.Int()
	if err != nil {
		return "", err
	}
	if n < 0 || int(n) > len(d.buf)-d.pos {
		return "", fmt.Errorf("intern: decode string: length %d exceeds remaining input", n)
	}
	s := string(d.buf[d.pos : d.pos+int(n)])
	d.pos += int(n)
	return s, nil
}

// IDs reads a length-prefixed list of identifiers.
func (d *Decoder) IDs() ([]ID, error) {
	n, err := d.Int()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	ids := make([]ID, n)
	for i := range ids {
		if ids[i], err = d.ID(); err != nil {
			return nil, err
		}
	}
	return ids, nil
}
