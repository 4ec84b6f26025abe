// Package arena implements the append-only byte buffer that backs every
// interned entity. Content never relocates once appended: a Buffer grows by
// allocating fresh segments, so an Offset handed out by Append stays valid
// for the buffer's entire lifetime.
package arena

// segmentSize is the capacity of the first backing segment; each later
// segment doubles the capacity of the one before it. Small enough to keep
// early buffers cheap, large enough that most domains fit in a handful of
// segments.
const segmentSize = 64 * 1024

// Offset addresses a byte range within a Buffer. It survives across Append
// calls: new segments never invalidate old ones.
type Offset struct {
	segment int
	pos     int
}

// Buffer is an append-only byte arena with geometric growth in fresh
// segments. It never copies or relocates previously appended bytes.
type Buffer struct {
	segments [][]byte
}

// New returns an empty Buffer.
func New() *Buffer {
	return &Buffer{segments: [][]byte{make([]byte, 0, segmentSize)}}
}

// Append places bytes contiguously within a single segment and returns a
// stable offset to their start. If the content does not fit in the current
// segment's remaining capacity, a new segment is allocated (twice the
// current segment's capacity, or sized to fit the content if larger).
func (b *Buffer) Append(data []byte) Offset {
	cur := len(b.segments) - 1
	seg := b.segments[cur]
	if cap(seg)-len(seg) < len(data) {
		size := 2 * cap(seg)
		if len(data) > size {
			size = len(data)
		}
		b.segments = append(b.segments, make([]byte, 0, size))
		cur++
		seg = b.segments[cur]
	}
	off := Offset{segment: cur, pos: len(seg)}
	b.segments[cur] = append(seg, data...)
	return off
}

// View returns the byte range [offset, offset+length) as a slice that
// aliases the buffer's backing storage. The slice remains valid until the
// Buffer itself is discarded; it is never invalidated by further Append
// calls, since segments are never reallocated once filled past their
// original capacity boundary.
func (b *Buffer) View(off Offset, length int) []byte {
	return b.segments[off.segment][off.pos : off.pos+length]
}

// Len returns the total number of bytes appended across all segments.
func (b *Buffer) Len() int {
	n := 0
	for _, seg := range b.segments {
		n += len(seg)
	}
	return n
}
