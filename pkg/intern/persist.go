package intern

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/mrlab-ai/groundcore/pkg/arena"
)

// Version is the persisted-layout format tag. Bump it whenever WriteStore's
// framing changes incompatibly.
const Version uint32 = 1

// Header is written once at the start of a persisted repository: the
// format version plus a build tag. Identifiers are dense positions
// assigned by a specific build's hashing and canonicalisation rules, so a
// loader must refuse to reattach them if either differs from what
// produced them.
type Header struct {
	Version  uint32
	BuildTag uuid.UUID
}

// NewHeader returns a Header stamped with the given build tag (typically
// generated once per build via uuid.New and baked into the binary, or
// supplied by the caller for reproducible test fixtures).
func NewHeader(buildTag uuid.UUID) Header {
	return Header{Version: Version, BuildTag: buildTag}
}

func (h Header) write(w io.Writer) error {
	var v [4]byte
	binary.BigEndian.PutUint32(v[:], h.Version)
	if _, err := w.Write(v[:]); err != nil {
		return err
	}
	tag, err := h.BuildTag.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = w.Write(tag)
	return err
}

// ReadHeader reads back a Header written by WriteHeader.
func ReadHeader(r io.Reader) (Header, error) {
	var v [4]byte
	if _, err := io.ReadFull(r, v[:]); err != nil {
		return Header{}, fmt.Errorf("intern: read header version: %w", err)
	}
	var tag [16]byte
	if _, err := io.ReadFull(r, tag[:]); err != nil {
		return Header{}, fmt.Errorf("intern: read header build tag: %w", err)
	}
	id, err := uuid.FromBytes(tag[:])
	if err != nil {
		return Header{}, fmt.Errorf("intern: decode header build tag: %w", err)
	}
	return Header{Version: binary.BigEndian.Uint32(v[:]), BuildTag: id}, nil
}

// Compatible reports whether a loaded header matches the running build's
// header: same format version, same build tag. A mismatch means the
// persisted identifiers cannot be trusted to mean the same thing under
// this build's hashing and canonicalisation rules.
func (h Header) Compatible(current Header) bool {
	return h.Version == current.Version && h.BuildTag == current.BuildTag
}

// WriteHeader writes h to w; exported alongside ReadHeader so callers
// persisting more than one store share a single header.
func WriteHeader(w io.Writer, h Header) error {
	return h.write(w)
}

// WriteStore serializes s to w as an entity count followed by each
// entity's canonical encoding, length-prefixed, in dense identifier order
// (0, 1, 2, ...). Identifier order is exactly the order GetOrCreate must
// replay the entities in to reconstruct identical dense identifiers on
// load, so no separate offset/length index needs to be persisted
// alongside the encoded bytes: the framing here already is that index.
func WriteStore[T Entity](w io.Writer, s *Store[T]) error {
	n := s.Len()
	if err := writeUint32(w, uint32(n)); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		data := s.Get(ID(i)).Encode()
		if err := writeUint32(w, uint32(len(data))); err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
	}
	return nil
}

// ReadStore rebuilds a Store[T] by decoding each entity WriteStore wrote
// and replaying it through GetOrCreate, in encoded order — the store's
// hash-consing is itself idempotent, so this reproduces the original
// dense identifiers exactly.
func ReadStore[T Entity](r io.Reader, buf *arena.Buffer, component string, decode func(*Decoder) (T, error)) (*Store[T], error) {
	n, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	s := NewStore[T](buf, component)
	for i := uint32(0); i < n; i++ {
		length, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		data := make([]byte, length)
		if _, err := io.ReadFull(r, data); err != nil {
			return nil, fmt.Errorf("intern: read %s entity %d: %w", component, i, err)
		}
		value, err := decode(NewDecoder(data))
		if err != nil {
			return nil, fmt.Errorf("intern: decode %s entity %d: %w", component, i, err)
		}
		if _, _, err := s.GetOrCreate(value); err != nil {
			return nil, fmt.Errorf("intern: replay %s entity %d: %w", component, i, err)
		}
	}
	return s, nil
}

// WriteGroupedStore serializes g to w as a group count followed by each
// group's identifier and its own WriteStore framing, groups visited in
// ascending identifier order.
func WriteGroupedStore[T Entity](w io.Writer, g *GroupedStore[T]) error {
	groups := g.Groups()
	if err := writeUint32(w, uint32(len(groups))); err != nil {
		return err
	}
	for _, group := range groups {
		if err := writeUint32(w, uint32(group)); err != nil {
			return err
		}
		if err := WriteStore(w, g.group(group)); err != nil {
			return err
		}
	}
	return nil
}

// ReadGroupedStore rebuilds a GroupedStore[T] by replaying each group's
// entities through GetOrCreate in the order WriteGroupedStore visited
// them, reproducing identical composite identifiers.
func ReadGroupedStore[T Entity](r io.Reader, buf *arena.Buffer, component string, decode func(*Decoder) (T, error)) (*GroupedStore[T], error) {
	groupCount, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	g := NewGroupedStore[T](buf, component)
	for i := uint32(0); i < groupCount; i++ {
		groupID, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		store, err := ReadStore(r, buf, component, decode)
		if err != nil {
			return nil, fmt.Errorf("intern: read group %d: %w", groupID, err)
		}
		g.groups[ID(groupID)] = store
	}
	return g, nil
}

func writeUint32(w io.Writer, v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	_, err := w.Write(b[:])
	return err
}

func readUint32(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("intern: read length prefix: %w", err)
	}
	return binary.BigEndian.Uint32(b[:]), nil
}
