// Package intern implements the hash-consed interning repository: a family
// of stores that assign stable, densely allocated identifiers to formal
// entities, enforce canonical form before any byte content is stored, and
// expose cheap value and byte-range access by identifier.
//
// A Store[T] is keyed by a structural fingerprint of T's canonical byte
// encoding (xxhash of the bytes), with full byte equality resolving hash
// collisions — the "constant-time lookup by structural hash + byte
// equality" the repository contract calls for. Canonicalisation itself is
// never performed here: callers must hand GetOrCreate an already-canonical
// value, matching the corpus's convention of normalising before hashing
// rather than inside the hash-consing layer.
package intern

import (
	"bytes"
	"sort"

	"github.com/cespare/xxhash/v2"

	"github.com/mrlab-ai/groundcore/pkg/arena"
	"github.com/mrlab-ai/groundcore/pkg/perrors"
)

// ID is a dense, stable identifier for an entity within one Store.
type ID int32

// Entity is implemented by every interned payload type. Encode must be a
// pure function of the identifying content (deterministic, side-effect
// free); IsCanonical reports whether the value is already in the normal
// form its family requires.
type Entity interface {
	IsCanonical() bool
	Encode() []byte
}

// Store is a hash-consed, append-only mapping from canonical byte content
// to a dense identifier, for one entity kind.
type Store[T Entity] struct {
	component string
	buf       *arena.Buffer
	byHash    map[uint64][]int32
	values    []T
	offsets   []arena.Offset
	lengths   []int32
}

// NewStore returns an empty store backed by buf. component names the
// entity kind, used only for InvariantViolation messages.
func NewStore[T Entity](buf *arena.Buffer, component string) *Store[T] {
	return &Store[T]{
		component: component,
		buf:       buf,
		byHash:    make(map[uint64][]int32),
	}
}

// Find returns the identifier of candidate if an entity with the same
// canonical encoding already exists.
func (s *Store[T]) Find(candidate T) (ID, bool) {
	enc := candidate.Encode()
	h := xxhash.Sum64(enc)
	for _, id := range s.byHash[h] {
		if bytes.Equal(s.Bytes(ID(id)), enc) {
			return ID(id), true
		}
	}
	return 0, false
}

// GetOrCreate returns the existing identifier for candidate, or appends it
// to the buffer and allocates a fresh dense identifier. inserted reports
// whether a new entity was created. GetOrCreate fails with
// InvariantViolation if candidate is not in canonical form.
func (s *Store[T]) GetOrCreate(candidate T) (id ID, inserted bool, err error) {
	if !candidate.IsCanonical() {
		return 0, false, &perrors.InvariantViolation{
			Component: s.component,
			Message:   "get_or_create called with non-canonical content",
		}
	}
	if existing, ok := s.Find(candidate); ok {
		return existing, false, nil
	}
	enc := candidate.Encode()
	off := s.buf.Append(enc)
	id = ID(len(s.values))
	s.values = append(s.values, candidate)
	s.offsets = append(s.offsets, off)
	s.lengths = append(s.lengths, int32(len(enc)))
	h := xxhash.Sum64(enc)
	s.byHash[h] = append(s.byHash[h], int32(id))
	return id, true, nil
}

// Get returns the value stored at id. Panics if id is out of range, which
// indicates a referential-closure bug in the caller (a dangling id should
// never be constructed in the first place).
func (s *Store[T]) Get(id ID) T {
	return s.values[id]
}

// Bytes returns the canonical byte encoding stored at id, as an alias of
// the backing arena — the zero-copy "View" half of the Data/View split.
func (s *Store[T]) Bytes(id ID) []byte {
	return s.buf.View(s.offsets[id], int(s.lengths[id]))
}

// Len returns the number of distinct entities interned so far.
func (s *Store[T]) Len() int {
	return len(s.values)
}

// GroupedID composite-identifies an entity within a GroupedStore: a group
// (e.g. predicate id) plus a dense local index within that group.
type GroupedID struct {
	Group ID
	Local ID
}

// GroupedStore is a Store[T] per group, used for entity kinds whose
// identifiers must be dense within a group rather than globally — e.g.
// Atom<K>, whose local index is dense in [0, count-of-atoms-of-predicate-p).
type GroupedStore[T Entity] struct {
	component string
	buf       *arena.Buffer
	groups    map[ID]*Store[T]
}

// NewGroupedStore returns an empty grouped store backed by buf.
func NewGroupedStore[T Entity](buf *arena.Buffer, component string) *GroupedStore[T] {
	return &GroupedStore[T]{
		component: component,
		buf:       buf,
		groups:    make(map[ID]*Store[T]),
	}
}

func (g *GroupedStore[T]) group(group ID) *Store[T] {
	s, ok := g.groups[group]
	if !ok {
		s = NewStore[T](g.buf, g.component)
		g.groups[group] = s
	}
	return s
}

// Groups returns every group identifier with at least one interned
// entity, in ascending order — used by persistence to visit groups
// deterministically.
func (g *GroupedStore[T]) Groups() []ID {
	groups := make([]ID, 0, len(g.groups))
	for id := range g.groups {
		groups = append(groups, id)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i] < groups[j] })
	return groups
}

// Find looks up candidate within the given group only.
func (g *GroupedStore[T]) Find(group ID, candidate T) (GroupedID, bool) {
	s, ok := g.groups[group]
	if !ok {
		return GroupedID{}, false
	}
	local, found := s.Find(candidate)
	return GroupedID{Group: group, Local: local}, found
}

// GetOrCreate interns candidate within the given group, allocating a dense
// local identifier within that group.
func (g *GroupedStore[T]) GetOrCreate(group ID, candidate T) (GroupedID, bool, error) {
	s := g.group(group)
	local, inserted, err := s.GetOrCreate(candidate)
	if err != nil {
		return GroupedID{}, false, err
	}
	return GroupedID{Group: group, Local: local}, inserted, nil
}

// Get returns the value at a composite identifier.
func (g *GroupedStore[T]) Get(id GroupedID) T {
	return g.groups[id.Group].Get(id.Local)
}

// Bytes returns the canonical byte encoding at a composite identifier.
func (g *GroupedStore[T]) Bytes(id GroupedID) []byte {
	return g.groups[id.Group].Bytes(id.Local)
}

// GroupLen returns the number of entities interned within one group (the
// "count-of-atoms-of-predicate-p" spec.md refers to).
func (g *GroupedStore[T]) GroupLen(group ID) int {
	s, ok := g.groups[group]
	if !ok {
		return 0
	}
	return s.Len()
}

// Len returns the total number of entities interned across all groups.
func (g *GroupedStore[T]) Len() int {
	n := 0
	for _, s := range g.groups {
		n += s.Len()
	}
	return n
}
