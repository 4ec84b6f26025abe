package intern_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrlab-ai/groundcore/pkg/arena"
	"github.com/mrlab-ai/groundcore/pkg/intern"
)

// name is a trivial canonical entity (identifying content: a string) used
// to exercise Store in isolation from the domain model.
type name struct {
	Value string
}

func (n name) IsCanonical() bool { return true }
func (n name) Encode() []byte    { return intern.NewEncoder(len(n.Value)).Str(n.Value).Bytes() }

func TestGetOrCreateIdempotent(t *testing.T) {
	s := intern.NewStore[name](arena.New(), "name")

	id1, inserted1, err := s.GetOrCreate(name{"alice"})
	require.NoError(t, err)
	require.True(t, inserted1)

	id2, inserted2, err := s.GetOrCreate(name{"alice"})
	require.NoError(t, err)
	require.False(t, inserted2)
	require.Equal(t, id1, id2)
	require.Equal(t, 1, s.Len())

	id3, inserted3, err := s.GetOrCreate(name{"bob"})
	require.NoError(t, err)
	require.True(t, inserted3)
	require.NotEqual(t, id1, id3)
	require.Equal(t, 2, s.Len())
}

func TestRoundTrip(t *testing.T) {
	s := intern.NewStore[name](arena.New(), "name")
	id, _, err := s.GetOrCreate(name{"carol"})
	require.NoError(t, err)

	require.Equal(t, name{"carol"}.Encode(), s.Bytes(id))
	require.Equal(t, name{"carol"}, s.Get(id))
}

type nonCanonical struct{}

func (nonCanonical) IsCanonical() bool { return false }
func (nonCanonical) Encode() []byte    { return nil }

func TestGetOrCreateRejectsNonCanonical(t *testing.T) {
	s := intern.NewStore[nonCanonical](arena.New(), "nonCanonical")
	_, _, err := s.GetOrCreate(nonCanonical{})
	require.Error(t, err)
}

func TestGroupedStoreDenseLocalIndex(t *testing.T) {
	g := intern.NewGroupedStore[name](arena.New(), "grouped")

	id1, _, err := g.GetOrCreate(1, name{"a"})
	require.NoError(t, err)
	require.Equal(t, intern.ID(0), id1.Local)

	id2, _, err := g.GetOrCreate(1, name{"b"})
	require.NoError(t, err)
	require.Equal(t, intern.ID(1), id2.Local)

	// A different group starts its own dense local index at 0.
	id3, _, err := g.GetOrCreate(2, name{"a"})
	require.NoError(t, err)
	require.Equal(t, intern.ID(0), id3.Local)

	require.Equal(t, 2, g.GroupLen(1))
	require.Equal(t, 1, g.GroupLen(2))
	require.Equal(t, 3, g.Len())
}
