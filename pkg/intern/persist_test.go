package intern_test

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlab-ai/groundcore/pkg/arena"
	"github.com/mrlab-ai/groundcore/pkg/intern"
)

// word is a minimal Entity used only to exercise persist.go's generic
// framing without depending on pkg/model.
type word struct {
	text string
}

func (w word) IsCanonical() bool { return true }
func (w word) Encode() []byte    { return intern.NewEncoder(len(w.text)).Str(w.text).Bytes() }

func decodeWord(d *intern.Decoder) (word, error) {
	s, err := d.Str()
	if err != nil {
		return word{}, err
	}
	return word{text: s}, nil
}

func TestWriteStoreThenReadStoreReproducesIdenticalIdentifiers(t *testing.T) {
	buf := arena.New()
	store := intern.NewStore[word](buf, "word")

	var ids []intern.ID
	for _, text := range []string{"alpha", "bravo", "charlie", "bravo"} {
		id, _, err := store.GetOrCreate(word{text: text})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	var out bytes.Buffer
	require.NoError(t, intern.WriteStore(&out, store))

	reloaded, err := intern.ReadStore(&out, arena.New(), "word", decodeWord)
	require.NoError(t, err)

	assert.Equal(t, store.Len(), reloaded.Len())
	for i, id := range ids {
		assert.Equal(t, store.Get(id).text, reloaded.Get(ids[i]).text)
	}
	// the repeated "bravo" must have interned to the same id both times
	assert.Equal(t, ids[1], ids[3])
}

func TestWriteGroupedStoreThenReadGroupedStoreReproducesGroups(t *testing.T) {
	buf := arena.New()
	store := intern.NewGroupedStore[word](buf, "word")

	idA, _, err := store.GetOrCreate(intern.ID(0), word{text: "a"})
	require.NoError(t, err)
	idB, _, err := store.GetOrCreate(intern.ID(1), word{text: "b"})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, intern.WriteGroupedStore(&out, store))

	reloaded, err := intern.ReadGroupedStore(&out, arena.New(), "word", decodeWord)
	require.NoError(t, err)

	assert.Equal(t, "a", reloaded.Get(idA).text)
	assert.Equal(t, "b", reloaded.Get(idB).text)
}

func TestHeaderRoundTripsAndDetectsAMismatchedBuildTag(t *testing.T) {
	h := intern.NewHeader(uuid.New())

	var out bytes.Buffer
	require.NoError(t, intern.WriteHeader(&out, h))

	reloaded, err := intern.ReadHeader(&out)
	require.NoError(t, err)
	assert.True(t, reloaded.Compatible(h))

	other := intern.NewHeader(uuid.New())
	assert.False(t, reloaded.Compatible(other))
}
