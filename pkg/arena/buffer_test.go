package arena

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendAndView(t *testing.T) {
	b := New()
	o1 := b.Append([]byte("hello"))
	o2 := b.Append([]byte("world!!"))

	require.Equal(t, "hello", string(b.View(o1, 5)))
	require.Equal(t, "world!!", string(b.View(o2, 7)))
	require.Equal(t, 12, b.Len())
}

func TestAppendNeverRelocates(t *testing.T) {
	b := New()
	offsets := make([]Offset, 0, 4096)
	for i := 0; i < 4096; i++ {
		offsets = append(offsets, b.Append(bytes.Repeat([]byte{byte(i)}, 32)))
	}
	for i, off := range offsets {
		got := b.View(off, 32)
		want := bytes.Repeat([]byte{byte(i)}, 32)
		require.True(t, bytes.Equal(got, want), "segment contents moved for entry %d", i)
	}
}

func TestAppendSpansSegmentBoundary(t *testing.T) {
	b := New()
	// Fill the first segment almost to capacity, then append something
	// bigger than the remainder: this forces a fresh segment.
	b.Append(make([]byte, segmentSize-10))
	big := bytes.Repeat([]byte{0xAB}, 4096)
	off := b.Append(big)
	require.True(t, bytes.Equal(b.View(off, len(big)), big))
}
