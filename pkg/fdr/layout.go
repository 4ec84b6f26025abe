// Package fdr implements the finite-domain bit-packed state layout: given
// an ordered list of FDRVariable entities, it computes each variable's bit
// width, places variables consecutively into fixed-width machine words
// (splitting a value across two consecutive words when it doesn't fit
// entirely in the current one), and exposes mask/shift read-write access
// through VariableReference.
package fdr

import (
	"math/bits"

	"github.com/mrlab-ai/groundcore/pkg/intern"
	"github.com/mrlab-ai/groundcore/pkg/model"
	"github.com/mrlab-ai/groundcore/pkg/perrors"
)

// Width is the packed word width in bits. Go's uint64 is the natural
// machine word on every platform this runs on, so the layout never needs
// to support a configurable width.
const Width = 64

// BitWidth returns ceil(log2(domainSize)), the number of bits needed to
// distinguish domainSize values, or 0 if domainSize <= 1 (a variable with
// a single possible value needs no storage at all).
func BitWidth(domainSize int32) uint {
	if domainSize <= 1 {
		return 0
	}
	return uint(bits.Len32(uint32(domainSize - 1)))
}

// portion is one word's worth of a (possibly split) variable value: the
// bits at wordMask (already positioned within the word) hold the value's
// bits [valueShift, valueShift+bits); wordShift brings them down to bit 0
// on read, or up from bit 0 on write.
type portion struct {
	wordIndex  int
	bits       uint
	wordShift  uint
	valueShift uint
	wordMask   uint64
	valueMask  uint64
}

func (p *portion) extract(words []uint64) uint64 {
	return ((words[p.wordIndex] & p.wordMask) >> p.wordShift) << p.valueShift
}

func (p *portion) place(words []uint64, value uint64) {
	part := (value >> p.valueShift) & p.valueMask
	words[p.wordIndex] = (words[p.wordIndex] &^ p.wordMask) | (part << p.wordShift)
}

// VariableReference locates one finite-domain variable's value within a
// packed word array: a low portion, always present when the variable
// needs any storage, and an optional high portion for a value that
// straddles two consecutive words. A variable whose domain size is 1
// needs neither portion — its value is always 0.
type VariableReference struct {
	low  *portion
	high *portion
}

func (r VariableReference) read(words []uint64) int32 {
	if r.low == nil {
		return 0
	}
	v := r.low.extract(words)
	if r.high != nil {
		v |= r.high.extract(words)
	}
	return int32(v)
}

func (r VariableReference) write(words []uint64, value int32) {
	if r.low == nil {
		return
	}
	v := uint64(value)
	r.low.place(words, v)
	if r.high != nil {
		r.high.place(words, v)
	}
}

// Layout assigns every variable in an ordered list a VariableReference
// and reports the total number of words the packed state needs.
type Layout struct {
	order    []model.FDRVariableID
	index    map[model.FDRVariableID]int
	refs     []VariableReference
	numWords int
}

// Build computes the packed layout for variables, in the given order.
// Variables placed earlier occupy lower bit positions, matching spec's
// "place variables consecutively" placement rule.
func Build(repo *model.Repository, order []model.FDRVariableID) *Layout {
	l := &Layout{
		order: order,
		index: make(map[model.FDRVariableID]int, len(order)),
		refs:  make([]VariableReference, len(order)),
	}

	bitOffset := uint(0)
	for i, id := range order {
		l.index[id] = i
		v := repo.FDRVariables.Get(intern.ID(id))
		b := BitWidth(v.DomainSize)
		if b > 0 {
			l.refs[i] = placeVariable(bitOffset, b)
		}
		bitOffset += b
	}

	if bitOffset > 0 {
		l.numWords = int((bitOffset + Width - 1) / Width)
	}
	return l
}

func placeVariable(bitOffset uint, bits uint) VariableReference {
	wordIndex := int(bitOffset / Width)
	bitInWord := bitOffset % Width

	if bitInWord+bits <= Width {
		return VariableReference{low: &portion{
			wordIndex: wordIndex,
			bits:      bits,
			wordShift: bitInWord,
			wordMask:  ((uint64(1) << bits) - 1) << bitInWord,
			valueMask: (uint64(1) << bits) - 1,
		}}
	}

	lowBits := Width - bitInWord
	highBits := bits - lowBits
	return VariableReference{
		low: &portion{
			wordIndex: wordIndex,
			bits:      lowBits,
			wordShift: bitInWord,
			wordMask:  ((uint64(1) << lowBits) - 1) << bitInWord,
			valueMask: (uint64(1) << lowBits) - 1,
		},
		high: &portion{
			wordIndex:  wordIndex + 1,
			bits:       highBits,
			wordShift:  0,
			valueShift: lowBits,
			wordMask:   (uint64(1) << highBits) - 1,
			valueMask:  (uint64(1) << highBits) - 1,
		},
	}
}

// NumWords reports how many W-bit words a packed State needs.
func (l *Layout) NumWords() int { return l.numWords }

// NewState allocates a zeroed packed state for this layout.
func (l *Layout) NewState() *State {
	return &State{layout: l, words: make([]uint64, l.numWords)}
}

func (l *Layout) refFor(varID model.FDRVariableID) (VariableReference, error) {
	i, ok := l.index[varID]
	if !ok {
		return VariableReference{}, &perrors.InvariantViolation{
			Component: "fdr",
			Message:   "variable id not present in this layout",
		}
	}
	return l.refs[i], nil
}
