package fdr

import "github.com/mrlab-ai/groundcore/pkg/model"

// State is a packed finite-domain state vector: one machine-word array
// shared by every variable in its layout, per spec's bit-packed-state
// invariant (a state of n variables occupies ⌈Σbᵢ/W⌉ words).
type State struct {
	layout *Layout
	words  []uint64
}

// Get returns the current value of a variable, or an error if varID does
// not belong to this state's layout.
func (s *State) Get(varID model.FDRVariableID) (int32, error) {
	ref, err := s.layout.refFor(varID)
	if err != nil {
		return 0, err
	}
	return ref.read(s.words), nil
}

// Set assigns a variable's value.
func (s *State) Set(varID model.FDRVariableID, value int32) error {
	ref, err := s.layout.refFor(varID)
	if err != nil {
		return err
	}
	ref.write(s.words, value)
	return nil
}

// Words exposes the packed backing array — a zero-copy view for
// snapshotting or hashing a whole state at once.
func (s *State) Words() []uint64 { return s.words }

// Clone returns an independent copy of the packed state, sharing the same
// layout.
func (s *State) Clone() *State {
	words := make([]uint64, len(s.words))
	copy(words, s.words)
	return &State{layout: s.layout, words: words}
}
