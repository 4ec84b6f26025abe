package model

import "github.com/mrlab-ai/groundcore/pkg/intern"

// FDRVariable is {domain-size, atom list}: a finite-domain variable
// derived from a group of mutually exclusive ground atoms (e.g. every
// "(at truck1 ?loc)" atom for a fixed truck becomes one variable, one
// value per possible location plus value 0 for "none of the above").
// Key: the atom list itself — two variables covering the same atom set
// in the same order are the same variable.
type FDRVariable struct {
	DomainSize int32
	Atoms      []GroundAtomID
}

func (v FDRVariable) IsCanonical() bool { return true }

func (v FDRVariable) Encode() []byte {
	e := intern.NewEncoder(8 + 8*len(v.Atoms))
	e.Int(v.DomainSize)
	e.Int(int32(len(v.Atoms)))
	for _, a := range v.Atoms {
		e.ID(a.Group).ID(a.Local)
	}
	return e.Bytes()
}

// FDRFact is {variable-id, value}, the finite-domain counterpart of
// GroundAtom: value 0 means "none of the variable's atoms holds", value
// v >= 1 means the v'th atom in the variable's atom list holds.
type FDRFact struct {
	Variable FDRVariableID
	Value    int32
}

func (f FDRFact) IsCanonical() bool { return true }

func (f FDRFact) Encode() []byte {
	return intern.NewEncoder(8).ID(intern.ID(f.Variable)).Int(f.Value).Bytes()
}
