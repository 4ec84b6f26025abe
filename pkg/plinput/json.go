package plinput

import (
	"encoding/json"
	"fmt"
	"io"
)

// jsonDescription wraps a Domain/Problem pair decoded straight from JSON;
// the wire struct shapes are identical to the Description types, so no
// separate DTO layer is needed.
type jsonDescription struct {
	domain  *Domain
	problem *Problem
}

func (d *jsonDescription) Domain() *Domain   { return d.domain }
func (d *jsonDescription) Problem() *Problem { return d.problem }

type jsonFile struct {
	Domain  Domain  `json:"domain"`
	Problem Problem `json:"problem"`
}

// LoadJSON decodes a Description from r. It exists so tests, fixtures,
// and the CLI's `ground` subcommand can exercise the core without a real
// PDDL front end: the JSON shape mirrors the Description tree directly.
func LoadJSON(r io.Reader) (Description, error) {
	var f jsonFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("plinput: decode json description: %w", err)
	}
	return &jsonDescription{domain: &f.Domain, problem: &f.Problem}, nil
}
