package model

import "github.com/mrlab-ai/groundcore/pkg/intern"

// Objective selects whether a Metric minimizes or maximizes its
// expression; classical planning cost metrics are conventionally
// minimize-total-cost, but the type does not assume that.
type Objective uint8

const (
	ObjectiveMinimize Objective = iota
	ObjectiveMaximize
)

// Metric is {objective, expression}: the optional plan-quality measure
// attached to a grounded task, evaluated over the ground function
// expression tree once a plan's effects have been applied.
type Metric struct {
	Objective  Objective
	Expression GroundFunctionExpressionID
}

func (m Metric) IsCanonical() bool { return true }

func (m Metric) Encode() []byte {
	return intern.NewEncoder(8).Tag(byte(m.Objective)).ID(intern.ID(m.Expression)).Bytes()
}
