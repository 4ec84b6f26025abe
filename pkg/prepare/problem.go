package prepare

import (
	"github.com/mrlab-ai/groundcore/pkg/intern"
	"github.com/mrlab-ai/groundcore/pkg/model"
	"github.com/mrlab-ai/groundcore/pkg/perrors"
	"github.com/mrlab-ai/groundcore/pkg/plinput"
)

// groundObject resolves a parsed term that must already be ground: the
// problem level (initial facts, goal, metric) has no enclosing
// parameterised scope, so every term must name an object.
func (b *Builder) groundObject(t plinput.TermExpr) (model.ObjectID, error) {
	if t.IsParameter {
		return 0, &perrors.TranslationError{At: noCoord, Message: "parameter reference at problem scope: " + t.Name}
	}
	return b.object(t.Name)
}

func (b *Builder) buildGroundAtom(a plinput.AtomExpr) (model.GroundAtomID, error) {
	pred, err := b.predicate(a.Predicate)
	if err != nil {
		return model.GroundAtomID{}, err
	}
	objs := make([]model.ObjectID, len(a.Terms))
	for i, t := range a.Terms {
		obj, err := b.groundObject(t)
		if err != nil {
			return model.GroundAtomID{}, err
		}
		objs[i] = obj
	}
	id, _, err := b.repo.GroundAtoms.GetOrCreate(intern.ID(pred), model.GroundAtom{Predicate: pred, Objects: objs})
	return id, err
}

func (b *Builder) buildGroundLiteral(l plinput.LiteralExpr) (model.GroundLiteralID, error) {
	atom, err := b.buildGroundAtom(l.Atom)
	if err != nil {
		return 0, err
	}
	pred, err := b.predicate(l.Atom.Predicate)
	if err != nil {
		return 0, err
	}
	id, _, err := b.repo.GroundLiterals.GetOrCreate(model.GroundLiteral{Atom: atom, Negated: l.Negated, Predicate: pred})
	return model.GroundLiteralID(id), err
}

func (b *Builder) buildGroundFunctionTerm(f plinput.FunctionTermExpr) (model.GroundFunctionTermID, error) {
	fn, err := b.function(f.Function)
	if err != nil {
		return 0, err
	}
	objs := make([]model.ObjectID, len(f.Terms))
	for i, t := range f.Terms {
		obj, err := b.groundObject(t)
		if err != nil {
			return 0, err
		}
		objs[i] = obj
	}
	id, _, err := b.repo.GroundFunctionTerms.GetOrCreate(model.GroundFunctionTerm{Function: fn, Objects: objs})
	return model.GroundFunctionTermID(id), err
}

func (b *Builder) buildGroundFunctionExpr(e plinput.FunctionExpr) (model.GroundFunctionExpressionID, error) {
	switch e.Tag {
	case plinput.NumExprConstant:
		id, _, err := b.repo.GroundFunctionExpressions.GetOrCreate(model.GroundFunctionExpression{
			Tag: model.ExprConstant, Constant: e.Constant,
		})
		return model.GroundFunctionExpressionID(id), err

	case plinput.NumExprFunctionTerm:
		term, err := b.buildGroundFunctionTerm(e.Term)
		if err != nil {
			return 0, err
		}
		value, _, err := b.repo.GroundFunctionValues.GetOrCreate(model.GroundFunctionValue{Term: term})
		if err != nil {
			return 0, err
		}
		id, _, err := b.repo.GroundFunctionExpressions.GetOrCreate(model.GroundFunctionExpression{
			Tag: model.ExprFunctionTerm, Value: model.GroundFunctionValueID(value),
		})
		return model.GroundFunctionExpressionID(id), err

	case plinput.NumExprOperator:
		return b.buildGroundOperatorExpr(e)

	default:
		return 0, &perrors.TranslationError{At: noCoord, Message: "unrecognised numeric expression form"}
	}
}

func (b *Builder) buildGroundOperatorExpr(e plinput.FunctionExpr) (model.GroundFunctionExpressionID, error) {
	kind := opKind(e.Operator)
	expr := model.GroundFunctionExpression{Tag: model.ExprUnary}

	switch len(e.Operands) {
	case 1:
		operand, err := b.buildGroundFunctionExpr(e.Operands[0])
		if err != nil {
			return 0, err
		}
		expr.Tag = model.ExprUnary
		expr.Unary.Kind = kind
		expr.Unary.Operand = operand

	case 2:
		lhs, err := b.buildGroundFunctionExpr(e.Operands[0])
		if err != nil {
			return 0, err
		}
		rhs, err := b.buildGroundFunctionExpr(e.Operands[1])
		if err != nil {
			return 0, err
		}
		expr.Tag = model.ExprBinary
		expr.Binary.Kind = kind
		expr.Binary.Lhs = lhs
		expr.Binary.Rhs = rhs

	default:
		operands := make([]model.GroundFunctionExpressionID, len(e.Operands))
		for i, op := range e.Operands {
			ex, err := b.buildGroundFunctionExpr(op)
			if err != nil {
				return 0, err
			}
			operands[i] = ex
		}
		expr.Tag = model.ExprMulti
		expr.Multi.Kind = kind
		expr.Multi.Operands = operands
	}

	id, _, err := b.repo.GroundFunctionExpressions.GetOrCreate(expr)
	return model.GroundFunctionExpressionID(id), err
}

// buildProblem interns the problem-level, already-ground content: initial
// facts and function values, the goal, and the optional metric.
func (b *Builder) buildProblem(problem *plinput.Problem, task *Task) error {
	for _, a := range problem.InitialAtoms {
		id, err := b.buildGroundAtom(a)
		if err != nil {
			return err
		}
		task.InitialGroundAtoms = append(task.InitialGroundAtoms, id)
	}

	for _, fv := range problem.InitialFunctionValues {
		term, err := b.buildGroundFunctionTerm(fv.Term)
		if err != nil {
			return err
		}
		id, _, err := b.repo.GroundFunctionValues.GetOrCreate(model.GroundFunctionValue{Term: term, Value: fv.Value})
		if err != nil {
			return err
		}
		task.InitialFunctionValues = append(task.InitialFunctionValues, model.GroundFunctionValueID(id))
	}

	for _, lit := range problem.Goal.Literals {
		id, err := b.buildGroundLiteral(lit)
		if err != nil {
			return err
		}
		task.GoalLiterals = append(task.GoalLiterals, id)
	}
	for _, nc := range problem.Goal.Numeric {
		lhs, err := b.buildGroundFunctionExpr(nc.Lhs)
		if err != nil {
			return err
		}
		rhs, err := b.buildGroundFunctionExpr(nc.Rhs)
		if err != nil {
			return err
		}
		task.GoalNumeric = append(task.GoalNumeric, model.GroundNumericConstraint{Kind: opKind(nc.Operator), Lhs: lhs, Rhs: rhs})
	}

	if problem.Metric != nil {
		expr, err := b.buildGroundFunctionExpr(problem.Metric.Expression)
		if err != nil {
			return err
		}
		objective := model.ObjectiveMaximize
		if problem.Metric.Minimize {
			objective = model.ObjectiveMinimize
		}
		id, _, err := b.repo.Metrics.GetOrCreate(model.Metric{Objective: objective, Expression: expr})
		if err != nil {
			return err
		}
		metricID := model.MetricID(id)
		task.Metric = &metricID
	}

	return nil
}
