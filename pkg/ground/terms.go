package ground

import (
	"github.com/mrlab-ai/groundcore/pkg/intern"
	"github.com/mrlab-ai/groundcore/pkg/model"
	"github.com/mrlab-ai/groundcore/pkg/perrors"
)

// object resolves a lifted term against the current binding: an object
// term resolves to itself, a parameter term is looked up by position.
func (g *Grounder) object(t model.Term, objects []model.ObjectID) (model.ObjectID, error) {
	if t.Tag == model.TermObject {
		return t.Object, nil
	}
	if int(t.Parameter) >= len(objects) {
		return 0, &perrors.InvariantViolation{
			Component: "ground",
			Message:   "parameter position out of range of binding",
		}
	}
	return objects[t.Parameter], nil
}

func (g *Grounder) groundAtom(atomID model.AtomID, objects []model.ObjectID) (model.GroundAtomID, error) {
	atom := g.repo.Atoms.Get(atomID)
	objs := make([]model.ObjectID, len(atom.Terms))
	for i, t := range atom.Terms {
		o, err := g.object(t, objects)
		if err != nil {
			return model.GroundAtomID{}, err
		}
		objs[i] = o
	}
	id, _, err := g.repo.GroundAtoms.GetOrCreate(intern.ID(atom.Predicate), model.GroundAtom{
		Predicate: atom.Predicate, Objects: objs,
	})
	return id, err
}

func (g *Grounder) groundLiteral(literalID model.LiteralID, objects []model.ObjectID) (model.GroundLiteralID, error) {
	lit := g.repo.Literals.Get(intern.ID(literalID))
	atomID, err := g.groundAtom(lit.Atom, objects)
	if err != nil {
		return 0, err
	}
	id, _, err := g.repo.GroundLiterals.GetOrCreate(model.GroundLiteral{
		Atom: atomID, Negated: lit.Negated, Predicate: lit.Predicate,
	})
	return model.GroundLiteralID(id), err
}

func (g *Grounder) groundLiterals(ids []model.LiteralID, objects []model.ObjectID) ([]model.GroundLiteralID, error) {
	out := make([]model.GroundLiteralID, 0, len(ids))
	for _, id := range ids {
		gl, err := g.groundLiteral(id, objects)
		if err != nil {
			return nil, err
		}
		out = append(out, gl)
	}
	return out, nil
}

func (g *Grounder) groundConditionLiterals(condID model.ConjunctiveConditionID, objects []model.ObjectID) ([]model.GroundLiteralID, error) {
	cond := g.repo.ConjunctiveConditions.Get(intern.ID(condID))
	var out []model.GroundLiteralID
	for _, group := range [][]model.LiteralID{cond.StaticLiterals, cond.FluentLiterals, cond.DerivedLiterals, cond.NullaryLiterals} {
		lits, err := g.groundLiterals(group, objects)
		if err != nil {
			return nil, err
		}
		out = append(out, lits...)
	}
	return out, nil
}

func (g *Grounder) groundConditionNumeric(condID model.ConjunctiveConditionID, objects []model.ObjectID) ([]model.GroundNumericConstraint, error) {
	cond := g.repo.ConjunctiveConditions.Get(intern.ID(condID))
	out := make([]model.GroundNumericConstraint, 0, len(cond.NumericConstraints))
	for _, nc := range cond.NumericConstraints {
		lhs, err := g.groundFunctionExpr(nc.Lhs, objects)
		if err != nil {
			return nil, err
		}
		rhs, err := g.groundFunctionExpr(nc.Rhs, objects)
		if err != nil {
			return nil, err
		}
		out = append(out, model.GroundNumericConstraint{Kind: nc.Kind, Lhs: lhs, Rhs: rhs})
	}
	return out, nil
}

func (g *Grounder) groundFunctionTerm(termID model.FunctionTermID, objects []model.ObjectID) (model.GroundFunctionTermID, error) {
	term := g.repo.FunctionTerms.Get(intern.ID(termID))
	objs := make([]model.ObjectID, len(term.Terms))
	for i, t := range term.Terms {
		o, err := g.object(t, objects)
		if err != nil {
			return 0, err
		}
		objs[i] = o
	}
	id, _, err := g.repo.GroundFunctionTerms.GetOrCreate(model.GroundFunctionTerm{Function: term.Function, Objects: objs})
	return model.GroundFunctionTermID(id), err
}

// groundFunctionValue grounds a function term and returns the
// GroundFunctionValue entity that tracks its (initially unset) numeric
// value; the value itself is populated later, from the problem's initial
// function values or a numeric effect, never by grounding.
func (g *Grounder) groundFunctionValue(termID model.FunctionTermID, objects []model.ObjectID) (model.GroundFunctionValueID, error) {
	term, err := g.groundFunctionTerm(termID, objects)
	if err != nil {
		return 0, err
	}
	id, _, err := g.repo.GroundFunctionValues.GetOrCreate(model.GroundFunctionValue{Term: term})
	return model.GroundFunctionValueID(id), err
}

func (g *Grounder) groundFunctionExpr(exprID model.FunctionExpressionID, objects []model.ObjectID) (model.GroundFunctionExpressionID, error) {
	expr := g.repo.FunctionExpressions.Get(intern.ID(exprID))

	switch expr.Tag {
	case model.ExprConstant:
		id, _, err := g.repo.GroundFunctionExpressions.GetOrCreate(model.GroundFunctionExpression{
			Tag: model.ExprConstant, Constant: expr.Constant,
		})
		return model.GroundFunctionExpressionID(id), err

	case model.ExprFunctionTerm:
		value, err := g.groundFunctionValue(expr.Term, objects)
		if err != nil {
			return 0, err
		}
		id, _, err := g.repo.GroundFunctionExpressions.GetOrCreate(model.GroundFunctionExpression{
			Tag: model.ExprFunctionTerm, Value: value,
		})
		return model.GroundFunctionExpressionID(id), err

	case model.ExprUnary:
		op := g.repo.UnaryOperators.Get(intern.ID(expr.Unary))
		operand, err := g.groundFunctionExpr(op.Operand, objects)
		if err != nil {
			return 0, err
		}
		ground := model.GroundFunctionExpression{Tag: model.ExprUnary}
		ground.Unary.Kind = op.Kind
		ground.Unary.Operand = operand
		id, _, err := g.repo.GroundFunctionExpressions.GetOrCreate(ground)
		return model.GroundFunctionExpressionID(id), err

	case model.ExprBinary:
		op := g.repo.BinaryOperators.Get(intern.ID(expr.Binary))
		lhs, err := g.groundFunctionExpr(op.Lhs, objects)
		if err != nil {
			return 0, err
		}
		rhs, err := g.groundFunctionExpr(op.Rhs, objects)
		if err != nil {
			return 0, err
		}
		ground := model.GroundFunctionExpression{Tag: model.ExprBinary}
		ground.Binary.Kind = op.Kind
		ground.Binary.Lhs = lhs
		ground.Binary.Rhs = rhs
		id, _, err := g.repo.GroundFunctionExpressions.GetOrCreate(ground)
		return model.GroundFunctionExpressionID(id), err

	case model.ExprMulti:
		op := g.repo.MultiOperators.Get(intern.ID(expr.Multi))
		operands := make([]model.GroundFunctionExpressionID, len(op.Operands))
		for i, o := range op.Operands {
			ex, err := g.groundFunctionExpr(o, objects)
			if err != nil {
				return 0, err
			}
			operands[i] = ex
		}
		ground := model.GroundFunctionExpression{Tag: model.ExprMulti}
		ground.Multi.Kind = op.Kind
		ground.Multi.Operands = operands
		id, _, err := g.repo.GroundFunctionExpressions.GetOrCreate(ground)
		return model.GroundFunctionExpressionID(id), err

	default:
		return 0, &perrors.InvariantViolation{Component: "ground", Message: "unrecognised function expression tag"}
	}
}
