package prepare

import (
	"github.com/mrlab-ai/groundcore/pkg/intern"
	"github.com/mrlab-ai/groundcore/pkg/model"
	"github.com/mrlab-ai/groundcore/pkg/perrors"
	"github.com/mrlab-ai/groundcore/pkg/plinput"
)

func opKind(k plinput.OperatorKindExpr) model.OperatorKind {
	switch k {
	case plinput.OpExprNegate:
		return model.OpNegate
	case plinput.OpExprAdd:
		return model.OpAdd
	case plinput.OpExprSub:
		return model.OpSub
	case plinput.OpExprMul:
		return model.OpMul
	case plinput.OpExprDiv:
		return model.OpDiv
	case plinput.OpExprEqual:
		return model.OpEqual
	case plinput.OpExprNotEqual:
		return model.OpNotEqual
	case plinput.OpExprLessEqual:
		return model.OpLessEqual
	case plinput.OpExprLess:
		return model.OpLess
	case plinput.OpExprGreaterEqual:
		return model.OpGreaterEqual
	default:
		return model.OpGreater
	}
}

// resolveTerm resolves a parsed term against the current scope: object
// names become ObjectTerm, parameter names become ParameterTerm.
func (b *Builder) resolveTerm(t plinput.TermExpr) (model.Term, error) {
	if !t.IsParameter {
		obj, err := b.object(t.Name)
		if err != nil {
			return model.Term{}, err
		}
		return model.ObjectTerm(obj), nil
	}
	pos, err := b.scope.resolve(t.Name, noCoord)
	if err != nil {
		return model.Term{}, err
	}
	return model.ParameterTerm(pos), nil
}

func (b *Builder) buildAtom(a plinput.AtomExpr) (model.AtomID, error) {
	pred, err := b.predicate(a.Predicate)
	if err != nil {
		return model.AtomID{}, err
	}
	terms := make([]model.Term, len(a.Terms))
	for i, t := range a.Terms {
		term, err := b.resolveTerm(t)
		if err != nil {
			return model.AtomID{}, err
		}
		terms[i] = term
	}
	id, _, err := b.repo.Atoms.GetOrCreate(intern.ID(pred), model.Atom{Predicate: pred, Terms: terms})
	return id, err
}

func (b *Builder) buildLiteral(l plinput.LiteralExpr) (model.LiteralID, error) {
	atom, err := b.buildAtom(l.Atom)
	if err != nil {
		return 0, err
	}
	pred, err := b.predicate(l.Atom.Predicate)
	if err != nil {
		return 0, err
	}
	id, _, err := b.repo.Literals.GetOrCreate(model.Literal{Atom: atom, Negated: l.Negated, Predicate: pred})
	return model.LiteralID(id), err
}

func (b *Builder) buildFunctionTerm(f plinput.FunctionTermExpr) (model.FunctionTermID, error) {
	fn, err := b.function(f.Function)
	if err != nil {
		return 0, err
	}
	terms := make([]model.Term, len(f.Terms))
	for i, t := range f.Terms {
		term, err := b.resolveTerm(t)
		if err != nil {
			return 0, err
		}
		terms[i] = term
	}
	id, _, err := b.repo.FunctionTerms.GetOrCreate(model.FunctionTerm{Function: fn, Terms: terms})
	return model.FunctionTermID(id), err
}

// buildFunctionExpr recursively interns a parsed numeric expression,
// canonicalising commutative operators bottom-up as each sub-expression
// is interned (children always exist before their parent, since
// identifiers are only comparable once assigned).
func (b *Builder) buildFunctionExpr(e plinput.FunctionExpr) (model.FunctionExpressionID, error) {
	switch e.Tag {
	case plinput.NumExprConstant:
		id, _, err := b.repo.FunctionExpressions.GetOrCreate(model.FunctionExpression{
			Tag: model.ExprConstant, Constant: e.Constant,
		})
		return model.FunctionExpressionID(id), err

	case plinput.NumExprFunctionTerm:
		term, err := b.buildFunctionTerm(e.Term)
		if err != nil {
			return 0, err
		}
		id, _, err := b.repo.FunctionExpressions.GetOrCreate(model.FunctionExpression{
			Tag: model.ExprFunctionTerm, Term: term,
		})
		return model.FunctionExpressionID(id), err

	case plinput.NumExprOperator:
		return b.buildOperatorExpr(e)

	default:
		return 0, &perrors.TranslationError{At: noCoord, Message: "unrecognised numeric expression form"}
	}
}

func (b *Builder) buildOperatorExpr(e plinput.FunctionExpr) (model.FunctionExpressionID, error) {
	kind := opKind(e.Operator)

	switch len(e.Operands) {
	case 1:
		operand, err := b.buildFunctionExpr(e.Operands[0])
		if err != nil {
			return 0, err
		}
		unary, _, err := b.repo.UnaryOperators.GetOrCreate(model.UnaryOperator{Kind: kind, Operand: operand})
		if err != nil {
			return 0, err
		}
		id, _, err := b.repo.FunctionExpressions.GetOrCreate(model.FunctionExpression{
			Tag: model.ExprUnary, Unary: model.UnaryOperatorID(unary),
		})
		return model.FunctionExpressionID(id), err

	case 2:
		lhs, err := b.buildFunctionExpr(e.Operands[0])
		if err != nil {
			return 0, err
		}
		rhs, err := b.buildFunctionExpr(e.Operands[1])
		if err != nil {
			return 0, err
		}
		lhs, rhs = model.CanonicalBinaryOperator(kind, lhs, rhs)
		binary, _, err := b.repo.BinaryOperators.GetOrCreate(model.BinaryOperator{Kind: kind, Lhs: lhs, Rhs: rhs})
		if err != nil {
			return 0, err
		}
		id, _, err := b.repo.FunctionExpressions.GetOrCreate(model.FunctionExpression{
			Tag: model.ExprBinary, Binary: model.BinaryOperatorID(binary),
		})
		return model.FunctionExpressionID(id), err

	default:
		if kind != model.OpAdd && kind != model.OpMul {
			return 0, &perrors.TranslationError{
				At:      noCoord,
				Message: "multi-operand numeric expression must be + or *, got " + kind.String(),
			}
		}
		operands := make([]model.FunctionExpressionID, len(e.Operands))
		for i, op := range e.Operands {
			expr, err := b.buildFunctionExpr(op)
			if err != nil {
				return 0, err
			}
			operands[i] = expr
		}
		operands = model.CanonicalMultiOperands(kind, operands)
		multi, _, err := b.repo.MultiOperators.GetOrCreate(model.MultiOperator{Kind: kind, Operands: operands})
		if err != nil {
			return 0, err
		}
		id, _, err := b.repo.FunctionExpressions.GetOrCreate(model.FunctionExpression{
			Tag: model.ExprMulti, Multi: model.MultiOperatorID(multi),
		})
		return model.FunctionExpressionID(id), err
	}
}
