package model

import "github.com/mrlab-ai/groundcore/pkg/intern"

// This file mirrors every Encode method in the package, field for field,
// in reverse: each decodeX reads back exactly what X.Encode wrote. These
// functions exist solely to replay a persisted repository (see persist.go)
// through GetOrCreate; nothing in the grounding path itself ever decodes.

func decodeTerm(d *intern.Decoder) (Term, error) {
	tag, err := d.Tag()
	if err != nil {
		return Term{}, err
	}
	if TermTag(tag) == TermObject {
		id, err := d.ID()
		if err != nil {
			return Term{}, err
		}
		return ObjectTerm(ObjectID(id)), nil
	}
	pos, err := d.Int()
	if err != nil {
		return Term{}, err
	}
	return ParameterTerm(pos), nil
}

func decodeTerms(d *intern.Decoder) ([]Term, error) {
	n, err := d.Int()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	terms := make([]Term, n)
	for i := range terms {
		if terms[i], err = decodeTerm(d); err != nil {
			return nil, err
		}
	}
	return terms, nil
}

func decodeAtomIDs(d *intern.Decoder) ([]AtomID, error) {
	n, err := d.Int()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	atoms := make([]AtomID, n)
	for i := range atoms {
		group, err := d.ID()
		if err != nil {
			return nil, err
		}
		local, err := d.ID()
		if err != nil {
			return nil, err
		}
		atoms[i] = AtomID{Group: group, Local: local}
	}
	return atoms, nil
}

func literalIDs(ids []intern.ID) []LiteralID {
	if ids == nil {
		return nil
	}
	out := make([]LiteralID, len(ids))
	for i, id := range ids {
		out[i] = LiteralID(id)
	}
	return out
}

func objectIDs(ids []intern.ID) []ObjectID {
	if ids == nil {
		return nil
	}
	out := make([]ObjectID, len(ids))
	for i, id := range ids {
		out[i] = ObjectID(id)
	}
	return out
}

func functionExpressionIDs(ids []intern.ID) []FunctionExpressionID {
	if ids == nil {
		return nil
	}
	out := make([]FunctionExpressionID, len(ids))
	for i, id := range ids {
		out[i] = FunctionExpressionID(id)
	}
	return out
}

func groundFunctionExpressionIDs(ids []intern.ID) []GroundFunctionExpressionID {
	if ids == nil {
		return nil
	}
	out := make([]GroundFunctionExpressionID, len(ids))
	for i, id := range ids {
		out[i] = GroundFunctionExpressionID(id)
	}
	return out
}

func conditionalEffectIDs(ids []intern.ID) []ConditionalEffectID {
	if ids == nil {
		return nil
	}
	out := make([]ConditionalEffectID, len(ids))
	for i, id := range ids {
		out[i] = ConditionalEffectID(id)
	}
	return out
}

func decodeVariable(d *intern.Decoder) (Variable, error) {
	name, err := d.Str()
	if err != nil {
		return Variable{}, err
	}
	return Variable{Name: name}, nil
}

func decodeObject(d *intern.Decoder) (Object, error) {
	name, err := d.Str()
	if err != nil {
		return Object{}, err
	}
	return Object{Name: name}, nil
}

func decodePredicate(d *intern.Decoder) (Predicate, error) {
	kind, err := d.Tag()
	if err != nil {
		return Predicate{}, err
	}
	name, err := d.Str()
	if err != nil {
		return Predicate{}, err
	}
	arity, err := d.Int()
	if err != nil {
		return Predicate{}, err
	}
	return Predicate{Kind: Kind(kind), Name: name, Arity: arity}, nil
}

func decodeFunction(d *intern.Decoder) (Function, error) {
	kind, err := d.Tag()
	if err != nil {
		return Function{}, err
	}
	name, err := d.Str()
	if err != nil {
		return Function{}, err
	}
	arity, err := d.Int()
	if err != nil {
		return Function{}, err
	}
	return Function{Kind: Kind(kind), Name: name, Arity: arity}, nil
}

func decodeAtom(d *intern.Decoder) (Atom, error) {
	pred, err := d.ID()
	if err != nil {
		return Atom{}, err
	}
	terms, err := decodeTerms(d)
	if err != nil {
		return Atom{}, err
	}
	return Atom{Predicate: PredicateID(pred), Terms: terms}, nil
}

func decodeGroundAtom(d *intern.Decoder) (GroundAtom, error) {
	pred, err := d.ID()
	if err != nil {
		return GroundAtom{}, err
	}
	ids, err := d.IDs()
	if err != nil {
		return GroundAtom{}, err
	}
	return GroundAtom{Predicate: PredicateID(pred), Objects: objectIDs(ids)}, nil
}

func decodeLiteral(d *intern.Decoder) (Literal, error) {
	pred, err := d.ID()
	if err != nil {
		return Literal{}, err
	}
	group, err := d.ID()
	if err != nil {
		return Literal{}, err
	}
	local, err := d.ID()
	if err != nil {
		return Literal{}, err
	}
	tag, err := d.Tag()
	if err != nil {
		return Literal{}, err
	}
	return Literal{
		Predicate: PredicateID(pred),
		Atom:      AtomID{Group: group, Local: local},
		Negated:   tag == 1,
	}, nil
}

func decodeGroundLiteral(d *intern.Decoder) (GroundLiteral, error) {
	pred, err := d.ID()
	if err != nil {
		return GroundLiteral{}, err
	}
	group, err := d.ID()
	if err != nil {
		return GroundLiteral{}, err
	}
	local, err := d.ID()
	if err != nil {
		return GroundLiteral{}, err
	}
	tag, err := d.Tag()
	if err != nil {
		return GroundLiteral{}, err
	}
	return GroundLiteral{
		Predicate: PredicateID(pred),
		Atom:      GroundAtomID{Group: group, Local: local},
		Negated:   tag == 1,
	}, nil
}

func decodeFunctionTerm(d *intern.Decoder) (FunctionTerm, error) {
	fn, err := d.ID()
	if err != nil {
		return FunctionTerm{}, err
	}
	terms, err := decodeTerms(d)
	if err != nil {
		return FunctionTerm{}, err
	}
	return FunctionTerm{Function: FunctionID(fn), Terms: terms}, nil
}

func decodeGroundFunctionTerm(d *intern.Decoder) (GroundFunctionTerm, error) {
	fn, err := d.ID()
	if err != nil {
		return GroundFunctionTerm{}, err
	}
	ids, err := d.IDs()
	if err != nil {
		return GroundFunctionTerm{}, err
	}
	return GroundFunctionTerm{Function: FunctionID(fn), Objects: objectIDs(ids)}, nil
}

// decodeGroundFunctionValue reconstructs the identity half of a
// GroundFunctionValue only — Value is deliberately excluded from Encode
// (see functerm.go), so a reloaded repository starts every ground function
// term's value at zero, same as after a fresh Seed.
func decodeGroundFunctionValue(d *intern.Decoder) (GroundFunctionValue, error) {
	term, err := d.ID()
	if err != nil {
		return GroundFunctionValue{}, err
	}
	return GroundFunctionValue{Term: GroundFunctionTermID(term)}, nil
}

func decodeUnaryOperator(d *intern.Decoder) (UnaryOperator, error) {
	kind, err := d.Tag()
	if err != nil {
		return UnaryOperator{}, err
	}
	operand, err := d.ID()
	if err != nil {
		return UnaryOperator{}, err
	}
	return UnaryOperator{Kind: OperatorKind(kind), Operand: FunctionExpressionID(operand)}, nil
}

func decodeBinaryOperator(d *intern.Decoder) (BinaryOperator, error) {
	kind, err := d.Tag()
	if err != nil {
		return BinaryOperator{}, err
	}
	lhs, err := d.ID()
	if err != nil {
		return BinaryOperator{}, err
	}
	rhs, err := d.ID()
	if err != nil {
		return BinaryOperator{}, err
	}
	return BinaryOperator{Kind: OperatorKind(kind), Lhs: FunctionExpressionID(lhs), Rhs: FunctionExpressionID(rhs)}, nil
}

func decodeMultiOperator(d *intern.Decoder) (MultiOperator, error) {
	kind, err := d.Tag()
	if err != nil {
		return MultiOperator{}, err
	}
	ids, err := d.IDs()
	if err != nil {
		return MultiOperator{}, err
	}
	return MultiOperator{Kind: OperatorKind(kind), Operands: functionExpressionIDs(ids)}, nil
}

func decodeFunctionExpression(d *intern.Decoder) (FunctionExpression, error) {
	tag, err := d.Tag()
	if err != nil {
		return FunctionExpression{}, err
	}
	f := FunctionExpression{Tag: ExpressionTag(tag)}
	switch f.Tag {
	case ExprConstant:
		if f.Constant, err = d.Float(); err != nil {
			return FunctionExpression{}, err
		}
	case ExprFunctionTerm:
		id, err := d.ID()
		if err != nil {
			return FunctionExpression{}, err
		}
		f.Term = FunctionTermID(id)
	case ExprUnary:
		id, err := d.ID()
		if err != nil {
			return FunctionExpression{}, err
		}
		f.Unary = UnaryOperatorID(id)
	case ExprBinary:
		id, err := d.ID()
		if err != nil {
			return FunctionExpression{}, err
		}
		f.Binary = BinaryOperatorID(id)
	case ExprMulti:
		id, err := d.ID()
		if err != nil {
			return FunctionExpression{}, err
		}
		f.Multi = MultiOperatorID(id)
	}
	return f, nil
}

func decodeGroundFunctionExpression(d *intern.Decoder) (GroundFunctionExpression, error) {
	tag, err := d.Tag()
	if err != nil {
		return GroundFunctionExpression{}, err
	}
	g := GroundFunctionExpression{Tag: ExpressionTag(tag)}
	switch g.Tag {
	case ExprConstant:
		if g.Constant, err = d.Float(); err != nil {
			return GroundFunctionExpression{}, err
		}
	case ExprFunctionTerm:
		id, err := d.ID()
		if err != nil {
			return GroundFunctionExpression{}, err
		}
		g.Value = GroundFunctionValueID(id)
	case ExprUnary:
		kind, err := d.Tag()
		if err != nil {
			return GroundFunctionExpression{}, err
		}
		operand, err := d.ID()
		if err != nil {
			return GroundFunctionExpression{}, err
		}
		g.Unary.Kind = OperatorKind(kind)
		g.Unary.Operand = GroundFunctionExpressionID(operand)
	case ExprBinary:
		kind, err := d.Tag()
		if err != nil {
			return GroundFunctionExpression{}, err
		}
		lhs, err := d.ID()
		if err != nil {
			return GroundFunctionExpression{}, err
		}
		rhs, err := d.ID()
		if err != nil {
			return GroundFunctionExpression{}, err
		}
		g.Binary.Kind = OperatorKind(kind)
		g.Binary.Lhs = GroundFunctionExpressionID(lhs)
		g.Binary.Rhs = GroundFunctionExpressionID(rhs)
	case ExprMulti:
		kind, err := d.Tag()
		if err != nil {
			return GroundFunctionExpression{}, err
		}
		ids, err := d.IDs()
		if err != nil {
			return GroundFunctionExpression{}, err
		}
		g.Multi.Kind = OperatorKind(kind)
		g.Multi.Operands = groundFunctionExpressionIDs(ids)
	}
	return g, nil
}

func decodeNumericConstraint(d *intern.Decoder) (NumericConstraint, error) {
	kind, err := d.Tag()
	if err != nil {
		return NumericConstraint{}, err
	}
	lhs, err := d.ID()
	if err != nil {
		return NumericConstraint{}, err
	}
	rhs, err := d.ID()
	if err != nil {
		return NumericConstraint{}, err
	}
	return NumericConstraint{Kind: OperatorKind(kind), Lhs: FunctionExpressionID(lhs), Rhs: FunctionExpressionID(rhs)}, nil
}

func decodeGroundNumericConstraint(d *intern.Decoder) (GroundNumericConstraint, error) {
	kind, err := d.Tag()
	if err != nil {
		return GroundNumericConstraint{}, err
	}
	lhs, err := d.ID()
	if err != nil {
		return GroundNumericConstraint{}, err
	}
	rhs, err := d.ID()
	if err != nil {
		return GroundNumericConstraint{}, err
	}
	return GroundNumericConstraint{Kind: OperatorKind(kind), Lhs: GroundFunctionExpressionID(lhs), Rhs: GroundFunctionExpressionID(rhs)}, nil
}

func decodeNumericEffect(d *intern.Decoder) (NumericEffect, error) {
	kind, err := d.Tag()
	if err != nil {
		return NumericEffect{}, err
	}
	term, err := d.ID()
	if err != nil {
		return NumericEffect{}, err
	}
	expr, err := d.ID()
	if err != nil {
		return NumericEffect{}, err
	}
	return NumericEffect{Kind: OperatorKind(kind), Term: FunctionTermID(term), Expr: FunctionExpressionID(expr)}, nil
}

func decodeGroundNumericEffect(d *intern.Decoder) (GroundNumericEffect, error) {
	kind, err := d.Tag()
	if err != nil {
		return GroundNumericEffect{}, err
	}
	term, err := d.ID()
	if err != nil {
		return GroundNumericEffect{}, err
	}
	expr, err := d.ID()
	if err != nil {
		return GroundNumericEffect{}, err
	}
	return GroundNumericEffect{Kind: OperatorKind(kind), Term: GroundFunctionTermID(term), Expr: GroundFunctionExpressionID(expr)}, nil
}

func decodeConjunctiveCondition(d *intern.Decoder) (ConjunctiveCondition, error) {
	numParams, err := d.Int()
	if err != nil {
		return ConjunctiveCondition{}, err
	}
	static, err := d.IDs()
	if err != nil {
		return ConjunctiveCondition{}, err
	}
	fluent, err := d.IDs()
	if err != nil {
		return ConjunctiveCondition{}, err
	}
	derived, err := d.IDs()
	if err != nil {
		return ConjunctiveCondition{}, err
	}
	nullary, err := d.IDs()
	if err != nil {
		return ConjunctiveCondition{}, err
	}
	n, err := d.Int()
	if err != nil {
		return ConjunctiveCondition{}, err
	}
	var constraints []NumericConstraint
	if n > 0 {
		constraints = make([]NumericConstraint, n)
		for i := range constraints {
			if constraints[i], err = decodeNumericConstraint(d); err != nil {
				return ConjunctiveCondition{}, err
			}
		}
	}
	return ConjunctiveCondition{
		NumParameters:      numParams,
		StaticLiterals:     literalIDs(static),
		FluentLiterals:     literalIDs(fluent),
		DerivedLiterals:    literalIDs(derived),
		NullaryLiterals:    literalIDs(nullary),
		NumericConstraints: constraints,
	}, nil
}

func decodeConjunctiveEffect(d *intern.Decoder) (ConjunctiveEffect, error) {
	numParams, err := d.Int()
	if err != nil {
		return ConjunctiveEffect{}, err
	}
	add, err := decodeAtomIDs(d)
	if err != nil {
		return ConjunctiveEffect{}, err
	}
	del, err := decodeAtomIDs(d)
	if err != nil {
		return ConjunctiveEffect{}, err
	}
	n, err := d.Int()
	if err != nil {
		return ConjunctiveEffect{}, err
	}
	var numeric []NumericEffect
	if n > 0 {
		numeric = make([]NumericEffect, n)
		for i := range numeric {
			if numeric[i], err = decodeNumericEffect(d); err != nil {
				return ConjunctiveEffect{}, err
			}
		}
	}
	return ConjunctiveEffect{
		NumParameters:  numParams,
		AddLiterals:    add,
		DeleteLiterals: del,
		NumericEffects: numeric,
	}, nil
}

func decodeConditionalEffect(d *intern.Decoder) (ConditionalEffect, error) {
	numExtra, err := d.Int()
	if err != nil {
		return ConditionalEffect{}, err
	}
	cond, err := d.ID()
	if err != nil {
		return ConditionalEffect{}, err
	}
	eff, err := d.ID()
	if err != nil {
		return ConditionalEffect{}, err
	}
	return ConditionalEffect{
		NumExtraParameters: numExtra,
		Condition:          ConjunctiveConditionID(cond),
		Effect:             ConjunctiveEffectID(eff),
	}, nil
}

func decodeAction(d *intern.Decoder) (Action, error) {
	name, err := d.Str()
	if err != nil {
		return Action{}, err
	}
	numParams, err := d.Int()
	if err != nil {
		return Action{}, err
	}
	precond, err := d.ID()
	if err != nil {
		return Action{}, err
	}
	ids, err := d.IDs()
	if err != nil {
		return Action{}, err
	}
	return Action{
		Name:          name,
		NumParameters: numParams,
		Precondition:  ConjunctiveConditionID(precond),
		Effects:       conditionalEffectIDs(ids),
	}, nil
}

func decodeAxiom(d *intern.Decoder) (Axiom, error) {
	head, err := d.ID()
	if err != nil {
		return Axiom{}, err
	}
	numParams, err := d.Int()
	if err != nil {
		return Axiom{}, err
	}
	body, err := d.ID()
	if err != nil {
		return Axiom{}, err
	}
	return Axiom{Head: LiteralID(head), NumParameters: numParams, Body: ConjunctiveConditionID(body)}, nil
}

func decodeRule(d *intern.Decoder) (Rule, error) {
	numParams, err := d.Int()
	if err != nil {
		return Rule{}, err
	}
	body, err := d.ID()
	if err != nil {
		return Rule{}, err
	}
	origin, err := d.Tag()
	if err != nil {
		return Rule{}, err
	}
	r := Rule{NumParameters: numParams, Body: ConjunctiveConditionID(body), Origin: RuleOrigin(origin)}
	switch r.Origin {
	case RuleFromAction:
		id, err := d.ID()
		if err != nil {
			return Rule{}, err
		}
		r.Action = ActionID(id)
	case RuleFromAxiom:
		id, err := d.ID()
		if err != nil {
			return Rule{}, err
		}
		r.Axiom = AxiomID(id)
	}
	return r, nil
}

func decodeGroundRule(d *intern.Decoder) (GroundRule, error) {
	rule, err := d.ID()
	if err != nil {
		return GroundRule{}, err
	}
	binding, err := d.ID()
	if err != nil {
		return GroundRule{}, err
	}
	return GroundRule{Rule: RuleID(rule), Binding: BindingID(binding)}, nil
}

func decodeGroundConditionalEffect(d *intern.Decoder) (GroundConditionalEffect, error) {
	n, err := d.Int()
	if err != nil {
		return GroundConditionalEffect{}, err
	}
	var cond []GroundLiteralID
	if n > 0 {
		cond = make([]GroundLiteralID, n)
		for i := range cond {
			id, err := d.ID()
			if err != nil {
				return GroundConditionalEffect{}, err
			}
			cond[i] = GroundLiteralID(id)
		}
	}
	add, err := decodeGroundAtomIDs(d)
	if err != nil {
		return GroundConditionalEffect{}, err
	}
	del, err := decodeGroundAtomIDs(d)
	if err != nil {
		return GroundConditionalEffect{}, err
	}
	n, err = d.Int()
	if err != nil {
		return GroundConditionalEffect{}, err
	}
	var numeric []GroundNumericEffect
	if n > 0 {
		numeric = make([]GroundNumericEffect, n)
		for i := range numeric {
			if numeric[i], err = decodeGroundNumericEffect(d); err != nil {
				return GroundConditionalEffect{}, err
			}
		}
	}
	return GroundConditionalEffect{Condition: cond, Add: add, Delete: del, Numeric: numeric}, nil
}

func decodeGroundAtomIDs(d *intern.Decoder) ([]GroundAtomID, error) {
	n, err := d.Int()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	atoms := make([]GroundAtomID, n)
	for i := range atoms {
		group, err := d.ID()
		if err != nil {
			return nil, err
		}
		local, err := d.ID()
		if err != nil {
			return nil, err
		}
		atoms[i] = GroundAtomID{Group: group, Local: local}
	}
	return atoms, nil
}

func decodeGroundAction(d *intern.Decoder) (GroundAction, error) {
	action, err := d.ID()
	if err != nil {
		return GroundAction{}, err
	}
	binding, err := d.ID()
	if err != nil {
		return GroundAction{}, err
	}
	n, err := d.Int()
	if err != nil {
		return GroundAction{}, err
	}
	var precond []GroundLiteralID
	if n > 0 {
		precond = make([]GroundLiteralID, n)
		for i := range precond {
			id, err := d.ID()
			if err != nil {
				return GroundAction{}, err
			}
			precond[i] = GroundLiteralID(id)
		}
	}
	n, err = d.Int()
	if err != nil {
		return GroundAction{}, err
	}
	var numeric []GroundNumericConstraint
	if n > 0 {
		numeric = make([]GroundNumericConstraint, n)
		for i := range numeric {
			if numeric[i], err = decodeGroundNumericConstraint(d); err != nil {
				return GroundAction{}, err
			}
		}
	}
	n, err = d.Int()
	if err != nil {
		return GroundAction{}, err
	}
	var effects []GroundConditionalEffect
	if n > 0 {
		effects = make([]GroundConditionalEffect, n)
		for i := range effects {
			if effects[i], err = decodeGroundConditionalEffect(d); err != nil {
				return GroundAction{}, err
			}
		}
	}
	return GroundAction{
		Action:             ActionID(action),
		Binding:            BindingID(binding),
		GroundPrecondition: precond,
		GroundNumeric:      numeric,
		GroundEffects:      effects,
	}, nil
}

func decodeGroundAxiom(d *intern.Decoder) (GroundAxiom, error) {
	axiom, err := d.ID()
	if err != nil {
		return GroundAxiom{}, err
	}
	binding, err := d.ID()
	if err != nil {
		return GroundAxiom{}, err
	}
	headGroup, err := d.ID()
	if err != nil {
		return GroundAxiom{}, err
	}
	headLocal, err := d.ID()
	if err != nil {
		return GroundAxiom{}, err
	}
	n, err := d.Int()
	if err != nil {
		return GroundAxiom{}, err
	}
	var body []GroundLiteralID
	if n > 0 {
		body = make([]GroundLiteralID, n)
		for i := range body {
			id, err := d.ID()
			if err != nil {
				return GroundAxiom{}, err
			}
			body[i] = GroundLiteralID(id)
		}
	}
	n, err = d.Int()
	if err != nil {
		return GroundAxiom{}, err
	}
	var numeric []GroundNumericConstraint
	if n > 0 {
		numeric = make([]GroundNumericConstraint, n)
		for i := range numeric {
			if numeric[i], err = decodeGroundNumericConstraint(d); err != nil {
				return GroundAxiom{}, err
			}
		}
	}
	return GroundAxiom{
		Axiom:         AxiomID(axiom),
		Binding:       BindingID(binding),
		Head:          GroundAtomID{Group: headGroup, Local: headLocal},
		GroundBody:    body,
		GroundNumeric: numeric,
	}, nil
}

func decodeBinding(d *intern.Decoder) (Binding, error) {
	ids, err := d.IDs()
	if err != nil {
		return Binding{}, err
	}
	return Binding{Objects: objectIDs(ids)}, nil
}

func decodeMetric(d *intern.Decoder) (Metric, error) {
	objective, err := d.Tag()
	if err != nil {
		return Metric{}, err
	}
	expr, err := d.ID()
	if err != nil {
		return Metric{}, err
	}
	return Metric{Objective: Objective(objective), Expression: GroundFunctionExpressionID(expr)}, nil
}

func decodeFDRVariable(d *intern.Decoder) (FDRVariable, error) {
	domainSize, err := d.Int()
	if err != nil {
		return FDRVariable{}, err
	}
	atoms, err := decodeGroundAtomIDs(d)
	if err != nil {
		return FDRVariable{}, err
	}
	return FDRVariable{DomainSize: domainSize, Atoms: atoms}, nil
}

func decodeFDRFact(d *intern.Decoder) (FDRFact, error) {
	variable, err := d.ID()
	if err != nil {
		return FDRFact{}, err
	}
	value, err := d.Int()
	if err != nil {
		return FDRFact{}, err
	}
	return FDRFact{Variable: FDRVariableID(variable), Value: value}, nil
}
