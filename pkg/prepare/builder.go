package prepare

import (
	"github.com/mrlab-ai/groundcore/pkg/model"
	"github.com/mrlab-ai/groundcore/pkg/perrors"
	"github.com/mrlab-ai/groundcore/pkg/plinput"
)

// Task is the output of Prepare: the interned repository plus everything
// grounding needs that does not itself live inside a single rule body —
// the lifted rules to ground, and the already-ground problem-level
// content (initial facts/values, goal, metric), none of which has
// parameters left to bind.
type Task struct {
	Rules                 []model.RuleID
	InitialGroundAtoms    []model.GroundAtomID
	InitialFunctionValues []model.GroundFunctionValueID
	GoalLiterals          []model.GroundLiteralID
	GoalNumeric           []model.GroundNumericConstraint
	Metric                *model.MetricID
}

// Builder interns a parsed lifted description into a fresh Repository.
// Each Builder is single-use: construct with New, call Prepare once.
type Builder struct {
	repo *model.Repository

	objects        map[string]model.ObjectID
	predicates     map[string]model.PredicateID
	predicateKinds map[string]model.Kind
	functions      map[string]model.FunctionID
	functionKinds  map[string]model.Kind

	scope *scope
}

// New returns a Builder backed by a fresh, empty Repository.
func New() *Builder {
	return &Builder{
		repo:       model.NewRepository(),
		objects:    make(map[string]model.ObjectID),
		predicates: make(map[string]model.PredicateID),
		functions:  make(map[string]model.FunctionID),
		scope:      newScope(),
	}
}

// noCoord is used where the parse tree carries no source coordinate; a
// real front end should thread one through plinput's types instead.
var noCoord = perrors.Coordinate{}

// Prepare classifies, canonicalises, and interns an entire lifted
// description, returning the populated Repository and the Task summary
// the grounder and the CLI consume.
func (b *Builder) Prepare(desc plinput.Description) (*model.Repository, *Task, error) {
	domain := desc.Domain()
	problem := desc.Problem()

	b.predicateKinds = classifyPredicates(domain)
	b.functionKinds = classifyFunctions(domain)

	if err := b.internObjects(problem); err != nil {
		return nil, nil, err
	}
	if err := b.internSymbols(domain); err != nil {
		return nil, nil, err
	}

	task := &Task{}

	for _, action := range domain.Actions {
		ruleID, err := b.buildActionRule(action)
		if err != nil {
			return nil, nil, err
		}
		task.Rules = append(task.Rules, ruleID)
	}
	for _, axiom := range domain.Axioms {
		ruleID, err := b.buildAxiomRule(axiom)
		if err != nil {
			return nil, nil, err
		}
		task.Rules = append(task.Rules, ruleID)
	}

	if err := b.buildProblem(problem, task); err != nil {
		return nil, nil, err
	}

	return b.repo, task, nil
}

func (b *Builder) internObjects(problem *plinput.Problem) error {
	for _, name := range problem.Objects {
		id, _, err := b.repo.Objects.GetOrCreate(model.Object{Name: name})
		if err != nil {
			return err
		}
		b.objects[name] = model.ObjectID(id)
	}
	return nil
}

func (b *Builder) internSymbols(domain *plinput.Domain) error {
	for _, p := range domain.Predicates {
		id, _, err := b.repo.Predicates.GetOrCreate(model.Predicate{
			Kind: b.predicateKinds[p.Name], Name: p.Name, Arity: int32(p.Arity),
		})
		if err != nil {
			return err
		}
		b.predicates[p.Name] = model.PredicateID(id)
	}
	for _, f := range domain.Functions {
		id, _, err := b.repo.Functions.GetOrCreate(model.Function{
			Kind: b.functionKinds[f.Name], Name: f.Name, Arity: int32(f.Arity),
		})
		if err != nil {
			return err
		}
		b.functions[f.Name] = model.FunctionID(id)
	}
	return nil
}

func (b *Builder) object(name string) (model.ObjectID, error) {
	id, ok := b.objects[name]
	if !ok {
		return 0, &perrors.TranslationError{At: noCoord, Message: "unknown object: " + name}
	}
	return id, nil
}

func (b *Builder) predicate(name string) (model.PredicateID, error) {
	id, ok := b.predicates[name]
	if !ok {
		return 0, &perrors.TranslationError{At: noCoord, Message: "unknown predicate: " + name}
	}
	return id, nil
}

func (b *Builder) function(name string) (model.FunctionID, error) {
	id, ok := b.functions[name]
	if !ok {
		return 0, &perrors.TranslationError{At: noCoord, Message: "unknown function: " + name}
	}
	return id, nil
}
