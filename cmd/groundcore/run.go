package main

import (
	"fmt"
	"os"

	"github.com/mrlab-ai/groundcore/internal/logging"
	"github.com/mrlab-ai/groundcore/pkg/intern"
	"github.com/mrlab-ai/groundcore/pkg/model"
	"github.com/mrlab-ai/groundcore/pkg/perrors"
	"github.com/mrlab-ai/groundcore/pkg/plinput"
	"github.com/mrlab-ai/groundcore/pkg/prepare"
	"github.com/mrlab-ai/groundcore/pkg/task"
)

// groundFile loads path as a JSON lifted description, prepares it into a
// Repository, rejects any rule with more parameters than
// cfg.Limits.MaxParameterArity, and runs semi-naive grounding to a fixed
// point, honoring cfg.Limits.MaxRounds.
func groundFile(path string) (*model.Repository, task.Snapshot, error) {
	log := logging.Get(logging.CLI)

	f, err := os.Open(path)
	if err != nil {
		return nil, task.Snapshot{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	desc, err := plinput.LoadJSON(f)
	if err != nil {
		return nil, task.Snapshot{}, fmt.Errorf("parse %s: %w", path, err)
	}

	repo, prepared, err := prepare.New().Prepare(desc)
	if err != nil {
		return nil, task.Snapshot{}, fmt.Errorf("prepare %s: %w", path, err)
	}
	log.Infow("prepared description", "file", path, "rules", len(prepared.Rules))

	maxArity := cfg.Limits.MaxParameterArity
	for _, ruleID := range prepared.Rules {
		if n := repo.Rules.Get(intern.ID(ruleID)).NumParameters; n > maxArity {
			return nil, task.Snapshot{}, &perrors.CapacityExceeded{Limit: "max parameter arity", Wanted: int(n), Allowed: int(maxArity)}
		}
	}

	builder := task.New(repo, prepared)
	if err := builder.Seed(); err != nil {
		return nil, task.Snapshot{}, fmt.Errorf("seed grounding: %w", err)
	}

	maxRounds := cfg.Limits.MaxRounds
	converged := false
	for round := int32(0); maxRounds == 0 || round < maxRounds; round++ {
		stats, err := builder.Advance()
		if err != nil {
			return nil, task.Snapshot{}, fmt.Errorf("advance round %d: %w", round, err)
		}
		log.Debugw("round complete", "round", stats.Round, "new_actions", stats.NewActions, "new_axioms", stats.NewAxioms, "new_atoms", stats.NewAtoms)
		if stats.IsEmpty() {
			converged = true
			break
		}
	}
	if !converged {
		return nil, task.Snapshot{}, fmt.Errorf("did not reach a fixed point within %d rounds", maxRounds)
	}
	snap := builder.Snapshot()

	// Index the frozen ground content: a trivial one-variable-per-atom FDR
	// layout (invariant synthesis/mutex grouping is out of scope, see
	// DESIGN.md) plus the action/axiom applicability match trees, so §4.6
	// and §4.7 are actually exercised by grounding rather than only by
	// their own package tests.
	if _, _, err := builder.BuildFDR(); err != nil {
		return nil, task.Snapshot{}, fmt.Errorf("build fdr layout: %w", err)
	}
	actionsTree, axiomsTree := builder.BuildMatchTrees()
	log.Infow("built applicability indices",
		"fdr_variables", repo.FDRVariables.Len(),
		"fdr_facts", repo.FDRFacts.Len(),
		"action_match_tree_nodes", actionsTree.NumNodes(),
		"axiom_match_tree_nodes", axiomsTree.NumNodes(),
	)

	return repo, snap, nil
}
