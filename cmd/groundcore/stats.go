package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <description.json>",
	Short: "Ground a description and print per-entity-kind repository sizes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, _, err := groundFile(args[0])
		if err != nil {
			return err
		}

		rows := []struct {
			name string
			n    int
		}{
			{"objects", repo.Objects.Len()},
			{"predicates", repo.Predicates.Len()},
			{"functions", repo.Functions.Len()},
			{"atoms", repo.Atoms.Len()},
			{"ground_atoms", repo.GroundAtoms.Len()},
			{"literals", repo.Literals.Len()},
			{"ground_literals", repo.GroundLiterals.Len()},
			{"conjunctive_conditions", repo.ConjunctiveConditions.Len()},
			{"conjunctive_effects", repo.ConjunctiveEffects.Len()},
			{"conditional_effects", repo.ConditionalEffects.Len()},
			{"actions", repo.Actions.Len()},
			{"axioms", repo.Axioms.Len()},
			{"rules", repo.Rules.Len()},
			{"ground_rules", repo.GroundRules.Len()},
			{"ground_actions", repo.GroundActions.Len()},
			{"ground_axioms", repo.GroundAxioms.Len()},
			{"bindings", repo.Bindings.Len()},
			{"fdr_variables", repo.FDRVariables.Len()},
			{"fdr_facts", repo.FDRFacts.Len()},
		}
		for _, row := range rows {
			fmt.Printf("%-24s %d\n", row.name, row.n)
		}
		return nil
	},
}
