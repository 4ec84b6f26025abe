package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrlab-ai/groundcore/pkg/intern"
	"github.com/mrlab-ai/groundcore/pkg/model"
)

var queryCmd = &cobra.Command{
	Use:   "query <description.json> <predicate>",
	Short: "Ground a description and print every ground atom of one predicate",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, snap, err := groundFile(args[0])
		if err != nil {
			return err
		}

		predicate, ok := findPredicate(repo, args[1])
		if !ok {
			return fmt.Errorf("no predicate named %q in %s", args[1], args[0])
		}

		for _, id := range snap.GroundAtoms {
			atom := repo.GroundAtoms.Get(id)
			if atom.Predicate != predicate {
				continue
			}
			fmt.Println(formatGroundAtom(repo, atom))
		}
		return nil
	},
}

// findPredicate scans every interned predicate for one named name. Linear
// because pkg/intern's Store is keyed by structural hash of the whole
// Predicate value (kind and arity included), not by name alone.
func findPredicate(repo *model.Repository, name string) (model.PredicateID, bool) {
	for i := 0; i < repo.Predicates.Len(); i++ {
		id := model.PredicateID(intern.ID(i))
		if repo.Predicates.Get(intern.ID(id)).Name == name {
			return id, true
		}
	}
	return model.PredicateID(0), false
}

func formatGroundAtom(repo *model.Repository, atom model.GroundAtom) string {
	predicate := repo.Predicates.Get(intern.ID(atom.Predicate))
	names := make([]string, len(atom.Objects))
	for i, o := range atom.Objects {
		names[i] = repo.Objects.Get(intern.ID(o)).Name
	}
	return fmt.Sprintf("%s(%s)", predicate.Name, strings.Join(names, ", "))
}
