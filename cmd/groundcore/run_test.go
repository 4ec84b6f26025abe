package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlab-ai/groundcore/internal/config"
)

const driveDomainJSON = `{
  "domain": {
    "name": "drive",
    "predicates": [{"name": "at", "arity": 2}, {"name": "road", "arity": 2}],
    "functions": [],
    "actions": [
      {
        "name": "drive",
        "parameters": ["?t", "?from", "?to"],
        "precondition": {"parameters": null, "literals": [
          {"atom": {"predicate": "at", "terms": [{"isParameter": true, "name": "?t"}, {"isParameter": true, "name": "?from"}]}},
          {"atom": {"predicate": "road", "terms": [{"isParameter": true, "name": "?from"}, {"isParameter": true, "name": "?to"}]}}
        ], "numeric": []},
        "effects": [
          {
            "addLiterals": [{"predicate": "at", "terms": [{"isParameter": true, "name": "?t"}, {"isParameter": true, "name": "?to"}]}],
            "deleteLiterals": [{"predicate": "at", "terms": [{"isParameter": true, "name": "?t"}, {"isParameter": true, "name": "?from"}]}],
            "numericEffects": []
          }
        ]
      }
    ],
    "axioms": []
  },
  "problem": {
    "name": "drive-p1",
    "objects": ["truck1", "loc-a", "loc-b"],
    "initialAtoms": [
      {"predicate": "at", "terms": [{"isParameter": false, "name": "truck1"}, {"isParameter": false, "name": "loc-a"}]},
      {"predicate": "road", "terms": [{"isParameter": false, "name": "loc-a"}, {"isParameter": false, "name": "loc-b"}]}
    ],
    "initialFunctionValues": [],
    "goal": {"parameters": null, "literals": [], "numeric": []}
  }
}`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "drive.json")
	require.NoError(t, os.WriteFile(path, []byte(driveDomainJSON), 0o644))
	return path
}

func TestGroundFileReachesAFixedPoint(t *testing.T) {
	cfg = config.DefaultConfig()
	path := writeFixture(t)

	repo, snap, err := groundFile(path)
	require.NoError(t, err)
	assert.Len(t, snap.GroundActions, 1)

	predicate, ok := findPredicate(repo, "at")
	require.True(t, ok)

	var atAtoms int
	for _, id := range snap.GroundAtoms {
		if repo.GroundAtoms.Get(id).Predicate == predicate {
			atAtoms++
		}
	}
	assert.Equal(t, 2, atAtoms, "both the initial and the driven-to at(...) atom should be reachable")
}

func TestGroundFileReportsAnErrorBelowMaxRounds(t *testing.T) {
	cfg = config.DefaultConfig()
	// Reaching the fixed point takes the round that finds drive(...) plus
	// one further round confirming nothing new follows; one round alone is
	// never enough, so MaxRounds=1 must be reported as exceeded.
	cfg.Limits.MaxRounds = 1
	path := writeFixture(t)

	_, _, err := groundFile(path)
	assert.Error(t, err)
}

func TestFindPredicateReportsAbsence(t *testing.T) {
	cfg = config.DefaultConfig()
	repo, _, err := groundFile(writeFixture(t))
	require.NoError(t, err)

	_, ok := findPredicate(repo, "no-such-predicate")
	assert.False(t, ok)
}
