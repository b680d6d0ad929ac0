/*
Copyright 2024 Simon Murray

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package solve

import (
	"fmt"

	"github.com/spjmurray/go-util/pkg/set"

	"github.com/spjmurray/gopart/backend"
	"github.com/spjmurray/gopart/clock"
	"github.com/spjmurray/gopart/cnf"
	"github.com/spjmurray/gopart/cutset"
	"github.com/spjmurray/gopart/partition"
)

// cutSet builds the shared-variable cut across descs.
func (s *Solver) cutSet(clk *clock.Clock, descs []partition.Descriptor) (set.Set[cnf.Var], error) {
	return cutset.Build(clk, partition.VariableSets(descs))
}

// optimisticGuess builds the majority-polarity cut assignment.
func (s *Solver) optimisticGuess(clk *clock.Clock, f *cnf.Formula, cut set.Set[cnf.Var]) (cnf.PartialAssignment, error) {
	return cutset.OptimisticAssignment(clk, f, cut)
}

// mergeSubsolutions removes every clause guess already satisfies,
// routes every surviving clause to each partition whose variable set
// touches it, pins every partition's cut variables to guess with a unit
// clause so a sub-solution can never satisfy a routed clause by flipping
// a cut variable away from what the merge assumes it holds, dispatches
// one sub-formula per partition, and assembles a final assignment from
// guess's cut values and each sub-solution's private-variable values.
// Undefined from any sub-solution short-circuits the whole call; the
// assembled assignment is re-checked against the whole formula before
// being reported Satisfiable, so a bookkeeping slip anywhere upstream
// surfaces as Unsatisfiable rather than a wrong answer.
func (s *Solver) mergeSubsolutions(clk *clock.Clock, f *cnf.Formula, descs []partition.Descriptor, cut set.Set[cnf.Var], guess cnf.PartialAssignment) (cnf.Solution, error) {
	simplified, kept := f.SimplifyByGuess(guess)

	subClauses := make([][]cnf.Clause, len(descs))

	for i, origIdx := range kept {
		if err := clk.CheckOrFail(); err != nil {
			return cnf.Solution{}, err
		}

		clauseVars := simplified.Clauses[i].Vars()

		routed := false

		for j := range descs {
			if intersects(clauseVars, descs[j].Variables) {
				subClauses[j] = append(subClauses[j], f.Clauses[origIdx])
				routed = true
			}
		}

		if !routed {
			return cnf.Solution{}, fmt.Errorf("%w: clause %d did not touch any partition", ErrInvariantViolation, origIdx)
		}
	}

	// Pin every cut variable a partition actually references to guess's
	// value with a unit clause, so a private variable can never be
	// satisfied by flipping a cut variable away from the guess the merge
	// below assumes it holds.
	for j := range descs {
		for v := range descs[j].Variables.All() {
			val, ok := guess[v]
			if !ok || val == cnf.TriUndefined {
				continue
			}

			subClauses[j] = append(subClauses[j], cnf.Clause{cnf.NewLit(v, val == cnf.TriTrue)})
		}
	}

	subFormulas := make([]*cnf.Formula, len(descs))

	for j := range descs {
		if len(subClauses[j]) == 0 {
			subFormulas[j] = backend.Tautology(f.NbVars)
			continue
		}

		subFormulas[j] = cnf.New(f.NbVars, subClauses[j])
	}

	solutions, err := s.backend.SolveBatch(subFormulas, clk.RemainingMillisPtr())
	if err != nil {
		return cnf.Solution{}, err
	}

	for _, sol := range solutions {
		if sol.Result == cnf.Undefined {
			return cnf.Undef(), nil
		}
	}

	for _, sol := range solutions {
		if sol.Result == cnf.Unsatisfiable {
			return cnf.Unsat(), nil
		}
	}

	a := cnf.NewAssignment(f.NbVars)

	for v, val := range guess {
		a.Set(v, val)
	}

	for j, sol := range solutions {
		if sol.Assignment == nil {
			return cnf.Solution{}, fmt.Errorf("%w: satisfiable sub-solution for partition %d has no assignment", ErrInvariantViolation, j)
		}

		for v := range descs[j].Variables.All() {
			if cut.Contains(v) {
				continue
			}

			a.Set(v, sol.Assignment.Get(v))
		}
	}

	if f.Apply(a) != cnf.Satisfiable {
		return cnf.Unsat(), nil
	}

	return cnf.Sat(a), nil
}

// intersects reports whether l and r share any member.
func intersects(l, r set.Set[cnf.Var]) bool {
	for v := range l.All() {
		if r.Contains(v) {
			return true
		}
	}

	return false
}
