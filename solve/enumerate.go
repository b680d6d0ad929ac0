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
	"github.com/spjmurray/go-util/pkg/set"

	"github.com/spjmurray/gopart/clock"
	"github.com/spjmurray/gopart/cnf"
	"github.com/spjmurray/gopart/partition"
)

// enumerate walks variables v..f.NbVars in order, skipping every
// variable outside cut, and for a cut variable tries True then False,
// recursing before backtracking. a is a single mutable assignment
// reused across the whole search and always restored to TriUndefined on
// the way back out, rather than cloned per branch: the search is
// exponential in |cut| by construction (bounded by IsGood), so avoiding
// a per-node allocation matters.
//
// A Satisfiable or Undefined result at any leaf is returned immediately
// without trying further branches; only Unsatisfiable causes the search
// to backtrack and try the next assignment.
func (s *Solver) enumerate(clk *clock.Clock, f *cnf.Formula, descs []partition.Descriptor, cut set.Set[cnf.Var], a *cnf.Assignment, v int) (cnf.Solution, error) {
	if err := clk.CheckOrFail(); err != nil {
		return cnf.Solution{}, err
	}

	if v > f.NbVars {
		guess := extractGuess(a, cut)

		return s.mergeSubsolutions(clk, f, descs, cut, guess)
	}

	variable := cnf.Var(v)

	if !cut.Contains(variable) {
		return s.enumerate(clk, f, descs, cut, a, v+1)
	}

	for _, val := range [...]cnf.TriState{cnf.TriTrue, cnf.TriFalse} {
		a.Set(variable, val)

		trial, err := s.enumerate(clk, f, descs, cut, a, v+1)
		if err != nil {
			a.Set(variable, cnf.TriUndefined)
			return cnf.Solution{}, err
		}

		if trial.Result != cnf.Unsatisfiable {
			a.Set(variable, cnf.TriUndefined)
			return trial, nil
		}
	}

	a.Set(variable, cnf.TriUndefined)

	return cnf.Unsat(), nil
}

// extractGuess reads the cut variables' current bindings out of a as a
// cnf.PartialAssignment, the shape mergeSubsolutions expects.
func extractGuess(a *cnf.Assignment, cut set.Set[cnf.Var]) cnf.PartialAssignment {
	guess := cnf.PartialAssignment{}

	for v := range cut.All() {
		guess[v] = a.Get(v)
	}

	return guess
}
