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

// Package cutset builds the cut set shared between two or more candidate
// partitions and a heuristic guess at how to assign it.
package cutset

import (
	"github.com/spjmurray/go-util/pkg/set"

	"github.com/spjmurray/gopart/clock"
	"github.com/spjmurray/gopart/cnf"
)

// Build returns the variables that appear in two or more of the given
// partition variable-sets. Complexity is O(V) in the total membership V,
// using a single occurrence-count pass rather than the source's sort-then
// scan, since Go's map gives O(1) amortized counting for free.
func Build(clk *clock.Clock, partitions []set.Set[cnf.Var]) (set.Set[cnf.Var], error) {
	counts := map[cnf.Var]int{}

	for _, p := range partitions {
		if err := clk.CheckOrFail(); err != nil {
			return nil, err
		}

		for v := range p.All() {
			counts[v]++
		}
	}

	cut := set.New[cnf.Var]()

	for v, n := range counts {
		if n >= 2 {
			cut.Add(v)
		}
	}

	return cut, nil
}

// OptimisticAssignment guesses a value for every cut variable by majority
// polarity across the whole formula's clauses: True if positive
// occurrences strictly exceed negative, False if strictly fewer, True on
// a positive tie, and TriUndefined if the variable is vacuous (occurs in
// neither polarity).
func OptimisticAssignment(clk *clock.Clock, f *cnf.Formula, cut set.Set[cnf.Var]) (cnf.PartialAssignment, error) {
	positive := map[cnf.Var]int{}
	negative := map[cnf.Var]int{}

	for _, c := range f.Clauses {
		if err := clk.CheckOrFail(); err != nil {
			return nil, err
		}

		for _, l := range c {
			v := l.Var()
			if !cut.Contains(v) {
				continue
			}

			if l.Positive() {
				positive[v]++
			} else {
				negative[v]++
			}
		}
	}

	guess := cnf.PartialAssignment{}

	for v := range cut.All() {
		pos, neg := positive[v], negative[v]

		switch {
		case pos > neg:
			guess[v] = cnf.TriTrue
		case neg > pos:
			guess[v] = cnf.TriFalse
		case pos > 0: // pos == neg, both positive
			guess[v] = cnf.TriTrue
		default: // pos == neg == 0, vacuous
			guess[v] = cnf.TriUndefined
		}
	}

	return guess, nil
}
