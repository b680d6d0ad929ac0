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

// Package mockbackend is a deterministic, in-memory stand-in for
// backend.SatSolver used by this module's own tests, so the shell in
// package solve can be exercised without depending on the CDCL search
// in backend/cdcl actually converging in any particular way.
package mockbackend

import (
	"time"

	"github.com/spjmurray/gopart/cnf"
)

// Backend answers Solve calls from a fixed script of results, keyed by
// the formula's position in call order, and records every formula it
// was asked to solve so a test can assert on what the caller dispatched.
type Backend struct {
	// Results is consulted in call order; when exhausted, Fallback (or
	// brute-force enumeration if Fallback is nil) answers instead.
	Results []cnf.Solution

	// Fallback answers any call beyond len(Results). Nil means fall
	// back to exhaustive assignment search, i.e. behave like a real
	// (if slow) solver.
	Fallback func(f *cnf.Formula) cnf.Solution

	// Calls records every formula passed to Solve, in order.
	Calls []*cnf.Formula

	// Deadlines records the deadline argument of every Solve call.
	Deadlines []*time.Duration
}

// Solve implements backend.SatSolver.
func (b *Backend) Solve(f *cnf.Formula, deadline *time.Duration) (cnf.Solution, error) {
	idx := len(b.Calls)
	b.Calls = append(b.Calls, f)
	b.Deadlines = append(b.Deadlines, deadline)

	if idx < len(b.Results) {
		return b.Results[idx], nil
	}

	if b.Fallback != nil {
		return b.Fallback(f), nil
	}

	return bruteForce(f), nil
}

// SolveBatch calls Solve once per formula, in order.
func (b *Backend) SolveBatch(fs []*cnf.Formula, deadline *time.Duration) ([]cnf.Solution, error) {
	out := make([]cnf.Solution, len(fs))

	for i, f := range fs {
		solution, err := b.Solve(f, deadline)
		if err != nil {
			return nil, err
		}

		out[i] = solution
	}

	return out, nil
}

// bruteForce enumerates every assignment; only usable for the small
// formulas mockbackend is meant to exercise in tests.
func bruteForce(f *cnf.Formula) cnf.Solution {
	if f.NbVars == 0 {
		if f.Apply(cnf.NewAssignment(0)) == cnf.Satisfiable {
			return cnf.Sat(cnf.NewAssignment(0))
		}

		return cnf.Unsat()
	}

	a := cnf.NewAssignment(f.NbVars)

	var try func(v int) bool

	try = func(v int) bool {
		if v > f.NbVars {
			return f.Apply(a) == cnf.Satisfiable
		}

		for _, val := range []cnf.TriState{cnf.TriFalse, cnf.TriTrue} {
			a.Set(cnf.Var(v), val)

			if try(v + 1) {
				return true
			}
		}

		a.Set(cnf.Var(v), cnf.TriUndefined)

		return false
	}

	if try(1) {
		return cnf.Sat(a)
	}

	return cnf.Unsat()
}
