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

// Package backend declares the abstract capability the partitioning core
// consumes to solve one formula at a time: a concrete CDCL/ILP/local
// search engine, injected by the caller. Nothing in this module's core
// packages depends on a specific engine.
package backend

import (
	"time"

	"github.com/spjmurray/gopart/cnf"
)

// SatSolver solves one formula, optionally within a millisecond budget.
// Partitioners (package partition combined with package solve) also
// satisfy this interface, so a partitioner can be nested as the backend
// of another partitioner.
type SatSolver interface {
	// Solve returns a solution for f. A nil deadline means unbounded.
	Solve(f *cnf.Formula, deadline *time.Duration) (cnf.Solution, error)

	// SolveBatch solves every formula in fs, subtracting elapsed time
	// from the shared deadline between calls. A nil deadline means
	// unbounded.
	SolveBatch(fs []*cnf.Formula, deadline *time.Duration) ([]cnf.Solution, error)
}

// DefaultSolveBatch implements SolveBatch in terms of Solve by iterating
// and decrementing a shared deadline, the default behaviour for backends
// that don't have a native batch mode.
func DefaultSolveBatch(solve func(*cnf.Formula, *time.Duration) (cnf.Solution, error), fs []*cnf.Formula, deadline *time.Duration) ([]cnf.Solution, error) {
	solutions := make([]cnf.Solution, len(fs))

	var remaining *time.Duration
	if deadline != nil {
		d := *deadline
		remaining = &d
	}

	for i, f := range fs {
		if remaining != nil && *remaining <= 0 {
			solutions[i] = cnf.Undef()
			continue
		}

		start := time.Now()

		solution, err := solve(f, remaining)
		if err != nil {
			return nil, err
		}

		solutions[i] = solution

		if remaining != nil {
			*remaining -= time.Since(start)
		}
	}

	return solutions, nil
}

// Tautology returns a trivially satisfiable formula declaring nbVars
// variables and, if nbVars > 0, a single clause (x1 v -x1). It is used to
// replace a sub-formula that lost every clause during simplification
// before dispatch to the backend, because some backends reject empty
// input. Declaring the same nbVars as the sub-formula it
// replaces keeps the backend's returned assignment dense over exactly
// the variables the caller expects to merge back in.
func Tautology(nbVars int) *cnf.Formula {
	if nbVars == 0 {
		return cnf.New(0, nil)
	}

	return cnf.New(nbVars, []cnf.Clause{{1, -1}})
}
