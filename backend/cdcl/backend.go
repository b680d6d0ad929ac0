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

package cdcl

import (
	"errors"
	"time"

	"github.com/spjmurray/gopart/backend"
	"github.com/spjmurray/gopart/clock"
	"github.com/spjmurray/gopart/cnf"
)

// Backend is a backend.SatSolver backed by this package's CDCL search. A
// new internal model and Solver are built per Solve call: nothing here
// is shared or reused across a batch, so a Backend value is safe for
// concurrent use.
type Backend struct{}

// New returns a ready-to-use Backend.
func New() *Backend { return &Backend{} }

// Solve implements backend.SatSolver. A deadline that expires mid-search
// yields (cnf.Undef(), nil): running out of time is a solving outcome,
// not a Go error. A zero-literal clause is unsatisfiable by definition
// and has no literal to subscribe the model's conflict detection to, so
// it is checked for directly rather than relying on the search to find it.
func (Backend) Solve(f *cnf.Formula, deadline *time.Duration) (cnf.Solution, error) {
	if f.HasEmptyClause() {
		return cnf.Unsat(), nil
	}

	if f.NbVars == 0 {
		return cnf.Sat(cnf.NewAssignment(0)), nil
	}

	clk := clock.New(deadline)

	m := newModel(f)
	s := newSolver(m)

	sat, err := s.run(clk)
	if err != nil {
		if errors.Is(err, clock.ErrDeadlineExceeded) {
			return cnf.Undef(), nil
		}

		return cnf.Solution{}, err
	}

	if !sat {
		return cnf.Unsat(), nil
	}

	return cnf.Sat(m.assignment()), nil
}

// SolveBatch implements backend.SatSolver via the shared default,
// decrementing one deadline budget across every formula in fs.
func (b Backend) SolveBatch(fs []*cnf.Formula, deadline *time.Duration) ([]cnf.Solution, error) {
	return backend.DefaultSolveBatch(b.Solve, fs, deadline)
}
