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

// Package solve implements the recursive decompose-guess-enumerate shell
// that sits on top of package partition, package cutset, and an injected
// backend.SatSolver: partition the formula, try a majority-polarity
// guess of the cut set, and fall back to bounded exhaustive cut
// enumeration only if that guess fails.
package solve

import (
	"errors"
	"time"

	"github.com/spjmurray/gopart/backend"
	"github.com/spjmurray/gopart/clock"
	"github.com/spjmurray/gopart/cnf"
	"github.com/spjmurray/gopart/partition"
)

// Solver drives one partition.Strategy against an injected backend. A
// Solver is itself a backend.SatSolver, so a partitioner can be nested
// inside another as its own backend (spec's "trivially also a SAT
// solver").
type Solver struct {
	strategy partition.Strategy
	backend  backend.SatSolver
}

// New returns a Solver using strategy. Call SetBackend before Solve.
func New(strategy partition.Strategy) *Solver {
	return &Solver{strategy: strategy}
}

// SetBackend injects the SAT solver used for whole formulas and for
// every sub-formula a partition produces.
func (s *Solver) SetBackend(b backend.SatSolver) {
	s.backend = b
}

// Solve implements backend.SatSolver. A nil deadline means unbounded. A
// deadline that expires anywhere inside the call yields (Undefined,
// nil): running out of time is a solving outcome, not a Go error.
func (s *Solver) Solve(f *cnf.Formula, deadline *time.Duration) (cnf.Solution, error) {
	if s.backend == nil {
		return cnf.Solution{}, ErrConfiguration
	}

	clk := clock.New(deadline)

	solution, err := s.run(clk, f)
	if err != nil {
		if errors.Is(err, clock.ErrDeadlineExceeded) {
			return cnf.Undef(), nil
		}

		return cnf.Solution{}, err
	}

	return solution, nil
}

// SolveBatch implements backend.SatSolver via the shared default.
func (s *Solver) SolveBatch(fs []*cnf.Formula, deadline *time.Duration) ([]cnf.Solution, error) {
	return backend.DefaultSolveBatch(s.Solve, fs, deadline)
}

// run is the decompose-guess-enumerate state machine: Partitioning ->
// Cutting -> OptimisticTrial -> Enumerating -> Done. Insufficient or
// unpromising partitioning short-circuits straight to a backend
// passthrough.
func (s *Solver) run(clk *clock.Clock, f *cnf.Formula) (cnf.Solution, error) {
	if err := clk.CheckOrFail(); err != nil {
		return cnf.Solution{}, err
	}

	if f.HasEmptyClause() {
		return cnf.Unsat(), nil
	}

	descs, err := s.strategy.Partition(clk, f)
	if err != nil {
		return cnf.Solution{}, err
	}

	if len(descs) <= 1 {
		return s.backend.Solve(f, clk.RemainingMillisPtr())
	}

	cut, err := s.cutSet(clk, descs)
	if err != nil {
		return cnf.Solution{}, err
	}

	if !s.strategy.IsGood(descs, cut) {
		return s.backend.Solve(f, clk.RemainingMillisPtr())
	}

	guess, err := s.optimisticGuess(clk, f, cut)
	if err != nil {
		return cnf.Solution{}, err
	}

	trial, err := s.mergeSubsolutions(clk, f, descs, cut, guess)
	if err != nil {
		return cnf.Solution{}, err
	}

	if trial.Result != cnf.Unsatisfiable {
		return trial, nil
	}

	a := cnf.NewAssignment(f.NbVars)

	return s.enumerate(clk, f, descs, cut, a, 1)
}
