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

// Package gopart wires a partitioning strategy (package partition) and a
// backend SAT solver (package backend) into the recursive decompose-and-
// merge shell of package solve, and exposes the result as a single
// backend.SatSolver a caller can point at any CNF formula.
package gopart

import (
	"time"

	"github.com/spjmurray/gopart/backend"
	"github.com/spjmurray/gopart/backend/cdcl"
	"github.com/spjmurray/gopart/cnf"
	"github.com/spjmurray/gopart/solve"
)

// Config selects the decomposition strategy and backend a Solver uses.
type Config struct {
	// Strategy picks which of package partition's strategies to try
	// before falling back to the backend on the whole formula.
	Strategy StrategyKind

	// Backend solves whole formulas and every sub-formula a strategy
	// produces. A nil Backend defaults to backend/cdcl.New().
	Backend backend.SatSolver
}

// New builds a ready-to-use Solver from cfg.
func New(cfg Config) *solve.Solver {
	s := solve.New(cfg.Strategy.strategy())

	b := cfg.Backend
	if b == nil {
		b = cdcl.New()
	}

	s.SetBackend(b)

	return s
}

// Solve is a one-shot convenience equivalent to New(cfg).Solve(f, deadline).
func Solve(cfg Config, f *cnf.Formula, deadline *time.Duration) (cnf.Solution, error) {
	return New(cfg).Solve(f, deadline)
}
