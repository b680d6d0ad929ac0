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

package gopart_test

import (
	"testing"

	"github.com/spjmurray/gopart"
	"github.com/spjmurray/gopart/backend/mockbackend"
	"github.com/spjmurray/gopart/cnf"
	"github.com/spjmurray/gopart/internal/cnfbuild"
)

func TestSolveWithDefaultBackendOnDisjointFormula(t *testing.T) {
	t.Parallel()

	b := cnfbuild.New()
	b.AtLeastOneOf("a", "b")
	b.AtLeastOneOf("c", "d")

	solution, err := gopart.Solve(gopart.Config{Strategy: gopart.StrategyDisconnected}, b.Build(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if solution.Result != cnf.Satisfiable {
		t.Fatalf("expected satisfiable, got %v", solution.Result)
	}

	if b.Build().Apply(solution.Assignment) != cnf.Satisfiable {
		t.Fatalf("solution does not actually satisfy the formula: %v", solution.Assignment)
	}
}

func TestSolveWithInjectedBackend(t *testing.T) {
	t.Parallel()

	b := cnfbuild.New()
	b.Unary("x")

	backend := &mockbackend.Backend{Results: []cnf.Solution{cnf.Sat(cnf.NewAssignment(1))}}

	cfg := gopart.Config{Strategy: gopart.StrategyFast, Backend: backend}

	solution, err := gopart.Solve(cfg, b.Build(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if solution.Result != cnf.Satisfiable {
		t.Fatalf("expected satisfiable, got %v", solution.Result)
	}

	if len(backend.Calls) == 0 {
		t.Fatalf("expected the injected backend to be exercised")
	}
}

func TestStrategyKindString(t *testing.T) {
	t.Parallel()

	cases := map[gopart.StrategyKind]string{
		gopart.StrategyDisconnected: "disconnected",
		gopart.StrategyFast:         "fast",
		gopart.StrategyGreedy:       "greedy",
		gopart.StrategyOnePoint:     "onepoint",
	}

	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("StrategyKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
