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

package mockbackend_test

import (
	"testing"

	"github.com/spjmurray/gopart/backend/mockbackend"
	"github.com/spjmurray/gopart/cnf"
)

func TestSolveScriptedResults(t *testing.T) {
	t.Parallel()

	b := &mockbackend.Backend{
		Results: []cnf.Solution{cnf.Unsat(), cnf.Sat(cnf.NewAssignment(1))},
	}

	f := cnf.New(1, []cnf.Clause{{1}})

	first, err := b.Solve(f, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Result != cnf.Unsatisfiable {
		t.Fatalf("expected scripted unsatisfiable, got %v", first.Result)
	}

	second, err := b.Solve(f, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if second.Result != cnf.Satisfiable {
		t.Fatalf("expected scripted satisfiable, got %v", second.Result)
	}

	if len(b.Calls) != 2 || b.Calls[0] != f || b.Calls[1] != f {
		t.Fatalf("expected both calls recorded against f, got %v", b.Calls)
	}
}

func TestSolveFallsBackToBruteForce(t *testing.T) {
	t.Parallel()

	b := &mockbackend.Backend{}

	f := cnf.New(2, []cnf.Clause{{1, 2}, {-1, -2}})

	solution, err := b.Solve(f, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if solution.Result != cnf.Satisfiable {
		t.Fatalf("expected satisfiable, got %v", solution.Result)
	}
}

func TestSolveBatchRecordsEachCall(t *testing.T) {
	t.Parallel()

	b := &mockbackend.Backend{}

	fs := []*cnf.Formula{
		cnf.New(1, []cnf.Clause{{1}}),
		cnf.New(1, []cnf.Clause{{-1}}),
	}

	solutions, err := b.SolveBatch(fs, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(solutions) != 2 || len(b.Calls) != 2 {
		t.Fatalf("expected 2 recorded calls, got %d", len(b.Calls))
	}
}
