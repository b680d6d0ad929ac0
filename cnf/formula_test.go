package cnf_test

import (
	"testing"

	"github.com/spjmurray/gopart/cnf"
)

func TestApplyIncompleteAssignment(t *testing.T) {
	t.Parallel()

	f := cnf.New(3, []cnf.Clause{{1, 2}})
	a := cnf.NewAssignment(1)

	if got := f.Apply(a); got != cnf.Undefined {
		t.Fatalf("expected Undefined, got %v", got)
	}
}

func TestApplySatisfiable(t *testing.T) {
	t.Parallel()

	f := cnf.New(3, []cnf.Clause{{1, 2}, {-2, 3}})
	a := cnf.NewAssignment(3)
	a.Set(1, cnf.TriTrue)
	a.Set(2, cnf.TriTrue)
	a.Set(3, cnf.TriTrue)

	if got := f.Apply(a); got != cnf.Satisfiable {
		t.Fatalf("expected Satisfiable, got %v", got)
	}
}

func TestApplyEmptyClauseIsUnsat(t *testing.T) {
	t.Parallel()

	f := cnf.New(1, []cnf.Clause{{}})
	a := cnf.NewAssignment(1)
	a.Set(1, cnf.TriTrue)

	if got := f.Apply(a); got != cnf.Unsatisfiable {
		t.Fatalf("expected Unsatisfiable, got %v", got)
	}
}

func TestApplyEmptyFormulaIsSatisfiable(t *testing.T) {
	t.Parallel()

	f := cnf.New(0, nil)
	a := cnf.NewAssignment(0)

	if got := f.Apply(a); got != cnf.Satisfiable {
		t.Fatalf("expected Satisfiable, got %v", got)
	}
}

func TestDensity(t *testing.T) {
	t.Parallel()

	if got := cnf.New(0, nil).Density(); got != 0 {
		t.Fatalf("expected 0 density for N=0, got %v", got)
	}

	f := cnf.New(2, []cnf.Clause{{1, 2}, {-1, 2}, {1, -2}})

	if got := f.Density(); got != 1.5 {
		t.Fatalf("expected density 1.5, got %v", got)
	}
}

func TestClauseLengthStatsEmpty(t *testing.T) {
	t.Parallel()

	f := cnf.New(1, nil)

	_, _, _, ok := f.ClauseLengthStats()
	if ok {
		t.Fatal("expected ok=false for an empty clause list")
	}
}

func TestClauseLengthStats(t *testing.T) {
	t.Parallel()

	f := cnf.New(3, []cnf.Clause{{1}, {1, 2, 3}, {1, 2}})

	avg, minLen, maxLen, ok := f.ClauseLengthStats()
	if !ok {
		t.Fatal("expected ok=true")
	}

	if minLen != 1 || maxLen != 3 {
		t.Fatalf("expected min=1 max=3, got min=%d max=%d", minLen, maxLen)
	}

	if avg != 2 {
		t.Fatalf("expected avg=2, got %v", avg)
	}
}

func TestVariableOccurrenceStats(t *testing.T) {
	t.Parallel()

	f := cnf.New(2, []cnf.Clause{{1, 2}, {-1, 2}, {1}})

	avg, minOcc, maxOcc, ok := f.VariableOccurrenceStats()
	if !ok {
		t.Fatal("expected ok=true")
	}

	if minOcc != 2 || maxOcc != 3 {
		t.Fatalf("expected min=2 max=3, got min=%d max=%d", minOcc, maxOcc)
	}

	if avg != 2.5 {
		t.Fatalf("expected avg=2.5, got %v", avg)
	}
}

func TestSimplifyByGuess(t *testing.T) {
	t.Parallel()

	f := cnf.New(3, []cnf.Clause{{1, 2}, {-1, 3}, {2, -3}})
	guess := cnf.PartialAssignment{1: cnf.TriTrue}

	simplified, kept := f.SimplifyByGuess(guess)

	if len(simplified.Clauses) != 2 {
		t.Fatalf("expected 2 surviving clauses, got %d", len(simplified.Clauses))
	}

	if len(kept) != 2 || kept[0] != 1 || kept[1] != 2 {
		t.Fatalf("expected kept=[1 2], got %v", kept)
	}
}

func TestRestrict(t *testing.T) {
	t.Parallel()

	f := cnf.New(3, []cnf.Clause{{1, 2}, {-1, 3}, {2, -3}})

	sub := f.Restrict([]int{0, 2})

	if len(sub.Clauses) != 2 || sub.NbVars != 3 {
		t.Fatalf("unexpected restriction: %+v", sub)
	}
}
