package cnf_test

import (
	"testing"

	"github.com/spjmurray/gopart/cnf"
)

func TestAssignmentCompleteness(t *testing.T) {
	t.Parallel()

	a := cnf.NewAssignment(2)
	if a.Complete() {
		t.Fatal("fresh assignment should not be complete")
	}

	a.Set(1, cnf.TriTrue)
	if a.Complete() {
		t.Fatal("partially bound assignment should not be complete")
	}

	a.Set(2, cnf.TriFalse)
	if !a.Complete() {
		t.Fatal("fully bound assignment should be complete")
	}
}

func TestAssignmentZeroVarsIsComplete(t *testing.T) {
	t.Parallel()

	if !cnf.NewAssignment(0).Complete() {
		t.Fatal("N=0 assignment should be vacuously complete")
	}
}

func TestAssignmentSatisfies(t *testing.T) {
	t.Parallel()

	a := cnf.NewAssignment(1)
	a.Set(1, cnf.TriTrue)

	if !a.Satisfies(1) {
		t.Fatal("expected +1 to be satisfied")
	}

	if a.Satisfies(-1) {
		t.Fatal("expected -1 to be unsatisfied")
	}
}

func TestAssignmentCloneIsIndependent(t *testing.T) {
	t.Parallel()

	a := cnf.NewAssignment(1)
	a.Set(1, cnf.TriTrue)

	clone := a.Clone()
	clone.Set(1, cnf.TriFalse)

	if a.Get(1) != cnf.TriTrue {
		t.Fatal("mutating the clone must not affect the original")
	}
}

func TestPartialAssignmentCompatibility(t *testing.T) {
	t.Parallel()

	a := cnf.PartialAssignment{1: cnf.TriTrue, 2: cnf.TriFalse}
	b := cnf.PartialAssignment{1: cnf.TriTrue, 3: cnf.TriTrue}
	c := cnf.PartialAssignment{1: cnf.TriFalse}

	if !a.CompatibleWith(b) {
		t.Fatal("expected a and b to be compatible")
	}

	if a.CompatibleWith(c) {
		t.Fatal("expected a and c to conflict on variable 1")
	}
}

func TestPartialAssignmentLiterals(t *testing.T) {
	t.Parallel()

	a := cnf.PartialAssignment{1: cnf.TriTrue, 2: cnf.TriFalse}

	lits := a.Literals([]cnf.Var{1, 2, 3})

	if len(lits) != 2 || lits[0] != 1 || lits[1] != -2 {
		t.Fatalf("unexpected literals: %v", lits)
	}
}
