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

package cnfbuild_test

import (
	"testing"

	"github.com/spjmurray/gopart/cnf"
	"github.com/spjmurray/gopart/internal/cnfbuild"
)

func TestBuildUnary(t *testing.T) {
	t.Parallel()

	b := cnfbuild.New()
	b.Unary("x")

	f := b.Build()
	if f.NbVars != 1 || len(f.Clauses) != 1 {
		t.Fatalf("expected 1 var and 1 clause, got %d/%d", f.NbVars, len(f.Clauses))
	}
}

func TestBuildAtMostOneOfIsPairwise(t *testing.T) {
	t.Parallel()

	b := cnfbuild.New()
	b.AtMostOneOf("a", "b", "c")

	f := b.Build()
	if len(f.Clauses) != 3 {
		t.Fatalf("expected 3 pairwise clauses for 3 names, got %d", len(f.Clauses))
	}
}

func TestBuildImpliesAtLeastOneOf(t *testing.T) {
	t.Parallel()

	b := cnfbuild.New()
	b.ImpliesAtLeastOneOf("p", "q", "r")

	f := b.Build()
	if len(f.Clauses) != 1 || len(f.Clauses[0]) != 3 {
		t.Fatalf("expected a single 3-literal clause, got %v", f.Clauses)
	}

	a := cnf.NewAssignment(f.NbVars)
	a.Set(b.Var("p"), cnf.TriTrue)
	a.Set(b.Var("q"), cnf.TriFalse)
	a.Set(b.Var("r"), cnf.TriFalse)

	if f.Apply(a) != cnf.Unsatisfiable {
		t.Fatalf("expected p true with q,r false to violate the implication")
	}
}

func TestVarIsStableAcrossCalls(t *testing.T) {
	t.Parallel()

	b := cnfbuild.New()

	first := b.Var("x")
	b.Unary("y")
	second := b.Var("x")

	if first != second {
		t.Fatalf("expected stable variable id for repeated name, got %d and %d", first, second)
	}
}
