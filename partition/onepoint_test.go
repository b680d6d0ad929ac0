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

package partition_test

import (
	"testing"

	"github.com/spjmurray/go-util/pkg/set"

	"github.com/spjmurray/gopart/clock"
	"github.com/spjmurray/gopart/cnf"
	"github.com/spjmurray/gopart/partition"
)

// Two dense blobs on {1,2,3} and {3,4,5}, each made of two clauses that
// share all three of their variables, joined only by the articulation
// variable 3: OnePoint should end up treating variable 3 as the sole cut
// variable once the two blobs are recognised.
func TestOnePointFindsArticulationStructure(t *testing.T) {
	t.Parallel()

	f := cnf.New(5, []cnf.Clause{
		{1, 2, 3}, {-1, 2, 3},
		{3, 4, 5}, {3, -4, 5},
	})

	descs, err := partition.OnePoint{}.Partition(clock.Unbounded(), f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(descs) < 2 {
		t.Fatalf("expected the two triangles to remain distinguishable, got %d partitions", len(descs))
	}

	total := 0
	for _, d := range descs {
		total += len(d.ClauseIndices)
	}

	if total != len(f.Clauses) {
		t.Fatalf("expected every clause accounted for, got %d of %d", total, len(f.Clauses))
	}
}

func TestOnePointIsGoodBoundsCutByPartitionCount(t *testing.T) {
	t.Parallel()

	op := partition.OnePoint{}

	two := []partition.Descriptor{{}, {}}

	small := set.New[cnf.Var]()
	small.Add(1)

	if !op.IsGood(two, small) {
		t.Fatalf("expected a cut no larger than the partition count to be accepted")
	}
}

func TestOnePointIsGoodRejectsSinglePartition(t *testing.T) {
	t.Parallel()

	op := partition.OnePoint{}

	if op.IsGood([]partition.Descriptor{{}}, set.New[cnf.Var]()) {
		t.Fatalf("expected a single partition to be rejected regardless of cut size")
	}
}
