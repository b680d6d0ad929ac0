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
	"time"

	"github.com/spjmurray/gopart/clock"
	"github.com/spjmurray/gopart/cnf"
	"github.com/spjmurray/gopart/partition"
)

func durationPtr(d time.Duration) *time.Duration { return &d }

func TestGreedyProducesRequestedSeedCount(t *testing.T) {
	t.Parallel()

	// Two disjoint dense blobs: greedy seeding should split them into (up
	// to) K groups with every clause assigned to one of them.
	f := cnf.New(6, []cnf.Clause{
		{1, 2}, {2, 3}, {1, 3},
		{4, 5}, {5, 6}, {4, 6},
	})

	descs, err := partition.Greedy{K: 2}.Partition(clock.Unbounded(), f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(descs) > 2 {
		t.Fatalf("expected at most 2 partitions for K=2, got %d", len(descs))
	}

	total := 0
	for _, d := range descs {
		total += len(d.ClauseIndices)
	}

	if total != len(f.Clauses) {
		t.Fatalf("expected every clause assigned, got %d of %d", total, len(f.Clauses))
	}
}

func TestGreedyDefaultsSeedCountWhenZero(t *testing.T) {
	t.Parallel()

	g := partition.Greedy{}

	if g.String() != "greedy" {
		t.Fatalf("unexpected name: %s", g.String())
	}

	f := cnf.New(6, []cnf.Clause{
		{1, 2}, {2, 3}, {1, 3},
		{4, 5}, {5, 6}, {4, 6},
	})

	descs, err := g.Partition(clock.Unbounded(), f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(descs) != partition.DefaultGreedySeeds {
		t.Fatalf("expected K=0 to seed %d partitions, got %d", partition.DefaultGreedySeeds, len(descs))
	}
}

func TestGreedyIsGoodRequiresMoreThanOnePartition(t *testing.T) {
	t.Parallel()

	g := partition.Greedy{}

	if g.IsGood([]partition.Descriptor{{}}, nil) {
		t.Fatalf("expected a single partition to be rejected")
	}

	if !g.IsGood([]partition.Descriptor{{}, {}}, nil) {
		t.Fatalf("expected two partitions to be accepted")
	}
}

func TestGreedyDeadlineExceededPropagates(t *testing.T) {
	t.Parallel()

	zero := clock.New(durationPtr(0))

	f := cnf.New(2, []cnf.Clause{{1, 2}})

	if _, err := (partition.Greedy{}).Partition(zero, f); err == nil {
		t.Fatalf("expected an expired clock to abort partitioning")
	}
}
