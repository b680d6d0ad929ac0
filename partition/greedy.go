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

package partition

import (
	"github.com/spjmurray/go-util/pkg/set"

	"github.com/spjmurray/gopart/clock"
	"github.com/spjmurray/gopart/cnf"
)

// DefaultGreedySeeds is the default number of seed partitions Greedy
// starts from when the caller doesn't request a specific count.
const DefaultGreedySeeds = 2

// Greedy picks K seed clauses maximally dissimilar from one another, then
// grows every remaining clause into the seed it overlaps best with,
// first requiring at least one shared variable and then, for whatever is
// left over, accepting any partition at all. Grounded on
// Partitioning/Algorithm/GreedyPartitioner.cpp.
type Greedy struct {
	// K is the number of seed partitions. Zero means DefaultGreedySeeds.
	K int
}

func (g Greedy) String() string { return "greedy" }

func (g Greedy) seeds() int {
	if g.K <= 0 {
		return DefaultGreedySeeds
	}

	return g.K
}

// Partition implements Strategy.
func (g Greedy) Partition(clk *clock.Clock, f *cnf.Formula) ([]Descriptor, error) {
	order := clausesBySizeDescending(f.Clauses)

	pool := make([]int, len(order))
	copy(pool, order)

	k := g.seeds()
	if k > len(pool) {
		k = len(pool)
	}

	descs := make([]Descriptor, 0, k)

	for len(descs) < k {
		if err := clk.CheckOrFail(); err != nil {
			return nil, err
		}

		pick, pickPos := selectSeed(pool, f, descs)
		desc := newDescriptor()
		desc.absorb(pick, f.Clauses[pick].Vars())
		descs = append(descs, desc)

		pool = append(pool[:pickPos], pool[pickPos+1:]...)
	}

	pool, err := growPass(clk, pool, f, descs, 1)
	if err != nil {
		return nil, err
	}

	if _, err := growPass(clk, pool, f, descs, 0); err != nil {
		return nil, err
	}

	return filterEmpty(descs), nil
}

// selectSeed picks the pool member whose overlap with the already-chosen
// seeds is minimal, ties broken by preferring the larger clause (pool is
// already sorted by descending size, so the first minimal-overlap
// candidate encountered is also the largest).
func selectSeed(pool []int, f *cnf.Formula, chosen []Descriptor) (clauseIdx, poolPos int) {
	bestOverlap := -1
	bestPos := 0

	for pos, idx := range pool {
		vars := f.Clauses[idx].Vars()

		overlap := 0
		for _, d := range chosen {
			overlap += connectivity(vars, d.Variables)
		}

		if bestOverlap == -1 || overlap < bestOverlap {
			bestOverlap = overlap
			bestPos = pos
		}
	}

	return pool[bestPos], bestPos
}

// growPass assigns every clause left in pool to the partition it overlaps
// best with, provided the overlap is >= threshold; clauses that still
// don't meet the threshold are returned for the next pass.
func growPass(clk *clock.Clock, pool []int, f *cnf.Formula, descs []Descriptor, threshold int) ([]int, error) {
	leftover := pool[:0]

	for _, idx := range pool {
		if err := clk.CheckOrFail(); err != nil {
			return nil, err
		}

		vars := f.Clauses[idx].Vars()

		bestPartition, bestOverlap, bestSize := -1, -1, 0

		for i := range descs {
			overlap := connectivity(vars, descs[i].Variables)
			size := len(descs[i].ClauseIndices)

			better := overlap > bestOverlap ||
				(overlap == bestOverlap && size < bestSize)

			if bestPartition == -1 || better {
				bestPartition, bestOverlap, bestSize = i, overlap, size
			}
		}

		if bestPartition != -1 && bestOverlap >= threshold {
			descs[bestPartition].absorb(idx, vars)
		} else {
			leftover = append(leftover, idx)
		}
	}

	return leftover, nil
}

// IsGood rejects a decomposition that produced one partition or fewer.
func (g Greedy) IsGood(partitions []Descriptor, _ set.Set[cnf.Var]) bool {
	return len(partitions) > 1
}
