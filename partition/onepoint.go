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

// OnePoint targets formulas that look like several dense blobs joined by
// a small set of articulation variables. Every clause starts as its own
// partition; partitions sharing >= 2 variables are merged until stable,
// then single-clause "lonely" partitions are folded into whichever
// neighbour uniquely overlaps them (or left standing alone when no other
// partition overlaps them - a loose clause the generic solver shell
// resolves like any other trivial one-variable partition, rather than
// through a bespoke reattachment step). The largest surviving partition
// is the center; every other partition is a peripheral. Grounded on
// Partitioning/Algorithm/OnePointPartitioner.cpp/.h.
type OnePoint struct{}

func (OnePoint) String() string { return "onepoint" }

// Partition implements Strategy.
func (OnePoint) Partition(clk *clock.Clock, f *cnf.Formula) ([]Descriptor, error) {
	order := clausesBySizeDescending(f.Clauses)

	descs := make([]Descriptor, len(order))
	for i, idx := range order {
		d := newDescriptor()
		d.absorb(idx, f.Clauses[idx].Vars())
		descs[i] = d
	}

	descs, err := mergeAtTwo(clk, descs)
	if err != nil {
		return nil, err
	}

	descs, err = lonelyClauseSweep(clk, descs)
	if err != nil {
		return nil, err
	}

	descs, err = mergeAtTwo(clk, descs)
	if err != nil {
		return nil, err
	}

	descs, err = connectionAbsorption(clk, descs)
	if err != nil {
		return nil, err
	}

	descs, err = mergeAtTwo(clk, descs)
	if err != nil {
		return nil, err
	}

	return orderCenterLast(filterEmpty(descs)), nil
}

// mergeAtTwo repeatedly merges any pair of partitions sharing >= 2
// variables until no such pair remains.
func mergeAtTwo(clk *clock.Clock, descs []Descriptor) ([]Descriptor, error) {
	for {
		if err := clk.CheckOrFail(); err != nil {
			return nil, err
		}

		merged := false

		for i := 0; i < len(descs) && !merged; i++ {
			for j := i + 1; j < len(descs); j++ {
				if connectivity(descs[i].Variables, descs[j].Variables) >= 2 {
					descs[i].merge(descs[j])
					descs = append(descs[:j], descs[j+1:]...)
					merged = true

					break
				}
			}
		}

		if !merged {
			return descs, nil
		}
	}
}

// lonelyClauseSweep folds single-clause partitions into the one other
// partition they overlap, if exactly one does; leaves them standing if
// more than one overlaps (ambiguous), and leaves them standing as loose
// clauses if none overlap at all.
func lonelyClauseSweep(clk *clock.Clock, descs []Descriptor) ([]Descriptor, error) {
	absorbed := make([]bool, len(descs))

	for i, d := range descs {
		if err := clk.CheckOrFail(); err != nil {
			return nil, err
		}

		if len(d.ClauseIndices) != 1 {
			continue
		}

		matches := 0
		matchIdx := -1

		for j, other := range descs {
			if j == i || absorbed[j] {
				continue
			}

			if isConnected(d.Variables, other.Variables) {
				matches++
				matchIdx = j
			}
		}

		switch {
		case matches == 1:
			descs[matchIdx].merge(d)
			absorbed[i] = true
		default:
			// 0 matches (loose clause) or >1 (ambiguous): leave standing.
		}
	}

	out := make([]Descriptor, 0, len(descs))

	for i, d := range descs {
		if !absorbed[i] {
			out = append(out, d)
		}
	}

	return out, nil
}

// connectionAbsorption folds every remaining singleton (single-clause)
// partition into the smallest neighbour it shares any variable with.
func connectionAbsorption(clk *clock.Clock, descs []Descriptor) ([]Descriptor, error) {
	out := make([]Descriptor, 0, len(descs))
	absorbed := make([]bool, len(descs))

	for i, d := range descs {
		if err := clk.CheckOrFail(); err != nil {
			return nil, err
		}

		if len(d.ClauseIndices) != 1 || absorbed[i] {
			continue
		}

		bestJ, bestSize := -1, 0

		for j, other := range descs {
			if j == i || absorbed[j] {
				continue
			}

			if !isConnected(d.Variables, other.Variables) {
				continue
			}

			size := len(other.ClauseIndices)
			if bestJ == -1 || size < bestSize {
				bestJ, bestSize = j, size
			}
		}

		if bestJ != -1 {
			descs[bestJ].merge(d)
			absorbed[i] = true
		}
	}

	for i, d := range descs {
		if !absorbed[i] {
			out = append(out, d)
		}
	}

	return out, nil
}

// orderCenterLast moves the largest partition (by clause count) to the
// end of the slice, so the last (and largest) partition becomes the
// center and downstream cut-set/enumeration code can treat index len-1
// as the center without a separate lookup.
func orderCenterLast(descs []Descriptor) []Descriptor {
	if len(descs) < 2 {
		return descs
	}

	biggest := 0
	for i, d := range descs {
		if len(d.ClauseIndices) > len(descs[biggest].ClauseIndices) {
			biggest = i
		}
	}

	descs[biggest], descs[len(descs)-1] = descs[len(descs)-1], descs[biggest]

	return descs
}

// IsGood requires more than one partition and a cut set no larger than
// the partition count, so the truth-table enumeration each peripheral
// drives stays bounded.
func (OnePoint) IsGood(partitions []Descriptor, cut set.Set[cnf.Var]) bool {
	return len(partitions) > 1 && cutSize(cut) <= len(partitions)
}
