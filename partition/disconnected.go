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

// Disconnected computes connected components of the variable-incidence
// graph: two variables are adjacent iff they co-occur in some clause.
// Grounded on Partitioning/Algorithm/DisconnectedPartitioner.cpp, using
// Go's union-find instead of the source's repeated-scan merge loop -
// same result, without the "stop when a full pass finds no merges"
// fixed-point iteration the source needed in the absence of a proper
// disjoint-set structure.
type Disconnected struct{}

func (Disconnected) String() string { return "disconnected" }

// Partition implements Strategy.
func (Disconnected) Partition(clk *clock.Clock, f *cnf.Formula) ([]Descriptor, error) {
	parent := make([]int, f.NbVars+1)
	for i := range parent {
		parent[i] = i
	}

	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}

		return x
	}

	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	for _, c := range f.Clauses {
		if err := clk.CheckOrFail(); err != nil {
			return nil, err
		}

		if len(c) == 0 {
			continue
		}

		first := int(c[0].Var())
		for _, l := range c[1:] {
			union(first, int(l.Var()))
		}
	}

	byRoot := map[int]*Descriptor{}

	for i, c := range f.Clauses {
		if err := clk.CheckOrFail(); err != nil {
			return nil, err
		}

		if len(c) == 0 {
			continue
		}

		root := find(int(c[0].Var()))

		d, ok := byRoot[root]
		if !ok {
			nd := newDescriptor()
			d = &nd
			byRoot[root] = d
		}

		d.absorb(i, c.Vars())
	}

	descs := make([]Descriptor, 0, len(byRoot))
	for v := 1; v <= f.NbVars; v++ {
		if d, ok := byRoot[find(v)]; ok {
			descs = append(descs, *d)
			delete(byRoot, find(v))
		}
	}

	return filterEmpty(descs), nil
}

// IsGood accepts once the number of non-empty components exceeds
// 2^|cut|. The cut is always empty for a component decomposition, so any
// two or more components suffice.
func (Disconnected) IsGood(partitions []Descriptor, cut set.Set[cnf.Var]) bool {
	threshold := 1 << cutSize(cut)
	return len(partitions) > threshold
}

func cutSize(cut set.Set[cnf.Var]) int {
	n := 0
	for range cut.All() {
		n++
	}

	return n
}
