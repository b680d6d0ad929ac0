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

// Fast is a linear sweep, absorbing clauses into a growing "anchor"
// partition while they share a variable with it, and opening a new
// anchor once a full pass finds nothing left to absorb. Grounded on
// Partitioning/Algorithm/FastPartitioner.cpp.
type Fast struct{}

func (Fast) String() string { return "fast" }

// Partition implements Strategy.
func (Fast) Partition(clk *clock.Clock, f *cnf.Formula) ([]Descriptor, error) {
	order := clausesBySizeDescending(f.Clauses)

	var descs []Descriptor

	pending := make([]int, len(order))
	copy(pending, order)

	for len(pending) > 0 {
		if err := clk.CheckOrFail(); err != nil {
			return nil, err
		}

		anchor := newDescriptor()
		anchor.absorb(pending[0], f.Clauses[pending[0]].Vars())
		pending = pending[1:]

		for {
			if err := clk.CheckOrFail(); err != nil {
				return nil, err
			}

			absorbedAny := false

			remaining := pending[:0]

			for _, idx := range pending {
				vars := f.Clauses[idx].Vars()
				if isConnected(vars, anchor.Variables) {
					anchor.absorb(idx, vars)
					absorbedAny = true
				} else {
					remaining = append(remaining, idx)
				}
			}

			pending = remaining

			if !absorbedAny {
				break
			}
		}

		descs = append(descs, anchor)
	}

	return filterEmpty(descs), nil
}

// IsGood always accepts: Fast is the cheapest fallback.
func (Fast) IsGood([]Descriptor, set.Set[cnf.Var]) bool {
	return true
}
