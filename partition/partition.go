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

// Package partition decomposes a formula into candidate sub-formulas
// (partitions) whose shared variables form a small cut set. Four
// strategies are provided: Disconnected, Fast, Greedy, and OnePoint.
package partition

import (
	"github.com/spjmurray/go-util/pkg/set"

	"github.com/spjmurray/gopart/clock"
	"github.com/spjmurray/gopart/cnf"
)

// Descriptor is a partition: a subset of a formula's clauses (by index
// into the original formula) together with the union of variables those
// clauses touch.
type Descriptor struct {
	ClauseIndices []int
	Variables     set.Set[cnf.Var]
}

func newDescriptor() Descriptor {
	return Descriptor{Variables: set.New[cnf.Var]()}
}

// Empty reports whether the descriptor holds no clauses.
func (d Descriptor) Empty() bool {
	return len(d.ClauseIndices) == 0
}

// absorb folds clause index idx and its variables into the descriptor.
func (d *Descriptor) absorb(idx int, vars set.Set[cnf.Var]) {
	d.ClauseIndices = append(d.ClauseIndices, idx)

	for v := range vars.All() {
		d.Variables.Add(v)
	}
}

// merge folds another descriptor into this one.
func (d *Descriptor) merge(other Descriptor) {
	d.ClauseIndices = append(d.ClauseIndices, other.ClauseIndices...)

	for v := range other.Variables.All() {
		d.Variables.Add(v)
	}
}

// filterEmpty drops empty descriptors: every strategy's return value must
// consist only of partitions that actually own at least one clause.
func filterEmpty(descs []Descriptor) []Descriptor {
	out := make([]Descriptor, 0, len(descs))

	for _, d := range descs {
		if !d.Empty() {
			out = append(out, d)
		}
	}

	return out
}

// variableSets projects a slice of descriptors down to their variable
// sets, the shape cutset.Build and cutset.OptimisticAssignment consume.
func variableSets(descs []Descriptor) []set.Set[cnf.Var] {
	out := make([]set.Set[cnf.Var], len(descs))
	for i, d := range descs {
		out[i] = d.Variables
	}

	return out
}

// VariableSets exposes variableSets to callers outside the package (the
// solver shell).
func VariableSets(descs []Descriptor) []set.Set[cnf.Var] {
	return variableSets(descs)
}

// Strategy produces a decomposition of a formula and judges whether that
// decomposition is worth pursuing.
type Strategy interface {
	// Partition returns the candidate partitions of f, dropping empty
	// ones. clk is consulted at every loop iteration; an expired clock
	// aborts with clock.ErrDeadlineExceeded.
	Partition(clk *clock.Clock, f *cnf.Formula) ([]Descriptor, error)

	// IsGood judges whether the decomposition is worth pursuing over
	// calling the backend on the whole formula.
	IsGood(partitions []Descriptor, cut set.Set[cnf.Var]) bool

	// String names the strategy, for diagnostics and determinism tests.
	String() string
}
