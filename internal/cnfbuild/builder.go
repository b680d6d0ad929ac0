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

// Package cnfbuild lets tests build a *cnf.Formula from named variables
// instead of juggling raw variable numbers, the way fixtures for a
// Sudoku or n-queens encoder are usually built up clause helper by
// clause helper. It has no purpose outside of tests: only the
// variable-allocation and clause-construction half of a fluent CNF
// builder lives here (see DESIGN.md); the search half belongs to
// backend/cdcl, since this package only ever produces formulas, never
// solves them.
package cnfbuild

import (
	"iter"

	"github.com/spjmurray/gopart/cnf"
)

// Builder accumulates named-variable clauses and renders them into a
// dense *cnf.Formula on Build.
type Builder struct {
	names map[string]cnf.Var
	order []string
	items []cnf.Clause
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{names: map[string]cnf.Var{}}
}

// var_ returns the dense cnf.Var for name, allocating one on first use.
func (b *Builder) var_(name string) cnf.Var {
	if v, ok := b.names[name]; ok {
		return v
	}

	v := cnf.Var(len(b.order) + 1)
	b.names[name] = v
	b.order = append(b.order, name)

	return v
}

// Literal returns the positive literal for name.
func (b *Builder) Literal(name string) cnf.Lit {
	return cnf.NewLit(b.var_(name), true)
}

// NegatedLiteral returns the negative literal for name.
func (b *Builder) NegatedLiteral(name string) cnf.Lit {
	return cnf.NewLit(b.var_(name), false)
}

// Clause adds a disjunction of literals as-is.
func (b *Builder) Clause(literals ...cnf.Lit) {
	b.items = append(b.items, cnf.Clause(literals))
}

// Unary constrains name to true.
func (b *Builder) Unary(name string) {
	b.Clause(b.Literal(name))
}

// NegatedUnary constrains name to false.
func (b *Builder) NegatedUnary(name string) {
	b.Clause(b.NegatedLiteral(name))
}

// AtLeastOneOf adds x1 v x2 v ... v xN.
func (b *Builder) AtLeastOneOf(names ...string) {
	literals := make([]cnf.Lit, len(names))
	for i, name := range names {
		literals[i] = b.Literal(name)
	}

	b.Clause(literals...)
}

// AtMostOneOf adds -x1 v -x2, -x1 v -x3, ..., -xN-1 v -xN, forbidding any
// two of names from being true simultaneously.
func (b *Builder) AtMostOneOf(names ...string) {
	literals := make([]cnf.Lit, len(names))
	for i, name := range names {
		literals[i] = b.NegatedLiteral(name)
	}

	for a, c := range permute(literals) {
		b.Clause(a, c)
	}
}

// ImpliesAtLeastOneOf adds -name v y1 v y2 v ... v yN, i.e. name implies
// at least one of names.
func (b *Builder) ImpliesAtLeastOneOf(name string, names ...string) {
	literals := make([]cnf.Lit, len(names)+1)
	literals[0] = b.NegatedLiteral(name)

	for i, other := range names {
		literals[i+1] = b.Literal(other)
	}

	b.Clause(literals...)
}

// Build renders the accumulated clauses into a formula over every
// variable named so far, in allocation order.
func (b *Builder) Build() *cnf.Formula {
	return cnf.New(len(b.order), b.items)
}

// Var exposes the dense cnf.Var allocated for name, for tests that need
// to inspect a solution by name.
func (b *Builder) Var(name string) cnf.Var {
	return b.var_(name)
}

// permute iterates over every unique unordered pair of t.
func permute[T any](t []T) iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		for i := range t {
			for j := i + 1; j < len(t); j++ {
				if !yield(t[i], t[j]) {
					return
				}
			}
		}
	}
}
