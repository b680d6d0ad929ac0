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

// Package cnf models a conjunctive-normal-form formula, the assignments
// that can be tried against it, and the three-valued result of trying one.
package cnf

import "fmt"

// Var is a variable identifier, 1-indexed. 0 is a reserved sentinel and
// never names a variable.
type Var int

// Lit is a DIMACS-style signed literal: positive v asserts variable v,
// negative v negates it. 0 never appears in the in-memory model; it is
// only a clause terminator in the external wire format.
type Lit int

// Var returns the variable named by this literal, discarding polarity.
func (l Lit) Var() Var {
	if l < 0 {
		return Var(-l)
	}

	return Var(l)
}

// Positive reports whether the literal asserts its variable (rather than
// negating it).
func (l Lit) Positive() bool {
	return l > 0
}

// Negate returns the complementary literal.
func (l Lit) Negate() Lit {
	return -l
}

// NewLit builds the literal for v with the given polarity.
func NewLit(v Var, positive bool) Lit {
	if positive {
		return Lit(v)
	}

	return Lit(-v)
}

func (l Lit) String() string {
	return fmt.Sprintf("%d", int(l))
}
