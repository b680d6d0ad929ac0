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

package cnf

// Formula is a CNF instance: a declared variable count plus an ordered
// list of clauses. Formulas are immutable values; every transformation in
// this module (Restrict, simplification, sub-formula construction)
// produces a new Formula rather than mutating one in place.
type Formula struct {
	NbVars  int
	Clauses []Clause
}

// New builds a formula, taking ownership of clauses by value.
func New(nbVars int, clauses []Clause) *Formula {
	return &Formula{NbVars: nbVars, Clauses: clauses}
}

// Apply evaluates the formula against an assignment. Undefined is
// returned if the assignment covers fewer variables than the formula
// declares.
func (f *Formula) Apply(a *Assignment) SolvingResult {
	if a.NbVars < f.NbVars {
		return Undefined
	}

	for _, c := range f.Clauses {
		if !clauseSatisfied(c, a) {
			return Unsatisfiable
		}
	}

	return Satisfiable
}

// clauseSatisfied reports whether some literal in c is satisfied by a. An
// empty clause has no literal to satisfy it and is therefore always
// unsatisfied - the standard CNF convention that makes the empty clause
// the canonical witness of unsatisfiability.
func clauseSatisfied(c Clause, a *Assignment) bool {
	for _, l := range c {
		if a.Satisfies(l) {
			return true
		}
	}

	return false
}

// HasEmptyClause reports whether f contains a zero-literal clause, the
// unconditional witness of unsatisfiability no assignment can escape.
// Every decomposition strategy must treat this the same way the whole
// formula would under Apply, since no amount of partitioning changes
// what a clause with nothing left to satisfy it means.
func (f *Formula) HasEmptyClause() bool {
	for _, c := range f.Clauses {
		if len(c) == 0 {
			return true
		}
	}

	return false
}

// Density returns Clauses/NbVars, or 0 when NbVars is 0.
func (f *Formula) Density() float64 {
	if f.NbVars == 0 {
		return 0
	}

	return float64(len(f.Clauses)) / float64(f.NbVars)
}

// ClauseLengthStats returns the average, minimum, and maximum clause
// length over all clauses. ok is false for an empty clause list, in which
// case avg/min/max carry no meaning and must not be consulted - an empty
// case is a distinct, checkable return rather than NaN or a sentinel int
// hiding in the numeric fields.
func (f *Formula) ClauseLengthStats() (avg float64, minLen, maxLen int, ok bool) {
	if len(f.Clauses) == 0 {
		return 0, 0, 0, false
	}

	total := 0
	minLen = len(f.Clauses[0])
	maxLen = len(f.Clauses[0])

	for _, c := range f.Clauses {
		n := len(c)
		total += n

		if n < minLen {
			minLen = n
		}

		if n > maxLen {
			maxLen = n
		}
	}

	return float64(total) / float64(len(f.Clauses)), minLen, maxLen, true
}

// VariableOccurrenceStats returns the average, minimum, and maximum
// number of times a declared variable (ignoring polarity) appears across
// all clauses. ok is false when NbVars is 0.
func (f *Formula) VariableOccurrenceStats() (avg float64, minOcc, maxOcc int, ok bool) {
	if f.NbVars == 0 {
		return 0, 0, 0, false
	}

	counts := make([]int, f.NbVars+1)

	for _, c := range f.Clauses {
		for _, l := range c {
			counts[l.Var()]++
		}
	}

	total := 0
	minOcc = counts[1]
	maxOcc = counts[1]

	for _, n := range counts[1:] {
		total += n

		if n < minOcc {
			minOcc = n
		}

		if n > maxOcc {
			maxOcc = n
		}
	}

	return float64(total) / float64(f.NbVars), minOcc, maxOcc, true
}

// Restrict returns the sub-formula containing only the given clauses (by
// index into f.Clauses), keeping the original NbVars so variable
// numbering stays stable across sub-formulas.
func (f *Formula) Restrict(clauseIndices []int) *Formula {
	clauses := make([]Clause, len(clauseIndices))
	for i, idx := range clauseIndices {
		clauses[i] = f.Clauses[idx]
	}

	return New(f.NbVars, clauses)
}

// SimplifyByGuess removes every clause already satisfied by guess via a
// literal on a cut variable, and returns the surviving clauses' original
// indices alongside the simplified formula.
func (f *Formula) SimplifyByGuess(guess PartialAssignment) (simplified *Formula, keptIndices []int) {
	clauses := make([]Clause, 0, len(f.Clauses))
	kept := make([]int, 0, len(f.Clauses))

	for i, c := range f.Clauses {
		satisfied := false

		for _, l := range c {
			if guess.Satisfies(l) {
				satisfied = true
				break
			}
		}

		if !satisfied {
			clauses = append(clauses, c)
			kept = append(kept, i)
		}
	}

	return New(f.NbVars, clauses), kept
}
