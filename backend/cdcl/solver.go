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

package cdcl

import (
	"github.com/spjmurray/gopart/clock"
)

// pathEntry records one variable assignment on the trail: either a
// decision (reason == nil) or a propagation forced by a unit clause,
// whose partial() is kept as the reason so a later conflict can resolve
// it away. Adapted from pkg/cdcl/solver.go's pathEntry/path.
type pathEntry struct {
	variable *variable
	decision bool
	flipped  bool
	reason   partial
}

type path struct {
	entries []pathEntry
}

func (p *path) push(e pathEntry) {
	p.entries = append(p.entries, e)
}

// rollback undoes every entry from n onward, most recent first, and
// returns the truncated tail (unused by the caller today, kept for
// symmetry with push).
func (p *path) rollback(n int) []pathEntry {
	tail := p.entries[n:]

	for i := len(tail) - 1; i >= 0; i-- {
		tail[i].variable.undefine() //nolint:errcheck // undefine never conflicts
	}

	p.entries = p.entries[:n]

	return tail
}

// lastDecisionIndex returns the trail index of the most recent decision,
// or -1 if the trail holds no decision (i.e. we are at the root).
func (p *path) lastDecisionIndex() int {
	for i := len(p.entries) - 1; i >= 0; i-- {
		if p.entries[i].decision {
			return i
		}
	}

	return -1
}

// Solver runs unit propagation to a fixpoint, backtracking and learning a
// resolvent clause on every conflict, until the model is complete
// (satisfiable) or a conflict occurs with no decision left to flip
// (unsatisfiable). Each decision is tried false then true; once a
// decision has failed both ways, or resolves out of the learned clause
// entirely, it contributes nothing further and the search backs up past
// it to the decision before it. Chronological in the sense that it
// never jumps past a decision without first showing that decision is
// exhausted, but not limited to flipping only the single most recent
// one on every conflict.
type Solver struct {
	model *model
	path  path
}

func newSolver(m *model) *Solver {
	return &Solver{model: m}
}

// bcp propagates every unit clause to a fixpoint, or returns the
// conflictError of the first clause that becomes unsatisfiable.
func (s *Solver) bcp(clk *clock.Clock) error {
	for {
		if err := clk.CheckOrFail(); err != nil {
			return err
		}

		units := s.model.unitClauses()
		if len(units) == 0 {
			return nil
		}

		if err := s.bcpSingle(units[0]); err != nil {
			return err
		}
	}
}

// bcpSingle propagates one unit clause: it defines the sole undefined
// literal so the clause becomes true, recording the clause as the
// reason on the trail.
func (s *Solver) bcpSingle(c *clause) error {
	for _, l := range c.literals {
		if l.variable.defined() {
			continue
		}

		reason := c.partial()

		if err := l.variable.define(!l.negated); err != nil {
			return err
		}

		s.path.push(pathEntry{variable: l.variable, reason: reason})

		return nil
	}

	return nil
}

// handleConflict resolves the conflicting clause against the reasons of
// every propagated variable on the trail, walking back through
// decisions until it finds one that has not yet had both truth values
// tried. It learns the resolvent, flips that decision, and returns
// true. It reports ok == false once no such decision remains, meaning
// the formula is unsatisfiable. A decision that resolves away entirely,
// or whose only remaining flip conflicts again immediately, is
// exhausted just like one already flipped once: control drops it and
// keeps backing up rather than declaring the whole search unsatisfiable
// on the strength of a single decision level.
func (s *Solver) handleConflict(conflict *clause) (ok bool) {
	learned := conflict.partial()

	for {
		decisionAt := s.path.lastDecisionIndex()
		if decisionAt == -1 {
			return false
		}

		for i := len(s.path.entries) - 1; i > decisionAt; i-- {
			entry := s.path.entries[i]
			if _, present := learned[entry.variable]; present {
				learned = learned.resolve(entry.reason)
			}
		}

		decision := s.path.entries[decisionAt]

		_, present := learned[decision.variable]
		if !present || decision.flipped {
			s.path.rollback(decisionAt)

			continue
		}

		literals := make([]*literal, 0, len(learned))
		for v, negated := range learned {
			literals = append(literals, s.model.literal(varLit(v, !negated)))
		}

		s.model.createLearnedClause(literals)

		wasTrue := decision.variable.value2()

		s.path.rollback(decisionAt)

		if err := decision.variable.define(!wasTrue); err != nil {
			decision.variable.undefine() //nolint:errcheck // restore to undefined before continuing the backjump

			var ce *conflictError
			if !asConflictError(err, &ce) {
				return false
			}

			learned = ce.clause.partial()

			continue
		}

		s.path.push(pathEntry{variable: decision.variable, decision: true, flipped: true})

		return true
	}
}

// DefaultChooser picks the lowest-numbered undefined variable, giving
// deterministic, reproducible search order.
func DefaultChooser(m *model) *variable {
	for _, v := range m.variables[1:] {
		if v.undefined() {
			return v
		}
	}

	return nil
}

// run drives the search to completion or to an unresolved conflict.
func (s *Solver) run(clk *clock.Clock) (sat bool, err error) {
	for {
		conflictErr := s.bcp(clk)

		if conflictErr != nil {
			var ce *conflictError
			if ok := asConflictError(conflictErr, &ce); ok {
				if !s.handleConflict(ce.clause) {
					return false, nil
				}

				continue
			}

			return false, conflictErr
		}

		if s.model.complete() {
			return true, nil
		}

		choice := DefaultChooser(s.model)
		if choice == nil {
			return true, nil
		}

		if err := choice.define(false); err != nil {
			var ce *conflictError
			if ok := asConflictError(err, &ce); ok {
				if !s.handleConflict(ce.clause) {
					return false, nil
				}

				continue
			}

			return false, err
		}

		s.path.push(pathEntry{variable: choice, decision: true})
	}
}
