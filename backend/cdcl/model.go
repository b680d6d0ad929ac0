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

// Package cdcl is a small conflict-driven-clause-learning solver used as
// this module's default backend.SatSolver. It exists to exercise the
// backend interface end-to-end; the partitioning core never depends on
// it directly and any other engine can be injected in its place.
package cdcl

import (
	"fmt"
	"strings"

	"github.com/spjmurray/go-util/pkg/set"

	"github.com/spjmurray/gopart/cnf"
)

// boolean wraps up a three-valued variable which notifies subscribers
// (literals, in turn clauses) whenever it changes. Adapted from
// pkg/cdcl/model.go's Boolean; variables here are addressed densely by
// cnf.Var rather than by an arbitrary comparable user type, so there is
// no separate variableSet name-to-id translation layer.
type boolean struct {
	value       *bool
	handle      int
	subscribers map[int]func(boolean) error
}

func newBoolean() boolean {
	return boolean{subscribers: map[int]func(boolean) error{}}
}

func (b boolean) undefined() bool { return b.value == nil }
func (b boolean) defined() bool   { return b.value != nil }
func (b boolean) value2() bool    { return b.defined() && *b.value }

func (b *boolean) subscribe(callback func(boolean) error) int {
	handle := b.handle
	b.handle++
	b.subscribers[handle] = callback

	return handle
}

func (b *boolean) unsubscribe(handle int) {
	delete(b.subscribers, handle)
}

func (b *boolean) notify() error {
	for _, f := range b.subscribers {
		if err := f(*b); err != nil {
			return err
		}
	}

	return nil
}

func (b *boolean) define(value bool) error {
	b.value = &value
	return b.notify()
}

func (b *boolean) undefine() error {
	b.value = nil
	return b.notify()
}

// variable is a solver-internal boolean cell for one cnf.Var.
type variable struct {
	boolean
	id cnf.Var
}

func newVariable(id cnf.Var) *variable {
	v := &variable{id: id}
	v.boolean = newBoolean()

	return v
}

func (v *variable) String() string {
	if v.defined() {
		return fmt.Sprintf("v%d=%v", v.id, v.value2())
	}

	return fmt.Sprintf("v%d=?", v.id)
}

// literal references a variable with a polarity.
type literal struct {
	boolean
	variable *variable
	negated  bool
}

func newLiteral(v *variable, negated bool) *literal {
	l := &literal{variable: v, negated: negated}
	l.boolean = newBoolean()

	v.subscribe(l.update)

	return l
}

func (l *literal) update(v boolean) error {
	if v.defined() {
		return l.define(v.value2() != l.negated)
	}

	return l.undefine()
}

// clause is a disjunction of literals tracked incrementally: it counts
// how many of its literals are defined and whether any is true, so it
// can announce becoming unit or conflicting in O(1) per update. Adapted
// from pkg/cdcl/model.go's clause/literalDefined/literalValues bitset.
type clause struct {
	boolean
	literals       []*literal
	handles        []int
	numDefined     int
	literalDefined []int64
	literalValues  []int64
}

func newClause(literals []*literal) *clause {
	words := (len(literals) + 63) >> 6

	c := &clause{
		literals:       literals,
		handles:        make([]int, len(literals)),
		literalDefined: make([]int64, words),
		literalValues:  make([]int64, words),
	}
	c.boolean = newBoolean()

	for i := range literals {
		i := i
		c.handles[i] = literals[i].subscribe(func(s boolean) error {
			return c.update(i, s)
		})
	}

	return c
}

func (c *clause) String() string {
	parts := make([]string, len(c.literals))
	for i, l := range c.literals {
		parts[i] = fmt.Sprint(l.variable.id)
		if l.negated {
			parts[i] = "-" + parts[i]
		}
	}

	return strings.Join(parts, " v ")
}

func (c *clause) complete() bool { return c.numDefined == len(c.literals) }

func (c *clause) unit() bool { return c.numDefined == len(c.literals)-1 && !c.value2() }

func (c *clause) value2() bool {
	for _, w := range c.literalValues {
		if w != 0 {
			return true
		}
	}

	return false
}

// conflictError is returned when a clause resolves to false.
type conflictError struct {
	clause *clause
}

func (e *conflictError) Error() string {
	return fmt.Sprint("conflict: ", e.clause)
}

func (c *clause) update(i int, s boolean) error {
	word := i >> 6
	bit := i & 0x3f

	wasDefined := c.literalDefined[word]&(1<<bit) != 0

	if !s.defined() && !wasDefined {
		return nil
	}

	switch {
	case !wasDefined && s.defined():
		c.numDefined++
		c.literalDefined[word] |= 1 << bit

		if s.value2() {
			c.literalValues[word] |= 1 << bit
		}
	case wasDefined && !s.defined():
		c.numDefined--
		c.literalDefined[word] &^= 1 << bit
		c.literalValues[word] &^= 1 << bit
	}

	if c.complete() && !c.value2() {
		return &conflictError{clause: c}
	}

	if c.complete() || c.value2() {
		return c.define(c.value2())
	}

	return c.undefine()
}

// partial maps variables to negation state, used for conflict resolution.
type partial map[*variable]bool

func (p partial) resolve(o partial) partial {
	r := partial{}
	for name, negated := range p {
		r[name] = negated
	}

	for name, negated := range o {
		if other, ok := r[name]; ok && other != negated {
			delete(r, name)
			continue
		}

		r[name] = negated
	}

	return r
}

func (c *clause) partial() partial {
	r := partial{}
	for _, l := range c.literals {
		r[l.variable] = l.negated
	}

	return r
}

// clauseList tracks clauses and, incrementally, which of them are unit.
type clauseList struct {
	items []*clause
	unit  set.Set[*clause]
}

func newClauseList() *clauseList {
	return &clauseList{unit: set.New[*clause]()}
}

func (l *clauseList) create(literals []*literal) *clause {
	c := newClause(literals)
	l.items = append(l.items, c)

	c.subscribe(func(s boolean) error {
		return l.update(c, s)
	})

	if len(literals) == 1 {
		l.unit.Add(c)
	}

	return c
}

func (l *clauseList) update(c *clause, _ boolean) error {
	if c.unit() {
		l.unit.Add(c)
	} else {
		l.unit.Delete(c)
	}

	return nil
}

// model is the CNF instance the solver operates on: a dense variable per
// cnf.Var 1..NbVars, a literal per (var, polarity) actually used, and the
// clauses of the source cnf.Formula.
type model struct {
	nbVars    int
	variables []*variable // indexed 1..nbVars, slot 0 unused
	literals  map[cnf.Lit]*literal
	clauses   *clauseList
}

func newModel(f *cnf.Formula) *model {
	m := &model{
		nbVars:    f.NbVars,
		variables: make([]*variable, f.NbVars+1),
		literals:  map[cnf.Lit]*literal{},
		clauses:   newClauseList(),
	}

	for v := 1; v <= f.NbVars; v++ {
		m.variables[v] = newVariable(cnf.Var(v))
	}

	for _, c := range f.Clauses {
		m.clauses.create(m.literalsFor(c))
	}

	return m
}

func (m *model) literalsFor(c cnf.Clause) []*literal {
	out := make([]*literal, len(c))
	for i, l := range c {
		out[i] = m.literal(l)
	}

	return out
}

func (m *model) literal(l cnf.Lit) *literal {
	if lit, ok := m.literals[l]; ok {
		return lit
	}

	lit := newLiteral(m.variables[l.Var()], !l.Positive())
	m.literals[l] = lit

	return lit
}

func (m *model) complete() bool {
	for _, v := range m.variables[1:] {
		if v.undefined() {
			return false
		}
	}

	return true
}

func (m *model) unitClauses() []*clause {
	var out []*clause
	for c := range m.clauses.unit.All() {
		out = append(out, c)
	}

	return out
}

func (m *model) createLearnedClause(l []*literal) {
	m.clauses.create(l)
}

// assignment extracts the current bindings as a cnf.Assignment,
// defaulting any variable the search never had to touch (because it
// appears in no remaining clause) to false.
func (m *model) assignment() *cnf.Assignment {
	a := cnf.NewAssignment(m.nbVars)

	for v := 1; v <= m.nbVars; v++ {
		switch {
		case m.variables[v].undefined():
			a.Set(cnf.Var(v), cnf.TriFalse)
		case m.variables[v].value2():
			a.Set(cnf.Var(v), cnf.TriTrue)
		default:
			a.Set(cnf.Var(v), cnf.TriFalse)
		}
	}

	return a
}
