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

import (
	"strings"

	"github.com/spjmurray/go-util/pkg/set"
)

// Clause is an ordered sequence of literals, interpreted as their
// disjunction. The core never canonicalises a clause: duplicate or
// complementary literals may appear.
type Clause []Lit

// Vars returns the set of variables touched by this clause, i.e. |l| for
// every literal l in the clause.
func (c Clause) Vars() set.Set[Var] {
	vars := set.New[Var]()

	for _, l := range c {
		vars.Add(l.Var())
	}

	return vars
}

// Negation returns the clause blocking exactly one cut-variable row: the
// disjunction of the complement of every literal in lits.
func Negation(lits []Lit) Clause {
	out := make(Clause, len(lits))
	for i, l := range lits {
		out[i] = l.Negate()
	}

	return out
}

func (c Clause) String() string {
	parts := make([]string, len(c))
	for i, l := range c {
		parts[i] = l.String()
	}

	return strings.Join(parts, " ")
}
