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
	"sort"

	"github.com/spjmurray/go-util/pkg/set"

	"github.com/spjmurray/gopart/cnf"
)

// connectivity returns how many elements two variable sets have in
// common. Direct port of ClauseUtility.h's GetConnectivity(set, set).
func connectivity(l, r set.Set[cnf.Var]) int {
	n := 0

	for v := range l.All() {
		if r.Contains(v) {
			n++
		}
	}

	return n
}

// isConnected reports whether two variable sets share at least one
// element. Direct port of ClauseUtility.h's IsConnected.
func isConnected(l, r set.Set[cnf.Var]) bool {
	for v := range l.All() {
		if r.Contains(v) {
			return true
		}
	}

	return false
}

// clauseOrder is a clause index paired with its size, used to sort
// clauses by descending size with a stable, reproducible tie-break
// (size then insertion order).
type clauseOrder struct {
	index int
	size  int
}

// clausesBySizeDescending returns clause indices sorted by descending
// clause length, ties broken by original index so results are
// reproducible across runs on identical input.
func clausesBySizeDescending(clauses []cnf.Clause) []int {
	order := make([]clauseOrder, len(clauses))
	for i, c := range clauses {
		order[i] = clauseOrder{index: i, size: len(c)}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].size > order[j].size
	})

	out := make([]int, len(order))
	for i, o := range order {
		out[i] = o.index
	}

	return out
}
