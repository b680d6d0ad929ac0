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

package gopart

import "github.com/spjmurray/gopart/partition"

// StrategyKind names one of the four partitioning strategies package
// partition provides, so callers can select one from configuration
// (a flag, a config file) without importing package partition directly.
type StrategyKind int

const (
	// StrategyDisconnected splits the formula along its connected
	// components. The zero value, since it never needs a cut.
	StrategyDisconnected StrategyKind = iota
	// StrategyFast is the cheap linear-sweep fallback.
	StrategyFast
	// StrategyGreedy seeds K dissimilar partitions and grows them.
	StrategyGreedy
	// StrategyOnePoint targets formulas joined by articulation variables.
	StrategyOnePoint
)

func (k StrategyKind) String() string {
	switch k {
	case StrategyFast:
		return "fast"
	case StrategyGreedy:
		return "greedy"
	case StrategyOnePoint:
		return "onepoint"
	default:
		return "disconnected"
	}
}

// strategy resolves the enum value to a concrete partition.Strategy.
func (k StrategyKind) strategy() partition.Strategy {
	switch k {
	case StrategyFast:
		return partition.Fast{}
	case StrategyGreedy:
		return partition.Greedy{}
	case StrategyOnePoint:
		return partition.OnePoint{}
	default:
		return partition.Disconnected{}
	}
}
