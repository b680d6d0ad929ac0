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

import "github.com/spjmurray/gopart/solve"

// ErrConfiguration is returned when Solve is asked to run with no
// backend and no default could be constructed.
var ErrConfiguration = solve.ErrConfiguration

// ErrInvariantViolation marks a bookkeeping contract the shell itself
// broke - a satisfiable sub-solution with no assignment, or a clause
// that survived simplification unroutable to any partition - rather
// than an ordinary solving outcome. It always indicates a defect, never
// a property of the input formula.
var ErrInvariantViolation = solve.ErrInvariantViolation
