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

package solve

import "errors"

// ErrConfiguration is returned when Solve is called with no backend
// injected via SetBackend.
var ErrConfiguration = errors.New("solve: no backend configured")

// ErrInvariantViolation marks a programmer error the shell detected in
// its own bookkeeping or in a backend's response: a satisfiable
// sub-solution with no assignment, or a clause that survived
// simplification without being routable to any partition. Both abort
// the call rather than attempt recovery.
var ErrInvariantViolation = errors.New("solve: invariant violation")
