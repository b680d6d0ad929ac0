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

// Package clock provides the monotonic wall-clock budget shared across a
// single solve call.
package clock

import (
	"errors"
	"time"
)

// ErrDeadlineExceeded is returned by CheckOrFail once the budget has been
// spent. Callers that consult it at every hot loop iteration turn a single
// sentinel into cooperative cancellation, with no goroutine ever being
// interrupted mid-flight.
var ErrDeadlineExceeded = errors.New("clock: deadline exceeded")

// Clock wraps a monotonic start instant and an optional millisecond budget.
// A nil budget means unbounded: Remaining always reports ok=false and
// Expired always reports false.
type Clock struct {
	start  time.Time
	budget *time.Duration
}

// New starts a clock with the given budget. A nil budget means unbounded.
func New(budget *time.Duration) *Clock {
	return &Clock{
		start:  time.Now(),
		budget: budget,
	}
}

// Unbounded starts a clock with no budget.
func Unbounded() *Clock {
	return New(nil)
}

// elapsed returns time.Since(start), never start.Sub(now) - an inverted
// sign is structurally impossible here because there is only one place
// elapsed time is computed.
func (c *Clock) elapsed() time.Duration {
	return time.Since(c.start)
}

// Remaining returns the budget left. ok is false when the clock is
// unbounded, in which case the duration is meaningless.
func (c *Clock) Remaining() (remaining time.Duration, ok bool) {
	if c.budget == nil {
		return 0, false
	}

	return *c.budget - c.elapsed(), true
}

// Expired reports whether the budget has been spent. Always false for an
// unbounded clock.
func (c *Clock) Expired() bool {
	if c.budget == nil {
		return false
	}

	return c.elapsed() >= *c.budget
}

// CheckOrFail returns ErrDeadlineExceeded once the budget is spent. Called
// at every hot-loop iteration of the cut-set builder, the partition
// strategies, and the recursive solver shell.
func (c *Clock) CheckOrFail() error {
	if c.Expired() {
		return ErrDeadlineExceeded
	}

	return nil
}

// RemainingMillisPtr converts the remaining budget into the
// millisecond-budget pointer shape the backend.SatSolver interface takes,
// so a shell can hand its own remaining time down to a nested dispatch.
// Returns nil for an unbounded clock.
func (c *Clock) RemainingMillisPtr() *time.Duration {
	remaining, ok := c.Remaining()
	if !ok {
		return nil
	}

	return &remaining
}
