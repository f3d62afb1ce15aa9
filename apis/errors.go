/*
Copyright 2025 The Knative-Go Authors.

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

package apis

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConditionSet is returned when a ConditionSet declaration is
	// malformed, e.g. the top-level condition type is also listed as a
	// dependent. It indicates a setup-time misconfiguration and should be
	// surfaced once, at controller startup.
	ErrInvalidConditionSet = errors.New("invalid condition set")

	// ErrInvariantViolation is returned when an operation would break a
	// condition-management invariant at runtime, e.g. directly setting the
	// top-level condition or marking an undeclared condition type. It
	// indicates a controller bug rather than a state of the world.
	ErrInvariantViolation = errors.New("condition invariant violation")
)

// NewInvalidConditionSetError returns an error that wraps ErrInvalidConditionSet
// with the given detail.
func NewInvalidConditionSetError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConditionSet, fmt.Sprintf(format, args...))
}

// NewInvariantViolationError returns an error that wraps ErrInvariantViolation
// with the given detail.
func NewInvariantViolationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...))
}
