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
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/clock"
)

const (
	// ReasonNoConditionsReported is the reason set on the top-level condition
	// while none of the declared dependents have been marked yet.
	ReasonNoConditionsReported = "NoConditionsReported"

	noConditionsReportedMessage = "no dependent conditions have been reported"
)

// Dependent declares a dependent condition type together with the severity
// its failure carries. A zero Severity defaults to Error at ConditionSet
// construction.
type Dependent struct {
	Type     ConditionType
	Severity ConditionSeverity
}

// ConditionSet is an immutable, per resource kind declaration of the
// top-level condition type and the ordered set of dependent condition types
// that feed it. Declaration order is the deterministic tie-break used when
// several dependents are unhappy at once.
type ConditionSet struct {
	happy      ConditionType
	dependents []Dependent
}

// NewConditionSet returns a ConditionSet for the given top-level condition
// type and dependents. It returns an ErrInvalidConditionSet error if the
// top-level type is listed as a dependent, a dependent repeats, or a
// severity is not one of Error or Warning.
func NewConditionSet(happy ConditionType, dependents ...Dependent) (*ConditionSet, error) {
	if happy == "" {
		return nil, NewInvalidConditionSetError("top-level condition type must not be empty")
	}
	deps := make([]Dependent, 0, len(dependents))
	for _, d := range dependents {
		if d.Type == "" {
			return nil, NewInvalidConditionSetError("dependent condition type must not be empty")
		}
		if d.Type == happy {
			return nil, NewInvalidConditionSetError("top-level condition type %q must not be listed as a dependent", happy)
		}
		switch d.Severity {
		case "":
			d.Severity = ConditionSeverityError
		case ConditionSeverityError, ConditionSeverityWarning:
		default:
			return nil, NewInvalidConditionSetError("dependent %q has unsupported severity %q", d.Type, d.Severity)
		}
		for _, seen := range deps {
			if seen.Type == d.Type {
				return nil, NewInvalidConditionSetError("dependent condition type %q is declared more than once", d.Type)
			}
		}
		deps = append(deps, d)
	}
	return &ConditionSet{happy: happy, dependents: deps}, nil
}

// MustNewConditionSet is like NewConditionSet but panics on a malformed
// declaration. It is intended for package-level condition set variables whose
// shape is statically known.
func MustNewConditionSet(happy ConditionType, dependents ...Dependent) *ConditionSet {
	set, err := NewConditionSet(happy, dependents...)
	if err != nil {
		panic(err)
	}
	return set
}

// NewLivingConditionSet returns a ConditionSet for a long-running resource
// whose top-level condition is Ready. All dependents carry Error severity.
func NewLivingConditionSet(dependents ...ConditionType) (*ConditionSet, error) {
	return NewConditionSet(ConditionReady, errorDependents(dependents)...)
}

// NewBatchConditionSet returns a ConditionSet for a resource that runs to
// completion, whose top-level condition is Succeeded. All dependents carry
// Error severity.
func NewBatchConditionSet(dependents ...ConditionType) (*ConditionSet, error) {
	return NewConditionSet(ConditionSucceeded, errorDependents(dependents)...)
}

func errorDependents(types []ConditionType) []Dependent {
	deps := make([]Dependent, 0, len(types))
	for _, t := range types {
		deps = append(deps, Dependent{Type: t, Severity: ConditionSeverityError})
	}
	return deps
}

// TopLevelConditionType returns the declared top-level condition type.
func (s *ConditionSet) TopLevelConditionType() ConditionType {
	return s.happy
}

// Dependents returns a copy of the declared dependents in declaration order.
func (s *ConditionSet) Dependents() []Dependent {
	deps := make([]Dependent, len(s.dependents))
	copy(deps, s.dependents)
	return deps
}

// Manage binds the ConditionSet to the conditions held by the given accessor
// and returns a ConditionManager over them. Manage performs no mutation
// itself; the returned manager is scoped to a single reconciliation pass and
// must not be shared across concurrent passes for the same resource.
func (s *ConditionSet) Manage(accessor ConditionsAccessor) ConditionManager {
	return s.ManageWithClock(accessor, clock.RealClock{})
}

// ManageWithClock is Manage with an injected timestamp source, so tests can
// control condition transition times.
func (s *ConditionSet) ManageWithClock(accessor ConditionsAccessor, clk clock.PassiveClock) ConditionManager {
	return ConditionManager{set: s, accessor: accessor, clock: clk}
}

// ConditionManager is the mutable engine over one resource's conditions.
// Callers mark dependent conditions to reflect observed reality; the manager
// recomputes the top-level condition from the dependents after every
// mutation. The top-level condition is always derived and can never be set
// directly.
type ConditionManager struct {
	set      *ConditionSet
	accessor ConditionsAccessor
	clock    clock.PassiveClock
}

// GetCondition returns the stored condition of the given type, or nil if it
// has not been set.
func (m ConditionManager) GetCondition(t ConditionType) *Condition {
	if m.accessor == nil {
		return nil
	}
	for _, c := range m.accessor.GetConditions() {
		if c.Type == t {
			return &c
		}
	}
	return nil
}

// GetTopLevelCondition returns the stored top-level condition, or nil if no
// dependent has been marked yet and the conditions have not been initialized.
func (m ConditionManager) GetTopLevelCondition() *Condition {
	return m.GetCondition(m.set.happy)
}

// IsHappy returns true if the top-level condition's status is True.
func (m ConditionManager) IsHappy() bool {
	return m.GetTopLevelCondition().IsTrue()
}

// InitializeConditions stores the derived top-level condition if it is not
// present yet, typically Unknown with reason NoConditionsReported. It is a
// no-op when the top-level condition already exists, so it is safe to call at
// the start of every reconciliation pass.
func (m ConditionManager) InitializeConditions() {
	if m.GetTopLevelCondition() != nil {
		return
	}
	m.recompute()
}

// SetCondition inserts or replaces the condition for cond.Type and recomputes
// the top-level condition. Setting a condition identical to the stored one
// apart from its transition time is a no-op, and a replacement only moves
// LastTransitionTime when the status changes. Directly setting the top-level
// type fails with an ErrInvariantViolation error.
func (m ConditionManager) SetCondition(cond Condition) error {
	if cond.Type == m.set.happy {
		return NewInvariantViolationError("condition %q is the top-level condition and is always derived from its dependents", cond.Type)
	}
	if dep := m.set.findDependent(cond.Type); dep != nil {
		cond.Severity = dep.Severity
	}
	m.setCondition(cond)
	m.recompute()
	return nil
}

// MarkTrue sets the status of the given dependent condition to True.
func (m ConditionManager) MarkTrue(t ConditionType) error {
	return m.mark(t, ConditionTrue, "", "")
}

// MarkTrueWithReason sets the status of the given dependent condition to True
// while still recording a reason and message, for "true but degraded"
// signaling.
func (m ConditionManager) MarkTrueWithReason(t ConditionType, reason, message string) error {
	return m.mark(t, ConditionTrue, reason, message)
}

// MarkFalse sets the status of the given dependent condition to False.
func (m ConditionManager) MarkFalse(t ConditionType, reason, message string) error {
	return m.mark(t, ConditionFalse, reason, message)
}

// MarkUnknown sets the status of the given dependent condition to Unknown.
// Typically used when the controller begins observing a new generation and
// cannot yet tell whether the dependency holds.
func (m ConditionManager) MarkUnknown(t ConditionType, reason, message string) error {
	return m.mark(t, ConditionUnknown, reason, message)
}

func (m ConditionManager) mark(t ConditionType, status ConditionStatus, reason, message string) error {
	dep, err := m.dependent(t)
	if err != nil {
		return err
	}
	m.setCondition(Condition{
		Type:     t,
		Status:   status,
		Severity: dep.Severity,
		Reason:   reason,
		Message:  message,
	})
	m.recompute()
	return nil
}

// ClearCondition removes the condition of the given type and recomputes the
// top-level condition. Clearing a condition that is not stored is a no-op.
// The top-level condition cannot be cleared.
func (m ConditionManager) ClearCondition(t ConditionType) error {
	if t == m.set.happy {
		return NewInvariantViolationError("condition %q is the top-level condition and cannot be cleared", t)
	}
	if m.accessor == nil {
		return nil
	}
	conditions := m.accessor.GetConditions()
	remaining := make(Conditions, 0, len(conditions))
	for _, c := range conditions {
		if c.Type != t {
			remaining = append(remaining, c)
		}
	}
	if len(remaining) == len(conditions) {
		return nil
	}
	m.accessor.SetConditions(remaining)
	m.recompute()
	return nil
}

// dependent resolves t against the declared dependents, rejecting the
// top-level type and undeclared types.
func (m ConditionManager) dependent(t ConditionType) (Dependent, error) {
	if t == m.set.happy {
		return Dependent{}, NewInvariantViolationError("condition %q is the top-level condition and is always derived from its dependents", t)
	}
	if dep := m.set.findDependent(t); dep != nil {
		return *dep, nil
	}
	return Dependent{}, NewInvariantViolationError("condition %q is not declared as a dependent of %q", t, m.set.happy)
}

func (s *ConditionSet) findDependent(t ConditionType) *Dependent {
	for i := range s.dependents {
		if s.dependents[i].Type == t {
			return &s.dependents[i]
		}
	}
	return nil
}

// recompute derives the top-level condition from the declared dependents and
// stores it through the same transition-time rule as any other condition.
func (m ConditionManager) recompute() {
	m.setCondition(m.aggregate())
}

// aggregate walks the declared dependents in declaration order:
//   - no dependent reported yet: Unknown with reason NoConditionsReported;
//   - any Error-severity dependent False: False, reason and message copied
//     from the first such dependent;
//   - else any Error-severity dependent Unknown (dependents never marked
//     count as Unknown with no message): Unknown likewise;
//   - else True. Warning-severity dependents never affect the tri-state.
func (m ConditionManager) aggregate() Condition {
	reported := false
	for _, d := range m.set.dependents {
		if m.GetCondition(d.Type) != nil {
			reported = true
			break
		}
	}
	if !reported {
		return Condition{
			Type:     m.set.happy,
			Status:   ConditionUnknown,
			Severity: ConditionSeverityError,
			Reason:   ReasonNoConditionsReported,
			Message:  noConditionsReportedMessage,
		}
	}

	for _, d := range m.set.dependents {
		if d.Severity != ConditionSeverityError {
			continue
		}
		if c := m.GetCondition(d.Type); c.IsFalse() {
			return Condition{
				Type:     m.set.happy,
				Status:   ConditionFalse,
				Severity: ConditionSeverityError,
				Reason:   c.Reason,
				Message:  c.Message,
			}
		}
	}

	for _, d := range m.set.dependents {
		if d.Severity != ConditionSeverityError {
			continue
		}
		c := m.GetCondition(d.Type)
		if c.IsUnknown() {
			happy := Condition{
				Type:     m.set.happy,
				Status:   ConditionUnknown,
				Severity: ConditionSeverityError,
			}
			if c != nil {
				happy.Reason = c.Reason
				happy.Message = c.Message
			}
			return happy
		}
	}

	return Condition{
		Type:     m.set.happy,
		Status:   ConditionTrue,
		Severity: ConditionSeverityError,
	}
}

// setCondition applies the transition-time rule without validation or
// recomputation. The stored collection keeps first-seen order; replacements
// stay in place and new conditions append.
func (m ConditionManager) setCondition(cond Condition) {
	if m.accessor == nil {
		return
	}
	conditions := m.accessor.GetConditions()
	updated := make(Conditions, 0, len(conditions)+1)
	replaced := false
	for _, c := range conditions {
		if c.Type != cond.Type {
			updated = append(updated, c)
			continue
		}
		if equalIgnoringTransitionTime(&c, &cond) {
			// Identical mark, avoid timestamp churn.
			return
		}
		if c.Status == cond.Status {
			cond.LastTransitionTime = c.LastTransitionTime
		} else {
			cond.LastTransitionTime = metav1.NewTime(m.clock.Now())
		}
		updated = append(updated, cond)
		replaced = true
	}
	if !replaced {
		cond.LastTransitionTime = metav1.NewTime(m.clock.Now())
		updated = append(updated, cond)
	}
	m.accessor.SetConditions(updated)
}

// equalIgnoringTransitionTime compares two conditions on everything but
// LastTransitionTime.
func equalIgnoringTransitionTime(a, b *Condition) bool {
	return a.Type == b.Type &&
		a.Status == b.Status &&
		a.Severity == b.Severity &&
		a.Reason == b.Reason &&
		a.Message == b.Message
}
