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
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"
)

const (
	sinkProvided ConditionType = "SinkProvided"
	deployed     ConditionType = "Deployed"
	degraded     ConditionType = "Degraded"
)

type fakeStatus struct {
	conditions Conditions
}

func (f *fakeStatus) GetConditions() Conditions {
	return f.conditions
}

func (f *fakeStatus) SetConditions(c Conditions) {
	f.conditions = c
}

// ignoreTime drops LastTransitionTime from condition comparisons; the
// timestamp rules get their own tests.
var ignoreTime = cmpopts.IgnoreFields(Condition{}, "LastTransitionTime")

func TestNewConditionSet(t *testing.T) {
	tests := []struct {
		name       string
		happy      ConditionType
		dependents []Dependent
		wantErr    error
	}{
		{
			name:       "valid set",
			happy:      ConditionReady,
			dependents: []Dependent{{Type: sinkProvided}, {Type: deployed}},
		},
		{
			name:  "valid set with warning dependent",
			happy: ConditionReady,
			dependents: []Dependent{
				{Type: sinkProvided, Severity: ConditionSeverityError},
				{Type: degraded, Severity: ConditionSeverityWarning},
			},
		},
		{
			name:       "top-level type listed as dependent",
			happy:      ConditionReady,
			dependents: []Dependent{{Type: ConditionReady}, {Type: sinkProvided}},
			wantErr:    ErrInvalidConditionSet,
		},
		{
			name:       "duplicate dependent",
			happy:      ConditionReady,
			dependents: []Dependent{{Type: sinkProvided}, {Type: sinkProvided}},
			wantErr:    ErrInvalidConditionSet,
		},
		{
			name:    "empty top-level type",
			happy:   "",
			wantErr: ErrInvalidConditionSet,
		},
		{
			name:       "empty dependent type",
			happy:      ConditionReady,
			dependents: []Dependent{{Type: ""}},
			wantErr:    ErrInvalidConditionSet,
		},
		{
			name:       "unsupported severity",
			happy:      ConditionReady,
			dependents: []Dependent{{Type: sinkProvided, Severity: "Info"}},
			wantErr:    ErrInvalidConditionSet,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			set, err := NewConditionSet(tc.happy, tc.dependents...)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("NewConditionSet() error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.happy, set.TopLevelConditionType())
		})
	}
}

func TestNewConditionSetDefaultsSeverity(t *testing.T) {
	set, err := NewConditionSet(ConditionReady, Dependent{Type: sinkProvided})
	require.NoError(t, err)

	want := []Dependent{{Type: sinkProvided, Severity: ConditionSeverityError}}
	if diff := cmp.Diff(want, set.Dependents()); diff != "" {
		t.Errorf("Dependents() mismatch (-want, +got):\n%s", diff)
	}
}

func TestNewLivingConditionSet(t *testing.T) {
	set, err := NewLivingConditionSet(sinkProvided, deployed)
	require.NoError(t, err)
	assert.Equal(t, ConditionReady, set.TopLevelConditionType())

	set, err = NewBatchConditionSet(deployed)
	require.NoError(t, err)
	assert.Equal(t, ConditionSucceeded, set.TopLevelConditionType())
}

func TestFreshManager(t *testing.T) {
	set := MustNewConditionSet(ConditionReady, Dependent{Type: sinkProvided})
	status := &fakeStatus{}
	mgr := set.Manage(status)

	if mgr.IsHappy() {
		t.Error("IsHappy() = true on a fresh manager, want false")
	}
	if got := mgr.GetTopLevelCondition(); got != nil {
		t.Errorf("GetTopLevelCondition() = %v on a fresh manager, want nil", got)
	}

	mgr.InitializeConditions()
	top := mgr.GetTopLevelCondition()
	require.NotNil(t, top)
	assert.Equal(t, ConditionUnknown, top.Status)
	assert.Equal(t, ReasonNoConditionsReported, top.Reason)
	assert.False(t, mgr.IsHappy())

	// Initializing again must not disturb the stored condition.
	mgr.InitializeConditions()
	if diff := cmp.Diff(top, mgr.GetTopLevelCondition()); diff != "" {
		t.Errorf("InitializeConditions() is not idempotent (-want, +got):\n%s", diff)
	}
}

func TestAggregation(t *testing.T) {
	tests := []struct {
		name        string
		dependents  []Dependent
		marks       func(t *testing.T, mgr ConditionManager)
		wantStatus  ConditionStatus
		wantReason  string
		wantMessage string
		wantHappy   bool
	}{
		{
			name: "error dependent false forces top-level false",
			dependents: []Dependent{
				{Type: sinkProvided, Severity: ConditionSeverityError},
				{Type: degraded, Severity: ConditionSeverityWarning},
			},
			marks: func(t *testing.T, mgr ConditionManager) {
				require.NoError(t, mgr.MarkFalse(sinkProvided, "SinkMissing", "sink not found"))
				require.NoError(t, mgr.MarkFalse(degraded, "Degraded", "running on one replica"))
			},
			wantStatus:  ConditionFalse,
			wantReason:  "SinkMissing",
			wantMessage: "sink not found",
		},
		{
			name: "warning dependent false leaves top-level true",
			dependents: []Dependent{
				{Type: sinkProvided, Severity: ConditionSeverityError},
				{Type: degraded, Severity: ConditionSeverityWarning},
			},
			marks: func(t *testing.T, mgr ConditionManager) {
				require.NoError(t, mgr.MarkTrue(sinkProvided))
				require.NoError(t, mgr.MarkFalse(degraded, "Degraded", "running on one replica"))
			},
			wantStatus: ConditionTrue,
			wantHappy:  true,
		},
		{
			name: "error dependent unknown forces top-level unknown",
			dependents: []Dependent{
				{Type: sinkProvided, Severity: ConditionSeverityError},
				{Type: degraded, Severity: ConditionSeverityWarning},
			},
			marks: func(t *testing.T, mgr ConditionManager) {
				require.NoError(t, mgr.MarkUnknown(sinkProvided, "Resolving", "sink resolution in progress"))
				require.NoError(t, mgr.MarkTrue(degraded))
			},
			wantStatus:  ConditionUnknown,
			wantReason:  "Resolving",
			wantMessage: "sink resolution in progress",
		},
		{
			name: "false beats unknown regardless of declaration order",
			dependents: []Dependent{
				{Type: sinkProvided, Severity: ConditionSeverityError},
				{Type: deployed, Severity: ConditionSeverityError},
			},
			marks: func(t *testing.T, mgr ConditionManager) {
				require.NoError(t, mgr.MarkUnknown(sinkProvided, "Resolving", "still resolving"))
				require.NoError(t, mgr.MarkFalse(deployed, "DeployFailed", "deployment failed"))
			},
			wantStatus:  ConditionFalse,
			wantReason:  "DeployFailed",
			wantMessage: "deployment failed",
		},
		{
			name: "declaration order breaks ties between false dependents",
			dependents: []Dependent{
				{Type: sinkProvided, Severity: ConditionSeverityError},
				{Type: deployed, Severity: ConditionSeverityError},
			},
			marks: func(t *testing.T, mgr ConditionManager) {
				// Marked in reverse declaration order on purpose.
				require.NoError(t, mgr.MarkFalse(deployed, "DeployFailed", "deployment failed"))
				require.NoError(t, mgr.MarkFalse(sinkProvided, "SinkMissing", "sink not found"))
			},
			wantStatus:  ConditionFalse,
			wantReason:  "SinkMissing",
			wantMessage: "sink not found",
		},
		{
			name: "unset error dependent counts as unknown",
			dependents: []Dependent{
				{Type: sinkProvided, Severity: ConditionSeverityError},
				{Type: deployed, Severity: ConditionSeverityError},
			},
			marks: func(t *testing.T, mgr ConditionManager) {
				require.NoError(t, mgr.MarkTrue(sinkProvided))
			},
			wantStatus: ConditionUnknown,
		},
		{
			name: "all error dependents true makes top-level true",
			dependents: []Dependent{
				{Type: sinkProvided, Severity: ConditionSeverityError},
				{Type: deployed, Severity: ConditionSeverityError},
			},
			marks: func(t *testing.T, mgr ConditionManager) {
				require.NoError(t, mgr.MarkTrue(sinkProvided))
				require.NoError(t, mgr.MarkTrue(deployed))
			},
			wantStatus: ConditionTrue,
			wantHappy:  true,
		},
		{
			name: "warning-only set is true once anything is reported",
			dependents: []Dependent{
				{Type: degraded, Severity: ConditionSeverityWarning},
			},
			marks: func(t *testing.T, mgr ConditionManager) {
				require.NoError(t, mgr.MarkFalse(degraded, "Degraded", "degraded"))
			},
			wantStatus: ConditionTrue,
			wantHappy:  true,
		},
		{
			name: "true with reason keeps the dependent true",
			dependents: []Dependent{
				{Type: sinkProvided, Severity: ConditionSeverityError},
			},
			marks: func(t *testing.T, mgr ConditionManager) {
				require.NoError(t, mgr.MarkTrueWithReason(sinkProvided, "SinkDefaulted", "using the namespace default sink"))
			},
			wantStatus: ConditionTrue,
			wantHappy:  true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			set, err := NewConditionSet(ConditionReady, tc.dependents...)
			require.NoError(t, err)
			status := &fakeStatus{}
			mgr := set.Manage(status)

			tc.marks(t, mgr)

			top := mgr.GetTopLevelCondition()
			require.NotNil(t, top, "top-level condition not recomputed")
			assert.Equal(t, tc.wantStatus, top.Status)
			assert.Equal(t, tc.wantReason, top.Reason)
			assert.Equal(t, tc.wantMessage, top.Message)
			assert.Equal(t, tc.wantHappy, mgr.IsHappy())
		})
	}
}

func TestMarkTrueWithReasonRecordsReason(t *testing.T) {
	set := MustNewConditionSet(ConditionReady, Dependent{Type: sinkProvided})
	status := &fakeStatus{}
	mgr := set.Manage(status)

	require.NoError(t, mgr.MarkTrueWithReason(sinkProvided, "SinkDefaulted", "using the namespace default sink"))

	want := &Condition{
		Type:     sinkProvided,
		Status:   ConditionTrue,
		Severity: ConditionSeverityError,
		Reason:   "SinkDefaulted",
		Message:  "using the namespace default sink",
	}
	if diff := cmp.Diff(want, mgr.GetCondition(sinkProvided), ignoreTime); diff != "" {
		t.Errorf("GetCondition() mismatch (-want, +got):\n%s", diff)
	}
}

func TestMarkIdempotence(t *testing.T) {
	clk := testingclock.NewFakePassiveClock(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))
	set := MustNewConditionSet(ConditionReady, Dependent{Type: sinkProvided})
	status := &fakeStatus{}
	mgr := set.ManageWithClock(status, clk)

	require.NoError(t, mgr.MarkFalse(sinkProvided, "SinkMissing", "sink not found"))
	first := *mgr.GetCondition(sinkProvided)

	clk.SetTime(clk.Now().Add(time.Hour))
	require.NoError(t, mgr.MarkFalse(sinkProvided, "SinkMissing", "sink not found"))
	second := *mgr.GetCondition(sinkProvided)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated identical mark changed the condition (-first, +second):\n%s", diff)
	}
}

func TestTransitionTimeRules(t *testing.T) {
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	clk := testingclock.NewFakePassiveClock(start)
	set := MustNewConditionSet(ConditionReady, Dependent{Type: sinkProvided})
	status := &fakeStatus{}
	mgr := set.ManageWithClock(status, clk)

	require.NoError(t, mgr.MarkFalse(sinkProvided, "SinkMissing", "sink not found"))
	stamped := mgr.GetCondition(sinkProvided).LastTransitionTime
	assert.Equal(t, start, stamped.Time)

	// Reason/message change without a status change keeps the timestamp.
	clk.SetTime(start.Add(time.Hour))
	require.NoError(t, mgr.MarkFalse(sinkProvided, "SinkGone", "sink was deleted"))
	cond := mgr.GetCondition(sinkProvided)
	assert.Equal(t, "SinkGone", cond.Reason)
	assert.Equal(t, start, cond.LastTransitionTime.Time, "timestamp bumped without a status change")

	// A status change bumps the timestamp to the current clock reading.
	clk.SetTime(start.Add(2 * time.Hour))
	require.NoError(t, mgr.MarkTrue(sinkProvided))
	cond = mgr.GetCondition(sinkProvided)
	assert.Equal(t, start.Add(2*time.Hour), cond.LastTransitionTime.Time)

	// Timestamps never move backwards across repeated transitions.
	clk.SetTime(start.Add(3 * time.Hour))
	require.NoError(t, mgr.MarkFalse(sinkProvided, "SinkMissing", "sink not found"))
	next := mgr.GetCondition(sinkProvided)
	if next.LastTransitionTime.Time.Before(cond.LastTransitionTime.Time) {
		t.Errorf("LastTransitionTime moved backwards: %v -> %v", cond.LastTransitionTime, next.LastTransitionTime)
	}
}

func TestTopLevelMutationRejected(t *testing.T) {
	set := MustNewConditionSet(ConditionReady, Dependent{Type: sinkProvided})
	status := &fakeStatus{}
	mgr := set.Manage(status)
	require.NoError(t, mgr.MarkTrue(sinkProvided))
	before := status.conditions

	tests := []struct {
		name string
		op   func() error
	}{
		{name: "MarkTrue", op: func() error { return mgr.MarkTrue(ConditionReady) }},
		{name: "MarkFalse", op: func() error { return mgr.MarkFalse(ConditionReady, "Nope", "nope") }},
		{name: "MarkUnknown", op: func() error { return mgr.MarkUnknown(ConditionReady, "Nope", "nope") }},
		{name: "SetCondition", op: func() error {
			return mgr.SetCondition(Condition{Type: ConditionReady, Status: ConditionFalse})
		}},
		{name: "ClearCondition", op: func() error { return mgr.ClearCondition(ConditionReady) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.op()
			if !errors.Is(err, ErrInvariantViolation) {
				t.Fatalf("%s(top-level) error = %v, want ErrInvariantViolation", tc.name, err)
			}
			if diff := cmp.Diff(before, status.conditions); diff != "" {
				t.Errorf("conditions mutated by a rejected operation (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestMarkUndeclaredRejected(t *testing.T) {
	set := MustNewConditionSet(ConditionReady, Dependent{Type: sinkProvided})
	status := &fakeStatus{}
	mgr := set.Manage(status)

	err := mgr.MarkTrue(deployed)
	if !errors.Is(err, ErrInvariantViolation) {
		t.Fatalf("MarkTrue(undeclared) error = %v, want ErrInvariantViolation", err)
	}
	assert.Empty(t, status.conditions)
}

func TestSetConditionUndeclaredType(t *testing.T) {
	// SetCondition accepts non-dependent informational conditions; they are
	// stored but ignored by the aggregation.
	set := MustNewConditionSet(ConditionReady, Dependent{Type: sinkProvided})
	status := &fakeStatus{}
	mgr := set.Manage(status)
	require.NoError(t, mgr.MarkTrue(sinkProvided))

	require.NoError(t, mgr.SetCondition(Condition{
		Type:     deployed,
		Status:   ConditionFalse,
		Severity: ConditionSeverityWarning,
		Reason:   "NotDeployed",
	}))

	assert.True(t, mgr.IsHappy(), "informational condition affected the top-level condition")
	require.NotNil(t, mgr.GetCondition(deployed))
}

func TestSetConditionNormalizesSeverity(t *testing.T) {
	set := MustNewConditionSet(ConditionReady,
		Dependent{Type: degraded, Severity: ConditionSeverityWarning},
	)
	status := &fakeStatus{}
	mgr := set.Manage(status)

	require.NoError(t, mgr.SetCondition(Condition{
		Type:     degraded,
		Status:   ConditionFalse,
		Severity: ConditionSeverityError,
	}))

	cond := mgr.GetCondition(degraded)
	require.NotNil(t, cond)
	assert.Equal(t, ConditionSeverityWarning, cond.Severity, "declared severity not applied")
}

func TestClearCondition(t *testing.T) {
	set := MustNewConditionSet(ConditionReady,
		Dependent{Type: sinkProvided},
		Dependent{Type: deployed},
	)
	status := &fakeStatus{}
	mgr := set.Manage(status)
	require.NoError(t, mgr.MarkTrue(sinkProvided))
	require.NoError(t, mgr.MarkFalse(deployed, "DeployFailed", "deployment failed"))
	require.False(t, mgr.IsHappy())

	// Clearing the failing dependent leaves it unset, which aggregates as
	// Unknown rather than False.
	require.NoError(t, mgr.ClearCondition(deployed))
	assert.Nil(t, mgr.GetCondition(deployed))
	top := mgr.GetTopLevelCondition()
	require.NotNil(t, top)
	assert.Equal(t, ConditionUnknown, top.Status)

	// Clearing a condition that is not stored is a no-op.
	require.NoError(t, mgr.ClearCondition(deployed))

	// Clearing every dependent returns to the no-conditions-reported state.
	require.NoError(t, mgr.ClearCondition(sinkProvided))
	top = mgr.GetTopLevelCondition()
	require.NotNil(t, top)
	assert.Equal(t, ConditionUnknown, top.Status)
	assert.Equal(t, ReasonNoConditionsReported, top.Reason)
}

func TestConditionOrderIsStable(t *testing.T) {
	set := MustNewConditionSet(ConditionReady,
		Dependent{Type: sinkProvided},
		Dependent{Type: deployed},
	)
	status := &fakeStatus{}
	mgr := set.Manage(status)

	// Mark in reverse declaration order; stored order is first-seen order.
	require.NoError(t, mgr.MarkFalse(deployed, "DeployFailed", "deployment failed"))
	require.NoError(t, mgr.MarkTrue(sinkProvided))
	require.NoError(t, mgr.MarkTrue(deployed))

	var gotOrder []ConditionType
	for _, c := range status.conditions {
		gotOrder = append(gotOrder, c.Type)
	}
	wantOrder := []ConditionType{deployed, ConditionReady, sinkProvided}
	if diff := cmp.Diff(wantOrder, gotOrder); diff != "" {
		t.Errorf("stored condition order mismatch (-want, +got):\n%s", diff)
	}
}

func TestManageNilAccessor(t *testing.T) {
	set := MustNewConditionSet(ConditionReady, Dependent{Type: sinkProvided})
	mgr := set.Manage(nil)

	require.NoError(t, mgr.MarkTrue(sinkProvided))
	assert.Nil(t, mgr.GetCondition(sinkProvided))
	assert.False(t, mgr.IsHappy())
}
