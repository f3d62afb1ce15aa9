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
)

// ConditionType is a camel-cased condition type.
type ConditionType string

const (
	// ConditionReady specifies that the resource is ready.
	// For long-running resources.
	ConditionReady ConditionType = "Ready"

	// ConditionSucceeded specifies that the resource has finished.
	// For resources which run to completion.
	ConditionSucceeded ConditionType = "Succeeded"
)

// ConditionStatus expresses the current state of a condition.
// Its values mirror the corev1.ConditionStatus constants so that conditions
// serialize with the de-facto Kubernetes condition shape.
type ConditionStatus string

const (
	// ConditionTrue means a resource is in the condition.
	ConditionTrue ConditionStatus = "True"

	// ConditionFalse means a resource is not in the condition.
	ConditionFalse ConditionStatus = "False"

	// ConditionUnknown means the controller can't decide if a resource is
	// in the condition or not.
	ConditionUnknown ConditionStatus = "Unknown"
)

// ConditionSeverity expresses the severity of a condition type failing.
type ConditionSeverity string

const (
	// ConditionSeverityError specifies that a failure of a condition type
	// should be viewed as an error. Error-severity dependents gate the
	// top-level condition.
	ConditionSeverityError ConditionSeverity = "Error"

	// ConditionSeverityWarning specifies that a failure of a condition type
	// should be viewed as a warning, but that things could still work.
	// Warning-severity dependents never degrade the top-level condition.
	ConditionSeverityWarning ConditionSeverity = "Warning"
)

// Condition defines a readiness condition for a resource.
// See: https://github.com/kubernetes/community/blob/master/contributors/devel/sig-architecture/api-conventions.md#typical-status-properties
type Condition struct {
	// Type of condition.
	// +required
	Type ConditionType `json:"type"`

	// Status of the condition, one of True, False, Unknown.
	// +required
	Status ConditionStatus `json:"status"`

	// Severity with which to treat failures of this type of condition.
	// +optional
	Severity ConditionSeverity `json:"severity,omitempty"`

	// LastTransitionTime is the last time the condition transitioned from one
	// status to another. Updating the reason or message of a condition without
	// changing its status does not move this timestamp.
	// +optional
	LastTransitionTime metav1.Time `json:"lastTransitionTime,omitempty"`

	// Reason is a one-word CamelCase reason for the condition's last transition.
	// +optional
	Reason string `json:"reason,omitempty"`

	// Message is a human readable message indicating details about the transition.
	// +optional
	Message string `json:"message,omitempty"`
}

// NewCondition returns a Condition of the given shape stamped with the
// current time.
func NewCondition(t ConditionType, status ConditionStatus, severity ConditionSeverity, reason, message string) Condition {
	return Condition{
		Type:               t,
		Status:             status,
		Severity:           severity,
		LastTransitionTime: metav1.Now(),
		Reason:             reason,
		Message:            message,
	}
}

// IsTrue returns true if the condition's status is True.
func (c *Condition) IsTrue() bool {
	return c != nil && c.Status == ConditionTrue
}

// IsFalse returns true if the condition's status is False.
func (c *Condition) IsFalse() bool {
	return c != nil && c.Status == ConditionFalse
}

// IsUnknown returns true if the condition's status is Unknown.
// A nil condition is considered Unknown, matching how the manager treats
// dependents that have never been marked.
func (c *Condition) IsUnknown() bool {
	return c == nil || c.Status == ConditionUnknown
}

// Conditions is the schema for the conditions portion of a status.
// Order is first-seen order and is preserved across updates so that
// serialized statuses diff cleanly.
type Conditions []Condition
