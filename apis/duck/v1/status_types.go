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

package v1

import (
	"github.com/rusty-jules/knative-go/apis"
)

// Conditions is an alias of the engine's Conditions so duck-typed status
// types can be declared without importing the apis package directly.
type Conditions = apis.Conditions

// Status shows how we expect folks to embed conditions in their Status field.
type Status struct {
	// ObservedGeneration is the 'Generation' of the resource that was last
	// processed by the controller. It is set by the reconciler, never by the
	// condition manager.
	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`

	// Conditions are the latest available observations of a resource's
	// current state.
	// +optional
	Conditions Conditions `json:"conditions,omitempty"`

	// Annotations is additional Status fields for the Resource to save some
	// additional State as well as convey more information to the user. This is
	// roughly akin to Annotations on any k8s resource, just the reconciler
	// conveying richer information outwards.
	// +optional
	Annotations map[string]string `json:"annotations,omitempty"`
}

var _ apis.ConditionsAccessor = (*Status)(nil)

// GetConditions implements apis.ConditionsAccessor.
func (s *Status) GetConditions() apis.Conditions {
	return s.Conditions
}

// SetConditions implements apis.ConditionsAccessor.
func (s *Status) SetConditions(c apis.Conditions) {
	s.Conditions = c
}

// GetCondition returns the condition of the given type, or nil if it is not
// set.
func (s *Status) GetCondition(t apis.ConditionType) *apis.Condition {
	for _, cond := range s.Conditions {
		if cond.Type == t {
			return &cond
		}
	}
	return nil
}
