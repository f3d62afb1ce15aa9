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
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	duckv1 "github.com/rusty-jules/knative-go/apis/duck/v1"
)

// SinkBinding describes a Binding that is also a Source.
// The `sink` (from the Source duck) is resolved to a URL and then projected
// into the `subject` (from the Binding duck) by augmenting the runtime
// contract of the referenced containers to have a `K_SINK` environment
// variable holding the endpoint to which to send cloud events.
type SinkBinding struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	// The desired state of the SinkBinding.
	// +required
	Spec SinkBindingSpec `json:"spec"`

	// The observed state of the SinkBinding.
	// +optional
	Status SinkBindingStatus `json:"status,omitempty"`
}

// SinkBindingSpec holds the desired state of the SinkBinding (from the
// client): the Source duck's sink and overrides, and the Binding duck's
// subject, flattened into one object.
type SinkBindingSpec struct {
	// inherits duck/v1 SourceSpec, which currently provides:
	// * Sink - a reference to an object that will resolve to a uri to use as
	//   the sink.
	// * CloudEventOverrides - overrides to control the output format and
	//   modifications of the event sent to the sink.
	duckv1.SourceSpec `json:",inline"`

	// inherits duck/v1 BindingSpec, which currently provides:
	// * Subject - a reference to the resource(s) whose "runtime contract"
	//   should be augmented by Binding implementations.
	duckv1.BindingSpec `json:",inline"`
}

// SinkBindingStatus communicates the observed state of the SinkBinding (from
// the controller).
type SinkBindingStatus struct {
	// inherits duck/v1 SourceStatus, which currently provides:
	// * ObservedGeneration
	// * Conditions
	// * SinkURI
	duckv1.SourceStatus `json:",inline"`
}

// SinkBindingList is a collection of SinkBindings.
type SinkBindingList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`

	// Items is the list of SinkBindings.
	Items []SinkBinding `json:"items"`
}
