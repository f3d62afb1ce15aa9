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
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Binding is a duck type for binding resources: resources that inject
// environment into a subject workload.
type Binding struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec BindingSpec `json:"spec"`
}

// BindingSpec specifies the subject of a Binding.
type BindingSpec struct {
	// Subject references the resource(s) whose "runtime contract" is augmented
	// by the Binding.
	Subject Reference `json:"subject"`
}

// Reference is modeled after corev1.ObjectReference, but omits fields
// unsupported by binding subjects, and permits us to extend things in
// divergent ways. The subject is identified by Name or Selector, never both.
type Reference struct {
	// Kind of the referent.
	// +optional
	Kind string `json:"kind,omitempty"`

	// APIVersion of the referent.
	// +optional
	APIVersion string `json:"apiVersion,omitempty"`

	// Namespace of the referent.
	// +optional
	Namespace string `json:"namespace,omitempty"`

	// Name of the referent. Mutually exclusive with Selector.
	// +optional
	Name string `json:"name,omitempty"`

	// Selector of the referents. Mutually exclusive with Name.
	// +optional
	Selector *metav1.LabelSelector `json:"selector,omitempty"`
}

// ObjectReference converts the Reference to a corev1.ObjectReference.
// A selector-based Reference has no single name to carry over.
func (r *Reference) ObjectReference() corev1.ObjectReference {
	ref := corev1.ObjectReference{
		Kind:       r.Kind,
		APIVersion: r.APIVersion,
		Namespace:  r.Namespace,
	}
	if r.Selector == nil {
		ref.Name = r.Name
	}
	return ref
}
