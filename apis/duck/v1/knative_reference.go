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
)

// KReference contains enough information to refer to another object.
// It's a trimmed down version of corev1.ObjectReference.
type KReference struct {
	// Kind of the referent.
	// +required
	Kind string `json:"kind"`

	// Namespace of the referent. This is optional; it gets defaulted to the
	// object holding it when left out.
	// +optional
	Namespace string `json:"namespace,omitempty"`

	// Name of the referent.
	// +required
	Name string `json:"name"`

	// APIVersion of the referent.
	// +optional
	APIVersion string `json:"apiVersion,omitempty"`

	// Group of the API without the version, as an alternative to APIVersion.
	// +optional
	Group string `json:"group,omitempty"`
}

// ObjectReference converts the KReference to a corev1.ObjectReference for
// collaborators that speak the core type.
func (r *KReference) ObjectReference() corev1.ObjectReference {
	return corev1.ObjectReference{
		Kind:       r.Kind,
		Namespace:  r.Namespace,
		Name:       r.Name,
		APIVersion: r.APIVersion,
	}
}
