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

	"github.com/rusty-jules/knative-go/apis"
)

// Addressable provides a generic mechanism for a custom resource definition
// to indicate a destination for message delivery.
type Addressable struct {
	// URL is the location at which the addressable resource accepts traffic.
	// +optional
	URL *apis.URL `json:"url,omitempty"`
}

// AddressStatus shows how we expect folks to embed Addressable in
// their Status field.
type AddressStatus struct {
	// Address is the part where the Addressable duck type is defined.
	// +optional
	Address *Addressable `json:"address,omitempty"`
}

// AddressableType is a skeleton type wrapping Addressable in the manner we
// expect resource writers to define it. We will typically use this type to
// deserialize Addressable ObjectReferences and access the Addressable data.
// This is not a real resource.
type AddressableType struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Status AddressStatus `json:"status"`
}
