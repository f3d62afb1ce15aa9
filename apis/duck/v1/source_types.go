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
	"strings"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/rusty-jules/knative-go/apis"
)

const (
	// SourceConditionSinkProvided has status True when the source has been
	// configured with a sink target that resolved to a URI.
	SourceConditionSinkProvided apis.ConditionType = "SinkProvided"
)

// SourceConditionSet is the baseline condition declaration for Source kinds:
// Ready derived from SinkProvided. Kinds with additional dependents declare
// their own set; the SourceStatus mark helpers work against any set that
// declares SinkProvided.
var SourceConditionSet = apis.MustNewConditionSet(apis.ConditionReady,
	apis.Dependent{Type: SourceConditionSinkProvided},
)

// Source is an Addressable resource that produces events to a sink.
type Source struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   SourceSpec   `json:"spec"`
	Status SourceStatus `json:"status"`
}

// SourceSpec shows how we expect folks to embed a sink in their Spec field.
type SourceSpec struct {
	// Sink is a reference to an object that will resolve to a uri to use as
	// the sink.
	// +optional
	Sink *Destination `json:"sink,omitempty"`

	// CloudEventOverrides defines overrides to control the output format and
	// modifications of the event sent to the sink.
	// +optional
	CloudEventOverrides *CloudEventOverrides `json:"ceOverrides,omitempty"`
}

// Destination represents a target of an invocation over HTTP. Exactly one of
// Ref and URI should be set; relative URIs are resolved against the base URI
// retrieved from Ref by an external resolver.
type Destination struct {
	// Ref points to an Addressable.
	// +optional
	Ref *KReference `json:"ref,omitempty"`

	// URI can be an absolute URL (non-empty scheme and non-empty host)
	// pointing to the target or a relative URI.
	// +optional
	URI *apis.URL `json:"uri,omitempty"`
}

// DestinationFromRef constructs a Destination targeting the referenced
// Addressable. A Group on the reference is folded into the APIVersion unless
// the APIVersion already carries a group.
func DestinationFromRef(ref KReference) *Destination {
	apiVersion := ref.APIVersion
	if ref.Group != "" && !strings.Contains(apiVersion, "/") {
		if apiVersion != "" {
			apiVersion = ref.Group + "/" + apiVersion
		}
	}
	return &Destination{
		Ref: &KReference{
			Kind:       ref.Kind,
			Namespace:  ref.Namespace,
			Name:       ref.Name,
			APIVersion: apiVersion,
		},
	}
}

// DestinationFromURI constructs a Destination targeting the given URI.
func DestinationFromURI(uri *apis.URL) *Destination {
	return &Destination{URI: uri}
}

// CloudEventOverrides defines arguments for a Source that control the output
// format of the CloudEvents produced by the Source.
type CloudEventOverrides struct {
	// Extensions specify what attributes are added or overridden on the
	// outbound event. Each `Extensions` key-value pair is set on the event as
	// an attribute extension independently.
	// +optional
	Extensions map[string]string `json:"extensions,omitempty"`
}

// CloudEventAttributes specifies the attributes that a Source uses as part of
// its CloudEvents.
type CloudEventAttributes struct {
	// Type refers to the CloudEvent type attribute.
	// +optional
	Type string `json:"type,omitempty"`

	// Source is the CloudEvents source attribute.
	// +optional
	Source string `json:"source,omitempty"`
}

// SourceStatus shows how we expect folks to embed a sink in their Status
// field.
type SourceStatus struct {
	// inherits Status, which currently provides:
	// * ObservedGeneration - the 'Generation' of the resource that was last
	//   processed by the controller.
	// * Conditions - the latest available observations of a resource's
	//   current state.
	Status `json:",inline"`

	// SinkURI is the current active sink URI that has been configured for the
	// Source.
	// +optional
	SinkURI *apis.URL `json:"sinkUri,omitempty"`

	// CloudEventAttributes are the specific attributes that the Source uses
	// as part of its CloudEvents.
	// +optional
	CloudEventAttributes []CloudEventAttributes `json:"ceAttributes,omitempty"`
}

// IsReady returns true if the resource's Ready condition is True.
func (ss *SourceStatus) IsReady() bool {
	return ss.GetCondition(apis.ConditionReady).IsTrue()
}

// MarkSink records the resolved sink URI and marks SinkProvided True through
// the kind's condition manager. The manager must be bound to a set declaring
// SinkProvided as a dependent.
func (ss *SourceStatus) MarkSink(mgr apis.ConditionManager, uri *apis.URL) error {
	if err := mgr.MarkTrue(SourceConditionSinkProvided); err != nil {
		return err
	}
	ss.SinkURI = uri
	return nil
}

// MarkNoSink clears the sink URI and marks SinkProvided False.
func (ss *SourceStatus) MarkNoSink(mgr apis.ConditionManager, reason, message string) error {
	if err := mgr.MarkFalse(SourceConditionSinkProvided, reason, message); err != nil {
		return err
	}
	ss.SinkURI = nil
	return nil
}
