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
	duckv1 "github.com/rusty-jules/knative-go/apis/duck/v1"
)

const (
	// ReasonNewObservedGenFailure is the reason used while the controller has
	// observed a new generation but has not resolved its sink yet.
	ReasonNewObservedGenFailure = "NewObservedGenFailure"
)

// sinkBindingCondSet declares the SinkBinding conditions: Ready is derived
// from SinkProvided.
var sinkBindingCondSet = apis.MustNewConditionSet(apis.ConditionReady,
	apis.Dependent{Type: duckv1.SourceConditionSinkProvided},
)

var _ apis.ConditionDeclarer = (*SinkBinding)(nil)

// GetConditionSet retrieves the condition set for this resource.
func (*SinkBinding) GetConditionSet() *apis.ConditionSet {
	return sinkBindingCondSet
}

// GetCondition returns the condition currently associated with the given
// type, or nil.
func (sbs *SinkBindingStatus) GetCondition(t apis.ConditionType) *apis.Condition {
	return sinkBindingCondSet.Manage(sbs).GetCondition(t)
}

// InitializeConditions populates the derived Ready condition, Unknown with
// reason NoConditionsReported, when no condition is present yet. Safe to call
// at the start of every reconciliation pass.
func (sbs *SinkBindingStatus) InitializeConditions() {
	sinkBindingCondSet.Manage(sbs).InitializeConditions()
}

// MarkSink records the resolved sink URI and marks SinkProvided True; Ready
// follows through the derived recomputation.
func (sbs *SinkBindingStatus) MarkSink(uri *apis.URL) error {
	return sbs.SourceStatus.MarkSink(sinkBindingCondSet.Manage(sbs), uri)
}

// MarkNoSink clears the sink URI and marks SinkProvided False with the given
// reason and message.
func (sbs *SinkBindingStatus) MarkNoSink(reason, message string) error {
	return sbs.SourceStatus.MarkNoSink(sinkBindingCondSet.Manage(sbs), reason, message)
}

// MarkSinkUnknown marks SinkProvided Unknown, typically with reason
// ReasonNewObservedGenFailure when a new generation has been observed but its
// sink has not been resolved yet.
func (sbs *SinkBindingStatus) MarkSinkUnknown(reason, message string) error {
	return sinkBindingCondSet.Manage(sbs).MarkUnknown(duckv1.SourceConditionSinkProvided, reason, message)
}

// IsReady returns true if the SinkBinding's Ready condition is True.
func (sbs *SinkBindingStatus) IsReady() bool {
	return sinkBindingCondSet.Manage(sbs).IsHappy()
}
