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

// ConditionsAccessor is implemented by status types that hold a Conditions
// collection. ConditionSet.Manage binds a ConditionManager through this seam,
// so resource-specific status types only need to embed a Conditions field.
type ConditionsAccessor interface {
	SetConditions(Conditions)
	GetConditions() Conditions
}

// ConditionDeclarer is implemented by resource types that declare their own
// condition shape. Generic reconciler plumbing uses it to manage the status
// of any conforming resource without knowing its concrete type.
type ConditionDeclarer interface {
	GetConditionSet() *ConditionSet
}
