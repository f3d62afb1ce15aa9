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

// Package apis contains the condition-management engine shared by resource
// status types: the Condition schema, the per-kind ConditionSet declaration,
// and the ConditionManager that marks dependent conditions and derives the
// top-level condition from them. The package is pure in-memory state
// transformation; it performs no I/O and holds no global state.
package apis
