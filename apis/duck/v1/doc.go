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

// Package v1 holds the duck-typed status shapes resource-specific API types
// embed by composition: the generic Status envelope, the Source shapes with
// their sink handling, references, bindings, and addressability. Domain
// status types embed these structures and implement their mark operations in
// terms of the generic condition engine in the apis package.
package v1
