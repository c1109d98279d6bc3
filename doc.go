// Licensed to the Apache Software Foundation (ASF) under one or more
// contributor license agreements.  See the NOTICE file distributed with
// this work for additional information regarding copyright ownership.
// The ASF licenses this file to You under the Apache License, Version 2.0
// (the "License"); you may not use this file except in compliance with
// the License.  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package poly is an experimental library exploring generics ergonomics for
// dictionary passing style polymorphism: one function definition that works
// over multiple unrelated concrete types, with the "which implementation"
// decision made by an explicit caller supplied argument rather than implicit
// resolution.
//
// It exists to explore how far Go's structural typing can carry type class
// style programs without a trait system.
//
// There are two renderings of the same convention.
//
// The static layer expresses a required operation set as a small method
// interface ([Mapper], [Folder], [Monoid], ...). Concrete operation sets like
// [lostluck.dev/poly-go/instances.SliceOps] implement many methods; interface
// satisfaction ignores the extras, so a larger operation set substitutes
// freely where a smaller one is required, and a missing operation is a
// compile error. Helpers such as [LiftConst] and [FoldMap] are written
// against exactly the interface they need, so they cannot reach operations
// they didn't declare.
//
// The dynamic layer carries operations in a [Dict], built once per concrete
// type with [Instantiate] and immutable afterwards. Polymorphic functions are
// built with [Define] (or [Define1] for a single operation), which records
// the operation names the body may use. Invocation validates the supplied
// dictionary up front: a missing operation fails with
// [*MissingCapabilityError] and never substitutes a default, while extra
// entries are invisible to the body and change nothing.
//
// Things that are different from doing this by hand with plain maps:
// - Required operations are declared once, not discovered by key errors.
// - Dictionaries are immutable after construction.
// - The body only sees the operations it declared.
// - Missing operations fail before the body runs, naming every absent one.
package poly
