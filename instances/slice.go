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

// Package instances provides ready made operation sets for common concrete
// types: slices, optional values, asynchronous tasks, and numbers.
//
// Each concrete type gets a zero sized Ops struct whose methods are the
// operations (the static form), and a Dict constructor packaging the same
// operations for call sites that assemble dictionaries at runtime.
package instances

import (
	"lostluck.dev/poly-go"
)

// SliceOps is the operation set for []A, mapping into []B.
// It supplies map, fold, append, and empty.
type SliceOps[A, B any] struct{}

var (
	_ poly.Mapper[[]int, []string, int, string] = SliceOps[int, string]{}
	_ poly.Folder[[]int, int, string]           = SliceOps[int, string]{}
	_ poly.Monoid[[]int]                        = SliceOps[int, string]{}
)

// Map applies f to each element, preserving order.
func (SliceOps[A, B]) Map(f func(A) B, xs []A) []B {
	if xs == nil {
		return nil
	}
	out := make([]B, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// Fold collapses the slice left to right, starting from init.
func (SliceOps[A, B]) Fold(f func(B, A) B, init B, xs []A) B {
	acc := init
	for _, x := range xs {
		acc = f(acc, x)
	}
	return acc
}

// Append concatenates, never aliasing either argument's backing array.
func (SliceOps[A, B]) Append(a, b []A) []A {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make([]A, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// Empty is the Append identity, the empty slice.
func (SliceOps[A, B]) Empty() []A { return nil }

// SliceDict packages the slice operations as an instance dictionary.
func SliceDict[A, B any](opts ...poly.Options) poly.Dict {
	var ops SliceOps[A, B]
	return poly.Instantiate("slice", map[string]any{
		"map":    ops.Map,
		"fold":   ops.Fold,
		"append": ops.Append,
		"empty":  ops.Empty,
	}, opts...)
}
