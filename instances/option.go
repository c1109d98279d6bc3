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

package instances

import (
	"fmt"

	"lostluck.dev/poly-go"
)

// Option is an optional value: either Some value or None.
type Option[T any] struct {
	value T
	some  bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None is the absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.some }

// Get returns the value and whether it was present.
func (o Option[T]) Get() (T, bool) { return o.value, o.some }

// UnwrapOr returns the value, or def when absent.
func (o Option[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}

func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// OptionOps is the operation set for Option[A], mapping into Option[B].
// Append keeps the first present value, with None as identity.
type OptionOps[A, B any] struct{}

var (
	_ poly.Mapper[Option[int], Option[string], int, string] = OptionOps[int, string]{}
	_ poly.Folder[Option[int], int, string]                 = OptionOps[int, string]{}
	_ poly.Monoid[Option[int]]                              = OptionOps[int, string]{}
)

// Map applies f to the value when present.
func (OptionOps[A, B]) Map(f func(A) B, o Option[A]) Option[B] {
	if !o.some {
		return None[B]()
	}
	return Some(f(o.value))
}

// Fold collapses the option: init for None, f(init, value) for Some.
func (OptionOps[A, B]) Fold(f func(B, A) B, init B, o Option[A]) B {
	if !o.some {
		return init
	}
	return f(init, o.value)
}

// Append returns the first present value.
func (OptionOps[A, B]) Append(a, b Option[A]) Option[A] {
	if a.some {
		return a
	}
	return b
}

// Empty is the Append identity, None.
func (OptionOps[A, B]) Empty() Option[A] { return None[A]() }

// OptionDict packages the option operations as an instance dictionary.
func OptionDict[A, B any](opts ...poly.Options) poly.Dict {
	var ops OptionOps[A, B]
	return poly.Instantiate("option", map[string]any{
		"map":    ops.Map,
		"fold":   ops.Fold,
		"append": ops.Append,
		"empty":  ops.Empty,
	}, opts...)
}
