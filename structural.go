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

package poly

// structural.go is the static rendering of the dictionary convention.
//
// A required operation set is a method interface; an instance dictionary is
// any concrete type with those methods. Interface satisfaction is
// structural, so a type carrying more operations than required substitutes
// without ceremony, and a missing operation is a compile error rather than
// a runtime failure. Helpers below constrain on exactly the interface they
// need, which keeps their bodies from touching undeclared operations.
//
// Go has no higher kinded type parameters, so container shapes appear as
// explicit pairs: FA is the container of A, FB the container of B.

// Mapper is the {map} operation set over a container pair.
type Mapper[FA, FB, A, B any] interface {
	Map(f func(A) B, fa FA) FB
}

// Folder is the {fold} operation set: collapse a container of A into a B.
type Folder[FA, A, B any] interface {
	Fold(f func(B, A) B, init B, fa FA) B
}

// Appender is the {append} operation set: an associative combine.
type Appender[T any] interface {
	Append(a, b T) T
}

// Emptier is the {empty} operation set: the identity for Append.
type Emptier[T any] interface {
	Empty() T
}

// Monoid is the {append, empty} operation set. Append must be associative
// with Empty as its identity; that's on the instance, not checked here.
type Monoid[T any] interface {
	Appender[T]
	Emptier[T]
}

// LiftConst returns a function that replaces every element of a container
// with x, using only the supplied map operation.
func LiftConst[FA, FB, A, B any](m Mapper[FA, FB, A, B], x B) func(FA) FB {
	return func(fa FA) FB {
		return m.Map(func(A) B { return x }, fa)
	}
}

// FoldMap maps each element into a monoid and combines the results.
// It requires {fold} from the container and {append, empty} from the target.
func FoldMap[FA, A, M any](f Folder[FA, A, M], m Monoid[M], fn func(A) M, fa FA) M {
	return f.Fold(func(acc M, a A) M {
		return m.Append(acc, fn(a))
	}, m.Empty(), fa)
}

// Concat combines a slice of monoid values into one.
func Concat[T any](m Monoid[T], xs []T) T {
	acc := m.Empty()
	for _, x := range xs {
		acc = m.Append(acc, x)
	}
	return acc
}
