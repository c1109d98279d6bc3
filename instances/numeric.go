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
	"golang.org/x/exp/constraints"
	"lostluck.dev/poly-go"
)

// SumOps is the additive monoid over a numeric type.
type SumOps[E constraints.Integer | constraints.Float] struct{}

var _ poly.Monoid[int] = SumOps[int]{}

func (SumOps[E]) Append(a, b E) E { return a + b }
func (SumOps[E]) Empty() E        { return 0 }

// SumDict packages the additive monoid as an instance dictionary.
func SumDict[E constraints.Integer | constraints.Float](opts ...poly.Options) poly.Dict {
	var ops SumOps[E]
	return poly.Instantiate("sum", map[string]any{
		"append": ops.Append,
		"empty":  ops.Empty,
	}, opts...)
}

// ProdOps is the multiplicative monoid over a numeric type.
type ProdOps[E constraints.Integer | constraints.Float] struct{}

var _ poly.Monoid[float64] = ProdOps[float64]{}

func (ProdOps[E]) Append(a, b E) E { return a * b }
func (ProdOps[E]) Empty() E        { return 1 }

// ProdDict packages the multiplicative monoid as an instance dictionary.
func ProdDict[E constraints.Integer | constraints.Float](opts ...poly.Options) poly.Dict {
	var ops ProdOps[E]
	return poly.Instantiate("prod", map[string]any{
		"append": ops.Append,
		"empty":  ops.Empty,
	}, opts...)
}
