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

package poly_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"lostluck.dev/poly-go"
	"lostluck.dev/poly-go/instances"
)

func TestLiftConstSlice(t *testing.T) {
	// SliceOps carries map, fold, append, and empty; LiftConst requires
	// only map. The extra operations substitute structurally.
	lift5 := poly.LiftConst[[]int, []int, int](instances.SliceOps[int, int]{}, 5)
	if d := cmp.Diff([]int{5, 5, 5}, lift5([]int{1, 2, 3})); d != "" {
		t.Errorf("LiftConst(5) diff (-want +got):\n%v", d)
	}
	if got := lift5(nil); got != nil {
		t.Errorf("LiftConst(5)(nil) = %v, want nil", got)
	}
}

func TestLiftConstOption(t *testing.T) {
	lift := poly.LiftConst[instances.Option[int], instances.Option[string], int](
		instances.OptionOps[int, string]{}, "x")

	got, ok := lift(instances.Some(3)).Get()
	if !ok || got != "x" {
		t.Errorf("lift(Some(3)) = (%v, %v), want (x, true)", got, ok)
	}
	if lift(instances.None[int]()).IsSome() {
		t.Error("lift(None) is Some, want None")
	}
}

// minimalMapper supplies only map, nothing extra. Both it and the far
// larger SliceOps work with the same helper, with identical results.
type minimalMapper struct{}

func (minimalMapper) Map(f func(int) int, xs []int) []int {
	out := make([]int, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

func TestSubstitutability(t *testing.T) {
	in := []int{1, 2, 3}
	small := poly.LiftConst[[]int, []int, int](minimalMapper{}, 8)(in)
	large := poly.LiftConst[[]int, []int, int](instances.SliceOps[int, int]{}, 8)(in)
	if d := cmp.Diff(small, large); d != "" {
		t.Errorf("minimal vs larger operation set diff:\n%v", d)
	}
}

func TestFoldMapSum(t *testing.T) {
	got := poly.FoldMap[[]int, int, int](
		instances.SliceOps[int, int]{},
		instances.SumOps[int]{},
		func(x int) int { return x * x },
		[]int{1, 2, 3})
	if want := 14; got != want {
		t.Errorf("FoldMap(square, [1 2 3]) = %v, want %v", got, want)
	}
}

func TestConcatSlices(t *testing.T) {
	got := poly.Concat[[]int](instances.SliceOps[int, int]{}, [][]int{{1}, {2, 3}, nil, {4}})
	if d := cmp.Diff([]int{1, 2, 3, 4}, got); d != "" {
		t.Errorf("Concat diff (-want +got):\n%v", d)
	}
}

func TestConcatOptions(t *testing.T) {
	got := poly.Concat[instances.Option[int]](instances.OptionOps[int, int]{},
		[]instances.Option[int]{
			instances.None[int](),
			instances.Some(2),
			instances.Some(3),
		})
	if v, ok := got.Get(); !ok || v != 2 {
		t.Errorf("Concat = %v, want Some(2)", got)
	}

	none := poly.Concat[instances.Option[int]](instances.OptionOps[int, int]{}, nil)
	if none.IsSome() {
		t.Errorf("Concat(nil) = %v, want None", none)
	}
}
