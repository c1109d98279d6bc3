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
	"fmt"

	"lostluck.dev/poly-go"
	"lostluck.dev/poly-go/instances"
)

// One definition of liftConst serves every type with a map operation; the
// caller decides which implementation runs by handing over the dictionary.
func Example() {
	liftConst := poly.Define1("map",
		func(mapOp func(func(int) int, []int) []int, x int) func([]int) []int {
			return func(xs []int) []int {
				return mapOp(func(int) int { return x }, xs)
			}
		}, poly.Name("liftConst"))

	fives, err := liftConst.Call(instances.SliceDict[int, int](), 5)
	if err != nil {
		panic(err)
	}
	fmt.Println(fives([]int{1, 2, 3}))
	// Output: [5 5 5]
}

// The static layer gets the same result with no runtime machinery at all:
// interface satisfaction stands in for dictionary validation.
func Example_static() {
	lift := poly.LiftConst[[]int, []int, int](instances.SliceOps[int, int]{}, 5)
	fmt.Println(lift([]int{1, 2, 3}))
	// Output: [5 5 5]
}
