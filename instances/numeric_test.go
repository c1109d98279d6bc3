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

import "testing"

func TestSumOps(t *testing.T) {
	var sum SumOps[int]
	if got := sum.Append(sum.Empty(), 5); got != 5 {
		t.Errorf("Append(Empty, 5) = %v, want 5", got)
	}
	if got := sum.Append(2, 3); got != 5 {
		t.Errorf("Append(2, 3) = %v, want 5", got)
	}
}

func TestProdOps(t *testing.T) {
	var prod ProdOps[float64]
	if got := prod.Append(prod.Empty(), 2.5); got != 2.5 {
		t.Errorf("Append(Empty, 2.5) = %v, want 2.5", got)
	}
	if got := prod.Append(4, 0.5); got != 2.0 {
		t.Errorf("Append(4, 0.5) = %v, want 2", got)
	}
}

func TestNumericDicts(t *testing.T) {
	sum := SumDict[int]()
	if !sum.Has("append") || !sum.Has("empty") {
		t.Errorf("SumDict capabilities = %v, want append and empty", sum.Capabilities())
	}
	appendOp, err := sum.Op("append")
	if err != nil {
		t.Fatalf("Op(append) failed: %v", err)
	}
	if got := appendOp.(func(int, int) int)(2, 3); got != 5 {
		t.Errorf("append(2, 3) = %v, want 5", got)
	}
}
