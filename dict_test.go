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

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInstantiateCopiesOps(t *testing.T) {
	ops := map[string]any{
		"map": func(f func(int) int, xs []int) []int { return xs },
	}
	d := Instantiate("slice", ops)

	// Mutating the source map after construction must not change the Dict.
	ops["fold"] = func() {}
	delete(ops, "map")

	if !d.Has("map") {
		t.Errorf("Has(map) = false, want true")
	}
	if d.Has("fold") {
		t.Errorf("Has(fold) = true, want false")
	}
}

func TestDictOpMissing(t *testing.T) {
	d := Instantiate("slice", map[string]any{"map": func() {}})

	if _, err := d.Op("map"); err != nil {
		t.Errorf("Op(map) failed: %v", err)
	}
	_, err := d.Op("append")
	if err == nil {
		t.Fatal("Op(append) succeeded, want missing capability")
	}
	if !errors.Is(err, ErrMissingCapability) {
		t.Errorf("errors.Is(err, ErrMissingCapability) = false for %v", err)
	}
	var mce *MissingCapabilityError
	if !errors.As(err, &mce) {
		t.Fatalf("error is %T, want *MissingCapabilityError", err)
	}
	if got, want := mce.Missing, []string{"append"}; !cmp.Equal(got, want) {
		t.Errorf("Missing = %v, want %v", got, want)
	}
	if got, want := mce.TypeName, "slice"; got != want {
		t.Errorf("TypeName = %q, want %q", got, want)
	}
}

func TestDictCapabilitiesSorted(t *testing.T) {
	d := Instantiate("slice", map[string]any{
		"map":    func() {},
		"fold":   func() {},
		"append": func() {},
		"empty":  func() {},
	})
	want := []string{"append", "empty", "fold", "map"}
	if d := cmp.Diff(want, d.Capabilities()); d != "" {
		t.Errorf("Capabilities() diff (-want +got):\n%v", d)
	}
}

func TestDictMarshalJSON(t *testing.T) {
	d := Instantiate("option", map[string]any{
		"map":  func() {},
		"fold": func() {},
	})
	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	got := string(data)
	for _, want := range []string{`"type":"option"`, `"capabilities":["fold","map"]`, d.ID()} {
		if !strings.Contains(got, want) {
			t.Errorf("MarshalJSON = %v, missing %v", got, want)
		}
	}
}

func TestDictIdentity(t *testing.T) {
	a := Instantiate("slice", map[string]any{"map": func() {}})
	b := Instantiate("slice", map[string]any{"map": func() {}})
	if a.ID() == "" {
		t.Error("ID() is empty, want an assigned identity")
	}
	if a.ID() == b.ID() {
		t.Errorf("two instantiations share ID %q", a.ID())
	}
}
