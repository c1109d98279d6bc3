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

// Package shape derives operation maps from Go values by reflection, and
// describes operation signatures for reports.
package shape

import (
	"reflect"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Ops derives an operation map from a struct value or pointer.
//
// Exported function fields become operations, as do exported methods; a
// field and a method with the same derived name resolve to the field.
// Operation names are the Go names with the first rune lowered, so a Map
// field or method becomes the "map" operation. Nil function fields are
// skipped entirely rather than mapped to a nil operation, so an unset field
// surfaces as a missing capability instead of a nil call.
func Ops(v any) (map[string]any, error) {
	rv := reflect.ValueOf(v)
	ev := rv
	if ev.Kind() == reflect.Pointer {
		ev = ev.Elem()
	}
	if ev.Kind() != reflect.Struct {
		return nil, errors.Errorf("shape: %T is not a struct", v)
	}
	ops := map[string]any{}

	// Methods first, from the original value so pointer receivers count.
	rt := rv.Type()
	for i := 0; i < rt.NumMethod(); i++ {
		m := rt.Method(i)
		if !m.IsExported() {
			continue
		}
		ops[opName(m.Name)] = rv.Method(i).Interface()
	}

	et := ev.Type()
	for i := 0; i < ev.NumField(); i++ {
		sf := et.Field(i)
		if !sf.IsExported() || sf.Type.Kind() != reflect.Func {
			continue
		}
		fv := ev.Field(i)
		if fv.IsNil() {
			continue
		}
		ops[opName(sf.Name)] = fv.Interface()
	}

	if len(ops) == 0 {
		return nil, errors.Errorf("shape: %T has no operation fields or methods", v)
	}
	return ops, nil
}

// opName lowers the first rune of a Go field or method name.
func opName(goName string) string {
	r, size := utf8.DecodeRuneInString(goName)
	return string(unicode.ToLower(r)) + goName[size:]
}

// Missing returns the required names absent from ops, in required order.
func Missing(required []string, ops map[string]any) []string {
	var missing []string
	for _, name := range required {
		if _, ok := ops[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// Signature describes one operation's function shape for reports.
type Signature struct {
	Name string   `json:"name"`
	In   []string `json:"in,omitempty"`
	Out  []string `json:"out,omitempty"`
}

// Describe reports the signature of an operation value. Non-function
// operations (monoid constants and the like) get a single Out entry.
func Describe(name string, op any) Signature {
	sig := Signature{Name: name}
	rt := reflect.TypeOf(op)
	if rt == nil {
		return sig
	}
	if rt.Kind() != reflect.Func {
		sig.Out = []string{rt.String()}
		return sig
	}
	for i := 0; i < rt.NumIn(); i++ {
		sig.In = append(sig.In, rt.In(i).String())
	}
	for i := 0; i < rt.NumOut(); i++ {
		sig.Out = append(sig.Out, rt.Out(i).String())
	}
	return sig
}
