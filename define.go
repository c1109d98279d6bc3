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
	"log/slog"
	"reflect"

	"github.com/pkg/errors"
	"lostluck.dev/poly-go/internal/polyopts"
	"lostluck.dev/poly-go/internal/shape"
)

// Caps is the ordered set of operation names a polymorphic function
// requires from its caller. Declared once at definition time.
type Caps []string

// Missing returns every name in the set the dictionary doesn't supply,
// in declaration order.
func (c Caps) Missing(d Dict) []string {
	var missing []string
	for _, name := range c {
		if !d.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// View is the restricted dictionary a polymorphic function's body receives.
// It exposes exactly the operations the function declared; asking for
// anything else is a bug in the body and panics with [*CapabilityLeakError].
// Extra operations the caller's dictionary happens to carry are invisible.
type View struct {
	fn   string
	caps Caps
	d    Dict
}

// Op returns the named operation. The name must be in the declared set;
// presence in the caller's dictionary was validated before the body ran.
func (v View) Op(name string) any {
	for _, declared := range v.caps {
		if name == declared {
			return v.d.ops[name]
		}
	}
	panic(&CapabilityLeakError{Func: v.fn, Op: name, Declared: v.caps})
}

// Use fetches an operation from the view as its concrete function type.
//
//	mapOp := poly.Use[func(func(int) int, []int) []int](v, "map")
func Use[F any](v View, name string) F {
	return v.Op(name).(F)
}

// Func is a polymorphic function over one implicit type, built by [Define].
// The body never sees which concrete dictionary was supplied, only the
// operations it declared, so it cannot branch on instance identity.
type Func[A, R any] struct {
	name   string
	caps   Caps
	body   func(View, A) R
	logger *slog.Logger
}

// Define builds a polymorphic function requiring the given operation set.
// The body must invoke operations through its [View] parameter only.
//
// Use [Name] to label the function in errors and logs.
func Define[A, R any](caps Caps, body func(View, A) R, opts ...Options) Func[A, R] {
	var opt polyopts.Struct
	opt.Join(opts...)
	return Func[A, R]{name: opt.Name, caps: caps, body: body, logger: opt.Logger}
}

// Caps returns the operation set the function was defined with.
func (f Func[A, R]) Caps() Caps { return f.caps }

// Call invokes the function with an explicit dictionary.
//
// dict may be a [Dict], a raw map[string]any, a struct whose exported
// function fields are the operations, or — when the function requires
// exactly one operation — the bare operation value itself.
//
// Every required operation is checked before the body runs. A dictionary
// missing any of them fails with [*MissingCapabilityError] naming all
// absent operations; nothing is ever substituted.
func (f Func[A, R]) Call(dict any, arg A) (R, error) {
	var zero R
	d, err := f.coerce(dict)
	if err != nil {
		return zero, err
	}
	if missing := f.caps.Missing(d); len(missing) > 0 {
		return zero, &MissingCapabilityError{Func: f.name, TypeName: d.typeName, Missing: missing}
	}
	if f.logger != nil {
		f.logger.Debug("dispatch",
			slog.String("func", f.name),
			slog.String("type", d.typeName),
			slog.Any("capabilities", []string(f.caps)))
	}
	return f.body(View{fn: f.name, caps: f.caps, d: d}, arg), nil
}

func (f Func[A, R]) coerce(dict any) (Dict, error) {
	d, err := coerceDict(dict)
	if err == nil || len(f.caps) != 1 {
		return d, errors.WithMessagef(err, "calling %q", f.name)
	}
	// Single capability shorthand: the bare operation stands in for a one
	// entry dictionary.
	if reflect.ValueOf(dict).Kind() != reflect.Func {
		return Dict{}, errors.WithMessagef(err, "calling %q", f.name)
	}
	return fromMap(map[string]any{f.caps[0]: dict}), nil
}

// coerceDict converts the accepted call-site dictionary forms to a Dict.
func coerceDict(dict any) (Dict, error) {
	switch d := dict.(type) {
	case Dict:
		return d, nil
	case map[string]any:
		return fromMap(d), nil
	case nil:
		return Dict{}, errors.New("nil dictionary")
	}
	rv := reflect.ValueOf(dict)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Struct {
		ops, err := shape.Ops(dict)
		if err != nil {
			return Dict{}, err
		}
		return fromMap(ops), nil
	}
	return Dict{}, errors.Errorf("unsupported dictionary type %T", dict)
}

// Func1 is a polymorphic function requiring exactly one operation, built by
// [Define1]. Its body receives the operation directly as its function type,
// skipping the dictionary indirection.
type Func1[F, A, R any] struct {
	op     string
	name   string
	body   func(F, A) R
	logger *slog.Logger
}

// Define1 builds a polymorphic function over a single operation. The body
// receives the operation itself, already at its concrete function type F.
//
// Behavior is identical to Define(Caps{op}, ...) with a one entry
// dictionary; Define1 only removes the boilerplate for the common case.
func Define1[F, A, R any](op string, body func(F, A) R, opts ...Options) Func1[F, A, R] {
	var opt polyopts.Struct
	opt.Join(opts...)
	return Func1[F, A, R]{op: op, name: opt.Name, body: body, logger: opt.Logger}
}

// Caps returns the single-operation set the function was defined with.
func (f Func1[F, A, R]) Caps() Caps { return Caps{f.op} }

// Call invokes the function. dict may be the bare operation (of type F), a
// [Dict], a map[string]any, or a struct of operation fields. The two call
// forms — bare operation and one entry dictionary — behave identically.
func (f Func1[F, A, R]) Call(dict any, arg A) (R, error) {
	var zero R
	if op, ok := dict.(F); ok {
		f.logDispatch("")
		return f.body(op, arg), nil
	}
	d, err := coerceDict(dict)
	if err != nil {
		return zero, errors.WithMessagef(err, "calling %q", f.name)
	}
	raw, ok := d.ops[f.op]
	if !ok {
		return zero, &MissingCapabilityError{Func: f.name, TypeName: d.typeName, Missing: []string{f.op}}
	}
	op, ok := raw.(F)
	if !ok {
		return zero, errors.Errorf("calling %q: operation %q is %T, not %v",
			f.name, f.op, raw, reflect.TypeOf((*F)(nil)).Elem())
	}
	f.logDispatch(d.typeName)
	return f.body(op, arg), nil
}

func (f Func1[F, A, R]) logDispatch(typeName string) {
	if f.logger == nil {
		return
	}
	f.logger.Debug("dispatch",
		slog.String("func", f.name),
		slog.String("type", typeName),
		slog.Any("capabilities", []string{f.op}))
}
