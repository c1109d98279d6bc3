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
	"slices"

	"github.com/go-json-experiment/json"
	"github.com/google/uuid"
	"lostluck.dev/poly-go/internal/polyopts"
)

// Dict is an instance dictionary: the operations one concrete type supplies,
// keyed by operation name. Build one per type with [Instantiate].
//
// A Dict is immutable after construction and safe for concurrent use. The
// zero Dict has no operations and no type name.
type Dict struct {
	typeName string
	id       string
	ops      map[string]any
}

// Instantiate builds the instance dictionary for a concrete type. The ops
// map is copied, so later mutation of the argument doesn't affect the Dict.
//
// typeName is only used for identification in errors, logs, and reports.
// Dispatch never branches on it.
func Instantiate(typeName string, ops map[string]any, opts ...Options) Dict {
	var opt polyopts.Struct
	opt.Join(opts...)

	cp := make(map[string]any, len(ops))
	for name, op := range ops {
		cp[name] = op
	}
	d := Dict{typeName: typeName, id: uuid.NewString(), ops: cp}
	if opt.Logger != nil {
		opt.Logger.Debug("instantiated dictionary",
			slog.String("type", d.typeName),
			slog.String("id", d.id),
			slog.Any("capabilities", d.Capabilities()))
	}
	return d
}

// fromMap wraps an anonymous operation map without registering an identity.
// Used for dictionaries supplied directly at call sites.
func fromMap(ops map[string]any) Dict {
	cp := make(map[string]any, len(ops))
	for name, op := range ops {
		cp[name] = op
	}
	return Dict{ops: cp}
}

// TypeName returns the concrete type this dictionary was instantiated for,
// or "" for anonymous call-site dictionaries.
func (d Dict) TypeName() string { return d.typeName }

// ID returns the instance identity assigned at construction, or "" for
// anonymous dictionaries.
func (d Dict) ID() string { return d.id }

// Has reports whether the dictionary supplies the named operation.
func (d Dict) Has(name string) bool {
	_, ok := d.ops[name]
	return ok
}

// Capabilities returns the sorted names of every operation this dictionary
// supplies.
func (d Dict) Capabilities() []string {
	names := make([]string, 0, len(d.ops))
	for name := range d.ops {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Op returns the named operation, or a [*MissingCapabilityError] if the
// dictionary doesn't supply it. There is no fallback.
func (d Dict) Op(name string) (any, error) {
	op, ok := d.ops[name]
	if !ok {
		return nil, &MissingCapabilityError{TypeName: d.typeName, Missing: []string{name}}
	}
	return op, nil
}

// dictInfo is the introspection shape for JSON output. Operations are
// function values, so only their names travel.
type dictInfo struct {
	Type         string   `json:"type"`
	ID           string   `json:"id,omitempty"`
	Capabilities []string `json:"capabilities"`
}

// MarshalJSON emits the dictionary's type name and capability names.
// Introspection only; a Dict cannot round trip through JSON.
func (d Dict) MarshalJSON() ([]byte, error) {
	return json.Marshal(dictInfo{
		Type:         d.typeName,
		ID:           d.id,
		Capabilities: d.Capabilities(),
	})
}
