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

	"github.com/pkg/errors"
	"lostluck.dev/poly-go/internal/polyopts"
)

// Registry collects instance dictionaries under their type names, replacing
// ad-hoc prefix conventions (arrMap, optMap, ...) with proper scoping.
//
// Registration happens during setup; afterwards the registry is read only.
// It is not synchronized: finish registering before sharing it.
type Registry struct {
	logger *slog.Logger
	dicts  map[string]Dict
}

// NewRegistry returns an empty registry. Use [Logger] to trace
// registrations and lookups.
func NewRegistry(opts ...Options) *Registry {
	var opt polyopts.Struct
	opt.Join(opts...)
	return &Registry{
		logger: opt.Logger,
		dicts:  map[string]Dict{},
	}
}

// Register adds an instance dictionary under its type name. A second
// dictionary for the same type name is an error: there is exactly one
// instance per type, and silent replacement would make dispatch depend on
// registration order.
func (r *Registry) Register(d Dict) error {
	if d.typeName == "" {
		return errors.New("poly: cannot register an anonymous dictionary")
	}
	if prev, ok := r.dicts[d.typeName]; ok {
		return errors.Errorf("poly: type %q already registered (instance %s)", d.typeName, prev.id)
	}
	r.dicts[d.typeName] = d
	if r.logger != nil {
		r.logger.Debug("registered dictionary",
			slog.String("type", d.typeName),
			slog.String("id", d.id),
			slog.Any("capabilities", d.Capabilities()))
	}
	return nil
}

// Lookup returns the dictionary registered for the type name.
func (r *Registry) Lookup(typeName string) (Dict, bool) {
	d, ok := r.dicts[typeName]
	if r.logger != nil {
		r.logger.Debug("lookup",
			slog.String("type", typeName),
			slog.Bool("found", ok))
	}
	return d, ok
}

// Dicts returns every registered dictionary, sorted by type name.
func (r *Registry) Dicts() []Dict {
	names := make([]string, 0, len(r.dicts))
	for name := range r.dicts {
		names = append(names, name)
	}
	slices.Sort(names)
	out := make([]Dict, 0, len(names))
	for _, name := range names {
		out = append(out, r.dicts[name])
	}
	return out
}
