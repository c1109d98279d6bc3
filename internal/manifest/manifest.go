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

// Package manifest reads dictionary manifests: YAML declarations of
// capability sets, instance shapes, and the bindings between them, checked
// by the polyvet command.
package manifest

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
	"lostluck.dev/poly-go/internal/shape"
)

// Manifest declares the dictionary surface of a project.
//
//	capabilities:
//	  functor: [map]
//	  collapsible: [map, fold, append]
//	instances:
//	  slice:
//	    provides: [map, fold, append, empty]
//	bindings:
//	  - function: liftConst
//	    requires: functor
//	    instance: slice
type Manifest struct {
	// Capabilities names each required operation set.
	Capabilities map[string][]string `yaml:"capabilities"`
	// Instances names each concrete type's provided operations.
	Instances map[string]Instance `yaml:"instances"`
	// Bindings pair a polymorphic function's requirement with the
	// instance it is called with.
	Bindings []Binding `yaml:"bindings"`
}

// Instance is the declared shape of one instance dictionary.
type Instance struct {
	Provides []string `yaml:"provides"`
}

// Binding records one call-site pairing.
type Binding struct {
	Function string `yaml:"function"`
	Requires string `yaml:"requires"`
	Instance string `yaml:"instance"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading manifest %q", path)
	}
	m, err := Parse(data)
	return m, errors.WithMessagef(err, "manifest %q", path)
}

// Parse parses manifest bytes. Unknown fields are rejected, since a typoed
// "provides" would otherwise verify an empty instance.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.UnmarshalStrict(data, &m); err != nil {
		return nil, errors.Wrap(err, "parsing")
	}
	return &m, nil
}

// Finding reports one binding whose instance doesn't cover its required
// capability set.
type Finding struct {
	Function string   `json:"function"`
	Requires string   `json:"requires"`
	Instance string   `json:"instance"`
	Missing  []string `json:"missing"`
}

// Verify checks every binding. Findings report coverage gaps; the error is
// reserved for malformed manifests (bindings naming unknown capability sets
// or instances).
func (m *Manifest) Verify() ([]Finding, error) {
	var findings []Finding
	for _, b := range m.Bindings {
		required, ok := m.Capabilities[b.Requires]
		if !ok {
			return nil, errors.Errorf("binding %q requires unknown capability set %q", b.Function, b.Requires)
		}
		inst, ok := m.Instances[b.Instance]
		if !ok {
			return nil, errors.Errorf("binding %q uses unknown instance %q", b.Function, b.Instance)
		}
		provides := make(map[string]any, len(inst.Provides))
		for _, op := range inst.Provides {
			provides[op] = struct{}{}
		}
		if missing := shape.Missing(required, provides); len(missing) > 0 {
			findings = append(findings, Finding{
				Function: b.Function,
				Requires: b.Requires,
				Instance: b.Instance,
				Missing:  missing,
			})
		}
	}
	return findings, nil
}
