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
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrMissingCapability is matched by errors.Is for any
// [MissingCapabilityError], regardless of which operations were absent.
var ErrMissingCapability = errors.New("poly: missing capability")

// MissingCapabilityError reports that a dictionary lacked one or more
// operations a polymorphic function requires. All absent names are
// collected, not just the first.
type MissingCapabilityError struct {
	// Func is the name of the polymorphic function, if it was given one.
	Func string
	// TypeName is the dictionary's concrete type name, if known.
	TypeName string
	// Missing holds every required operation absent from the dictionary.
	Missing []string
}

func (e *MissingCapabilityError) Error() string {
	var b strings.Builder
	b.WriteString("poly: missing capability ")
	b.WriteString(strings.Join(e.Missing, ", "))
	if e.TypeName != "" {
		fmt.Fprintf(&b, " in dictionary %q", e.TypeName)
	}
	if e.Func != "" {
		fmt.Fprintf(&b, " required by %q", e.Func)
	}
	return b.String()
}

// Is makes errors.Is(err, ErrMissingCapability) succeed.
func (e *MissingCapabilityError) Is(target error) bool {
	return target == ErrMissingCapability
}

// CapabilityLeakError is the panic value produced when a polymorphic
// function's body reaches for an operation outside the set it declared.
// This is a bug in the body, not an input condition, so it is not returned
// as an error. The static layer makes it unrepresentable instead.
type CapabilityLeakError struct {
	// Func is the name of the offending polymorphic function, if any.
	Func string
	// Op is the undeclared operation the body asked for.
	Op string
	// Declared is the operation set the body was defined with.
	Declared Caps
}

func (e *CapabilityLeakError) Error() string {
	name := e.Func
	if name == "" {
		name = "polymorphic function"
	}
	return fmt.Sprintf("poly: %s used operation %q outside its declared set [%s]",
		name, e.Op, strings.Join(e.Declared, " "))
}
