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

	"lostluck.dev/poly-go/internal/polyopts"
)

// Options configure Instantiate, Define, and NewRegistry with specific
// features. Each function takes a variadic list of options, where properties
// set in later options override the value of previously set properties.
type Options = polyopts.Options

// Name labels the polymorphic function in question, typically to make
// errors and dispatch traces easier to attribute.
func Name(name string) Options {
	return &polyopts.Struct{
		Name: name,
	}
}

// Logger directs construction and dispatch tracing to the given logger at
// debug level. Tracing never changes dispatch results.
func Logger(l *slog.Logger) Options {
	return &polyopts.Struct{
		Logger: l,
	}
}
