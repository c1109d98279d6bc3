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

// polyvet checks a dictionary manifest: for every declared binding, the
// instance must provide each operation in the required capability set.
//
// Exit code 1 means coverage gaps were found, 2 means the manifest itself
// was unreadable or malformed.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-json-experiment/json"
	"lostluck.dev/poly-go/internal/manifest"
)

// Config handles configuring the checker.
type Config struct {
	Manifest string
	JSON     bool
	Verbose  bool
}

func initFlags() *Config {
	var cfg Config
	flag.StringVar(&cfg.Manifest, "manifest", "poly.yaml", "path to the dictionary manifest")
	flag.BoolVar(&cfg.JSON, "json", false, "emit findings as JSON on stdout")
	flag.BoolVar(&cfg.Verbose, "v", false, "enable debug logging")
	return &cfg
}

func main() {
	cfg := initFlags()
	flag.Parse()

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	m, err := manifest.Load(cfg.Manifest)
	if err != nil {
		slog.Error("loading manifest", "error", err)
		os.Exit(2)
	}
	slog.Debug("manifest loaded",
		"capabilities", len(m.Capabilities),
		"instances", len(m.Instances),
		"bindings", len(m.Bindings))

	findings, err := m.Verify()
	if err != nil {
		slog.Error("verifying manifest", "error", err)
		os.Exit(2)
	}

	if cfg.JSON {
		if err := json.MarshalWrite(os.Stdout, findings); err != nil {
			slog.Error("writing report", "error", err)
			os.Exit(2)
		}
		fmt.Println()
	} else {
		for _, f := range findings {
			fmt.Printf("%s: instance %q missing %s (required by set %q)\n",
				f.Function, f.Instance, strings.Join(f.Missing, ", "), f.Requires)
		}
	}
	if len(findings) > 0 {
		os.Exit(1)
	}
	slog.Debug("manifest ok", "bindings", len(m.Bindings))
}
