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

// Package trace is a slog.Handler that delivers log records as structured
// events on a channel, so tests can assert on dispatch tracing without
// scraping text output.
package trace

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/jba/slog/withsupport"
)

// Event is one captured log record with its attributes flattened into
// nested maps by group.
type Event struct {
	Time    time.Time
	Level   slog.Level
	Message string
	Source  string
	Attrs   map[string]any
}

// Handler sends every handled record to its channel as an [Event].
// Sends block when the channel is full; size the buffer for the test.
type Handler struct {
	out   chan<- Event
	level slog.Leveler
	goa   *withsupport.GroupOrAttrs
}

var _ slog.Handler = (*Handler)(nil)

// New returns a Handler delivering events to out. A nil level captures
// everything from debug up.
func New(out chan<- Event, level slog.Leveler) *Handler {
	return &Handler{out: out, level: level}
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	min := slog.LevelDebug
	if h.level != nil {
		min = h.level.Level()
	}
	return l >= min
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.goa = h.goa.WithGroup(name)
	return &h2
}

// WithAttrs implements slog.Handler.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	h2.goa = h.goa.WithAttrs(attrs)
	return &h2
}

// Handle implements slog.Handler.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	ev := Event{
		Time:    r.Time,
		Level:   r.Level,
		Message: r.Message,
		Attrs:   map[string]any{},
	}
	if r.PC != 0 {
		fs := runtime.CallersFrames([]uintptr{r.PC})
		f, _ := fs.Next()
		ev.Source = fmt.Sprintf("%s:%d", f.File, f.Line)
	}
	groups := h.goa.Apply(func(gs []string, a slog.Attr) {
		set(ev.Attrs, gs, a)
	})
	r.Attrs(func(a slog.Attr) bool {
		set(ev.Attrs, groups, a)
		return true
	})
	h.out <- ev
	return nil
}

// set records attr a under the given group path, expanding group valued
// attrs and dropping the cases handlers must ignore (zero attrs, empty
// groups, keyless values).
func set(m map[string]any, groups []string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	for _, g := range groups {
		m = subMap(m, g)
	}
	if a.Value.Kind() == slog.KindGroup {
		gas := a.Value.Group()
		if len(gas) == 0 {
			return
		}
		if a.Key != "" {
			m = subMap(m, a.Key)
		}
		for _, ga := range gas {
			set(m, nil, ga)
		}
		return
	}
	if a.Key == "" {
		return
	}
	m[a.Key] = a.Value.Any()
}

func subMap(m map[string]any, key string) map[string]any {
	if sub, ok := m[key].(map[string]any); ok {
		return sub
	}
	sub := map[string]any{}
	m[key] = sub
	return sub
}
