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

package instances

import (
	"context"

	"golang.org/x/sync/errgroup"
	"lostluck.dev/poly-go"
)

// Task is a deferred computation producing a T. Nothing runs until the task
// is invoked with a context; invoking twice runs the work twice.
type Task[T any] func(ctx context.Context) (T, error)

// Resolve lifts a value into a task that always succeeds with it.
func Resolve[T any](v T) Task[T] {
	return func(context.Context) (T, error) {
		return v, nil
	}
}

// Reject is a task that always fails with err.
func Reject[T any](err error) Task[T] {
	return func(context.Context) (T, error) {
		var zero T
		return zero, err
	}
}

// AndThen sequences two tasks: run t, feed its result to f, run the result.
// Failure in t skips f.
func AndThen[A, B any](t Task[A], f func(A) Task[B]) Task[B] {
	return func(ctx context.Context) (B, error) {
		a, err := t(ctx)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a)(ctx)
	}
}

// Zip2 runs two tasks sequentially and combines their results.
func Zip2[A, B, C any](ta Task[A], tb Task[B], f func(A, B) C) Task[C] {
	return func(ctx context.Context) (C, error) {
		var zero C
		a, err := ta(ctx)
		if err != nil {
			return zero, err
		}
		b, err := tb(ctx)
		if err != nil {
			return zero, err
		}
		return f(a, b), nil
	}
}

// Par2 runs two tasks concurrently and combines their results. The first
// failure cancels the other task's context; the combined task then fails
// with that error.
func Par2[A, B, C any](ta Task[A], tb Task[B], f func(A, B) C) Task[C] {
	return func(ctx context.Context) (C, error) {
		g, ctx := errgroup.WithContext(ctx)
		var a A
		var b B
		g.Go(func() error {
			var err error
			a, err = ta(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			b, err = tb(ctx)
			return err
		})
		if err := g.Wait(); err != nil {
			var zero C
			return zero, err
		}
		return f(a, b), nil
	}
}

// TaskOps is the operation set for Task[A], mapping into Task[B].
type TaskOps[A, B any] struct{}

var _ poly.Mapper[Task[int], Task[string], int, string] = TaskOps[int, string]{}

// Map applies a pure f to the task's eventual result.
func (TaskOps[A, B]) Map(f func(A) B, t Task[A]) Task[B] {
	return func(ctx context.Context) (B, error) {
		a, err := t(ctx)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a), nil
	}
}

// TaskDict packages the task operations as an instance dictionary.
func TaskDict[A, B any](opts ...poly.Options) poly.Dict {
	var ops TaskOps[A, B]
	return poly.Instantiate("task", map[string]any{
		"map": ops.Map,
	}, opts...)
}
