//
// Copyright (C) 2025 keyrec authors
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/keyrec/keyrec
//

// Package future adapts single-shot, event-style operations into
// deferred values. An operation announces completion through one of two
// callbacks, the adapter turns that into a value an asynchronous caller
// awaits. Exactly one of resolve or reject happens per operation.
package future

import (
	"context"
	"sync/atomic"
)

// Operation is a pending, not-yet-executed action with event-style
// completion. Both handlers must be registered before Start, Start is
// called at most once.
type Operation[A any] interface {
	OnSuccess(func(A))
	OnFailure(func(error))
	Start()
}

// Future is a deferred value, settled exactly once with either the
// result or the error of the producing operation.
type Future[A any] struct {
	settled atomic.Bool
	signal  chan outcome[A]
}

type outcome[A any] struct {
	val A
	err error
}

// Send registers completion handlers on the operation and triggers its
// execution. Registration happens strictly before Start, a settlement
// fired from inside Start cannot be lost.
func Send[A any](op Operation[A]) *Future[A] {
	f := &Future[A]{signal: make(chan outcome[A], 1)}
	op.OnSuccess(func(val A) { f.settle(outcome[A]{val: val}) })
	op.OnFailure(func(err error) { f.settle(outcome[A]{err: err}) })
	op.Start()

	return f
}

// first settlement wins, later ones are discarded
func (f *Future[A]) settle(out outcome[A]) {
	if f.settled.CompareAndSwap(false, true) {
		f.signal <- out
	}
}

// Await blocks until the future settles and returns its outcome.
// Repeated calls observe the same outcome. Cancelling the context
// abandons the wait, it does not cancel the operation, which runs to
// completion or failure on its own.
func (f *Future[A]) Await(ctx context.Context) (A, error) {
	select {
	case out := <-f.signal:
		f.signal <- out
		return out.val, out.err
	case <-ctx.Done():
		var none A
		return none, ctx.Err()
	}
}

// Func adapts a plain call into an Operation, running it in its own
// goroutine once started. It gives synchronous client calls the
// event-style shape Send expects.
func Func[A any](f func() (A, error)) Operation[A] {
	return &funcOp[A]{f: f}
}

type funcOp[A any] struct {
	f         func() (A, error)
	onSuccess func(A)
	onFailure func(error)
}

func (op *funcOp[A]) OnSuccess(f func(A))     { op.onSuccess = f }
func (op *funcOp[A]) OnFailure(f func(error)) { op.onFailure = f }

func (op *funcOp[A]) Start() {
	go func() {
		val, err := op.f()
		if err != nil {
			op.onFailure(err)
			return
		}
		op.onSuccess(val)
	}()
}
