//
// Copyright (C) 2025 keyrec authors
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/keyrec/keyrec
//

package future_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keyrec/keyrec/future"
)

// scripted single-shot operation, fires the recorded events on Start
type scriptedOp struct {
	onSuccess func(string)
	onFailure func(error)
	fire      func(op *scriptedOp)
	started   int
}

func (op *scriptedOp) OnSuccess(f func(string)) { op.onSuccess = f }
func (op *scriptedOp) OnFailure(f func(error))  { op.onFailure = f }

func (op *scriptedOp) Start() {
	op.started++
	op.fire(op)
}

func TestSendResolves(t *testing.T) {
	op := &scriptedOp{fire: func(op *scriptedOp) { op.onSuccess("payload") }}

	val, err := future.Send[string](op).Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "payload", val)
	assert.Equal(t, 1, op.started)
}

func TestSendRejects(t *testing.T) {
	failure := errors.New("wire broke")
	op := &scriptedOp{fire: func(op *scriptedOp) { op.onFailure(failure) }}

	val, err := future.Send[string](op).Await(context.Background())
	require.ErrorIs(t, err, failure)
	assert.Empty(t, val)
}

func TestHandlersRegisteredBeforeStart(t *testing.T) {
	// an operation that completes synchronously inside Start must still
	// settle the future, both handlers are in place by then
	op := &scriptedOp{fire: func(op *scriptedOp) {
		require.NotNil(t, op.onSuccess)
		require.NotNil(t, op.onFailure)
		op.onSuccess("early")
	}}

	val, err := future.Send[string](op).Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "early", val)
}

func TestSettledExactlyOnce(t *testing.T) {
	failure := errors.New("too late")
	op := &scriptedOp{fire: func(op *scriptedOp) {
		op.onSuccess("first")
		op.onFailure(failure)
		op.onSuccess("second")
	}}

	f := future.Send[string](op)

	val, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "first", val)

	// repeated await observes the same outcome
	val, err = f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "first", val)
}

func TestAwaitAbandonedOnCancel(t *testing.T) {
	op := &scriptedOp{fire: func(op *scriptedOp) {}}
	f := future.Send[string](op)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Await(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestFuncOperation(t *testing.T) {
	f := future.Send(future.Func(func() (int, error) {
		return 42, nil
	}))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	val, err := f.Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, val)
}

func TestFuncOperationFails(t *testing.T) {
	failure := errors.New("i/o down")
	f := future.Send(future.Func(func() (int, error) {
		return 0, failure
	}))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := f.Await(ctx)
	require.ErrorIs(t, err, failure)
}
