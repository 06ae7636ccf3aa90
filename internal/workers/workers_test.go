// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	name     string
	runCount int
	err      error
}

func (m *mockWorker) Name() string { return m.name }

func (m *mockWorker) Run(context.Context) error {
	m.runCount++
	return m.err
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{name: "w1"}
	w2 := &mockWorker{name: "w2"}
	w3 := &mockWorker{name: "w3"}

	ws := New(w1, w2, w3)
	require.NoError(t, ws.Run(context.Background()))

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equalf(t, 1, w.runCount, "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := New()

	// Should not fail on empty workers list
	assert.NoError(t, ws.Run(context.Background()))
	assert.Zero(t, ws.Len())
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	assert.NoError(t, ws.Run(context.Background()))
}

func TestWorkers_Run_Order(t *testing.T) {
	order := []int{}

	// orderWorker records its index into the shared order slice
	newOrderWorker := func(id int) Worker {
		return &orderWorker{id: id, order: &order}
	}

	ws := New(newOrderWorker(1))
	ws.Add(newOrderWorker(2), newOrderWorker(3))
	require.NoError(t, ws.Run(context.Background()))

	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Equal(t, 3, ws.Len())
}

func TestWorkers_Run_StopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	w1 := &mockWorker{name: "contacts"}
	w2 := &mockWorker{name: "favorites", err: boom}
	w3 := &mockWorker{name: "groups"}

	err := New(w1, w2, w3).Run(context.Background())

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "favorites")
	assert.Equal(t, 1, w1.runCount)
	assert.Equal(t, 1, w2.runCount)
	assert.Zero(t, w3.runCount)
}

func TestWorkers_Run_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := &mockWorker{name: "w"}
	err := New(w).Run(ctx)

	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, w.runCount)
}

func TestWorkers_Run_MultipleRuns(t *testing.T) {
	w := &mockWorker{name: "w"}
	ws := New(w)

	for range 3 {
		require.NoError(t, ws.Run(context.Background()))
	}

	assert.Equal(t, 3, w.runCount)
}

// orderWorker is a helper that appends its ID to a shared slice on Run.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Name() string { return "order" }

func (o *orderWorker) Run(context.Context) error {
	*o.order = append(*o.order, o.id)
	return nil
}
