// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Start and Stop were called.
type mockWorker struct {
	startCount int
	stopCount  int
}

func (m *mockWorker) Start(context.Context) {
	m.startCount++
}

func (m *mockWorker) Stop() {
	m.stopCount++
}

func TestWorkers_Start_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Start(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.startCount != 1 {
			t.Errorf("worker[%d]: expected startCount=1, got %d", i, w.startCount)
		}
	}
}

func TestWorkers_Stop_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}

	ws := NewWorkers(w1, w2)
	ws.Start(context.Background())
	ws.Stop()

	for i, w := range []*mockWorker{w1, w2} {
		if w.stopCount != 1 {
			t.Errorf("worker[%d]: expected stopCount=1, got %d", i, w.stopCount)
		}
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Start(context.Background())
	ws.Stop()
}

func TestWorkers_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Start(context.Background())
	ws.Stop()
}

func TestWorkers_Order(t *testing.T) {
	order := []string{}

	// orderWorker records its id into the shared order slice
	newOrderWorker := func(id string) Worker {
		return &orderWorker{id: id, order: &order}
	}

	ws := NewWorkers(newOrderWorker("a"), newOrderWorker("b"), newOrderWorker("c"))
	ws.Start(context.Background())
	ws.Stop()

	expected := []string{"start a", "start b", "start c", "stop c", "stop b", "stop a"}
	if len(order) != len(expected) {
		t.Fatalf("expected %d calls, got %d: %v", len(expected), len(order), order)
	}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%q, got %q", i, v, order[i])
		}
	}
}

// orderWorker is a helper that appends its calls to a shared slice.
type orderWorker struct {
	id    string
	order *[]string
}

func (o *orderWorker) Start(context.Context) {
	*o.order = append(*o.order, "start "+o.id)
}

func (o *orderWorker) Stop() {
	*o.order = append(*o.order, "stop "+o.id)
}
