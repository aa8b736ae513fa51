package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"noumi/internal/datasource"
	"noumi/internal/recap"
)

type fakeBuilder struct {
	mu    sync.Mutex
	calls int
	err   error
	at    []time.Time
}

func (b *fakeBuilder) Build(_ context.Context, now time.Time) (*recap.WeeklyRecap, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls++
	b.at = append(b.at, now)
	if b.err != nil {
		return nil, b.err
	}
	return &recap.WeeklyRecap{ID: "r1", WeekLabel: "06/09 - 06/15", Warnings: []string{"goal: unavailable"}}, nil
}

func (b *fakeBuilder) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}

type fakePublisher struct {
	published []string
	err       error
}

func (p *fakePublisher) PublishRecap(_ context.Context, r *recap.WeeklyRecap) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, r.ID)
	return nil
}

type fakeInvalidator struct{ resources []string }

func (i *fakeInvalidator) Invalidate(resource string) { i.resources = append(i.resources, resource) }

func TestRunOnce_Publishes(t *testing.T) {
	b := &fakeBuilder{}
	p := &fakePublisher{}
	inv := &fakeInvalidator{}
	w := NewRecapWorker(b, p, nil).WithInvalidator(inv)
	fixed := time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return fixed }

	r, err := w.RunOnce(context.Background())
	if err != nil {
		t.Fatalf("RunOnce: %v", err)
	}
	if r.ID != "r1" || len(p.published) != 1 {
		t.Fatalf("expected one published recap, got %v", p.published)
	}
	if !b.at[0].Equal(fixed) {
		t.Fatalf("builder got %v, want %v", b.at[0], fixed)
	}
	if len(inv.resources) != len(datasource.Resources) {
		t.Fatalf("expected every resource invalidated, got %v", inv.resources)
	}
}

func TestRunOnce_WithoutPublisher(t *testing.T) {
	w := NewRecapWorker(&fakeBuilder{}, nil, nil)
	if _, err := w.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce: %v", err)
	}
}

func TestRunOnce_Errors(t *testing.T) {
	w := NewRecapWorker(&fakeBuilder{err: datasource.ErrUnavailable}, &fakePublisher{}, nil)
	if _, err := w.RunOnce(context.Background()); !errors.Is(err, datasource.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}

	w = NewRecapWorker(&fakeBuilder{}, &fakePublisher{err: errors.New("channel closed")}, nil)
	r, err := w.RunOnce(context.Background())
	if err == nil || r == nil {
		t.Fatalf("expected publish error with recap, got %v, %v", r, err)
	}
}

func TestRun_TicksUntilCancelled(t *testing.T) {
	b := &fakeBuilder{}
	w := NewRecapWorker(b, &fakePublisher{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, 10*time.Millisecond) }()

	deadline := time.After(2 * time.Second)
	for b.count() < 3 {
		select {
		case <-deadline:
			t.Fatalf("expected at least 3 runs, got %d", b.count())
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestRun_InvalidInterval(t *testing.T) {
	w := NewRecapWorker(&fakeBuilder{}, nil, nil)
	if err := w.Run(context.Background(), 0); err == nil {
		t.Fatal("expected error for zero interval")
	}
}
