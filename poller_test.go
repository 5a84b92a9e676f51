package main

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dsk-ducdn2/car-rental-app-sub001/mockdata"
	"github.com/google/go-cmp/cmp"
)

// stubSource serves fixed values per resource and can be switched to fail.
type stubSource struct {
	mu     sync.Mutex
	values map[mockdata.Resource]any
	err    error
}

func newStubSource() *stubSource {
	return &stubSource{values: map[mockdata.Resource]any{
		mockdata.Users:    []any{map[string]any{"id": 1.0}},
		mockdata.Vehicles: []any{map[string]any{"id": "v-1", "lat": 10.5, "lon": 106.5}},
		mockdata.Bookings: []any{},
		mockdata.Stats:    map[string]any{"totalBookings": 42.0},
	}}
}

func (s *stubSource) Fetch(ctx context.Context, r mockdata.Resource) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.values[r], nil
}

func (s *stubSource) set(r mockdata.Resource, v any) {
	s.mu.Lock()
	s.values[r] = v
	s.mu.Unlock()
}

func TestPollerUpdate(t *testing.T) {
	p := newPoller(newStubSource(), newHub(), 1, time.Second)
	if p.snapshot() != nil {
		t.Fatal("expected no snapshot before first poll")
	}

	first := mockdata.Snapshot{Stats: map[string]any{"totalBookings": 1.0}, FetchedAt: 100}
	if !p.update(first) {
		t.Fatal("first snapshot should count as a change")
	}

	same := first
	same.FetchedAt = 200
	if p.update(same) {
		t.Error("identical content should not count as a change")
	}
	if got := p.snapshot().FetchedAt; got != 100 {
		t.Errorf("unchanged snapshot should keep FetchedAt 100, got %d", got)
	}

	changed := mockdata.Snapshot{Stats: map[string]any{"totalBookings": 2.0}, FetchedAt: 300}
	if !p.update(changed) {
		t.Error("changed stats should count as a change")
	}
	if diff := cmp.Diff(changed, *p.snapshot()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestPollerTickKeepsSnapshotOnError(t *testing.T) {
	src := newStubSource()
	p := newPoller(src, newHub(), 1, time.Second)
	p.tick(context.Background())
	before := p.snapshot()
	if before == nil {
		t.Fatal("expected snapshot after successful tick")
	}

	src.mu.Lock()
	src.err = errors.New("upstream down")
	src.mu.Unlock()
	p.tick(context.Background())

	if diff := cmp.Diff(before, p.snapshot()); diff != "" {
		t.Errorf("failed tick changed snapshot (-before +after):\n%s", diff)
	}
}

func TestPollerRunStopsOnCancel(t *testing.T) {
	p := newPoller(newStubSource(), newHub(), 1, time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for p.snapshot() == nil {
		select {
		case <-deadline:
			t.Fatal("poller never produced a snapshot")
		case <-time.After(10 * time.Millisecond):
		}
	}
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not stop after cancel")
	}
}
