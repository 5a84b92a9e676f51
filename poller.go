package main

import (
	"context"
	"log"
	"reflect"
	"sync"
	"time"

	"github.com/dsk-ducdn2/car-rental-app-sub001/mockdata"
)

// poller periodically fetches every mock data resource and broadcasts a
// snapshot when any of them changed.

type poller struct {
	src               mockdata.Source
	hub               *wsHub
	minRefreshSeconds int
	fetchTimeout      time.Duration
	mu                sync.Mutex
	last              *mockdata.Snapshot
}

func newPoller(src mockdata.Source, hub *wsHub, minRefreshSeconds int, fetchTimeout time.Duration) *poller {
	return &poller{
		src:               src,
		hub:               hub,
		minRefreshSeconds: minRefreshSeconds,
		fetchTimeout:      fetchTimeout,
	}
}

func (p *poller) run(ctx context.Context) {
	minInterval := time.Duration(p.minRefreshSeconds) * time.Second
	t := time.NewTimer(0)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			start := time.Now()
			p.tick(ctx)
			t.Reset(maxDuration(time.Since(start)/2, minInterval))
		}
	}
}

func (p *poller) tick(ctx context.Context) {
	cctx, cancel := context.WithTimeout(ctx, p.fetchTimeout)
	defer cancel()
	snap, err := mockdata.FetchAll(cctx, p.src)
	if err != nil {
		log.Printf("poll error: %v", err)
		return
	}
	if p.update(snap) {
		log.Printf("mock data updated at %d", snap.FetchedAt)
		p.hub.broadcast(snap)
	}
}

// update stores snap if its content differs from the previous snapshot.
// An unchanged snapshot keeps the previous FetchedAt.
func (p *poller) update(snap mockdata.Snapshot) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.last != nil && sameContent(*p.last, snap) {
		return false
	}
	p.last = &snap
	return true
}

// snapshot returns the latest snapshot, or nil before the first successful poll.
func (p *poller) snapshot() *mockdata.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.last == nil {
		return nil
	}
	s := *p.last
	return &s
}

func sameContent(a, b mockdata.Snapshot) bool {
	return reflect.DeepEqual(a.Users, b.Users) &&
		reflect.DeepEqual(a.Vehicles, b.Vehicles) &&
		reflect.DeepEqual(a.Bookings, b.Bookings) &&
		reflect.DeepEqual(a.Stats, b.Stats)
}

func maxDuration(a, b time.Duration) time.Duration {
	if a > b {
		return a
	}
	return b
}
