package mockdata

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// Snapshot holds one decoded copy of every resource.
type Snapshot struct {
	Users     any   `json:"users"`
	Vehicles  any   `json:"vehicles"`
	Bookings  any   `json:"bookings"`
	Stats     any   `json:"stats"`
	FetchedAt int64 `json:"fetchedAt"`
}

// FetchAll fetches the four resources from src concurrently. The first
// failure cancels the outstanding requests and is returned.
func FetchAll(ctx context.Context, src Source) (Snapshot, error) {
	var snap Snapshot
	dst := map[Resource]*any{
		Users:    &snap.Users,
		Vehicles: &snap.Vehicles,
		Bookings: &snap.Bookings,
		Stats:    &snap.Stats,
	}
	g, gctx := errgroup.WithContext(ctx)
	for _, r := range Resources() {
		r := r
		out := dst[r]
		g.Go(func() error {
			v, err := src.Fetch(gctx, r)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", r, err)
			}
			*out = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	snap.FetchedAt = time.Now().UnixMilli()
	return snap, nil
}

// FetchAll fetches every resource concurrently through c.
func (c *Client) FetchAll(ctx context.Context) (Snapshot, error) {
	return FetchAll(ctx, c)
}
