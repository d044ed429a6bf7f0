package links

import (
	"context"
	"sync"
	"time"

	"resumedeck-backend/internal/shared/telemetry"
)

const viewWriteTimeout = 5 * time.Second

// ViewCounter records link views off the critical render path. Writes are
// fire-and-forget: a slow or failed analytics write never delays or fails
// the public page response. Counts are best-effort; refreshes count again
// and concurrent viewers may race.
type ViewCounter struct {
	Repo Repo

	wg sync.WaitGroup
}

// NewViewCounter constructs a ViewCounter.
func NewViewCounter(repo Repo) *ViewCounter {
	return &ViewCounter{Repo: repo}
}

// Record dispatches a view-count increment for the link and returns
// immediately.
func (v *ViewCounter) Record(link PublicLink) {
	v.wg.Add(1)
	go func() {
		defer v.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), viewWriteTimeout)
		defer cancel()
		if err := v.Repo.IncrementViews(ctx, link.ID, time.Now().UTC()); err != nil {
			telemetry.Warn("link.view_write_failed", map[string]any{
				"link_id": link.ID,
				"slug":    link.Slug,
				"error":   err.Error(),
			})
		}
	}()
}

// Flush blocks until all dispatched writes have completed. Called on
// shutdown so in-flight increments are not lost.
func (v *ViewCounter) Flush() {
	v.wg.Wait()
}
