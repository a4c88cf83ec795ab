// Package ticker drives the periodic recomputation of the Vedic clock. The
// calculation itself is pure; this package only supplies "now", holds the
// latest snapshot for readers, and forwards snapshots to the archive on a
// coarser cadence.
package ticker

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/chandrakala/vedicclock/pkg/vedictime"
)

// Holder stores the latest snapshot with lock-free reads. A nil snapshot
// means nothing has been computed yet.
type Holder struct {
	current atomic.Pointer[vedictime.Snapshot]
}

// Latest returns the most recent snapshot, or nil before the first tick.
func (h *Holder) Latest() *vedictime.Snapshot {
	return h.current.Load()
}

// Publish replaces the current snapshot. Readers holding the previous
// snapshot keep a consistent view; snapshots are never mutated in place.
func (h *Holder) Publish(snap *vedictime.Snapshot) {
	h.current.Store(snap)
}

// Ticker recomputes the snapshot on a fixed cadence.
type Ticker struct {
	location     vedictime.Location
	interval     time.Duration
	holder       *Holder
	archive      func(*vedictime.Snapshot) error
	archiveEvery time.Duration
	logger       *zap.SugaredLogger
}

// New creates a ticker for the given observer. archive may be nil when no
// archive database is configured; archiveEvery is ignored in that case.
func New(location vedictime.Location, interval time.Duration, archive func(*vedictime.Snapshot) error, archiveEvery time.Duration, logger *zap.SugaredLogger) *Ticker {
	return &Ticker{
		location:     location,
		interval:     interval,
		holder:       &Holder{},
		archive:      archive,
		archiveEvery: archiveEvery,
		logger:       logger,
	}
}

// Holder returns the snapshot holder readers should consume.
func (t *Ticker) Holder() *Holder {
	return t.holder
}

// Run computes an initial snapshot, then recomputes every interval until the
// context is cancelled. Computation failures are logged and the previous
// snapshot stays published until a tick succeeds.
func (t *Ticker) Run(ctx context.Context, wg *sync.WaitGroup) {
	wg.Add(1)
	go func() {
		defer wg.Done()

		t.tick(time.Now())
		lastArchive := time.Now()

		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				t.tick(now)
				if t.archive != nil && now.Sub(lastArchive) >= t.archiveEvery {
					if snap := t.holder.Latest(); snap != nil {
						if err := t.archive(snap); err != nil {
							t.logger.Errorf("snapshot archive failed: %v", err)
						} else {
							lastArchive = now
						}
					}
				}
			}
		}
	}()
}

func (t *Ticker) tick(now time.Time) {
	snap, err := vedictime.Compute(now.UTC(), t.location)
	if err != nil {
		t.logger.Errorf("snapshot computation failed: %v", err)
		return
	}
	t.holder.Publish(snap)
}
