// Package scheduler runs the periodic auto-save: every tick it serializes
// the store and persists only the collections whose content changed since
// their last save.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/KikePrograma-afk/Tukiosko/internal/store"
)

// Saver persists one encoded CSV document. The persistence gateway
// satisfies this.
type Saver interface {
	Save(ctx context.Context, filename, content string) bool
}

// AutoSaver diffs store snapshots against the last-saved snapshots on a
// fixed interval. Content equality means no write; any mutation triggers
// a full re-save of that collection.
type AutoSaver struct {
	cron  *cron.Cron
	store *store.Store
	saver Saver

	mu            sync.Mutex
	lastProductos string
	lastVentas    string
}

// NewAutoSaver wires the auto-save task. Call Start to begin ticking.
func NewAutoSaver(st *store.Store, saver Saver) *AutoSaver {
	return &AutoSaver{
		cron:  cron.New(),
		store: st,
		saver: saver,
	}
}

// Start seeds the change-detection snapshots from the current store
// content (the load-time state when called after Initialize) and starts
// the interval task.
func (a *AutoSaver) Start(interval time.Duration) error {
	if !a.store.IsLoading() {
		snap := a.store.Snapshot()
		a.mu.Lock()
		a.lastProductos = snap.Productos
		a.lastVentas = snap.Ventas
		a.mu.Unlock()
	}

	_, err := a.cron.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		a.Tick(context.Background())
	})
	if err != nil {
		return fmt.Errorf("scheduler: schedule auto-save: %w", err)
	}
	a.cron.Start()
	log.Info().Dur("interval", interval).Msg("scheduler: auto-save started")
	return nil
}

// Stop cancels the interval task. A tick already running is not awaited;
// its saves complete in the background.
func (a *AutoSaver) Stop() {
	a.cron.Stop()
	log.Info().Msg("scheduler: auto-save stopped")
}

// Flush runs one save cycle synchronously. main calls it on shutdown so
// the final state reaches disk without waiting for the next tick.
func (a *AutoSaver) Flush(ctx context.Context) {
	a.Tick(ctx)
}

// Tick performs one change-detection and save cycle. Skipped entirely
// while the initial load is in progress. Each collection saves
// independently; a failed save does not block the other nor the next
// tick, and the snapshot still advances — the next change re-triggers.
func (a *AutoSaver) Tick(ctx context.Context) {
	if a.store.IsLoading() {
		return
	}

	snap := a.store.Snapshot()

	a.mu.Lock()
	defer a.mu.Unlock()

	saved := false
	if snap.Productos != a.lastProductos {
		if ok := a.saver.Save(ctx, "products.csv", snap.Productos); !ok {
			log.Error().Msg("scheduler: products save failed on every path")
		}
		a.lastProductos = snap.Productos
		saved = true
	}
	if snap.Ventas != a.lastVentas {
		if ok := a.saver.Save(ctx, "sales.csv", snap.Ventas); !ok {
			log.Error().Msg("scheduler: sales save failed on every path")
		}
		a.lastVentas = snap.Ventas
		saved = true
	}

	if saved {
		now := time.Now()
		a.store.MarkSaved(now)
		log.Debug().Time("at", now).Msg("scheduler: auto-save cycle persisted changes")
	}
}
