package sync

import (
	"context"
	"errors"
	"log"
	"time"

	"Wurder/services/gamestore"
	"Wurder/services/purchase"
)

// SyncManager replays purchases that were parked in the offline store
// back into the game store once it is reachable again. It also finishes
// archive copies that failed on the purchase path, so every durable game
// eventually has its retention copy.
type SyncManager struct {
	store   purchase.Store
	offline *purchase.OfflineStore
}

// NewSyncManager creates a new instance of the synchronization manager
func NewSyncManager(store purchase.Store, offline *purchase.OfflineStore) *SyncManager {
	return &SyncManager{
		store:   store,
		offline: offline,
	}
}

// Flush attempts one replay pass. Entries that make it through are
// dropped from the offline store; the rest stay for the next pass.
func (sm *SyncManager) Flush(ctx context.Context) {
	for _, entry := range sm.offline.Snapshot() {
		code := entry.Game.Code

		if !entry.PrimaryWritten {
			err := sm.store.CreateGame(ctx, entry.Game)
			if errors.Is(err, gamestore.ErrCodeTaken) {
				// Another purchase minted this code while we were offline.
				// Keep the record rather than silently dropping a paid
				// game; it needs manual attention.
				log.Printf("offline purchase %s collides with a live game, keeping offline", code)
				continue
			}
			if err != nil {
				// Still unreachable, retry on the next pass
				continue
			}
			sm.offline.MarkPrimaryWritten(code)
		}

		if err := sm.store.ArchiveGame(ctx, entry.Game); err != nil {
			sm.offline.MarkPrimaryWritten(code)
			continue
		}

		sm.offline.Remove(code)
		log.Printf("replayed offline purchase %s into the game store", code)
	}
}

// Run flushes the offline store on a fixed interval until ctx is done.
func (sm *SyncManager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sm.Flush(ctx)
		}
	}
}
