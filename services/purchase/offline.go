package purchase

import (
	"sync"

	redis_models "Wurder/models/redis"
)

// OfflineEntry is one parked game document. PrimaryWritten is true when
// the primary record made it to the store and only the archive copy is
// still owed.
type OfflineEntry struct {
	Game           *redis_models.StoredGame
	PrimaryWritten bool
}

/*
 * 'OfflineStore' keeps purchases accepted while the game store was
 * unreachable. It is constructed once in main and injected everywhere it
 * is needed, so tests can reset it deterministically. Entries live in
 * process memory only: they are lost on restart and invisible to other
 * replicas.
 */
type OfflineStore struct {
	mu      sync.RWMutex
	entries map[string]*OfflineEntry
}

// NewOfflineStore creates an empty offline store
func NewOfflineStore() *OfflineStore {
	return &OfflineStore{
		entries: make(map[string]*OfflineEntry),
	}
}

// Put parks a game whose primary record never reached the store.
func (o *OfflineStore) Put(game *redis_models.StoredGame) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.entries[game.Code] = &OfflineEntry{Game: game}
}

// PutArchivePending parks a game whose primary record is durable but
// whose archive copy still needs to be written.
func (o *OfflineStore) PutArchivePending(game *redis_models.StoredGame) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.entries[game.Code] = &OfflineEntry{Game: game, PrimaryWritten: true}
}

// MarkPrimaryWritten records that the primary write for a parked game
// has since succeeded.
func (o *OfflineStore) MarkPrimaryWritten(code string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if entry, ok := o.entries[code]; ok {
		entry.PrimaryWritten = true
	}
}

// Get returns the parked game document for a code, if any.
func (o *OfflineStore) Get(code string) (*redis_models.StoredGame, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	entry, ok := o.entries[code]
	if !ok {
		return nil, false
	}
	return entry.Game, true
}

// Has reports whether a code is claimed by a parked purchase. The
// allocator checks this so degraded-mode purchases cannot collide with
// each other.
func (o *OfflineStore) Has(code string) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	_, ok := o.entries[code]
	return ok
}

// Snapshot returns a copy of all parked entries for replay.
func (o *OfflineStore) Snapshot() []OfflineEntry {
	o.mu.RLock()
	defer o.mu.RUnlock()
	entries := make([]OfflineEntry, 0, len(o.entries))
	for _, entry := range o.entries {
		entries = append(entries, *entry)
	}
	return entries
}

// Remove drops a parked entry once it has been fully replayed.
func (o *OfflineStore) Remove(code string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.entries, code)
}

// Len returns the number of parked entries.
func (o *OfflineStore) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.entries)
}

// Reset clears the store.
func (o *OfflineStore) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.entries = make(map[string]*OfflineEntry)
}
