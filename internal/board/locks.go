package board

import (
	"sync"

	"github.com/google/uuid"
)

// keyedMutex serializes position mutations per project. Every move,
// create, and reorder holds the project's lock across its
// read-compute-write cycle so concurrent callers cannot interleave stale
// sibling snapshots and break the dense 0..N-1 invariant.
type keyedMutex struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{entries: make(map[uuid.UUID]*lockEntry)}
}

// Lock acquires the mutex for key and returns its unlock function.
// Entries are reference-counted and removed when the last holder unlocks,
// so the map does not grow with the number of projects ever touched.
func (k *keyedMutex) Lock(key uuid.UUID) (unlock func()) {
	k.mu.Lock()
	entry, ok := k.entries[key]
	if !ok {
		entry = &lockEntry{}
		k.entries[key] = entry
	}
	entry.refs++
	k.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		k.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(k.entries, key)
		}
		k.mu.Unlock()
	}
}
