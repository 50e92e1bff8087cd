package store

import (
	"sync"
)

// entityLocks serializes mutations per timesheet ID. Locks are created on
// first use and retained for the process lifetime; the ID space is small
// (one sheet per employee per week).
type entityLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newEntityLocks() *entityLocks {
	return &entityLocks{
		locks: make(map[string]*sync.Mutex),
	}
}

// lock acquires the mutex for the given ID, creating it if needed, and
// returns the unlock function.
func (el *entityLocks) lock(id string) func() {
	el.mu.Lock()
	lock, ok := el.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		el.locks[id] = lock
	}
	el.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
