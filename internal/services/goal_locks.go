package services

import "sync"

// goalLockSet serializes the read-validate-write sequence per goal id.
// Operations on different goals never contend. Entries are reference
// counted so the map does not grow with every goal ever touched.
type goalLockSet struct {
	mu    sync.Mutex
	locks map[string]*goalLock
}

type goalLock struct {
	mu   sync.Mutex
	refs int
}

func newGoalLockSet() *goalLockSet {
	return &goalLockSet{locks: make(map[string]*goalLock)}
}

// Lock acquires the lock for goalID and returns the matching unlock
// function.
func (set *goalLockSet) Lock(goalID string) func() {
	set.mu.Lock()
	lock, ok := set.locks[goalID]
	if !ok {
		lock = &goalLock{}
		set.locks[goalID] = lock
	}
	lock.refs++
	set.mu.Unlock()

	lock.mu.Lock()

	return func() {
		lock.mu.Unlock()

		set.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(set.locks, goalID)
		}
		set.mu.Unlock()
	}
}
