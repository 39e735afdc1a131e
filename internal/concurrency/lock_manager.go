package concurrency

import (
	"sync"
)

// LockManager handles named locks.
// A mutex is kept for every key ever locked and is never evicted, so memory
// grows with the number of distinct accounts seen by the process.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Lock acquires the lock for key and returns its release function.
func (lm *LockManager) Lock(key string) func() {
	mu := lm.GetLock(key)
	mu.Lock()
	return mu.Unlock
}

// LockPair acquires the locks for two keys, always in lexicographic order so
// that two callers locking the same pair in opposite roles cannot deadlock.
// Equal keys take a single lock.
func (lm *LockManager) LockPair(a, b string) func() {
	if a == b {
		return lm.Lock(a)
	}
	if b < a {
		a, b = b, a
	}
	first := lm.GetLock(a)
	second := lm.GetLock(b)
	first.Lock()
	second.Lock()
	return func() {
		second.Unlock()
		first.Unlock()
	}
}

// AccountKey is the lock key guarding one account's row. Every service that
// mutates an account takes this key before opening its transaction.
func AccountKey(userID string) string {
	return "account:" + userID
}
