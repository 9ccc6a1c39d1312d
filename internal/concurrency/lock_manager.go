package concurrency

import (
	"sync"
)

// LockManager handles named locks
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

// Lock acquires the named lock and returns its release func.
func (lm *LockManager) Lock(key string) func() {
	mu := lm.GetLock(key)
	mu.Lock()
	return mu.Unlock
}

// GuildKey names the lock serializing one plugin's writes to one guild.
func GuildKey(plugin, guild string) string {
	return plugin + ":" + guild
}
