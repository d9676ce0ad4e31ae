package keylock

import "sync"

// KeyedMutex provides one exclusive lock per string key. The loyalty core
// uses it to serialize all balance-changing operations for a single customer
// while leaving unrelated customers fully parallel.
//
// Locks are created on first use and kept for the life of the process; the
// customer id space is small enough that reclaiming idle entries is not worth
// the bookkeeping.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New() *KeyedMutex {
	return &KeyedMutex{
		locks: make(map[string]*sync.Mutex),
	}
}

func (k *KeyedMutex) get(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()

	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	return m
}

// Lock acquires the exclusive lock for key, blocking until it is available.
func (k *KeyedMutex) Lock(key string) {
	k.get(key).Lock()
}

// Unlock releases the lock for key. It must only be called by the holder.
func (k *KeyedMutex) Unlock(key string) {
	k.get(key).Unlock()
}
