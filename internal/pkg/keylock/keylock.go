// Package keylock provides per-key mutual exclusion. The lifecycle engine uses
// it to serialize the check-and-assign sequence per courier id, closing the
// read-then-write race between concurrent assignment requests.
package keylock

import "sync"

// KeyedMutex hands out one mutex per key. Mutexes are created lazily and kept
// for the lifetime of the registry; the key space (courier ids) is small
// enough that no eviction is needed.
type KeyedMutex struct {
	locks sync.Map
}

// NewKeyedMutex creates an empty registry.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{}
}

// Lock acquires the mutex for key, blocking until it is available.
func (k *KeyedMutex) Lock(key string) {
	k.mutexFor(key).Lock()
}

// Unlock releases the mutex for key. Calling Unlock for a key that was never
// locked panics, same as sync.Mutex.
func (k *KeyedMutex) Unlock(key string) {
	k.mutexFor(key).Unlock()
}

func (k *KeyedMutex) mutexFor(key string) *sync.Mutex {
	if m, ok := k.locks.Load(key); ok {
		return m.(*sync.Mutex)
	}
	m, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	return m.(*sync.Mutex)
}
