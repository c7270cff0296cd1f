// Package keylock serializes writers per string key. The points engine uses it to
// make the read-check-write span over an account balance exclusive, closing the
// overdraw race two concurrent transfers would otherwise have.
package keylock

import (
	"sort"
	"sync"
)

type entry struct {
	mu   sync.Mutex
	refs int
}

type KeyLock struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func New() *KeyLock {
	return &KeyLock{entries: make(map[string]*entry)}
}

func (k *KeyLock) Lock(key string) {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		e = &entry{}
		k.entries[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
}

func (k *KeyLock) Unlock(key string) {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		k.mu.Unlock()
		panic("keylock: unlock of unlocked key " + key)
	}
	e.refs--
	if e.refs == 0 {
		delete(k.entries, key)
	}
	k.mu.Unlock()

	e.mu.Unlock()
}

// LockAll acquires every key in sorted order, so two callers locking overlapping
// key sets cannot deadlock each other. Duplicate keys are collapsed.
func (k *KeyLock) LockAll(keys ...string) {
	for _, key := range sortedUnique(keys) {
		k.Lock(key)
	}
}

// UnlockAll releases keys taken by LockAll, in reverse acquisition order.
func (k *KeyLock) UnlockAll(keys ...string) {
	unique := sortedUnique(keys)
	for i := len(unique) - 1; i >= 0; i-- {
		k.Unlock(unique[i])
	}
}

func sortedUnique(keys []string) []string {
	unique := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, key)
	}
	sort.Strings(unique)
	return unique
}
