// File: pool/objpool.go
// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT
//
// Generic object pooling for transient allocations on hot paths. Used by
// the highlevel walker to recycle its worklist queues across runs.

package pool

import "sync"

// ObjectPool is a generic object pool.
type ObjectPool[T any] interface {
	Get() T
	Put(T)
}

// SyncPool wraps sync.Pool for generic usage.
type SyncPool[T any] struct {
	pool *sync.Pool
}

// NewSyncPool creates a new SyncPool with a creator function.
func NewSyncPool[T any](creator func() T) *SyncPool[T] {
	return &SyncPool[T]{
		pool: &sync.Pool{New: func() any { return creator() }},
	}
}

// Get returns an instance from the pool, creating one if empty.
func (sp *SyncPool[T]) Get() T {
	return sp.pool.Get().(T)
}

// Put returns an instance for reuse. The caller must not use obj after.
func (sp *SyncPool[T]) Put(obj T) {
	sp.pool.Put(obj)
}

var _ ObjectPool[int] = (*SyncPool[int])(nil)
