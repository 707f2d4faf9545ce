// Copyright 2014 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package lru implements a size-bounded cache with least recently used eviction.
package lru

import (
	"container/list"
	"sync"
)

// Cache implements an LRU cache.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	cache    map[K]*list.Element
	priority *list.List
	maxSize  int
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// New creates a cache holding at most size entries. A non-positive size disables eviction.
func New[K comparable, V any](size int) *Cache[K, V] {
	return &Cache[K, V]{
		maxSize:  size,
		priority: list.New(),
		cache:    make(map[K]*list.Element),
	}
}

// Put stores the value unless the key is already cached.
func (lru *Cache[K, V]) Put(key K, value V) {
	lru.mu.Lock()
	defer lru.mu.Unlock()
	if e, ok := lru.cache[key]; ok {
		lru.priority.MoveToFront(e)
		return
	}
	if lru.maxSize > 0 && len(lru.cache) >= lru.maxSize {
		last := lru.priority.Remove(lru.priority.Back())
		delete(lru.cache, last.(entry[K, V]).key)
	}
	lru.priority.PushFront(entry[K, V]{key: key, value: value})
	lru.cache[key] = lru.priority.Front()
}

func (lru *Cache[K, V]) Del(key K) {
	lru.mu.Lock()
	defer lru.mu.Unlock()
	e := lru.cache[key]
	if e == nil {
		return
	}
	delete(lru.cache, key)
	lru.priority.Remove(e)
}

func (lru *Cache[K, V]) Get(key K) (V, bool) {
	lru.mu.Lock()
	defer lru.mu.Unlock()
	if element, ok := lru.cache[key]; ok {
		lru.priority.MoveToFront(element)
		return element.Value.(entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

func (lru *Cache[K, V]) Len() int {
	lru.mu.Lock()
	defer lru.mu.Unlock()
	return len(lru.cache)
}

// Purge drops all entries.
func (lru *Cache[K, V]) Purge() {
	lru.mu.Lock()
	defer lru.mu.Unlock()
	lru.cache = make(map[K]*list.Element)
	lru.priority.Init()
}
