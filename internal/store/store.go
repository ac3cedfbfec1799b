// Copyright 2022 Sogang University
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

// Package store keeps a single multiway tree of keys behind a lock, together
// with a bounded set of point-in-time snapshots of it.  Snapshots are deep
// copies; restoring one moves it back into place.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/9rum/multiway/internal/btree"
	"github.com/cespare/xxhash/v2"
	"github.com/elastic/go-freelru"
	"github.com/golang/glog"
	"github.com/google/uuid"
)

// DefaultSnapshots is the number of snapshots retained when none is given.
const DefaultSnapshots = 8

var (
	// ErrSnapshotNotFound signals an unknown or evicted snapshot id.
	ErrSnapshotNotFound = errors.New("store: snapshot not found")
	// ErrBadCapacity signals a negative node capacity.
	ErrBadCapacity = errors.New("store: bad capacity")
)

// Store holds the live tree and its snapshots.
// All methods are safe for concurrent use.
type Store struct {
	mu        sync.Mutex
	tree      *btree.Tree[int64]
	snapshots *freelru.LRU[string, *btree.Tree[int64]]
	evictions int
	// consumed is the id of the snapshot being restored, whose removal from
	// the cache is not an eviction.
	consumed string
}

// New creates a new store whose tree nodes hold capacity keys, retaining at
// most the given number of snapshots.  A zero capacity selects
// btree.DefaultMaxNodeElems and zero snapshots selects DefaultSnapshots.
func New(capacity, snapshots int) (*Store, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCapacity, capacity)
	}
	if snapshots <= 0 {
		snapshots = DefaultSnapshots
	}
	lru, err := freelru.New[string, *btree.Tree[int64]](uint32(snapshots), hashString)
	if err != nil {
		return nil, err
	}
	s := &Store{
		tree:      newTree(capacity),
		snapshots: lru,
	}
	lru.SetOnEvict(func(id string, tree *btree.Tree[int64]) {
		if id == s.consumed {
			return
		}
		s.evictions++
		glog.V(1).Infof("snapshot %s released with %d keys", id, tree.Len())
	})
	return s, nil
}

// hashString hashes snapshot ids for the LRU.
func hashString(s string) uint32 {
	return uint32(xxhash.Sum64String(s))
}

func newTree(capacity int) *btree.Tree[int64] {
	if capacity == 0 {
		capacity = btree.DefaultMaxNodeElems
	}
	return btree.New[int64](capacity)
}

// Reset replaces the live tree with an empty one of the given capacity.
// Snapshots are kept.
func (s *Store) Reset(capacity int) error {
	if capacity < 0 {
		return fmt.Errorf("%w: %d", ErrBadCapacity, capacity)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.MoveFrom(newTree(capacity))
	return nil
}

// Insert adds the given key, returning false if it was already present.
func (s *Store) Insert(key int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, inserted := s.tree.Insert(key)
	return inserted
}

// Find reports whether the given key is present.
func (s *Store) Find(key int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Find(key).Valid()
}

// Len returns the number of keys in the live tree.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Len()
}

// Capacity returns the node capacity of the live tree.
func (s *Store) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.MaxNodeElems()
}

// Values returns all keys in ascending order.
func (s *Store) Values() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int64, 0, s.tree.Len())
	for it := s.tree.CBegin(); it.Valid(); it.Next() {
		out = append(out, it.Value())
	}
	return out
}

// Dump returns the breadth-first rendering of the live tree.
func (s *Store) Dump() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.String()
}

// Snapshot stores a deep copy of the live tree and returns its id.  The oldest
// snapshot is released once the retention limit is reached.
func (s *Store) Snapshot() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.snapshots.Add(id, s.tree.Clone())
	return id
}

// Restore replaces the live tree with the snapshot of the given id.  The
// snapshot is consumed.
func (s *Store) Restore(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot, ok := s.snapshots.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
	}
	s.consumed = id
	s.snapshots.Remove(id)
	s.consumed = ""
	s.tree.MoveFrom(snapshot)
	return nil
}

// Snapshots returns the number of retained snapshots.
func (s *Store) Snapshots() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshots.Len()
}

// Evictions returns the number of snapshots released by the retention limit.
func (s *Store) Evictions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.evictions
}
