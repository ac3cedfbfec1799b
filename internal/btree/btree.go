// Adapted from https://github.com/google/btree/blob/v1.1.2/btree_generic.go
// Copyright 2022 Sogang University
// Copyright 2014 Google Inc.
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

// Package btree implements in-memory multiway search trees.
//
// Each node stores up to maxNodeElems client elements in sorted order.  Whereas
// a single element would partition the tree into two ordered subtrees, a node
// that stores m elements partitions it into m+1 ordered subtrees, each owned by
// one of the node's elements: the first element owns the subtree of everything
// smaller than itself and every element owns the subtree between itself and its
// right neighbor.
//
// Unlike a B-tree, nodes are never split or merged.  A new element is stored in
// the first node along its search path that has spare capacity, and only when
// that node is full does a new child node grow underneath it.  The height of the
// tree is therefore a function of insertion order and capacity, and skewed
// insertion orders may degenerate into a chain of nodes.  There is no deletion.
//
// Trees have value semantics through Clone, Move, CopyFrom and MoveFrom; a
// cloned tree shares no nodes with its source.
//
// A Tree is not safe for concurrent use.  Callers that share a tree across
// goroutines must synchronize access themselves.
package btree

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"
)

// DefaultMaxNodeElems is the node capacity used when none is given.
const DefaultMaxNodeElems = 40

// ItemIterator allows callers of Ascend and Descend to iterate in-order over
// the tree.  When this function returns false, iteration will stop and the
// associated function will immediately return.
type ItemIterator[T any] func(T) bool

// Tree is a generic multiway search tree.
//
// Tree stores values in an ordered structure, allowing insertion, lookup and
// bidirectional iteration.
type Tree[T any] struct {
	maxNodeElems int
	length       int
	root         *node[T]
	less         LessFunc[T]
	freelist     *FreeList[T]
}

// New creates a new tree for ordered types with the given node capacity.
//
// New(2), for example, will create a tree whose nodes hold at most 2 values and
// own at most 3 children.
func New[T constraints.Ordered](maxNodeElems int) *Tree[T] {
	return NewWithLessFunc(maxNodeElems, Less[T]())
}

// NewWithLessFunc creates a new tree ordered by the given function.
func NewWithLessFunc[T any](maxNodeElems int, less LessFunc[T]) *Tree[T] {
	return NewWithFreeList(maxNodeElems, less, NewFreeList[T](DefaultFreeListSize))
}

// NewWithFreeList creates a new tree that uses the given node free list.
func NewWithFreeList[T any](maxNodeElems int, less LessFunc[T], f *FreeList[T]) *Tree[T] {
	if maxNodeElems <= 0 {
		panic("bad capacity")
	}
	if less == nil {
		panic("nil less function")
	}
	return &Tree[T]{
		maxNodeElems: maxNodeElems,
		less:         less,
		freelist:     f,
	}
}

// Find returns an iterator positioned at the element equal to the given value,
// or End() if no such element exists.
func (t *Tree[T]) Find(value T) *Iterator[T] {
	it := t.End()
	n := t.root
	for n != nil {
		i, found := n.elements.find(value, t.less)
		it.push(n, i)
		if found {
			return it
		}
		n = n.gap(i)
	}
	it.stack = it.stack[:0]
	return it
}

// FindConst is identical to Find save the fact that the returned iterator
// provides a read-only view.
func (t *Tree[T]) FindConst(value T) *ConstIterator[T] {
	return t.Find(value).Const()
}

// Insert adds the given value to the tree if no equal value is present yet.
//
// The returned iterator is positioned at the matching element, whether it was
// added by this call or already present.  The boolean is true if and only if
// the tree grew by one.
func (t *Tree[T]) Insert(value T) (*Iterator[T], bool) {
	it := t.End()
	if t.root == nil {
		t.root = t.freelist.newNode()
	}
	n := t.root
	for {
		i, found := n.elements.find(value, t.less)
		if found {
			it.push(n, i)
			return it, false
		}
		if len(n.elements) < t.maxNodeElems {
			n.insert(i, value)
			t.length++
			it.push(n, i)
			return it, true
		}
		child := n.gap(i)
		if child == nil {
			child = t.freelist.newNode()
			n.setGap(i, child)
		}
		it.push(n, i)
		n = child
	}
}

// Get looks for the given value in the tree, returning the stored element.
// It returns (zeroValue, false) if unable to find that value.
func (t *Tree[T]) Get(key T) (_ T, _ bool) {
	it := t.Find(key)
	if !it.Valid() {
		return
	}
	return it.Value(), true
}

// Has returns true if the given key is in the tree.
func (t *Tree[T]) Has(key T) bool {
	return t.Find(key).Valid()
}

// Min returns the smallest value in the tree, or (zeroValue, false) if the
// tree is empty.
func (t *Tree[T]) Min() (_ T, _ bool) {
	it := t.Begin()
	if !it.Valid() {
		return
	}
	return it.Value(), true
}

// Max returns the largest value in the tree, or (zeroValue, false) if the tree
// is empty.
func (t *Tree[T]) Max() (_ T, _ bool) {
	it := t.End()
	it.Prev()
	if !it.Valid() {
		return
	}
	return it.Value(), true
}

// Len returns the number of values currently in the tree.
func (t *Tree[T]) Len() int {
	return t.length
}

// MaxNodeElems returns the node capacity of the tree.
func (t *Tree[T]) MaxNodeElems() int {
	return t.maxNodeElems
}

// Height returns the number of node levels in the tree; 0 if it is empty.
func (t *Tree[T]) Height() int {
	if t.root == nil {
		return 0
	}
	return t.root.height()
}

// Ascend calls the iterator for every value in the tree in ascending order,
// until iterator returns false.
func (t *Tree[T]) Ascend(iterator ItemIterator[T]) {
	for it := t.Begin(); it.Valid(); it.Next() {
		if !iterator(it.Value()) {
			return
		}
	}
}

// Descend calls the iterator for every value in the tree in descending order,
// until iterator returns false.
func (t *Tree[T]) Descend(iterator ItemIterator[T]) {
	it := t.End()
	for ok := it.prev(); ok; ok = it.prev() {
		if !iterator(it.Value()) {
			return
		}
	}
}

// Begin returns an iterator positioned at the smallest value, or End() if the
// tree is empty.
func (t *Tree[T]) Begin() *Iterator[T] {
	it := t.End()
	if t.root != nil {
		it.descendLeft(t.root)
	}
	return it
}

// End returns an iterator positioned one past the largest value.
func (t *Tree[T]) End() *Iterator[T] {
	return &Iterator[T]{cursor: cursor[T]{tree: t}}
}

// RBegin returns the same position as End.
//
// Reverse iterators are aliases of the forward positions rather than true
// reverse iterators; walk backwards with Prev from RBegin, or use Descend.
func (t *Tree[T]) RBegin() *Iterator[T] {
	return t.End()
}

// REnd returns the same position as Begin.  See RBegin.
func (t *Tree[T]) REnd() *Iterator[T] {
	return t.Begin()
}

// CBegin is the read-only counterpart of Begin.
func (t *Tree[T]) CBegin() *ConstIterator[T] {
	return t.Begin().Const()
}

// CEnd is the read-only counterpart of End.
func (t *Tree[T]) CEnd() *ConstIterator[T] {
	return t.End().Const()
}

// CRBegin is the read-only counterpart of RBegin.
func (t *Tree[T]) CRBegin() *ConstIterator[T] {
	return t.RBegin().Const()
}

// CREnd is the read-only counterpart of REnd.
func (t *Tree[T]) CREnd() *ConstIterator[T] {
	return t.REnd().Const()
}

// Clear removes all values from the tree.  If addNodesToFreelist is true,
// t's nodes are added to its freelist as part of this call, until the freelist
// is full.  Otherwise, the root node is simply dereferenced and the subtree
// left to Go's normal GC processes.
func (t *Tree[T]) Clear(addNodesToFreelist bool) {
	if t.root != nil && addNodesToFreelist {
		t.root.reset(t.freelist)
	}
	t.root, t.length = nil, 0
}

// Clone returns a deep copy of the tree.  The copy has the same shape, the
// same capacity and the same ordering as t, but shares no nodes with it, so
// either tree may be modified without affecting the other.  The copy uses its
// own free list.
func (t *Tree[T]) Clone() *Tree[T] {
	out := NewWithLessFunc(t.maxNodeElems, t.less)
	out.copyNodes(t)
	return out
}

// Move returns a new tree that takes over the contents of t, leaving t empty.
// t keeps its capacity and remains usable.
func (t *Tree[T]) Move() *Tree[T] {
	out := NewWithFreeList(t.maxNodeElems, t.less, t.freelist)
	out.root, out.length = t.root, t.length
	t.root, t.length = nil, 0
	return out
}

// CopyFrom replaces the contents of t with a deep copy of src, including its
// capacity.  Copying a tree onto itself leaves it unchanged.
func (t *Tree[T]) CopyFrom(src *Tree[T]) {
	if t == src {
		return
	}
	t.Clear(true)
	t.maxNodeElems, t.less = src.maxNodeElems, src.less
	t.copyNodes(src)
}

// MoveFrom replaces the contents of t with the contents of src, including its
// capacity, leaving src empty.  Moving a tree onto itself leaves it unchanged.
func (t *Tree[T]) MoveFrom(src *Tree[T]) {
	if t == src {
		return
	}
	t.Clear(true)
	t.maxNodeElems, t.less = src.maxNodeElems, src.less
	t.root, t.length = src.root, src.length
	src.root, src.length = nil, 0
}

func (t *Tree[T]) copyNodes(src *Tree[T]) {
	if src.root != nil {
		t.root = src.root.clone(t.freelist)
	}
	t.length = src.length
}

// WriteTo writes a breadth-first traversal of the tree to w.  Values are
// separated by a single space and no newline is written.
func (t *Tree[T]) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var (
		written int64
		sep     string
	)
	queue := make([]*node[T], 0, 1)
	if t.root != nil {
		queue = append(queue, t.root)
	}
	for 0 < len(queue) {
		n := queue[0]
		queue[0] = nil
		queue = queue[1:]
		for _, e := range n.elements {
			nw, err := fmt.Fprint(bw, sep, e.value)
			written += int64(nw)
			if err != nil {
				return written, err
			}
			sep = " "
		}
		for i := 0; i <= len(n.elements); i++ {
			if child := n.gap(i); child != nil {
				queue = append(queue, child)
			}
		}
	}
	return written, bw.Flush()
}

// String returns the breadth-first rendering of the tree written by WriteTo.
func (t *Tree[T]) String() string {
	var b strings.Builder
	t.WriteTo(&b)
	return b.String()
}
