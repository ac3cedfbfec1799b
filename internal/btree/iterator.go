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

package btree

// frame is a single step on the path from the root to the current element.
// For the top frame, index names the current element of n; for every other
// frame, index names the gap of n that the frame above it descended into.
type frame[T any] struct {
	n     *node[T]
	index int
}

// cursor walks the tree in order using an explicit stack of frames.  An empty
// stack is the end position.
//
// A cursor is only valid until the next mutation of its tree.
type cursor[T any] struct {
	tree  *Tree[T]
	stack []frame[T]
}

func (c *cursor[T]) push(n *node[T], index int) {
	c.stack = append(c.stack, frame[T]{n: n, index: index})
}

func (c *cursor[T]) top() *frame[T] {
	return &c.stack[len(c.stack)-1]
}

// descendLeft pushes the path to the smallest element of the subtree at n.
func (c *cursor[T]) descendLeft(n *node[T]) {
	for n != nil {
		c.push(n, 0)
		n = n.gap(0)
	}
}

// descendRight pushes the path to the largest element of the subtree at n.
func (c *cursor[T]) descendRight(n *node[T]) {
	for n != nil {
		last := len(n.elements)
		c.push(n, last)
		n = n.gap(last)
	}
	c.top().index--
}

// next moves to the in-order successor, or to the end position if there is
// none.  It is a no-op at the end position.
func (c *cursor[T]) next() {
	if len(c.stack) == 0 {
		return
	}
	f := c.top()
	if child := f.n.gap(f.index + 1); child != nil {
		f.index++
		c.descendLeft(child)
		return
	}
	if f.index+1 < len(f.n.elements) {
		f.index++
		return
	}
	// Climb until a frame whose gap is followed by an element.
	for c.stack = c.stack[:len(c.stack)-1]; 0 < len(c.stack); c.stack = c.stack[:len(c.stack)-1] {
		if f = c.top(); f.index < len(f.n.elements) {
			return
		}
	}
}

// prev moves to the in-order predecessor and reports whether there was one.
// From the end position it moves to the largest element.  The position is
// left unchanged when there is no predecessor.
func (c *cursor[T]) prev() bool {
	if len(c.stack) == 0 {
		if c.tree.root == nil {
			return false
		}
		c.descendRight(c.tree.root)
		return true
	}
	f := c.top()
	if child := f.n.gap(f.index); child != nil {
		c.descendRight(child)
		return true
	}
	if 0 < f.index {
		f.index--
		return true
	}
	// Climb until a frame whose gap is preceded by an element.
	for depth := len(c.stack) - 2; 0 <= depth; depth-- {
		if f = &c.stack[depth]; 0 < f.index {
			c.stack = c.stack[:depth+1]
			f.index--
			return true
		}
	}
	return false
}

// current returns the element at the cursor.  It panics at the end position.
func (c *cursor[T]) current() *element[T] {
	if len(c.stack) == 0 {
		panic("dereference of end iterator")
	}
	f := c.top()
	return &f.n.elements[f.index]
}

func (c *cursor[T]) clone() cursor[T] {
	out := cursor[T]{tree: c.tree}
	if 0 < len(c.stack) {
		out.stack = append(make([]frame[T], 0, cap(c.stack)), c.stack...)
	}
	return out
}

func (c *cursor[T]) equal(o *cursor[T]) bool {
	if c.tree != o.tree {
		return false
	}
	if len(c.stack) == 0 || len(o.stack) == 0 {
		return len(c.stack) == len(o.stack)
	}
	a, b := c.top(), o.top()
	if a.n == b.n && a.index == b.index {
		return true
	}
	return c.tree.less.equiv(a.n.elements[a.index].value, b.n.elements[b.index].value)
}

// Position is implemented by Iterator and ConstIterator so that either kind
// can be compared against the other.
type Position[T any] interface {
	position() *cursor[T]
}

// Iterator is a bidirectional in-order iterator over a tree.
//
// Iterators obtained before a mutation of the tree must not be used after it.
type Iterator[T any] struct {
	cursor[T]
}

func (it *Iterator[T]) position() *cursor[T] {
	return &it.cursor
}

// Valid reports whether the iterator is positioned at an element rather than
// at the end position.
func (it *Iterator[T]) Valid() bool {
	return 0 < len(it.stack)
}

// Value returns the value at the iterator.  It panics at the end position.
func (it *Iterator[T]) Value() T {
	return it.current().value
}

// Ref returns a pointer to the stored value.  Callers may modify the value in
// place as long as its ordering relative to the other values is unchanged.
// It panics at the end position.
func (it *Iterator[T]) Ref() *T {
	return &it.current().value
}

// Next advances the iterator.  It is a no-op at the end position.
func (it *Iterator[T]) Next() {
	it.next()
}

// Prev moves the iterator back by one position.  From the end position it
// moves to the largest value; at the smallest value it is a no-op.
func (it *Iterator[T]) Prev() {
	it.prev()
}

// Equal reports whether both iterators point to the same element of the same
// tree, or are both at its end position.
func (it *Iterator[T]) Equal(other Position[T]) bool {
	return it.equal(other.position())
}

// Clone returns an independent copy of the iterator.
func (it *Iterator[T]) Clone() *Iterator[T] {
	return &Iterator[T]{cursor: it.clone()}
}

// Const returns a read-only iterator at the same position.
func (it *Iterator[T]) Const() *ConstIterator[T] {
	return &ConstIterator[T]{cursor: it.clone()}
}

// ConstIterator is the read-only counterpart of Iterator.
type ConstIterator[T any] struct {
	cursor[T]
}

func (it *ConstIterator[T]) position() *cursor[T] {
	return &it.cursor
}

// Valid reports whether the iterator is positioned at an element.
func (it *ConstIterator[T]) Valid() bool {
	return 0 < len(it.stack)
}

// Value returns the value at the iterator.  It panics at the end position.
func (it *ConstIterator[T]) Value() T {
	return it.current().value
}

// Next advances the iterator.  It is a no-op at the end position.
func (it *ConstIterator[T]) Next() {
	it.next()
}

// Prev moves the iterator back by one position.
func (it *ConstIterator[T]) Prev() {
	it.prev()
}

// Equal reports whether both iterators point to the same element of the same
// tree, or are both at its end position.
func (it *ConstIterator[T]) Equal(other Position[T]) bool {
	return it.equal(other.position())
}

// Clone returns an independent copy of the iterator.
func (it *ConstIterator[T]) Clone() *ConstIterator[T] {
	return &ConstIterator[T]{cursor: it.clone()}
}
