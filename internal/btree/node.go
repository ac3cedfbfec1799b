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

package btree

import "sort"

// element is a single value stored in a node together with the subtrees that
// bound it.  left holds everything smaller than value and is only used by the
// first element of a node; right holds everything between value and the value
// of the next element in the same node.
type element[T any] struct {
	value T
	left  *node[T]
	right *node[T]
}

// elements stores elements in a node.
type elements[T any] []element[T]

// insertAt inserts a value into the given index, pushing all subsequent values
// forward.
func (s *elements[T]) insertAt(index int, e element[T]) {
	*s = append(*s, element[T]{})
	if index < len(*s) {
		copy((*s)[index+1:], (*s)[index:])
	}
	(*s)[index] = e
}

// truncate truncates this instance at index so that it contains only the
// first index elements. index must be less than or equal to length.
func (s *elements[T]) truncate(index int) {
	var toClear elements[T]
	*s, toClear = (*s)[:index], (*s)[index:]
	for i := 0; i < len(toClear); i++ {
		toClear[i] = element[T]{}
	}
}

// find returns the index where the given value should be inserted into this
// list.  'found' is true if the value already exists in the list at the given
// index.
func (s elements[T]) find(value T, less LessFunc[T]) (index int, found bool) {
	i := sort.Search(len(s), func(i int) bool {
		return less(value, s[i].value)
	})
	if 0 < i && !less(s[i-1].value, value) {
		return i - 1, true
	}
	return i, false
}

// node is a node in a tree.
//
// A node with m elements owns m+1 gaps: gap 0 is elements[0].left and gap i+1
// is elements[i].right.  Children are only ever created under a full node, so
// a node that has any child holds exactly maxNodeElems elements.
type node[T any] struct {
	elements elements[T]
}

// gap returns the child owning the i-th gap, or nil.
func (n *node[T]) gap(i int) *node[T] {
	if len(n.elements) == 0 {
		return nil
	}
	if i == 0 {
		return n.elements[0].left
	}
	return n.elements[i-1].right
}

// setGap attaches the given child to the i-th gap.
func (n *node[T]) setGap(i int, child *node[T]) {
	if i == 0 {
		n.elements[0].left = child
		return
	}
	n.elements[i-1].right = child
}

// leaf reports whether the node owns no children.
func (n *node[T]) leaf() bool {
	for i := 0; i <= len(n.elements); i++ {
		if n.gap(i) != nil {
			return false
		}
	}
	return true
}

// insert places a new element at index, keeping the leftmost gap attached to
// whichever element ends up first.
func (n *node[T]) insert(index int, value T) {
	e := element[T]{value: value}
	if index == 0 && 0 < len(n.elements) {
		e.left, n.elements[0].left = n.elements[0].left, nil
	}
	n.elements.insertAt(index, e)
}

// clone returns a deep copy of the subtree rooted at this node.  Every node is
// allocated from f, so the copy shares nothing with the original.
func (n *node[T]) clone(f *FreeList[T]) *node[T] {
	out := f.newNode()
	if cap(out.elements) < len(n.elements) {
		out.elements = make(elements[T], 0, cap(n.elements))
	}
	for _, e := range n.elements {
		c := element[T]{value: e.value}
		if e.left != nil {
			c.left = e.left.clone(f)
		}
		if e.right != nil {
			c.right = e.right.clone(f)
		}
		out.elements = append(out.elements, c)
	}
	return out
}

// reset returns a subtree to the freelist.  It breaks out immediately if the
// freelist is full, since the only benefit of iterating is to fill that
// freelist up.  Returns true if parent reset call should continue.
func (n *node[T]) reset(f *FreeList[T]) bool {
	for i := 0; i <= len(n.elements); i++ {
		if child := n.gap(i); child != nil && !child.reset(f) {
			return false
		}
	}
	return f.freeNode(n)
}

// height returns the number of levels in the subtree rooted at this node.
func (n *node[T]) height() (h int) {
	for i := 0; i <= len(n.elements); i++ {
		if child := n.gap(i); child != nil {
			h = max(h, child.height())
		}
	}
	return h + 1
}
