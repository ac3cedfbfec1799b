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

import (
	"errors"
	"fmt"
)

// ErrCorrupt signals a violated structural invariant.
var ErrCorrupt = errors.New("btree: corrupt tree")

// bound is an optional exclusive limit on the values of a subtree.
type bound[T any] struct {
	value T
	valid bool
}

// Check validates the structural invariants of the tree: node capacity,
// strict ordering within and across nodes, children only under full nodes,
// left handles only on first elements, and the element count.
func (t *Tree[T]) Check() error {
	if t.root == nil {
		if t.length != 0 {
			return fmt.Errorf("%w: empty tree with length %d", ErrCorrupt, t.length)
		}
		return nil
	}
	count, err := t.checkNode(t.root, bound[T]{}, bound[T]{})
	if err != nil {
		return err
	}
	if count != t.length {
		return fmt.Errorf("%w: length mismatch (%d != %d)", ErrCorrupt, count, t.length)
	}
	return nil
}

func (t *Tree[T]) checkNode(n *node[T], lo, hi bound[T]) (int, error) {
	if len(n.elements) == 0 {
		return 0, fmt.Errorf("%w: empty node", ErrCorrupt)
	}
	if t.maxNodeElems < len(n.elements) {
		return 0, fmt.Errorf("%w: node holds %d elements, capacity %d", ErrCorrupt, len(n.elements), t.maxNodeElems)
	}
	for i, e := range n.elements {
		if lo.valid && !t.less(lo.value, e.value) {
			return 0, fmt.Errorf("%w: %v not above lower bound %v", ErrCorrupt, e.value, lo.value)
		}
		if hi.valid && !t.less(e.value, hi.value) {
			return 0, fmt.Errorf("%w: %v not below upper bound %v", ErrCorrupt, e.value, hi.value)
		}
		if 0 < i {
			if !t.less(n.elements[i-1].value, e.value) {
				return 0, fmt.Errorf("%w: %v out of order after %v", ErrCorrupt, e.value, n.elements[i-1].value)
			}
			if e.left != nil {
				return 0, fmt.Errorf("%w: left child on element %d", ErrCorrupt, i)
			}
		}
	}
	if len(n.elements) < t.maxNodeElems && !n.leaf() {
		return 0, fmt.Errorf("%w: children under a node with spare capacity", ErrCorrupt)
	}
	count := len(n.elements)
	for i := 0; i <= len(n.elements); i++ {
		child := n.gap(i)
		if child == nil {
			continue
		}
		clo, chi := lo, hi
		if 0 < i {
			clo = bound[T]{value: n.elements[i-1].value, valid: true}
		}
		if i < len(n.elements) {
			chi = bound[T]{value: n.elements[i].value, valid: true}
		}
		c, err := t.checkNode(child, clo, chi)
		if err != nil {
			return 0, err
		}
		count += c
	}
	return count, nil
}
