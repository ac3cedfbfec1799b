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

import "golang.org/x/exp/constraints"

// LessFunc determines how to order a type 'T'.  It should implement a strict
// ordering, and should return true if within that ordering, 'a' < 'b'.
type LessFunc[T any] func(a, b T) bool

// Less returns a default LessFunc that uses the '<' operator for types that
// support it.
func Less[T constraints.Ordered]() LessFunc[T] {
	return func(a, b T) bool { return a < b }
}

// Item represents a client element that knows how to order itself.
type Item[T any] interface {
	// Less tests whether the current item is less than the given argument.
	//
	// This must provide a strict weak ordering; if !a.Less(b) && !b.Less(a),
	// we treat this to mean a == b (i.e., we can only hold one of either a or b
	// in the tree).
	Less(than T) bool
}

// ItemLess returns a LessFunc that defers to the Less method of the item.
func ItemLess[T Item[T]]() LessFunc[T] {
	return func(a, b T) bool { return a.Less(b) }
}

// equiv reports whether neither a < b nor b < a holds.
func (less LessFunc[T]) equiv(a, b T) bool {
	return !less(a, b) && !less(b, a)
}
