// Adapted from https://github.com/google/btree/blob/v1.1.2/btree_test.go
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

import (
	"flag"
	"fmt"
	"math/rand"
	"reflect"
	"sort"
	"strings"
	"testing"
)

// perm returns a random permutation of n values in the range [0, n).
func perm(n int) []int {
	return rand.Perm(n)
}

// rang returns an ordered list of values in the range [0, n).
func rang(n int) (out []int) {
	for i := 0; i < n; i++ {
		out = append(out, i)
	}
	return
}

// rangrev returns a reversed ordered list of values in the range [0, n).
func rangrev(n int) (out []int) {
	for i := n - 1; 0 <= i; i-- {
		out = append(out, i)
	}
	return
}

// all extracts all values from a tree in order as a slice.
func all[T any](t *Tree[T]) (out []T) {
	t.Ascend(func(a T) bool {
		out = append(out, a)
		return true
	})
	return
}

// allrev extracts all values from a tree in reverse order as a slice.
func allrev[T any](t *Tree[T]) (out []T) {
	t.Descend(func(a T) bool {
		out = append(out, a)
		return true
	})
	return
}

// walk collects the values between begin and end using the iterator.
func walk[T any](t *Tree[T]) (out []T) {
	for it, end := t.Begin(), t.End(); !it.Equal(end); it.Next() {
		out = append(out, it.Value())
	}
	return
}

// mustPanic fails the test unless fn panics.
func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	fn()
}

var maxNodeElems = flag.Int("capacity", 4, "node capacity")

func TestTree(t *testing.T) {
	tr := New[int](*maxNodeElems)
	const treeSize = 10000
	for i := 0; i < 10; i++ {
		if min, ok := tr.Min(); ok || min != 0 {
			t.Fatalf("empty min, got %+v", min)
		}
		if max, ok := tr.Max(); ok || max != 0 {
			t.Fatalf("empty max, got %+v", max)
		}
		for _, v := range perm(treeSize) {
			if _, ok := tr.Insert(v); !ok {
				t.Fatal("insert found value", v)
			}
		}
		for _, v := range perm(treeSize) {
			if !tr.Has(v) {
				t.Fatal("has did not find value", v)
			}
		}
		for _, v := range perm(treeSize) {
			if _, ok := tr.Insert(v); ok {
				t.Fatal("insert didn't find value", v)
			}
		}
		if err := tr.Check(); err != nil {
			t.Fatal(err)
		}
		if min, ok := tr.Min(); !ok || min != 0 {
			t.Fatalf("min: ok %v want %+v, got %+v", ok, 0, min)
		}
		if max, ok := tr.Max(); !ok || max != treeSize-1 {
			t.Fatalf("max: ok %v want %+v, got %+v", ok, treeSize-1, max)
		}
		got := all(tr)
		want := rang(treeSize)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("mismatch:\n got: %v\nwant: %v", got, want)
		}
		if got = walk(tr); !reflect.DeepEqual(got, want) {
			t.Fatalf("mismatch:\n got: %v\nwant: %v", got, want)
		}

		gotrev := allrev(tr)
		wantrev := rangrev(treeSize)
		if !reflect.DeepEqual(gotrev, wantrev) {
			t.Fatalf("mismatch:\n got: %v\nwant: %v", gotrev, wantrev)
		}

		tr.Clear(true)
		if got = all(tr); 0 < len(got) {
			t.Fatalf("some left!: %v", got)
		}
	}
}

func ExampleTree() {
	tr := New[int](2)
	for _, v := range []int{5, 2, 8, 1} {
		tr.Insert(v)
	}
	fmt.Println("len:     ", tr.Len())
	fmt.Println("tree:    ", tr)
	it := tr.Find(8)
	fmt.Println("find8:   ", it.Value())
	fmt.Println("find9:   ", tr.Find(9).Equal(tr.End()))
	_, ok := tr.Insert(5)
	fmt.Println("insert5: ", ok)
	v, ok := tr.Min()
	fmt.Println("min:     ", v, ok)
	v, ok = tr.Max()
	fmt.Println("max:     ", v, ok)
	fmt.Println("height:  ", tr.Height())
	// Output:
	// len:      4
	// tree:     2 5 1 8
	// find8:    8
	// find9:    true
	// insert5:  false
	// min:      1 true
	// max:      8 true
	// height:   2
}

func TestSortedTraversal(t *testing.T) {
	tr := New[int](2)
	for _, v := range []int{5, 2, 8, 1} {
		tr.Insert(v)
	}
	if got, want := walk(tr), []int{1, 2, 5, 8}; !reflect.DeepEqual(got, want) {
		t.Fatalf("traversal:\n got: %v\nwant: %v", got, want)
	}
	if got := tr.Find(8).Value(); got != 8 {
		t.Fatalf("find: got %d want 8", got)
	}
	if !tr.Find(9).Equal(tr.End()) {
		t.Fatal("find of absent value is not end")
	}
}

func TestMultiLevelDescent(t *testing.T) {
	tr := New[int](2)
	for _, v := range []int{10, 20, 30, 40, 50} {
		if _, ok := tr.Insert(v); !ok {
			t.Fatalf("insert %d reported duplicate", v)
		}
		if err := tr.Check(); err != nil {
			t.Fatal(err)
		}
	}
	if got, want := walk(tr), []int{10, 20, 30, 40, 50}; !reflect.DeepEqual(got, want) {
		t.Fatalf("traversal:\n got: %v\nwant: %v", got, want)
	}
	if got := tr.Height(); got != 3 {
		t.Fatalf("height: got %d want 3", got)
	}
	if got, want := tr.String(), "10 20 30 40 50"; got != want {
		t.Fatalf("string: got %q want %q", got, want)
	}
}

func TestAscendingInsertDegenerates(t *testing.T) {
	tr := New[int](1)
	for _, v := range rang(20) {
		tr.Insert(v)
	}
	if got := tr.Height(); got != 20 {
		t.Fatalf("height: got %d want 20", got)
	}
	if got := walk(tr); !reflect.DeepEqual(got, rang(20)) {
		t.Fatalf("traversal:\n got: %v\nwant: %v", got, rang(20))
	}
}

func TestInsertDuplicate(t *testing.T) {
	tr := New[int](3)
	for _, v := range perm(100) {
		tr.Insert(v)
	}
	for _, v := range perm(100) {
		first, ok := tr.Insert(v + 100)
		if !ok {
			t.Fatalf("insert %d reported duplicate", v+100)
		}
		length := tr.Len()
		second, ok := tr.Insert(v + 100)
		if ok {
			t.Fatalf("second insert %d reported new element", v+100)
		}
		if tr.Len() != length {
			t.Fatalf("len changed on duplicate insert: %d != %d", tr.Len(), length)
		}
		if !first.Equal(second) {
			t.Fatalf("iterators of duplicate insert %d differ", v+100)
		}
		if got := second.Value(); got != v+100 {
			t.Fatalf("duplicate insert iterator: got %d want %d", got, v+100)
		}
	}
}

func TestFind(t *testing.T) {
	tr := New[int](3)
	for _, v := range perm(200) {
		if !tr.Find(v).Equal(tr.End()) {
			t.Fatalf("find %d before insert is not end", v)
		}
		tr.Insert(v)
		it := tr.Find(v)
		if !it.Valid() || it.Value() != v {
			t.Fatalf("find %d after insert failed", v)
		}
		if cit := tr.FindConst(v); !cit.Equal(it) || cit.Value() != v {
			t.Fatalf("const find %d disagrees with find", v)
		}
	}
}

func TestInsertIterator(t *testing.T) {
	tr := New[int](3)
	for _, v := range perm(300) {
		it, _ := tr.Insert(v)
		if !it.Equal(tr.Find(v)) {
			t.Fatalf("insert iterator for %d differs from find", v)
		}
	}
	// The iterator returned by Insert must walk on from the new element.
	tr = New[int](2)
	for _, v := range []int{50, 60, 10, 55, 5, 70, 58} {
		tr.Insert(v)
	}
	it, ok := tr.Insert(57)
	if !ok {
		t.Fatal("insert 57 reported duplicate")
	}
	var got []int
	for ; it.Valid(); it.Next() {
		got = append(got, it.Value())
	}
	if want := []int{57, 58, 60, 70}; !reflect.DeepEqual(got, want) {
		t.Fatalf("walk from insert:\n got: %v\nwant: %v", got, want)
	}
}

func TestIteratorBoundaries(t *testing.T) {
	tr := New[int](2)
	if !tr.Begin().Equal(tr.End()) {
		t.Fatal("empty tree begin != end")
	}
	for _, v := range perm(50) {
		tr.Insert(v)
	}
	end := tr.End()
	end.Next()
	if !end.Equal(tr.End()) {
		t.Fatal("next at end moved the iterator")
	}
	begin := tr.Begin()
	begin.Prev()
	if !begin.Equal(tr.Begin()) || begin.Value() != 0 {
		t.Fatal("prev at begin moved the iterator")
	}
	last := tr.End()
	last.Prev()
	if last.Value() != 49 {
		t.Fatalf("prev from end: got %d want 49", last.Value())
	}
	mustPanic(t, "end value", func() { tr.End().Value() })
	mustPanic(t, "end ref", func() { tr.End().Ref() })
}

func TestIteratorRandomWalk(t *testing.T) {
	const n = 500
	tr := New[int](3)
	for _, v := range perm(n) {
		tr.Insert(v)
	}
	it := tr.Begin()
	index := 0
	for step := 0; step < 20000; step++ {
		if rand.Intn(2) == 0 {
			it.Next()
			if index < n {
				index++
			}
		} else {
			it.Prev()
			if index == n {
				index = n - 1
			} else if 0 < index {
				index--
			}
		}
		if index == n {
			if it.Valid() {
				t.Fatalf("step %d: expected end, got %d", step, it.Value())
			}
			continue
		}
		if !it.Valid() || it.Value() != index {
			t.Fatalf("step %d: expected %d", step, index)
		}
	}
}

func TestReverseAliases(t *testing.T) {
	tr := New[int](2)
	for _, v := range perm(10) {
		tr.Insert(v)
	}
	if !tr.RBegin().Equal(tr.End()) || !tr.REnd().Equal(tr.Begin()) {
		t.Fatal("reverse iterators are not aliases of end and begin")
	}
	if !tr.CRBegin().Equal(tr.CEnd()) || !tr.CREnd().Equal(tr.CBegin()) {
		t.Fatal("const reverse iterators are not aliases of end and begin")
	}
	var got []int
	it := tr.RBegin()
	for it.Prev(); !it.Equal(tr.REnd()); it.Prev() {
		got = append(got, it.Value())
	}
	if want := rangrev(10)[:9]; !reflect.DeepEqual(got, want) {
		t.Fatalf("reverse walk:\n got: %v\nwant: %v", got, want)
	}
}

func TestConstIterator(t *testing.T) {
	tr := New[int](2)
	for _, v := range perm(30) {
		tr.Insert(v)
	}
	var got []int
	for it, end := tr.CBegin(), tr.CEnd(); !it.Equal(end); it.Next() {
		got = append(got, it.Value())
	}
	if !reflect.DeepEqual(got, rang(30)) {
		t.Fatalf("const traversal:\n got: %v\nwant: %v", got, rang(30))
	}
	it := tr.Find(17)
	cit := it.Const()
	if !cit.Equal(it) || !it.Equal(cit) {
		t.Fatal("converted iterator is not equal to its source")
	}
	it.Next()
	if cit.Value() != 17 {
		t.Fatal("converted iterator shares state with its source")
	}
	if cit.Equal(it) {
		t.Fatal("iterators at different elements compare equal")
	}
	if tr.Begin().Equal(tr.Clone().Begin()) {
		t.Fatal("iterators of different trees compare equal")
	}
}

type pair struct {
	key, value int
}

func (p pair) Less(than pair) bool {
	return p.key < than.key
}

func TestItemRef(t *testing.T) {
	tr := NewWithLessFunc(2, ItemLess[pair]())
	for _, k := range perm(20) {
		tr.Insert(pair{key: k})
	}
	for it := tr.Begin(); it.Valid(); it.Next() {
		it.Ref().value = it.Value().key * 10
	}
	for _, k := range perm(20) {
		if p, ok := tr.Get(pair{key: k}); !ok || p.value != k*10 {
			t.Fatalf("get %d: got %+v %v", k, p, ok)
		}
	}
}

func TestString(t *testing.T) {
	tr := New[int](3)
	for _, v := range []int{2, 1, 3} {
		tr.Insert(v)
	}
	if got, want := tr.String(), "1 2 3"; got != want {
		t.Fatalf("string: got %q want %q", got, want)
	}
	if got := New[int](3).String(); got != "" {
		t.Fatalf("empty string: got %q", got)
	}
	words := New[string](2)
	for _, w := range []string{"m", "c", "x", "a", "z"} {
		words.Insert(w)
	}
	var b strings.Builder
	n, err := words.WriteTo(&b)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := b.String(), "c m a x z"; got != want || n != int64(len(want)) {
		t.Fatalf("write: got %q (%d) want %q", got, n, want)
	}
}

func TestClone(t *testing.T) {
	tr := New[int](3)
	for _, v := range perm(100) {
		tr.Insert(v)
	}
	cp := tr.Clone()
	if cp.String() != tr.String() || cp.Height() != tr.Height() || cp.Len() != tr.Len() {
		t.Fatal("clone differs from original")
	}
	for _, v := range perm(100) {
		cp.Insert(v + 100)
	}
	if got := all(tr); !reflect.DeepEqual(got, rang(100)) {
		t.Fatalf("original changed by clone:\n got: %v\nwant: %v", got, rang(100))
	}
	if got := all(cp); !reflect.DeepEqual(got, rang(200)) {
		t.Fatalf("clone:\n got: %v\nwant: %v", got, rang(200))
	}
	if err := cp.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestCopyFrom(t *testing.T) {
	src := New[int](4)
	for _, v := range perm(64) {
		src.Insert(v)
	}
	dst := New[int](2)
	for _, v := range perm(10) {
		dst.Insert(v + 1000)
	}
	dst.CopyFrom(src)
	if dst.MaxNodeElems() != 4 || dst.String() != src.String() {
		t.Fatal("copy differs from source")
	}
	dst.Insert(-1)
	if src.Has(-1) {
		t.Fatal("copy aliases its source")
	}
	before := dst.String()
	dst.CopyFrom(dst)
	if dst.String() != before {
		t.Fatal("self copy changed the tree")
	}
}

func TestMove(t *testing.T) {
	src := New[int](3)
	for _, v := range perm(100) {
		src.Insert(v)
	}
	want := all(src)
	dst := src.Move()
	if !src.Begin().Equal(src.End()) || src.Len() != 0 {
		t.Fatal("moved-from tree is not empty")
	}
	if got := all(dst); !reflect.DeepEqual(got, want) {
		t.Fatalf("moved tree:\n got: %v\nwant: %v", got, want)
	}
	// The moved-from tree stays usable.
	src.Insert(7)
	if got := all(src); !reflect.DeepEqual(got, []int{7}) {
		t.Fatalf("reuse after move: got %v", got)
	}

	other := New[int](1)
	other.Insert(1000)
	other.MoveFrom(dst)
	if dst.Len() != 0 || dst.Height() != 0 {
		t.Fatal("move assignment left source non-empty")
	}
	if other.MaxNodeElems() != 3 {
		t.Fatalf("move assignment capacity: got %d want 3", other.MaxNodeElems())
	}
	if got := all(other); !reflect.DeepEqual(got, want) {
		t.Fatalf("move assignment:\n got: %v\nwant: %v", got, want)
	}
	other.MoveFrom(other)
	if got := all(other); !reflect.DeepEqual(got, want) {
		t.Fatal("self move changed the tree")
	}
}

func TestFreeList(t *testing.T) {
	f := NewFreeList[int](DefaultFreeListSize)
	tr := NewWithFreeList(1, Less[int](), f)
	for _, v := range rang(10) {
		tr.Insert(v)
	}
	tr.Clear(true)
	if got := f.Len(); got != 10 {
		t.Fatalf("freelist: got %d nodes want 10", got)
	}
	shared := NewWithFreeList(1, Less[int](), f)
	for _, v := range rang(4) {
		shared.Insert(v)
	}
	if got := f.Len(); got != 6 {
		t.Fatalf("freelist after reuse: got %d nodes want 6", got)
	}
	if err := shared.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestBadCapacity(t *testing.T) {
	mustPanic(t, "zero capacity", func() { New[int](0) })
	mustPanic(t, "negative capacity", func() { New[int](-1) })
}

func TestCheckDetectsCorruption(t *testing.T) {
	tr := New[int](2)
	for _, v := range []int{10, 20, 30} {
		tr.Insert(v)
	}
	tr.root.elements[0].value, tr.root.elements[1].value = 20, 10
	if err := tr.Check(); err == nil {
		t.Fatal("check accepted an unordered node")
	}
}

const benchmarkTreeSize = 10000

func BenchmarkInsert(b *testing.B) {
	b.StopTimer()
	insertP := perm(benchmarkTreeSize)
	b.StartTimer()
	i := 0
	for i < b.N {
		tr := New[int](*maxNodeElems)
		for _, v := range insertP {
			tr.Insert(v)
			i++
			if i >= b.N {
				return
			}
		}
	}
}

func BenchmarkFind(b *testing.B) {
	b.StopTimer()
	insertP := perm(benchmarkTreeSize)
	findP := perm(benchmarkTreeSize)
	tr := New[int](*maxNodeElems)
	for _, v := range insertP {
		tr.Insert(v)
	}
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		tr.Find(findP[i%benchmarkTreeSize])
	}
}

func BenchmarkIterate(b *testing.B) {
	b.StopTimer()
	tr := New[int](*maxNodeElems)
	for _, v := range perm(benchmarkTreeSize) {
		tr.Insert(v)
	}
	sorted := sort.IntSlice(rang(benchmarkTreeSize))
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		j := 0
		for it := tr.Begin(); it.Valid(); it.Next() {
			if it.Value() != sorted[j] {
				b.Fatal("out of order")
			}
			j++
		}
	}
}

func BenchmarkClone(b *testing.B) {
	b.StopTimer()
	tr := New[int](*maxNodeElems)
	for _, v := range perm(benchmarkTreeSize) {
		tr.Insert(v)
	}
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		tr.Clone()
	}
}
