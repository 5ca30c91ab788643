// SPDX-License-Identifier: MIT

package linalg

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// IndexSet is an unordered set of element positions used by Gather and
// GatherRows. Insertion order and duplicates are irrelevant. Negative
// indices and indices above math.MaxUint32 are dropped, so they never match.
//
// The zero value is an empty set ready to use.
type IndexSet struct {
	bm *roaring.Bitmap
}

// NewIndexSet builds a set from the given indices.
func NewIndexSet(indices ...int) IndexSet {
	s := IndexSet{bm: roaring.New()}
	for _, i := range indices {
		s.add(i)
	}

	return s
}

// RangeSet returns the set {0, 1, ..., n-1}. n<=0 yields the empty set.
func RangeSet(n int) IndexSet {
	s := IndexSet{bm: roaring.New()}
	if n > 0 {
		s.bm.AddRange(0, min(uint64(n), uint64(math.MaxUint32)+1))
	}

	return s
}

// Add returns a new set containing s and the given indices; s is unchanged.
func (s IndexSet) Add(indices ...int) IndexSet {
	out := IndexSet{bm: roaring.New()}
	if s.bm != nil {
		out.bm.Or(s.bm)
	}
	for _, i := range indices {
		out.add(i)
	}

	return out
}

// add inserts i in place, ignoring positions that cannot exist.
func (s IndexSet) add(i int) {
	if i < 0 || uint64(i) > math.MaxUint32 {
		return
	}
	s.bm.Add(uint32(i))
}

// Contains reports whether i is in the set.
func (s IndexSet) Contains(i int) bool {
	if s.bm == nil || i < 0 || uint64(i) > math.MaxUint32 {
		return false
	}

	return s.bm.Contains(uint32(i))
}

// Len returns the number of distinct indices.
func (s IndexSet) Len() int {
	if s.bm == nil {
		return 0
	}

	return int(s.bm.GetCardinality())
}

// Indices returns the members in ascending order.
func (s IndexSet) Indices() []int {
	if s.bm == nil {
		return []int{}
	}

	out := make([]int, 0, s.bm.GetCardinality())
	it := s.bm.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}

	return out
}

// each calls fn for every member below limit, in ascending order.
// Ascending bitmap order equals source order, which Gather relies on.
func (s IndexSet) each(limit int, fn func(i int)) {
	if s.bm == nil || limit <= 0 {
		return
	}

	it := s.bm.Iterator()
	for it.HasNext() {
		i := int(it.Next())
		if i >= limit {
			return
		}
		fn(i)
	}
}
