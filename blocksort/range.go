// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blocksort

// A Range describes a half-open index interval [Start, End) within the
// slice being sorted. A Range never owns storage; it is a pure value.
type Range struct {
	Start, End int
}

// Len reports the number of elements spanned by r.
func (r Range) Len() int { return r.End - r.Start }

func floorPowerOfTwo(x int) int {
	for i := 1; i <= 32; i <<= 1 {
		x |= x >> i
	}
	return x - (x >> 1)
}

// reverse reverses the elements of s.data within r.
func (s *sorter[T, K]) reverse(r Range) {
	for i, j := r.Start, r.End-1; i < j; i, j = i+1, j-1 {
		s.data[i], s.data[j] = s.data[j], s.data[i]
	}
}

// blockSwap swaps the size elements starting at start1 with the size
// elements starting at start2. The two ranges must be disjoint.
func (s *sorter[T, K]) blockSwap(start1, start2, size int) {
	for i := 0; i < size; i++ {
		s.data[start1+i], s.data[start2+i] = s.data[start2+i], s.data[start1+i]
	}
}

// rotate rotates r left by amount, i.e. [0..amount) and [amount..len)
// trade places while preserving the relative order within each part.
// Implemented as three reversals, which keeps it stable and O(1) extra
// memory regardless of how amount relates to r.Len().
func (s *sorter[T, K]) rotate(amount int, r Range) {
	if amount <= 0 || amount >= r.Len() {
		return
	}
	s.reverse(Range{r.Start, r.Start + amount})
	s.reverse(Range{r.Start + amount, r.End})
	s.reverse(r)
}
