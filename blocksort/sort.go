// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blocksort

import "cmp"

// SortKeyFunc sorts data in place in non-decreasing order of key(x)
// under less, using the Block Sort algorithm. It is the direct
// counterpart of the algorithm's external interface: a stable,
// in-place, comparison-based sort of a random-access sequence driven
// by a caller-supplied strict weak ordering (less) and projection
// (key), using only a fixed amount of auxiliary memory.
//
// less must define a strict weak ordering over the values key
// produces: less(a, b) is true iff a must precede b. Elements for
// which neither less(key(x), key(y)) nor less(key(y), key(x)) holds
// are considered equivalent, and SortKeyFunc preserves their relative
// order from the input.
//
// If less does not define a strict weak ordering, data is left in some
// permutation of its input, but sortedness is not guaranteed. If less
// or key panics, the panic propagates to the caller and data is not
// necessarily a permutation of its input: some merges stage elements
// through the fixed-size cache, and elements held only there at the
// time of the panic are lost while others are left duplicated.
func SortKeyFunc[T, K any](data []T, key func(T) K, less func(a, b K) bool) {
	s := &sorter[T, K]{data: data, key: key, less: less}
	s.run()
}

// SortFunc sorts data in place in non-decreasing order under less. It
// is SortKeyFunc with the identity projection.
func SortFunc[E any](data []E, less func(a, b E) bool) {
	SortKeyFunc(data, identity[E], less)
}

// Sort sorts data in place in ascending order, following the natural
// order of its element type.
func Sort[E cmp.Ordered](data []E) {
	SortFunc(data, less[E])
}

// IsSortedFunc reports whether data is sorted in non-decreasing order
// under less.
func IsSortedFunc[E any](data []E, less func(a, b E) bool) bool {
	for i := 1; i < len(data); i++ {
		if less(data[i], data[i-1]) {
			return false
		}
	}
	return true
}

// IsSorted reports whether data is sorted in ascending order.
func IsSorted[E cmp.Ordered](data []E) bool {
	return IsSortedFunc(data, less[E])
}

func identity[E any](e E) E { return e }

func less[E cmp.Ordered](a, b E) bool { return a < b }

// run drives the bottom-up merge sort: level 0 is handled by the
// small-size base cases, and every level after that is merged by
// whichever of the three strategies fits the cache budget, until the
// iterator reports there is nothing left to double.
func (s *sorter[T, K]) run() {
	n := len(s.data)
	if n < 4 {
		s.tinySort()
		return
	}

	it := newLevelIterator(n, 4)
	for !it.finished() {
		s.networkSort(it.nextRange())
	}
	if n < 8 {
		return
	}

	var cacheArr [cacheSize]T
	s.cache = cacheArr[:]

	for {
		l := it.length()
		switch {
		case l < cacheSize && (l+1)*4 <= cacheSize && l*4 <= n:
			s.doubleMergeLevel(it)
			it.nextLevel() // two levels were merged in this pass
		case l < cacheSize:
			s.singleMergeLevel(it)
		default:
			s.slowMergeLevel(it)
		}

		if !it.nextLevel() {
			break
		}
	}
}

// singleMergeLevel merges every (A, B) pair at the current level
// through the cache, used once four subranges no longer fit in it at
// once. Each pair is short-circuited when it's already in the right
// relative order.
func (s *sorter[T, K]) singleMergeLevel(it *levelIterator) {
	it.begin()
	for !it.finished() {
		a := it.nextRange()
		b := it.nextRange()

		switch {
		case s.less2(b.End-1, a.Start):
			// B sorts entirely before A: a single rotation suffices.
			s.rotate(a.Len(), Range{a.Start, b.End})
		case s.less2(b.Start, a.End-1):
			copy(s.cache[:a.Len()], s.data[a.Start:a.End])
			s.mergeExternal(a, b)
		}
	}
}

// doubleMergeLevel merges two levels in a single pass by staging a
// quadruple of subranges through the cache twice: A1|B1 and A2|B2 are
// each merged into the cache, and those two cache runs are then merged
// back into the array. This only runs when four subranges fit in the
// cache at once.
func (s *sorter[T, K]) doubleMergeLevel(it *levelIterator) {
	it.begin()
	for !it.finished() {
		a1 := it.nextRange()
		b1 := it.nextRange()
		a2 := it.nextRange()
		b2 := it.nextRange()

		switch {
		case s.less2(b1.End-1, a1.Start):
			copy(s.cache[b1.Len():], s.data[a1.Start:a1.End])
			copy(s.cache[:b1.Len()], s.data[b1.Start:b1.End])
		case s.less2(b1.Start, a1.End-1):
			s.mergeInto(s.data, a1, b1, s.cache)
		default:
			if !s.less2(b2.Start, a2.End-1) && !s.less2(a2.Start, b1.End-1) {
				continue
			}
			copy(s.cache, s.data[a1.Start:a1.End])
			copy(s.cache[a1.Len():], s.data[b1.Start:b1.End])
		}
		a1 = Range{a1.Start, b1.End}

		switch {
		case s.less2(b2.End-1, a2.Start):
			copy(s.cache[a1.Len()+b2.Len():], s.data[a2.Start:a2.End])
			copy(s.cache[a1.Len():], s.data[b2.Start:b2.End])
		case s.less2(b2.Start, a2.End-1):
			s.mergeInto(s.data, a2, b2, s.cache[a1.Len():])
		default:
			copy(s.cache[a1.Len():], s.data[a2.Start:a2.End])
			copy(s.cache[a1.Len()+a2.Len():], s.data[b2.Start:b2.End])
		}
		a2 = Range{a2.Start, b2.End}

		a3 := Range{0, a1.Len()}
		b3 := Range{a1.Len(), a1.Len() + a2.Len()}

		switch {
		case s.lessIn(s.cache, b3.End-1, a3.Start):
			copy(s.data[a1.Start+a2.Len():], s.cache[a3.Start:a3.End])
			copy(s.data[a1.Start:], s.cache[b3.Start:b3.End])
		case s.lessIn(s.cache, b3.Start, a3.End-1):
			s.mergeInto(s.cache, a3, b3, s.data[a1.Start:])
		default:
			copy(s.data[a1.Start:], s.cache[a3.Start:a3.End])
			copy(s.data[a1.Start+a1.Len():], s.cache[b3.Start:b3.End])
		}
	}
}

// slowMergeLevel handles a level whose subranges no longer fit the
// cache: it extracts up to two internal buffers from the level's own
// values, block-sorts every (A, B) pair using those buffers (merging
// each dropped A block through the cache when it fits, else through
// buffer2, else with mergeInPlace when there is no buffer2), then
// restores the buffers to sorted order in their rightful places.
func (s *sorter[T, K]) slowMergeLevel(it *levelIterator) {
	l := it.length()
	block := isqrt(l)

	buffer1, buffer2, pulls := s.findBuffers(it, block)
	s.pullOut(&pulls)

	bufferSize := buffer1.Len()
	block = l/bufferSize + 1

	it.begin()
	for !it.finished() {
		a := it.nextRange()
		b := it.nextRange()

		start := a.Start
		if start == pulls[0].r.Start {
			switch {
			case pulls[0].from > pulls[0].to:
				a.Start += pulls[0].count
				if a.Len() == 0 {
					continue
				}
			case pulls[0].from < pulls[0].to:
				b.End -= pulls[0].count
				if b.Len() == 0 {
					continue
				}
			}
		}
		if start == pulls[1].r.Start {
			switch {
			case pulls[1].from > pulls[1].to:
				a.Start += pulls[1].count
				if a.Len() == 0 {
					continue
				}
			case pulls[1].from < pulls[1].to:
				b.End -= pulls[1].count
				if b.Len() == 0 {
					continue
				}
			}
		}

		switch {
		case s.less2(b.End-1, a.Start):
			s.rotate(a.Len(), Range{a.Start, b.End})
		case s.less2(a.End, a.End-1):
			s.blockMergePair(a, b, block, buffer1, buffer2)
		}
	}

	s.insertionSort(buffer2)
	s.redistribute(&pulls)
}
