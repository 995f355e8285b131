// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blocksort

// All four merge strategies below require that A immediately precedes
// B (B.Start == A.End) and that each of A and B is individually sorted
// under s.lessVal. Every tie is resolved in favor of the A element,
// which is what makes the merges stable.

// mergeInto merges from[A] and from[B] and writes the result into the
// start of dst, without mutating from. from and dst may be s.data, a
// cache slice, or an internal buffer view, as long as they don't alias
// the ranges they're merging from.
func (s *sorter[T, K]) mergeInto(from []T, a, b Range, dst []T) {
	ai, bi, ins := a.Start, b.Start, 0
	for {
		if !s.lessVal(from[bi], from[ai]) {
			dst[ins] = from[ai]
			ai++
			ins++
			if ai == a.End {
				copy(dst[ins:], from[bi:b.End])
				return
			}
		} else {
			dst[ins] = from[bi]
			bi++
			ins++
			if bi == b.End {
				copy(dst[ins:], from[ai:a.End])
				return
			}
		}
	}
}

// mergeExternal merges A and B in place starting at A.Start, given that
// A's elements have already been copied into s.cache[0:A.Len()]; B is
// read directly from s.data. Used when A.Len() <= cacheSize.
func (s *sorter[T, K]) mergeExternal(a, b Range) {
	aLen := a.Len()
	ai, bi, ins := 0, b.Start, a.Start

	if a.Len() > 0 && b.Len() > 0 {
		for {
			if !s.lessVal(s.data[bi], s.cache[ai]) {
				s.data[ins] = s.cache[ai]
				ai++
				ins++
				if ai == aLen {
					break
				}
			} else {
				s.data[ins] = s.data[bi]
				bi++
				ins++
				if bi == b.End {
					break
				}
			}
		}
	}
	copy(s.data[ins:], s.cache[ai:aLen])
}

// mergeInternal merges A and B in place, given that A's elements have
// already been swapped into buffer[0:A.Len()]. It merges by swapping
// rather than copying, so buffer ends up holding A's original contents
// in some other order. Used when A doesn't fit the cache but an
// internal buffer of sufficient size does exist.
func (s *sorter[T, K]) mergeInternal(a, b Range, buffer Range) {
	ai, bi, ins := buffer.Start, b.Start, a.Start
	aLast := buffer.Start + a.Len()

	if a.Len() > 0 && b.Len() > 0 {
		for {
			if !s.lessVal(s.data[bi], s.data[ai]) {
				s.data[ins], s.data[ai] = s.data[ai], s.data[ins]
				ai++
				ins++
				if ai == aLast {
					break
				}
			} else {
				s.data[ins], s.data[bi] = s.data[bi], s.data[ins]
				bi++
				ins++
				if bi == b.End {
					break
				}
			}
		}
	}
	s.blockSwap(ai, ins, aLast-ai)
}

// mergeInPlace merges A and B with no scratch space at all. It
// repeatedly finds the lower bound of A's first element within B and
// rotates that prefix of B before A, which both extends the sorted
// prefix and narrows A and B for the next iteration.
//
// This is acceptable only because it is invoked exclusively when
// neither A nor B contained √A unique values to build a buffer from,
// which bounds both the number of rotations and their length to O(√A)
// and the total work for the level to O(N). It is not a general
// purpose merge.
func (s *sorter[T, K]) mergeInPlace(a, b Range) {
	if a.Len() == 0 || b.Len() == 0 {
		return
	}
	for {
		mid := s.binaryFirst(s.data[a.Start], b)
		amount := mid - a.End
		s.rotate(a.Len(), Range{a.Start, mid})
		if b.End == mid {
			return
		}

		b.Start = mid
		a = Range{a.Start + amount, b.Start}
		a.Start = s.binaryLast(s.data[a.Start], a)
		if a.Len() == 0 {
			return
		}
	}
}
