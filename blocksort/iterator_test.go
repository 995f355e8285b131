// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blocksort

import "testing"

// TestLevelIteratorCoversArray checks that walking every range at
// every level of the iterator, for a spread of sizes, always covers
// exactly [0, size) with no gaps or overlaps at a given level.
func TestLevelIteratorCoversArray(t *testing.T) {
	for _, size := range []int{4, 5, 7, 8, 9, 15, 16, 17, 100, 101, 1000} {
		it := newLevelIterator(size, 4)
		level := 0
		for {
			it.begin()
			pos := 0
			for !it.finished() {
				r := it.nextRange()
				if r.Start != pos {
					t.Fatalf("size=%d level=%d: gap/overlap at %d, range %v", size, level, pos, r)
				}
				pos = r.End
			}
			if pos != size {
				t.Fatalf("size=%d level=%d: coverage ended at %d, want %d", size, level, pos, size)
			}
			if !it.nextLevel() {
				break
			}
			level++
		}
	}
}

// TestLevelIteratorRangeBalance checks that within one level, no two
// ranges differ in length by more than one, the defining property
// that lets the merge driver bound per-level work without requiring
// sizes to be powers of two.
func TestLevelIteratorRangeBalance(t *testing.T) {
	for _, size := range []int{13, 37, 61, 97, 257, 1001} {
		it := newLevelIterator(size, 4)
		it.begin()
		min, max := -1, -1
		for !it.finished() {
			l := it.nextRange().Len()
			if min == -1 || l < min {
				min = l
			}
			if l > max {
				max = l
			}
		}
		if max-min > 1 {
			t.Errorf("size=%d: level-0 range lengths span [%d, %d], want span <= 1", size, min, max)
		}
	}
}
