// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blocksort

import "testing"

func TestMergeInto(t *testing.T) {
	data := []int{1, 3, 5, 2, 4, 6}
	s := newIntSorter(data)
	dst := make([]int, 6)
	s.mergeInto(data, Range{0, 3}, Range{3, 6}, dst)
	want := []int{1, 2, 3, 4, 5, 6}
	for i := range dst {
		if dst[i] != want[i] {
			t.Errorf("mergeInto = %v, want %v", dst, want)
			break
		}
	}
}

func TestMergeExternal(t *testing.T) {
	data := []int{1, 3, 5, 2, 4, 6}
	s := newIntSorter(data)
	s.cache = make([]int, len(data))
	a := Range{0, 3}
	b := Range{3, 6}
	copy(s.cache[:a.Len()], data[a.Start:a.End])
	s.mergeExternal(a, b)
	want := []int{1, 2, 3, 4, 5, 6}
	for i := range data {
		if data[i] != want[i] {
			t.Errorf("mergeExternal = %v, want %v", data, want)
			break
		}
	}
}

func TestMergeInternal(t *testing.T) {
	// buffer occupies a region disjoint from both A and B; A and B
	// themselves must be adjacent, exactly as blockMergePair arranges
	// them before calling mergeInternal.
	data := []int{0, 0, 0, 1, 3, 5, 2, 4, 6}
	s := newIntSorter(data)
	buffer := Range{0, 3}
	a := Range{3, 6}
	b := Range{6, 9}
	s.blockSwap(a.Start, buffer.Start, a.Len())
	s.mergeInternal(a, b, buffer)
	want := []int{1, 2, 3, 4, 5, 6}
	for i := 0; i < 6; i++ {
		if data[i+3] != want[i] {
			t.Errorf("mergeInternal = %v, want merged region %v at offset 3", data, want)
			break
		}
	}
}

func TestMergeInPlace(t *testing.T) {
	data := []int{1, 3, 5, 2, 4, 6}
	s := newIntSorter(data)
	s.mergeInPlace(Range{0, 3}, Range{3, 6})
	want := []int{1, 2, 3, 4, 5, 6}
	for i := range data {
		if data[i] != want[i] {
			t.Errorf("mergeInPlace = %v, want %v", data, want)
			break
		}
	}
}

func TestMergeInPlaceEmptySide(t *testing.T) {
	data := []int{1, 2, 3}
	s := newIntSorter(data)
	s.mergeInPlace(Range{0, 3}, Range{3, 3})
	want := []int{1, 2, 3}
	for i := range data {
		if data[i] != want[i] {
			t.Errorf("mergeInPlace with empty B mutated data: got %v, want %v", data, want)
		}
	}
}
