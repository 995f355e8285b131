// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blocksort

import (
	"math/rand"
	"testing"
)

// TestNetworkSortAllPermutations exhaustively checks the comparator
// networks used for ranges of length 4 through 8 against every
// permutation of a small all-distinct input, since these networks are
// hand-unrolled and a single swapped comparison would only show up on
// specific orderings.
func TestNetworkSortAllPermutations(t *testing.T) {
	for n := 4; n <= 8; n++ {
		base := make([]int, n)
		for i := range base {
			base[i] = i
		}
		permute(base, 0, func(p []int) {
			data := append([]int(nil), p...)
			s := newIntSorter(data)
			s.networkSort(Range{0, n})
			for i := 1; i < n; i++ {
				if data[i] < data[i-1] {
					t.Fatalf("n=%d permutation %v sorted to %v, not sorted", n, p, data)
				}
			}
		})
	}
}

// TestNetworkSortStability checks that the order-tag shadowing in
// networkSort keeps equal elements in their original relative order,
// since the underlying comparator networks are not stable on their
// own.
func TestNetworkSortStability(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for trial := 0; trial < 200; trial++ {
		n := 4 + trial%5
		data := make([]tagged, n)
		for i := range data {
			data[i] = tagged{key: r.Intn(3), tag: i}
		}
		s := &sorter[tagged, int]{
			data: data,
			key:  func(v tagged) int { return v.key },
			less: func(a, b int) bool { return a < b },
		}
		s.networkSort(Range{0, n})

		lastKey, lastTag := -1, -1
		for _, v := range data {
			if v.key == lastKey && v.tag < lastTag {
				t.Fatalf("n=%d: equal keys reordered: %v", n, data)
			}
			lastKey, lastTag = v.key, v.tag
		}
	}
}

// permute calls f with every permutation of data, by recursively
// swapping each remaining element into position k and swapping it back.
func permute(data []int, k int, f func([]int)) {
	if k == len(data) {
		f(data)
		return
	}
	for i := k; i < len(data); i++ {
		data[k], data[i] = data[i], data[k]
		permute(data, k+1, f)
		data[k], data[i] = data[i], data[k]
	}
}
