// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blocksort

// tinySort handles the whole input in place when it has fewer than 4
// elements, using a hard-coded stable insertion order.
func (s *sorter[T, K]) tinySort() {
	switch len(s.data) {
	case 2:
		if s.less2(1, 0) {
			s.data[0], s.data[1] = s.data[1], s.data[0]
		}
	case 3:
		if s.less2(1, 0) {
			s.data[0], s.data[1] = s.data[1], s.data[0]
		}
		if s.less2(2, 1) {
			s.data[1], s.data[2] = s.data[2], s.data[1]
			if s.less2(1, 0) {
				s.data[0], s.data[1] = s.data[1], s.data[0]
			}
		}
	}
}

// networkSort orders one level-0 slice of length 4-8 using a published
// optimal comparator network for that length. Because the network is
// not inherently stable, each element's original position within the
// range is tracked in order and folded into the swap condition so that
// equivalent elements never trade places.
func (s *sorter[T, K]) networkSort(r Range) {
	order := [8]uint8{0, 1, 2, 3, 4, 5, 6, 7}
	base := r.Start

	swap := func(x, y int) {
		if s.less2(base+y, base+x) || (order[x] > order[y] && !s.less2(base+x, base+y)) {
			s.data[base+x], s.data[base+y] = s.data[base+y], s.data[base+x]
			order[x], order[y] = order[y], order[x]
		}
	}

	switch r.Len() {
	case 4:
		swap(0, 1)
		swap(2, 3)
		swap(0, 2)
		swap(1, 3)
		swap(1, 2)
	case 5:
		swap(0, 1)
		swap(3, 4)
		swap(2, 4)
		swap(2, 3)
		swap(1, 4)
		swap(0, 3)
		swap(0, 2)
		swap(1, 3)
		swap(1, 2)
	case 6:
		swap(1, 2)
		swap(4, 5)
		swap(0, 2)
		swap(3, 5)
		swap(0, 1)
		swap(3, 4)
		swap(2, 5)
		swap(0, 3)
		swap(1, 4)
		swap(2, 4)
		swap(1, 3)
		swap(2, 3)
	case 7:
		swap(1, 2)
		swap(3, 4)
		swap(5, 6)
		swap(0, 2)
		swap(3, 5)
		swap(4, 6)
		swap(0, 1)
		swap(4, 5)
		swap(2, 6)
		swap(0, 4)
		swap(1, 5)
		swap(0, 3)
		swap(2, 5)
		swap(1, 3)
		swap(2, 4)
		swap(2, 3)
	case 8:
		swap(0, 1)
		swap(2, 3)
		swap(4, 5)
		swap(6, 7)
		swap(0, 2)
		swap(1, 3)
		swap(4, 6)
		swap(5, 7)
		swap(1, 2)
		swap(5, 6)
		swap(0, 4)
		swap(3, 7)
		swap(1, 5)
		swap(2, 6)
		swap(1, 4)
		swap(3, 6)
		swap(2, 4)
		swap(3, 5)
		swap(3, 4)
	}
}
