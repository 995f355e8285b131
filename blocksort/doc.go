// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package blocksort implements Block Sort, also known as WikiSort: a
// stable, in-place, comparison-based sort that runs in O(N log N)
// comparisons and moves while using only a fixed amount of auxiliary
// memory, independent of the size of the input.
//
// The algorithm is a bottom-up merge sort. Small runs are ordered with
// hard-coded comparator networks, and the merge step for each level
// chooses among four strategies depending on how much scratch space is
// available: merging into a small fixed-size cache, merging out of that
// cache back into place, merging through values "stolen" from the input
// itself as a movable internal buffer, or falling back to a
// rotation-based in-place merge when neither cache nor buffer is
// available. See the package-level functions Sort, SortFunc, and
// SortKeyFunc.
package blocksort
