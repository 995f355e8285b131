// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blocksort

// cacheSize is the fixed size of the scratch buffer the merge driver
// uses to speed up merges whose A range is small enough to fit in it.
// It is a tuning constant, not a correctness parameter: the algorithm
// is correct for any non-negative cache size, down to zero, which
// simply disables the cache-based fast paths.
const cacheSize = 512

// sorter carries the state threaded through every step of one Sort
// call: the slice being ordered, the projection and comparator the
// caller supplied, and the fixed-size cache used by the merge driver.
// It never allocates beyond its own fields.
type sorter[T, K any] struct {
	data []T
	key  func(T) K
	less func(a, b K) bool
	cache []T
}

// lessVal reports whether a sorts before b under the caller's
// projection and comparator.
func (s *sorter[T, K]) lessVal(a, b T) bool {
	return s.less(s.key(a), s.key(b))
}

// lessAt reports whether s.data[i] sorts before value.
func (s *sorter[T, K]) lessAt(i int, value T) bool {
	return s.lessVal(s.data[i], value)
}

// lessValAt reports whether value sorts before s.data[i].
func (s *sorter[T, K]) lessValAt(value T, i int) bool {
	return s.lessVal(value, s.data[i])
}

// less2 reports whether s.data[i] sorts before s.data[j].
func (s *sorter[T, K]) less2(i, j int) bool {
	return s.lessVal(s.data[i], s.data[j])
}

// lessIn reports whether sl[i] sorts before sl[j], for a slice other
// than s.data (typically s.cache, while merging through the scratch
// buffer).
func (s *sorter[T, K]) lessIn(sl []T, i, j int) bool {
	return s.lessVal(sl[i], sl[j])
}
