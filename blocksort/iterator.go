// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blocksort

// levelIterator produces a sequence of adjacent ranges that exactly
// partition [0, size) into equal-sized (±1) pieces, for each level of
// a bottom-up merge sort, without requiring size to be a power of two.
// It does this by taking the largest power of two at most size,
// dividing it by the minimum level to get the denominator, walking
// that many evenly sized steps at level 0, and
// using a Bresenham-style fractional accumulator to distribute the
// size%denominator remainder across those steps by one extra element
// each.
type levelIterator struct {
	size, powerOfTwo int
	decimal, numerator, denominator int
	decimalStep, numeratorStep int
}

func newLevelIterator(size, minLevel int) *levelIterator {
	pow2 := floorPowerOfTwo(size)
	denom := pow2 / minLevel
	return &levelIterator{
		size:         size,
		powerOfTwo:   pow2,
		denominator:  denom,
		decimalStep:  size / denom,
		numeratorStep: size % denom,
	}
}

// begin resets the cursor to the start of the current level.
func (it *levelIterator) begin() {
	it.decimal, it.numerator = 0, 0
}

// nextRange returns the next range at the current level and advances
// the cursor past it.
func (it *levelIterator) nextRange() Range {
	start := it.decimal

	it.decimal += it.decimalStep
	it.numerator += it.numeratorStep
	if it.numerator >= it.denominator {
		it.numerator -= it.denominator
		it.decimal++
	}

	return Range{start, it.decimal}
}

// finished reports whether the cursor has covered [0, size) at the
// current level.
func (it *levelIterator) finished() bool {
	return it.decimal >= it.size
}

// nextLevel doubles the nominal range length for the next level. It
// returns false once that length would cover the whole array, at which
// point the sort is complete and the caller should stop.
func (it *levelIterator) nextLevel() bool {
	it.decimalStep += it.decimalStep
	it.numeratorStep += it.numeratorStep
	if it.numeratorStep >= it.denominator {
		it.numeratorStep -= it.denominator
		it.decimalStep++
	}
	return it.decimalStep < it.size
}

// length reports the nominal range length at the current level.
func (it *levelIterator) length() int {
	return it.decimalStep
}
