// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blocksort

// pull describes one planned extraction of count unique values found
// at index from, to be collected at index to, within r. When to <
// from the values are rotated to the left into a prefix of an A range;
// when to > from they are rotated to the right into a suffix of a B
// range.
type pull struct {
	from, to, count int
	r               Range
}

// findBuffers scans every (A, B) pair at the current level looking for
// up to two internal buffers of l/blockSize + 1 unique values each,
// where l is the level's range length. It returns
// the two buffer ranges (buffer2 may be empty) and the pull
// descriptors that record where each buffer's values came from, which
// pullOut then uses to physically move them and redistribute then
// uses to put them back.
func (s *sorter[T, K]) findBuffers(it *levelIterator, blockSize int) (buffer1, buffer2 Range, pulls [2]pull) {
	l := it.length()
	bufferSize := l/blockSize + 1

	find := bufferSize + bufferSize
	findSeparately := false
	if blockSize <= cacheSize {
		find = bufferSize
	} else if find > l {
		find = bufferSize
		findSeparately = true
	}

	pullIndex := 0

	it.begin()
scan:
	for !it.finished() {
		a := it.nextRange()
		b := it.nextRange()

		// Probe A from the left for `find` unique values; they would
		// be pulled out to the start of A.
		last, count := a.Start, 1
		for count < find {
			idx := s.findLastForward(s.data[last], Range{last + 1, a.End}, find-count)
			if idx == a.End {
				break
			}
			last = idx
			count++
		}
		index := last

		if count >= bufferSize {
			pulls[pullIndex] = pull{from: index, to: a.Start, count: count, r: Range{a.Start, b.End}}
			pullIndex = 1

			switch {
			case count == bufferSize+bufferSize:
				buffer1 = Range{a.Start, a.Start + bufferSize}
				buffer2 = Range{a.Start + bufferSize, a.Start + count}
				break scan
			case find == bufferSize+bufferSize:
				buffer1 = Range{a.Start, a.Start + count}
				find = bufferSize
			case blockSize <= cacheSize:
				buffer1 = Range{a.Start, a.Start + count}
				break scan
			case findSeparately:
				buffer1 = Range{a.Start, a.Start + count}
				findSeparately = false
			default:
				buffer2 = Range{a.Start, a.Start + count}
				break scan
			}
		} else if pullIndex == 0 && count > buffer1.Len() {
			buffer1 = Range{a.Start, a.Start + count}
			pulls[pullIndex] = pull{from: index, to: a.Start, count: count, r: Range{a.Start, b.End}}
		}

		// Probe B from the right; these values would be pulled out to
		// the end of B.
		last, count = b.End-1, 1
		for count < find {
			idx := s.findFirstBackward(s.data[last], Range{b.Start, last}, find-count)
			if idx == b.Start {
				break
			}
			last = idx - 1
			count++
		}
		index = last

		if count >= bufferSize {
			pulls[pullIndex] = pull{from: index, to: b.End, count: count, r: Range{a.Start, b.End}}
			pullIndex = 1

			switch {
			case count == bufferSize+bufferSize:
				buffer1 = Range{b.End - count, b.End - bufferSize}
				buffer2 = Range{b.End - bufferSize, b.End}
				break scan
			case find == bufferSize+bufferSize:
				buffer1 = Range{b.End - count, b.End}
				find = bufferSize
			case blockSize <= cacheSize:
				buffer1 = Range{b.End - count, b.End}
				break scan
			case findSeparately:
				buffer1 = Range{b.End - count, b.End}
				findSeparately = false
			default:
				if pulls[0].r.Start == a.Start {
					pulls[0].r.End -= pulls[1].count
				}
				buffer2 = Range{b.End - count, b.End}
				break scan
			}
		} else if pullIndex == 0 && count > buffer1.Len() {
			buffer1 = Range{b.End - count, b.End}
			pulls[pullIndex] = pull{from: index, to: b.End, count: count, r: Range{a.Start, b.End}}
		}
	}

	return buffer1, buffer2, pulls
}

// pullOut physically moves the values described by each pull
// descriptor into the contiguous buffer range it was planned for,
// using a series of accelerated searches and rotations.
func (s *sorter[T, K]) pullOut(pulls *[2]pull) {
	for pi := 0; pi < 2; pi++ {
		p := &pulls[pi]
		length := p.count

		if p.to < p.from {
			index := p.from
			for count := 1; count < length; count++ {
				index = s.findFirstBackward(s.data[index-1], Range{p.to, p.from - (count - 1)}, length-count)
				r := Range{index + 1, p.from + 1}
				s.rotate(r.Len()-count, r)
				p.from = index + count
			}
		} else if p.to > p.from {
			index := p.from + 1
			for count := 1; count < length; count++ {
				index = s.findLastForward(s.data[index], Range{index, p.to}, length-count)
				r := Range{p.from, index - 1}
				s.rotate(count, r)
				p.from = index - 1 - count
			}
		}
	}
}

// redistribute is the inverse of pullOut: once a level's merges are
// done, it scatters each buffer's values back into the positions where
// they belong among the rest of the (now fully merged) range.
func (s *sorter[T, K]) redistribute(pulls *[2]pull) {
	for pi := 0; pi < 2; pi++ {
		p := pulls[pi]
		unique := p.count * 2

		if p.from > p.to {
			buf := Range{p.r.Start, p.r.Start + p.count}
			for buf.Len() > 0 {
				index := s.findFirstForward(s.data[buf.Start], Range{buf.End, p.r.End}, unique)
				amount := index - buf.End
				s.rotate(buf.Len(), Range{buf.Start, index})
				buf.Start += amount + 1
				buf.End += amount
				unique -= 2
			}
		} else if p.from < p.to {
			buf := Range{p.r.End - p.count, p.r.End}
			for buf.Len() > 0 {
				index := s.findLastBackward(s.data[buf.End-1], Range{p.r.Start, buf.Start}, unique)
				amount := buf.Start - index
				s.rotate(amount, Range{index, buf.End})
				buf.Start -= amount
				buf.End -= amount + 1
				unique -= 2
			}
		}
	}
}

// blockMergePair merges one (A, B) pair at a level where the cache is
// too small for a straight MergeExternal, using buffer1 as a movable
// set of tags for the heads of A's blocks and, when available, buffer2
// or the cache as scratch space for merging a dropped A block with the
// B values that follow it.
func (s *sorter[T, K]) blockMergePair(a, b Range, block int, buffer1, buffer2 Range) {
	blockA := Range{a.Start, a.End}
	firstA := Range{a.Start, a.Start + blockA.Len()%block}

	// Tag each A block's head with a distinct value from buffer1, so
	// that the relative order of the tags in buffer1 mirrors the
	// relative order of the (already sorted) A-block heads.
	indexA := buffer1.Start
	for index := firstA.End; index < blockA.End; index += block {
		s.data[indexA], s.data[index] = s.data[index], s.data[indexA]
		indexA++
	}

	lastA := firstA
	lastB := Range{0, 0}
	blockB := Range{b.Start, b.Start + minInt(block, b.Len())}
	blockA.Start += firstA.Len()
	indexA = buffer1.Start

	if lastA.Len() <= cacheSize {
		copy(s.cache[:lastA.Len()], s.data[lastA.Start:lastA.End])
	} else if buffer2.Len() > 0 {
		s.blockSwap(lastA.Start, buffer2.Start, lastA.Len())
	}

	if blockA.Len() > 0 {
		for {
			switch {
			case (lastB.Len() > 0 && !s.less2(lastB.End-1, indexA)) || blockB.Len() == 0:
				// Drop the minimum remaining A block behind the split
				// point of the previous B block.
				bSplit := s.binaryFirst(s.data[indexA], lastB)
				bRemaining := lastB.End - bSplit

				minA := blockA.Start
				for findA := minA + block; findA < blockA.End; findA += block {
					if s.less2(findA, minA) {
						minA = findA
					}
				}
				s.blockSwap(blockA.Start, minA, block)

				s.data[blockA.Start], s.data[indexA] = s.data[indexA], s.data[blockA.Start]
				indexA++

				switch {
				case lastA.Len() <= cacheSize:
					s.mergeExternal(lastA, Range{lastA.End, bSplit})
				case buffer2.Len() > 0:
					s.mergeInternal(lastA, Range{lastA.End, bSplit}, buffer2)
				default:
					s.mergeInPlace(lastA, Range{lastA.End, bSplit})
				}

				if buffer2.Len() > 0 || block <= cacheSize {
					if block <= cacheSize {
						copy(s.cache[:block], s.data[blockA.Start:blockA.Start+block])
					} else {
						s.blockSwap(blockA.Start, buffer2.Start, block)
					}
					s.blockSwap(bSplit, blockA.Start+block-bRemaining, bRemaining)
				} else {
					s.rotate(blockA.Start-bSplit, Range{bSplit, blockA.Start + block})
				}

				lastA = Range{blockA.Start - bRemaining, blockA.Start - bRemaining + block}
				lastB = Range{lastA.End, lastA.End + bRemaining}

				blockA.Start += block
				if blockA.Len() == 0 {
					s.finishBlockMergePair(lastA, b, buffer2)
					return
				}

			case blockB.Len() < block:
				s.rotate(blockB.Start-blockA.Start, Range{blockA.Start, blockB.End})
				lastB = Range{blockA.Start, blockA.Start + blockB.Len()}
				blockA.Start += blockB.Len()
				blockA.End += blockB.Len()
				blockB.End = blockB.Start

			default:
				s.blockSwap(blockA.Start, blockB.Start, block)
				lastB = Range{blockA.Start, blockA.Start + block}

				blockA.Start += block
				blockA.End += block
				blockB.Start += block

				if blockB.End > b.End-block {
					blockB.End = b.End
				} else {
					blockB.End += block
				}
			}
		}
	}

	s.finishBlockMergePair(lastA, b, buffer2)
}

// finishBlockMergePair merges the final dangling A block left over
// from the rolling loop with whatever of B remains, using the same
// cache/buffer2/in-place three-way choice as every other merge in this
// level.
func (s *sorter[T, K]) finishBlockMergePair(lastA, b, buffer2 Range) {
	switch {
	case lastA.Len() <= cacheSize:
		s.mergeExternal(lastA, Range{lastA.End, b.End})
	case buffer2.Len() > 0:
		s.mergeInternal(lastA, Range{lastA.End, b.End}, buffer2)
	default:
		s.mergeInPlace(lastA, Range{lastA.End, b.End})
	}
}
