package squirreljson

import (
	"bytes"
	"math/bits"
)

// blockMasks classifies one block of input, returning a bitmask of every
// structural byte of interest and a bitmask of just the quote/escape
// bytes within it. interest is always a superset of quote: every quote
// or escape byte is also a byte of interest.
func blockMasks(block []byte) (interest, quote uint64) {
	for i, c := range block {
		g := classifyTable[c]
		if g == 0 {
			continue
		}
		bit := uint64(1) << uint(i)
		interest |= bit
		if g&quoteOrEscape != 0 {
			quote |= bit
		}
	}
	return interest, quote
}

// scanVector is the wide-block accelerator described in spec.md §4.2. It
// processes blocks of vectorBlockSize() bytes at a time: for each block
// it classifies every byte at once, then dispatches matchInterest only
// at the positions that matter, skipping the rest of the block in a
// single stride. The teacher's assembly additionally aligns reads to the
// vector register width before the block loop, since an unaligned
// 256-bit load can fault; this port slices plain Go byte ranges with no
// such alignment requirement, so the aligning pre-scan is omitted.
//
// When the scanner currently believes it is inside a string
// (state.simd.quoteActive), a block with no quote or escape byte at all
// is skipped without even computing the interest mask: nothing inside a
// long string run can be structural. Once a quote or escape byte is
// found, the inner loop always walks the *active* mask (quote while
// still inside a string, interest once a string closes mid-block) so
// that incidental `:`/`,`/`{` bytes that happen to appear inside string
// content are never mistaken for structure.
func scanVector(input []byte, state *scanState, offsets *OffsetTable) {
	blockSize := vectorBlockSize()
	readTo := state.inputLen

	for !state.error && readTo-state.inputOffset >= blockSize {
		block := input[state.inputOffset : state.inputOffset+blockSize]
		var interestMask, quoteMask uint64
		if !state.simd.quoteActive || bytes.IndexAny(block, "\"\\") >= 0 {
			interestMask, quoteMask = blockMasks(block)
		}

		if quoteMask != 0 || !state.simd.quoteActive {
			for interestMask != 0 {
				activeMask := interestMask
				if state.simd.quoteActive {
					activeMask = quoteMask
				}
				if activeMask == 0 {
					break
				}

				blockOffset := bits.TrailingZeros64(activeMask)
				shift := ^uint64(0) << uint(blockOffset+1)
				interestMask &= shift
				quoteMask &= shift

				inputOffset := state.inputOffset + blockOffset
				c := &scanCtx{input: input, state: state, offsets: offsets, currOffset: inputOffset, curr: input[inputOffset]}
				matchInterest(c)
			}
		}

		state.inputOffset += blockSize
	}

	scanScalar(input, state, offsets, readTo)
}
