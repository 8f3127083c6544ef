package squirreljson

import "math/bits"

// unescapeVector accelerates the common case of a long run of plain text
// between escapes by classifying a whole block for backslashes at once,
// instead of testing one byte at a time. Unlike the structural scanner,
// there is only one byte class to find here, so no nibble classification
// table is needed: a block's mask is just "which bytes equal `\`".
func unescapeVector(input []byte, st *unescapeState, out []byte, readTo int) []byte {
	blockSize := vectorBlockSize()

	offset := 0
	for readTo-offset >= blockSize {
		block := input[offset : offset+blockSize]
		mask := backslashMask(block)

		for mask != 0 {
			blockOffset := bits.TrailingZeros64(mask)
			mask &= ^uint64(0) << uint(blockOffset+1)

			out = interestUnescape(input, offset+blockOffset, st, out)
		}

		offset += blockSize
	}

	return unescapeScalar(input, st, out, offset, readTo)
}

func backslashMask(block []byte) (mask uint64) {
	for i, c := range block {
		if c == '\\' {
			mask |= uint64(1) << uint(i)
		}
	}
	return mask
}
