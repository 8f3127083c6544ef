package squirreljson

// scanScalar is the byte-at-a-time ground-truth scanner from spec.md
// §4.1: it dispatches on the active primitive's mode and advances
// state.inputOffset one byte at a time until readTo. It is always run
// to finish whatever the vector accelerator could not consume in whole
// blocks, and is the only scanner used when the vector path is
// unavailable or not worth its setup cost.
func scanScalar(input []byte, state *scanState, offsets *OffsetTable, readTo int) {
	for state.inputOffset < readTo {
		switch state.active.activePrimitive.kind {
		case primNone:
			scanNoneByte(input, state, offsets)
		case primString:
			scanStringRun(input, state, offsets, readTo)
		case primNumber:
			scanNumberRun(input, state, offsets, readTo)
		case primAtom:
			scanAtomRun(input, state, offsets, readTo)
		}
	}
}

func scanNoneByte(input []byte, state *scanState, offsets *OffsetTable) {
	offset := state.inputOffset
	c := &scanCtx{input: input, state: state, offsets: offsets, currOffset: offset, curr: input[offset]}
	matchInterest(c)
	state.inputOffset++
}

// scanStringRun consumes bytes inside a string's content one at a time,
// looking only for the two bytes that matter there: a closing quote or
// the start of an escape sequence.
func scanStringRun(input []byte, state *scanState, offsets *OffsetTable, readTo int) {
	for state.inputOffset < readTo {
		offset := state.inputOffset
		curr := input[offset]
		switch curr {
		case '\\':
			c := &scanCtx{input: input, state: state, offsets: offsets, currOffset: offset, curr: curr}
			interestEscape(c)
			state.inputOffset = c.currOffset + 1
			return
		case '"':
			c := &scanCtx{input: input, state: state, offsets: offsets, currOffset: offset, curr: curr}
			interestStr(c)
			state.inputOffset++
			return
		}
		state.inputOffset++
	}
}

// scanNumberRun consumes digits until a byte that can legally terminate a
// number is seen: `,`, `}` or `]`.
func scanNumberRun(input []byte, state *scanState, offsets *OffsetTable, readTo int) {
	for state.inputOffset < readTo {
		offset := state.inputOffset
		curr := input[offset]
		switch curr {
		case ',', '}', ']':
			c := &scanCtx{input: input, state: state, offsets: offsets, currOffset: offset, curr: curr}
			matchInterest(c)
			state.inputOffset++
			return
		}
		state.inputOffset++
	}
}

// scanAtomRun consumes the letters of `true`/`false`/`null` until a byte
// that can legally terminate an atom is seen.
func scanAtomRun(input []byte, state *scanState, offsets *OffsetTable, readTo int) {
	for state.inputOffset < readTo {
		offset := state.inputOffset
		curr := input[offset]
		switch curr {
		case ',', '}', ']':
			c := &scanCtx{input: input, state: state, offsets: offsets, currOffset: offset, curr: curr}
			matchInterest(c)
			state.inputOffset++
			return
		}
		state.inputOffset++
	}
}
