package squirreljson

// scanCtx is the per-dispatch argument bundle the interest_* functions
// operate on, mirroring the teacher's own small per-call context structs
// (e.g. parsed_json.go's iterator receivers) rather than threading five
// separate parameters through every call.
type scanCtx struct {
	input      []byte
	state      *scanState
	offsets    *OffsetTable
	curr       byte
	currOffset int
}

// matchInterest dispatches on the current byte when the scanner is in
// "None" mode: between scalars, looking for the next structural
// character. This is the byte classification spec.md §4.1 calls the
// "structural scanner contract" and §4.2 accelerates with the two-mask
// vector design.
func matchInterest(c *scanCtx) {
	switch c.curr {
	case '"':
		interestStr(c)
	case ':':
		interestKeyEnd(c)
	case ',':
		interestValueElemEnd(c)
	case '\\':
		interestEscape(c)
	case '{':
		interestMapBegin(c)
	case '[':
		interestArrBegin(c)
	case '}':
		interestMapEnd(c)
	case ']':
		interestArrEnd(c)
	default:
		interestUnreachable(c)
	}
}

// matchPrimitive dispatches on a byte that has already been identified as
// the start of a value (after `:`, after `,`, or as an array's first
// element): a string or nested container defers back to matchInterest on
// the next main-loop iteration, everything else begins a number or atom
// scan right away.
func matchPrimitive(c *scanCtx) {
	switch c.curr {
	case '"', '{', '[', '}', ']':
		interestNone(c)
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '-':
		interestNumBegin(c)
	case 'n':
		interestNull(c)
	case 't':
		interestTrue(c)
	case 'f':
		interestFalse(c)
	default:
		interestUnreachable(c)
	}
}

// pushRecord appends rec to the offset table, threading it onto its
// parent frame's sibling chain for whatever Position the frame assigns
// it. Once the table reaches MaxOffsets the push is silently dropped and
// the scan is poisoned: any further indices handed out would alias an
// existing uint16 slot.
func (c *scanCtx) pushRecord(rec OffsetRecord) {
	if len(c.offsets.records) >= MaxOffsets {
		c.state.poison()
		return
	}

	positionOffset := uint16(len(c.offsets.records))
	position, prevAtPosition := c.state.active.part(positionOffset)

	if prevAtPosition != noRecord {
		c.offsets.records[prevAtPosition].next = positionOffset
	}

	rec.position = position
	rec.next = noRecord
	c.offsets.records = append(c.offsets.records, rec)
}

func (c *scanCtx) pushString(s Slice, escaped bool) {
	c.pushRecord(OffsetRecord{kind: KindString, slice: s, escaped: escaped})
}

func (c *scanCtx) pushNumber(s Slice) {
	c.pushRecord(OffsetRecord{kind: KindNumber, slice: s})
}

func (c *scanCtx) pushBool(v bool) {
	c.pushRecord(OffsetRecord{kind: KindBool, boolean: v})
}

func (c *scanCtx) pushNull() {
	c.pushRecord(OffsetRecord{kind: KindNull})
}

func (c *scanCtx) pushContainer(kind Kind) {
	c.pushRecord(OffsetRecord{kind: kind})
}

// beginFrame opens a new map or array frame: the container's own
// placeholder record must already have been pushed, so startFromOffset
// (the index of its first child) is simply the table's current length.
func (c *scanCtx) beginFrame(newFrame func(uint16) activeFrame) {
	if len(c.state.stack) >= MaxDepth {
		c.state.poison()
		return
	}
	startFromOffset := uint16(len(c.offsets.records))
	c.state.stack = append(c.state.stack, c.state.active)
	c.state.active = newFrame(startFromOffset)
}

// endFrame closes the active frame, restoring the parent frame and
// patching the container's placeholder record with its final kind and
// child count.
func (c *scanCtx) endFrame(finish func(length uint16) (Kind, uint16)) {
	if len(c.state.stack) == 0 {
		c.state.poison()
		return
	}

	placeholder := c.state.active.startFromOffset - 1
	length := c.state.active.length

	c.state.active = c.state.stack[len(c.state.stack)-1]
	c.state.stack = c.state.stack[:len(c.state.stack)-1]

	kind, count := finish(length)
	rec := c.offsets.record(placeholder)
	rec.kind = kind
	rec.count = count
}

// peekAndDispatchPrimitive advances past a `:` (key-end) or the `[`
// that opened an array (to its first element) and dispatches on the
// following byte. It is shared by interestKeyEnd and interestKeyElemBegin
// because both functions do exactly this, under different names, in the
// implementation this package is ported from.
func peekAndDispatchPrimitive(c *scanCtx) {
	c.currOffset++
	c.curr = c.input[c.currOffset]
	matchPrimitive(c)
}

func interestKeyEnd(c *scanCtx)       { peekAndDispatchPrimitive(c) }
func interestKeyElemBegin(c *scanCtx) { peekAndDispatchPrimitive(c) }

func interestValueElemEnd(c *scanCtx) {
	interestNumEnd(c)
	c.currOffset++
	c.curr = c.input[c.currOffset]
	matchPrimitive(c)
}

func interestStr(c *scanCtx) {
	if c.state.escape {
		c.state.escape = false
		interestUnescapeNow(c)
		return
	}

	prim := c.state.active.activePrimitive.take()
	if prim.kind == primString {
		c.state.setMaskInterest()
		start := prim.inputOffset
		c.pushString(Slice{Offset: uint32(start), Length: uint32(c.currOffset - start)}, prim.escaped)
		return
	}

	c.state.setMaskQuote()
	c.state.active.activePrimitive = activePrimitive{
		kind:        primString,
		inputOffset: c.currOffset + 1,
	}
}

func interestEscape(c *scanCtx) {
	escaped := c.state.escape
	c.state.escape = !escaped
	if escaped {
		interestUnescapeNow(c)
		return
	}

	switch c.input[c.currOffset+1] {
	case '"', '\\':
		interestUnescapeLater(c)
	default:
		c.currOffset++
		c.curr = c.input[c.currOffset]
		interestUnescapeNow(c)
	}
}

func interestUnescapeNow(c *scanCtx) {
	c.state.shiftMaskQuote()
	c.state.active.activePrimitive.escaped = true
	c.state.escape = false
}

// interestUnescapeLater leaves state.escape as interestEscape set it: the
// next byte (a literal `"` or `\`) will be reconsidered by the driving
// loop and re-enter interestStr/interestEscape with the escape bit set.
func interestUnescapeLater(c *scanCtx) {}

func interestNumBegin(c *scanCtx) {
	c.state.active.activePrimitive = activePrimitive{kind: primNumber, inputOffset: c.currOffset}
}

func interestNumEnd(c *scanCtx) {
	prim := c.state.active.activePrimitive.take()
	if prim.kind != primNumber {
		return
	}
	c.pushNumber(Slice{Offset: uint32(prim.inputOffset), Length: uint32(c.currOffset - prim.inputOffset)})
}

func interestNull(c *scanCtx) {
	c.state.active.activePrimitive.kind = primAtom
	c.pushNull()
}

func interestTrue(c *scanCtx) {
	c.state.active.activePrimitive.kind = primAtom
	c.pushBool(true)
}

func interestFalse(c *scanCtx) {
	c.state.active.activePrimitive.kind = primAtom
	c.pushBool(false)
}

func interestMapBegin(c *scanCtx) {
	c.pushContainer(KindMap)
	c.beginFrame(newMapFrame)
}

func interestArrBegin(c *scanCtx) {
	c.pushContainer(KindArray)
	c.beginFrame(newArrayFrame)
	interestKeyElemBegin(c)
}

func interestMapEnd(c *scanCtx) {
	interestNumEnd(c)
	c.endFrame(func(length uint16) (Kind, uint16) { return KindMap, length / 2 })
}

func interestArrEnd(c *scanCtx) {
	interestNumEnd(c)
	c.endFrame(func(length uint16) (Kind, uint16) { return KindArray, length })
}

// interestNone is reached when matchPrimitive peeks a `"`, `{`, `[`, `}`
// or `]` as the start of a value: none of those are primitives, so there
// is nothing to do here. The byte itself is reconsidered by the main
// loop's next iteration via matchInterest, which dispatches it properly.
func interestNone(c *scanCtx) {}

// interestUnreachable is reached for any byte that cannot legally occur
// where it was found. Trusted input never reaches it; the scan is
// poisoned rather than panicking.
func interestUnreachable(c *scanCtx) {
	c.state.poison()
}
