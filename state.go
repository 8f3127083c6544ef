package squirreljson

// activePrimitiveKind is the scalar mode the scanner is currently in:
// outside any scalar (None), inside a string's content (String),
// accumulating a number's digits (Number), or accumulating the letters
// of `true`/`false`/`null` (Atom). It mirrors spec.md §4.1's mode
// selection table.
type activePrimitiveKind uint8

const (
	primNone activePrimitiveKind = iota
	primString
	primNumber
	primAtom
)

// activePrimitive tracks the scalar currently being accumulated, if any.
type activePrimitive struct {
	kind        activePrimitiveKind
	inputOffset int
	escaped     bool
}

// take resets the primitive to its zero value and returns the prior
// value, mirroring Rust's `mem::take`.
func (p *activePrimitive) take() activePrimitive {
	old := *p
	*p = activePrimitive{}
	return old
}

// activeFrame is the state of the container currently open at the top of
// the scan stack: which child position (Key/Value, or Elem) the next
// pushed record occupies, and the tail of each position's sibling chain
// so a new record can be linked onto it in O(1).
type activeFrame struct {
	activePrimitive activePrimitive
	startFromOffset uint16
	length          uint16
	parts           [2]Position
	tail            [4]uint16 // indexed by Position; noRecord means no prior sibling yet
}

func newMapFrame(startFromOffset uint16) activeFrame {
	return activeFrame{
		startFromOffset: startFromOffset,
		parts:           [2]Position{PositionKey, PositionValue},
		tail:            [4]uint16{noRecord, noRecord, noRecord, noRecord},
	}
}

func newArrayFrame(startFromOffset uint16) activeFrame {
	return activeFrame{
		startFromOffset: startFromOffset,
		parts:           [2]Position{PositionElem, PositionElem},
		tail:            [4]uint16{noRecord, noRecord, noRecord, noRecord},
	}
}

// part assigns the Position the next child of this frame occupies, and
// returns the index of the previous record at that Position (if any) so
// the caller can thread a sibling link onto it.
func (f *activeFrame) part(currOffset uint16) (pos Position, prevAtPos uint16) {
	pos = f.parts[f.length%2]
	prevAtPos = f.tail[pos]
	f.tail[pos] = currOffset
	f.length++
	return pos, prevAtPos
}

// simdState is the persisted half of the vector accelerator's two-mask
// design (spec.md §4.2): whether the scanner currently believes it is
// inside a string (Quote active) or not (Interest active). The masks
// themselves are computed fresh per block and never escape the block
// loop, so only the active flag needs to survive between scan_vector
// calls and between scalar/vector handoffs.
type simdState struct {
	quoteActive bool
}

// scanState is the mutable cursor and bookkeeping shared by the scalar
// and vector scan loops and the interest dispatch functions that drive
// them (spec.md §3 "Scanner state").
type scanState struct {
	inputOffset int
	inputLen    int
	escape      bool
	error       bool
	simd        simdState
	active      activeFrame
	stack       []activeFrame
}

func newScanState(stack []activeFrame, start, end int) *scanState {
	return &scanState{
		inputOffset: start,
		inputLen:    end,
		active:      newMapFrame(0),
		stack:       stack,
	}
}

// setMaskInterest and setMaskQuote flip which mask the vector
// accelerator's inner loop treats as authoritative for locating the next
// byte to dispatch on. shiftMaskQuote is a documented no-op: in the
// teacher's assembly the call re-derives a masked copy of the interest
// mask from the quote mask; this port consults the quote mask directly
// inside the block loop instead (see scan_vector.go), so there is
// nothing to re-derive.
func (s *scanState) setMaskInterest() { s.simd.quoteActive = false }
func (s *scanState) setMaskQuote()    { s.simd.quoteActive = true }
func (s *scanState) shiftMaskQuote()  {}

// poison marks the scan as failed and clears the active frame so that
// any further dispatches landing on it do not thread sibling links onto
// stale positions. Once set, err is sticky for the rest of the scan.
func (s *scanState) poison() {
	s.error = true
	s.active.parts = [2]Position{PositionNone, PositionNone}
	s.active.tail = [4]uint16{noRecord, noRecord, noRecord, noRecord}
}
