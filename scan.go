package squirreljson

import (
	"bytes"
	"unicode/utf8"
)

// ScanTrusted scans a minified, trusted JSON document whose top-level
// value is a map into a Document. Input that is not valid UTF-8, or
// whose trimmed form does not start with `{` and end with `}`, is
// rejected outright: the returned Document reports Err() and has no
// records (spec.md §4.1 "Preflight").
//
// ScanTrusted never panics. A document that passes preflight but is not
// actually well-formed JSON is scanned best-effort; the result either has
// Err() set, or is an offset table that may not describe the input
// meaningfully (a map closed with `]` is not detected, for example), but
// never undefined behaviour (spec.md §7).
func ScanTrusted(input []byte, opts ...ScanOption) *Document {
	return scan(input, DetachedDocument{}, opts)
}

// ScanTrustedAttach scans input the same way ScanTrusted does, but reuses
// the offset and stack allocations detached from a previous Document
// (spec.md §4.5 "Allocation reuse").
func ScanTrustedAttach(input []byte, detached DetachedDocument, opts ...ScanOption) *Document {
	return scan(input, detached, opts)
}

func scan(input []byte, detached DetachedDocument, opts []ScanOption) *Document {
	cfg := defaultScanConfig()
	for _, o := range opts {
		o(&cfg)
	}

	start, end, ok := scanBegin(input)
	if !ok {
		return errDocument(input)
	}

	st := newScanState(ensureCap(detached.stack, cfg.stackCapacity), start, end)
	offsets := &OffsetTable{
		records: ensureCap(detached.offsets, cfg.offsetsCapacity),
		hashAlg: cfg.hashAlg,
	}

	if hasVectorSupport() && (end-start) > vectorizationThreshold() {
		scanVector(input, st, offsets)
	} else {
		scanScalar(input, st, offsets, end)
	}

	return scanEnd(input, st, offsets, cfg)
}

// scanBegin validates the preflight conditions in spec.md §4.1 and
// returns the [start, end) range of the map's body, i.e. the input with
// its outermost `{` and `}` (and any trailing whitespace) stripped.
// Leading whitespace is not stripped, so it fails preflight.
func scanBegin(input []byte) (start, end int, ok bool) {
	if !utf8.Valid(input) {
		return 0, 0, false
	}

	trimmed := bytes.TrimRight(input, " \t\r\n")
	if len(trimmed) < 2 {
		return 0, 0, false
	}
	if trimmed[0] != '{' || trimmed[len(trimmed)-1] != '}' {
		return 0, 0, false
	}

	return 1, len(trimmed) - 1, true
}

// scanEnd runs postflight (spec.md §4.1 "Postflight") and produces the
// final Document. Any scan that ends in error discards its in-progress
// offset table and stack entirely rather than exposing partially-built
// state, matching the allocation-reuse tradeoff the reference
// implementation this package is ported from makes on its own error
// path.
func scanEnd(input []byte, st *scanState, offsets *OffsetTable, cfg scanConfig) *Document {
	switch st.active.activePrimitive.kind {
	case primNumber:
		c := &scanCtx{input: input, state: st, offsets: offsets, currOffset: st.inputOffset}
		interestNumEnd(c)
	case primString:
		st.error = true
	}

	if len(offsets.records) > MaxOffsets {
		st.error = true
	}

	if st.error {
		return errDocument(input)
	}

	offsets.rootSizeHint = st.active.length / 2
	offsets.inputHash = hashInput(cfg.hashAlg, input)

	return &Document{
		input:        input,
		offsets:      *offsets,
		stackScratch: st.stack,
	}
}

// ensureCap returns s truncated to zero length if it already has
// capacity, or a freshly allocated zero-length slice with minCap
// capacity otherwise.
func ensureCap[T any](s []T, minCap int) []T {
	if cap(s) > 0 {
		return s[:0]
	}
	return make([]T, 0, minCap)
}
