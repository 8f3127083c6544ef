package squirreljson

import "unicode/utf8"

// unescapeTrusted decodes JSON escape sequences in a byte slice produced
// by the scanner (spec.md §4.3). It assumes the input is well-formed
// enough that it never ends mid-escape, since the scanner never closes a
// string while state.escape is set.
func unescapeTrusted(input []byte) string {
	st := &unescapeState{}
	out := make([]byte, 0, len(input))

	readTo := len(input)
	if hasVectorSupport() && readTo > vectorizationThreshold() {
		out = unescapeVector(input, st, out, readTo)
	} else {
		out = unescapeScalar(input, st, out, 0, readTo)
	}
	return string(flushUnescaped(input, readTo, st, out))
}

// unescapeState tracks the flush frontier (the first byte not yet
// copied to the output), whether the previous byte began a (possibly
// two-byte) escape sequence, and a pending high surrogate waiting to be
// combined with the low surrogate from the next `\uXXXX` escape.
type unescapeState struct {
	start          int
	escape         bool
	firstSurrogate uint16
	hasSurrogate   bool
}

// flushUnescaped copies input[start:to] verbatim to out and advances the
// flush frontier to to. It is a no-op if there is nothing to flush.
func flushUnescaped(input []byte, to int, st *unescapeState, out []byte) []byte {
	if to == st.start {
		return out
	}
	out = append(out, input[st.start:to]...)
	st.start = to
	return out
}

func pushUnescapedByte(st *unescapeState, out []byte, b byte) []byte {
	out = append(out, b)
	st.start++
	return out
}

func pushUnescapedRune(st *unescapeState, out []byte, r rune) []byte {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	out = append(out, buf[:n]...)
	st.start += 4
	return out
}

func unescapeScalar(input []byte, st *unescapeState, out []byte, from, readTo int) []byte {
	for i := from; i < readTo; i++ {
		if input[i] == '\\' {
			out = interestUnescape(input, i, st, out)
		}
	}
	return out
}

// interestUnescape handles one `\` byte found at currOffset. It mirrors
// the escaped/not-escaped two-call state machine spec.md §4.3 describes:
// the byte immediately after a literal `\\` is itself a `\`, so this
// function is invoked twice for it, once to notice the pending escape
// and once (with st.escape already true) to emit the single unescaped
// backslash.
func interestUnescape(input []byte, currOffset int, st *unescapeState, out []byte) []byte {
	escaped := st.escape
	st.escape = !escaped
	if escaped {
		return pushUnescapedByte(st, out, '\\')
	}

	out = flushUnescaped(input, currOffset, st, out)
	st.start++ // skip the `\`

	escOffset := currOffset + 1
	if escOffset >= len(input) {
		return out
	}
	escChar := input[escOffset]

	switch escChar {
	case 'n':
		out = pushUnescapedByte(st, out, '\n')
	case '"':
		out = pushUnescapedByte(st, out, '"')
	case '\\':
		// deferred: the second `\` is reconsidered on the next call with
		// st.escape now true.
		return out
	case 'r':
		out = pushUnescapedByte(st, out, '\r')
	case 't':
		out = pushUnescapedByte(st, out, '\t')
	case 'f':
		out = pushUnescapedByte(st, out, '\f')
	case 'b':
		out = pushUnescapedByte(st, out, '\b')
	case 'u':
		st.start++ // skip the `u`
		out = unescapeUnicodeEscape(input, escOffset, st, out)
	default:
		// unknown escape: drop the backslash, the following byte(s) flow
		// through unchanged on the next flush.
	}

	st.escape = false
	return out
}

// unescapeUnicodeEscape decodes the 4 hex digits following a `\u`
// escape, combining surrogate pairs per spec.md §4.3's surrogate
// handling. On any malformed or truncated escape it silently drops just
// the escape, leaving the would-be hex digits to flow through as
// literal text on the next flush (matching the reference implementation
// this package is ported from).
func unescapeUnicodeEscape(input []byte, escOffset int, st *unescapeState, out []byte) []byte {
	digitsStart := escOffset + 1
	if digitsStart+4 > len(input) {
		return out
	}
	code, ok := parseHex4(input[digitsStart : digitsStart+4])
	if !ok {
		return out
	}

	if st.hasSurrogate {
		first := st.firstSurrogate
		st.hasSurrogate = false
		if r, ok := decodeSurrogatePair(first, code); ok {
			out = pushUnescapedRune(st, out, r)
		}
		// else: drop the whole pair; neither \u's hex digits are skipped
		// beyond what was already consumed for this one.
		return out
	}

	if isSurrogate(code) {
		st.firstSurrogate = code
		st.hasSurrogate = true
		st.start += 4
		return out
	}

	return pushUnescapedRune(st, out, rune(code))
}

func isSurrogate(u uint16) bool { return u >= 0xD800 && u <= 0xDFFF }

// decodeSurrogatePair combines a high and low UTF-16 surrogate into the
// scalar value they encode, per the standard formula.
func decodeSurrogatePair(high, low uint16) (rune, bool) {
	if high < 0xD800 || high > 0xDBFF || low < 0xDC00 || low > 0xDFFF {
		return 0, false
	}
	r := rune(0x10000 + (int32(high)-0xD800)*0x400 + (int32(low) - 0xDC00))
	return r, true
}

func parseHex4(b []byte) (uint16, bool) {
	var v uint16
	for _, c := range b {
		var d uint16
		switch {
		case c >= '0' && c <= '9':
			d = uint16(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint16(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint16(c-'A') + 10
		default:
			return 0, false
		}
		v = v<<4 | d
	}
	return v, true
}
