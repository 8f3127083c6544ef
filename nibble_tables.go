package squirreljson

// Structural byte groups, named to match the AVX2/NEON classification
// this package is ported from (spec.md §4.2): a byte can belong to more
// than one group only in the sense that quote and escape bytes are also
// counted as interesting, never that two distinct structural bytes share
// a group.
const (
	groupColon   byte = 0b0000_0001 // `:`
	groupBracket byte = 0b0000_0010 // `{` `}` `[` `]`
	groupComma   byte = 0b0000_0100 // `,`
	groupEscape  byte = 0b0000_1000 // `\`
	groupQuote   byte = 0b0001_0000 // `"`

	quoteOrEscape = groupQuote | groupEscape
)

// classifyTable maps every byte value to its structural group bits. The
// AVX2/NEON paths derive the equivalent of this table at runtime from a
// pair of 16-entry low/high nibble lookups combined with pshufb/tbl so
// the classification can run inside a vector register; since this port
// classifies one byte at a time in a plain Go loop there is no benefit
// to splitting the table, so it is built once, flat, covering all 256
// byte values.
var classifyTable = func() (t [256]byte) {
	t['"'] = groupQuote
	t[':'] = groupColon
	t[','] = groupComma
	t['\\'] = groupEscape
	t['{'] = groupBracket
	t['}'] = groupBracket
	t['['] = groupBracket
	t[']'] = groupBracket
	return t
}()
