package squirreljson

import (
	"strings"
	"testing"
)

func unescapeViaDocument(t *testing.T, jsonString string) string {
	t.Helper()
	doc := ScanTrusted([]byte(`{"k":` + jsonString + `}`))
	if doc.Err() {
		t.Fatalf("unexpected scan error for %s", jsonString)
	}
	v, ok := doc.AsMap().Lookup("k")
	if !ok {
		t.Fatalf("missing key k")
	}
	s, ok := v.AsString()
	if !ok {
		t.Fatalf("value is not a string")
	}
	return s.ToUnescaped()
}

func TestUnescape_SimpleEscapes(t *testing.T) {
	cases := map[string]string{
		`"plain"`:            "plain",
		`"line\nbreak"`:      "line\nbreak",
		`"tab\there"`:        "tab\there",
		`"quote\"inside"`:    `quote"inside`,
		`"back\\slash"`:      `back\slash`,
		`"cr\rreturn"`:       "cr\rreturn",
		`"form\ffeed"`:       "form\ffeed",
		`"back\bspace"`:      "back\bspace",
		`"double\\\\slash"`:  `double\\slash`,
		`"trailing\\"`:       `trailing\`,
	}
	for in, want := range cases {
		got := unescapeViaDocument(t, in)
		if got != want {
			t.Errorf("unescape(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestUnescape_UnicodeEscape(t *testing.T) {
	got := unescapeViaDocument(t, "\"\\u0041\\u0042\"")
	if got != "AB" {
		t.Fatalf("got %q, want AB", got)
	}
}

func TestUnescape_SurrogatePair(t *testing.T) {
	// U+1F600 GRINNING FACE encoded as a UTF-16 surrogate pair.
	got := unescapeViaDocument(t, `"\`+`uD83D\`+`uDE00"`)
	want := "\U0001F600"
	if got != want {
		t.Fatalf("got %q (% x), want %q (% x)", got, []byte(got), want, []byte(want))
	}
}

func TestUnescape_UnpairedHighSurrogateDropsPair(t *testing.T) {
	// A high surrogate followed by a non-surrogate \u escape fails to
	// combine; the pair is dropped and the second escape's hex digits are
	// not skipped, so they leak through as literal text (matching the
	// reference implementation's documented quirk).
	got := unescapeViaDocument(t, "\"\\uD83D\\u0041\"")
	if got != "0041" {
		t.Fatalf("got %q, want literal leaked hex digits 0041", got)
	}
}

func TestUnescape_UnknownEscapeDropsBackslashOnly(t *testing.T) {
	got := unescapeViaDocument(t, `"\x41"`)
	if got != "x41" {
		t.Fatalf("got %q, want x41", got)
	}
}

func TestUnescape_NoBackslashIsZeroCopy(t *testing.T) {
	doc := ScanTrusted([]byte(`{"k":"nothing special here"}`))
	if doc.Err() {
		t.Fatalf("unexpected scan error")
	}
	v, _ := doc.AsMap().Lookup("k")
	s, _ := v.AsString()
	if s.Escaped() {
		t.Fatalf("expected Escaped() false for a plain string")
	}
	if s.ToUnescaped() != s.AsRaw() {
		t.Fatalf("ToUnescaped() should equal AsRaw() when there is nothing to unescape")
	}
}

func TestUnescape_ScalarAndVectorAgree(t *testing.T) {
	// Force a string long enough to cross the vectorization threshold on
	// every architecture (amd64's is the largest, at 32*5 bytes) and
	// confirm the unescaped result is identical regardless of which path
	// actually ran on this machine.
	prefix := strings.Repeat("x", 256)
	raw := prefix + `line\nbreak\tend` + strings.Repeat("y", 256)
	input := []byte(`{"k":"` + raw + `"}`)

	doc := ScanTrusted(input)
	if doc.Err() {
		t.Fatalf("unexpected scan error")
	}
	v, _ := doc.AsMap().Lookup("k")
	s, _ := v.AsString()
	got := s.ToUnescaped()

	want := prefix + "line\nbreak\tend" + strings.Repeat("y", 256)
	if got != want {
		t.Fatalf("long-string unescape mismatch: len(got)=%d len(want)=%d", len(got), len(want))
	}
}
