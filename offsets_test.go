package squirreljson

import (
	"strings"
	"testing"
)

func TestScanTrusted_BoundaryShapes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		wantLen int
	}{
		{name: "empty input", input: "", wantErr: true},
		{name: "empty map", input: "{}", wantLen: 0},
		{name: "whitespace only", input: "   \t\n", wantErr: true},
		{name: "trailing whitespace tolerated", input: "{\"a\":1}\n", wantLen: 2},
		{name: "not a map", input: `[1,2,3]`, wantErr: true},
		{name: "not json at all", input: `hello`, wantErr: true},
		{name: "invalid utf8", input: "{\"a\":\"\xff\"}", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := ScanTrusted([]byte(tt.input))
			if doc.Err() != tt.wantErr {
				t.Fatalf("Err() = %v, want %v", doc.Err(), tt.wantErr)
			}
			if !tt.wantErr && doc.Len() != tt.wantLen {
				t.Fatalf("Len() = %d, want %d", doc.Len(), tt.wantLen)
			}
		})
	}
}

// nestedMap builds `{"a":{"a":{...1...}}}` with n nested maps under the
// root, so the deepest `{` sits at stack depth n.
func nestedMap(n int) string {
	var b strings.Builder
	b.WriteByte('{')
	for i := 0; i < n; i++ {
		b.WriteString(`"a":{`)
	}
	b.WriteString(`"a":1`)
	for i := 0; i < n; i++ {
		b.WriteByte('}')
	}
	b.WriteByte('}')
	return b.String()
}

func TestScanTrusted_DepthCap(t *testing.T) {
	atLimit := ScanTrusted([]byte(nestedMap(MaxDepth)))
	if atLimit.Err() {
		t.Fatalf("expected nesting exactly MaxDepth (%d) to scan without error", MaxDepth)
	}

	overLimit := ScanTrusted([]byte(nestedMap(MaxDepth + 1)))
	if !overLimit.Err() {
		t.Fatalf("expected nesting beyond MaxDepth to poison the scan")
	}
}

func TestScanTrusted_StackUnderflow(t *testing.T) {
	doc := ScanTrusted([]byte(`{"a":1}}`))
	if !doc.Err() {
		t.Fatalf("expected a stray closing brace to poison the scan")
	}
}

func TestScanTrusted_OffsetCap(t *testing.T) {
	var b strings.Builder
	b.WriteByte('{')
	// one map entry is 2 records (key + value number); push just past
	// MaxOffsets.
	n := MaxOffsets/2 + 10
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(`"k":1`)
	}
	b.WriteByte('}')

	doc := ScanTrusted([]byte(b.String()))
	if !doc.Err() {
		t.Fatalf("expected exceeding MaxOffsets records to poison the scan")
	}
}
