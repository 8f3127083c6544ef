package squirreljson

import (
	"bytes"
	"errors"
	"testing"
)

func TestHashAlgorithm_XXH3AndBlake2bDisagreeOnMismatch(t *testing.T) {
	input := []byte(`{"a":1}`)

	xxDoc := ScanTrusted(input, WithHashAlgorithm(HashXXH3))
	blDoc := ScanTrusted(input, WithHashAlgorithm(HashBlake2b))
	if xxDoc.Err() || blDoc.Err() {
		t.Fatalf("unexpected scan error")
	}

	xxTable := xxDoc.IntoOffsets()
	blTable := blDoc.IntoOffsets()

	if _, err := xxTable.AttachValidated(input); err != nil {
		t.Fatalf("xxh3 AttachValidated on identical input failed: %v", err)
	}
	if _, err := blTable.AttachValidated(input); err != nil {
		t.Fatalf("blake2b AttachValidated on identical input failed: %v", err)
	}

	modified := []byte(`{"a":2}`)
	if _, err := xxTable.AttachValidated(modified); !errors.Is(err, ErrHashMismatch) {
		t.Fatalf("xxh3 AttachValidated on modified input: err = %v, want ErrHashMismatch", err)
	}
	if _, err := blTable.AttachValidated(modified); !errors.Is(err, ErrHashMismatch) {
		t.Fatalf("blake2b AttachValidated on modified input: err = %v, want ErrHashMismatch", err)
	}
}

func TestIntoOffsets_PreservesRecordsThroughAttachUnchecked(t *testing.T) {
	input := []byte(`{"k":"v","n":1}`)
	doc := ScanTrusted(input)
	if doc.Err() {
		t.Fatalf("unexpected scan error")
	}
	table := doc.IntoOffsets()

	reattached := table.AttachUnchecked(input)
	v, ok := reattached.AsMap().Lookup("k")
	if !ok {
		t.Fatalf("Lookup(k) failed after AttachUnchecked")
	}
	s, _ := v.AsString()
	if s.AsRaw() != "v" {
		t.Fatalf("k = %q, want v", s.AsRaw())
	}
}

func TestScanTrustedAttach_MultipleRoundsReuseCapacity(t *testing.T) {
	var detached DetachedDocument
	docs := []string{
		`{"a":1}`,
		`{"a":1,"b":2,"c":3,"d":4}`,
		`{}`,
		`{"x":{"y":{"z":1}}}`,
	}

	for _, raw := range docs {
		doc := ScanTrustedAttach([]byte(raw), detached)
		if doc.Err() {
			t.Fatalf("unexpected scan error for %s", raw)
		}
		detached = doc.Detach()
	}
}

func TestDumpOffsets_RunsWithoutError(t *testing.T) {
	doc := ScanTrusted([]byte(`{"a":1,"b":[true,false,null],"c":{"d":"e"}}`))
	if doc.Err() {
		t.Fatalf("unexpected scan error")
	}
	var buf bytes.Buffer
	if err := DumpOffsets(&buf, doc); err != nil {
		t.Fatalf("DumpOffsets failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("DumpOffsets produced no output")
	}
}

func TestDumpOffsets_ErroredDocument(t *testing.T) {
	doc := ScanTrusted([]byte(`not json`))
	if !doc.Err() {
		t.Fatalf("expected scan error")
	}
	var buf bytes.Buffer
	if err := DumpOffsets(&buf, doc); err != nil {
		t.Fatalf("DumpOffsets on errored document failed: %v", err)
	}
	if buf.String() != "<errored document>\n" {
		t.Fatalf("DumpOffsets output = %q", buf.String())
	}
}
