package squirreljson

import "testing"

func TestDocument_AsMap_Lookup(t *testing.T) {
	doc := ScanTrusted([]byte(`{"name":"ferret","age":3,"tags":["a","b"],"meta":{"active":true,"score":null}}`))
	if doc.Err() {
		t.Fatalf("unexpected scan error")
	}

	m := doc.AsMap()
	if m.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", m.Len())
	}

	name, ok := m.Lookup("name")
	if !ok || name.Kind() != KindString {
		t.Fatalf("Lookup(name) = %+v, %v", name, ok)
	}
	s, _ := name.AsString()
	if s.AsRaw() != "ferret" {
		t.Fatalf("name = %q, want ferret", s.AsRaw())
	}

	age, ok := m.Lookup("age")
	if !ok || age.Kind() != KindNumber {
		t.Fatalf("Lookup(age) = %+v, %v", age, ok)
	}
	n, _ := age.AsNumber()
	if string(n) != "3" {
		t.Fatalf("age = %q, want 3", n)
	}

	tags, ok := m.Lookup("tags")
	if !ok || tags.Kind() != KindArray {
		t.Fatalf("Lookup(tags) = %+v, %v", tags, ok)
	}
	arr, _ := tags.AsArray()
	if arr.Len() != 2 {
		t.Fatalf("tags.Len() = %d, want 2", arr.Len())
	}

	active, ok := m.Path("meta", "active")
	if !ok || active.Kind() != KindBool {
		t.Fatalf("Path(meta,active) = %+v, %v", active, ok)
	}
	b, _ := active.AsBool()
	if !b {
		t.Fatalf("meta.active = false, want true")
	}

	score, ok := m.Path("meta", "score")
	if !ok || !score.IsNull() {
		t.Fatalf("Path(meta,score) = %+v, %v, want null", score, ok)
	}

	if _, ok := m.Lookup("missing"); ok {
		t.Fatalf("Lookup(missing) unexpectedly found a value")
	}
	if _, ok := m.Path("meta", "missing"); ok {
		t.Fatalf("Path(meta,missing) unexpectedly found a value")
	}
	if _, ok := m.Path("name", "x"); ok {
		t.Fatalf("Path through a non-map segment unexpectedly succeeded")
	}
}

func TestDocument_EntriesAndIterOrder(t *testing.T) {
	doc := ScanTrusted([]byte(`{"a":1,"b":2,"c":3}`))
	if doc.Err() {
		t.Fatalf("unexpected scan error")
	}

	var keys []string
	it := doc.AsMap().Entries()
	for {
		k, _, ok := it.Next()
		if !ok {
			break
		}
		keys = append(keys, k.AsRaw())
	}
	want := []string{"a", "b", "c"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}

	arrVal, _ := ScanTrusted([]byte(`{"xs":[10,20,30]}`)).AsMap().Lookup("xs")
	arr, _ := arrVal.AsArray()
	var got []string
	ait := arr.Iter()
	for {
		v, ok := ait.Next()
		if !ok {
			break
		}
		n, _ := v.AsNumber()
		got = append(got, string(n))
	}
	wantNums := []string{"10", "20", "30"}
	if len(got) != len(wantNums) {
		t.Fatalf("elems = %v, want %v", got, wantNums)
	}
	for i := range wantNums {
		if got[i] != wantNums[i] {
			t.Fatalf("elems[%d] = %q, want %q", i, got[i], wantNums[i])
		}
	}
}

func TestDocument_EmptyMapHasNoEntries(t *testing.T) {
	doc := ScanTrusted([]byte(`{}`))
	if doc.Err() {
		t.Fatalf("unexpected scan error")
	}
	m := doc.AsMap()
	if m.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", m.Len())
	}
	_, _, ok := m.Entries().Next()
	if ok {
		t.Fatalf("Entries().Next() on empty map unexpectedly returned a value")
	}
}

func TestDocument_DetachAttachReusesAllocations(t *testing.T) {
	first := ScanTrusted([]byte(`{"a":1,"b":2}`), WithOffsetsCapacity(8), WithStackCapacity(2))
	if first.Err() {
		t.Fatalf("unexpected scan error")
	}
	detached := first.Detach()
	if cap(detached.offsets) == 0 {
		t.Fatalf("expected Detach to retain offsets capacity")
	}

	second := ScanTrustedAttach([]byte(`{"x":10,"y":20,"z":30}`), detached)
	if second.Err() {
		t.Fatalf("unexpected scan error on reused allocation")
	}
	if second.AsMap().Len() != 3 {
		t.Fatalf("Len() = %d, want 3", second.AsMap().Len())
	}
	v, ok := second.AsMap().Lookup("y")
	if !ok {
		t.Fatalf("Lookup(y) failed after reuse")
	}
	n, _ := v.AsNumber()
	if string(n) != "20" {
		t.Fatalf("y = %q, want 20", n)
	}
}

func TestOffsetTable_AttachValidatedAndUnchecked(t *testing.T) {
	input := []byte(`{"k":"v"}`)
	doc := ScanTrusted(input, WithHashAlgorithm(HashBlake2b))
	if doc.Err() {
		t.Fatalf("unexpected scan error")
	}
	table := doc.IntoOffsets()

	reattached, err := table.AttachValidated(input)
	if err != nil {
		t.Fatalf("AttachValidated on identical input failed: %v", err)
	}
	if v, ok := reattached.AsMap().Lookup("k"); !ok {
		t.Fatalf("Lookup(k) failed after AttachValidated")
	} else if s, _ := v.AsString(); s.AsRaw() != "v" {
		t.Fatalf("k = %q, want v", s.AsRaw())
	}

	if _, err := table.AttachValidated([]byte(`{"k":"w"}`)); err == nil {
		t.Fatalf("AttachValidated on different input unexpectedly succeeded")
	}

	unchecked := table.AttachUnchecked(input)
	if unchecked.Err() {
		t.Fatalf("AttachUnchecked reported an error")
	}
}
