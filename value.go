/*
 * squirrel-json, a zero-copy offset-table reader for trusted JSON maps
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package squirreljson

import "unsafe"

// StrKey is a zero-copy view over a scanned JSON string (used both for
// map keys and for string values).
type StrKey struct {
	input   []byte
	slice   Slice
	escaped bool
}

// AsRawBytes returns the string's raw bytes between its quotes, exactly
// as they appear in the input, with no allocation and no unescaping.
func (s StrKey) AsRawBytes() []byte { return s.slice.bytes(s.input) }

// AsRaw returns the string's raw content as a string, with no
// unescaping. It is a true zero-copy view over the input buffer: the
// returned string aliases the same bytes, so it must not outlive the
// buffer passed to the scan that produced it.
func (s StrKey) AsRaw() string {
	b := s.slice.bytes(s.input)
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Escaped reports whether the raw string contains a backslash, i.e.
// whether ToUnescaped needs to do any work at all.
func (s StrKey) Escaped() bool { return s.escaped }

// ToUnescaped returns the string with JSON escape sequences decoded
// (spec.md §4.3). If the string contains no backslash this is exactly as
// cheap as AsRaw; otherwise it allocates.
func (s StrKey) ToUnescaped() string {
	if !s.escaped {
		return s.AsRaw()
	}
	return unescapeTrusted(s.AsRawBytes())
}

// Value is a decoded view over a single OffsetRecord: a scalar, or a
// handle onto a nested MapView/ArrayView.
type Value struct {
	input   []byte
	offsets *OffsetTable
	index   uint16
	rec     OffsetRecord
}

func makeValue(input []byte, offsets *OffsetTable, index uint16, rec OffsetRecord) Value {
	return Value{input: input, offsets: offsets, index: index, rec: rec}
}

// Kind reports which variant this value holds.
func (v Value) Kind() Kind { return v.rec.kind }

// AsString returns the value as a string, if it is one.
func (v Value) AsString() (StrKey, bool) {
	if v.rec.kind != KindString {
		return StrKey{}, false
	}
	return StrKey{input: v.input, slice: v.rec.slice, escaped: v.rec.escaped}, true
}

// AsNumber returns the value's raw, unparsed number text, if it is a
// number. Per spec.md's Non-goals this package never parses numeric
// text; the caller decides how (or whether) to interpret it.
func (v Value) AsNumber() ([]byte, bool) {
	if v.rec.kind != KindNumber {
		return nil, false
	}
	return v.rec.slice.bytes(v.input), true
}

// AsBool returns the value's boolean, if it is one.
func (v Value) AsBool() (bool, bool) {
	if v.rec.kind != KindBool {
		return false, false
	}
	return v.rec.boolean, true
}

// IsNull reports whether the value is JSON null.
func (v Value) IsNull() bool { return v.rec.kind == KindNull }

// AsMap returns a view over the value's entries, if it is a map.
func (v Value) AsMap() (MapView, bool) {
	if v.rec.kind != KindMap {
		return MapView{}, false
	}
	mv := MapView{input: v.input, offsets: v.offsets, sizeHint: v.rec.count}
	if v.rec.count > 0 {
		mv.start, mv.hasStart = v.index+1, true
	}
	return mv, true
}

// AsArray returns a view over the value's elements, if it is an array.
func (v Value) AsArray() (ArrayView, bool) {
	if v.rec.kind != KindArray {
		return ArrayView{}, false
	}
	av := ArrayView{input: v.input, offsets: v.offsets, sizeHint: v.rec.count}
	if v.rec.count > 0 {
		av.start, av.hasStart = v.index+1, true
	}
	return av, true
}

// MapView is a lazy view over a map's key/value pairs: the sibling-link
// threading in the offset table (spec.md §3) means iterating its
// entries never walks anything outside the pairs it actually contains,
// regardless of how large the rest of the document is.
type MapView struct {
	input    []byte
	offsets  *OffsetTable
	sizeHint uint16
	start    uint16
	hasStart bool
}

// Len returns the number of key/value pairs, taken directly from the
// map's placeholder record with no traversal.
func (m MapView) Len() int { return int(m.sizeHint) }

// Entries returns an iterator over the map's key/value pairs in the
// order they appeared in the input.
func (m MapView) Entries() *MapEntries {
	it := &MapEntries{input: m.input, offsets: m.offsets}
	if m.hasStart {
		it.key = m.start
		it.value = m.start + 1
		it.hasNext = true
	}
	return it
}

// Lookup finds the first entry whose key, once unescaped, equals key;
// only keys that contain a backslash are unescaped. This and Path are
// supplemented conveniences (SPEC_FULL.md "Supplemented features"); the
// sibling-chain walk Entries performs is the only traversal spec.md
// itself describes.
func (m MapView) Lookup(key string) (Value, bool) {
	it := m.Entries()
	for {
		k, v, ok := it.Next()
		if !ok {
			return Value{}, false
		}
		if keyMatches(k, key) {
			return v, true
		}
	}
}

// Path walks nested maps by key, returning the value at the end of the
// path, or false if any segment is missing or not a map.
func (m MapView) Path(parts ...string) (Value, bool) {
	if len(parts) == 0 {
		return Value{}, false
	}
	v, ok := m.Lookup(parts[0])
	if !ok {
		return Value{}, false
	}
	for _, p := range parts[1:] {
		next, isMap := v.AsMap()
		if !isMap {
			return Value{}, false
		}
		v, ok = next.Lookup(p)
		if !ok {
			return Value{}, false
		}
	}
	return v, true
}

func keyMatches(k StrKey, want string) bool {
	if !k.escaped {
		return k.AsRaw() == want
	}
	return k.ToUnescaped() == want
}

// MapEntries is a stateful, single-pass iterator over a MapView's
// entries produced by Entries.
type MapEntries struct {
	input   []byte
	offsets *OffsetTable
	key     uint16
	value   uint16
	hasNext bool
}

// Next returns the next key/value pair, or ok=false once the map's
// key-thread sibling chain is exhausted.
func (it *MapEntries) Next() (StrKey, Value, bool) {
	if !it.hasNext {
		return StrKey{}, Value{}, false
	}

	keyRec := it.offsets.record(it.key)
	valRec := it.offsets.record(it.value)

	key := StrKey{input: it.input, slice: keyRec.slice, escaped: keyRec.escaped}
	val := makeValue(it.input, it.offsets, it.value, *valRec)

	if keyRec.hasNext() {
		it.key = keyRec.next
	} else {
		it.hasNext = false
	}
	if valRec.hasNext() {
		it.value = valRec.next
	}

	return key, val, true
}

// ArrayView is a lazy view over an array's elements.
type ArrayView struct {
	input    []byte
	offsets  *OffsetTable
	sizeHint uint16
	start    uint16
	hasStart bool
}

// Len returns the number of elements, taken directly from the array's
// placeholder record with no traversal.
func (a ArrayView) Len() int { return int(a.sizeHint) }

// Iter returns an iterator over the array's elements in order.
func (a ArrayView) Iter() *ArrayElems {
	it := &ArrayElems{input: a.input, offsets: a.offsets}
	if a.hasStart {
		it.elem = a.start
		it.hasNext = true
	}
	return it
}

// ArrayElems is a stateful, single-pass iterator over an ArrayView's
// elements produced by Iter.
type ArrayElems struct {
	input   []byte
	offsets *OffsetTable
	elem    uint16
	hasNext bool
}

// Next returns the next element, or ok=false once the element thread's
// sibling chain is exhausted.
func (it *ArrayElems) Next() (Value, bool) {
	if !it.hasNext {
		return Value{}, false
	}

	rec := it.offsets.record(it.elem)
	val := makeValue(it.input, it.offsets, it.elem, *rec)

	if rec.hasNext() {
		it.elem = rec.next
	} else {
		it.hasNext = false
	}

	return val, true
}
