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

// Document is the read-only facade over a scanned OffsetTable (spec.md
// §4.4). It pairs the table with the exact input buffer it indexes, so
// every Slice it hands out can be resolved without the caller having to
// remember which buffer it came from.
type Document struct {
	input        []byte
	offsets      OffsetTable
	stackScratch []activeFrame
}

// errDocument is the Document returned for input that fails preflight or
// that poisons mid-scan. It carries no records and no reusable
// allocations.
func errDocument(input []byte) *Document {
	return &Document{input: input, offsets: OffsetTable{err: true}}
}

// Err reports whether this Document is the result of a failed scan. A
// Document with Err() true may be empty or may contain meaningless data;
// it is always safe to call its other methods, but the results carry no
// guarantees.
func (d *Document) Err() bool { return d.offsets.Err() }

// Len reports the number of OffsetRecord entries in the document.
func (d *Document) Len() int { return d.offsets.Len() }

// Input returns the exact buffer this Document was scanned from.
func (d *Document) Input() []byte { return d.input }

// AsMap returns a view over the document's top-level entries. Per
// spec.md's Non-goals, a Document only ever has a map at its top level;
// AsMap always succeeds (an empty map `{}` yields a MapView with zero
// entries).
func (d *Document) AsMap() MapView {
	mv := MapView{input: d.input, offsets: &d.offsets, sizeHint: d.offsets.rootSizeHint}
	if mv.sizeHint > 0 {
		mv.start, mv.hasStart = 0, true
	}
	return mv
}

// Detach returns the offset and stack allocations backing this Document,
// cleared to zero length but with their capacity intact, ready to be
// passed to ScanTrustedAttach for a future scan (spec.md §4.5). After
// Detach, this Document must not be used again.
func (d *Document) Detach() DetachedDocument {
	return DetachedDocument{
		offsets: d.offsets.records[:0],
		stack:   d.stackScratch[:0],
	}
}

// IntoOffsets extracts the underlying OffsetTable, for callers that want
// to cache it and re-attach it to a later, verified-identical input via
// OffsetTable.AttachValidated or OffsetTable.AttachUnchecked.
func (d *Document) IntoOffsets() OffsetTable { return d.offsets }

// DetachedDocument holds the offset and stack backing arrays detached
// from a Document, ready to be reused by ScanTrustedAttach so that
// scanning many small documents in sequence does not re-allocate on
// every call (spec.md §4.5).
type DetachedDocument struct {
	offsets []OffsetRecord
	stack   []activeFrame
}
