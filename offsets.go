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

// MaxDepth is the deepest nesting of maps and arrays the scanner will
// track. Input that nests a map or array deeper than this is poisoned
// rather than tracked further (spec.md §4.1 "Depth cap").
const MaxDepth = 96

// MaxOffsets is the largest number of OffsetRecord entries a single
// OffsetTable may hold. A 16-bit sibling-link index needs one sentinel
// value reserved for "no next", which caps the table one short of 65536.
const MaxOffsets = 65535

// noRecord marks the absence of a sibling link. Since MaxOffsets bounds
// a table to 65535 records, index 0xFFFF can never be a real record and
// is free to use as the "no next" sentinel.
const noRecord = uint16(0xFFFF)

// Kind is the tagged variant carried by an OffsetRecord.
type Kind uint8

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindNull
	KindMap
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	case KindMap:
		return "map"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Position is the role an OffsetRecord plays within its immediate
// container: the key of a map pair, the value of a map pair, or an
// element of an array. Records with no container (unreachable in a
// well-formed document) carry PositionNone.
type Position uint8

const (
	PositionNone Position = iota
	PositionKey
	PositionValue
	PositionElem
)

// Slice is a zero-copy (offset, length) pair into the scanned input
// buffer. It never owns bytes.
type Slice struct {
	Offset uint32
	Length uint32
}

func (s Slice) bytes(input []byte) []byte {
	return input[s.Offset : s.Offset+s.Length]
}

// OffsetRecord is one fixed-size entry in an OffsetTable: a scalar, or a
// map/array placeholder whose Count and contents are filled in once its
// closing brace or bracket is seen.
type OffsetRecord struct {
	slice    Slice
	count    uint16 // Map: number of key/value pairs. Array: number of elements.
	next     uint16 // index of the next sibling at the same Position, or noRecord
	kind     Kind
	position Position
	escaped  bool // String only: true if the raw slice contains a backslash.
	boolean  bool // Bool only: the decoded value.
}

// Kind returns the record's variant.
func (r OffsetRecord) Kind() Kind { return r.kind }

// Position returns the record's role within its parent container.
func (r OffsetRecord) Position() Position { return r.position }

func (r *OffsetRecord) hasNext() bool { return r.next != noRecord }

// OffsetTable is an append-only, zero-indexed sequence of OffsetRecord
// produced by scanning one JSON document. It is the data model described
// in spec.md §3; Document is the read-only facade over it.
type OffsetTable struct {
	records      []OffsetRecord
	err          bool
	rootSizeHint uint16
	inputHash    uint64
	hashAlg      HashAlgorithm
}

// Len reports how many records the table holds.
func (t *OffsetTable) Len() int { return len(t.records) }

// Err reports whether the scan that produced this table hit the sticky
// poison condition described in spec.md §4.1/§7.
func (t *OffsetTable) Err() bool { return t.err }

// record returns the record at idx. Callers within this package only;
// exported accessors go through Value.
func (t *OffsetTable) record(idx uint16) *OffsetRecord { return &t.records[idx] }
