package squirreljson

import (
	"fmt"
	"io"
)

// DumpOffsets renders every record in d's offset table, one per line,
// with its index, kind, position and sibling link. It is a debugging aid
// grounded in the teacher's dump_raw_tape (simdjson.go) and the Rust
// crate's own Debug impl for Document; nothing on the scan or facade
// path calls it.
func DumpOffsets(w io.Writer, d *Document) error {
	if d.Err() {
		_, err := fmt.Fprintln(w, "<errored document>")
		return err
	}
	for i := range d.offsets.records {
		r := &d.offsets.records[i]
		next := "-"
		if r.hasNext() {
			next = fmt.Sprintf("%d", r.next)
		}
		switch r.kind {
		case KindString:
			_, err := fmt.Fprintf(w, "%5d  %-8s %-6s escaped=%-5v next=%s  %q\n",
				i, r.kind, r.position, r.escaped, next, r.slice.bytes(d.input))
			if err != nil {
				return err
			}
		case KindNumber:
			if _, err := fmt.Fprintf(w, "%5d  %-8s %-6s next=%s  %s\n",
				i, r.kind, r.position, next, r.slice.bytes(d.input)); err != nil {
				return err
			}
		case KindBool:
			if _, err := fmt.Fprintf(w, "%5d  %-8s %-6s next=%s  %v\n",
				i, r.kind, r.position, next, r.boolean); err != nil {
				return err
			}
		case KindMap, KindArray:
			if _, err := fmt.Fprintf(w, "%5d  %-8s %-6s next=%s  count=%d\n",
				i, r.kind, r.position, next, r.count); err != nil {
				return err
			}
		default:
			if _, err := fmt.Fprintf(w, "%5d  %-8s %-6s next=%s\n", i, r.kind, r.position, next); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p Position) String() string {
	switch p {
	case PositionKey:
		return "key"
	case PositionValue:
		return "value"
	case PositionElem:
		return "elem"
	default:
		return "none"
	}
}
