// Package squirreljson scans minified, trusted JSON documents whose
// top-level value is a map into a zero-copy offset table, without
// materialising a tree or a tape. Every scalar, key, map and array in
// the input gets one fixed-size OffsetRecord; sibling records at the
// same position within a container are threaded into singly-linked
// lists, so walking a map's entries or an array's elements never visits
// anything the caller didn't ask for.
//
// Scan with ScanTrusted, then walk the result with Document.AsMap:
//
//	doc := squirreljson.ScanTrusted(input)
//	if doc.Err() {
//		return fmt.Errorf("malformed input")
//	}
//	name, ok := doc.AsMap().Lookup("name")
//
// This package does not validate that input is well-formed JSON beyond
// what it needs to produce a safe offset table, does not parse numbers,
// and only accepts a map at the top level. See spec.md and SPEC_FULL.md
// in the module root for the full set of invariants and Non-goals.
package squirreljson
