package squirreljson

import (
	"fmt"
	"strconv"
)

// AppendJSON re-serialises v to minified JSON, appending to dst and
// returning the extended buffer (mirroring the teacher's
// MarshalJSONBuffer convention). This is a supplemented feature
// (SPEC_FULL.md #3): spec.md's reader never needs to write JSON, but a
// complete implementation benefits from being able to round-trip a
// (sub)tree it has already located, e.g. to extract a nested value as
// its own standalone document.
func (v Value) AppendJSON(dst []byte) ([]byte, error) {
	switch v.rec.kind {
	case KindString:
		s, _ := v.AsString()
		return appendJSONString(dst, s), nil
	case KindNumber:
		n, _ := v.AsNumber()
		return append(dst, n...), nil
	case KindBool:
		b, _ := v.AsBool()
		if b {
			return append(dst, "true"...), nil
		}
		return append(dst, "false"...), nil
	case KindNull:
		return append(dst, "null"...), nil
	case KindMap:
		mv, _ := v.AsMap()
		return mv.AppendJSON(dst)
	case KindArray:
		av, _ := v.AsArray()
		return av.AppendJSON(dst)
	default:
		return dst, fmt.Errorf("squirreljson: value has unknown kind %d", v.rec.kind)
	}
}

// AppendJSON re-serialises the map to minified JSON.
func (m MapView) AppendJSON(dst []byte) ([]byte, error) {
	dst = append(dst, '{')
	it := m.Entries()
	first := true
	for {
		k, val, ok := it.Next()
		if !ok {
			break
		}
		if !first {
			dst = append(dst, ',')
		}
		first = false

		dst = appendJSONString(dst, k)
		dst = append(dst, ':')

		var err error
		dst, err = val.AppendJSON(dst)
		if err != nil {
			return dst, err
		}
	}
	return append(dst, '}'), nil
}

// AppendJSON re-serialises the array to minified JSON.
func (a ArrayView) AppendJSON(dst []byte) ([]byte, error) {
	dst = append(dst, '[')
	it := a.Iter()
	first := true
	for {
		val, ok := it.Next()
		if !ok {
			break
		}
		if !first {
			dst = append(dst, ',')
		}
		first = false

		var err error
		dst, err = val.AppendJSON(dst)
		if err != nil {
			return dst, err
		}
	}
	return append(dst, ']'), nil
}

// appendJSONString re-escapes s and appends it, quoted, to dst.
func appendJSONString(dst []byte, s StrKey) []byte {
	dst = append(dst, '"')
	for _, r := range s.ToUnescaped() {
		switch r {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			if r < 0x20 {
				dst = append(dst, '\\', 'u')
				hex := strconv.FormatUint(uint64(r), 16)
				for i := len(hex); i < 4; i++ {
					dst = append(dst, '0')
				}
				dst = append(dst, hex...)
			} else {
				dst = append(dst, string(r)...)
			}
		}
	}
	return append(dst, '"')
}
