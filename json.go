package fdon

import (
	"math"
	"sort"
	"strconv"
	"unicode/utf8"
)

// AppendJSON appends the JSON encoding of v to dst and returns the
// extended buffer. The encoding flattens the FDON type tags: Number
// and Timestamp emit as bare JSON numbers, and all four textual kinds
// emit as JSON strings. Object keys are emitted in sorted order so the
// output is deterministic.
//
// Payload bytes that are not valid UTF-8 are replaced with U+FFFD, so
// the output is always valid JSON.
func AppendJSON(dst []byte, v Value) []byte {
	switch v.kind {
	case Unknown, Null:
		return append(dst, "null"...)
	case Bool:
		if v.number != 0 {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case Number, Timestamp:
		if v.float {
			return appendJSONFloat(dst, math.Float64frombits(v.number))
		}
		return strconv.AppendInt(dst, int64(v.number), 10)
	case String, StringEsc, Date, Time:
		return appendJSONString(dst, v.bytes)
	case Array:
		dst = append(dst, '[')
		for i, e := range v.arr {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = AppendJSON(dst, e)
		}
		return append(dst, ']')
	case Object:
		keys := make([]string, 0, len(v.obj))
		for k := range v.obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		dst = append(dst, '{')
		for i, k := range keys {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendJSONString(dst, []byte(k))
			dst = append(dst, ':')
			dst = AppendJSON(dst, v.obj[k])
		}
		return append(dst, '}')
	}
	panic("unknown value kind")
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return AppendJSON(nil, v), nil
}

func appendJSONFloat(dst []byte, f float64) []byte {
	// JSON has no representation for these; a parsed tree can't
	// contain them, but a constructed one can.
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return append(dst, "null"...)
	}
	return strconv.AppendFloat(dst, f, 'g', -1, 64)
}

const hexDigits = "0123456789abcdef"

func appendJSONString(dst, s []byte) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); {
		b := s[i]
		if b < utf8.RuneSelf {
			if b >= 0x20 && b != '"' && b != '\\' {
				i++
				continue
			}
			dst = append(dst, s[start:i]...)
			switch b {
			case '"', '\\':
				dst = append(dst, '\\', b)
			case '\n':
				dst = append(dst, '\\', 'n')
			case '\r':
				dst = append(dst, '\\', 'r')
			case '\t':
				dst = append(dst, '\\', 't')
			default:
				dst = append(dst, '\\', 'u', '0', '0', hexDigits[b>>4], hexDigits[b&0xf])
			}
			i++
			start = i
			continue
		}
		r, size := utf8.DecodeRune(s[i:])
		if r == utf8.RuneError && size == 1 {
			dst = append(dst, s[start:i]...)
			dst = append(dst, `�`...)
			i++
			start = i
			continue
		}
		i += size
	}
	dst = append(dst, s[start:]...)
	return append(dst, '"')
}
