package fdon

import (
	"fmt"
	"strings"
)

// ParseError is the error type returned by Parse. Offset is the byte
// offset into the minified buffer at which the fault was detected; it
// may equal the buffer length when input ended prematurely.
type ParseError struct {
	Msg    string
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Msg, e.Offset)
}

// windowContext is how many bytes of context Window shows on either
// side of the error offset.
const windowContext = 50

// Window renders the region of the minified input around the error
// offset with a caret marking the offset, for example:
//
//	O{a:N1,}
//	       ^
//
// Regions elided on either side are marked with "...". minified should
// be the same buffer the failing Parse was given.
func (e *ParseError) Window(minified []byte) string {
	start := e.Offset - windowContext
	prefix := ""
	if start <= 0 {
		start = 0
	} else {
		prefix = "..."
	}
	end := e.Offset + windowContext
	suffix := ""
	if end >= len(minified) {
		end = len(minified)
	} else {
		suffix = "..."
	}
	col := len(prefix) + e.Offset - start
	return prefix + string(minified[start:end]) + suffix + "\n" + strings.Repeat(" ", col) + "^"
}
