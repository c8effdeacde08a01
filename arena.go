package fdon

// An Arena supplies the composite storage for parsed trees: backing
// slabs for array elements and buffers for unescaped string payloads.
// Allocation only ever appends; release is in bulk via Reset, which
// invalidates every tree parsed against the arena since the previous
// Reset.
//
// The zero Arena is ready to use. An Arena must not be shared between
// concurrent parses.
type Arena struct {
	// bytes accumulates unescaped string payloads. Each payload is a
	// sub-slice; a grow mid-parse leaves earlier payloads pointing at
	// the old backing array, which stays reachable through them.
	bytes []byte

	// vals accumulates the element storage of completed arrays.
	vals []Value

	// scratch holds the elements of arrays still being parsed, used
	// as a stack of frames so nested parses don't interleave their
	// slab regions.
	scratch []Value
}

// Reset releases all arena storage in bulk, retaining the underlying
// capacity for reuse. Trees previously parsed against the arena become
// invalid.
func (a *Arena) Reset() {
	a.bytes = a.bytes[:0]
	a.vals = a.vals[:0]
	a.scratch = a.scratch[:0]
}

func (a *Arena) appendBytes(p []byte) {
	a.bytes = append(a.bytes, p...)
}

func (a *Arena) appendByte(b byte) {
	a.bytes = append(a.bytes, b)
}

// takeBytes returns the byte run appended since start was recorded,
// capped so later appends can never write into it.
func (a *Arena) takeBytes(start int) []byte {
	return a.bytes[start:len(a.bytes):len(a.bytes)]
}

// mark opens a scratch frame for an in-progress array.
func (a *Arena) mark() int {
	return len(a.scratch)
}

func (a *Arena) push(v Value) {
	a.scratch = append(a.scratch, v)
}

// seal moves the scratch values pushed since mark into the value slab,
// pops the frame and returns the slab region holding them.
func (a *Arena) seal(mark int) []Value {
	start := len(a.vals)
	a.vals = append(a.vals, a.scratch[mark:]...)
	a.scratch = a.scratch[:mark]
	return a.vals[start:len(a.vals):len(a.vals)]
}
