// Package fdon reads FDON, a type-tagged textual data-interchange
// format. Every value is introduced by a single-letter tag:
//
//	U                null
//	Btrue Bfalse     boolean
//	N42 N3.14        number (integer unless the text contains '.')
//	T1700000000      timestamp (numeric)
//	T"10:00:00"      time
//	D"2024-01-01"    date
//	S"raw bytes"     raw string (no escapes)
//	SE"a\n\"b"       escaped string ('\' escapes the next byte)
//	A[v,v,...]       array
//	O{key:v,...}     object (keys run up to ':', duplicates overwrite)
//
// Reading a document is a two-step affair. Minify strips insignificant
// whitespace from the raw input without touching the contents of string
// literals, and Parse decodes the minified bytes into a Value tree.
//
// The parser is zero-copy where it can be: raw string, date and time
// payloads reference the minified buffer directly (object keys are
// copied into Go strings), and
// the storage for arrays and unescaped strings comes from a per-parse
// Arena that is released in bulk. A Value must therefore not outlive
// the minified buffer or the arena it was parsed against.
package fdon
