package jv

// Document is one loaded JSON input: the parsed value plus where it came
// from. A document is created once per load (or per diff operand) and is
// read-only thereafter.
type Document struct {
	Value  *Value
	Source string // display name: base file name or "stdin"
	Path   string // file path on disk; empty when read from stdin
	Raw    []byte // original bytes, kept for embedding and validation
}
