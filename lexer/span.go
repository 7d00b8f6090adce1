package lexer

// Span references a contiguous run of source bytes. It does not own the
// bytes; it is only meaningful together with the buffer it was cut from.
type Span struct {
	Offset int
	Length int
}

// End returns the offset right after the last byte of the span.
func (s Span) End() int {
	return s.Offset + s.Length
}

// Slice returns the bytes of src covered by the span.
func (s Span) Slice(src []byte) []byte {
	return src[s.Offset:s.End()]
}

// Text returns the covered bytes as a string.
func (s Span) Text(src []byte) string {
	return string(s.Slice(src))
}
