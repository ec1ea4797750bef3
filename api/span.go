// File: api/span.go
// Author: momentics <momentics@gmail.com>
//
// Raw, untrusted position spans. A Span is what enters the library from the
// outside world; it carries no validity guarantee until a container vets it.

package api

// Span is a half-open interval [Start, End) of raw positions.
type Span struct {
	Start uint32
	End   uint32
}

// Len returns End-Start, or 0 for an inverted span.
func (s Span) Len() uint32 {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// Inverted reports whether Start > End.
func (s Span) Inverted() bool { return s.Start > s.End }
