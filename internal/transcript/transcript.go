package transcript

import "strings"

// Segment is one timed piece of transcribed speech. Start and End are
// seconds from the beginning of the media.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Transcript is an ordered sequence of segments. Both renderings (plain text
// and the subtitle document) are pure functions of the segment order.
type Transcript struct {
	Segments []Segment
}

// New builds a transcript, clamping malformed timings. Negative starts are
// clamped to zero and an end before its start is pulled up to the start, so
// no segment ever has a negative duration. Text is trimmed but empty
// segments are kept: the renderers must not discard what the transcriber
// produced. Segment order is preserved as-is; adjacent segments may share a
// boundary.
func New(segments []Segment) Transcript {
	out := make([]Segment, len(segments))
	for i, s := range segments {
		if s.Start < 0 {
			s.Start = 0
		}
		if s.End < s.Start {
			s.End = s.Start
		}
		s.Text = strings.TrimSpace(s.Text)
		out[i] = s
	}
	return Transcript{Segments: out}
}

// Empty reports whether the transcriber returned no segments (silent audio).
func (t Transcript) Empty() bool {
	return len(t.Segments) == 0
}
