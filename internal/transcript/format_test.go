package transcript

import (
	"fmt"
	"strings"
	"testing"
)

func TestPlainText(t *testing.T) {
	tr := New([]Segment{
		{Start: 0, End: 2.5, Text: "hello world"},
		{Start: 2.5, End: 5, Text: "testing one two"},
	})

	want := "[0.00 - 2.50] hello world\n[2.50 - 5.00] testing one two\n"
	if got := tr.PlainText(); got != want {
		t.Errorf("PlainText() = %q, want %q", got, want)
	}
}

func TestPlainTextRoundTrip(t *testing.T) {
	segments := []Segment{
		{Start: 0.004, End: 1.006, Text: "a"},
		{Start: 1.006, End: 63.339, Text: "b"},
		{Start: 63.339, End: 3599.999, Text: "c"},
	}
	tr := New(segments)

	lines := strings.Split(strings.TrimSuffix(tr.PlainText(), "\n"), "\n")
	if len(lines) != len(segments) {
		t.Fatalf("got %d lines, want %d", len(lines), len(segments))
	}

	for i, line := range lines {
		var start, end float64
		var text string
		if _, err := fmt.Sscanf(line, "[%f - %f] %s", &start, &end, &text); err != nil {
			t.Fatalf("line %d %q does not parse: %v", i, line, err)
		}
		wantStart := float64(int(segments[i].Start*100+0.5)) / 100
		wantEnd := float64(int(segments[i].End*100+0.5)) / 100
		if start != wantStart || end != wantEnd {
			t.Errorf("line %d parsed to [%v - %v], want [%v - %v]", i, start, end, wantStart, wantEnd)
		}
	}
}

func TestPlainTextKeepsEmptySegments(t *testing.T) {
	tr := New([]Segment{
		{Start: 0, End: 1, Text: "   "},
		{Start: 1, End: 2, Text: "spoken"},
	})

	lines := strings.Split(strings.TrimSuffix(tr.PlainText(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("empty segment was dropped, got %d lines", len(lines))
	}
	if lines[0] != "[0.00 - 1.00] " {
		t.Errorf("line 0 = %q", lines[0])
	}
}

func TestASSTimestamp(t *testing.T) {
	tests := []struct {
		name string
		sec  float64
		want string
	}{
		{"zero", 0, "0:00:00.00"},
		{"simple", 2.5, "0:00:02.50"},
		{"truncates instead of rounding", 1.999, "0:00:01.99"},
		{"minute rollover", 61.0, "0:01:01.00"},
		{"hour with centiseconds", 3661.25, "1:01:01.25"},
		{"unpadded hours", 36000, "10:00:00.00"},
		{"negative clamped", -1.5, "0:00:00.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := assTimestamp(tt.sec); got != tt.want {
				t.Errorf("assTimestamp(%v) = %q, want %q", tt.sec, got, tt.want)
			}
		})
	}
}

func TestASSDocument(t *testing.T) {
	tr := New([]Segment{
		{Start: 0, End: 2.5, Text: "hello world"},
		{Start: 2.5, End: 5, Text: "testing one two"},
	})

	doc := tr.ASS()
	if !strings.HasPrefix(doc, "[Script Info]") {
		t.Errorf("document missing header: %q", doc[:20])
	}
	for _, want := range []string{
		"PlayResX: 1920",
		"PlayResY: 1080",
		"Style: Default,",
		"Dialogue: 0,0:00:00.00,0:00:02.50,Default,,0,0,0,,hello world",
		"Dialogue: 0,0:00:02.50,0:00:05.00,Default,,0,0,0,,testing one two",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}

	// Dialogue order must match segment order
	first := strings.Index(doc, "hello world")
	second := strings.Index(doc, "testing one two")
	if first > second {
		t.Error("dialogue events out of segment order")
	}
}

func TestASSCollapsesNewlines(t *testing.T) {
	tr := New([]Segment{{Start: 0, End: 1, Text: "line one\nline two\r\nline three"}})

	doc := tr.ASS()
	idx := strings.Index(doc, "Dialogue:")
	if idx < 0 {
		t.Fatal("no dialogue event emitted")
	}
	event := doc[idx:]
	event = strings.TrimSuffix(event, "\n")
	if strings.ContainsAny(event, "\r\n") {
		t.Errorf("dialogue event contains a newline: %q", event)
	}
	if !strings.Contains(event, "line one line two line three") {
		t.Errorf("newlines not collapsed to spaces: %q", event)
	}
}

func TestEmptyTranscript(t *testing.T) {
	tr := New(nil)

	if !tr.Empty() {
		t.Error("Empty() = false for zero segments")
	}
	if got := tr.PlainText(); got != "" {
		t.Errorf("PlainText() = %q, want empty", got)
	}
	if got := tr.ASS(); got != assHeader {
		t.Errorf("ASS() should be header-only, got %q", got)
	}
}

func TestNewClampsTimings(t *testing.T) {
	tr := New([]Segment{
		{Start: -3, End: 1, Text: "negative start"},
		{Start: 5, End: 2, Text: "negative duration"},
		{Start: 2, End: 2, Text: "shared boundary ok"},
	})

	if tr.Segments[0].Start != 0 {
		t.Errorf("negative start not clamped: %v", tr.Segments[0].Start)
	}
	if tr.Segments[1].End != tr.Segments[1].Start {
		t.Errorf("negative duration not clamped: %+v", tr.Segments[1])
	}
	if tr.Segments[2].Start != 2 || tr.Segments[2].End != 2 {
		t.Errorf("zero-duration segment altered: %+v", tr.Segments[2])
	}
}
