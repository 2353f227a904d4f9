package transcript

import (
	"fmt"
	"math"
	"strings"
)

// assHeader is the fixed style block of the subtitle document. 1920x1080
// canvas, one Default style: white bold text, black outline, translucent
// box, bottom-center alignment.
const assHeader = `[Script Info]
ScriptType: v4.00+
PlayResX: 1920
PlayResY: 1080

[V4+ Styles]
Format: Name, Fontname, Fontsize, PrimaryColour, OutlineColour, BackColour, Bold, Alignment, MarginL, MarginR, MarginV
Style: Default,Arial,54,&H00FFFFFF,&H00000000,&H64000000,1,2,40,40,60

[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
`

// PlainText renders one line per segment: "[SS.ss - SS.ss] text" with times
// rounded to two decimals. A zero-segment transcript renders to "".
func (t Transcript) PlainText() string {
	var b strings.Builder
	for _, s := range t.Segments {
		fmt.Fprintf(&b, "[%.2f - %.2f] %s\n", s.Start, s.End, s.Text)
	}
	return b.String()
}

// ASS renders the subtitle-track document: the fixed header followed by one
// dialogue event per segment, in segment order. A zero-segment transcript
// renders to the header alone.
func (t Transcript) ASS() string {
	var b strings.Builder
	b.WriteString(assHeader)
	for _, s := range t.Segments {
		fmt.Fprintf(&b, "Dialogue: 0,%s,%s,Default,,0,0,0,,%s\n",
			assTimestamp(s.Start), assTimestamp(s.End), collapseLines(s.Text))
	}
	return b.String()
}

// assTimestamp formats seconds as H:MM:SS.CC. Centiseconds are truncated,
// not rounded, so a time never crosses a second boundary upward
// (1.999s -> 0:00:01.99).
func assTimestamp(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	cs := int64(math.Floor(sec * 100))
	return fmt.Sprintf("%d:%02d:%02d.%02d", cs/360000, (cs/6000)%60, (cs/100)%60, cs%100)
}

// collapseLines folds embedded newlines into single spaces. A dialogue event
// must stay on one line or the document breaks.
func collapseLines(s string) string {
	lines := strings.FieldsFunc(s, func(r rune) bool { return r == '\n' || r == '\r' })
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return strings.Join(lines, " ")
}
