package tex

import (
	"regexp"
	"sort"
)

// SegmentKind classifies one span of input text.
type SegmentKind int

const (
	// SegmentPlain is regular text, subject to escaping and dialect conversion.
	SegmentPlain SegmentKind = iota
	// SegmentMath is a $...$ span that must pass through unmodified.
	SegmentMath
	// SegmentReference is a \ref{...} command that must pass through unmodified.
	SegmentReference
)

// Segment is one span of the input string. Segments produced by Split lie
// end to end: concatenating their Content in order reproduces the input
// byte for byte.
type Segment struct {
	Kind    SegmentKind
	Content string
	Start   int
	End     int
}

// Protected span patterns. Math is non-greedy with no embedded dollar
// signs, so $a$ and $b$ in one line are two separate spans.
var (
	referencePattern = regexp.MustCompile(`\\ref\{[^}]+\}`)
	mathPattern      = regexp.MustCompile(`\$[^$]+?\$`)
)

// Split partitions text into alternating plain and protected segments,
// sorted by start offset. Matches are consumed in strict start-offset
// order; a later match that starts inside an already consumed span is
// dropped silently.
func Split(text string) []Segment {
	type match struct {
		kind       SegmentKind
		start, end int
	}

	var matches []match
	for _, m := range referencePattern.FindAllStringIndex(text, -1) {
		matches = append(matches, match{kind: SegmentReference, start: m[0], end: m[1]})
	}
	for _, m := range mathPattern.FindAllStringIndex(text, -1) {
		matches = append(matches, match{kind: SegmentMath, start: m[0], end: m[1]})
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].start < matches[j].start })

	var segments []Segment
	last := 0
	for _, m := range matches {
		if m.start < last {
			continue
		}
		if m.start > last {
			segments = append(segments, Segment{
				Kind:    SegmentPlain,
				Content: text[last:m.start],
				Start:   last,
				End:     m.start,
			})
		}
		segments = append(segments, Segment{
			Kind:    m.kind,
			Content: text[m.start:m.end],
			Start:   m.start,
			End:     m.end,
		})
		last = m.end
	}
	if last < len(text) {
		segments = append(segments, Segment{
			Kind:    SegmentPlain,
			Content: text[last:],
			Start:   last,
			End:     len(text),
		})
	}
	return segments
}
