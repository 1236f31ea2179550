package tex

import (
	"regexp"
	"strings"
)

// Precompiled patterns for the markdown-like dialect.
var (
	citationPattern = regexp.MustCompile(`\[(\w+)\]`)

	chapterPattern       = regexp.MustCompile(`(?m)^# (.+)$`)
	sectionPattern       = regexp.MustCompile(`(?m)^## (.+)$`)
	subsectionPattern    = regexp.MustCompile(`(?m)^### (.+)$`)
	subsubsectionPattern = regexp.MustCompile(`(?m)^#### (.+)$`)
	paragraphPattern     = regexp.MustCompile(`(?m)^#{5,} (.+)$`)

	boldPattern   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern = regexp.MustCompile(`\*(.+?)\*`)

	percentPattern = regexp.MustCompile(`(\d+)%`)

	// Micro units match both U+00B5 MICRO SIGN and U+03BC GREEK SMALL
	// LETTER MU. The symbol table above rewrites the Greek mu, so in
	// practice only the micro sign reaches these patterns.
	micrometrePattern = regexp.MustCompile(`(\d+)\s*[µμ][mM]`)
	microampPattern   = regexp.MustCompile(`(\d+)\s*[µμ][Aa]`)
)

// FormatPlain escapes and converts one plain-text span. The step order is
// fixed: structural escaping first, then Polish and scientific
// transliteration, then dialect conversion. Bold runs before italic so a
// ** delimiter is never half-consumed as *. There is no error path;
// malformed input produces best-effort output.
func FormatPlain(text string) string {
	text = structuralReplacer.Replace(text)
	text = polishReplacer.Replace(text)
	text = scientificReplacer.Replace(text)

	text = citationPattern.ReplaceAllString(text, `\cite{$1}`)

	// Inert for raw input: structural escaping has already rewritten #
	// to \#. Heading lines are converted before escaping by the
	// external-text renderer, which protects them with placeholders.
	text = chapterPattern.ReplaceAllString(text, `\chapter{$1}`)
	text = sectionPattern.ReplaceAllString(text, `\section{$1}`)
	text = subsectionPattern.ReplaceAllString(text, `\subsection{$1}`)
	text = subsubsectionPattern.ReplaceAllString(text, `\subsubsection{$1}`)
	text = paragraphPattern.ReplaceAllString(text, `\paragraph{$1}`)

	text = boldPattern.ReplaceAllString(text, `\textbf{$1}`)
	text = italicPattern.ReplaceAllString(text, `\textit{$1}`)

	text = percentPattern.ReplaceAllString(text, `$1\%`)
	text = strings.ReplaceAll(text, "~70%", `\textasciitilde{}70\%`)
	text = micrometrePattern.ReplaceAllString(text, `${1} $$\mu$$m`)
	text = microampPattern.ReplaceAllString(text, `${1} $$\mu$$A`)

	return text
}

// FormatText runs the full text pipeline: split off protected math and
// reference spans, format the plain spans, reassemble, and normalize
// paragraph breaks. Protected spans pass through byte for byte; this is
// the only safe entry point for user text.
func FormatText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, seg := range Split(text) {
		if seg.Kind == SegmentPlain {
			b.WriteString(FormatPlain(seg.Content))
		} else {
			b.WriteString(seg.Content)
		}
	}
	return strings.ReplaceAll(b.String(), "\n\n", "\n\\par\n")
}

// headingCommand wraps already-formatted content in the sectioning
// command for the given level. Levels beyond subsubsection fall back to
// paragraph.
func headingCommand(level int, content string) string {
	switch level {
	case 1:
		return `\chapter{` + content + `}`
	case 2:
		return `\section{` + content + `}`
	case 3:
		return `\subsection{` + content + `}`
	case 4:
		return `\subsubsection{` + content + `}`
	default:
		return `\paragraph{` + content + `}`
	}
}

// leadingHashes counts the run of '#' at the start of s.
func leadingHashes(s string) int {
	n := 0
	for _, r := range s {
		if r != '#' {
			break
		}
		n++
	}
	return n
}
