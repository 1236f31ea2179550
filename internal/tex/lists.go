package tex

import "strings"

// listMarker opens a list region; the detection is line-oriented and
// runs after text formatting, so markers are matched on trimmed lines.
const listMarker = "- "

// ConvertLists turns runs of dash-marked lines into itemize
// environments. A single forward pass with two states (outside a list,
// inside a list): a marked line opens a region if none is open and
// becomes an item; the first unmarked line closes the region. Nested
// lists are not supported, so a region never contains another region.
func ConvertLists(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines)+2)

	inList := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, listMarker) {
			if !inList {
				out = append(out, `\begin{itemize}`)
				inList = true
			}
			out = append(out, `\item `+trimmed[len(listMarker):])
			continue
		}
		if inList {
			out = append(out, `\end{itemize}`)
			inList = false
		}
		out = append(out, line)
	}
	if inList {
		out = append(out, `\end{itemize}`)
	}
	return strings.Join(out, "\n")
}
