package json2tex

import (
	"fmt"
	"strings"
)

// FormatBibliography renders the references of all pages as BibTeX
// source. Entries are keyed by reference ID in first-appearance order;
// a later page redefining an ID overwrites the citation (last writer
// wins). Citations that already look like BibTeX (leading '@') are
// emitted verbatim; anything else becomes a minimal @misc entry so
// biber still resolves the key. An empty result means no page carried
// references.
func FormatBibliography(pages []*Page) string {
	var order []string
	citations := make(map[string]string)

	for _, page := range pages {
		for _, ref := range page.References {
			if ref.ID == "" || ref.Citation == "" {
				continue
			}
			if _, seen := citations[ref.ID]; !seen {
				order = append(order, ref.ID)
			}
			citations[ref.ID] = ref.Citation
		}
	}

	var sb strings.Builder
	for _, id := range order {
		citation := citations[id]
		if strings.HasPrefix(citation, "@") {
			sb.WriteString(citation + "\n\n")
		} else {
			fmt.Fprintf(&sb, "@misc{%s,\n  title={%s},\n  author={Unknown}\n}\n\n", id, id)
		}
	}
	return sb.String()
}
