package tex

import (
	"fmt"
	"strings"
)

// Page is one titled section's worth of ordered content blocks.
type Page struct {
	Number       int
	Title        string
	SectionLevel int
	Blocks       []Block
	References   []Reference
}

// Reference is one bibliography entry attached to a page. The composer
// emits references verbatim as annotation comments; aggregation into the
// bibliography file happens elsewhere.
type Reference struct {
	ID       string
	Citation string
}

// ComposePage renders the page heading, every block in input order, and
// the trailing reference annotations. Output order equals input order.
func (r *Renderer) ComposePage(p Page) string {
	title := p.Title
	if title == "" {
		title = fmt.Sprintf("Page %d", p.Number)
	}
	level := p.SectionLevel
	if level == 0 {
		level = 1
	}

	var sb strings.Builder
	sb.WriteString(headingCommand(level, FormatText(title)) + "\n\n")

	for _, b := range p.Blocks {
		sb.WriteString(r.Render(b))
	}

	if len(p.References) > 0 {
		sb.WriteString("% References used in this page:\n")
		sb.WriteString("% These will be collected into the main bibliography file\n")
		for _, ref := range p.References {
			fmt.Fprintf(&sb, "%% %s: %s\n", ref.ID, ref.Citation)
		}
	}
	return sb.String()
}
