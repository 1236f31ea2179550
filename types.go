package json2tex

import "fmt"

// Page is the parsed content description of one source page. Number and
// Dir come from the directory the page was discovered in, not from the
// document itself.
type Page struct {
	Number int    `json:"-"`
	Dir    string `json:"-"`

	Title        string         `json:"title"`
	SectionLevel int            `json:"sectionLevel"`
	Content      []ContentBlock `json:"content"`
	References   []Reference    `json:"references"`
}

// ContentBlock is one unit of page content. Type selects the renderer;
// which Data fields are meaningful depends on it.
type ContentBlock struct {
	Type string    `json:"type"`
	Data BlockData `json:"data"`
}

// BlockData carries the per-kind payload of a content block. Text is a
// pointer because an explicitly empty inline text is distinct from an
// absent one: empty renders as a blank paragraph, absent falls through
// to TextPath.
type BlockData struct {
	Text      *string    `json:"text,omitempty"`
	TextPath  string     `json:"textPath,omitempty"`
	ImagePath string     `json:"imagePath,omitempty"`
	TableData [][]string `json:"tableData,omitempty"`
	Code      string     `json:"code,omitempty"`
	Language  string     `json:"language,omitempty"`
	Equation  string     `json:"equation,omitempty"`
	Caption   string     `json:"caption,omitempty"`
	Label     string     `json:"label,omitempty"`
}

// Reference is one bibliography entry attached to a page.
type Reference struct {
	ID       string `json:"id"`
	Citation string `json:"citation"`
}

// Validate checks structural invariants that make a page unusable.
// Content problems inside blocks are not errors; they surface as
// renderer warnings instead.
func (p *Page) Validate() error {
	if p.Number < 1 {
		return fmt.Errorf("%w: page number %d, must be positive", ErrInvalidPage, p.Number)
	}
	if p.SectionLevel < 0 {
		return fmt.Errorf("%w: section level %d, must not be negative", ErrInvalidPage, p.SectionLevel)
	}
	for i, block := range p.Content {
		if block.Type == "" {
			return fmt.Errorf("%w: content block %d has no type", ErrInvalidPage, i)
		}
	}
	return nil
}
