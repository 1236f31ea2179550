package tex

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// BlockKind identifies the renderer for a content block. The set is
// closed; the JSON loader maps unrecognized type strings to KindUnknown
// and the renderer degrades those to a warning plus an empty fragment.
type BlockKind int

const (
	KindUnknown BlockKind = iota
	KindText
	KindImage
	KindTable
	KindCode
	KindEquation
	KindListing
)

// ParseBlockKind maps a page document's "type" field to a BlockKind.
func ParseBlockKind(s string) BlockKind {
	switch s {
	case "text":
		return KindText
	case "image":
		return KindImage
	case "table":
		return KindTable
	case "code":
		return KindCode
	case "equation":
		return KindEquation
	case "listing":
		return KindListing
	default:
		return KindUnknown
	}
}

// Block is one unit of page content. Which fields are meaningful depends
// on Kind; Text uses a pointer because an explicitly empty inline text is
// distinct from an absent one.
type Block struct {
	Kind    BlockKind
	RawKind string // the document's type string, kept for diagnostics

	Text      *string
	TextPath  string // external text file, relative to the page directory
	ImagePath string
	TableData [][]string
	Code      string
	Language  string
	Equation  string
	Caption   string
	Label     string
}

// TextLoader loads external text referenced by a block, resolving path
// against baseDir. Implementations never abort a render: on failure the
// renderer records a warning and emits an empty fragment.
type TextLoader func(path, baseDir string) (string, error)

// Renderer converts blocks and pages to LaTeX fragments. It accumulates
// warnings instead of returning errors; a renderer is used for one page
// and discarded.
type Renderer struct {
	PageDir  string // directory the page's relative paths resolve against
	BuildDir string // LaTeX build directory; image paths are emitted relative to it
	LoadText TextLoader

	warnings []string
}

// NewRenderer creates a renderer for one page.
func NewRenderer(pageDir, buildDir string, loader TextLoader) *Renderer {
	return &Renderer{PageDir: pageDir, BuildDir: buildDir, LoadText: loader}
}

// Warnings returns the warnings recorded so far, in order.
func (r *Renderer) Warnings() []string {
	return r.warnings
}

func (r *Renderer) warnf(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

// Render produces the LaTeX fragment for one block. Failures degrade to
// an empty fragment plus a warning; Render never fails the page.
func (r *Renderer) Render(b Block) string {
	switch b.Kind {
	case KindText:
		return r.renderText(b)
	case KindImage:
		return terminate(r.renderImage(b))
	case KindTable:
		return terminate(r.renderTable(b))
	case KindCode, KindListing:
		return terminate(r.renderCode(b))
	case KindEquation:
		return terminate(r.renderEquation(b))
	default:
		r.warnf("unknown content block type %q", b.RawKind)
		return ""
	}
}

// terminate separates an environment from the following block. Empty
// fragments stay empty so a skipped block leaves no trace in the output.
func terminate(fragment string) string {
	if fragment == "" {
		return ""
	}
	return fragment + "\n"
}

func (r *Renderer) renderText(b Block) string {
	switch {
	case b.Text != nil:
		return r.renderInlineText(*b.Text)
	case b.TextPath != "":
		return r.renderExternalText(b.TextPath)
	default:
		r.warnf("text block is missing both text and textPath")
		return ""
	}
}

// renderInlineText handles directly embedded text. Only a heading prefix
// on the very first character is treated structurally; everything else
// goes through the full formatting pipeline and ends with a blank line.
func (r *Renderer) renderInlineText(text string) string {
	if strings.HasPrefix(text, "#") {
		level := leadingHashes(text)
		content := strings.TrimSpace(text[level:])
		return headingCommand(level, FormatText(content)) + "\n\n"
	}
	return FormatText(text) + "\n\n"
}

// renderExternalText handles text loaded from a file. Unlike the inline
// path, heading prefixes are honored on every line and list detection
// runs over the formatted result; the two entry paths share the same
// formatting pipeline but differ in this pre- and post-processing.
//
// Converted heading commands are swapped for private-use-area
// placeholders before the formatting pass so the escaper cannot touch
// them, then restored afterwards.
func (r *Renderer) renderExternalText(path string) string {
	content, err := r.LoadText(path, r.PageDir)
	if err != nil {
		r.warnf("loading external text %s: %v", path, err)
		return ""
	}

	lines := strings.Split(content, "\n")
	var headings []string
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "#") {
			continue
		}
		level := leadingHashes(trimmed)
		title := strings.TrimSpace(trimmed[level:])
		lines[i] = headingPlaceholder(len(headings))
		headings = append(headings, headingCommand(level, FormatText(title)))
	}

	text := FormatText(strings.Join(lines, "\n"))
	for i, heading := range headings {
		text = strings.Replace(text, headingPlaceholder(i), heading, 1)
	}
	return ConvertLists(text)
}

// headingPlaceholder builds a marker that survives the formatting pass
// untouched: the private use area delimiters appear in no substitution
// table and the digits between them match no dialect pattern.
func headingPlaceholder(i int) string {
	return "\uE000" + strconv.Itoa(i) + "\uE001"
}

func (r *Renderer) renderImage(b Block) string {
	if b.ImagePath == "" {
		r.warnf("image block is missing imagePath")
		return ""
	}

	path := b.ImagePath
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.PageDir, path)
	}
	rel, err := filepath.Rel(r.BuildDir, path)
	if err != nil {
		r.warnf("cannot relativize image path %s: %v", b.ImagePath, err)
		rel = path
	}

	var sb strings.Builder
	sb.WriteString("\\begin{figure}[htbp]\n\\centering\n")
	fmt.Fprintf(&sb, "\\includegraphics[width=0.8\\textwidth]{%s}\n", filepath.ToSlash(rel))
	if b.Caption != "" {
		fmt.Fprintf(&sb, "\\caption{%s}\n", FormatText(b.Caption))
	}
	if b.Label != "" {
		fmt.Fprintf(&sb, "\\label{%s}\n", b.Label)
	}
	sb.WriteString("\\end{figure}\n")
	return sb.String()
}

// renderTable trusts the first row's width for the column count; rows of
// differing length are emitted as-is.
func (r *Renderer) renderTable(b Block) string {
	if len(b.TableData) == 0 {
		return ""
	}

	cols := make([]string, len(b.TableData[0]))
	for i := range cols {
		cols[i] = "c"
	}

	var sb strings.Builder
	sb.WriteString("\\begin{table}[htbp]\n\\centering\n")
	fmt.Fprintf(&sb, "\\begin{tabular}{%s}\n\\hline\n", strings.Join(cols, "|"))
	for _, row := range b.TableData {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = FormatText(cell)
		}
		sb.WriteString(strings.Join(cells, " & ") + " \\\\ \\hline\n")
	}
	sb.WriteString("\\end{tabular}\n")
	if b.Caption != "" {
		fmt.Fprintf(&sb, "\\caption{%s}\n", FormatText(b.Caption))
	}
	if b.Label != "" {
		fmt.Fprintf(&sb, "\\label{%s}\n", b.Label)
	}
	sb.WriteString("\\end{table}\n")
	return sb.String()
}

// renderCode emits a floating listing with the code verbatim; code is
// never escaped. The language tag is passed straight to minted, with a
// warning when the chroma lexer registry does not know it.
func (r *Renderer) renderCode(b Block) string {
	lang := b.Language
	if lang == "" {
		lang = "text"
	} else if lexers.Get(lang) == nil {
		r.warnf("unknown listing language %q", b.Language)
	}

	var sb strings.Builder
	sb.WriteString("\\begin{listing}[H]\n")
	fmt.Fprintf(&sb, "\\begin{minted}[breaklines, linenos]{%s}\n", lang)
	sb.WriteString(b.Code + "\n")
	sb.WriteString("\\end{minted}\n")
	if b.Caption != "" {
		fmt.Fprintf(&sb, "\\caption{%s}\n", FormatText(b.Caption))
	}
	if b.Label != "" {
		fmt.Fprintf(&sb, "\\label{%s}\n", b.Label)
	}
	sb.WriteString("\\end{listing}\n")
	return sb.String()
}

func (r *Renderer) renderEquation(b Block) string {
	if b.Equation == "" {
		r.warnf("equation block is missing equation")
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\\begin{equation}\n")
	if b.Label != "" {
		fmt.Fprintf(&sb, "\\label{%s}\n", b.Label)
	}
	sb.WriteString(b.Equation + "\n")
	sb.WriteString("\\end{equation}\n")
	return sb.String()
}
