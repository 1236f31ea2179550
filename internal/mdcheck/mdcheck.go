// Package mdcheck inspects source text for Markdown constructs that the
// conversion dialect does not handle. The dialect covers headings,
// bold, italic, and dash lists; anything else a writer might expect
// from full Markdown would pass through as literal text, so callers
// surface these findings as warnings.
package mdcheck

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New()

// constructName maps AST kinds outside the dialect to a human-readable
// name. Kinds absent from the map are either supported or harmless.
var constructName = map[ast.NodeKind]string{
	ast.KindBlockquote:      "blockquote",
	ast.KindFencedCodeBlock: "fenced code block",
	ast.KindCodeBlock:       "indented code block",
	ast.KindLink:            "link",
	ast.KindImage:           "inline image",
	ast.KindThematicBreak:   "horizontal rule",
	ast.KindHTMLBlock:       "html block",
	ast.KindRawHTML:         "raw html",
}

// Check parses src as Markdown and returns the names of unsupported
// constructs found, deduplicated, in first-appearance order. A nil
// result means the text stays inside the dialect.
func Check(src string) []string {
	root := md.Parser().Parse(text.NewReader([]byte(src)))

	var found []string
	seen := make(map[string]bool)
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if name, ok := constructName[n.Kind()]; ok && !seen[name] {
			seen[name] = true
			found = append(found, name)
		}
		return ast.WalkContinue, nil
	})
	return found
}
