package json2tex

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alnah/go-json2tex/internal/fileutil"
	"github.com/alnah/go-json2tex/internal/mdcheck"
	"github.com/alnah/go-json2tex/internal/tex"
)

// ValidatePage inspects a page's content for problems that would
// degrade during assembly: unknown block types, missing payloads,
// unresolvable referenced files, and Markdown constructs the dialect
// would pass through as literal text. Findings are warnings; a page
// that validates with warnings still assembles.
func ValidatePage(page *Page) []string {
	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	for i, block := range page.Content {
		kind := tex.ParseBlockKind(block.Type)
		switch kind {
		case tex.KindText:
			warnings = append(warnings, validateTextBlock(page, i, block)...)
		case tex.KindImage:
			if block.Data.ImagePath == "" {
				warn("block %d: image block is missing imagePath", i)
			} else if !fileutil.FileExists(resolveAgainst(page.Dir, block.Data.ImagePath)) {
				warn("block %d: image file %s not found", i, block.Data.ImagePath)
			}
		case tex.KindTable:
			warnings = append(warnings, validateTableBlock(i, block)...)
		case tex.KindCode, tex.KindListing:
			if block.Data.Code == "" {
				warn("block %d: code block is empty", i)
			}
		case tex.KindEquation:
			if block.Data.Equation == "" {
				warn("block %d: equation block is missing equation", i)
			}
		default:
			warn("block %d: unknown content block type %q", i, block.Type)
		}
	}
	return warnings
}

func validateTextBlock(page *Page, i int, block ContentBlock) []string {
	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	switch {
	case block.Data.Text != nil:
		for _, construct := range mdcheck.Check(*block.Data.Text) {
			warn("block %d: unsupported markdown %s will render as literal text", i, construct)
		}
	case block.Data.TextPath != "":
		path := block.Data.TextPath
		if !strings.EqualFold(filepath.Ext(path), ".txt") {
			warn("block %d: textPath %s should reference a .txt file", i, path)
		}
		resolved := resolveAgainst(page.Dir, path)
		if !fileutil.FileExists(resolved) {
			warn("block %d: text file %s not found", i, path)
			break
		}
		content, err := fileutil.ReadTextFile(path, page.Dir)
		if err != nil {
			warn("block %d: reading %s: %v", i, path, err)
			break
		}
		for _, construct := range mdcheck.Check(content) {
			warn("block %d: %s contains unsupported markdown %s", i, path, construct)
		}
	default:
		warn("block %d: text block is missing both text and textPath", i)
	}
	return warnings
}

func validateTableBlock(i int, block ContentBlock) []string {
	var warnings []string
	if len(block.Data.TableData) == 0 {
		warnings = append(warnings,
			fmt.Sprintf("block %d: table block has no rows and renders as nothing", i))
		return warnings
	}

	width := len(block.Data.TableData[0])
	for r, row := range block.Data.TableData {
		if len(row) != width {
			warnings = append(warnings,
				fmt.Sprintf("block %d: table row %d has %d cells, expected %d", i, r, len(row), width))
		}
	}
	return warnings
}

func resolveAgainst(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
