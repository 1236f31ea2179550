// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForToolchainNotFound returns hints for a missing LaTeX binary.
func ForToolchainNotFound(binary string) string {
	switch binary {
	case "biber":
		return format("install biber (texlive-bibtex-extra on Debian, biber on TeX Live)")
	default:
		return format("install a TeX distribution providing " + binary + " (e.g. TeX Live)")
	}
}

// ForShellEscape returns a hint for minted failures caused by a
// compiler run without -shell-escape.
func ForShellEscape() string {
	return format("code listings need -shell-escape; set toolchain.shellEscape: true")
}

// ForTimeout returns a hint about increasing timeout for slow compilations.
func ForTimeout() string {
	return format("for large documents, raise toolchain.timeout in the config")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-json2tex/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-json2tex") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForPagesDir returns hints for a missing or empty pages directory.
func ForPagesDir(dir string) string {
	return format("expected numbered page directories under " + dir + ", each with a content JSON file")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
