package hints_test

import (
	"strings"
	"testing"

	"github.com/alnah/go-json2tex/internal/hints"
)

func TestForToolchainNotFound(t *testing.T) {
	t.Parallel()

	got := hints.ForToolchainNotFound("pdflatex")
	if !strings.HasPrefix(got, "\n  hint: ") {
		t.Errorf("hint %q missing standard prefix", got)
	}
	if !strings.Contains(got, "pdflatex") {
		t.Errorf("hint %q does not name the binary", got)
	}

	if got := hints.ForToolchainNotFound("biber"); !strings.Contains(got, "biber") {
		t.Errorf("hint %q does not name biber", got)
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	paths := []string{
		"thesis.yaml",
		"/home/user/.config/go-json2tex/thesis.yaml",
	}
	got := hints.ForConfigNotFound(paths)
	if !strings.Contains(got, "--config") {
		t.Errorf("hint %q missing --config suggestion", got)
	}
	if !strings.Contains(got, "/home/user/.config/go-json2tex/thesis.yaml") {
		t.Errorf("hint %q missing user config path", got)
	}
}

func TestForConfigNotFoundWithoutUserPath(t *testing.T) {
	t.Parallel()

	got := hints.ForConfigNotFound([]string{"thesis.yaml"})
	if strings.Contains(got, "or create") {
		t.Errorf("hint %q suggests a path that was never searched", got)
	}
}

func TestForShellEscape(t *testing.T) {
	t.Parallel()

	if got := hints.ForShellEscape(); !strings.Contains(got, "shell-escape") {
		t.Errorf("hint %q missing shell-escape", got)
	}
}

func TestForTimeout(t *testing.T) {
	t.Parallel()

	if got := hints.ForTimeout(); !strings.Contains(got, "timeout") {
		t.Errorf("hint %q missing timeout", got)
	}
}

func TestForPagesDir(t *testing.T) {
	t.Parallel()

	if got := hints.ForPagesDir("pages"); !strings.Contains(got, "pages") {
		t.Errorf("hint %q missing directory name", got)
	}
}
