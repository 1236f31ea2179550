package dateutil_test

import (
	"testing"
	"time"

	"github.com/alnah/go-json2tex/internal/dateutil"
)

var fixed = time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)

func TestStamp(t *testing.T) {
	t.Parallel()

	if got := dateutil.Stamp(fixed); got != "20250601_143000" {
		t.Errorf("Stamp() = %q, want %q", got, "20250601_143000")
	}
}

func TestResolveDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"auto lowercase", "auto", "2025-06-01"},
		{"auto mixed case", "Auto", "2025-06-01"},
		{"explicit date passthrough", "2024-12-31", "2024-12-31"},
		{"latex today passthrough", `\today`, `\today`},
		{"empty passthrough", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := dateutil.ResolveDate(tt.input, fixed); got != tt.expected {
				t.Errorf("ResolveDate(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
