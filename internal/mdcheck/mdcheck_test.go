package mdcheck_test

import (
	"reflect"
	"testing"

	"github.com/alnah/go-json2tex/internal/mdcheck"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "dialect constructs are fine",
			input: "# Heading\n\nSome **bold** and *italic* text\n\n- one\n- two",
			want:  nil,
		},
		{
			name:  "blockquote",
			input: "> quoted",
			want:  []string{"blockquote"},
		},
		{
			name:  "fenced code block",
			input: "```go\nfunc main() {}\n```",
			want:  []string{"fenced code block"},
		},
		{
			name:  "link",
			input: "see [docs](https://example.com)",
			want:  []string{"link"},
		},
		{
			name:  "inline image",
			input: "![alt](fig.png)",
			want:  []string{"inline image"},
		},
		{
			name:  "horizontal rule",
			input: "before\n\n---\n\nafter",
			want:  []string{"horizontal rule"},
		},
		{
			name:  "duplicates are reported once",
			input: "[a](x) and [b](y)",
			want:  []string{"link"},
		},
		{
			name:  "multiple constructs in appearance order",
			input: "> quote\n\n[a](x)",
			want:  []string{"blockquote", "link"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := mdcheck.Check(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Check(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
