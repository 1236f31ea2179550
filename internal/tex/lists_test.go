package tex

import (
	"strings"
	"testing"
)

func TestConvertLists(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:  "list closed by following line",
			input: "- a\n- b\nnot a list",
			expected: strings.Join([]string{
				`\begin{itemize}`,
				`\item a`,
				`\item b`,
				`\end{itemize}`,
				"not a list",
			}, "\n"),
		},
		{
			name:  "list closed by end of input",
			input: "intro\n- only",
			expected: strings.Join([]string{
				"intro",
				`\begin{itemize}`,
				`\item only`,
				`\end{itemize}`,
			}, "\n"),
		},
		{
			name:  "indented markers are detected on trimmed lines",
			input: "  - a\n\t- b",
			expected: strings.Join([]string{
				`\begin{itemize}`,
				`\item a`,
				`\item b`,
				`\end{itemize}`,
			}, "\n"),
		},
		{
			name:  "two separate regions",
			input: "- a\nmiddle\n- b",
			expected: strings.Join([]string{
				`\begin{itemize}`,
				`\item a`,
				`\end{itemize}`,
				"middle",
				`\begin{itemize}`,
				`\item b`,
				`\end{itemize}`,
			}, "\n"),
		},
		{
			name:     "dash without trailing space is not a marker",
			input:    "-notalist",
			expected: "-notalist",
		},
		{
			name:     "bare dash line is not a marker",
			input:    "-",
			expected: "-",
		},
		{
			name:     "no lists",
			input:    "plain\ntext",
			expected: "plain\ntext",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ConvertLists(tt.input); got != tt.expected {
				t.Errorf("ConvertLists(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
