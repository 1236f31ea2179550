package json2tex

import (
	"reflect"
	"testing"
)

func TestScanCompilerOutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		stdout   string
		expected compileReport
	}{
		{
			name:     "empty output",
			stdout:   "",
			expected: compileReport{},
		},
		{
			name:   "clean run",
			stdout: "This is pdfTeX\nOutput written on main.pdf (42 pages).\n",
			expected: compileReport{
				OutputWritten: true,
			},
		},
		{
			name:   "error lines",
			stdout: "! Undefined control sequence.\nLaTeX Error: File `missing.sty' not found.\n",
			expected: compileReport{
				Errors: []string{
					"! Undefined control sequence.",
					"LaTeX Error: File `missing.sty' not found.",
				},
			},
		},
		{
			name:   "fatal error",
			stdout: "Fatal error occurred, no output PDF file produced!\n",
			expected: compileReport{
				Errors: []string{"Fatal error occurred, no output PDF file produced!"},
			},
		},
		{
			name:   "warnings collected separately",
			stdout: "LaTeX Warning: Reference `fig:one' undefined.\nOutput written on main.pdf\n",
			expected: compileReport{
				Warnings:      []string{"LaTeX Warning: Reference `fig:one' undefined."},
				OutputWritten: true,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := scanCompilerOutput(tt.stdout)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("scanCompilerOutput() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestCompileReportMerge(t *testing.T) {
	t.Parallel()

	first := compileReport{
		Errors:        []string{"e1"},
		OutputWritten: true,
	}
	first.merge(compileReport{
		Warnings: []string{"w1"},
	})

	if len(first.Errors) != 1 || len(first.Warnings) != 1 {
		t.Errorf("merged report = %+v", first)
	}
	if first.OutputWritten {
		t.Error("OutputWritten should reflect the latest pass only")
	}
}
