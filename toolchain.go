package json2tex

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandRunner abstracts toolchain execution to enable testing without
// a TeX installation.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// Compile-time interface check.
var _ CommandRunner = (*ExecRunner)(nil)

// compileReport is the classified output of one compiler invocation.
// pdflatex exits nonzero for recoverable problems in nonstop mode, so
// callers judge success by the report, not the exit code.
type compileReport struct {
	Errors        []string
	Warnings      []string
	OutputWritten bool
}

// scanCompilerOutput classifies pdflatex stdout line by line, mirroring
// how a human reads the log: error lines, warning lines, and the final
// "Output written on" marker.
func scanCompilerOutput(stdout string) compileReport {
	var report compileReport
	for _, line := range strings.Split(stdout, "\n") {
		switch {
		case strings.Contains(line, "Error:") || strings.Contains(line, "Fatal error") || strings.HasPrefix(line, "! "):
			report.Errors = append(report.Errors, line)
		case strings.Contains(line, "Warning:"):
			report.Warnings = append(report.Warnings, line)
		case strings.Contains(line, "Output written on"):
			report.OutputWritten = true
		}
	}
	return report
}

// merge folds another invocation's report into this one. OutputWritten
// reflects the latest pass only, since that pass produced the PDF that
// gets shipped.
func (r *compileReport) merge(other compileReport) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.OutputWritten = other.OutputWritten
}

// lines renders the report for the error log file.
func (r *compileReport) lines() string {
	var sb strings.Builder
	for _, line := range r.Errors {
		fmt.Fprintf(&sb, "%s\n", line)
	}
	for _, line := range r.Warnings {
		fmt.Fprintf(&sb, "%s\n", line)
	}
	return sb.String()
}
