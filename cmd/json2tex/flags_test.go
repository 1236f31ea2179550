package main

import (
	"testing"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	flags, args, err := parseFlags([]string{
		"json2tex", "--config", "thesis.yaml", "-p", "3", "-w", "4", "-v", "assemble",
	})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if flags.config != "thesis.yaml" {
		t.Errorf("config = %q", flags.config)
	}
	if flags.page != 3 {
		t.Errorf("page = %d, want 3", flags.page)
	}
	if flags.workers != 4 {
		t.Errorf("workers = %d, want 4", flags.workers)
	}
	if !flags.verbose {
		t.Error("verbose = false, want true")
	}
	if len(args) != 1 || args[0] != "assemble" {
		t.Errorf("args = %v, want [assemble]", args)
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	t.Parallel()

	flags, args, err := parseFlags([]string{"json2tex", "build"})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if flags.config != "" || flags.page != 0 || flags.workers != 0 {
		t.Errorf("defaults = %+v", flags)
	}
	if flags.quiet || flags.verbose {
		t.Errorf("defaults = %+v", flags)
	}
	if len(args) != 1 || args[0] != "build" {
		t.Errorf("args = %v, want [build]", args)
	}
}

func TestParseFlagsQuietVerboseConflict(t *testing.T) {
	t.Parallel()

	_, _, err := parseFlags([]string{"json2tex", "-q", "-v", "build"})
	if err == nil {
		t.Error("parseFlags() error = nil, want mutual exclusion error")
	}
}

func TestParseFlagsUnknownFlag(t *testing.T) {
	t.Parallel()

	_, _, err := parseFlags([]string{"json2tex", "--bogus"})
	if err == nil {
		t.Error("parseFlags() error = nil, want unknown flag error")
	}
}
