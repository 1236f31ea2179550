package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// cliFlags holds flags shared across subcommands.
type cliFlags struct {
	config  string
	page    int
	workers int
	quiet   bool
	verbose bool
	version bool
}

const usageText = `Usage: json2tex [flags] <command>

Commands:
  build      validate, assemble, and compile everything
  validate   check page documents and referenced files
  assemble   generate LaTeX fragments, bibliography, and main.tex
  compile    run the LaTeX toolchain over the assembled build tree
  clean      remove the build directory

Flags:
`

// parseFlags parses command-line flags and returns remaining args.
func parseFlags(argv []string) (*cliFlags, []string, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet("json2tex", flag.ContinueOnError)
	fs.StringVarP(&flags.config, "config", "c", "", "config file path or name (default: built-in defaults)")
	fs.IntVarP(&flags.page, "page", "p", 0, "operate on a single page number")
	fs.IntVarP(&flags.workers, "workers", "w", 0, "parallel page workers (default: GOMAXPROCS)")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "only log warnings and errors")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageText)
		fs.PrintDefaults()
	}

	if err := fs.Parse(argv[1:]); err != nil {
		return nil, nil, err
	}
	if flags.quiet && flags.verbose {
		return nil, nil, fmt.Errorf("--quiet and --verbose are mutually exclusive")
	}
	return flags, fs.Args(), nil
}
