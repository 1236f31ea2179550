package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	json2tex "github.com/alnah/go-json2tex"
	"github.com/alnah/go-json2tex/internal/config"
	"github.com/alnah/go-json2tex/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoCommand      = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")
	ErrPageNotFound   = errors.New("page not found")
)

// app wires the flags, config, builder, and logger for one invocation.
type app struct {
	flags   *cliFlags
	cfg     *config.Config
	builder *json2tex.Builder
	log     *zap.SugaredLogger
}

// run dispatches to the requested subcommand.
func run(flags *cliFlags, args []string) error {
	if flags.version {
		fmt.Println("json2tex " + Version)
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("%w, expected one of: build, validate, assemble, compile, clean", ErrNoCommand)
	}

	cfg, err := loadConfig(flags.config)
	if err != nil {
		return err
	}

	log, cleanup, err := newLogger(cfg.Logging, flags.verbose, flags.quiet)
	if err != nil {
		return err
	}
	defer cleanup()

	a := &app{
		flags:   flags,
		cfg:     cfg,
		builder: json2tex.NewBuilder(cfg),
		log:     log,
	}

	ctx := context.Background()
	switch cmd := args[0]; cmd {
	case "build":
		return a.build(ctx)
	case "validate":
		return a.validate()
	case "assemble":
		return a.assemble()
	case "compile":
		return a.compile(ctx)
	case "clean":
		return a.clean()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

// loadConfig falls back to built-in defaults when no config is named.
func loadConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(nameOrPath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(nil))
		}
		return nil, err
	}
	return cfg, nil
}

// build runs the whole pipeline: validate, assemble, compile.
func (a *app) build(ctx context.Context) error {
	if err := a.validate(); err != nil {
		return err
	}
	if err := a.assemble(); err != nil {
		return err
	}
	return a.compile(ctx)
}

// validate loads the pages and reports content findings. Findings are
// logged as warnings; the command fails only when asked to validate a
// specific page that does not exist or when discovery itself fails.
func (a *app) validate() error {
	pages, err := a.loadPages()
	if err != nil {
		return err
	}

	total := 0
	for _, page := range pages {
		warnings := json2tex.ValidatePage(page)
		for _, w := range warnings {
			a.log.Warnf("page %d: %s", page.Number, w)
		}
		total += len(warnings)
	}

	if total > 0 {
		a.log.Warnf("validation finished with %d finding(s) across %d page(s)", total, len(pages))
		return nil
	}
	a.log.Infof("validated %d page(s), no findings", len(pages))
	return nil
}

// assemble renders fragments in parallel, then writes the bibliography
// and the main document.
func (a *app) assemble() error {
	pages, err := a.loadPages()
	if err != nil {
		return err
	}

	results, err := a.assemblePages(pages)
	if err != nil {
		return err
	}
	for _, result := range results {
		for _, w := range result.Warnings {
			a.log.Warnf("page %d: %s", result.Number, w)
		}
		a.log.Debugf("assembled %s", result.FragmentPath)
	}
	a.log.Infof("assembled %d page fragment(s)", len(results))

	wrote, err := a.builder.WriteBibliography(pages)
	if err != nil {
		return err
	}
	if wrote {
		a.log.Infof("collected bibliography into references.bib")
	} else {
		a.log.Debugf("no references found, skipping bibliography")
	}

	mainPath, err := a.builder.WriteMainDocument()
	if err != nil {
		return err
	}
	a.log.Infof("wrote main document %s", mainPath)
	return nil
}

// assemblePages fans pages out to a bounded worker pool. Results come
// back in page order regardless of completion order.
func (a *app) assemblePages(pages []*json2tex.Page) ([]json2tex.PageResult, error) {
	workers := a.flags.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(pages) {
		workers = len(pages)
	}

	jobs := make(chan *json2tex.Page)
	var mu sync.Mutex
	var results []json2tex.PageResult
	var errs error

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for page := range jobs {
				result, err := a.builder.AssemblePage(page)
				mu.Lock()
				if err != nil {
					errs = multierr.Append(errs, fmt.Errorf("page %d: %w", page.Number, err))
				} else {
					results = append(results, *result)
				}
				mu.Unlock()
			}
		}()
	}
	for _, page := range pages {
		jobs <- page
	}
	close(jobs)
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].Number < results[j].Number })
	return results, errs
}

// compile runs the toolchain over the assembled build tree, or over a
// single page when --page is given.
func (a *app) compile(ctx context.Context) error {
	if a.flags.page > 0 {
		result, err := a.builder.CompilePage(ctx, a.flags.page)
		if err != nil {
			return err
		}
		a.reportCompile(result)
		a.log.Infof("compiled page %d", a.flags.page)
		return nil
	}

	result, err := a.builder.Compile(ctx)
	if result != nil {
		a.reportCompile(result)
	}
	if err != nil {
		return err
	}
	a.log.Infof("PDF written to %s", result.PDFPath)
	return nil
}

func (a *app) reportCompile(result *json2tex.CompileResult) {
	for _, line := range result.Warnings {
		a.log.Warnf("latex: %s", line)
	}
	for _, line := range result.Errors {
		a.log.Errorf("latex: %s", line)
	}
}

func (a *app) clean() error {
	if err := a.builder.Clean(); err != nil {
		return err
	}
	a.log.Infof("removed %s", a.cfg.Dirs.Build)
	return nil
}

// loadPages discovers all pages, or narrows to the one named by --page.
func (a *app) loadPages() ([]*json2tex.Page, error) {
	pages, warnings, err := a.builder.DiscoverPages()
	if err != nil {
		if errors.Is(err, json2tex.ErrNoPages) {
			return nil, fmt.Errorf("%w%s", err, hints.ForPagesDir(a.cfg.Dirs.Pages))
		}
		return nil, err
	}
	for _, w := range warnings {
		a.log.Warn(w)
	}

	if a.flags.page > 0 {
		for _, page := range pages {
			if page.Number == a.flags.page {
				return []*json2tex.Page{page}, nil
			}
		}
		return nil, fmt.Errorf("%w: %d", ErrPageNotFound, a.flags.page)
	}
	return pages, nil
}
