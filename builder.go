package json2tex

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"time"

	"go.uber.org/multierr"

	"github.com/alnah/go-json2tex/internal/assets"
	"github.com/alnah/go-json2tex/internal/config"
	"github.com/alnah/go-json2tex/internal/dateutil"
	"github.com/alnah/go-json2tex/internal/fileutil"
	"github.com/alnah/go-json2tex/internal/hints"
	"github.com/alnah/go-json2tex/internal/tex"
	"github.com/alnah/go-json2tex/internal/texenc"
)

// fragmentNamePattern matches original page fragments, excluding the
// _fixed copies generated during main document assembly.
var fragmentNamePattern = regexp.MustCompile(`^page_(\d+)\.tex$`)

// Builder orchestrates the page-to-PDF pipeline for one workspace.
type Builder struct {
	cfg    *config.Config
	runner CommandRunner
	now    func() time.Time
}

// Option customizes a Builder.
type Option func(*Builder)

// WithRunner replaces the toolchain runner, mainly for tests.
func WithRunner(r CommandRunner) Option {
	return func(b *Builder) { b.runner = r }
}

// WithClock replaces the time source used for artifact names.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

// NewBuilder creates a Builder for the given configuration.
func NewBuilder(cfg *config.Config, opts ...Option) *Builder {
	b := &Builder{
		cfg:    cfg,
		runner: &ExecRunner{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// DiscoverPages loads every page under the configured pages directory.
func (b *Builder) DiscoverPages() ([]*Page, []string, error) {
	return DiscoverPages(b.cfg.Dirs.Pages)
}

// PageResult reports one assembled page fragment.
type PageResult struct {
	Number       int
	FragmentPath string
	Warnings     []string
}

// CompileResult reports one toolchain run.
type CompileResult struct {
	PDFPath  string
	Errors   []string
	Warnings []string
}

// EnsureLayout creates the build directory tree.
func (b *Builder) EnsureLayout() error {
	for _, dir := range []string{b.cfg.Dirs.TexDir(), b.cfg.Dirs.PDFDir(), b.cfg.Dirs.LogDir()} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return nil
}

// Clean removes the build directory and everything under it.
func (b *Builder) Clean() error {
	if err := os.RemoveAll(b.cfg.Dirs.Build); err != nil {
		return fmt.Errorf("removing %s: %w", b.cfg.Dirs.Build, err)
	}
	return nil
}

// AssemblePage renders one page into its LaTeX fragment and writes it
// to the build tree. Content problems degrade to warnings in the
// result; only I/O failures return an error.
func (b *Builder) AssemblePage(page *Page) (*PageResult, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	if err := b.EnsureLayout(); err != nil {
		return nil, err
	}

	renderer := tex.NewRenderer(page.Dir, b.cfg.Dirs.TexDir(), fileutil.ReadTextFile)
	fragment := renderer.ComposePage(toTexPage(page))

	path := b.fragmentPath(page.Number)
	if err := os.WriteFile(path, []byte(fragment), 0o600); err != nil {
		return nil, fmt.Errorf("writing fragment for page %d: %w", page.Number, err)
	}

	return &PageResult{
		Number:       page.Number,
		FragmentPath: path,
		Warnings:     renderer.Warnings(),
	}, nil
}

// AssembleAll renders every page, continuing past failures so one bad
// page does not hide problems in the others. The returned error
// aggregates all per-page failures.
func (b *Builder) AssembleAll(pages []*Page) ([]PageResult, error) {
	var results []PageResult
	var errs error
	for _, page := range pages {
		result, err := b.AssemblePage(page)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("page %d: %w", page.Number, err))
			continue
		}
		results = append(results, *result)
	}
	return results, errs
}

// WriteBibliography aggregates references across pages into the BibTeX
// file the main document loads. Returns false when no page carries
// references, in which case no file is written.
func (b *Builder) WriteBibliography(pages []*Page) (bool, error) {
	bib := FormatBibliography(pages)
	if bib == "" {
		return false, nil
	}
	if err := b.EnsureLayout(); err != nil {
		return false, err
	}

	path := filepath.Join(b.cfg.Dirs.TexDir(), "references.bib")
	if err := os.WriteFile(path, []byte(bib), 0o600); err != nil {
		return false, fmt.Errorf("writing bibliography: %w", err)
	}
	return true, nil
}

// WriteMainDocument generates main.tex around the assembled fragments.
// Each fragment is first rewritten as a pure-ASCII _fixed copy so the
// compiler never chokes on a stray multibyte sequence; the main
// document includes the fixed copies. Returns the main.tex path.
func (b *Builder) WriteMainDocument() (string, error) {
	texDir := b.cfg.Dirs.TexDir()
	numbers, err := b.fragmentNumbers()
	if err != nil {
		return "", err
	}

	var includes []string
	for _, n := range numbers {
		data, err := os.ReadFile(b.fragmentPath(n)) // #nosec G304 -- path derived from build layout
		if err != nil {
			return "", fmt.Errorf("reading fragment for page %d: %w", n, err)
		}

		name := fmt.Sprintf("page_%d_fixed", n)
		fixed := texenc.Transliterate(string(data))
		if err := os.WriteFile(filepath.Join(texDir, name+".tex"), []byte(fixed), 0o600); err != nil {
			return "", fmt.Errorf("writing fixed fragment for page %d: %w", n, err)
		}
		includes = append(includes, name)
	}

	doc, err := assets.RenderMain(assets.MainDocument{
		Title:           b.cfg.Document.Title,
		Author:          b.cfg.Document.Author,
		Date:            dateutil.ResolveDate(b.cfg.Document.Date, b.now()),
		Language:        b.cfg.Document.Language,
		ExtraPackages:   b.cfg.Document.Packages,
		HasBibliography: fileutil.FileExists(filepath.Join(texDir, "references.bib")),
		Fragments:       includes,
	})
	if err != nil {
		return "", err
	}

	path := filepath.Join(texDir, "main.tex")
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		return "", fmt.Errorf("writing main document: %w", err)
	}
	return path, nil
}

// Compile runs the configured number of pdflatex passes over main.tex,
// with biber after the first pass when a bibliography exists, then
// copies the PDF into the output directory under a timestamped name
// and as latest.pdf. Compiler diagnostics land in the result and in
// the error log file; a nonzero pdflatex exit alone is not a failure.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (b *Builder) Compile(ctx context.Context) (result *CompileResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	texDir := b.cfg.Dirs.TexDir()
	if !fileutil.FileExists(filepath.Join(texDir, "main.tex")) {
		return nil, ErrMainNotFound
	}

	report, err := b.runPasses(ctx, "main.tex", b.cfg.Toolchain.Passes,
		fileutil.FileExists(filepath.Join(texDir, "references.bib")))
	if err != nil {
		return nil, err
	}
	b.writeErrorLog(report)

	pdfSource := filepath.Join(texDir, "main.pdf")
	if !report.OutputWritten || !fileutil.FileExists(pdfSource) {
		return &CompileResult{Errors: report.Errors, Warnings: report.Warnings},
			fmt.Errorf("%w%s", ErrPDFNotProduced, hints.ForShellEscape())
	}

	pdfPath := filepath.Join(b.cfg.Dirs.PDFDir(), "thesis_"+dateutil.Stamp(b.now())+".pdf")
	if err := copyFile(pdfSource, pdfPath); err != nil {
		return nil, err
	}
	if err := copyFile(pdfSource, filepath.Join(b.cfg.Dirs.PDFDir(), "latest.pdf")); err != nil {
		return nil, err
	}

	return &CompileResult{
		PDFPath:  pdfPath,
		Errors:   report.Errors,
		Warnings: report.Warnings,
	}, nil
}

// CompilePage compiles a single page fragment inside a throwaway
// wrapper document, for fast iteration on one page.
func (b *Builder) CompilePage(ctx context.Context, number int) (*CompileResult, error) {
	if !fileutil.FileExists(b.fragmentPath(number)) {
		return nil, fmt.Errorf("%w: page %d", ErrFragmentNotFound, number)
	}

	doc, err := assets.RenderSinglePage(assets.SinglePage{
		Language:      b.cfg.Document.Language,
		ExtraPackages: b.cfg.Document.Packages,
		Fragment:      fmt.Sprintf("page_%d", number),
	})
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("temp_page_%d.tex", number)
	if err := os.WriteFile(filepath.Join(b.cfg.Dirs.TexDir(), name), []byte(doc), 0o600); err != nil {
		return nil, fmt.Errorf("writing wrapper document for page %d: %w", number, err)
	}

	report, err := b.runPasses(ctx, name, 1, false)
	if err != nil {
		return nil, err
	}
	b.writeErrorLog(report)

	return &CompileResult{Errors: report.Errors, Warnings: report.Warnings}, nil
}

// runPasses drives the compiler over one document, interleaving biber
// after the first pass when requested.
func (b *Builder) runPasses(ctx context.Context, document string, passes int, withBiber bool) (compileReport, error) {
	args := []string{"-interaction=nonstopmode"}
	if b.cfg.Toolchain.ShellEscape {
		args = append([]string{"-shell-escape"}, args...)
	}
	args = append(args, document)

	texDir := b.cfg.Dirs.TexDir()
	var report compileReport
	for pass := 1; pass <= passes; pass++ {
		stdout, _, err := b.runWithTimeout(ctx, texDir, b.cfg.Toolchain.Latex, args...)
		if runErr := b.classifyRunError(err, b.cfg.Toolchain.Latex); runErr != nil {
			return report, runErr
		}
		report.merge(scanCompilerOutput(stdout))

		if pass == 1 && withBiber {
			base := document[:len(document)-len(filepath.Ext(document))]
			_, _, err := b.runWithTimeout(ctx, texDir, b.cfg.Toolchain.Biber, base)
			if runErr := b.classifyRunError(err, b.cfg.Toolchain.Biber); runErr != nil {
				return report, runErr
			}
		}
	}
	return report, nil
}

// runWithTimeout bounds one toolchain invocation by the configured
// timeout without shortening the caller's overall deadline.
func (b *Builder) runWithTimeout(ctx context.Context, dir, name string, args ...string) (string, string, error) {
	runCtx, cancel := context.WithTimeout(ctx, b.cfg.CompileTimeout())
	defer cancel()
	stdout, stderr, err := b.runner.Run(runCtx, dir, name, args...)
	if err != nil && runCtx.Err() != nil {
		// Once the process has started, exec reports the killed process
		// ("signal: killed"), not the context error.
		err = fmt.Errorf("%w: %v", runCtx.Err(), err)
	}
	return stdout, stderr, err
}

// classifyRunError separates real invocation failures from the nonzero
// exits pdflatex uses for recoverable document problems. Exit errors
// are swallowed here and judged later from the scanned output.
func (b *Builder) classifyRunError(err error, binary string) error {
	if err == nil {
		return nil
	}
	// A timed-out run also carries an exit error for the killed process,
	// so the deadline check must come first.
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s timed out%s: %w", binary, hints.ForTimeout(), err)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil
	}
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%s not found%s: %w", binary, hints.ForToolchainNotFound(binary), err)
	}
	return fmt.Errorf("running %s: %w", binary, err)
}

// writeErrorLog persists compiler diagnostics next to the build.
func (b *Builder) writeErrorLog(report compileReport) {
	content := report.lines()
	if content == "" {
		return
	}
	path := filepath.Join(b.cfg.Dirs.LogDir(), "latex_errors.log")
	_ = os.WriteFile(path, []byte(content), 0o600)
}

// fragmentNumbers lists assembled page numbers in ascending order.
func (b *Builder) fragmentNumbers() ([]int, error) {
	entries, err := os.ReadDir(b.cfg.Dirs.TexDir())
	if err != nil {
		return nil, fmt.Errorf("reading fragment directory: %w", err)
	}

	var numbers []int
	for _, entry := range entries {
		m := fragmentNamePattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		numbers = append(numbers, n)
	}
	if len(numbers) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoFragments, b.cfg.Dirs.TexDir())
	}
	sort.Ints(numbers)
	return numbers, nil
}

func (b *Builder) fragmentPath(number int) string {
	return filepath.Join(b.cfg.Dirs.TexDir(), fmt.Sprintf("page_%d.tex", number))
}

// toTexPage converts the public Page type to the renderer's model.
func toTexPage(p *Page) tex.Page {
	blocks := make([]tex.Block, len(p.Content))
	for i, c := range p.Content {
		blocks[i] = tex.Block{
			Kind:      tex.ParseBlockKind(c.Type),
			RawKind:   c.Type,
			Text:      c.Data.Text,
			TextPath:  c.Data.TextPath,
			ImagePath: c.Data.ImagePath,
			TableData: c.Data.TableData,
			Code:      c.Data.Code,
			Language:  c.Data.Language,
			Equation:  c.Data.Equation,
			Caption:   c.Data.Caption,
			Label:     c.Data.Label,
		}
	}

	refs := make([]tex.Reference, len(p.References))
	for i, r := range p.References {
		refs[i] = tex.Reference(r)
	}

	return tex.Page{
		Number:       p.Number,
		Title:        p.Title,
		SectionLevel: p.SectionLevel,
		Blocks:       blocks,
		References:   refs,
	}
}

// copyFile copies src to dst, creating dst's directory if needed.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src) // #nosec G304 -- paths derived from build layout
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(dst), err)
	}
	if err := os.WriteFile(dst, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}
