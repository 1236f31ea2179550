// Package json2tex converts structured page content descriptions into
// LaTeX source and drives the TeX toolchain that turns them into a PDF.
//
// Each page lives in its own numbered directory and is described by a
// JSON document listing content blocks: text (inline or in a referenced
// file), images, tables, code listings, and equations. The library
// renders one LaTeX fragment per page, aggregates bibliography entries
// into a BibTeX file, wraps the fragments in a generated main document,
// and compiles everything with pdflatex and biber.
//
// Content problems never abort a build. Malformed blocks degrade to
// empty fragments and the renderer collects warnings for the caller to
// report; only I/O and toolchain failures surface as errors.
//
// Basic usage:
//
//	cfg := config.DefaultConfig()
//	b := json2tex.NewBuilder(cfg)
//	pages, warns, err := json2tex.DiscoverPages(cfg.Dirs.Pages)
//	if err != nil {
//		log.Fatal(err)
//	}
//	results, err := b.AssembleAll(pages)
//	// ... write bibliography, main document, compile.
package json2tex
