// Package assets provides the embedded LaTeX document templates. The
// templates use << >> delimiters because LaTeX already owns braces.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*
var templates embed.FS

// Sentinel errors for asset operations.
var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
	ErrRenderFailed     = errors.New("template rendering failed")
)

// MainDocument is the data for the main thesis document template.
type MainDocument struct {
	Title           string
	Author          string
	Date            string // Empty = \today
	Language        string // babel language name
	ExtraPackages   []string
	HasBibliography bool
	Fragments       []string // \include arguments, without extension
}

// SinglePage is the data for the standalone single-page document used
// by per-page validation builds.
type SinglePage struct {
	Language      string
	ExtraPackages []string
	Fragment      string // \include argument, without extension
}

// RenderMain renders the main document wrapping all page fragments.
func RenderMain(d MainDocument) (string, error) {
	if d.Language == "" {
		d.Language = "polish"
	}
	if d.Date == "" {
		d.Date = `\today`
	}
	return render("main", d)
}

// RenderSinglePage renders a minimal document around one fragment.
func RenderSinglePage(d SinglePage) (string, error) {
	if d.Language == "" {
		d.Language = "polish"
	}
	return render("page", d)
}

// LoadTemplate returns the raw template source by name, without the
// .tex.tmpl extension.
func LoadTemplate(name string) (string, error) {
	if err := validateAssetName(name); err != nil {
		return "", err
	}
	content, err := templates.ReadFile("templates/" + name + ".tex.tmpl")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return string(content), nil
}

func render(name string, data any) (string, error) {
	src, err := LoadTemplate(name)
	if err != nil {
		return "", err
	}

	tmpl, err := template.New(name).Delims("<<", ">>").Parse(src)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return sb.String(), nil
}

// validateAssetName rejects names with path separators or traversal.
func validateAssetName(name string) error {
	if name == "" || strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
