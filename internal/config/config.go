// Package config loads and validates the document build configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-json2tex/internal/fileutil"
	"github.com/alnah/go-json2tex/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxTitleLength    = 200 // Document title
	MaxAuthorLength   = 100 // Author name
	MaxDateLength     = 30  // "2025-12-31" or "\today"
	MaxLanguageLength = 20  // babel language name
	MaxPackageLength  = 50  // one LaTeX package name
)

// Config holds all configuration for thesis assembly and compilation.
type Config struct {
	Document  DocumentConfig  `yaml:"document"`
	Dirs      DirsConfig      `yaml:"dirs"`
	Toolchain ToolchainConfig `yaml:"toolchain"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// DocumentConfig describes the generated main document.
type DocumentConfig struct {
	Title    string   `yaml:"title"`
	Author   string   `yaml:"author"`
	Date     string   `yaml:"date"`     // Empty = \today
	Language string   `yaml:"language"` // babel language (default: "polish")
	Packages []string `yaml:"packages"` // Extra preamble packages
}

// DirsConfig describes the workspace layout.
type DirsConfig struct {
	Pages string `yaml:"pages"` // Page source directories (default: "pages")
	Build string `yaml:"build"` // Build output root (default: "build")
}

// TexDir is where LaTeX fragments and the main document are written.
func (d DirsConfig) TexDir() string { return filepath.Join(d.Build, "tex") }

// PDFDir is where compiled PDFs are copied.
func (d DirsConfig) PDFDir() string { return filepath.Join(d.Build, "pdf") }

// LogDir is where compiler output logs are written.
func (d DirsConfig) LogDir() string { return filepath.Join(d.Build, "logs") }

// ToolchainConfig describes the external LaTeX toolchain.
type ToolchainConfig struct {
	Latex       string `yaml:"latex"`       // Compiler binary (default: "pdflatex")
	Biber       string `yaml:"biber"`       // Bibliography binary (default: "biber")
	Passes      int    `yaml:"passes"`      // Compiler passes (default: 3)
	ShellEscape bool   `yaml:"shellEscape"` // Pass -shell-escape (needed by minted)
	Timeout     string `yaml:"timeout"`     // Per-invocation timeout (default: "5m")
}

// LoggingConfig describes CLI log output.
type LoggingConfig struct {
	File    string `yaml:"file"`    // Empty = console only
	Verbose bool   `yaml:"verbose"` // Debug-level logging
}

// Validate checks field lengths and value ranges. Called automatically
// by LoadConfig, but available for consumers who construct Config
// manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("document.title", c.Document.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.author", c.Document.Author, MaxAuthorLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.date", c.Document.Date, MaxDateLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.language", c.Document.Language, MaxLanguageLength); err != nil {
		return err
	}
	for i, pkg := range c.Document.Packages {
		if err := validateFieldLength(fmt.Sprintf("document.packages[%d]", i), pkg, MaxPackageLength); err != nil {
			return err
		}
	}

	if c.Dirs.Pages == "" {
		return fmt.Errorf("dirs.pages: cannot be empty")
	}
	if c.Dirs.Build == "" {
		return fmt.Errorf("dirs.build: cannot be empty")
	}

	if c.Toolchain.Passes < 1 || c.Toolchain.Passes > 10 {
		return fmt.Errorf("toolchain.passes: must be between 1 and 10, got %d", c.Toolchain.Passes)
	}
	if c.Toolchain.Timeout != "" {
		if _, err := time.ParseDuration(c.Toolchain.Timeout); err != nil {
			return fmt.Errorf("toolchain.timeout: %v", err)
		}
	}

	return nil
}

// CompileTimeout returns the parsed per-invocation timeout. Validate
// guarantees the field parses, so a zero duration only means "unset".
func (c *Config) CompileTimeout() time.Duration {
	if c.Toolchain.Timeout == "" {
		return 5 * time.Minute
	}
	d, err := time.ParseDuration(c.Toolchain.Timeout)
	if err != nil {
		return 5 * time.Minute
	}
	return d
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no config file is
// given.
func DefaultConfig() *Config {
	return &Config{
		Document: DocumentConfig{
			Title:    "Praca Dyplomowa",
			Author:   "Autor",
			Language: "polish",
		},
		Dirs: DirsConfig{
			Pages: "pages",
			Build: "build",
		},
		Toolchain: ToolchainConfig{
			Latex:       "pdflatex",
			Biber:       "biber",
			Passes:      3,
			ShellEscape: true,
			Timeout:     "5m",
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-json2tex/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-json2tex", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
