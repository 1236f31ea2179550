// Package fileutil provides file reading and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Sentinel errors for file utility operations.
var (
	ErrPathEmpty = errors.New("path cannot be empty")
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ReadTextFile reads a text file, resolving a relative path against
// baseDir. Files that are not valid UTF-8 are decoded as ISO 8859-2,
// the legacy encoding of older Polish tooling.
func ReadTextFile(path, baseDir string) (string, error) {
	if path == "" {
		return "", ErrPathEmpty
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading text file: %w", err)
	}
	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, err := charmap.ISO8859_2.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding %s as ISO 8859-2: %w", path, err)
	}
	return string(decoded), nil
}
