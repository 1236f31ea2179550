package json2tex

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// LoadPage reads and parses one page document. Number and the page
// directory are derived from the file location.
func LoadPage(path string, number int) (*Page, error) {
	if path == "" {
		return nil, ErrEmptyPagePath
	}

	data, err := os.ReadFile(path) // #nosec G304 -- page path is user-provided
	if err != nil {
		return nil, fmt.Errorf("reading page document: %w", err)
	}

	var page Page
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrPageParse, path, err)
	}

	page.Number = number
	page.Dir = filepath.Dir(path)
	if page.Title == "" {
		page.Title = fmt.Sprintf("Page %d", number)
	}

	if err := page.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &page, nil
}

// DiscoverPages walks pagesDir for numbered subdirectories and loads
// the first JSON document found in each, in numeric order. Directories
// without a JSON document, and pages that fail to load, are skipped
// with a warning rather than failing the whole discovery.
func DiscoverPages(pagesDir string) ([]*Page, []string, error) {
	entries, err := os.ReadDir(pagesDir)
	if err != nil {
		return nil, nil, fmt.Errorf("reading pages directory: %w", err)
	}

	var numbers []int
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		n, err := strconv.Atoi(entry.Name())
		if err != nil || n < 1 {
			continue
		}
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	if len(numbers) == 0 {
		return nil, nil, fmt.Errorf("%w: %s", ErrNoPages, pagesDir)
	}

	var pages []*Page
	var warnings []string
	for _, n := range numbers {
		dir := filepath.Join(pagesDir, strconv.Itoa(n))
		matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
		if err != nil {
			return nil, warnings, fmt.Errorf("scanning %s: %w", dir, err)
		}
		if len(matches) == 0 {
			warnings = append(warnings, fmt.Sprintf("no JSON document in %s, skipping page %d", dir, n))
			continue
		}
		sort.Strings(matches)

		page, err := LoadPage(matches[0], n)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping page %d: %v", n, err))
			continue
		}
		pages = append(pages, page)
	}

	if len(pages) == 0 {
		return nil, warnings, fmt.Errorf("%w: %s", ErrNoPages, pagesDir)
	}
	return pages, warnings, nil
}
