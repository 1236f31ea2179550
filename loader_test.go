package json2tex

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func writePageJSON(t *testing.T, pagesDir string, number int, content string) string {
	t.Helper()
	dir := filepath.Join(pagesDir, strconv.Itoa(number))
	if err := os.MkdirAll(dir, 0o750); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "content.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "content.json")
	doc := `{
		"title": "Wstęp",
		"sectionLevel": 2,
		"content": [
			{"type": "text", "data": {"text": "hello"}},
			{"type": "image", "data": {"imagePath": "fig.png", "caption": "c", "label": "fig:1"}}
		],
		"references": [{"id": "smith2020", "citation": "Smith 2020"}]
	}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	page, err := LoadPage(path, 4)
	if err != nil {
		t.Fatalf("LoadPage() error = %v", err)
	}
	if page.Number != 4 {
		t.Errorf("Number = %d, want 4", page.Number)
	}
	if page.Dir != dir {
		t.Errorf("Dir = %q, want %q", page.Dir, dir)
	}
	if page.Title != "Wstęp" {
		t.Errorf("Title = %q", page.Title)
	}
	if page.SectionLevel != 2 {
		t.Errorf("SectionLevel = %d, want 2", page.SectionLevel)
	}
	if len(page.Content) != 2 {
		t.Fatalf("got %d content blocks, want 2", len(page.Content))
	}
	if page.Content[0].Data.Text == nil || *page.Content[0].Data.Text != "hello" {
		t.Errorf("first block text = %v", page.Content[0].Data.Text)
	}
	if page.Content[1].Data.ImagePath != "fig.png" {
		t.Errorf("second block imagePath = %q", page.Content[1].Data.ImagePath)
	}
	if len(page.References) != 1 || page.References[0].ID != "smith2020" {
		t.Errorf("references = %+v", page.References)
	}
}

func TestLoadPageDefaultTitle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "content.json")
	if err := os.WriteFile(path, []byte(`{"content": []}`), 0o644); err != nil {
		t.Fatal(err)
	}

	page, err := LoadPage(path, 7)
	if err != nil {
		t.Fatalf("LoadPage() error = %v", err)
	}
	if page.Title != "Page 7" {
		t.Errorf("Title = %q, want %q", page.Title, "Page 7")
	}
}

func TestLoadPageErrors(t *testing.T) {
	t.Parallel()

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()

		_, err := LoadPage("", 1)
		if !errors.Is(err, ErrEmptyPagePath) {
			t.Errorf("error = %v, want ErrEmptyPagePath", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadPage(filepath.Join(t.TempDir(), "nope.json"), 1)
		if err == nil {
			t.Error("error = nil, want read error")
		}
	})

	t.Run("malformed JSON", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadPage(path, 1)
		if !errors.Is(err, ErrPageParse) {
			t.Errorf("error = %v, want ErrPageParse", err)
		}
	})

	t.Run("block without type", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "typeless.json")
		if err := os.WriteFile(path, []byte(`{"content": [{"data": {}}]}`), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadPage(path, 1)
		if !errors.Is(err, ErrInvalidPage) {
			t.Errorf("error = %v, want ErrInvalidPage", err)
		}
	})
}

func TestDiscoverPages(t *testing.T) {
	t.Parallel()

	pagesDir := t.TempDir()
	// Page 10 checks numeric rather than lexicographic ordering.
	for _, n := range []int{2, 10, 1} {
		writePageJSON(t, pagesDir, n, `{"content": []}`)
	}
	// Non-numeric directories and loose files are ignored.
	if err := os.MkdirAll(filepath.Join(pagesDir, "drafts"), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(pagesDir, "notes.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	pages, warnings, err := DiscoverPages(pagesDir)
	if err != nil {
		t.Fatalf("DiscoverPages() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	var numbers []int
	for _, p := range pages {
		numbers = append(numbers, p.Number)
	}
	want := []int{1, 2, 10}
	if len(numbers) != len(want) {
		t.Fatalf("got pages %v, want %v", numbers, want)
	}
	for i := range want {
		if numbers[i] != want[i] {
			t.Fatalf("got pages %v, want %v", numbers, want)
		}
	}
}

func TestDiscoverPagesWarnsOnEmptyPageDir(t *testing.T) {
	t.Parallel()

	pagesDir := t.TempDir()
	writePageJSON(t, pagesDir, 1, `{"content": []}`)
	if err := os.MkdirAll(filepath.Join(pagesDir, "2"), 0o750); err != nil {
		t.Fatal(err)
	}

	pages, warnings, err := DiscoverPages(pagesDir)
	if err != nil {
		t.Fatalf("DiscoverPages() error = %v", err)
	}
	if len(pages) != 1 {
		t.Errorf("got %d pages, want 1", len(pages))
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "page 2") {
		t.Errorf("warnings = %v, want one about page 2", warnings)
	}
}

func TestDiscoverPagesSkipsBrokenPage(t *testing.T) {
	t.Parallel()

	pagesDir := t.TempDir()
	writePageJSON(t, pagesDir, 1, `{"content": []}`)
	writePageJSON(t, pagesDir, 2, "{not json")
	writePageJSON(t, pagesDir, 3, `{"content": []}`)

	pages, warnings, err := DiscoverPages(pagesDir)
	if err != nil {
		t.Fatalf("DiscoverPages() error = %v", err)
	}

	var numbers []int
	for _, p := range pages {
		numbers = append(numbers, p.Number)
	}
	if len(numbers) != 2 || numbers[0] != 1 || numbers[1] != 3 {
		t.Errorf("got pages %v, want [1 3]", numbers)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "skipping page 2") {
		t.Errorf("warnings = %v, want one about skipping page 2", warnings)
	}
}

func TestDiscoverPagesAllPagesBroken(t *testing.T) {
	t.Parallel()

	pagesDir := t.TempDir()
	writePageJSON(t, pagesDir, 1, "{not json")

	_, warnings, err := DiscoverPages(pagesDir)
	if !errors.Is(err, ErrNoPages) {
		t.Errorf("error = %v, want ErrNoPages", err)
	}
	if len(warnings) != 1 {
		t.Errorf("warnings = %v, want one", warnings)
	}
}

func TestDiscoverPagesNoPages(t *testing.T) {
	t.Parallel()

	_, _, err := DiscoverPages(t.TempDir())
	if !errors.Is(err, ErrNoPages) {
		t.Errorf("error = %v, want ErrNoPages", err)
	}
}

func TestDiscoverPagesMissingDir(t *testing.T) {
	t.Parallel()

	_, _, err := DiscoverPages(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Error("error = nil, want read error")
	}
}
