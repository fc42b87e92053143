package locate

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

// writeTree creates a small fixture tree and returns its root.
func writeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range []string{
		"a/hello.txt",
		"b/skip.txt",
		"b/Case.TXT",
		"hello/inner.log",
	} {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func defaultOpts() Options {
	return Options{Limit: Unbounded}
}

func TestSearchDefaultCaseInsensitive(t *testing.T) {
	root := writeTree(t)

	files := Search(root, "HELLO", defaultOpts())
	if len(files) != 2 {
		t.Fatalf("Search() = %v, want 2 matches (hello.txt and hello/inner.log)", files)
	}
	for _, f := range files {
		if !strings.Contains(strings.ToLower(f), "hello") {
			t.Errorf("Search() returned non-matching path %q", f)
		}
	}
}

func TestSearchBaseName(t *testing.T) {
	root := writeTree(t)

	opts := defaultOpts()
	opts.Mode = ModeBaseName
	files := Search(root, "hello", opts)
	// hello/inner.log matches on full path but not on basename.
	if len(files) != 1 || filepath.Base(files[0]) != "hello.txt" {
		t.Fatalf("Search() = %v, want only hello.txt", files)
	}
}

func TestSearchCaseSensitive(t *testing.T) {
	root := writeTree(t)

	opts := defaultOpts()
	opts.Mode = ModeCaseSensitive
	if files := Search(root, "Case.TXT", opts); len(files) != 1 {
		t.Fatalf("Search(Case.TXT) = %v, want 1 match", files)
	}
	if files := Search(root, "case.txt", opts); len(files) != 0 {
		t.Fatalf("Search(case.txt) = %v, want no matches", files)
	}
}

func TestSearchRegex(t *testing.T) {
	root := writeTree(t)

	opts := defaultOpts()
	opts.Mode = ModeRegex
	// The path is lowercased before matching, so an uppercase file still hits.
	opts.Regex = regexp.MustCompile(`case\.txt$`)
	files := Search(root, "", opts)
	if len(files) != 1 || filepath.Base(files[0]) != "Case.TXT" {
		t.Fatalf("Search() = %v, want Case.TXT", files)
	}
}

func TestSearchGlob(t *testing.T) {
	root := writeTree(t)

	opts := defaultOpts()
	opts.Mode = ModeGlob
	opts.Glob = "**/*.txt"
	files := Search(root, "", opts)
	if len(files) != 3 {
		t.Fatalf("Search() = %v, want the 3 .txt/.TXT files", files)
	}
}

func TestSearchSkipsDirectories(t *testing.T) {
	root := writeTree(t)

	files := Search(root, "hello", defaultOpts())
	for _, f := range files {
		info, err := os.Stat(f)
		if err != nil {
			t.Fatal(err)
		}
		if info.IsDir() {
			t.Errorf("Search() returned directory %q", f)
		}
	}
}

func TestReportPrintsEveryMatchAndTotal(t *testing.T) {
	var buf bytes.Buffer
	files := []string{"a/hello.txt", "b/hello.md"}

	report(&buf, files, "hello", defaultOpts())

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Two match lines, one blank, one total.
	if len(lines) != 4 {
		t.Fatalf("report() output = %q, want 4 lines", out)
	}
	if !strings.HasSuffix(out, "2 results found\n") {
		t.Fatalf("report() output = %q, want total footer", out)
	}
}

func TestReportLimitDoesNotClipCount(t *testing.T) {
	var buf bytes.Buffer
	files := []string{"a", "b", "c"}

	opts := defaultOpts()
	opts.Limit = 1
	report(&buf, files, "", opts)

	out := buf.String()
	if !strings.Contains(out, "3 results found") {
		t.Fatalf("report() output = %q, want unclipped total of 3", out)
	}
	if strings.Contains(out, "b\n") || strings.Contains(out, "c\n") {
		t.Fatalf("report() output = %q, want only the first match listed", out)
	}
}

func TestReportCountOnly(t *testing.T) {
	var buf bytes.Buffer
	files := []string{"a/hello.txt"}

	opts := defaultOpts()
	opts.CountOnly = true
	report(&buf, files, "hello", opts)

	out := buf.String()
	if strings.Contains(out, "hello.txt") {
		t.Fatalf("report() output = %q, want no file paths in count mode", out)
	}
	if !strings.Contains(out, "1 results found") {
		t.Fatalf("report() output = %q, want count line", out)
	}
}
