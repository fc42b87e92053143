package locate

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Search walks root and returns every regular file whose path satisfies the
// configured predicate, in traversal order. Entries or metadata that cannot
// be resolved are skipped; traversal never fails as a whole.
func Search(root, term string, opts Options) []string {
	var files []string

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil || !info.Mode().IsRegular() {
			return nil
		}
		if matches(path, d.Name(), term, opts) {
			files = append(files, path)
		}
		return nil
	})

	return files
}

func matches(path, base, term string, opts Options) bool {
	switch opts.Mode {
	case ModeBaseName:
		return strings.Contains(strings.ToLower(base), strings.ToLower(term))
	case ModeCaseSensitive:
		return strings.Contains(path, term)
	case ModeRegex:
		return opts.Regex.MatchString(strings.ToLower(path))
	case ModeGlob:
		ok, err := doublestar.Match(opts.Glob, strings.ToLower(filepath.ToSlash(path)))
		return err == nil && ok
	default:
		return strings.Contains(strings.ToLower(path), strings.ToLower(term))
	}
}
