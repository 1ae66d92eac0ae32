package artifact

import (
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
)

// Walk returns a lazy sequence of every non-directory path under root, at any
// depth, in directory-listing order. Symbolic links to files are yielded;
// symbolic links to directories are not followed.
//
// A missing or unlistable root yields a single error wrapping ErrRootNotFound.
// A subdirectory that cannot be listed yields an error and ends the sequence.
func Walk(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		info, err := os.Stat(root)
		if err != nil {
			yield("", fmt.Errorf("%w: %w", ErrRootNotFound, err))
			return
		}
		if !info.IsDir() {
			yield("", fmt.Errorf("%w: %s is not a directory", ErrRootNotFound, root))
			return
		}

		// WalkDir uses Lstat on the root, so resolve a symlinked root first.
		start := root
		if li, err := os.Lstat(root); err == nil && li.Mode()&fs.ModeSymlink != 0 {
			if resolved, err := filepath.EvalSymlinks(root); err == nil {
				start = resolved
			}
		}

		stopped := false
		err = filepath.WalkDir(start, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == start {
					return fmt.Errorf("%w: %w", ErrRootNotFound, err)
				}
				return fmt.Errorf("failed to list %s: %w", path, err)
			}
			if d.IsDir() {
				return nil
			}
			if d.Type()&fs.ModeSymlink != 0 {
				if target, err := os.Stat(path); err == nil && target.IsDir() {
					return nil
				}
			}
			if !yield(path, nil) {
				stopped = true
				return fs.SkipAll
			}
			return nil
		})
		if err != nil && !stopped {
			yield("", err)
		}
	}
}

// Collect walks root and extracts a record from every artifact found.
// Files that are not usable artifacts are skipped; only traversal failures
// are returned as errors.
func Collect(root string, e *Extractor) ([]Record, error) {
	records := []Record{}
	for path, err := range Walk(root) {
		if err != nil {
			return nil, err
		}
		if rec, ok := e.Extract(path); ok {
			records = append(records, rec)
		}
	}
	return records, nil
}
