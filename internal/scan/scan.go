// Package scan enumerates notebook module directories under a repository root.
//
// A module is a top-level, non-excluded directory containing at least one
// notebook file as a direct child. The scan never recurses: notebooks in
// nested directories are intentionally invisible.
package scan

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/zikuu-space/nbsync/internal/output"
)

// Module is one qualifying top-level directory.
type Module struct {
	// Dir is the directory name relative to the repository root.
	Dir string `json:"dir"`

	// Title comes from the first H1 of the directory's README.md,
	// falling back to Dir when there is no README or no H1.
	Title string `json:"title"`

	// Notebooks holds the notebook filenames, sorted lexicographically.
	Notebooks []string `json:"notebooks"`
}

// Options controls enumeration. All fields are required; config.Default
// supplies the canonical values.
type Options struct {
	// Extension selects notebook files, e.g. ".ipynb".
	Extension string

	// Readme is the per-directory file whose first H1 becomes the title.
	Readme string

	// Excluded reports directory names to skip (hidden names and the
	// fixed exclusion set).
	Excluded func(name string) bool
}

// First line whose trimmed content is a single-# Markdown heading.
var h1Line = regexp.MustCompile(`^\s*#\s+(.+?)\s*$`)

// Modules returns one entry per qualifying directory under root, ordered by
// directory name ascending. Directories without notebooks produce nothing.
func Modules(root string, opts Options) ([]Module, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("reading repository root", err)
	}

	var modules []Module
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if opts.Excluded != nil && opts.Excluded(name) {
			continue
		}

		notebooks, err := listNotebooks(filepath.Join(root, name), opts.Extension)
		if err != nil {
			return nil, err
		}
		if len(notebooks) == 0 {
			continue
		}

		title, err := FirstHeading(filepath.Join(root, name, opts.Readme))
		if err != nil {
			return nil, err
		}
		if title == "" {
			title = name
		}

		modules = append(modules, Module{Dir: name, Title: title, Notebooks: notebooks})
	}

	return modules, nil
}

// listNotebooks returns the sorted notebook filenames directly inside dir.
func listNotebooks(dir, extension string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("reading directory "+dir, err)
	}

	var notebooks []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), extension) {
			notebooks = append(notebooks, entry.Name())
		}
	}
	// os.ReadDir already sorts by filename.
	return notebooks, nil
}

// FirstHeading returns the first single-# heading of the file at path,
// trimmed. Returns "" when the file does not exist or has no such line.
func FirstHeading(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", output.NewSystemErrorWithCause("reading "+path, err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read-only file

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if m := h1Line.FindStringSubmatch(scanner.Text()); m != nil {
			return strings.TrimSpace(m[1]), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", output.NewSystemErrorWithCause("reading "+path, err)
	}
	return "", nil
}
