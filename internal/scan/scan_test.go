package scan

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/zikuu-space/nbsync/internal/config"
)

// writeFile creates a file with parent directories as needed.
func writeFile(t *testing.T, root string, parts ...string) {
	t.Helper()
	path := filepath.Join(append([]string{root}, parts...)...)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("content"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
}

// testOptions returns scanner options backed by the default configuration.
func testOptions() Options {
	cfg := config.Default()
	return Options{
		Extension: cfg.Extension,
		Readme:    cfg.Readme,
		Excluded:  cfg.Excluded,
	}
}

func TestModules(t *testing.T) {
	root := t.TempDir()

	// Qualifying modules, deliberately created out of order.
	writeFile(t, root, "b", "intro.ipynb")
	writeFile(t, root, "a", "two.ipynb")
	writeFile(t, root, "a", "one.ipynb")
	writeFile(t, root, "a", "notes.txt")

	// Excluded and hidden directories with notebooks must never appear.
	writeFile(t, root, ".git", "hidden.ipynb")
	writeFile(t, root, ".cache", "hidden.ipynb")
	writeFile(t, root, "scripts", "tool.ipynb")
	writeFile(t, root, "node_modules", "dep.ipynb")

	// A directory with files but no notebooks is skipped entirely.
	writeFile(t, root, "docs", "guide.md")

	// Notebooks below the first level are invisible (non-recursive scan).
	writeFile(t, root, "deep", "nested", "far.ipynb")

	// A plain file at the root is not a module.
	writeFile(t, root, "README.md")

	modules, err := Modules(root, testOptions())
	if err != nil {
		t.Fatalf("Modules() error: %v", err)
	}

	if len(modules) != 2 {
		t.Fatalf("Modules() returned %d entries, want 2: %+v", len(modules), modules)
	}
	if modules[0].Dir != "a" || modules[1].Dir != "b" {
		t.Errorf("Modules() order = [%s %s], want [a b]", modules[0].Dir, modules[1].Dir)
	}
	if want := []string{"one.ipynb", "two.ipynb"}; !reflect.DeepEqual(modules[0].Notebooks, want) {
		t.Errorf("Modules()[0].Notebooks = %v, want %v", modules[0].Notebooks, want)
	}
	if want := []string{"intro.ipynb"}; !reflect.DeepEqual(modules[1].Notebooks, want) {
		t.Errorf("Modules()[1].Notebooks = %v, want %v", modules[1].Notebooks, want)
	}
}

func TestModules_TitleFromReadme(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "mod", "nb.ipynb")

	readme := filepath.Join(root, "mod", "README.md")
	content := "preface text\n\n#    Earth Observation 101   \n\nbody\n"
	if err := os.WriteFile(readme, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	modules, err := Modules(root, testOptions())
	if err != nil {
		t.Fatalf("Modules() error: %v", err)
	}
	if len(modules) != 1 {
		t.Fatalf("Modules() returned %d entries, want 1", len(modules))
	}
	if modules[0].Title != "Earth Observation 101" {
		t.Errorf("Title = %q, want %q", modules[0].Title, "Earth Observation 101")
	}
}

func TestModules_TitleFallback(t *testing.T) {
	tests := []struct {
		name   string
		readme string // empty means no README at all
	}{
		{name: "no readme"},
		{name: "readme without h1", readme: "plain text\n## second level only\n"},
		{name: "hash without space", readme: "#NoSpace\n"},
		{name: "empty readme", readme: "\n\n"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, root, "fallback-dir", "nb.ipynb")
			if testCase.readme != "" {
				path := filepath.Join(root, "fallback-dir", "README.md")
				if err := os.WriteFile(path, []byte(testCase.readme), 0o600); err != nil {
					t.Fatal(err)
				}
			}

			modules, err := Modules(root, testOptions())
			if err != nil {
				t.Fatalf("Modules() error: %v", err)
			}
			if len(modules) != 1 {
				t.Fatalf("Modules() returned %d entries, want 1", len(modules))
			}
			if modules[0].Title != "fallback-dir" {
				t.Errorf("Title = %q, want directory name %q", modules[0].Title, "fallback-dir")
			}
		})
	}
}

func TestModules_EmptyRoot(t *testing.T) {
	modules, err := Modules(t.TempDir(), testOptions())
	if err != nil {
		t.Fatalf("Modules() error: %v", err)
	}
	if len(modules) != 0 {
		t.Errorf("Modules() on empty root = %v, want none", modules)
	}
}

func TestFirstHeading(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "simple h1", content: "# Title\n", want: "Title"},
		{name: "indented h1", content: "   #  Indented Title \n", want: "Indented Title"},
		{name: "first match wins", content: "# First\n# Second\n", want: "First"},
		{name: "h1 after prose", content: "intro\n# Later Title\n", want: "Later Title"},
		{name: "h2 ignored", content: "## Not a title\n", want: ""},
		{name: "no heading", content: "just text\n", want: ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "README.md")
			if err := os.WriteFile(path, []byte(testCase.content), 0o600); err != nil {
				t.Fatal(err)
			}

			got, err := FirstHeading(path)
			if err != nil {
				t.Fatalf("FirstHeading() error: %v", err)
			}
			if got != testCase.want {
				t.Errorf("FirstHeading() = %q, want %q", got, testCase.want)
			}
		})
	}
}

func TestFirstHeading_MissingFile(t *testing.T) {
	got, err := FirstHeading(filepath.Join(t.TempDir(), "README.md"))
	if err != nil {
		t.Fatalf("FirstHeading() on missing file should not error: %v", err)
	}
	if got != "" {
		t.Errorf("FirstHeading() = %q, want empty", got)
	}
}
