package render

import (
	"strings"
	"testing"
	"time"

	"github.com/zikuu-space/nbsync/internal/scan"
)

// fixedNow returns a deterministic clock for tests.
func fixedNow() time.Time {
	return time.Date(2026, 8, 29, 12, 30, 45, 0, time.UTC)
}

func TestBlock_Empty(t *testing.T) {
	got := Block(nil, Options{Now: fixedNow})
	want := "- （まだNotebookがありません）\n"
	if got != want {
		t.Errorf("Block(empty) = %q, want %q", got, want)
	}
}

func TestBlock_WithRepo(t *testing.T) {
	modules := []scan.Module{
		{Dir: "a", Title: "a", Notebooks: []string{"one.ipynb", "two.ipynb"}},
		{Dir: "b", Title: "Project B", Notebooks: []string{"intro.ipynb"}},
	}

	got := Block(modules, Options{RepoID: "acme/widgets", Now: fixedNow})

	want := strings.Join([]string{
		"更新: 2026-08-29 12:30:45Z",
		"",
		"- **[a](./a/)**",
		"  - [one.ipynb](https://colab.research.google.com/github/acme/widgets/blob/main/a/one.ipynb)",
		"  - [two.ipynb](https://colab.research.google.com/github/acme/widgets/blob/main/a/two.ipynb)",
		"",
		"- **[Project B](./b/)**",
		"  - [intro.ipynb](https://colab.research.google.com/github/acme/widgets/blob/main/b/intro.ipynb)",
		"",
	}, "\n")
	// Trailing whitespace collapses to exactly one newline.
	want = strings.TrimRight(want, "\n") + "\n"

	if got != want {
		t.Errorf("Block() =\n%q\nwant\n%q", got, want)
	}
}

func TestBlock_WithoutRepo(t *testing.T) {
	modules := []scan.Module{
		{Dir: "a", Title: "a", Notebooks: []string{"one.ipynb"}},
	}

	got := Block(modules, Options{Now: fixedNow})

	if strings.Contains(got, "colab.research.google.com") {
		t.Errorf("Block() without repo must not contain Colab links: %q", got)
	}
	if !strings.Contains(got, "  - `one.ipynb`（Colabリンク生成には ZIKUU_GITHUB_REPO の設定が必要）") {
		t.Errorf("Block() missing fallback line: %q", got)
	}
}

func TestBlock_BranchOverride(t *testing.T) {
	modules := []scan.Module{
		{Dir: "a", Title: "a", Notebooks: []string{"one.ipynb"}},
	}

	got := Block(modules, Options{RepoID: "acme/widgets", Branch: "develop", Now: fixedNow})

	if !strings.Contains(got, "/blob/develop/a/one.ipynb") {
		t.Errorf("Block() should use the configured branch: %q", got)
	}
}

func TestBlock_TrailingNewline(t *testing.T) {
	modules := []scan.Module{
		{Dir: "z", Title: "Z", Notebooks: []string{"n.ipynb"}},
	}

	got := Block(modules, Options{RepoID: "o/r", Now: fixedNow})

	if !strings.HasSuffix(got, ")\n") || strings.HasSuffix(got, "\n\n") {
		t.Errorf("Block() must end with exactly one newline: %q", got)
	}
}

func TestBlock_DefaultClock(t *testing.T) {
	modules := []scan.Module{
		{Dir: "a", Title: "a", Notebooks: []string{"one.ipynb"}},
	}

	got := Block(modules, Options{RepoID: "o/r"})

	// The timestamp line must carry the current UTC year.
	year := time.Now().UTC().Format("2006")
	if !strings.HasPrefix(got, "更新: "+year) {
		t.Errorf("Block() timestamp line should use the current UTC time: %q", got)
	}
}
