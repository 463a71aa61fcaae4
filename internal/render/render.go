// Package render produces the Markdown block spliced into the README.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/zikuu-space/nbsync/internal/repoid"
	"github.com/zikuu-space/nbsync/internal/scan"
)

const colabBase = "https://colab.research.google.com/github"

// Rendered strings are Japanese to match the ZIKUU notebooks README.
const (
	emptyLine      = "- （まだNotebookがありません）\n"
	timestampLabel = "更新"
	fallbackNote   = "（Colabリンク生成には " + repoid.EnvVar + " の設定が必要）"
)

// Options controls link generation and the embedded timestamp.
type Options struct {
	// RepoID is the OWNER/REPO identifier. Empty means no Colab links:
	// notebooks render as plain backticked filenames with a note.
	RepoID string

	// Branch appears in Colab links (blob/<branch>/...). Empty means "main".
	Branch string

	// Now supplies the timestamp clock. Nil means time.Now.
	Now func() time.Time
}

// Block renders the replacement block for the marker region.
//
// An empty module list produces a single fixed line. Otherwise the block is
// a UTC timestamp line, a blank line, then one title link per module followed
// by its notebook lines, with a blank line after each module. The result
// always ends with exactly one newline.
func Block(modules []scan.Module, opts Options) string {
	if len(modules) == 0 {
		return emptyLine
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	branch := opts.Branch
	if branch == "" {
		branch = "main"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n\n", timestampLabel, now().UTC().Format("2006-01-02 15:04:05Z"))

	for _, mod := range modules {
		fmt.Fprintf(&b, "- **[%s](./%s/)**\n", mod.Title, mod.Dir)
		for _, nb := range mod.Notebooks {
			if opts.RepoID != "" {
				fmt.Fprintf(&b, "  - [%s](%s)\n", nb, colabLink(opts.RepoID, branch, mod.Dir+"/"+nb))
			} else {
				fmt.Fprintf(&b, "  - `%s`%s\n", nb, fallbackNote)
			}
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), " \t\n") + "\n"
}

// colabLink builds a Colab viewer URL for a notebook path relative to the
// repository root, e.g. "earth-observation-001-daichi2/intro.ipynb".
func colabLink(repoID, branch, path string) string {
	return fmt.Sprintf("%s/%s/blob/%s/%s", colabBase, repoID, branch, path)
}
