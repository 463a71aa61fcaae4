// Package markers splices generated content between delimiter lines in a
// text file. Only the region strictly between the markers may change; text
// before BEGIN and from END onward passes through untouched.
package markers

import (
	"strings"

	"github.com/zikuu-space/nbsync/internal/output"
)

// Replace returns text with everything strictly between the end of the
// begin marker and the start of the end marker replaced by a newline
// followed by block.
//
// Fails without producing output when either marker is absent or when the
// end marker's first occurrence precedes the begin marker.
func Replace(text, block, begin, end string) (string, error) {
	beginIdx := strings.Index(text, begin)
	if beginIdx < 0 {
		return "", output.NewUserError("BEGIN marker not found: " + begin)
	}
	endIdx := strings.Index(text, end)
	if endIdx < 0 {
		return "", output.NewUserError("END marker not found: " + end)
	}

	// Position just past the begin marker; the begin line itself is kept.
	cut := beginIdx + len(begin)
	if endIdx < cut {
		return "", output.NewUserError("marker order is invalid: END appears before BEGIN")
	}

	return text[:cut] + "\n" + block + text[endIdx:], nil
}
