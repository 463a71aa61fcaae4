// Package repoid detects the GitHub "OWNER/REPO" identifier used to build
// Colab links. Absence of an identifier is a normal, expected state, not an
// error: rendering falls back to plain filenames.
package repoid

import (
	"os"
	"regexp"
	"strings"

	"github.com/zikuu-space/nbsync/internal/git"
)

// EnvVar overrides all other identifier sources when set to a non-blank value.
const EnvVar = "ZIKUU_GITHUB_REPO"

// Accepted remote URL shapes. Anything else (including other hosts)
// produces no identifier.
var (
	httpsRemote = regexp.MustCompile(`^https?://github\.com/([^/]+)/([^/]+?)(?:\.git)?/?$`)
	sshRemote   = regexp.MustCompile(`^git@github\.com:([^/]+)/([^/]+?)(?:\.git)?$`)
)

// ParseRemote extracts OWNER/REPO from a git remote URL.
//
// Supported forms:
//
//	https://github.com/OWNER/REPO.git
//	https://github.com/OWNER/REPO
//	git@github.com:OWNER/REPO.git
func ParseRemote(url string) (string, bool) {
	url = strings.TrimSpace(url)

	if m := httpsRemote.FindStringSubmatch(url); m != nil {
		return m[1] + "/" + m[2], true
	}
	if m := sshRemote.FindStringSubmatch(url); m != nil {
		return m[1] + "/" + m[2], true
	}
	return "", false
}

// Detect resolves the repository identifier for the repository at root.
//
// Priority:
//  1. explicit (a --repo flag value)
//  2. the ZIKUU_GITHUB_REPO environment variable
//  3. configured (a config file value)
//  4. the origin remote URL, parsed with ParseRemote
//
// Each source is used verbatim after trimming; blank values fall through.
// Any failure querying or parsing the remote degrades to ok=false.
func Detect(root, explicit, configured string) (string, bool) {
	if v := strings.TrimSpace(explicit); v != "" {
		return v, true
	}
	if v := strings.TrimSpace(os.Getenv(EnvVar)); v != "" {
		return v, true
	}
	if v := strings.TrimSpace(configured); v != "" {
		return v, true
	}

	url, err := git.RemoteURL(root, "origin")
	if err != nil {
		return "", false
	}
	return ParseRemote(url)
}
