// Package main provides the entry point for the nbsync CLI.
package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zikuu-space/nbsync/internal/config"
)

func TestCheck_AllPass(t *testing.T) {
	t.Setenv("ZIKUU_GITHUB_REPO", "acme/widgets")
	root := makeRepo(t)

	stdout, _, err := execute(t, "check", "--root", root)
	if err != nil {
		t.Fatalf("check failed: %v\n%s", err, stdout)
	}
	for _, want := range []string{"README", "MARKERS", "REPO", "acme/widgets"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("check output missing %q:\n%s", want, stdout)
		}
	}
	if strings.Contains(stdout, "FAIL") {
		t.Errorf("unexpected failure:\n%s", stdout)
	}
}

func TestCheck_MissingReadme(t *testing.T) {
	t.Setenv("ZIKUU_GITHUB_REPO", "acme/widgets")
	root := t.TempDir()

	stdout, _, err := execute(t, "check", "--root", root)
	if err == nil {
		t.Fatal("check should fail without a README")
	}
	if !strings.Contains(stdout, "FAIL") {
		t.Errorf("check output should flag failures:\n%s", stdout)
	}
}

func TestCheck_MisorderedMarkers(t *testing.T) {
	t.Setenv("ZIKUU_GITHUB_REPO", "acme/widgets")
	root := makeRepo(t)
	cfg := config.Default()
	content := cfg.EndMarker + "\n" + cfg.BeginMarker + "\n"
	if err := os.WriteFile(filepath.Join(root, "README.md"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := execute(t, "check", "--root", root)
	if err == nil {
		t.Fatal("check should fail with END before BEGIN")
	}
	if !strings.Contains(stdout, "END marker appears before BEGIN") {
		t.Errorf("check output = %q", stdout)
	}
}

func TestCheck_NoRepoIsWarningOnly(t *testing.T) {
	t.Setenv("ZIKUU_GITHUB_REPO", "")
	root := makeRepo(t)

	stdout, _, err := execute(t, "check", "--root", root)
	if err != nil {
		t.Fatalf("missing repo identifier must not fail check: %v\n%s", err, stdout)
	}
	if !strings.Contains(stdout, "warn") {
		t.Errorf("check output should warn about the identifier:\n%s", stdout)
	}
	if !strings.Contains(stdout, "ZIKUU_GITHUB_REPO") {
		t.Errorf("warning should name the env var:\n%s", stdout)
	}
}

func TestCheck_JSON(t *testing.T) {
	t.Setenv("ZIKUU_GITHUB_REPO", "acme/widgets")
	root := makeRepo(t)

	stdout, _, err := execute(t, "check", "--root", root, "--json")
	if err != nil {
		t.Fatalf("check --json failed: %v", err)
	}

	var result struct {
		Root   string `json:"root"`
		Failed int    `json:"failed"`
		Checks []struct {
			Name   string `json:"name"`
			Status string `json:"status"`
		} `json:"checks"`
	}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	if result.Failed != 0 {
		t.Errorf("failed = %d, want 0", result.Failed)
	}
	if len(result.Checks) != 3 {
		t.Errorf("checks = %d, want 3", len(result.Checks))
	}
}
