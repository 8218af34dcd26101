package main

import (
	"os"
	"path/filepath"
	"testing"
)

const passingManifest = `
interfaces:
  - name: Writer
    members:
      - name: write
        signature: "(self, data)"
types:
  - name: FileWriter
    implements: [Writer]
    members:
      - name: write
        signature: "(self, data)"
`

const failingManifest = `
interfaces:
  - name: Writer
    members:
      - name: write
        signature: "(self, data)"
types:
  - name: Empty
    implements: [Writer]
`

func writeManifest(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contracts.yml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
	return path
}

func TestRunNoArguments(t *testing.T) {
	if code := run(nil); code != 1 {
		t.Fatalf("expected usage failure, got %d", code)
	}
}

func TestRunVersionAndHelp(t *testing.T) {
	if code := run([]string{"--version"}); code != 0 {
		t.Fatalf("expected version to succeed, got %d", code)
	}
	if code := run([]string{"help"}); code != 0 {
		t.Fatalf("expected help to succeed, got %d", code)
	}
}

func TestVerifyPassingManifest(t *testing.T) {
	path := writeManifest(t, passingManifest)
	if code := run([]string{"verify", path}); code != 0 {
		t.Fatalf("expected clean verification, got exit %d", code)
	}
}

func TestVerifyFailingManifest(t *testing.T) {
	path := writeManifest(t, failingManifest)
	if code := run([]string{"verify", path}); code != 1 {
		t.Fatalf("expected verification failure, got exit %d", code)
	}
}

func TestVerifyMissingManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yml")
	if code := run([]string{"verify", path}); code != 1 {
		t.Fatalf("expected load failure, got exit %d", code)
	}
}

func TestVerifyUnknownFlag(t *testing.T) {
	if code := run([]string{"verify", "--bogus"}); code != 1 {
		t.Fatalf("expected unknown flag failure, got exit %d", code)
	}
}

func TestDocCommand(t *testing.T) {
	path := writeManifest(t, passingManifest)
	if code := run([]string{"doc", "Writer", path}); code != 0 {
		t.Fatalf("expected doc to succeed, got exit %d", code)
	}
	if code := run([]string{"doc", "Unknown", path}); code != 1 {
		t.Fatalf("expected unknown interface to fail, got exit %d", code)
	}
	if code := run([]string{"doc"}); code != 1 {
		t.Fatalf("expected missing argument to fail, got exit %d", code)
	}
}
