package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/autoflow/iconforge"
)

func newGenerate(dir string) *Generate {
	return &Generate{
		Output:     dir,
		Format:     "png",
		Background: "#0066cc",
		Foreground: "#ffffff",
	}
}

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = orig })
	return &buf
}

func TestRunWritesDefaultIcons(t *testing.T) {
	out := captureStdout(t)
	dir := t.TempDir()

	if err := newGenerate(dir).Run(); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	for _, name := range []string{"icon16.png", "icon48.png", "icon128.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
		if !strings.Contains(out.String(), name) {
			t.Errorf("output does not mention %s:\n%s", name, out)
		}
	}
	if !strings.Contains(out.String(), "Icons created successfully!") {
		t.Errorf("missing success message:\n%s", out)
	}
}

func TestRunUnknownFormatWritesNothing(t *testing.T) {
	captureStdout(t)
	dir := t.TempDir()

	cmd := newGenerate(dir)
	cmd.Format = "webp"
	err := cmd.Run()
	if !errors.Is(err, iconforge.ErrUnsupportedFormat) {
		t.Fatalf("Run error = %v, want ErrUnsupportedFormat", err)
	}
	if !strings.Contains(err.Error(), "--format") {
		t.Errorf("error %q has no remediation hint", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("directory has %d files, want none", len(entries))
	}
}

func TestRunInvalidColor(t *testing.T) {
	captureStdout(t)
	cmd := newGenerate(t.TempDir())
	cmd.Foreground = "white"
	if err := cmd.Run(); !errors.Is(err, iconforge.ErrInvalidColor) {
		t.Errorf("Run error = %v, want ErrInvalidColor", err)
	}
}

func TestRunMissingOutputDir(t *testing.T) {
	captureStdout(t)
	cmd := newGenerate(filepath.Join(t.TempDir(), "nope"))
	if err := cmd.Run(); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Run error = %v, want os.ErrNotExist", err)
	}
}

func TestRunManifest(t *testing.T) {
	out := captureStdout(t)
	cmd := newGenerate(t.TempDir())
	cmd.Manifest = "icons"
	if err := cmd.Run(); err != nil {
		t.Fatal(err)
	}

	s := out.String()
	start, end := strings.Index(s, "{"), strings.LastIndex(s, "}")
	if start < 0 || end < start {
		t.Fatalf("no JSON in output:\n%s", s)
	}
	var m struct {
		Icons map[string]string `json:"icons"`
	}
	if err := json.Unmarshal([]byte(s[start:end+1]), &m); err != nil {
		t.Fatalf("manifest JSON: %v", err)
	}
	if m.Icons["128"] != "icons/icon128.png" {
		t.Errorf("icons = %v", m.Icons)
	}
}
