// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"os"
	"path/filepath"
	"testing"
)

func TestChainCanProcess(t *testing.T) {
	chain := DefaultChain()
	tests := []struct {
		path string
		want bool
	}{
		{"decision.txt", true},
		{"decision.TXT", true},
		{"notes.md", true},
		{"decision.pdf", true},
		{"scan.PDF", true},
		{"image.png", false},
		{"archive.zip", false},
		{"no-extension", false},
	}
	for _, tt := range tests {
		if got := chain.CanProcess(tt.path); got != tt.want {
			t.Errorf("CanProcess(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestPlainTextProcess(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "decision.txt")
	content := "טענות המבקש:\nשווי של 1,250,000 ש\"ח"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	chain := DefaultChain()
	got, err := chain.Process(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Text != content {
		t.Errorf("text = %q, want %q", got.Text, content)
	}
	if got.Format != "text" {
		t.Errorf("format = %q", got.Format)
	}
	if got.OriginalPath != path {
		t.Errorf("originalPath = %q", got.OriginalPath)
	}
}

func TestChainProcessErrors(t *testing.T) {
	chain := DefaultChain()

	if _, err := chain.Process("unsupported.docx"); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if _, err := chain.Process(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
