// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSnippet(t *testing.T) {
	text := "שווי המקרקעין במצב קודם הוערך בסך 1,250,000 ש\"ח על ידי שמאי המבקש"
	start := strings.Index(text, "1,250,000")
	end := start + len("1,250,000")

	got := Snippet(text, start, end)
	if !strings.Contains(got, "1,250,000") {
		t.Errorf("snippet %q does not contain the match", got)
	}
	if !utf8.ValidString(got) {
		t.Errorf("snippet %q is not valid UTF-8", got)
	}
	if strings.Contains(got, "\n") || strings.Contains(got, "  ") {
		t.Errorf("snippet %q not whitespace-collapsed", got)
	}
}

func TestSnippetEdges(t *testing.T) {
	text := "קצר 42 מאוד"
	start := strings.Index(text, "42")

	// Window larger than the text clamps to it.
	if got := Snippet(text, start, start+2); got != "קצר 42 מאוד" {
		t.Errorf("snippet = %q", got)
	}

	// Cuts inside multi-byte runes snap outward to rune starts.
	long := strings.Repeat("א", 100) + " 7 " + strings.Repeat("ב", 100)
	s := strings.Index(long, "7")
	got := Snippet(long, s, s+1)
	if !utf8.ValidString(got) {
		t.Errorf("snippet %q is not valid UTF-8", got)
	}

	// Out-of-range offsets are rejected, not clamped.
	for _, c := range []struct{ s, e int }{{-1, 2}, {0, len(text) + 1}, {5, 2}} {
		if got := Snippet(text, c.s, c.e); got != "" {
			t.Errorf("Snippet(%d,%d) = %q, want empty", c.s, c.e, got)
		}
	}
}
