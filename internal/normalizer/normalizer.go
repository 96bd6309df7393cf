// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package normalizer prepares raw, OCR/PDF-derived Hebrew text for pattern
// matching. All downstream regex work runs on normalized text only.
package normalizer

import "strings"

// Normalize strips invisible and directional control characters, unifies
// quote and dash variants, converts CRLF/CR to LF, and collapses runs of
// non-newline whitespace to a single space. Newlines are preserved because
// section-boundary detection anchors on them.
//
// Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	pendingSpace := false
	flush := func() {
		if pendingSpace {
			sb.WriteByte(' ')
			pendingSpace = false
		}
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if isInvisible(r) {
			continue
		}
		switch r {
		case '\r':
			// CRLF and bare CR both become a single LF.
			if i+1 < len(runes) && runes[i+1] == '\n' {
				continue
			}
			r = '\n'
		case '״', '“', '”', '„', '‟': // gershayim and double-quote variants
			r = '"'
		case '׳', '‘', '’', '‚': // geresh and single-quote variants
			r = '\''
		case '–', '—', '־': // en dash, em dash, maqaf
			r = '-'
		}
		if r == '\n' {
			pendingSpace = false
			sb.WriteByte('\n')
			continue
		}
		if isSpace(r) {
			if sb.Len() > 0 {
				pendingSpace = true
			}
			continue
		}
		flush()
		sb.WriteRune(r)
	}

	return strings.TrimRight(sb.String(), " \n")
}

// isInvisible reports zero-width and bidirectional control code points that
// PDF extractors and OCR commonly leave behind in Hebrew text.
func isInvisible(r rune) bool {
	switch r {
	case '\uFEFF', // BOM / zero-width no-break space
		'\u00AD', // soft hyphen
		'\u061C': // Arabic letter mark
		return true
	}
	if r >= '\u200B' && r <= '\u200F' { // zero-width + LRM/RLM
		return true
	}
	if r >= '\u202A' && r <= '\u202E' { // bidi embedding/override controls
		return true
	}
	if r >= '\u2060' && r <= '\u2064' { // word joiner and invisible operators
		return true
	}
	if r >= '\u2066' && r <= '\u2069' { // bidi isolate controls
		return true
	}
	// Control chars other than LF/CR/TAB (TAB is whitespace, handled later).
	if r < 0x20 && r != '\n' && r != '\r' && r != '\t' {
		return true
	}
	return r == 0x7F
}

// isSpace covers the whitespace runes collapsed to a single space. Newlines
// are deliberately excluded.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\u00A0', '\u1680', '\u202F', '\u205F', '\u3000':
		return true
	}
	return r >= '\u2000' && r <= '\u200A'
}
