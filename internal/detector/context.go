// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import "strings"

// ContextChars is how far Snippet reaches on each side of a match.
const ContextChars = 40

// Snippet returns a trimmed, whitespace-collapsed excerpt of text centered
// on the byte range [start,end). Cuts land on rune boundaries.
func Snippet(text string, start, end int) string {
	if start < 0 || end > len(text) || start > end {
		return ""
	}
	from := start - ContextChars
	if from < 0 {
		from = 0
	}
	for from > 0 && !isRuneStart(text[from]) {
		from--
	}
	to := end + ContextChars
	if to > len(text) {
		to = len(text)
	}
	for to < len(text) && !isRuneStart(text[to]) {
		to++
	}
	return strings.Join(strings.Fields(text[from:to]), " ")
}

func isRuneStart(b byte) bool { return b&0xC0 != 0x80 }
