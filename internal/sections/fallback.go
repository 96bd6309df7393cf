// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package sections

import (
	"strings"

	"shamai-scan/internal/detector"
)

// Keyword-fallback window geometry. When no formal header exists the best
// that can be done is a fixed slice of text around an informal marker.
const (
	fallbackScanLimit = 50000 // runes of document considered
	fallbackBefore    = 500   // runes kept before the marker
	fallbackAfter     = 2500  // runes kept after the marker
)

// FindKeywordFallback scans the first part of a normalized document for the
// kind's informal inline markers and returns a fixed window around the first
// hit. Used only after FindSection came up empty for the kind. Returns nil
// when no marker occurs or the window is too short to be useful.
func (l *Locator) FindKeywordFallback(doc string, kind detector.SectionKind) *detector.ExtractedSection {
	runes := []rune(doc)
	scan := runes
	if len(scan) > fallbackScanLimit {
		scan = scan[:fallbackScanLimit]
	}
	haystack := string(scan)

	for _, kw := range l.fallbacks[kind] {
		byteIdx := strings.Index(haystack, kw)
		if byteIdx < 0 {
			continue
		}
		runeIdx := len([]rune(haystack[:byteIdx]))

		from := runeIdx - fallbackBefore
		if from < 0 {
			from = 0
		}
		to := runeIdx + fallbackAfter
		if to > len(runes) {
			to = len(runes)
		}

		body := strings.TrimSpace(string(runes[from:to]))
		body = truncateRunes(body, detector.MaxSectionChars)
		if len([]rune(body)) < detector.MinFallbackChars {
			return nil
		}

		return &detector.ExtractedSection{
			Type:      kind,
			Title:     kw,
			CharIndex: byteIdx,
			Text:      body,
		}
	}
	return nil
}
