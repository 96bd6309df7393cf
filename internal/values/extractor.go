// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package values scans located section text for monetary amounts,
// percentages, and appraisal coefficients. Matching is pattern-driven and
// best-effort: anything date-shaped, non-positive, or unparsable is skipped
// silently rather than reported.
package values

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"shamai-scan/internal/detector"
	"shamai-scan/internal/numparse"
)

// num is the shared numeral shape: digit groups joined by comma or period,
// covering "1,250,000", "1,200.50", "0.85" and the OCR decimal comma "0,85".
const num = `\d+(?:[.,]\d+)*`

// valuePatterns are applied in sequence over section text. Each pattern's
// first capture group is the numeral. Earlier patterns carry more precise
// phrasing; deduplication by (numeric, position) keeps the first hit.
var valuePatterns = []*regexp.Regexp{
	// amount, currency, per-unit phrasing: 1,200 ש"ח למ"ר
	regexp.MustCompile(`(` + num + `)\s*(?:₪|ש"ח)\s*ל(?:מ"ר|דונם|יח')`),
	// currency symbol then amount: ₪ 1,250,000
	regexp.MustCompile(`(?:₪|ש"ח)\s*-?\s*(` + num + `)`),
	// amount then currency symbol: 1,250,000 ₪
	regexp.MustCompile(`(` + num + `)\s*(?:₪|ש"ח)`),
	// labeled coefficient with a comma- or point-decimal: מקדם דחייה: 0.85
	regexp.MustCompile(`מקדם(?:\s+["'\p{Hebrew}]+){0,3}\s*[:\-]?\s*(\d+[.,]\d{1,3})`),
	// percentage: 15% / 15 אחוז
	regexp.MustCompile(`(` + num + `)\s*(?:%|אחוז)`),
	// amount directly followed by a per-unit suffix: 1,200 למ"ר
	regexp.MustCompile(`(` + num + `)\s*ל(?:מ"ר|דונם|יח')`),
}

// unitWindow is how far unit inference looks around a numeral, in runes.
const unitWindow = 40

// Extract scans sectionText and returns every distinct numeric value found,
// in match order. base is the offset of sectionText within the normalized
// document and is added to each value's CharIndex.
func Extract(sectionText string, base int) []detector.ExtractedValue {
	var out []detector.ExtractedValue
	seen := make(map[valueKey]bool)

	for _, pat := range valuePatterns {
		for _, loc := range pat.FindAllStringSubmatchIndex(sectionText, -1) {
			s, e := loc[2], loc[3]
			if s < 0 {
				continue
			}
			raw := sectionText[s:e]
			if numparse.IsDate(raw, sectionText[e:]) {
				continue
			}
			v, ok := numparse.Parse(raw)
			if !ok || v <= 0 {
				continue
			}
			key := valueKey{numeric: v, pos: s}
			if seen[key] {
				continue
			}
			seen[key] = true

			out = append(out, detector.ExtractedValue{
				Raw:       raw,
				Numeric:   v,
				Unit:      UnitFromContext(window(sectionText, s, e, unitWindow)),
				Context:   detector.Snippet(sectionText, s, e),
				CharIndex: base + s,
			})
		}
	}
	return out
}

type valueKey struct {
	numeric float64
	pos     int
}

// UnitFromContext infers a unit label from the text surrounding a numeral
// using substring tests, checked in priority order: per-dunam beats per-sqm
// beats per-unit beats percent beats coefficient beats bare currency.
func UnitFromContext(window string) string {
	switch {
	case strings.Contains(window, "דונם"):
		return detector.UnitShekelPerDunam
	case strings.Contains(window, `מ"ר`), strings.Contains(window, "מ'ר"):
		return detector.UnitShekelPerSqm
	case strings.Contains(window, "יח'"), strings.Contains(window, `יח"ד`):
		return detector.UnitShekelPerUnit
	case strings.Contains(window, "%"), strings.Contains(window, "אחוז"):
		return detector.UnitPercent
	case strings.Contains(window, "מקדם"):
		return detector.UnitCoefficient
	case strings.Contains(window, "₪"), strings.Contains(window, `ש"ח`):
		return detector.UnitShekel
	}
	return detector.UnitNone
}

// window returns the text up to n runes before byte offset s and after byte
// offset e, snapped to rune boundaries.
func window(text string, s, e, n int) string {
	from := s
	for i := 0; i < n && from > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(text[:from])
		from -= size
	}
	to := e
	for i := 0; i < n && to < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[to:])
		to += size
	}
	return text[from:to]
}
