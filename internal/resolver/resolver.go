// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package resolver answers "what number goes with this concept" questions:
// given a free-text search term, it finds the qualifying numeral nearest to
// any occurrence of the term inside a section, or anywhere in the document
// as a last resort. Terms that imply a bounded domain (coefficients,
// percentages) hard-reject out-of-range numbers instead of falling back to
// an unrelated value. An empty result beats a wrong-typed one.
package resolver

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"shamai-scan/internal/detector"
	"shamai-scan/internal/numparse"
	"shamai-scan/internal/values"
)

const (
	// proximityWindow is how many runes after a term occurrence are
	// inspected for a value.
	proximityWindow = 150
	// maxOccurrences bounds the full-document scan per variant.
	maxOccurrences = 20
)

// Valid-range filters implied by a term's keywords.
var (
	coefficientRange = valueRange{min: 0.01, max: 2.5}
	percentRange     = valueRange{min: 0, max: 100}
)

type valueRange struct {
	min, max float64
}

func (r valueRange) contains(v float64) bool { return v >= r.min && v <= r.max }

// rangeForTerm returns the valid-range filter a term implies, if any.
func rangeForTerm(term string) (valueRange, bool) {
	switch {
	case strings.Contains(term, "מקדם"):
		return coefficientRange, true
	case strings.Contains(term, "אחוז"), strings.Contains(term, "שיעור"):
		return percentRange, true
	}
	return valueRange{}, false
}

// unitForTerm maps a ranged term to the unit its matches carry.
func unitForTerm(term string) string {
	switch {
	case strings.Contains(term, "מקדם"):
		return detector.UnitCoefficient
	case strings.Contains(term, "אחוז"), strings.Contains(term, "שיעור"):
		return detector.UnitPercent
	}
	return ""
}

var (
	numRe        = regexp.MustCompile(`\d+(?:[.,]\d+)*`)
	hebrewWordRe = regexp.MustCompile(`\p{Hebrew}+`)
)

// ResolveForTerm finds the value associated with searchTerm inside a
// section. An empty term returns the section's primary value. A term with an
// implied valid range returns nil when nothing in range is found; it never
// degrades to an unrelated number. CharIndex on the result is relative to
// the section text.
func ResolveForTerm(section *detector.ExtractedSection, searchTerm string) *detector.ExtractedValue {
	if section == nil {
		return nil
	}
	searchTerm = strings.TrimSpace(searchTerm)
	if searchTerm == "" {
		return PrimaryValue(section)
	}

	rng, ranged := rangeForTerm(searchTerm)
	best, found := nearestCandidate(section.Text, searchTerm, rng, ranged, -1)
	if !found {
		if ranged {
			return nil
		}
		return PrimaryValue(section)
	}
	return best.toValue(section.Text, searchTerm)
}

// ResolveFromDocument is the last-resort search across the whole normalized
// document, used when section-level resolution yielded nothing. At most
// maxOccurrences occurrences of each variant are considered. The caller
// reports the result as an unattributed ruling-bucket value, since nothing
// here can determine which party it belongs to.
func ResolveFromDocument(doc, searchTerm string) *detector.ExtractedValue {
	searchTerm = strings.TrimSpace(searchTerm)
	if searchTerm == "" {
		return nil
	}
	rng, ranged := rangeForTerm(searchTerm)
	best, found := nearestCandidate(doc, searchTerm, rng, ranged, maxOccurrences)
	if !found {
		return nil
	}
	return best.toValue(doc, searchTerm)
}

// PrimaryValue selects the most representative value of a section: the
// first currency-denominated value, else the first coefficient, else the
// first percentage, else simply the first value found.
func PrimaryValue(section *detector.ExtractedSection) *detector.ExtractedValue {
	if section == nil || len(section.Values) == 0 {
		return nil
	}
	for _, pick := range []func(detector.ExtractedValue) bool{
		func(v detector.ExtractedValue) bool { return strings.Contains(v.Unit, "₪") },
		func(v detector.ExtractedValue) bool { return v.Unit == detector.UnitCoefficient },
		func(v detector.ExtractedValue) bool { return v.Unit == detector.UnitPercent },
	} {
		for i := range section.Values {
			if pick(section.Values[i]) {
				return &section.Values[i]
			}
		}
	}
	return &section.Values[0]
}

// candidate is a qualifying numeral found after a term occurrence.
type candidate struct {
	raw      string
	numeric  float64
	start    int // byte offset in the scanned text
	end      int
	distance int // byte offset from the triggering occurrence
}

func (c candidate) toValue(text, term string) *detector.ExtractedValue {
	unit := unitForTerm(term)
	if unit == "" {
		unit = values.UnitFromContext(detector.Snippet(text, c.start, c.end))
	}
	return &detector.ExtractedValue{
		Raw:       c.raw,
		Numeric:   c.numeric,
		Unit:      unit,
		Context:   detector.Snippet(text, c.start, c.end),
		CharIndex: c.start,
	}
}

// nearestCandidate scans every occurrence of every variant of term in text
// and returns the qualifying numeral with the smallest offset from its
// triggering occurrence. occLimit < 0 means unlimited occurrences.
func nearestCandidate(text, term string, rng valueRange, ranged bool, occLimit int) (candidate, bool) {
	var best candidate
	found := false

	for _, variant := range Variants(term) {
		count := 0
		for from := 0; ; {
			idx := strings.Index(text[from:], variant)
			if idx < 0 {
				break
			}
			occEnd := from + idx + len(variant)
			if c, ok := firstQualifying(text, occEnd, rng, ranged); ok {
				if !found || c.distance < best.distance {
					best = c
					found = true
				}
			}
			from = occEnd
			count++
			if occLimit > 0 && count >= occLimit {
				break
			}
		}
	}
	return best, found
}

// firstQualifying inspects the proximity window after a term occurrence and
// returns the first numeral that survives all filters: not a date, not a
// percentage or year count, inside the valid range when one applies, and
// not preceded by three or more Hebrew words (which marks it as clause
// numbering inside running prose rather than the term's value).
func firstQualifying(text string, occEnd int, rng valueRange, ranged bool) (candidate, bool) {
	winEnd := advanceRunes(text, occEnd, proximityWindow)
	window := text[occEnd:winEnd]

	for _, loc := range numRe.FindAllStringIndex(window, -1) {
		s, e := loc[0], loc[1]
		raw := window[s:e]

		if numparse.IsDate(raw, window[e:]) {
			continue
		}
		if followedByPercentOrYears(window[e:]) {
			continue
		}
		v, ok := numparse.Parse(raw)
		if !ok || v <= 0 {
			continue
		}
		if ranged && !rng.contains(v) {
			continue
		}
		if len(hebrewWordRe.FindAllString(window[:s], -1)) >= 3 {
			continue
		}
		return candidate{
			raw:      raw,
			numeric:  v,
			start:    occEnd + s,
			end:      occEnd + e,
			distance: s,
		}, true
	}
	return candidate{}, false
}

func followedByPercentOrYears(rest string) bool {
	rest = strings.TrimLeft(rest, " ")
	return strings.HasPrefix(rest, "%") ||
		strings.HasPrefix(rest, "שנים") ||
		strings.HasPrefix(rest, "שנה")
}

// advanceRunes returns the byte offset n runes past from, clamped to the
// end of text.
func advanceRunes(text string, from, n int) int {
	to := from
	for i := 0; i < n && to < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[to:])
		to += size
	}
	return to
}
