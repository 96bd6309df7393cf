// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package core wires the extraction pipeline together: normalize, locate
// sections, extract values, fall back to keyword windows for missing kinds.
// The engine is pure computation over in-memory text, with no I/O and no
// retained state, so one Engine may serve any number of goroutines.
package core

import (
	"strings"
	"unicode/utf8"

	"shamai-scan/internal/detector"
	"shamai-scan/internal/normalizer"
	"shamai-scan/internal/resolver"
	"shamai-scan/internal/sections"
	"shamai-scan/internal/values"
)

// Engine runs full-document extraction.
type Engine struct {
	locator *sections.Locator
}

// New returns an Engine using the given locator. A nil locator gets the
// built-in phrase tables.
func New(locator *sections.Locator) *Engine {
	if locator == nil {
		locator = sections.NewLocator(nil, nil)
	}
	return &Engine{locator: locator}
}

// Extract turns raw document text into a structured DocumentExtraction.
// The id is opaque and passed through unchanged. Extraction never fails:
// missing sections stay nil, degenerate input (under 100 runes after
// normalization) short-circuits to an empty result, and no input panics.
func (e *Engine) Extract(id, raw string) *detector.DocumentExtraction {
	doc := normalizer.Normalize(raw)

	out := &detector.DocumentExtraction{ID: id}
	if utf8.RuneCountInString(doc) < detector.MinDocumentRunes {
		return out
	}

	out.PartyA = e.locator.FindSection(doc, detector.KindPartyA)
	out.PartyB = e.locator.FindSection(doc, detector.KindPartyB)
	if out.PartyA == nil && out.PartyB == nil {
		// No party-specific headers; many decisions fold both parties
		// into a single combined claims section. It lands in the PartyA
		// slot with its own type so callers can tell the difference.
		out.PartyA = e.locator.FindSection(doc, detector.KindPartiesClaims)
	}
	out.Ruling = e.locator.FindSection(doc, detector.KindRuling)
	out.Comparisons = e.locator.FindSection(doc, detector.KindComparisons)
	out.Calculation = e.locator.FindSection(doc, detector.KindCalculation)

	// Keyword fallback for kinds the header search missed.
	if out.PartyA == nil {
		out.PartyA = e.locator.FindKeywordFallback(doc, detector.KindPartyA)
	}
	if out.PartyB == nil {
		out.PartyB = e.locator.FindKeywordFallback(doc, detector.KindPartyB)
	}
	if out.Ruling == nil {
		out.Ruling = e.locator.FindKeywordFallback(doc, detector.KindRuling)
	}
	if out.Comparisons == nil {
		out.Comparisons = e.locator.FindKeywordFallback(doc, detector.KindComparisons)
	}
	if out.Calculation == nil {
		out.Calculation = e.locator.FindKeywordFallback(doc, detector.KindCalculation)
	}

	for _, sec := range out.Sections() {
		if base := bodyOffset(doc, sec); base >= 0 {
			sec.Values = values.Extract(sec.Text, base)
		} else {
			sec.Values = values.Extract(sec.Text, 0)
			for i := range sec.Values {
				sec.Values[i].CharIndex = -1
			}
		}
		out.AllValues = append(out.AllValues, sec.Values...)
	}
	out.AllValues = dedupe(out.AllValues)

	return out
}

// ResolveTerm resolves a search term against an extraction, preferring the
// sections where appraisal values actually live (calculation, ruling,
// comparisons, then the parties' claims) and finally the whole document.
// doc must be the normalized text the extraction came from. The second
// return is true when the value came from the full-document search, which
// means it is unattributed and callers report it in the ruling bucket. A
// full-document hit is also appended to the extraction's AllValues.
func (e *Engine) ResolveTerm(ext *detector.DocumentExtraction, doc, term string) (*detector.ExtractedValue, bool) {
	if ext == nil || strings.TrimSpace(term) == "" {
		return nil, false
	}
	for _, sec := range []*detector.ExtractedSection{
		ext.Calculation, ext.Ruling, ext.Comparisons, ext.PartyA, ext.PartyB,
	} {
		if sec == nil {
			continue
		}
		if v := resolver.ResolveForTerm(sec, term); v != nil {
			return v, false
		}
	}
	v := resolver.ResolveFromDocument(doc, term)
	if v != nil {
		ext.AllValues = dedupe(append(ext.AllValues, *v))
	}
	return v, v != nil
}

// bodyOffset relocates a section body inside the normalized document so
// value offsets can be document-absolute. Returns -1 when the body cannot
// be relocated; values then carry CharIndex -1.
func bodyOffset(doc string, sec *detector.ExtractedSection) int {
	// Keyword-fallback windows start before the marker, so search from the
	// top rather than from the marker offset.
	return strings.Index(doc, sec.Text)
}

func dedupe(vals []detector.ExtractedValue) []detector.ExtractedValue {
	type key struct {
		numeric float64
		pos     int
	}
	seen := make(map[key]bool, len(vals))
	out := vals[:0]
	for _, v := range vals {
		k := key{v.Numeric, v.CharIndex}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, v)
	}
	return out
}
