// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package sections locates the structural regions of a decisive-appraiser
// decision: each party's claims, the ruling, comparison transactions, and
// the betterment calculation. Decisions have no fixed heading taxonomy, so
// a section's end is inferred from wherever the next known header of ANY
// kind appears, not from per-kind structure.
package sections

import (
	"regexp"
	"strings"

	"shamai-scan/internal/detector"
)

// headerPattern wraps one header phrase with the anchoring a real heading
// needs: a line start (or double-space boundary standing in for a missing
// newline), an optional numbering token (1. / 1.2.3 / א. / (ב) / (4)), an
// optional bullet or dash, and up to three extra Hebrew/quote words, so
// a list entry for "טענות הצדדים" also matches "עיקרי טענות הצדדים". The
// phrase itself is the single capture group; it may be followed by a colon
// or period.
const (
	headerAnchor = `(?:^|\n|  )[ \t]*` +
		`(?:\d+(?:\.\d+)*\.?[ \t]+|[א-ת][.)'][ \t]+|\((?:\d+|[א-ת])\)[ \t]+)?` +
		`(?:[-*•][ \t]*)?` +
		`(?:["'\p{Hebrew}]+ ){0,3}`
	headerTrailer = `[ \t]*[:.]?`
)

type headerPattern struct {
	kind   detector.SectionKind
	phrase string
	re     *regexp.Regexp
}

func compileHeader(kind detector.SectionKind, phrase string) headerPattern {
	return headerPattern{
		kind:   kind,
		phrase: phrase,
		re:     regexp.MustCompile(headerAnchor + "(" + regexp.QuoteMeta(phrase) + ")" + headerTrailer),
	}
}

// Locator finds sections by priority-ordered header phrases with a shared
// global boundary scan. It is immutable after construction and safe for
// concurrent use.
type Locator struct {
	byKind    map[detector.SectionKind][]headerPattern
	all       []headerPattern // every phrase of every kind, for boundary detection
	fallbacks map[detector.SectionKind][]string
}

// NewLocator returns a Locator with the built-in phrase tables, extended by
// any extra phrases or fallback keywords. Extra entries are appended after
// the built-ins and therefore have lower priority.
func NewLocator(extraPhrases map[detector.SectionKind][]string, extraFallbacks map[detector.SectionKind][]string) *Locator {
	l := &Locator{
		byKind:    make(map[detector.SectionKind][]headerPattern),
		fallbacks: make(map[detector.SectionKind][]string),
	}
	for _, kind := range []detector.SectionKind{
		detector.KindPartyA, detector.KindPartyB, detector.KindPartiesClaims,
		detector.KindRuling, detector.KindComparisons, detector.KindCalculation,
	} {
		phrases := append(append([]string{}, defaultPhrases[kind]...), extraPhrases[kind]...)
		for _, p := range phrases {
			hp := compileHeader(kind, p)
			l.byKind[kind] = append(l.byKind[kind], hp)
			l.all = append(l.all, hp)
		}
		l.fallbacks[kind] = append(append([]string{}, defaultFallbacks[kind]...), extraFallbacks[kind]...)
	}
	return l
}

// FindSection locates the section of the given kind in normalized document
// text. Returns nil when no header phrase matches or the resulting body is
// too short to be a section. Values are not populated here.
func (l *Locator) FindSection(doc string, kind detector.SectionKind) *detector.ExtractedSection {
	for _, hp := range l.byKind[kind] {
		loc := hp.re.FindStringSubmatchIndex(doc)
		if loc == nil {
			continue
		}
		matchEnd := loc[1]
		phraseStart := loc[2]

		end := l.nextHeaderIndex(doc, matchEnd)
		if end < 0 {
			end = len(doc)
		}

		body := strings.TrimSpace(doc[matchEnd:end])
		body = truncateRunes(body, detector.MaxSectionChars)
		if len([]rune(body)) < detector.MinSectionChars {
			return nil
		}

		return &detector.ExtractedSection{
			Type:      kind,
			Title:     hp.phrase,
			Text:      body,
			CharIndex: phraseStart,
		}
	}
	return nil
}

// nextHeaderIndex returns the start of the nearest header match of any kind
// at or after from, or -1. The start is the anchored match start, so the
// preceding newline and numbering are excluded from the current section by
// the caller's trim.
func (l *Locator) nextHeaderIndex(doc string, from int) int {
	if from >= len(doc) {
		return -1
	}
	rest := doc[from:]
	best := -1
	for _, hp := range l.all {
		loc := hp.re.FindStringIndex(rest)
		if loc == nil {
			continue
		}
		if best < 0 || loc[0] < best {
			best = loc[0]
		}
	}
	if best < 0 {
		return -1
	}
	return from + best
}

// AllHeaderIndex exposes the global next-header scan for callers that slice
// windows out of the document and need to stop them at a known heading.
func (l *Locator) AllHeaderIndex(doc string, from int) int {
	return l.nextHeaderIndex(doc, from)
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
