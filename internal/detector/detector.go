// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

// SectionKind identifies the structural role of a region of decision text.
type SectionKind string

const (
	KindPartyA        SectionKind = "partyA"        // claims of the applicant / appellant
	KindPartyB        SectionKind = "partyB"        // claims of the local planning committee
	KindPartiesClaims SectionKind = "partiesClaims" // combined claims section
	KindRuling        SectionKind = "ruling"        // the decisive appraiser's ruling
	KindComparisons   SectionKind = "comparisons"   // comparison transactions survey
	KindCalculation   SectionKind = "calculation"   // betterment levy calculation
)

// Unit labels attached to extracted values. Inferred from the text
// surrounding a match, never from the numeral itself.
const (
	UnitShekelPerSqm   = `₪/מ"ר`
	UnitShekelPerDunam = "₪/דונם"
	UnitShekelPerUnit  = "₪/יח'"
	UnitShekel         = "₪"
	UnitPercent        = "%"
	UnitCoefficient    = "מקדם"
	UnitNone           = ""
)

// ExtractedValue is a single numeric fact located in decision text.
type ExtractedValue struct {
	// Raw is the exact numeral substring as matched, separators included.
	Raw string `json:"raw"`
	// Numeric is the parsed value. Always > 0; non-positive and unparsable
	// matches are discarded during scanning, never stored.
	Numeric float64 `json:"numeric"`
	// Unit is one of the Unit* labels, or UnitNone.
	Unit string `json:"unit,omitempty"`
	// Context is a whitespace-collapsed snippet around the match.
	Context string `json:"context"`
	// CharIndex is the offset of the match in the normalized document.
	// -1 when the value came from a fallback search that could not
	// relocate its origin.
	CharIndex int `json:"char_index"`
}

// ExtractedSection is a located structural region of a decision.
type ExtractedSection struct {
	Type SectionKind `json:"type"`
	// Title is the literal header phrase (or fallback keyword) that matched.
	Title string `json:"title"`
	// Text is the section body, trimmed, at most MaxSectionChars characters.
	Text string `json:"text"`
	// CharIndex is the offset of the header match in the normalized document.
	CharIndex int `json:"char_index"`
	// Values are the numeric facts found inside Text, in match order.
	Values []ExtractedValue `json:"values"`
}

// DocumentExtraction is the full structured result for one source document.
// A nil section is a valid terminal state, not an error.
type DocumentExtraction struct {
	ID          string            `json:"id"`
	PartyA      *ExtractedSection `json:"party_a,omitempty"`
	PartyB      *ExtractedSection `json:"party_b,omitempty"`
	Ruling      *ExtractedSection `json:"ruling,omitempty"`
	Comparisons *ExtractedSection `json:"comparisons,omitempty"`
	Calculation *ExtractedSection `json:"calculation,omitempty"`
	// AllValues holds every value found across sections plus any full-text
	// fallback values, deduplicated by (numeric, char index).
	AllValues []ExtractedValue `json:"all_values"`
}

// Sections returns the non-nil sections in document order of the fields.
func (d *DocumentExtraction) Sections() []*ExtractedSection {
	var out []*ExtractedSection
	for _, s := range []*ExtractedSection{d.PartyA, d.PartyB, d.Ruling, d.Comparisons, d.Calculation} {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

// Limits shared across the extraction pipeline.
const (
	// MaxSectionChars caps the body stored for a located section.
	MaxSectionChars = 8000
	// MinSectionChars rejects header matches followed by almost no body.
	MinSectionChars = 20
	// MinFallbackChars rejects keyword-fallback windows that are all noise.
	MinFallbackChars = 30
	// MinDocumentRunes short-circuits extraction for degenerate input.
	MinDocumentRunes = 100
)
