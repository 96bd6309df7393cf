// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"reflect"
	"strings"
	"testing"

	"shamai-scan/internal/detector"
)

func TestVariants(t *testing.T) {
	tests := []struct {
		term string
		want []string
	}{
		{
			// The truncated variant strips the longest suffix, so the
			// stem of a word ending in the full double-yod form keeps
			// matching both spellings as a prefix.
			"מקדם דחייה",
			[]string{"מקדם דחייה", "מקדם דחיה", "מקדם דח", "מקדם הדחייה"},
		},
		{
			"מקדם דחיה",
			[]string{"מקדם דחיה", "מקדם דחייה", "מקדם דח", "מקדם הדחיה"},
		},
		{
			// Last word already carries the definite article.
			"מקדם ההפחתה",
			[]string{"מקדם ההפחתה", "מקדם ההפחת"},
		},
		{
			// Single word: no truncation or article variants.
			"תחשיב",
			[]string{"תחשיב"},
		},
		{
			"  שווי שוק ", // trimmed
			[]string{"שווי שוק", "שווי השוק"},
		},
		{
			"",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got := Variants(tt.term)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Variants(%q) = %q, want %q", tt.term, got, tt.want)
			}
		})
	}
}

func section(text string, vals ...detector.ExtractedValue) *detector.ExtractedSection {
	return &detector.ExtractedSection{
		Type:   detector.KindRuling,
		Title:  "דיון והכרעה",
		Text:   text,
		Values: vals,
	}
}

func TestResolveForTermCoefficient(t *testing.T) {
	sec := section("בנסיבות אלה יש להחיל מקדם דחייה: 0.85 על שווי המקרקעין במצב קודם")

	got := ResolveForTerm(sec, "מקדם דחייה")
	if got == nil {
		t.Fatal("no value resolved")
	}
	if got.Numeric != 0.85 {
		t.Errorf("numeric = %v, want 0.85", got.Numeric)
	}
	if got.Unit != detector.UnitCoefficient {
		t.Errorf("unit = %q, want %q", got.Unit, detector.UnitCoefficient)
	}
	if want := strings.Index(sec.Text, "0.85"); got.CharIndex != want {
		t.Errorf("charIndex = %d, want %d", got.CharIndex, want)
	}
}

// A variant spelling in the text still resolves.
func TestResolveForTermVariantSpelling(t *testing.T) {
	sec := section("נקבע כי מקדם הדחייה הראוי הינו 0,9 בהתחשב בלוחות הזמנים")

	got := ResolveForTerm(sec, "מקדם דחייה")
	if got == nil {
		t.Fatal("no value resolved")
	}
	if got.Numeric != 0.9 {
		t.Errorf("numeric = %v, want 0.9", got.Numeric)
	}
}

// Ranged terms never degrade to an out-of-range or unrelated number.
func TestResolveForTermRangedMiss(t *testing.T) {
	tests := []struct {
		name string
		text string
		term string
	}{
		{
			"coefficient out of range",
			`מקדם דחייה: 150 ש"ח כפי שנרשם בטעות`,
			"מקדם דחייה",
		},
		{
			"percent out of range",
			"שיעור ההשבחה הוא 450 בשל שגגה בתחשיב",
			"שיעור",
		},
		{
			"term absent",
			`שווי הנכס הוערך בסך 1,250,000 ש"ח`,
			"מקדם דחייה",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sec := section(tt.text, detector.ExtractedValue{Raw: "1,250,000", Numeric: 1250000, Unit: detector.UnitShekel})
			if got := ResolveForTerm(sec, tt.term); got != nil {
				t.Errorf("resolved %v, want nil", got.Numeric)
			}
		})
	}
}

// An unranged term that misses falls back to the section's primary value.
func TestResolveForTermUnrangedFallsBack(t *testing.T) {
	primary := detector.ExtractedValue{Raw: "2,400,000", Numeric: 2400000, Unit: detector.UnitShekel}
	sec := section("אין בסעיף זה כל אזכור של המונח המבוקש", primary)

	got := ResolveForTerm(sec, "שווי שוק")
	if got == nil {
		t.Fatal("expected primary-value fallback")
	}
	if got.Numeric != primary.Numeric {
		t.Errorf("numeric = %v, want %v", got.Numeric, primary.Numeric)
	}
}

func TestResolveForTermEmptyTermIsPrimary(t *testing.T) {
	vals := []detector.ExtractedValue{
		{Raw: "15", Numeric: 15, Unit: detector.UnitPercent},
		{Raw: "575,000", Numeric: 575000, Unit: detector.UnitShekel},
	}
	sec := section("טקסט כלשהו", vals...)

	got := ResolveForTerm(sec, "")
	if got == nil {
		t.Fatal("no primary value")
	}
	// Currency outranks percent regardless of order.
	if got.Numeric != 575000 {
		t.Errorf("numeric = %v, want 575000", got.Numeric)
	}
}

func TestResolveForTermFilters(t *testing.T) {
	tests := []struct {
		name string
		text string
		term string
		want float64 // 0 means expect nil
	}{
		{
			"date skipped then value taken",
			"מקדם דחייה מיום 15.04.2019 בגובה 0.85",
			"מקדם דחייה",
			0.85,
		},
		{
			"years count skipped",
			"מקדם דחייה בגין 5 שנים: 0.8 כמקובל",
			"מקדם דחייה",
			0.8,
		},
		{
			"numeral beyond window ignored",
			"מקדם דחייה " + strings.Repeat("א ", 120) + "ואז 0.85",
			"מקדם דחייה",
			0,
		},
		{
			"three hebrew words before numeral reject",
			"מקדם דחייה כמקובל בשומות מכריעות נוספות 0.85",
			"מקדם דחייה",
			0,
		},
		{
			"two hebrew words before numeral accept",
			"מקדם דחייה הראוי הינו 0.85",
			"מקדם דחייה",
			0.85,
		},
		{
			"percent term with spelled out unit",
			"שיעור ההשבחה הוא 15 אחוז מהשווי במצב קודם",
			"שיעור",
			15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveForTerm(section(tt.text), tt.term)
			if tt.want == 0 {
				if got != nil {
					t.Errorf("resolved %v, want nil", got.Numeric)
				}
				return
			}
			if got == nil {
				t.Fatalf("no value resolved, want %v", tt.want)
			}
			if got.Numeric != tt.want {
				t.Errorf("numeric = %v, want %v", got.Numeric, tt.want)
			}
		})
	}
}

// The occurrence whose numeral is closest wins, not the first occurrence.
func TestResolveForTermNearestWins(t *testing.T) {
	text := "מקדם דחייה ראשוני 0.6 נקבע תחילה ובהמשך מקדם דחייה: 0.7 כמקובל"
	got := ResolveForTerm(section(text), "מקדם דחייה")
	if got == nil {
		t.Fatal("no value resolved")
	}
	if got.Numeric != 0.7 {
		t.Errorf("numeric = %v, want 0.7", got.Numeric)
	}
}

func TestResolveFromDocument(t *testing.T) {
	doc := "פתיח ארוך של מסמך ללא סעיפים מובנים. " +
		"בהמשך הדברים נקבע מקדם הפחתה 0,8 בגין מושע. " +
		"ושאר הטקסט ממשיך כרגיל."

	got := ResolveFromDocument(doc, "מקדם הפחתה")
	if got == nil {
		t.Fatal("no value resolved")
	}
	if got.Numeric != 0.8 {
		t.Errorf("numeric = %v, want 0.8", got.Numeric)
	}
	if got.Unit != detector.UnitCoefficient {
		t.Errorf("unit = %q", got.Unit)
	}

	if v := ResolveFromDocument(doc, "מקדם היוון"); v != nil {
		t.Errorf("resolved %v for absent term, want nil", v.Numeric)
	}
	if v := ResolveFromDocument(doc, ""); v != nil {
		t.Error("empty term should resolve to nil at document level")
	}
}

func TestPrimaryValue(t *testing.T) {
	pct := detector.ExtractedValue{Raw: "15", Numeric: 15, Unit: detector.UnitPercent}
	coef := detector.ExtractedValue{Raw: "0.85", Numeric: 0.85, Unit: detector.UnitCoefficient}
	ils := detector.ExtractedValue{Raw: "575,000", Numeric: 575000, Unit: detector.UnitShekel}
	perSqm := detector.ExtractedValue{Raw: "9,500", Numeric: 9500, Unit: detector.UnitShekelPerSqm}

	tests := []struct {
		name string
		vals []detector.ExtractedValue
		want float64
	}{
		{"currency beats coefficient and percent", []detector.ExtractedValue{pct, coef, ils}, 575000},
		{"per sqm counts as currency", []detector.ExtractedValue{pct, perSqm}, 9500},
		{"coefficient beats percent", []detector.ExtractedValue{pct, coef}, 0.85},
		{"percent alone", []detector.ExtractedValue{pct}, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PrimaryValue(section("", tt.vals...))
			if got == nil {
				t.Fatal("no primary value")
			}
			if got.Numeric != tt.want {
				t.Errorf("numeric = %v, want %v", got.Numeric, tt.want)
			}
		})
	}

	if PrimaryValue(nil) != nil {
		t.Error("nil section should have no primary value")
	}
	if PrimaryValue(section("ללא ערכים")) != nil {
		t.Error("empty section should have no primary value")
	}
}
