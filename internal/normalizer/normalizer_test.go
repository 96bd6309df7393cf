// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package normalizer

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"zero width removed", "שו\u200Bמה", "שומה"},
		{"bidi marks removed", "‫היטל השבחה‬", "היטל השבחה"},
		{"rlm lrm removed", "גוש\u200F 6638\u200E", "גוש 6638"},
		{"bom removed", "\uFEFFהכרעה", "הכרעה"},
		{"gershayim to quote", "מ״ר", `מ"ר`},
		{"geresh to apostrophe", "יח׳", "יח'"},
		{"curly quotes", "“שומה”", `"שומה"`},
		{"en dash", "2019–2020", "2019-2020"},
		{"em dash", "שווי — קודם", "שווי - קודם"},
		{"crlf to lf", "שורה\r\nשורה", "שורה\nשורה"},
		{"bare cr to lf", "שורה\rשורה", "שורה\nשורה"},
		{"spaces collapse", "שווי    שוק", "שווי שוק"},
		{"tabs collapse", "שווי\t\tשוק", "שווי שוק"},
		{"nbsp collapses", "שווי שוק", "שווי שוק"},
		{"newline preserved", "כותרת:\nגוף", "כותרת:\nגוף"},
		{"space before newline dropped", "כותרת  \nגוף", "כותרת\nגוף"},
		{"leading space dropped", "   טקסט", "טקסט"},
		{"trailing whitespace trimmed", "טקסט  \n\n", "טקסט"},
		{"empty", "", ""},
		{"only controls", "\u200B\u202A\u202C", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"טענות המבקש:  שווי של 1,250,000 ש\"ח",
		"‫עמוד 1‬\r\n\r\nהכרעה   —   דיון\t\tוהחלטה",
		"plain ascii text\nwith lines",
		strings.Repeat("א‏ ב  ג\n", 50),
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
