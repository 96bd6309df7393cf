// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package numparse converts raw numeral substrings from Hebrew legal text
// into numeric values. Commas are ambiguous in this document family: OCR
// output uses them both as thousands separators ("1,250,000") and as the
// decimal mark in coefficients ("0,85").
package numparse

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	thousandsGrouped = regexp.MustCompile(`^\d{1,3}(?:,\d{3})+(?:\.\d+)?$`)
	decimalComma     = regexp.MustCompile(`^\d+,\d{1,2}$`)
	dateShaped       = regexp.MustCompile(`^\d{1,2}\.\d{1,2}\.\d{2,4}$`)
	yearAfterDot     = regexp.MustCompile(`^\.(?:19|20)\d{2}`)
)

// Parse converts a raw digit-group token into a value.
//
// Rules, in order: a token whose commas separate groups of exactly three
// digits is thousands-grouped; a token of the form "digits,digit{1,2}" with
// no grouping is a decimal comma; anything else has its commas stripped and
// is parsed as a plain decimal. Returns (0, false) for any token that does
// not yield a finite number.
func Parse(raw string) (float64, bool) {
	tok := strings.TrimSpace(raw)
	if tok == "" {
		return 0, false
	}

	switch {
	case thousandsGrouped.MatchString(tok):
		tok = strings.ReplaceAll(tok, ",", "")
	case decimalComma.MatchString(tok):
		tok = strings.Replace(tok, ",", ".", 1)
	default:
		tok = strings.ReplaceAll(tok, ",", "")
	}

	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// IsDate reports whether the numeral at raw looks like a date rather than a
// value: either the token itself is DD.MM.YYYY-shaped, or the text directly
// following it continues into a 4-digit year (".2019").
func IsDate(raw, following string) bool {
	if dateShaped.MatchString(raw) {
		return true
	}
	return yearAfterDot.MatchString(following)
}
