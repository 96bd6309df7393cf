// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"shamai-scan/internal/formatters"
)

// Formatter implements CSV output formatting: one row per extracted value,
// suitable for loading into a comparison spreadsheet.
type Formatter struct{}

// NewFormatter creates a new CSV formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "CSV output, one row per extracted value"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) Format(results []formatters.Result, options formatters.FormatterOptions) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	header := []string{"document_id", "section", "section_title", "raw", "numeric", "unit", "char_index"}
	if options.Verbose {
		header = append(header, "context")
	}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("write CSV header: %w", err)
	}

	for _, r := range results {
		ext := r.Extraction
		for _, sec := range ext.Sections() {
			for _, v := range sec.Values {
				row := []string{
					ext.ID,
					string(sec.Type),
					sec.Title,
					v.Raw,
					strconv.FormatFloat(v.Numeric, 'f', -1, 64),
					v.Unit,
					strconv.Itoa(v.CharIndex),
				}
				if options.Verbose {
					row = append(row, v.Context)
				}
				if err := w.Write(row); err != nil {
					return "", fmt.Errorf("write CSV row: %w", err)
				}
			}
		}
		if r.TermValue != nil {
			bucket := "term"
			if r.TermValueFromFallback {
				bucket = "term_fallback"
			}
			row := []string{
				ext.ID,
				bucket,
				options.Term,
				r.TermValue.Raw,
				strconv.FormatFloat(r.TermValue.Numeric, 'f', -1, 64),
				r.TermValue.Unit,
				strconv.Itoa(r.TermValue.CharIndex),
			}
			if options.Verbose {
				row = append(row, r.TermValue.Context)
			}
			if err := w.Write(row); err != nil {
				return "", fmt.Errorf("write CSV row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush CSV: %w", err)
	}
	return sb.String(), nil
}

// Register the formatter during package initialization.
func init() {
	formatters.Register(NewFormatter())
}
