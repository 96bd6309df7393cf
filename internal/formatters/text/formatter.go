// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"shamai-scan/internal/detector"
	"shamai-scan/internal/formatters"
)

// Formatter implements human-readable text output.
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter.
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"cyan":   color.New(color.FgCyan),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

var sectionLabels = []struct {
	name string
	get  func(*detector.DocumentExtraction) *detector.ExtractedSection
}{
	{"Party A claims", func(d *detector.DocumentExtraction) *detector.ExtractedSection { return d.PartyA }},
	{"Party B claims", func(d *detector.DocumentExtraction) *detector.ExtractedSection { return d.PartyB }},
	{"Ruling", func(d *detector.DocumentExtraction) *detector.ExtractedSection { return d.Ruling }},
	{"Comparisons", func(d *detector.DocumentExtraction) *detector.ExtractedSection { return d.Comparisons }},
	{"Calculation", func(d *detector.DocumentExtraction) *detector.ExtractedSection { return d.Calculation }},
}

func (f *Formatter) Format(results []formatters.Result, options formatters.FormatterOptions) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	var sb strings.Builder
	for i, r := range results {
		if i > 0 {
			sb.WriteString("\n")
		}
		f.formatDocument(&sb, r, options)
	}
	if len(results) == 0 {
		return "No documents processed.", nil
	}
	return sb.String(), nil
}

func (f *Formatter) formatDocument(sb *strings.Builder, r formatters.Result, options formatters.FormatterOptions) {
	ext := r.Extraction
	fmt.Fprintf(sb, "%s\n", f.colors["white"].Sprintf("=== %s", ext.ID))

	for _, entry := range sectionLabels {
		sec := entry.get(ext)
		if sec == nil {
			fmt.Fprintf(sb, "  %-16s %s\n", entry.name+":", f.colors["yellow"].Sprint("not found"))
			continue
		}
		fmt.Fprintf(sb, "  %-16s %s (at %d, %d values)\n",
			entry.name+":", f.colors["cyan"].Sprint(sec.Title), sec.CharIndex, len(sec.Values))

		if options.Verbose {
			for _, v := range sec.Values {
				fmt.Fprintf(sb, "      %s  %s\n",
					f.colors["green"].Sprint(formatters.FormatAmount(v)), v.Context)
			}
		}
	}

	if options.Term != "" {
		label := fmt.Sprintf("  %-16s", "Term "+options.Term+":")
		switch {
		case r.TermValue == nil:
			fmt.Fprintf(sb, "%s %s\n", label, f.colors["yellow"].Sprint("no qualifying value"))
		case r.TermValueFromFallback:
			fmt.Fprintf(sb, "%s %s (full-document fallback, unattributed)\n",
				label, f.colors["green"].Sprint(formatters.FormatAmount(*r.TermValue)))
		default:
			fmt.Fprintf(sb, "%s %s\n", label, f.colors["green"].Sprint(formatters.FormatAmount(*r.TermValue)))
		}
	}

	fmt.Fprintf(sb, "  %-16s %d\n", "Total values:", len(ext.AllValues))
}

// Register the formatter during package initialization.
func init() {
	formatters.Register(NewFormatter())
}
