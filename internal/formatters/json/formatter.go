// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"shamai-scan/internal/detector"
	"shamai-scan/internal/formatters"
)

// Formatter implements JSON output formatting.
type Formatter struct{}

// NewFormatter creates a new JSON formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON output for programmatic consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

// document is the wire shape for one extraction result.
type document struct {
	*detector.DocumentExtraction
	TermValue     *detector.ExtractedValue `json:"term_value,omitempty"`
	TermValueFrom string                   `json:"term_value_from,omitempty"` // "section" or "document"
}

func (f *Formatter) Format(results []formatters.Result, options formatters.FormatterOptions) (string, error) {
	docs := make([]document, 0, len(results))
	for _, r := range results {
		d := document{DocumentExtraction: r.Extraction, TermValue: r.TermValue}
		if r.TermValue != nil {
			d.TermValueFrom = "section"
			if r.TermValueFromFallback {
				d.TermValueFrom = "document"
			}
		}
		docs = append(docs, d)
	}

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal results: %w", err)
	}
	return string(data), nil
}

// Register the formatter during package initialization.
func init() {
	formatters.Register(NewFormatter())
}
