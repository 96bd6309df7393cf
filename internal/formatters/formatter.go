// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"fmt"
	"math"
	"strings"

	"shamai-scan/internal/detector"
)

// FormatterOptions defines configuration options for formatters.
type FormatterOptions struct {
	Verbose bool   // include section bodies and value contexts
	NoColor bool   // disable colored output
	Term    string // search term whose resolved values accompany the results
}

// Result pairs one document's extraction with its term-resolved value.
type Result struct {
	Extraction *detector.DocumentExtraction
	// TermValue is the value resolved for FormatterOptions.Term, nil when
	// no term was given or nothing qualified.
	TermValue *detector.ExtractedValue
	// TermValueFromFallback marks TermValue as coming from the
	// full-document search, i.e. unattributed (ruling bucket).
	TermValueFromFallback bool
}

// Formatter is an output format for extraction results.
type Formatter interface {
	Format(results []Result, options FormatterOptions) (string, error)
	Name() string
	Description() string
	FileExtension() string
}

// Registry holds all registered formatters.
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates a new formatter registry.
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[string]Formatter)}
}

// Register adds a formatter to the registry.
func (r *Registry) Register(formatter Formatter) {
	r.formatters[formatter.Name()] = formatter
}

// Get retrieves a formatter by name.
func (r *Registry) Get(name string) (Formatter, bool) {
	formatter, exists := r.formatters[name]
	return formatter, exists
}

// List returns all registered formatter names.
func (r *Registry) List() []string {
	var names []string
	for name := range r.formatters {
		names = append(names, name)
	}
	return names
}

// DefaultRegistry is the global formatter registry.
var DefaultRegistry = NewRegistry()

// Register adds a formatter to the default registry.
func Register(formatter Formatter) {
	DefaultRegistry.Register(formatter)
}

// Get retrieves a formatter from the default registry.
func Get(name string) (Formatter, bool) {
	return DefaultRegistry.Get(name)
}

// List lists all formatters in the default registry.
func List() []string {
	return DefaultRegistry.List()
}

// Export formats results with the named formatter.
func Export(format string, results []Result, options FormatterOptions) (string, error) {
	formatter, exists := Get(format)
	if !exists {
		return "", fmt.Errorf("unsupported format %q. Available formats: %s", format, strings.Join(List(), ", "))
	}
	return formatter.Format(results, options)
}

// FormatAmount renders a numeric value with thousands separators and the
// unit suffix table used across output formats: "1,250,000 ₪/מ\"ר".
func FormatAmount(v detector.ExtractedValue) string {
	s := formatNumber(v.Numeric)
	if v.Unit == detector.UnitNone {
		return s
	}
	return s + " " + v.Unit
}

func formatNumber(n float64) string {
	// Round to two decimals up front so a fractional carry (2.999)
	// propagates into the whole part instead of being dropped.
	n = math.Round(n*100) / 100
	whole := int64(n)
	frac := n - float64(whole)

	digits := fmt.Sprintf("%d", whole)
	var sb strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(d)
	}
	if frac > 1e-9 {
		dec := strings.TrimRight(fmt.Sprintf("%.2f", frac)[2:], "0")
		if dec != "" {
			sb.WriteByte('.')
			sb.WriteString(dec)
		}
	}
	return sb.String()
}
