// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package preprocessors turns local document files into the plain text the
// extraction engine consumes. This is the thin input shim for the CLI; the
// full download/cache pipeline lives with external collaborators.
package preprocessors

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ProcessedContent is the plain-text result of preprocessing one file.
type ProcessedContent struct {
	OriginalPath string
	Format       string
	Text         string
	PageCount    int // PDF only; 0 otherwise
}

// Preprocessor extracts plain text from one family of file formats.
type Preprocessor interface {
	Name() string
	CanProcess(path string) bool
	Process(path string) (*ProcessedContent, error)
}

// Chain routes a file to the first preprocessor that can handle it.
type Chain struct {
	preprocessors []Preprocessor
}

// DefaultChain returns a chain with the built-in preprocessors: plain text
// and PDF.
func DefaultChain() *Chain {
	return &Chain{preprocessors: []Preprocessor{
		NewPlainTextPreprocessor(),
		NewPDFPreprocessor(),
	}}
}

// CanProcess reports whether any preprocessor handles the file.
func (c *Chain) CanProcess(path string) bool {
	for _, p := range c.preprocessors {
		if p.CanProcess(path) {
			return true
		}
	}
	return false
}

// Process extracts text from the file using the first matching
// preprocessor.
func (c *Chain) Process(path string) (*ProcessedContent, error) {
	for _, p := range c.preprocessors {
		if p.CanProcess(path) {
			return p.Process(path)
		}
	}
	return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
}

func hasExt(path string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
