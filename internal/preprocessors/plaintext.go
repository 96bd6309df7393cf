// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"fmt"
	"os"
)

// PlainTextPreprocessor passes .txt/.md files through as-is. Normalization
// happens inside the engine, not here.
type PlainTextPreprocessor struct{}

// NewPlainTextPreprocessor creates a plain text preprocessor.
func NewPlainTextPreprocessor() *PlainTextPreprocessor {
	return &PlainTextPreprocessor{}
}

func (p *PlainTextPreprocessor) Name() string { return "plaintext" }

func (p *PlainTextPreprocessor) CanProcess(path string) bool {
	return hasExt(path, ".txt", ".text", ".md")
}

func (p *PlainTextPreprocessor) Process(path string) (*ProcessedContent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &ProcessedContent{
		OriginalPath: path,
		Format:       "text",
		Text:         string(data),
	}, nil
}
