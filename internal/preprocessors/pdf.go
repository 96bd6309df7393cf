// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// maxPDFPages bounds extraction work for pathological documents. Decisive
// appraiser decisions run 5-40 pages.
const maxPDFPages = 200

// PDFPreprocessor extracts text from PDF decisions. The file is validated
// with pdfcpu first so corrupt downloads fail with a clear error instead of
// producing garbage text, then text is pulled page by page with
// ledongthuc/pdf using row-based positioning.
type PDFPreprocessor struct {
	conf *model.Configuration
}

// NewPDFPreprocessor creates a PDF preprocessor with relaxed validation
// (scanned municipal PDFs are rarely strictly conformant).
func NewPDFPreprocessor() *PDFPreprocessor {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &PDFPreprocessor{conf: conf}
}

func (p *PDFPreprocessor) Name() string { return "pdf" }

func (p *PDFPreprocessor) CanProcess(path string) bool {
	return hasExt(path, ".pdf")
}

// Process validates the PDF and extracts its text content.
func (p *PDFPreprocessor) Process(path string) (*ProcessedContent, error) {
	if err := api.ValidateFile(path, p.conf); err != nil {
		return nil, fmt.Errorf("invalid PDF %s: %w", path, err)
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open PDF %s: %w", path, err)
	}
	defer f.Close()

	pages := r.NumPage()
	if pages > maxPDFPages {
		pages = maxPDFPages
	}

	var buf bytes.Buffer
	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := pageText(page)
		if err != nil || strings.TrimSpace(text) == "" {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(text)
	}

	return &ProcessedContent{
		OriginalPath: path,
		Format:       "pdf",
		Text:         buf.String(),
		PageCount:    r.NumPage(),
	}, nil
}

// pageText extracts one page, preferring row-based extraction for better
// spacing and falling back to the plain text stream.
func pageText(p pdf.Page) (string, error) {
	rows, err := p.GetTextByRow()
	if err != nil {
		return p.GetPlainText(nil)
	}

	sorted := make([]*pdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			sorted = append(sorted, row)
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		return averageY(sorted[i].Content) < averageY(sorted[j].Content)
	})

	var buf bytes.Buffer
	for _, row := range sorted {
		line := rowText(row.Content)
		if strings.TrimSpace(line) == "" {
			continue
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return buf.String(), nil
}

func averageY(elems []pdf.Text) float64 {
	if len(elems) == 0 {
		return 0
	}
	var total float64
	for _, e := range elems {
		total += e.Y
	}
	return total / float64(len(elems))
}

// rowText joins a row's positioned text elements, inserting a space where
// the horizontal gap between elements exceeds a fraction of the font size.
func rowText(elems []pdf.Text) string {
	sorted := make([]pdf.Text, len(elems))
	copy(sorted, elems)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	var buf bytes.Buffer
	for i, e := range sorted {
		buf.WriteString(e.S)
		if i == len(sorted)-1 {
			continue
		}
		gap := sorted[i+1].X - (e.X + e.W)
		size := e.FontSize
		if size <= 0 {
			size = 12
		}
		if gap > size*0.2 {
			buf.WriteByte(' ')
		}
	}
	return buf.String()
}
