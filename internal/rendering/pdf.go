// Package rendering renders generated resume text into a downloadable PDF.
package rendering

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

const (
	pageBreakMargin = 15.0
	fontSize        = 12.0
	lineHeight      = 8.0
)

// TextPDF renders plain text into PDF bytes, one wrapped cell per input
// line. The core PDF fonts only cover Latin-1, so text is sanitized first.
func TextPDF(text string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, pageBreakMargin)
	doc.AddPage()
	doc.SetFont("Arial", "", fontSize)

	for _, line := range strings.Split(latin1Safe(text), "\n") {
		doc.MultiCell(0, lineHeight, line, "", "L", false)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// latin1Safe substitutes characters outside Latin-1 with '?'.
func latin1Safe(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if r > 0xFF {
			sb.WriteByte('?')
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
