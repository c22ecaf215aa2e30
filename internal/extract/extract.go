// Package extract converts uploaded resume documents into plain text.
// Extraction never aborts a request: unreadable documents degrade to fixed
// sentinel strings so downstream scoring still runs on a placeholder.
package extract

import (
	"path/filepath"
	"strings"
)

// Sentinel texts returned in place of resume content when extraction fails.
const (
	SentinelUnreadablePDF  = "Invalid or unreadable PDF content."
	SentinelNoTextPDF      = "No extractable text found in PDF."
	SentinelUnreadableDocx = "Invalid or unreadable document content."
	SentinelNoTextDocx     = "No extractable text found in document."
)

// ResumeText converts an uploaded resume document to plain text. The format
// is chosen by filename extension: .pdf and .docx get real extraction,
// anything else is treated as UTF-8 plain text.
func ResumeText(filename string, data []byte) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return pdfText(data)
	case ".docx":
		return docxText(data)
	default:
		return strings.TrimSpace(string(data))
	}
}
