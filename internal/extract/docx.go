package extract

import (
	"bytes"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// docxText extracts the document body of a .docx resume.
func docxText(data []byte) string {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return SentinelUnreadableDocx
	}
	defer func() { _ = doc.Close() }()

	if out := strings.TrimSpace(doc.Editable().GetContent()); out != "" {
		return out
	}
	return SentinelNoTextDocx
}
