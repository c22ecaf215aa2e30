package extract

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfText extracts the plain text of every page. The reader panics on some
// corrupt files, so failures are converted to the unreadable sentinel.
func pdfText(data []byte) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = SentinelUnreadablePDF
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return SentinelUnreadablePDF
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(pageText)
	}

	if out := strings.TrimSpace(sb.String()); out != "" {
		return out
	}
	return SentinelNoTextPDF
}
