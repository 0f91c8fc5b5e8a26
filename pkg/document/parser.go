package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

var ErrUnsupportedFormat = errors.New("unsupported file format: only pdf, docx and txt are allowed")

// ExtractText extracts plain text from supported source formats.
// Supports: .pdf, .docx and .txt
func ExtractText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return extractTextFromPDF(data)
	case ".docx":
		return extractTextFromDocx(data)
	case ".txt":
		return normalizeWhitespace(string(data)), nil
	default:
		return "", ErrUnsupportedFormat
	}
}

func extractTextFromPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	r, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return normalizeWhitespace(buf.String()), nil
}

func extractTextFromDocx(data []byte) (string, error) {
	r := bytes.NewReader(data)
	doc, err := docx.ReadDocxFromMemory(r, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	defer doc.Close()
	// GetContent returns the raw word/document.xml body; convert paragraph
	// boundaries to newlines and drop the remaining tags.
	xml := doc.Editable().GetContent()
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	reTags := regexp.MustCompile(`<[^>]+>`)
	txt := reTags.ReplaceAllString(xml, " ")
	return normalizeWhitespace(txt), nil
}

func normalizeWhitespace(s string) string {
	// Collapse excessive whitespace and trim
	re := regexp.MustCompile(`[ \t\r\f\v]+`)
	s = re.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "\u00A0", " ")
	// Preserve newlines but collapse runs
	reN := regexp.MustCompile(`\n+`)
	s = reN.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
