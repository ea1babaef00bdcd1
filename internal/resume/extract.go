// Package resume extracts plain text from resume files and pulls out the
// pieces the counseling prompts use (contact info, named sections).
package resume

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ExtractError is returned when a resume file cannot be read or parsed.
type ExtractError struct {
	Path  string
	Cause error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("extracting resume %q: %v", e.Path, e.Cause)
}

func (e *ExtractError) Unwrap() error {
	return e.Cause
}

// ExtractFile reads a resume file and returns its plain text. The format is
// chosen by file extension: .pdf, .docx, .doc and .txt are supported.
func ExtractFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractError{Path: path, Cause: err}
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	text, err := Extract(data, ext)
	if err != nil {
		return "", &ExtractError{Path: path, Cause: err}
	}
	return text, nil
}

// Extract returns the plain text of resume file content in the given format.
func Extract(data []byte, format string) (string, error) {
	switch strings.ToLower(format) {
	case "pdf":
		return extractPDF(data)
	case "docx", "doc":
		return extractDocx(data)
	case "txt":
		return extractTxt(data)
	default:
		return "", fmt.Errorf("unsupported resume format: %s", format)
	}
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parsing pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String()), nil
}

func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parsing docx: %w", err)
	}
	defer doc.Close()

	return strings.TrimSpace(stripDocxTags(doc.Editable().GetContent())), nil
}

func extractTxt(data []byte) (string, error) {
	if utf8.Valid(data) {
		return strings.TrimSpace(string(data)), nil
	}
	// Latin-1 fallback for legacy exports.
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return strings.TrimSpace(string(runes)), nil
}

// stripDocxTags drops the raw XML markup the docx editable content carries,
// keeping paragraph breaks.
func stripDocxTags(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	var sb strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
