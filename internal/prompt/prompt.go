// Package prompt renders the plain-text prompts the server exposes.
// Rendering is pure formatting: no dataset access, no I/O.
package prompt

import (
	"bytes"
	"fmt"
	"strconv"
	"text/template"

	"bookmcp/internal/book"
)

var summaryTemplate = template.Must(template.New("summary").Parse(
	`'{{.Title}}' is a {{.Genre}} book rated {{.Rating}}/5, priced at ${{.Price}}. Availability: {{.Availability}}.`,
))

// Test returns the connectivity-check prompt text.
func Test(bookID string) string {
	return fmt.Sprintf("Test prompt: %s", bookID)
}

// Summarize renders a one-sentence natural-language summary of a record.
// A record without a title cannot be summarized and is rejected.
func Summarize(b book.Book) (string, error) {
	if b.Title == "" {
		return "", fmt.Errorf("%w: book has no title", book.ErrInvalidArgument)
	}

	data := struct {
		Title        string
		Genre        string
		Rating       string
		Price        string
		Availability string
	}{
		Title:        b.Title,
		Genre:        orUnknown(b.Genre, "Unknown genre"),
		Rating:       "N/A",
		Price:        "N/A",
		Availability: "Out of stock",
	}
	if b.Rating != nil {
		data.Rating = strconv.FormatFloat(*b.Rating, 'f', -1, 64)
	}
	if b.Price != nil {
		data.Price = strconv.FormatFloat(*b.Price, 'f', -1, 64)
	}
	if b.InStock != nil && *b.InStock {
		data.Availability = "In stock"
	}

	var buf bytes.Buffer
	if err := summaryTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering summary: %w", err)
	}
	return buf.String(), nil
}

func orUnknown(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
