package services

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractorService reads the visible text of a PDF buffer. Text rows are
// emitted top-to-bottom with their characters in left-to-right order,
// joined with a single newline between rows, and one newline terminating
// each page. A page without text still contributes its line, so page
// boundaries stay observable in the output.
type ExtractorService struct{}

func NewExtractorService() *ExtractorService {
	return &ExtractorService{}
}

func (e *ExtractorService) ExtractText(pdfBytes []byte) (text string, err error) {
	// The underlying parser panics on some malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrExtractionFailed, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(pdfBytes), int64(len(pdfBytes)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			builder.WriteString("\n")
			continue
		}

		builder.WriteString(extractPageText(page))
		builder.WriteString("\n")
	}

	return builder.String(), nil
}

// Text items within this vertical distance belong to the same row.
const rowTolerance = 2.0

// extractPageText rebuilds the page's rows from the raw text items.
// Content().Text keeps each item's real coordinates even for text placed
// with Td operators, which the library's own row grouping flattens to a
// single row. Items are regrouped by Y, ordered left to right, and rows
// are joined top-to-bottom with single newlines. Items arrive one
// character at a time, so within a row they concatenate bare.
func extractPageText(page pdf.Page) string {
	items := page.Content().Text
	if len(items) == 0 {
		return ""
	}

	var rows [][]pdf.Text
	for _, item := range items {
		placed := false
		for i := range rows {
			if math.Abs(rows[i][0].Y-item.Y) <= rowTolerance {
				rows[i] = append(rows[i], item)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, []pdf.Text{item})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i][0].Y > rows[j][0].Y })

	var builder strings.Builder
	for i, row := range rows {
		if i > 0 {
			builder.WriteString("\n")
		}
		sort.SliceStable(row, func(a, b int) bool { return row[a].X < row[b].X })
		for _, item := range row {
			builder.WriteString(item.S)
		}
	}

	return builder.String()
}
