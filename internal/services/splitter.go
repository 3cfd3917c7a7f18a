package services

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// SplitterService turns a multi-page PDF buffer into one standalone
// single-page PDF buffer per source page, preserving page order.
type SplitterService struct {
	conf *model.Configuration
}

func NewSplitterService() *SplitterService {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	return &SplitterService{conf: conf}
}

// Split validates the buffer and extracts each page into its own document.
// The returned slice has exactly one element per source page, in source
// order. Any page-copy failure aborts the whole split; no partial result
// is ever returned.
func (s *SplitterService) Split(pdfBytes []byte) ([][]byte, error) {
	if err := api.Validate(bytes.NewReader(pdfBytes), s.conf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	pageCount, err := api.PageCount(bytes.NewReader(pdfBytes), s.conf)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to count pages: %v", ErrMalformedDocument, err)
	}

	pages := make([][]byte, 0, pageCount)
	for i := 1; i <= pageCount; i++ {
		var buf bytes.Buffer
		if err := api.Trim(bytes.NewReader(pdfBytes), &buf, []string{strconv.Itoa(i)}, s.conf); err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", ErrSplitFailed, i, err)
		}

		pages = append(pages, buf.Bytes())
	}

	return pages, nil
}

// PageCount reports the number of pages without splitting.
func (s *SplitterService) PageCount(pdfBytes []byte) (int, error) {
	count, err := api.PageCount(bytes.NewReader(pdfBytes), s.conf)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	return count, nil
}
