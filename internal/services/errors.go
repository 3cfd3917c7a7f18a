package services

import "errors"

var (
	// ErrMalformedDocument means the input buffer does not parse as a PDF at all.
	ErrMalformedDocument = errors.New("malformed PDF document")

	// ErrSplitFailed means the document parsed but a page could not be copied out.
	ErrSplitFailed = errors.New("failed to split PDF document")

	// ErrExtractionFailed means a page's text stream could not be read.
	ErrExtractionFailed = errors.New("failed to extract text from PDF")

	// ErrAnalysisInvalid means the analyzer produced a result that does not
	// conform to the expected shape. The fallback rules make this unreachable,
	// so an occurrence is an invariant violation worth logging loudly.
	ErrAnalysisInvalid = errors.New("document analysis produced an invalid result")
)
