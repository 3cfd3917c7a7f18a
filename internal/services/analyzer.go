package services

import (
	"fmt"
	"regexp"
	"strings"
)

// Fallback values used when a heuristic finds nothing. They are part of
// the analyzer's contract: same input text always yields the same output.
const (
	FallbackRegistrantName = "Nome não encontrado"
	FallbackDocumentType   = "Certidão"
)

var (
	documentTypePattern = regexp.MustCompile(`(?i)certidão|certificado`)
	datePattern         = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)
)

// DocumentAnalysis holds the structured fields recovered from a page's text.
type DocumentAnalysis struct {
	RegistrantName string  `json:"registrant_name"`
	DocumentType   string  `json:"document_type"`
	Date           *string `json:"date"`
}

// AnalyzerService recovers registrant name, document type and issue date
// from extracted page text using line-matching heuristics. The heuristics
// are best-effort; only determinism and the fallback values are guaranteed.
type AnalyzerService struct{}

func NewAnalyzerService() *AnalyzerService {
	return &AnalyzerService{}
}

func (a *AnalyzerService) Analyze(text string) (*DocumentAnalysis, error) {
	lines := strings.Split(text, "\n")

	analysis := &DocumentAnalysis{
		RegistrantName: registrantName(lines),
		DocumentType:   documentType(lines),
		Date:           issueDate(lines),
	}

	// Unreachable given the fallbacks above, kept as a safety net.
	if analysis.RegistrantName == "" || analysis.DocumentType == "" {
		return nil, fmt.Errorf("%w: %+v", ErrAnalysisInvalid, analysis)
	}

	return analysis, nil
}

// registrantName takes the first line mentioning "nome" or "registrado"
// and returns whatever follows the first colon on that line.
func registrantName(lines []string) string {
	for _, line := range lines {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "nome") && !strings.Contains(lower, "registrado") {
			continue
		}

		if _, after, found := strings.Cut(line, ":"); found {
			if name := strings.TrimSpace(after); name != "" {
				return name
			}
		}

		return FallbackRegistrantName
	}

	return FallbackRegistrantName
}

// documentType returns the matched token with its original casing.
func documentType(lines []string) string {
	for _, line := range lines {
		if match := documentTypePattern.FindString(line); match != "" {
			return match
		}
	}

	return FallbackDocumentType
}

// issueDate looks for the first line mentioning "data" or carrying a
// DD/MM/YYYY substring; a matching line without a date-shaped substring
// still ends the search.
func issueDate(lines []string) *string {
	for _, line := range lines {
		if !strings.Contains(strings.ToLower(line), "data") && !datePattern.MatchString(line) {
			continue
		}

		if match := datePattern.FindString(line); match != "" {
			return &match
		}

		return nil
	}

	return nil
}
