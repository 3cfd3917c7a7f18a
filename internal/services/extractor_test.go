package services

import (
	"errors"
	"testing"
)

func TestExtractorService_ExtractText(t *testing.T) {
	extractor := NewExtractorService()

	source := buildPDF(t, []string{
		"Certidão de Nascimento",
		"Nome: Ana Costa",
		"Data de emissão: 12/05/1990",
	})

	text, err := extractor.ExtractText(source)
	if err != nil {
		t.Fatalf("ExtractText() error = %v", err)
	}

	want := "Certidão de Nascimento\nNome: Ana Costa\nData de emissão: 12/05/1990\n"
	if text != want {
		t.Errorf("ExtractText() = %q, want %q", text, want)
	}
}

func TestExtractorService_ExtractText_MultiplePages(t *testing.T) {
	extractor := NewExtractorService()

	source := buildPDF(t,
		[]string{"Primeira página"},
		[]string{"Segunda página"},
	)

	text, err := extractor.ExtractText(source)
	if err != nil {
		t.Fatalf("ExtractText() error = %v", err)
	}

	want := "Primeira página\nSegunda página\n"
	if text != want {
		t.Errorf("ExtractText() = %q, want %q", text, want)
	}
}

func TestExtractorService_ExtractText_EmptyPageKeepsLine(t *testing.T) {
	extractor := NewExtractorService()

	source := buildPDF(t,
		[]string{"Primeira página"},
		nil,
		[]string{"Terceira página"},
	)

	text, err := extractor.ExtractText(source)
	if err != nil {
		t.Fatalf("ExtractText() error = %v", err)
	}

	want := "Primeira página\n\nTerceira página\n"
	if text != want {
		t.Errorf("ExtractText() = %q, want %q", text, want)
	}
}

func TestExtractorService_ExtractText_Malformed(t *testing.T) {
	extractor := NewExtractorService()

	tests := []struct {
		name  string
		input []byte
	}{
		{name: "empty buffer", input: nil},
		{name: "not a PDF", input: []byte("plain text, no PDF here")},
		{name: "truncated PDF", input: buildPDF(t, []string{"Certidão"})[:60]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := extractor.ExtractText(tt.input)
			if !errors.Is(err, ErrExtractionFailed) {
				t.Errorf("ExtractText() error = %v, want ErrExtractionFailed", err)
			}
			if text != "" {
				t.Errorf("ExtractText() returned partial text %q, want empty", text)
			}
		})
	}
}

// Line structure must survive all the way into analysis: collapsing rows
// would merge adjacent fields into values like "Ana Costa12/05/1990".
func TestExtractorService_RowsFeedAnalysis(t *testing.T) {
	splitter := NewSplitterService()
	extractor := NewExtractorService()
	analyzer := NewAnalyzerService()

	source := buildPDF(t,
		[]string{"Primeira página"},
		[]string{"Certidão de Nascimento", "Nome: Ana Costa", "12/05/1990"},
		[]string{"Terceira página"},
	)

	pages, err := splitter.Split(source)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("Split() returned %d pages, want 3", len(pages))
	}

	text, err := extractor.ExtractText(pages[1])
	if err != nil {
		t.Fatalf("ExtractText() error = %v", err)
	}

	analysis, err := analyzer.Analyze(text)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if analysis.RegistrantName != "Ana Costa" {
		t.Errorf("RegistrantName = %q, want %q (text=%q)", analysis.RegistrantName, "Ana Costa", text)
	}
	if analysis.DocumentType != "Certidão" {
		t.Errorf("DocumentType = %q, want %q", analysis.DocumentType, "Certidão")
	}
	if analysis.Date == nil || *analysis.Date != "12/05/1990" {
		t.Errorf("Date = %v, want 12/05/1990", analysis.Date)
	}
}

// Extraction is deterministic: the same buffer always yields the same text.
func TestExtractorService_ExtractText_Deterministic(t *testing.T) {
	extractor := NewExtractorService()

	source := buildPDF(t, []string{"Nome: Ana Costa", "Certidão de Nascimento"})

	first, err := extractor.ExtractText(source)
	if err != nil {
		t.Fatalf("ExtractText() error = %v", err)
	}

	second, err := extractor.ExtractText(source)
	if err != nil {
		t.Fatalf("ExtractText() error = %v", err)
	}

	if first != second {
		t.Errorf("ExtractText() not deterministic: %q vs %q", first, second)
	}
}
