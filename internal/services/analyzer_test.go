package services

import (
	"testing"
)

func strPtr(s string) *string { return &s }

func TestAnalyzerService_Analyze_RegistrantName(t *testing.T) {
	analyzer := NewAnalyzerService()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "name after colon",
			input:    "Certidão de Nascimento\nNome: Ana Costa\n12/05/1990",
			expected: "Ana Costa",
		},
		{
			name:     "registrado keyword",
			input:    "Registrado: Bruno Dias\nCertidão de Casamento",
			expected: "Bruno Dias",
		},
		{
			name:     "uppercase keyword",
			input:    "NOME COMPLETO: Carla Souza",
			expected: "Carla Souza",
		},
		{
			name:     "matching line without colon",
			input:    "Nome do registrado ilegível\nCertidão",
			expected: FallbackRegistrantName,
		},
		{
			name:     "matching line with empty value",
			input:    "Nome:   \nCertidão",
			expected: FallbackRegistrantName,
		},
		{
			name:     "no matching line",
			input:    "Certidão de Nascimento\n12/05/1990",
			expected: FallbackRegistrantName,
		},
		{
			name:     "first matching line wins",
			input:    "Nome: Ana Costa\nNome: Bruno Dias",
			expected: "Ana Costa",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis, err := analyzer.Analyze(tt.input)
			if err != nil {
				t.Fatalf("Analyze() error = %v", err)
			}
			if analysis.RegistrantName != tt.expected {
				t.Errorf("RegistrantName = %q, want %q", analysis.RegistrantName, tt.expected)
			}
		})
	}
}

func TestAnalyzerService_Analyze_DocumentType(t *testing.T) {
	analyzer := NewAnalyzerService()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "certidão lowercase",
			input:    "certidão de nascimento\nNome: Ana",
			expected: "certidão",
		},
		{
			name:     "certidão capitalized keeps casing",
			input:    "Certidão de Casamento",
			expected: "Certidão",
		},
		{
			name:     "certificado uppercase keeps casing",
			input:    "CERTIFICADO DE CONCLUSÃO",
			expected: "CERTIFICADO",
		},
		{
			name:     "no matching line falls back",
			input:    "Histórico Escolar\nNome: Ana",
			expected: FallbackDocumentType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis, err := analyzer.Analyze(tt.input)
			if err != nil {
				t.Fatalf("Analyze() error = %v", err)
			}
			if analysis.DocumentType != tt.expected {
				t.Errorf("DocumentType = %q, want %q", analysis.DocumentType, tt.expected)
			}
		})
	}
}

func TestAnalyzerService_Analyze_Date(t *testing.T) {
	analyzer := NewAnalyzerService()

	tests := []struct {
		name     string
		input    string
		expected *string
	}{
		{
			name:     "date shaped substring",
			input:    "Certidão\nEmitida em 12/05/1990 nesta cidade",
			expected: strPtr("12/05/1990"),
		},
		{
			name:     "data keyword with date",
			input:    "Data de emissão: 03/11/2024",
			expected: strPtr("03/11/2024"),
		},
		{
			name:     "data keyword without date ends the search",
			input:    "Data de emissão ilegível\nOutra linha 12/05/1990",
			expected: nil,
		},
		{
			name:     "no date anywhere",
			input:    "Certidão de Nascimento\nNome: Ana",
			expected: nil,
		},
		{
			name:     "first date on the line wins",
			input:    "De 01/02/2003 até 04/05/2006",
			expected: strPtr("01/02/2003"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis, err := analyzer.Analyze(tt.input)
			if err != nil {
				t.Fatalf("Analyze() error = %v", err)
			}
			switch {
			case tt.expected == nil && analysis.Date != nil:
				t.Errorf("Date = %q, want nil", *analysis.Date)
			case tt.expected != nil && analysis.Date == nil:
				t.Errorf("Date = nil, want %q", *tt.expected)
			case tt.expected != nil && *analysis.Date != *tt.expected:
				t.Errorf("Date = %q, want %q", *analysis.Date, *tt.expected)
			}
		})
	}
}

// Analyze is a pure function: identical text yields identical output, and
// text matching none of the heuristics yields exactly the fallback values.
func TestAnalyzerService_Analyze_Deterministic(t *testing.T) {
	analyzer := NewAnalyzerService()

	input := "linha sem nenhuma palavra chave\noutra linha qualquer"

	first, err := analyzer.Analyze(input)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	second, err := analyzer.Analyze(input)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if first.RegistrantName != second.RegistrantName || first.DocumentType != second.DocumentType {
		t.Errorf("Analyze() not deterministic: %+v vs %+v", first, second)
	}

	if first.RegistrantName != FallbackRegistrantName {
		t.Errorf("RegistrantName = %q, want %q", first.RegistrantName, FallbackRegistrantName)
	}
	if first.DocumentType != FallbackDocumentType {
		t.Errorf("DocumentType = %q, want %q", first.DocumentType, FallbackDocumentType)
	}
	if first.Date != nil {
		t.Errorf("Date = %q, want nil", *first.Date)
	}
}
