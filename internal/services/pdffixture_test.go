package services

import (
	"bytes"
	"fmt"
	"testing"
)

// buildPDF assembles a minimal valid PDF in memory. Each entry in pages
// becomes one page and each string in that entry one text line on it.
// Text is written with the standard Helvetica font and WinAnsi encoding,
// which covers the Latin-1 characters that apostille documents use.
func buildPDF(t *testing.T, pages ...[]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	offsets := []int{0} // object 0 is the free-list head

	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets)-1, body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := ""
	for i := range pages {
		if i > 0 {
			kids += " "
		}
		kids += fmt.Sprintf("%d 0 R", 4+2*i)
	}

	writeObj("<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids, len(pages)))
	writeObj("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	for i, lines := range pages {
		contentRef := 5 + 2*i
		writeObj(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", contentRef))

		stream := pageStream(t, lines)
		writeObj(fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", len(stream), stream))
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets))
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets[1:] {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets), xrefOffset)

	return buf.Bytes()
}

func pageStream(t *testing.T, lines []string) string {
	t.Helper()

	var sb bytes.Buffer
	sb.WriteString("BT\n/F1 12 Tf\n72 720 Td\n")
	for i, line := range lines {
		if i > 0 {
			sb.WriteString("0 -18 Td\n")
		}
		sb.WriteString("(")
		sb.Write(winAnsiEscape(t, line))
		sb.WriteString(") Tj\n")
	}
	sb.WriteString("ET\n")

	return sb.String()
}

// winAnsiEscape converts a Go string into a PDF literal string body using
// single-byte WinAnsi code points, escaping the string delimiters.
func winAnsiEscape(t *testing.T, s string) []byte {
	t.Helper()

	var out []byte
	for _, r := range s {
		if r > 0xFF {
			t.Fatalf("rune %q not representable in WinAnsi test fixture", r)
		}
		switch r {
		case '(', ')', '\\':
			out = append(out, '\\')
		}
		out = append(out, byte(r))
	}

	return out
}
