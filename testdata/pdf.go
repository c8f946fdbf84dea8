package testdata

import (
	"bytes"
	"fmt"
	"strings"
)

// MinimalPDF builds a valid one-page PDF containing the given line of text.
// Object offsets in the xref table are computed while writing, so the
// output parses with strict readers.
func MinimalPDF(text string) []byte {
	stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", escapePDFString(text))
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects)+1)
	for i, obj := range objects {
		offsets[i+1] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= len(objects); i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

// CorruptPDF returns bytes that carry a PDF header but no parseable body.
func CorruptPDF() []byte {
	return []byte("%PDF-1.4\nthis is not a real pdf body")
}

// InvalidUTF8 returns bytes that cannot be decoded as UTF-8 text.
func InvalidUTF8() []byte {
	return []byte{0xff, 0xfe, 0xfd, 'h', 'i'}
}

// LargeText returns a plain text payload of at least n bytes.
func LargeText(n int) []byte {
	line := "The quick brown fox jumps over the lazy dog.\n"
	var b strings.Builder
	for b.Len() < n {
		b.WriteString(line)
	}
	return []byte(b.String())
}

func escapePDFString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
