package epub

import (
	"testing"
)

func TestParseContent_UTF8(t *testing.T) {
	doc, err := ParseContent([]byte(`<html><body><p>Héllo</p></body></html>`))
	if err != nil {
		t.Fatalf("ParseContent failed: %v", err)
	}

	if got := doc.Find("p").Text(); got != "Héllo" {
		t.Errorf("Text = %q, want %q", got, "Héllo")
	}
}

// utf16le encodes an ASCII string as UTF-16LE with a BOM.
func utf16le(s string) []byte {
	out := []byte{0xFF, 0xFE}
	for i := 0; i < len(s); i++ {
		out = append(out, s[i], 0x00)
	}
	return out
}

func TestParseContent_UTF16WithBOM(t *testing.T) {
	doc, err := ParseContent(utf16le(`<html><body><p>Hello</p></body></html>`))
	if err != nil {
		t.Fatalf("ParseContent failed: %v", err)
	}

	if got := doc.Find("p").Text(); got != "Hello" {
		t.Errorf("Text = %q, want %q", got, "Hello")
	}
}

func TestParseContent_EntityDecoding(t *testing.T) {
	doc, err := ParseContent([]byte(`<html><body><p>A&nbsp;&amp;&nbsp;B</p></body></html>`))
	if err != nil {
		t.Fatalf("ParseContent failed: %v", err)
	}

	want := "A & B"
	if got := doc.Find("p").Text(); got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}
