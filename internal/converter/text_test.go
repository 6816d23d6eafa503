package converter

import (
	"strings"
	"testing"
)

func TestExtractText_Paragraphs(t *testing.T) {
	text, err := ExtractText([]byte(`<html><body><p>Hello</p><p>World</p></body></html>`))
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}
	if text != "Hello\n\nWorld" {
		t.Errorf("text = %q, want %q", text, "Hello\n\nWorld")
	}
}

func TestExtractText_ListItems(t *testing.T) {
	text, err := ExtractText([]byte(`<html><body><ul><li>One</li><li>Two</li></ul></body></html>`))
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}
	if text != "• One\n• Two" {
		t.Errorf("text = %q, want %q", text, "• One\n• Two")
	}
}

func TestExtractText_LineBreaks(t *testing.T) {
	text, err := ExtractText([]byte(`<html><body><div>First line<br/>Second line</div></body></html>`))
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}
	if text != "First line\nSecond line" {
		t.Errorf("text = %q, want %q", text, "First line\nSecond line")
	}
}

func TestExtractText_HeadingsAndDivs(t *testing.T) {
	text, err := ExtractText([]byte(`<html><body><h1>Title</h1><div>Body text</div></body></html>`))
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}
	if text != "Title\nBody text" {
		t.Errorf("text = %q, want %q", text, "Title\nBody text")
	}
}

func TestExtractText_InlineElementsConcatenate(t *testing.T) {
	text, err := ExtractText([]byte(`<html><body><p>Some <em>emphasized</em> and <strong>bold</strong> text.</p></body></html>`))
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}
	if text != "Some emphasized and bold text." {
		t.Errorf("text = %q, want %q", text, "Some emphasized and bold text.")
	}
}

func TestExtractText_SkipsNonContentElements(t *testing.T) {
	input := `<html>
<head>
  <title>Should Not Appear</title>
  <meta name="x" content="y"/>
  <link rel="stylesheet" href="style.css"/>
  <style>p { color: red; }</style>
</head>
<body>
  <script>var hidden = "nope";</script>
  <svg><text>vector text</text></svg>
  <p>Visible</p>
</body>
</html>`
	text, err := ExtractText([]byte(input))
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}
	if text != "Visible" {
		t.Errorf("text = %q, want %q", text, "Visible")
	}
}

func TestExtractText_AdjacentLists(t *testing.T) {
	input := `<html><body><ol><li>First</li></ol><ul><li>Second</li></ul></body></html>`
	text, err := ExtractText([]byte(input))
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}
	if text != "• First\n• Second" {
		t.Errorf("text = %q, want %q", text, "• First\n• Second")
	}
}

func TestExtractText_TableRows(t *testing.T) {
	input := `<html><body><table><tr><td>a</td><td>b</td></tr><tr><td>c</td></tr></table></body></html>`
	text, err := ExtractText([]byte(input))
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}
	if text != "ab\nc" {
		t.Errorf("text = %q, want %q", text, "ab\nc")
	}
}

func TestExtractText_NormalizationInvariants(t *testing.T) {
	inputs := []string{
		`<html><body><p></p><p></p><p></p><p>X</p><div></div><div></div></body></html>`,
		`<html><body>   <p>  padded  </p>

		<p>more</p>   </body></html>`,
		`<html><body><h1>A</h1><br/><br/><br/><p>B</p></body></html>`,
	}

	for _, input := range inputs {
		text, err := ExtractText([]byte(input))
		if err != nil {
			t.Fatalf("ExtractText failed: %v", err)
		}

		if strings.Contains(text, "\n\n\n") {
			t.Errorf("output contains a 3+ newline run: %q", text)
		}
		for _, line := range strings.Split(text, "\n") {
			if line != strings.TrimSpace(line) {
				t.Errorf("line has leading/trailing whitespace: %q", line)
			}
		}
		if text != strings.TrimSpace(text) {
			t.Errorf("output not trimmed: %q", text)
		}
	}
}

func TestExtractText_BlankDocument(t *testing.T) {
	text, err := ExtractText([]byte(`<html><body><div>   </div></body></html>`))
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}
	if text != "" {
		t.Errorf("text = %q, want empty", text)
	}
}

func TestExtractText_Deterministic(t *testing.T) {
	input := []byte(`<html><body><h2>Ch</h2><p>One</p><ul><li>a</li></ul></body></html>`)

	first, err := ExtractText(input)
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}
	second, err := ExtractText(input)
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}
	if first != second {
		t.Errorf("ExtractText not deterministic: %q vs %q", first, second)
	}
}
