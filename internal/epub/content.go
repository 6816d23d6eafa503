package epub

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
)

// ParseContent parses an XHTML content document into a goquery document.
// Input that is not UTF-8 is decoded first, using the charset declared in
// the document (or detected from its bytes).
func ParseContent(data []byte) (*goquery.Document, error) {
	r, err := charset.NewReader(bytes.NewReader(data), "")
	if err != nil {
		return nil, fmt.Errorf("failed to decode content document: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse XHTML: %w", err)
	}
	return doc, nil
}
