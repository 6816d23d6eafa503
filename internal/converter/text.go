package converter

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/akumaenjeru/Epub2Txt/internal/epub"
)

// removeSelector matches elements that never contribute text.
const removeSelector = "script, style, link, meta, title, svg"

// blockAffix is the text an element contributes before and after its
// children. Elements absent from the table concatenate children directly.
type blockAffix struct {
	prefix string
	suffix string
}

// blockAffixes maps block-level elements to their text contribution.
// Paragraphs signal a paragraph break, explicit line breaks a single
// newline, list items a bullet marker, and the remaining block elements
// a single newline.
var blockAffixes = map[atom.Atom]blockAffix{
	atom.P:   {suffix: "\n\n"},
	atom.Br:  {suffix: "\n"},
	atom.Li:  {prefix: "• ", suffix: "\n"},
	atom.Div: {suffix: "\n"},
	atom.H1:  {suffix: "\n"},
	atom.H2:  {suffix: "\n"},
	atom.H3:  {suffix: "\n"},
	atom.H4:  {suffix: "\n"},
	atom.H5:  {suffix: "\n"},
	atom.H6:  {suffix: "\n"},
	atom.Hr:  {suffix: "\n"},
	atom.Tr:  {suffix: "\n"},
}

// multiNewline matches runs of three or more newlines.
var multiNewline = regexp.MustCompile(`\n{3,}`)

// ExtractText converts one content document's markup into normalized plain
// text. Block-level elements produce paragraph and line breaks per
// blockAffixes; whitespace is collapsed deterministically afterwards.
func ExtractText(data []byte) (string, error) {
	doc, err := epub.ParseContent(data)
	if err != nil {
		return "", err
	}

	doc.Find(removeSelector).Remove()

	// Traverse from the body; the lenient parser synthesizes one even for
	// fragments, but fall back to the document root just in case.
	root := doc.Find("body")
	var sb strings.Builder
	if root.Length() > 0 {
		walkNodes(root.Nodes, &sb)
	} else {
		walkNodes(doc.Selection.Nodes, &sb)
	}

	return normalizeText(sb.String()), nil
}

func walkNodes(nodes []*html.Node, sb *strings.Builder) {
	for _, n := range nodes {
		walk(n, sb)
	}
}

// walk accumulates text depth-first: text nodes contribute their literal
// content, elements wrap their children's contribution in the affixes
// from blockAffixes.
func walk(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)

	case html.ElementNode:
		affix := blockAffixes[n.DataAtom]
		sb.WriteString(affix.prefix)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, sb)
		}
		sb.WriteString(affix.suffix)

	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, sb)
		}
	}
}

// normalizeText collapses runs of three or more newlines to two, trims
// each line, and trims the whole result.
func normalizeText(s string) string {
	s = multiNewline.ReplaceAllString(s, "\n\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")

	// Trimming whitespace-only lines can join previously separated newline
	// runs, so collapse once more.
	s = multiNewline.ReplaceAllString(s, "\n\n")

	return strings.TrimSpace(s)
}
