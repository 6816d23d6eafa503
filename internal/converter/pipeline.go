package converter

import (
	"fmt"
	"log"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/akumaenjeru/Epub2Txt/internal/epub"
)

// separator is the visual divider inserted between chapters in the
// aggregated output.
const separator = "\n\n----------\n\n"

// Options holds options for one conversion.
type Options struct {
	// Filename is passed through to the resulting Document.
	Filename string

	// OnProgress, when non-nil, receives checkpoint events. It is called
	// synchronously and must not block.
	OnProgress ProgressFunc
}

// Document is the final conversion result.
type Document struct {
	Filename string
	Title    string
	Author   string
	Content  string
	Size     int // content length in characters
}

// Pipeline orchestrates the EPUB to plain text conversion.
type Pipeline struct {
	opts Options
}

// NewPipeline creates a new conversion pipeline.
func NewPipeline(opts Options) *Pipeline {
	return &Pipeline{opts: opts}
}

// Convert runs the whole pipeline over an in-memory EPUB archive:
// resolve the container, parse the package document, walk the spine in
// reading order, convert each retained content document to text, and
// aggregate the results.
//
// Container and package failures abort the conversion. Per-item failures
// (missing entries, unparsable documents) are logged and skipped.
func (p *Pipeline) Convert(data []byte) (*Document, error) {
	progress := p.opts.OnProgress
	progress.report(10, "Unpacking archive")

	reader, err := epub.NewReader(p.opts.Filename, data)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	opfData, err := reader.ReadFile(reader.OPFPath())
	if err != nil {
		return nil, fmt.Errorf("%w: package document %s missing from archive",
			epub.ErrMalformedManifest, reader.OPFPath())
	}

	opf, err := epub.ParseOPF(opfData)
	if err != nil {
		return nil, err
	}
	progress.report(20, "Metadata parsed")

	var sb strings.Builder
	total := len(opf.Spine)

	for i, spineItem := range opf.Spine {
		// ParseOPF drops spine entries without a manifest item, so the
		// lookup cannot miss.
		item := opf.Manifest[spineItem.IDRef]

		// Skipped items still advance progress: they occupy a loop slot.
		percent := 30 + (i+1)*60/total
		progress.report(percent, fmt.Sprintf("Converting %d of %d", i+1, total))

		if isTOCItem(i, item) {
			continue
		}

		entryPath := resolveItemPath(reader.OPFDir(), item.Href)
		if !reader.Has(entryPath) {
			log.Printf("warning: content entry %q not found in archive, skipping", entryPath)
			continue
		}

		content, err := reader.ReadFile(entryPath)
		if err != nil {
			log.Printf("warning: failed to read %q: %v, skipping", entryPath, err)
			continue
		}

		text, err := ExtractText(content)
		if err != nil {
			log.Printf("warning: failed to convert %q: %v, skipping", entryPath, err)
			continue
		}
		if text == "" {
			continue
		}

		if sb.Len() > 0 {
			sb.WriteString(separator)
		}
		sb.WriteString(text)
	}

	result := strings.TrimSpace(sb.String())
	progress.report(100, "Done")

	return &Document{
		Filename: p.opts.Filename,
		Title:    opf.Metadata.Title,
		Author:   opf.Metadata.Creator,
		Content:  result,
		Size:     utf8.RuneCountInString(result),
	}, nil
}

// resolveItemPath resolves a manifest href against the package document's
// directory and percent-decodes the result, so hrefs with encoded path
// segments match the archive's entry names.
func resolveItemPath(opfDir, href string) string {
	joined := opfDir + href
	if decoded, err := url.PathUnescape(joined); err == nil {
		return decoded
	}
	return joined
}
