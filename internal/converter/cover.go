package converter

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"

	"github.com/akumaenjeru/Epub2Txt/internal/epub"
)

const (
	defaultCoverMaxWidth = 600
	coverJPEGQuality     = 85
)

// ExtractCoverFromArchive opens an in-memory EPUB archive, parses its
// package document and extracts the cover via ExtractCover.
func ExtractCoverFromArchive(name string, data []byte, maxWidth int) ([]byte, error) {
	reader, err := epub.NewReader(name, data)
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

	return ExtractCover(reader, opf, maxWidth)
}

// ExtractCover detects the book's cover image, downscales it to maxWidth
// when wider (maxWidth <= 0 uses the default), and returns it re-encoded
// as JPEG. Returns epub.ErrNoCover when no cover can be detected.
func ExtractCover(reader *epub.Reader, opf *epub.OPF, maxWidth int) ([]byte, error) {
	info := opf.DetectCover()
	if info == nil {
		return nil, epub.ErrNoCover
	}

	data, err := reader.ReadFile(resolveItemPath(reader.OPFDir(), info.Href))
	if err != nil {
		return nil, fmt.Errorf("failed to read cover %q: %w", info.Href, err)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode cover %q: %w", info.Href, err)
	}

	if maxWidth <= 0 {
		maxWidth = defaultCoverMaxWidth
	}
	if img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(coverJPEGQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode cover: %w", err)
	}
	return buf.Bytes(), nil
}
