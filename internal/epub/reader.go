package epub

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"strings"
)

// containerPath is the fixed entry pointing at the root package document.
const containerPath = "META-INF/container.xml"

// Reader provides access to EPUB file contents
type Reader struct {
	zipCloser *zip.ReadCloser // set when opened from a file path
	files     map[string]*zip.File
	opfPath   string
	opfDir    string
}

// container.xml structure
type container struct {
	Rootfiles struct {
		Rootfile []struct {
			FullPath  string `xml:"full-path,attr"`
			MediaType string `xml:"media-type,attr"`
		} `xml:"rootfile"`
	} `xml:"rootfiles"`
}

// Open opens an EPUB file from disk and resolves its container.
func Open(path string) (*Reader, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open EPUB: %w", err)
	}

	reader, err := newReader(&zr.Reader)
	if err != nil {
		zr.Close()
		return nil, err
	}
	reader.zipCloser = zr
	return reader, nil
}

// NewReader opens an EPUB from an in-memory byte blob. name is only used
// in diagnostics; the archive is fully described by data.
func NewReader(name string, data []byte) (*Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open EPUB %q: %w", name, err)
	}
	return newReader(zr)
}

func newReader(zr *zip.Reader) (*Reader, error) {
	reader := &Reader{
		files: make(map[string]*zip.File),
	}

	// Build file map with normalized paths
	for _, f := range zr.File {
		reader.files[normalizePath(f.Name)] = f
	}

	if err := reader.checkDRM(); err != nil {
		return nil, err
	}

	// A wrong or absent mimetype entry is tolerated; plenty of EPUBs in the
	// wild get it wrong and the container is still readable.
	reader.checkMimetype()

	if err := reader.parseContainer(); err != nil {
		return nil, err
	}

	return reader, nil
}

// Close closes the underlying archive, if it owns one.
func (r *Reader) Close() error {
	if r.zipCloser != nil {
		return r.zipCloser.Close()
	}
	return nil
}

// OPFPath returns the path to the root package document.
func (r *Reader) OPFPath() string {
	return r.opfPath
}

// OPFDir returns the directory containing the root package document:
// the path prefix up to and including the last separator, or "" if the
// document sits at the archive root.
func (r *Reader) OPFDir() string {
	return r.opfDir
}

// Files returns a map of all entries in the EPUB keyed by normalized path.
func (r *Reader) Files() map[string]*zip.File {
	return r.files
}

// Has reports whether an entry exists at the given path.
func (r *Reader) Has(path string) bool {
	_, ok := r.files[normalizePath(path)]
	return ok
}

// ReadFile reads the contents of an entry from the EPUB.
func (r *Reader) ReadFile(path string) ([]byte, error) {
	path = normalizePath(path)
	f, ok := r.files[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open entry %s: %w", path, err)
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

// checkMimetype warns when the mimetype entry is missing or unexpected.
func (r *Reader) checkMimetype() {
	content, err := r.ReadFile("mimetype")
	if err != nil {
		log.Printf("warning: mimetype entry missing")
		return
	}
	if strings.TrimSpace(string(content)) != "application/epub+zip" {
		log.Printf("warning: unexpected mimetype %q", strings.TrimSpace(string(content)))
	}
}

// Known DRM scheme markers inside META-INF/encryption.xml. Font
// obfuscation algorithms do not count as DRM.
var drmSignatures = []string{
	"http://ns.adobe.com/adept",      // Adobe ADEPT
	"http://readium.org/2014/01/lcp", // Readium LCP
}

// checkDRM rejects archives protected by a known DRM scheme.
func (r *Reader) checkDRM() error {
	// Apple FairPlay marker.
	if _, ok := r.files["META-INF/sinf.xml"]; ok {
		return ErrDRMProtected
	}

	data, err := r.ReadFile("META-INF/encryption.xml")
	if err != nil {
		return nil // no encryption descriptor, not protected
	}

	text := string(data)
	for _, sig := range drmSignatures {
		if strings.Contains(text, sig) {
			return ErrDRMProtected
		}
	}
	return nil
}

// parseContainer parses container.xml and extracts the OPF path and its
// containing directory.
func (r *Reader) parseContainer() error {
	content, err := r.ReadFile(containerPath)
	if err != nil {
		return fmt.Errorf("%w: %s missing", ErrMalformedContainer, containerPath)
	}

	var c container
	if err := xml.Unmarshal(content, &c); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedContainer, err)
	}

	if len(c.Rootfiles.Rootfile) == 0 || c.Rootfiles.Rootfile[0].FullPath == "" {
		return fmt.Errorf("%w: no rootfile with full-path attribute", ErrMalformedContainer)
	}

	r.opfPath = normalizePath(c.Rootfiles.Rootfile[0].FullPath)
	if idx := strings.LastIndex(r.opfPath, "/"); idx >= 0 {
		r.opfDir = r.opfPath[:idx+1]
	}
	return nil
}

// normalizePath normalizes archive entry paths (removes ./ prefix).
func normalizePath(path string) string {
	return strings.TrimPrefix(path, "./")
}
