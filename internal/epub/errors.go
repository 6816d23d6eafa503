package epub

import "errors"

// Sentinel errors returned by the epub package.
var (
	// ErrMalformedContainer indicates META-INF/container.xml is missing,
	// unparseable, or does not name a root package document.
	ErrMalformedContainer = errors.New("epub: malformed container")

	// ErrMalformedManifest indicates the root package document (OPF) is
	// missing from the archive or cannot be parsed as XML.
	ErrMalformedManifest = errors.New("epub: malformed package manifest")

	// ErrDRMProtected indicates the archive carries a known DRM scheme
	// and its content cannot be read.
	ErrDRMProtected = errors.New("epub: file is DRM protected")

	// ErrFileNotFound indicates the requested entry does not exist in
	// the archive.
	ErrFileNotFound = errors.New("epub: file not found in archive")

	// ErrNoCover indicates no cover image could be detected using any of
	// the supported strategies.
	ErrNoCover = errors.New("epub: no cover image found")
)
