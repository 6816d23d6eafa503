package epub

// Default metadata values used when the OPF omits the corresponding element.
const (
	DefaultTitle  = "Untitled"
	DefaultAuthor = "Unknown Author"
)

// OPF represents the parsed Open Package Format document
type OPF struct {
	Metadata      Metadata
	Manifest      map[string]ManifestItem // id -> item
	ManifestOrder []string                // ids in document order
	Spine         []SpineItem
	Guide         []GuideReference
}

// Metadata represents the metadata section of the OPF
type Metadata struct {
	Title      string
	Creator    string
	Language   string
	Identifier string
	Publisher  string
	CoverID    string // EPUB 2.0 cover image manifest item ID (from meta name="cover")
}

// ManifestItem represents an item in the manifest.
// Href is kept relative to the OPF document; callers resolve it against
// the OPF directory when reading from the archive.
type ManifestItem struct {
	ID         string
	Href       string
	MediaType  string
	Properties []string
}

// SpineItem represents an item reference in the spine
type SpineItem struct {
	IDRef  string
	Linear bool
}

// GuideReference represents a reference element in the EPUB 2.0 guide section
type GuideReference struct {
	Type  string
	Title string
	Href  string
}

// HasProperty reports whether the item's properties contain the given token.
func (m ManifestItem) HasProperty(prop string) bool {
	for _, p := range m.Properties {
		if p == prop {
			return true
		}
	}
	return false
}
