package epub

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// opfPackage represents the OPF XML structure
type opfPackage struct {
	XMLName  xml.Name    `xml:"package"`
	Version  string      `xml:"version,attr"`
	Metadata opfMetadata `xml:"metadata"`
	Manifest opfManifest `xml:"manifest"`
	Spine    opfSpine    `xml:"spine"`
	Guide    opfGuide    `xml:"guide"`
}

// opfMetadata represents the metadata section
type opfMetadata struct {
	Title      []string  `xml:"http://purl.org/dc/elements/1.1/ title"`
	Creator    []string  `xml:"http://purl.org/dc/elements/1.1/ creator"`
	Language   []string  `xml:"http://purl.org/dc/elements/1.1/ language"`
	Identifier []string  `xml:"http://purl.org/dc/elements/1.1/ identifier"`
	Publisher  []string  `xml:"http://purl.org/dc/elements/1.1/ publisher"`
	Meta       []opfMeta `xml:"meta"`
}

// opfMeta represents a meta element (EPUB 2.0 and 3.0)
type opfMeta struct {
	Name    string `xml:"name,attr"`
	Content string `xml:"content,attr"`
}

// opfManifest represents the manifest section
type opfManifest struct {
	Items []opfManifestItem `xml:"item"`
}

// opfManifestItem represents an item in the manifest
type opfManifestItem struct {
	ID         string `xml:"id,attr"`
	Href       string `xml:"href,attr"`
	MediaType  string `xml:"media-type,attr"`
	Properties string `xml:"properties,attr"`
}

// opfSpine represents the spine section
type opfSpine struct {
	ItemRefs []opfItemRef `xml:"itemref"`
}

// opfItemRef represents an itemref in the spine
type opfItemRef struct {
	IDRef  string `xml:"idref,attr"`
	Linear string `xml:"linear,attr"`
}

// opfGuide represents the EPUB 2.0 guide section
type opfGuide struct {
	References []opfGuideReference `xml:"reference"`
}

// opfGuideReference represents a reference in the guide
type opfGuideReference struct {
	Type  string `xml:"type,attr"`
	Title string `xml:"title,attr"`
	Href  string `xml:"href,attr"`
}

// ParseOPF parses a root package document. Item hrefs are kept relative;
// the caller resolves them against the OPF directory.
//
// Manifest items missing any of id, href, or media-type are dropped.
// Spine itemrefs whose idref is empty or unknown are dropped silently.
func ParseOPF(content []byte) (*OPF, error) {
	var pkg opfPackage
	if err := xml.Unmarshal(content, &pkg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedManifest, err)
	}

	opf := &OPF{
		Manifest: make(map[string]ManifestItem),
	}

	opf.Metadata = parseMetadata(&pkg.Metadata)

	// Parse manifest. Duplicate ids overwrite: last occurrence wins.
	for _, item := range pkg.Manifest.Items {
		if item.ID == "" || item.Href == "" || item.MediaType == "" {
			continue
		}

		manifestItem := ManifestItem{
			ID:        item.ID,
			Href:      item.Href,
			MediaType: item.MediaType,
		}

		// Parse properties (space-separated)
		if item.Properties != "" {
			manifestItem.Properties = strings.Fields(item.Properties)
		}

		if _, seen := opf.Manifest[item.ID]; !seen {
			opf.ManifestOrder = append(opf.ManifestOrder, item.ID)
		}
		opf.Manifest[item.ID] = manifestItem
	}

	// Parse spine, keeping only entries that resolve to a manifest item.
	for _, itemRef := range pkg.Spine.ItemRefs {
		if itemRef.IDRef == "" {
			continue
		}
		if _, ok := opf.Manifest[itemRef.IDRef]; !ok {
			continue
		}

		opf.Spine = append(opf.Spine, SpineItem{
			IDRef:  itemRef.IDRef,
			Linear: itemRef.Linear != "no",
		})
	}

	// Parse guide
	for _, ref := range pkg.Guide.References {
		opf.Guide = append(opf.Guide, GuideReference{
			Type:  ref.Type,
			Title: ref.Title,
			Href:  ref.Href,
		})
	}

	return opf, nil
}

// parseMetadata parses the metadata section, falling back to fixed
// defaults for title and creator.
func parseMetadata(meta *opfMetadata) Metadata {
	md := Metadata{
		Title:   DefaultTitle,
		Creator: DefaultAuthor,
	}

	if len(meta.Title) > 0 && meta.Title[0] != "" {
		md.Title = meta.Title[0]
	}
	if len(meta.Creator) > 0 && meta.Creator[0] != "" {
		md.Creator = meta.Creator[0]
	}
	if len(meta.Language) > 0 {
		md.Language = meta.Language[0]
	}
	if len(meta.Identifier) > 0 {
		md.Identifier = meta.Identifier[0]
	}
	if len(meta.Publisher) > 0 {
		md.Publisher = meta.Publisher[0]
	}

	// EPUB 2.0 cover meta element
	for _, m := range meta.Meta {
		if m.Name == "cover" && m.Content != "" {
			md.CoverID = m.Content
			break
		}
	}

	return md
}
