package epub

import "testing"

func makeOPF(items []ManifestItem, coverID string, guide []GuideReference) *OPF {
	opf := &OPF{
		Metadata: Metadata{Title: DefaultTitle, Creator: DefaultAuthor, CoverID: coverID},
		Manifest: make(map[string]ManifestItem),
		Guide:    guide,
	}
	for _, item := range items {
		opf.Manifest[item.ID] = item
		opf.ManifestOrder = append(opf.ManifestOrder, item.ID)
	}
	return opf
}

func TestDetectCover_ByProperty(t *testing.T) {
	opf := makeOPF([]ManifestItem{
		{ID: "img1", Href: "images/photo.jpg", MediaType: "image/jpeg"},
		{ID: "img2", Href: "images/front.jpg", MediaType: "image/jpeg", Properties: []string{"cover-image"}},
	}, "", nil)

	info := opf.DetectCover()
	if info == nil {
		t.Fatal("DetectCover returned nil")
	}
	if info.ManifestID != "img2" || info.DetectionMethod != "properties" {
		t.Errorf("DetectCover = %+v, want img2 via properties", info)
	}
}

func TestDetectCover_ByMeta(t *testing.T) {
	opf := makeOPF([]ManifestItem{
		{ID: "img1", Href: "images/front.jpg", MediaType: "image/jpeg"},
	}, "img1", nil)

	info := opf.DetectCover()
	if info == nil {
		t.Fatal("DetectCover returned nil")
	}
	if info.ManifestID != "img1" || info.DetectionMethod != "meta" {
		t.Errorf("DetectCover = %+v, want img1 via meta", info)
	}
}

func TestDetectCover_ByGuide(t *testing.T) {
	opf := makeOPF([]ManifestItem{
		{ID: "img1", Href: "images/front.jpg", MediaType: "image/jpeg"},
	}, "", []GuideReference{{Type: "cover", Href: "images/front.jpg#top"}})

	info := opf.DetectCover()
	if info == nil {
		t.Fatal("DetectCover returned nil")
	}
	if info.DetectionMethod != "guide" {
		t.Errorf("DetectionMethod = %q, want guide", info.DetectionMethod)
	}
}

func TestDetectCover_ByFilename(t *testing.T) {
	opf := makeOPF([]ManifestItem{
		{ID: "img1", Href: "images/photo.jpg", MediaType: "image/jpeg"},
		{ID: "img2", Href: "images/Cover-Front.png", MediaType: "image/png"},
	}, "", nil)

	info := opf.DetectCover()
	if info == nil {
		t.Fatal("DetectCover returned nil")
	}
	if info.ManifestID != "img2" || info.DetectionMethod != "filename" {
		t.Errorf("DetectCover = %+v, want img2 via filename", info)
	}
}

func TestDetectCover_SVGExcluded(t *testing.T) {
	opf := makeOPF([]ManifestItem{
		{ID: "img1", Href: "images/cover.svg", MediaType: "image/svg+xml"},
	}, "", nil)

	if info := opf.DetectCover(); info != nil {
		t.Errorf("DetectCover = %+v, want nil for SVG-only manifest", info)
	}
}

func TestDetectCover_NoCover(t *testing.T) {
	opf := makeOPF([]ManifestItem{
		{ID: "ch1", Href: "ch1.xhtml", MediaType: "application/xhtml+xml"},
	}, "", nil)

	if info := opf.DetectCover(); info != nil {
		t.Errorf("DetectCover = %+v, want nil", info)
	}
}
