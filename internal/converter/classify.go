package converter

import (
	"strings"

	"github.com/akumaenjeru/Epub2Txt/internal/epub"
)

// tocPositionLimit bounds the filename heuristic to the first spine
// entries, where front matter lives.
const tocPositionLimit = 3

// isTOCItem decides whether a spine entry at the given 0-based position is
// a table-of-contents-like document to skip rather than narrative content.
//
// Rules, first match wins:
//  1. properties contain "nav" (EPUB 3 navigation document)
//  2. position < 3 and the href contains "toc" or "contents", or the
//     manifest id contains "toc" (case-insensitive)
//
// This is a heuristic; occasional false positives and negatives are
// accepted in exchange for not parsing navigation documents.
func isTOCItem(position int, item epub.ManifestItem) bool {
	if item.HasProperty("nav") {
		return true
	}

	if position < tocPositionLimit {
		href := strings.ToLower(item.Href)
		id := strings.ToLower(item.ID)
		if strings.Contains(href, "toc") || strings.Contains(href, "contents") ||
			strings.Contains(id, "toc") {
			return true
		}
	}

	return false
}
