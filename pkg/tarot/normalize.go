package tarot

import (
	"regexp"
	"strings"
)

// separatorRun matches any run of hyphen, underscore or whitespace characters.
var separatorRun = regexp.MustCompile(`[-_\s]+`)

// imageExtensions lists the recognized upload extensions. ".jpeg" must be
// checked before ".jpg" so the longer suffix wins.
var imageExtensions = []string{".jpeg", ".jpg", ".png", ".webp"}

// NormalizeFilename reduces an uploaded filename to a canonical token:
// lower-cased, image extension stripped, separator runs collapsed to a single
// underscore. The function is pure and idempotent, so "The Fool.png",
// "the-fool.PNG" and "THE_FOOL.jpeg" all normalize to "the_fool".
func NormalizeFilename(filename string) string {
	token := strings.ToLower(strings.TrimSpace(filename))

	// Strip recognized extensions until none remains, so a doubled extension
	// like "the_fool.png.png" reduces fully in a single pass.
	for stripped := true; stripped; {
		stripped = false
		for _, ext := range imageExtensions {
			if strings.HasSuffix(token, ext) {
				token = strings.TrimSuffix(token, ext)
				stripped = true
				break
			}
		}
	}

	token = separatorRun.ReplaceAllString(token, "_")
	return strings.Trim(token, "_")
}
