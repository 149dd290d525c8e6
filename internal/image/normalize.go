// Package image canonicalizes the heterogeneous image references that
// end up in stored shop data: relative paths, absolute URLs, data URIs,
// and the occasional leaked local file path from a browser upload field.
package image

import (
	"regexp"
	"strings"
)

// Fallback is the stand-in shown when an item has no usable image.
const Fallback = "jpg/gedicht.jpeg"

var driveLetter = regexp.MustCompile(`^[a-zA-Z]:\\`)

// Normalize canonicalizes a raw image reference. The rules apply in
// order; anything unrecognized passes through unchanged. Normalize is
// idempotent.
func Normalize(raw string) string {
	src := strings.TrimSpace(raw)
	switch {
	case src == "":
		return ""
	case strings.Contains(src, "fakepath"):
		// Browser file inputs expose C:\fakepath\... — never renderable.
		return ""
	case driveLetter.MatchString(src):
		return ""
	case strings.HasPrefix(src, "data:image"):
		return src
	case strings.HasPrefix(src, "http://"),
		strings.HasPrefix(src, "https://"),
		strings.HasPrefix(src, "//"):
		return src
	case strings.HasPrefix(src, "../jpg/"):
		return "jpg/" + src[len("../jpg/"):]
	case strings.HasPrefix(src, "./jpg/"):
		return src[2:]
	case strings.HasPrefix(src, "/jpg/"):
		return "jpg/" + src[len("/jpg/"):]
	}
	return src
}

// OrFallback returns the normalized reference, or Fallback when
// normalization yields nothing renderable.
func OrFallback(raw string) string {
	if src := Normalize(raw); src != "" {
		return src
	}
	return Fallback
}
