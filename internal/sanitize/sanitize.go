// Package sanitize strips HTML markup from user-supplied text before storage.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// StripTags removes all HTML tags from s, returning only the text content.
// Entities introduced by the sanitizer are decoded back so plain text like
// "a & b" round-trips unchanged.
func StripTags(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
