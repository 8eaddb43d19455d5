package sanitizer

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// htmlEscaper substitutes the ampersand before anything else. strings.Replacer
// scans the input once, so entities it emits are never encoded twice.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

var stripPolicy = bluemonday.StrictPolicy()

// EscapeHTML encodes & < > " ' and / as HTML entities.
// The result is safe for text nodes and quoted attribute values, and never
// contains a raw occurrence of any of those characters.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// UnescapeHTML decodes HTML entities. UnescapeHTML(EscapeHTML(s)) == s for
// every valid UTF-8 string.
func UnescapeHTML(s string) string {
	return html.UnescapeString(s)
}

// StripTags removes all HTML markup and returns the decoded plain text.
// Content of script and style elements is dropped entirely.
func StripTags(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	return html.UnescapeString(stripPolicy.Sanitize(s))
}
