package maps

import (
	"html"
	"strings"
)

// flattenInstructions reduces the provider's HTML navigation instructions
// to plain text. Block-level tags become newlines so markers like
// "Toll road" stay on their own line, matching the plain-text instructions
// the toll classifier was written against.
func flattenInstructions(htmlInstructions string) string {
	var b strings.Builder
	b.Grow(len(htmlInstructions))

	inTag := false
	var tag strings.Builder
	for _, r := range htmlInstructions {
		switch {
		case r == '<':
			inTag = true
			tag.Reset()
		case r == '>':
			inTag = false
			if isBlockTag(tag.String()) {
				b.WriteByte('\n')
			}
		case inTag:
			tag.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(html.UnescapeString(b.String()))
}

func isBlockTag(tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	return strings.HasPrefix(tag, "div") || strings.HasPrefix(tag, "br")
}
