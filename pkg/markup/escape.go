package markup

import "strings"

// Entity tables for the two escaping contexts. Text content only needs the
// markup metacharacters rewritten; attribute values are emitted inside
// double quotes, so quotes and literal whitespace must not survive either.
var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"\n", "&#10;",
		"\r", "&#13;",
		"\t", "&#9;",
	)
)

// escapeText escapes text for safe inclusion in element content. Clean
// strings come back unchanged without allocating.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// escapeAttr escapes text for safe inclusion in a double-quoted attribute
// value.
func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
