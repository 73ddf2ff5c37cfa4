package xmltree

import "strings"

var valueEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&apos;",
	`"`, "&quot;",
)

// EncodeValue escapes the five XML special characters to their named
// entity forms. The empty string is valid input and encodes to itself.
func EncodeValue(s string) string {
	return valueEscaper.Replace(s)
}
