package tile

import "strings"

// uriEscaper percent-encodes the characters that break SVG data URIs when
// embedded in CSS url() values. Double quotes become single quotes so the
// URI can sit inside a double-quoted CSS string. The replacer handles every
// character in one pass, so '%' never double-encodes.
var uriEscaper = strings.NewReplacer(
	"%", "%25",
	`"`, "'",
	"<", "%3C",
	">", "%3E",
	"#", "%23",
	"&", "%26",
	"\n", "%0A",
)

// DataURI encodes an SVG document as a percent-escaped data URI, usable
// directly as a repeating CSS background image.
func DataURI(svg []byte) string {
	return "data:image/svg+xml;charset=utf-8," + uriEscaper.Replace(string(svg))
}
