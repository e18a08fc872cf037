//go:build webp

package imageformat

// FormatWebP is compiled in with the webp build tag.
const FormatWebP Format = 4

func init() {
	register(FormatWebP, "WebP", "image/webp", "webp")
}
