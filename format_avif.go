//go:build avif

package imageformat

// FormatAVIF is compiled in with the avif build tag.
const FormatAVIF Format = 5

func init() {
	register(FormatAVIF, "AVIF", "image/avif", "avif")
}
