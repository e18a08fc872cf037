//go:build jxl

package imageformat

// FormatJPEGXL is compiled in with the jxl build tag.
const FormatJPEGXL Format = 3

func init() {
	register(FormatJPEGXL, "JPEG-XL", "image/jxl", "jxl")
}
