//go:build webp

package codec

import (
	"github.com/bep/imagemeta"
	"golang.org/x/image/webp"

	imageformat "github.com/anatolykoptev/go-imageformat"
)

// WebP is decode-only: x/image has no encoder.
func init() {
	decoders[imageformat.FormatWebP] = decodeFuncs{decode: webp.Decode, config: webp.DecodeConfig}
	metaFormats[imageformat.FormatWebP] = imagemeta.WebP
	iccDetectors[imageformat.FormatWebP] = webpHasICC
}
