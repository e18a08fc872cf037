//go:build avif

package codec

import (
	"github.com/bep/imagemeta"

	imageformat "github.com/anatolykoptev/go-imageformat"
)

// AVIF has no decoder in this build, only metadata.
func init() {
	metaFormats[imageformat.FormatAVIF] = imagemeta.AVIF
}
