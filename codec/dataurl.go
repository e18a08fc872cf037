package codec

import (
	"encoding/base64"
	"fmt"

	imageformat "github.com/anatolykoptev/go-imageformat"
)

// DataURL creates a data: URI for data encoded as f.
// Inactive formats fall back to application/octet-stream.
func DataURL(f imageformat.Format, data []byte) string {
	mime := f.MIMEType()
	if mime == "" {
		mime = "application/octet-stream"
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
}
