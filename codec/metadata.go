package codec

import (
	"bytes"
	"log/slog"
	"strings"

	"github.com/bep/imagemeta"

	imageformat "github.com/anatolykoptev/go-imageformat"
)

// Metadata holds the EXIF/XMP fields an encoder should carry over to its output.
type Metadata struct {
	Orientation      int // EXIF orientation 1-8, 0 when absent
	Copyright        string
	Artist           string
	Software         string
	DateTimeOriginal string
	Creator          string // dc:creator
	Rights           string // dc:rights
	HasICC           bool   // embedded ICC color profile
}

// metaFormats maps formats to the imagemeta parser to use. imagemeta does not
// detect formats itself, so formats missing here are not parsed.
var metaFormats = map[imageformat.Format]imagemeta.ImageFormat{
	imageformat.FormatJPEG: imagemeta.JPEG,
	imageformat.FormatPNG:  imagemeta.PNG,
}

var wantedTags = map[imagemeta.Source]map[string]bool{
	imagemeta.EXIF: {
		"Orientation":      true,
		"Copyright":        true,
		"Artist":           true,
		"Software":         true,
		"DateTimeOriginal": true,
	},
	imagemeta.XMP: {
		"Creator": true,
		"Rights":  true,
	},
}

// ReadMetadata parses metadata from data encoded as f with default Options.
func ReadMetadata(f imageformat.Format, data []byte) *Metadata {
	return (*Options)(nil).ReadMetadata(f, data)
}

// ReadMetadata parses EXIF and XMP metadata from data encoded as f and reports
// whether it embeds an ICC profile.
// Returns nil if data is empty, larger than MaxMetadataBytes, in a format
// without a metadata parser, cannot be parsed, or carries none of the fields.
func (o *Options) ReadMetadata(f imageformat.Format, data []byte) *Metadata {
	opts := o.withDefaults()

	if len(data) == 0 {
		return nil
	}
	if len(data) > opts.MaxMetadataBytes {
		slog.Debug("imageformat: metadata input too large", "format", f.String(), "bytes", len(data), "max", opts.MaxMetadataBytes)
		return nil
	}
	mf, ok := metaFormats[f]
	if !ok {
		return nil
	}

	meta := &Metadata{}
	found := false

	_, err := imagemeta.Decode(imagemeta.Options{
		R:           bytes.NewReader(data),
		ImageFormat: mf,
		Sources:     imagemeta.EXIF | imagemeta.XMP,
		ShouldHandleTag: func(ti imagemeta.TagInfo) bool {
			if tags, ok := wantedTags[ti.Source]; ok {
				return tags[ti.Tag]
			}
			return false
		},
		HandleTag: func(ti imagemeta.TagInfo) error {
			if setTag(meta, ti) {
				found = true
			}
			return nil
		},
	})
	if err != nil {
		slog.Debug("imageformat: metadata decode failed", "format", f.String(), "error", err.Error())
		return nil
	}

	if detect, ok := iccDetectors[f]; ok && detect(data) {
		meta.HasICC = true
		found = true
	}

	if !found {
		return nil
	}
	return meta
}

func setTag(meta *Metadata, ti imagemeta.TagInfo) bool {
	if ti.Tag == "Orientation" {
		o := tagValueInt(ti.Value)
		if o < 1 || o > 8 {
			return false
		}
		meta.Orientation = o
		return true
	}

	s := strings.TrimRight(tagValueString(ti.Value), "\x00 ")
	if s == "" {
		return false
	}
	switch ti.Tag {
	case "Copyright":
		meta.Copyright = s
	case "Artist":
		meta.Artist = s
	case "Software":
		meta.Software = s
	case "DateTimeOriginal":
		meta.DateTimeOriginal = s
	case "Creator":
		meta.Creator = s
	case "Rights":
		meta.Rights = s
	default:
		return false
	}
	return true
}

// tagValueString extracts a string from a tag value.
// XMP values may be string or []string (from altList/seqList).
func tagValueString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		if len(val) > 0 {
			return val[0]
		}
	case []any:
		if len(val) > 0 {
			if s, ok := val[0].(string); ok {
				return s
			}
		}
	}
	return ""
}

func tagValueInt(v any) int {
	switch val := v.(type) {
	case uint8:
		return int(val)
	case uint16:
		return int(val)
	case uint32:
		return int(val)
	case int:
		return val
	case int64:
		return int(val)
	case []uint16:
		if len(val) > 0 {
			return int(val[0])
		}
	}
	return 0
}
