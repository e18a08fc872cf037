package codec

import (
	"bytes"
	"encoding/binary"

	imageformat "github.com/anatolykoptev/go-imageformat"
)

// iccDetectors report whether data embeds an ICC profile. Container walks only;
// the profile itself is not parsed.
var iccDetectors = map[imageformat.Format]func([]byte) bool{
	imageformat.FormatJPEG: jpegHasICC,
	imageformat.FormatPNG:  pngHasICC,
}

var (
	jpegICCMarker = []byte("ICC_PROFILE\x00")
	pngSignature  = []byte("\x89PNG\r\n\x1a\n")
)

// jpegHasICC walks the marker segments up to the first scan looking for an
// APP2 ICC_PROFILE segment.
func jpegHasICC(data []byte) bool {
	if len(data) < 4 || data[0] != 0xFF || data[1] != 0xD8 {
		return false
	}
	for i := 2; i+4 <= len(data); {
		if data[i] != 0xFF {
			return false
		}
		marker := data[i+1]
		switch {
		case marker == 0xFF: // fill byte
			i++
			continue
		case marker == 0x01 || (marker >= 0xD0 && marker <= 0xD7):
			i += 2
			continue
		case marker == 0xDA || marker == 0xD9:
			return false
		}
		n := int(binary.BigEndian.Uint16(data[i+2:]))
		if n < 2 || i+2+n > len(data) {
			return false
		}
		if marker == 0xE2 && bytes.HasPrefix(data[i+4:i+2+n], jpegICCMarker) {
			return true
		}
		i += 2 + n
	}
	return false
}

// pngHasICC looks for an iCCP chunk before the image data.
func pngHasICC(data []byte) bool {
	if !bytes.HasPrefix(data, pngSignature) {
		return false
	}
	for i := len(pngSignature); i+8 <= len(data); {
		n := int(binary.BigEndian.Uint32(data[i:]))
		typ := string(data[i+4 : i+8])
		switch typ {
		case "iCCP":
			return true
		case "IDAT", "IEND":
			return false
		}
		i += 12 + n
	}
	return false
}

// webpHasICC looks for an ICCP chunk in a RIFF/WEBP container.
func webpHasICC(data []byte) bool {
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WEBP" {
		return false
	}
	for i := 12; i+8 <= len(data); {
		if string(data[i:i+4]) == "ICCP" {
			return true
		}
		n := int(binary.LittleEndian.Uint32(data[i+4:]))
		i += 8 + n + n&1
	}
	return false
}
