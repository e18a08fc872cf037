package codec

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image/jpeg"
	"testing"
)

const (
	fixtureArtist    = "Jane Doe"
	fixtureCopyright = "(c) 2024 Jane Doe"
	fixtureCreator   = "Jane Doe Studio"
	fixtureRights    = "CC BY 4.0"
)

const fixtureXMP = `<x:xmpmeta xmlns:x="adobe:ns:meta/">
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
<rdf:Description rdf:about="" xmlns:dc="http://purl.org/dc/elements/1.1/">
<dc:creator><rdf:Seq><rdf:li>` + fixtureCreator + `</rdf:li></rdf:Seq></dc:creator>
<dc:rights><rdf:Alt><rdf:li xml:lang="x-default">` + fixtureRights + `</rdf:li></rdf:Alt></dc:rights>
</rdf:Description>
</rdf:RDF>
</x:xmpmeta>`

// exifTIFF builds a big-endian TIFF block holding IFD0 with Orientation=6,
// Artist and Copyright.
func exifTIFF() []byte {
	const entries = 3
	dataOff := uint32(8 + 2 + entries*12 + 4)
	artist := append([]byte(fixtureArtist), 0)
	copyright := append([]byte(fixtureCopyright), 0)

	var b bytes.Buffer
	b.WriteString("MM")
	_ = binary.Write(&b, binary.BigEndian, uint16(42))
	_ = binary.Write(&b, binary.BigEndian, uint32(8))
	_ = binary.Write(&b, binary.BigEndian, uint16(entries))

	entry := func(tag, typ uint16, count, value uint32) {
		_ = binary.Write(&b, binary.BigEndian, tag)
		_ = binary.Write(&b, binary.BigEndian, typ)
		_ = binary.Write(&b, binary.BigEndian, count)
		_ = binary.Write(&b, binary.BigEndian, value)
	}
	entry(0x0112, 3, 1, 6<<16) // SHORT, left-justified in the value field
	entry(0x013B, 2, uint32(len(artist)), dataOff)
	entry(0x8298, 2, uint32(len(copyright)), dataOff+uint32(len(artist)))
	_ = binary.Write(&b, binary.BigEndian, uint32(0))

	b.Write(artist)
	b.Write(copyright)
	return b.Bytes()
}

func jpegSegment(marker byte, payload []byte) []byte {
	seg := []byte{0xFF, marker, 0, 0}
	binary.BigEndian.PutUint16(seg[2:], uint16(len(payload)+2))
	return append(seg, payload...)
}

// jpegWithMetadata returns a decodable JPEG carrying EXIF, XMP and an ICC
// profile segment right after SOI.
func jpegWithMetadata(t *testing.T) []byte {
	t.Helper()

	var img bytes.Buffer
	if err := jpeg.Encode(&img, gradient(16, 16, false), nil); err != nil {
		t.Fatalf("jpeg.Encode: %v", err)
	}
	raw := img.Bytes()

	var out bytes.Buffer
	out.Write(raw[:2]) // SOI
	out.Write(jpegSegment(0xE1, append([]byte("Exif\x00\x00"), exifTIFF()...)))
	out.Write(jpegSegment(0xE1, append([]byte("http://ns.adobe.com/xap/1.0/\x00"), fixtureXMP...)))
	out.Write(jpegSegment(0xE2, append([]byte("ICC_PROFILE\x00\x01\x01"), make([]byte, 32)...)))
	out.Write(raw[2:])
	return out.Bytes()
}

// pngWithICC inserts an iCCP chunk after IHDR.
func pngWithICC(t *testing.T) []byte {
	t.Helper()

	raw := encodePNG(t, gradient(8, 8, false))
	const afterIHDR = 8 + 12 + 13

	data := []byte("sRGB\x00\x00\x78\x9c\x03\x00\x00\x00\x00\x01")
	chunk := make([]byte, 8, 12+len(data))
	binary.BigEndian.PutUint32(chunk, uint32(len(data)))
	copy(chunk[4:], "iCCP")
	chunk = append(chunk, data...)
	crc := crc32.ChecksumIEEE(chunk[4:])
	chunk = binary.BigEndian.AppendUint32(chunk, crc)

	var out bytes.Buffer
	out.Write(raw[:afterIHDR])
	out.Write(chunk)
	out.Write(raw[afterIHDR:])
	return out.Bytes()
}
