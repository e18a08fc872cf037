// Package codec selects image decoders and encoders for a classified
// imageformat.Format.
package codec

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"

	imageformat "github.com/anatolykoptev/go-imageformat"
)

var (
	// ErrNoDecoder is returned for formats this build can classify but not decode.
	ErrNoDecoder = errors.New("codec: no decoder for format")

	// ErrNoEncoder is returned for formats this build can classify but not encode.
	ErrNoEncoder = errors.New("codec: no encoder for format")
)

// Decoder reads one image encoding.
type Decoder interface {
	Decode(r io.Reader) (image.Image, error)
	DecodeConfig(r io.Reader) (image.Config, error)
}

// Encoder writes one image encoding.
type Encoder interface {
	Encode(w io.Writer, img image.Image, opts Options) error
}

type decodeFuncs struct {
	decode func(io.Reader) (image.Image, error)
	config func(io.Reader) (image.Config, error)
}

func (d decodeFuncs) Decode(r io.Reader) (image.Image, error) { return d.decode(r) }
func (d decodeFuncs) DecodeConfig(r io.Reader) (image.Config, error) { return d.config(r) }

type jpegEncoder struct{}

func (jpegEncoder) Encode(w io.Writer, img image.Image, opts Options) error {
	opts = opts.withDefaults()
	return jpeg.Encode(w, img, &jpeg.Options{Quality: opts.JPEGQuality})
}

type pngEncoder struct{}

func (pngEncoder) Encode(w io.Writer, img image.Image, opts Options) error {
	enc := &png.Encoder{CompressionLevel: opts.PNGCompression}
	return enc.Encode(w, img)
}

// Filled at package init; optional formats add themselves from tagged files.
var (
	decoders = map[imageformat.Format]Decoder{
		imageformat.FormatJPEG: decodeFuncs{decode: jpeg.Decode, config: jpeg.DecodeConfig},
		imageformat.FormatPNG:  decodeFuncs{decode: png.Decode, config: png.DecodeConfig},
	}
	encoders = map[imageformat.Format]Encoder{
		imageformat.FormatJPEG: jpegEncoder{},
		imageformat.FormatPNG:  pngEncoder{},
	}
)

// DecoderFor returns the decoder registered for f.
func DecoderFor(f imageformat.Format) (Decoder, error) {
	if d, ok := decoders[f]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNoDecoder, f)
}

// EncoderFor returns the encoder registered for f.
func EncoderFor(f imageformat.Format) (Encoder, error) {
	if e, ok := encoders[f]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNoEncoder, f)
}

// DecoderForPath classifies path by extension and returns the matching decoder.
// Classification errors are returned unchanged.
func DecoderForPath(path string) (Decoder, imageformat.Format, error) {
	f, err := imageformat.FromPath(path)
	if err != nil {
		return nil, 0, err
	}
	d, err := DecoderFor(f)
	if err != nil {
		return nil, f, err
	}
	return d, f, nil
}

// Decode decodes r as format f.
func Decode(f imageformat.Format, r io.Reader) (image.Image, error) {
	d, err := DecoderFor(f)
	if err != nil {
		return nil, err
	}
	img, err := d.Decode(r)
	if err != nil {
		slog.Debug("imageformat: decode failed", "format", f.String(), "error", err.Error())
		return nil, fmt.Errorf("codec: decode %s: %w", f, err)
	}
	return img, nil
}

// DecodeConfig reads only the dimensions and color model of r as format f.
func DecodeConfig(f imageformat.Format, r io.Reader) (image.Config, error) {
	d, err := DecoderFor(f)
	if err != nil {
		return image.Config{}, err
	}
	cfg, err := d.DecodeConfig(r)
	if err != nil {
		return image.Config{}, fmt.Errorf("codec: decode config %s: %w", f, err)
	}
	return cfg, nil
}

// Encode writes img to w as format f.
func (o *Options) Encode(f imageformat.Format, w io.Writer, img image.Image) error {
	opts := o.withDefaults()

	e, err := EncoderFor(f)
	if err != nil {
		return err
	}
	if err := e.Encode(w, img, opts); err != nil {
		return fmt.Errorf("codec: encode %s: %w", f, err)
	}
	return nil
}
