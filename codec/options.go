package codec

import "image/png"

const (
	// DefaultJPEGQuality is the JPEG quality used when Options.JPEGQuality is unset.
	DefaultJPEGQuality = 85

	// DefaultSimilarityThreshold is the dHash distance below which two images
	// count as the same picture.
	DefaultSimilarityThreshold = 10

	// DefaultMaxMetadataBytes caps the input ReadMetadata will parse.
	DefaultMaxMetadataBytes = 16 << 20
)

// Options configures encoding, metadata reading and output verification.
// Zero values mean "use defaults". Methods never modify the receiver, so one
// Options may be shared between goroutines.
type Options struct {
	JPEGQuality         int                  // 1-100 (default: DefaultJPEGQuality)
	PNGCompression      png.CompressionLevel // default: png.DefaultCompression
	SimilarityThreshold int                  // default: DefaultSimilarityThreshold
	MaxMetadataBytes    int                  // default: DefaultMaxMetadataBytes

	// Verify makes Transcode decode its own output and compare it to the source
	// with Similar, failing with ErrDegraded when they differ.
	Verify bool

	// OnTranscode is called after every successful Transcode. Optional.
	OnTranscode func(TranscodeEvent)
}

// TranscodeEvent describes a finished Transcode call.
type TranscodeEvent struct {
	From     string // source format name
	To       string // target format name
	Bytes    int    // encoded size
	Distance int    // dHash distance, -1 when Verify is off
}

// withDefaults returns a copy of o with zero-value fields filled in.
// A nil receiver yields all defaults.
func (o *Options) withDefaults() Options {
	var c Options
	if o != nil {
		c = *o
	}
	if c.JPEGQuality <= 0 {
		c.JPEGQuality = DefaultJPEGQuality
	}
	if c.JPEGQuality > 100 {
		c.JPEGQuality = 100
	}
	if c.SimilarityThreshold <= 0 {
		c.SimilarityThreshold = DefaultSimilarityThreshold
	}
	if c.MaxMetadataBytes <= 0 {
		c.MaxMetadataBytes = DefaultMaxMetadataBytes
	}
	return c
}
