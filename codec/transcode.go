package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	imageformat "github.com/anatolykoptev/go-imageformat"
)

// ErrDegraded is returned by Transcode with Verify set when the encoded output no
// longer looks like the source.
var ErrDegraded = errors.New("codec: output differs from source")

// Transcode decodes r as from and writes it to w as to. Nothing is written to w
// unless encoding (and verification, when enabled) succeeded.
func (o *Options) Transcode(from imageformat.Format, r io.Reader, to imageformat.Format, w io.Writer) error {
	opts := o.withDefaults()

	src, err := Decode(from, r)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := opts.Encode(to, &buf, src); err != nil {
		return err
	}

	dist := -1
	if opts.Verify {
		out, err := Decode(to, bytes.NewReader(buf.Bytes()))
		if err != nil {
			return fmt.Errorf("codec: verify: %w", err)
		}
		var same bool
		same, dist, err = opts.Similar(src, out)
		if err != nil {
			return fmt.Errorf("codec: verify: %w", err)
		}
		if !same {
			slog.Debug("imageformat: transcode degraded", "from", from.String(), "to", to.String(), "distance", dist)
			return fmt.Errorf("%w: distance %d", ErrDegraded, dist)
		}
	}

	n := buf.Len()
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("codec: write: %w", err)
	}

	if opts.OnTranscode != nil {
		opts.OnTranscode(TranscodeEvent{
			From:     from.String(),
			To:       to.String(),
			Bytes:    n,
			Distance: dist,
		})
	}
	return nil
}

// TranscodePath classifies both paths by extension and transcodes between them.
// It does not open either path.
func (o *Options) TranscodePath(srcPath string, r io.Reader, dstPath string, w io.Writer) error {
	from, err := imageformat.FromPath(srcPath)
	if err != nil {
		return fmt.Errorf("codec: source %q: %w", srcPath, err)
	}
	to, err := imageformat.FromPath(dstPath)
	if err != nil {
		return fmt.Errorf("codec: destination %q: %w", dstPath, err)
	}
	return o.Transcode(from, r, to, w)
}
