// Package imageformat maps file extensions and paths to the image encoding they
// imply, so callers can pick a codec without looking at the file itself.
//
// The set of formats is fixed per build. JPEG and PNG are always present;
// JPEG-XL, WebP and AVIF are compiled in with the jxl, webp and avif build tags.
package imageformat

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"
)

// Format identifies a still-image encoding. Values are stable across builds so a
// Format can be stored or compared regardless of which optional tags were set.
type Format int

const (
	FormatJPEG Format = 1 // always compiled in
	FormatPNG  Format = 2 // always compiled in
)

// descriptor holds everything known about one active format.
type descriptor struct {
	format Format
	name   string
	mime   string
	exts   []string // first entry is canonical
}

var (
	descriptors []descriptor
	byExt       = map[string]Format{}
)

func init() {
	register(FormatJPEG, "JPEG", "image/jpeg", "jpg", "jpeg")
	register(FormatPNG, "PNG", "image/png", "png")
}

// register adds a format to the extension table. Only called from init.
func register(f Format, name, mime string, exts ...string) {
	for _, ext := range exts {
		if prev, ok := byExt[ext]; ok {
			panic(fmt.Sprintf("imageformat: extension %q registered for %s and %s", ext, prev, name))
		}
		byExt[ext] = f
	}
	descriptors = append(descriptors, descriptor{format: f, name: name, mime: mime, exts: exts})
	slices.SortFunc(descriptors, func(a, b descriptor) int { return int(a.format - b.format) })
}

func lookup(f Format) (descriptor, bool) {
	for _, d := range descriptors {
		if d.format == f {
			return d, true
		}
	}
	return descriptor{}, false
}

// FromExt classifies a bare extension such as "jpg" (no leading dot).
// Matching is exact and case-sensitive: "PNG" is not "png".
//
// An extension that is not valid UTF-8 cannot be read as text and yields
// ErrMissingExtension. Anything else not in the table yields an
// *UnknownExtensionError carrying ext verbatim.
func FromExt(ext string) (Format, error) {
	if !utf8.ValidString(ext) {
		return 0, ErrMissingExtension
	}
	if f, ok := byExt[ext]; ok {
		return f, nil
	}
	return 0, &UnknownExtensionError{Ext: ext}
}

// FromPath classifies the extension of the final element of path. The path does
// not need to exist.
//
// The extension is the text strictly after the last "." in the final element.
// There is none when the element has no dot, when its only dot is the leading
// one (".bashrc"), or when it ends in a dot ("photo."); all of these return
// ErrMissingExtension without consulting the table.
func FromPath(path string) (Format, error) {
	ext, ok := extension(path)
	if !ok {
		return 0, ErrMissingExtension
	}
	return FromExt(ext)
}

func extension(path string) (string, bool) {
	name := filepath.Base(path)
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return "", false
	}
	return name[i+1:], true
}

// Formats returns the formats compiled into this build, ordered by value.
func Formats() []Format {
	out := make([]Format, 0, len(descriptors))
	for _, d := range descriptors {
		out = append(out, d.format)
	}
	return out
}

// Valid reports whether f is compiled into this build.
func (f Format) Valid() bool {
	_, ok := lookup(f)
	return ok
}

func (f Format) String() string {
	if d, ok := lookup(f); ok {
		return d.name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// MIMEType returns the media type for f, or "" if f is not active.
func (f Format) MIMEType() string {
	d, _ := lookup(f)
	return d.mime
}

// Extensions returns every extension that classifies to f. The first one is
// the canonical extension.
func (f Format) Extensions() []string {
	d, _ := lookup(f)
	return slices.Clone(d.exts)
}

// Extension returns the canonical extension for f, without a leading dot.
func (f Format) Extension() string {
	d, ok := lookup(f)
	if !ok {
		return ""
	}
	return d.exts[0]
}

// MarshalText encodes f as its canonical extension.
func (f Format) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("imageformat: cannot marshal %s", f)
	}
	return []byte(f.Extension()), nil
}

// UnmarshalText decodes an extension with the same rules as FromExt.
func (f *Format) UnmarshalText(text []byte) error {
	v, err := FromExt(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
