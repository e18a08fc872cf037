package imageformat

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingExtension is returned when no extension can be determined, either
	// because the path has none or because it is not valid text.
	ErrMissingExtension = errors.New("imageformat: missing extension")

	// ErrUnknownExtension matches every *UnknownExtensionError via errors.Is.
	ErrUnknownExtension = errors.New("imageformat: unknown extension")
)

// UnknownExtensionError reports an extension that is present but not in the
// table of this build.
type UnknownExtensionError struct {
	Ext string // verbatim, as supplied
}

func (e *UnknownExtensionError) Error() string {
	return fmt.Sprintf("imageformat: unknown extension %q", e.Ext)
}

func (e *UnknownExtensionError) Is(target error) bool {
	return target == ErrUnknownExtension
}
