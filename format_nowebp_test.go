//go:build !webp

package imageformat

import (
	"errors"
	"testing"
)

func TestFormatWebP_Disabled(t *testing.T) {
	t.Parallel()

	_, err := FromExt("webp")
	var ue *UnknownExtensionError
	if !errors.As(err, &ue) || ue.Ext != "webp" {
		t.Errorf("FromExt(webp) error = %v, want unknown extension without the webp tag", err)
	}
	for _, f := range Formats() {
		if f.String() == "WebP" {
			t.Errorf("Formats() contains WebP without the webp tag")
		}
	}
}
