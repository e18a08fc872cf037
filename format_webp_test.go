//go:build webp

package imageformat

import "testing"

func TestFormatWebP_Enabled(t *testing.T) {
	t.Parallel()

	got, err := FromExt("webp")
	if err != nil {
		t.Fatalf("FromExt(webp) error: %v", err)
	}
	if got != FormatWebP {
		t.Errorf("FromExt(webp) = %s, want WebP", got)
	}
	if got, err := FromPath("images/sample.webp"); err != nil || got != FormatWebP {
		t.Errorf("FromPath(sample.webp) = %v, %v", got, err)
	}
	if FormatWebP.MIMEType() != "image/webp" {
		t.Errorf("MIMEType() = %q, want image/webp", FormatWebP.MIMEType())
	}
}
