package hal

import "testing"

func TestBytesPerPixel(t *testing.T) {
	if got := PixelFormatRGB565.BytesPerPixel(); got != 2 {
		t.Fatalf("rgb565: got %d", got)
	}
	if got := PixelFormat(0).BytesPerPixel(); got != 0 {
		t.Fatalf("unknown: got %d", got)
	}
}
