package ember

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestPixmapSetGetPixel(t *testing.T) {
	p := NewPixmap(4, 4)
	c := RGB(1, 0, 0)
	p.SetPixel(2, 1, c)

	got := p.GetPixel(2, 1)
	if got.R != 1 || got.G != 0 || got.B != 0 || got.A != 1 {
		t.Errorf("GetPixel(2,1) = %+v, want opaque red", got)
	}
	if got := p.GetPixel(0, 0); got != Transparent {
		t.Errorf("GetPixel(0,0) = %+v, want transparent", got)
	}

	// Out-of-bounds writes are ignored and reads return transparent.
	p.SetPixel(-1, 0, c)
	p.SetPixel(4, 4, c)
	if got := p.GetPixel(7, 7); got != Transparent {
		t.Errorf("out-of-bounds GetPixel = %+v, want transparent", got)
	}
}

func TestPixmapFill(t *testing.T) {
	p := NewPixmap(3, 2)
	p.Fill(White)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := p.GetPixel(x, y); got != White {
				t.Fatalf("GetPixel(%d,%d) = %+v, want white", x, y, got)
			}
		}
	}
}

func TestPixmapEncode(t *testing.T) {
	p := NewPixmap(8, 6)
	p.Fill(RGB(0, 0, 1))

	for _, format := range []string{"png", "tiff", "bmp"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := p.EncodeTo(&buf, format); err != nil {
				t.Fatalf("EncodeTo(%q) error: %v", format, err)
			}
			if buf.Len() == 0 {
				t.Errorf("EncodeTo(%q) produced no data", format)
			}
		})
	}

	var buf bytes.Buffer
	if err := p.EncodeTo(&buf, "webp"); err == nil {
		t.Errorf("EncodeTo(\"webp\") succeeded, want error")
	}
}

func TestPixmapWriteFileRoundTrip(t *testing.T) {
	p := NewPixmap(5, 7)
	p.SetPixel(3, 4, RGB(0, 1, 0))

	path := filepath.Join(t.TempDir(), "out.png")
	if err := p.WriteFile(path, "png"); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	f, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(f))
	if err != nil {
		t.Fatalf("decoding written png: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 5 || bounds.Dy() != 7 {
		t.Errorf("decoded size = %dx%d, want 5x7", bounds.Dx(), bounds.Dy())
	}
}
