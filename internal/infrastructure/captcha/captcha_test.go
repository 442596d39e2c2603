package captcha

import (
	"bytes"
	"image/jpeg"
	"testing"

	"github.com/google/uuid"

	"news_server/internal/config"
)

func TestGenerateProducesJPEG(t *testing.T) {
	g := New(config.CaptchaConfig{Length: 4, Width: 120, Height: 40})

	name, text, img, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := uuid.Parse(name); err != nil {
		t.Fatalf("expected uuid name, got %q", name)
	}
	if len(text) != 4 {
		t.Fatalf("expected 4 char text, got %q", text)
	}

	decoded, err := jpeg.Decode(bytes.NewReader(img))
	if err != nil {
		t.Fatalf("decode jpeg: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 120 || b.Dy() != 40 {
		t.Fatalf("unexpected size %v", b)
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	g := New(config.CaptchaConfig{})
	if g.length != 4 || g.width != 120 || g.height != 40 {
		t.Fatalf("unexpected defaults %+v", g)
	}
}

func TestGenerateIsRandom(t *testing.T) {
	g := New(config.CaptchaConfig{Length: 6})
	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		_, text, _, err := g.Generate()
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		seen[text] = true
	}
	if len(seen) < 2 {
		t.Fatalf("expected different texts across calls, got %v", seen)
	}
}
