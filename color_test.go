package talkie

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#fff", Color{1, 1, 1, 1}},
		{"#000000", Color{0, 0, 0, 1}},
		{"#ff000080", Color{1, 0, 0, 128.0 / 255}},
		{"  #FF0000 ", Color{1, 0, 0, 1}},
		{"white", Color{1, 1, 1, 1}},
		{"SkyBlue", Color{135.0 / 255, 206.0 / 255, 235.0 / 255, 1}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#12345", "#gggggg", "blurple"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q): expected error", in)
		}
	}
}

func TestColorSkyMatchesCSS(t *testing.T) {
	c, err := ParseColor("skyblue")
	if err != nil {
		t.Fatal(err)
	}
	if c != ColorSky {
		t.Errorf("ColorSky = %+v, want %+v", ColorSky, c)
	}
}

func TestColorRGBAPremultiplies(t *testing.T) {
	got := Color{R: 1, G: 0.5, B: 0, A: 0.5}.RGBA()
	want := color.RGBA{R: 127, G: 63, B: 0, A: 127}
	if got != want {
		t.Errorf("RGBA = %v, want %v", got, want)
	}
}
