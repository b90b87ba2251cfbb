package orbit

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ff0000", Red, false},
		{"#0000ff", Blue, false},
		{"#ffcc00", Sun, false},
		{"#fff", White, false},
		{"red", Color{}, true},
		{"", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	if got := Yellow.Hex(); got != "#ffff00" {
		t.Errorf("Hex() = %q, want #ffff00", got)
	}

	c, err := ParseColor(Green.Hex())
	if err != nil || c != Green {
		t.Errorf("hex round trip failed: %+v, %v", c, err)
	}
}

func TestColorBlend(t *testing.T) {
	start := Color{R: 25, G: 25, B: 50}
	end := Color{R: 75, G: 50, B: 150}

	if got := start.Blend(end, 0); got != start {
		t.Errorf("Blend(0) = %+v, want %+v", got, start)
	}
	if got := start.Blend(end, 1); got != end {
		t.Errorf("Blend(1) = %+v, want %+v", got, end)
	}
}
