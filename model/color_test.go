package model

import (
	"testing"

	"github.com/pkg/errors"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{in: "#ff8000", want: RGB{255, 128, 0}},
		{in: "0a0b0c", want: RGB{10, 11, 12}},
		{in: " #FFFFFF ", want: RGB{255, 255, 255}},
		{in: "#fff", wantErr: true},
		{in: "#gg0000", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Fatalf("ParseHex(%q) err = %v, want ErrInvalidArgument", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			if back, _ := ParseHex(got.Hex()); back != got {
				t.Errorf("Hex() %q does not parse back to %+v", got.Hex(), got)
			}
		})
	}
}

func TestParsePalette(t *testing.T) {
	palette, err := ParsePalette([]string{"#ff0000", "#00ff00"})
	if err != nil {
		t.Fatal(err)
	}
	if len(palette) != 2 || palette[1] != (RGB{0, 255, 0}) {
		t.Errorf("unexpected palette %+v", palette)
	}
	if _, err = ParsePalette([]string{"#ff0000", "nope"}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("bad entry err = %v, want ErrInvalidArgument", err)
	}
}

func TestShade(t *testing.T) {
	c := RGB{200, 100, 50}
	if got := c.Shade(1); got != c {
		t.Errorf("Shade(1) = %+v", got)
	}
	if got := c.Shade(0); got != (RGB{}) {
		t.Errorf("Shade(0) = %+v", got)
	}
	if got := c.Shade(0.5); got != (RGB{100, 50, 25}) {
		t.Errorf("Shade(0.5) = %+v", got)
	}
	if got := c.Shade(3); got != c {
		t.Errorf("Shade clamps above 1, got %+v", got)
	}
}

func TestInheritColor(t *testing.T) {
	parents := []RGB{{0x11, 0x12, 0x13}, {0x21, 0x22, 0x23}, {0x31, 0x32, 0x33}}
	got, err := InheritColor(parents)
	if err != nil {
		t.Fatal(err)
	}
	if want := (RGB{0x11, 0x22, 0x33}); got != want {
		t.Errorf("InheritColor = %+v, want %+v", got, want)
	}

	for _, n := range []int{0, 2, 4, 8} {
		_, err = InheritColor(make([]RGB, n))
		if !errors.Is(err, ErrInvariantViolation) {
			t.Errorf("%d parents: err = %v, want ErrInvariantViolation", n, err)
		}
		if errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%d parents: invariant failure must not look like bad input", n)
		}
	}
}
