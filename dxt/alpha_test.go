package dxt_test

import (
	"testing"

	"github.com/nbauma109/go-dxt-encoder/dxt"
)

func TestDXT3AlphaQuantization(t *testing.T) {
	// multiples of 17 sit exactly on the 4-bit grid
	pixels := make([]uint32, 16)
	for i := range pixels {
		alpha := uint32(i * 17)
		pixels[i] = alpha<<24 | 0x00ff0000
	}

	block := encodeOneBlock(t, pixels, dxt.FormatDXT3)
	alpha := decodeAlphaDxt3(block[:8])
	for i := 0; i < 16; i++ {
		if alpha[i] != i*17 {
			t.Fatalf("pixel %d: alpha %d, want %d", i, alpha[i], i*17)
		}
	}
}

func TestDXT3AlphaRounding(t *testing.T) {
	pixels := make([]uint32, 16)
	for i := range pixels {
		pixels[i] = uint32(i*16)<<24 | 0x00102030
	}

	block := encodeOneBlock(t, pixels, dxt.FormatDXT3)
	alpha := decodeAlphaDxt3(block[:8])
	for i := 0; i < 16; i++ {
		want := i * 16
		if absInt(alpha[i]-want) > 9 {
			t.Fatalf("pixel %d: alpha %d too far from %d", i, alpha[i], want)
		}
	}
}

func TestDXT5AlphaBinaryTransparency(t *testing.T) {
	// pure 0/255 alpha must select the 5-level codebook, whose reserved
	// slots reproduce both extremes with zero error
	pixels := make([]uint32, 16)
	for i := range pixels {
		pixels[i] = 0x00336699
	}
	pixels[14] |= 0xff000000
	pixels[15] |= 0xff000000

	block := encodeOneBlock(t, pixels, dxt.FormatDXT5)

	if a0, a1 := int(block[0]), int(block[1]); a0 > a1 {
		t.Fatalf("expected 5-level alpha block (alpha0 <= alpha1), got alpha0=%d alpha1=%d", a0, a1)
	}

	alpha := decodeAlphaDxt5(block[:8])
	for i := 0; i < 16; i++ {
		want := 0
		if i >= 14 {
			want = 255
		}
		if alpha[i] != want {
			t.Fatalf("pixel %d: alpha %d, want %d", i, alpha[i], want)
		}
	}
}

func TestDXT5AlphaGradient(t *testing.T) {
	pixels := make([]uint32, 16)
	for i := range pixels {
		pixels[i] = uint32(i*17)<<24 | 0x00804020
	}

	block := encodeOneBlock(t, pixels, dxt.FormatDXT5)
	alpha := decodeAlphaDxt5(block[:8])
	for i := 0; i < 16; i++ {
		want := i * 17
		// interpolated 8-entry codebook over a [0,255] range: codes sit
		// at most half a step (255/7/2, rounded up) from any value
		if absInt(alpha[i]-want) > 19 {
			t.Fatalf("pixel %d: alpha %d too far from %d", i, alpha[i], want)
		}
	}
}
