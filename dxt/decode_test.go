package dxt_test

import (
	"testing"

	"github.com/nbauma109/go-dxt-encoder/dxt"
)

// Reference DXT decoder used to verify encoder output. Decoding is not part
// of the library, so the tests carry their own minimal implementation of the
// standard S3TC reconstruction rules.

func expand5(v int) int { return v<<3 | v>>2 }
func expand6(v int) int { return v<<2 | v>>4 }

type rgba struct {
	r, g, b, a int
}

func decode565(v int) rgba {
	return rgba{
		r: expand5(v >> 11 & 31),
		g: expand6(v >> 5 & 63),
		b: expand5(v & 31),
		a: 255,
	}
}

// decodeColorBlock reconstructs the 16 pixels of the 8-byte color half of a
// block. In 3-color mode (color0 <= color1) index 3 decodes as transparent
// black.
func decodeColorBlock(block []byte) [16]rgba {
	c0 := int(block[0]) | int(block[1])<<8
	c1 := int(block[2]) | int(block[3])<<8

	p0 := decode565(c0)
	p1 := decode565(c1)

	var codes [4]rgba
	codes[0] = p0
	codes[1] = p1
	if c0 > c1 {
		codes[2] = rgba{(2*p0.r + p1.r) / 3, (2*p0.g + p1.g) / 3, (2*p0.b + p1.b) / 3, 255}
		codes[3] = rgba{(p0.r + 2*p1.r) / 3, (p0.g + 2*p1.g) / 3, (p0.b + 2*p1.b) / 3, 255}
	} else {
		codes[2] = rgba{(p0.r + p1.r) / 2, (p0.g + p1.g) / 2, (p0.b + p1.b) / 2, 255}
		codes[3] = rgba{0, 0, 0, 0}
	}

	var out [16]rgba
	for i := 0; i < 16; i++ {
		idx := int(block[4+i/4]) >> (2 * (i % 4)) & 3
		out[i] = codes[idx]
	}
	return out
}

func colorIndex(block []byte, i int) int {
	return int(block[4+i/4]) >> (2 * (i % 4)) & 3
}

// decodeAlphaDxt3 reconstructs DXT3 alpha: 4-bit values scaled by 17.
func decodeAlphaDxt3(block []byte) [16]int {
	var out [16]int
	for i := 0; i < 8; i++ {
		out[2*i] = int(block[i]&0x0f) * 17
		out[2*i+1] = int(block[i]>>4) * 17
	}
	return out
}

// decodeAlphaDxt5 reconstructs DXT5 alpha using the standard 5-level
// (alpha0 <= alpha1, with exact 0 and 255 slots) or 7-level codebook.
func decodeAlphaDxt5(block []byte) [16]int {
	a0 := int(block[0])
	a1 := int(block[1])

	var codes [8]int
	codes[0] = a0
	codes[1] = a1
	if a0 > a1 {
		for i := 2; i < 8; i++ {
			codes[i] = ((8-i)*a0 + (i-1)*a1) / 7
		}
	} else {
		for i := 2; i < 6; i++ {
			codes[i] = ((6-i)*a0 + (i-1)*a1) / 5
		}
		codes[6] = 0
		codes[7] = 255
	}

	var out [16]int
	for half := 0; half < 2; half++ {
		bits := 0
		for j := 0; j < 3; j++ {
			bits |= int(block[2+3*half+j]) << (8 * j)
		}
		for j := 0; j < 8; j++ {
			out[8*half+j] = codes[bits>>(3*j)&7]
		}
	}
	return out
}

// decodeBlock reconstructs a full block of the given format.
func decodeBlock(block []byte, f dxt.Format) [16]rgba {
	colorOfs := 0
	if f != dxt.FormatDXT1 {
		colorOfs = 8
	}
	out := decodeColorBlock(block[colorOfs:])

	switch f {
	case dxt.FormatDXT3:
		alpha := decodeAlphaDxt3(block[:8])
		for i := range out {
			out[i].a = alpha[i]
		}
	case dxt.FormatDXT5:
		alpha := decodeAlphaDxt5(block[:8])
		for i := range out {
			out[i].a = alpha[i]
		}
	}
	return out
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func encodeOneBlock(t *testing.T, pixels []uint32, f dxt.Format) []byte {
	t.Helper()
	block := make([]byte, f.BlockSize())
	if err := dxt.EncodeBlock(block, pixels, f); err != nil {
		t.Fatalf("EncodeBlock(%v): %v", f, err)
	}
	return block
}

func TestRoundTripTwoColorBlocks(t *testing.T) {
	// blocks built from two distinct grid-representable colors must come
	// back within one 565 grid step per channel
	pairs := [][2]uint32{
		{0xff000000, 0xffffffff},
		{0xffff0000, 0xff0000ff},
		{0xff080810, 0xff8482a5},
		{0xff102031, 0xffe7bef7},
	}
	for _, pair := range pairs {
		pixels := make([]uint32, 16)
		for i := range pixels {
			pixels[i] = pair[i&1]
		}
		for _, f := range []dxt.Format{dxt.FormatDXT1, dxt.FormatDXT3, dxt.FormatDXT5} {
			block := encodeOneBlock(t, pixels, f)
			decoded := decodeBlock(block, f)
			for i, px := range decoded {
				want := pair[i&1]
				wr := int(want >> 16 & 0xff)
				wg := int(want >> 8 & 0xff)
				wb := int(want & 0xff)
				if absInt(px.r-wr) > 8 || absInt(px.g-wg) > 4 || absInt(px.b-wb) > 8 {
					t.Fatalf("%v pixel %d: decoded (%d,%d,%d) too far from (%d,%d,%d)",
						f, i, px.r, px.g, px.b, wr, wg, wb)
				}
			}
		}
	}
}

func TestRoundTripOpaqueAlpha(t *testing.T) {
	pixels := make([]uint32, 16)
	for i := range pixels {
		pixels[i] = 0xff400000 + uint32(i)*0x050505
	}
	for _, f := range []dxt.Format{dxt.FormatDXT3, dxt.FormatDXT5} {
		block := encodeOneBlock(t, pixels, f)
		decoded := decodeBlock(block, f)
		for i, px := range decoded {
			if px.a != 255 {
				t.Fatalf("%v pixel %d: alpha %d, want 255", f, i, px.a)
			}
		}
	}
}
