package dxt_test

import (
	"strings"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/nbauma109/go-dxt-encoder/dxt"
)

func TestImageSize(t *testing.T) {
	cases := []struct {
		w, h   int
		format dxt.Format
		want   int
	}{
		{4, 4, dxt.FormatDXT1, 8},
		{4, 4, dxt.FormatDXT3, 16},
		{4, 4, dxt.FormatDXT5, 16},
		{8, 4, dxt.FormatDXT1, 16},
		{1024, 1024, dxt.FormatDXT1, 1024 * 1024 / 2},
		{1024, 1024, dxt.FormatDXT5, 1024 * 1024},
	}
	for _, c := range cases {
		got, err := dxt.ImageSize(c.w, c.h, c.format)
		if err != nil {
			t.Fatalf("ImageSize(%d, %d, %v): %v", c.w, c.h, c.format, err)
		}
		if got != c.want {
			t.Fatalf("ImageSize(%d, %d, %v): got %d want %d", c.w, c.h, c.format, got, c.want)
		}
	}
}

func TestEncodeOutputLength(t *testing.T) {
	for _, f := range []dxt.Format{dxt.FormatDXT1, dxt.FormatDXT3, dxt.FormatDXT5} {
		for _, dim := range [][2]int{{4, 4}, {8, 12}, {64, 16}} {
			w, h := dim[0], dim[1]
			want := (w / 4) * (h / 4) * f.BlockSize()
			pixels := testImage(w, h, 1)
			out := make([]byte, want)
			if err := dxt.Encode(out, pixels, w, h, f); err != nil {
				t.Fatalf("Encode(%dx%d, %v): %v", w, h, f, err)
			}
		}
	}
}

func TestEncodePreconditions(t *testing.T) {
	pixels := testImage(8, 8, 1)
	out := make([]byte, 1024)

	cases := []struct {
		name string
		err  error
		want dxt.ErrorCode
	}{
		{"unspecified format", dxt.Encode(out, pixels, 8, 8, dxt.FormatUnspecified), dxt.ErrBadFormat},
		{"unknown format", dxt.Encode(out, pixels, 8, 8, dxt.Format(99)), dxt.ErrBadFormat},
		{"zero width", dxt.Encode(out, pixels, 0, 8, dxt.FormatDXT1), dxt.ErrBadGeometry},
		{"negative height", dxt.Encode(out, pixels, 8, -4, dxt.FormatDXT1), dxt.ErrBadGeometry},
		{"width not multiple of 4", dxt.Encode(out, pixels, 5, 8, dxt.FormatDXT1), dxt.ErrBadGeometry},
		{"height not multiple of 4", dxt.Encode(out, pixels, 8, 6, dxt.FormatDXT1), dxt.ErrBadGeometry},
		{"short input", dxt.Encode(out, pixels[:63], 8, 8, dxt.FormatDXT1), dxt.ErrShortInput},
		{"short output", dxt.Encode(out[:31], pixels, 8, 8, dxt.FormatDXT1), dxt.ErrShortOutput},
	}
	for _, c := range cases {
		if c.err == nil {
			t.Fatalf("%s: got nil error, want code %v", c.name, c.want)
		}
		if got := dxt.ErrorCodeOf(c.err); got != c.want {
			t.Fatalf("%s: got code %v (%v), want %v", c.name, got, c.err, c.want)
		}
	}
}

func TestEncodeShortOutputReportsRequiredSize(t *testing.T) {
	pixels := testImage(8, 8, 1)
	err := dxt.Encode(make([]byte, 8), pixels, 8, 8, dxt.FormatDXT5)
	if err == nil {
		t.Fatalf("Encode: got nil error, want short output")
	}
	// 2x2 blocks of 16 bytes
	if want := "64"; !strings.Contains(err.Error(), want) {
		t.Fatalf("short output error %q does not report required size %s", err.Error(), want)
	}
}

func TestEncodeBoundaryDimensions(t *testing.T) {
	// smallest possible image
	small := testImage(4, 4, 2)
	out := make([]byte, 8)
	if err := dxt.Encode(out, small, 4, 4, dxt.FormatDXT1); err != nil {
		t.Fatalf("Encode(4x4): %v", err)
	}

	// large image; uniform content keeps the single-color fast path hot
	const dim = 1024
	large := make([]uint32, dim*dim)
	for i := range large {
		large[i] = 0xff336699
	}
	size, err := dxt.ImageSize(dim, dim, dxt.FormatDXT1)
	if err != nil {
		t.Fatalf("ImageSize(%d): %v", dim, err)
	}
	big := make([]byte, size)
	if err := dxt.Encode(big, large, dim, dim, dxt.FormatDXT1); err != nil {
		t.Fatalf("Encode(%dx%d): %v", dim, dim, err)
	}
}

func TestEncodeIdempotent(t *testing.T) {
	const w, h = 32, 32
	pixels := testImage(w, h, 3)
	for _, f := range []dxt.Format{dxt.FormatDXT1, dxt.FormatDXT3, dxt.FormatDXT5} {
		size, err := dxt.ImageSize(w, h, f)
		if err != nil {
			t.Fatalf("ImageSize: %v", err)
		}
		out1 := make([]byte, size)
		out2 := make([]byte, size)
		if err := dxt.Encode(out1, pixels, w, h, f); err != nil {
			t.Fatalf("Encode(%v) #1: %v", f, err)
		}
		if err := dxt.Encode(out2, pixels, w, h, f); err != nil {
			t.Fatalf("Encode(%v) #2: %v", f, err)
		}
		if xxhash.Sum64(out1) != xxhash.Sum64(out2) {
			t.Fatalf("%v: repeated encode produced different bytes", f)
		}
	}
}

func TestDXT1TransparentPixel(t *testing.T) {
	pixels := make([]uint32, 16)
	for i := range pixels {
		pixels[i] = 0xffff0000
	}
	const transparentAt = 6
	pixels[transparentAt] = 0x7f00ff00 // alpha below 128

	block := encodeOneBlock(t, pixels, dxt.FormatDXT1)

	c0 := int(block[0]) | int(block[1])<<8
	c1 := int(block[2]) | int(block[3])<<8
	if c0 > c1 {
		t.Fatalf("transparent block encoded in 4-color mode: c0=%#04x c1=%#04x", c0, c1)
	}
	for i := 0; i < 16; i++ {
		idx := colorIndex(block, i)
		if i == transparentAt {
			if idx != 3 {
				t.Fatalf("pixel %d: index %d, want transparent index 3", i, idx)
			}
		} else if idx == 3 {
			t.Fatalf("pixel %d: unexpected transparent index", i)
		}
	}
}

func TestDXT1RedBlueClusterScenario(t *testing.T) {
	// 15 opaque red pixels and one opaque blue pixel exercise the cluster
	// fit; red and blue are exactly representable in 565, so the winning
	// endpoints reproduce them bit-exactly
	const blueAt = 11
	pixels := make([]uint32, 16)
	for i := range pixels {
		pixels[i] = 0xffff0000
	}
	pixels[blueAt] = 0xff0000ff

	block := encodeOneBlock(t, pixels, dxt.FormatDXT1)
	decoded := decodeColorBlock(block)

	blueCount := 0
	for i, px := range decoded {
		var want rgba
		if i == blueAt {
			want = rgba{0, 0, 255, 255}
		} else {
			want = rgba{255, 0, 0, 255}
		}
		if px != want {
			t.Fatalf("pixel %d: decoded %+v, want %+v", i, px, want)
		}
		if px.b == 255 {
			blueCount++
		}
	}
	if blueCount != 1 {
		t.Fatalf("expected exactly one blue pixel, got %d", blueCount)
	}
}

func TestUniformColorBlocks(t *testing.T) {
	// colors whose channels sit exactly on the 565 grid must survive a
	// round trip untouched; arbitrary colors stay within the single-color
	// table error bound
	exact := []uint32{0xff000000, 0xffffffff, 0xff080410, 0xffff0000, 0xff00ff00, 0xff0000ff}
	for _, color := range exact {
		pixels := make([]uint32, 16)
		for i := range pixels {
			pixels[i] = color
		}
		for _, f := range []dxt.Format{dxt.FormatDXT1, dxt.FormatDXT3, dxt.FormatDXT5} {
			block := encodeOneBlock(t, pixels, f)
			decoded := decodeBlock(block, f)
			want := rgba{
				r: int(color >> 16 & 0xff),
				g: int(color >> 8 & 0xff),
				b: int(color & 0xff),
				a: 255,
			}
			for i, px := range decoded {
				if px != want {
					t.Fatalf("%v pixel %d: decoded %+v, want %+v", f, i, px, want)
				}
			}
		}
	}

	arbitrary := []uint32{0xffc86432, 0xff123456, 0xff7b2da9}
	for _, color := range arbitrary {
		pixels := make([]uint32, 16)
		for i := range pixels {
			pixels[i] = color
		}
		block := encodeOneBlock(t, pixels, dxt.FormatDXT1)
		decoded := decodeColorBlock(block)
		wr := int(color >> 16 & 0xff)
		wg := int(color >> 8 & 0xff)
		wb := int(color & 0xff)
		for i := 1; i < 16; i++ {
			if decoded[i] != decoded[0] {
				t.Fatalf("uniform block decoded unevenly at pixel %d", i)
			}
		}
		px := decoded[0]
		if absInt(px.r-wr) > 4 || absInt(px.g-wg) > 4 || absInt(px.b-wb) > 4 {
			t.Fatalf("color %#08x: decoded (%d,%d,%d) outside table error bound", color, px.r, px.g, px.b)
		}
	}
}

// testImage builds a deterministic pseudo-random opaque image.
func testImage(w, h int, seed uint32) []uint32 {
	pixels := make([]uint32, w*h)
	state := seed
	for i := range pixels {
		state = state*1664525 + 1013904223
		pixels[i] = state | 0xff000000
	}
	return pixels
}
