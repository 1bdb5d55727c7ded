// Package dxt implements a DXT1/DXT3/DXT5 (S3TC) block texture compressor.
//
// Input pixels are 32-bit ARGB values: byte 0 holds blue, byte 1 green,
// byte 2 red and byte 3 alpha, counting from the least significant byte.
// Images are tiled into 4x4 pixel blocks in raster order; each block
// compresses to 8 bytes (DXT1) or 16 bytes (DXT3/DXT5). The output byte
// layout is fixed and bit-exact, so encoded data can be embedded directly
// into texture containers.
package dxt

// Format selects the target compression variant.
type Format int

const (
	// FormatUnspecified is the zero value and is rejected by all operations.
	FormatUnspecified Format = iota
	FormatDXT1
	FormatDXT3
	FormatDXT5
)

func (f Format) String() string {
	switch f {
	case FormatDXT1:
		return "DXT1"
	case FormatDXT3:
		return "DXT3"
	case FormatDXT5:
		return "DXT5"
	default:
		return "unspecified"
	}
}

// BlockSize returns the compressed size of one 4x4 block in bytes, or 0 for
// an invalid format.
func (f Format) BlockSize() int {
	switch f {
	case FormatDXT1:
		return 8
	case FormatDXT3, FormatDXT5:
		return 16
	default:
		return 0
	}
}

func (f Format) valid() bool {
	return f == FormatDXT1 || f == FormatDXT3 || f == FormatDXT5
}

// ImageSize returns the exact compressed size in bytes for an image of the
// given dimensions.
func ImageSize(width, height int, f Format) (int, error) {
	if !f.valid() {
		return 0, newErrorf(ErrBadFormat, "dxt: no compression format specified")
	}
	if err := validateGeometry(width, height); err != nil {
		return 0, err
	}
	return (width / 4) * (height / 4) * f.BlockSize(), nil
}

func validateGeometry(width, height int) error {
	if width <= 0 || height <= 0 {
		return newErrorf(ErrBadGeometry, "dxt: invalid width or height %dx%d", width, height)
	}
	if width&3 != 0 || height&3 != 0 {
		return newErrorf(ErrBadGeometry, "dxt: width and height must be a multiple of 4, got %dx%d", width, height)
	}
	return nil
}

// Encode compresses a full image sequentially into dst.
//
// The pixel buffer must hold at least width*height ARGB values and dst must
// hold at least the size reported by ImageSize. On any precondition violation
// an error is returned before anything is written. Blocks are emitted in
// raster order of 4x4 tiles, which fixes the byte offset of every block.
func Encode(dst []byte, pixels []uint32, width, height int, f Format) error {
	size, err := ImageSize(width, height, f)
	if err != nil {
		return err
	}
	if len(pixels) < width*height {
		return newErrorf(ErrShortInput, "dxt: insufficient source data: need %d pixels, have %d", width*height, len(pixels))
	}
	if len(dst) < size {
		return newErrorf(ErrShortOutput, "dxt: insufficient output space: need %d bytes, have %d", size, len(dst))
	}

	bw := width / 4
	bh := height / 4
	blockSize := f.BlockSize()
	var in [16]uint32
	ofs := 0
	for y := 0; y < bh; y++ {
		for x := 0; x < bw; x++ {
			src := (y*4)*width + x*4
			for row := 0; row < 4; row++ {
				copy(in[row*4:row*4+4], pixels[src:src+4])
				src += width
			}
			encodeBlock(dst[ofs:ofs+blockSize], in[:], f)
			ofs += blockSize
		}
	}
	return nil
}

// EncodeBlock compresses a single 4x4 block of 16 ARGB pixels into dst.
func EncodeBlock(dst []byte, pixels []uint32, f Format) error {
	if !f.valid() {
		return newErrorf(ErrBadFormat, "dxt: no compression format specified")
	}
	if len(pixels) < 16 {
		return newErrorf(ErrShortInput, "dxt: insufficient source data: need 16 pixels, have %d", len(pixels))
	}
	if len(dst) < f.BlockSize() {
		return newErrorf(ErrShortOutput, "dxt: insufficient output space: need %d bytes, have %d", f.BlockSize(), len(dst))
	}
	encodeBlock(dst, pixels, f)
	return nil
}

// encodeBlock compresses one validated 4x4 block. The color endpoints and
// indices always occupy the trailing 8 bytes; DXT3/DXT5 prepend 8 bytes of
// independently compressed alpha.
func encodeBlock(dst []byte, pixels []uint32, f Format) {
	colorOfs := 0
	if f == FormatDXT3 || f == FormatDXT5 {
		colorOfs = 8
	}
	colorBlock := dst[colorOfs : colorOfs+8]

	colors := newColorSet(pixels, f)

	// One fitter per block, chosen by the number of distinct colors.
	var compress3, compress4 func(block []byte)
	switch {
	case colors.count == 1:
		fit := newSingleColorFit(colors)
		compress3, compress4 = fit.compress3, fit.compress4
	case colors.count == 0:
		fit := newRangeFit(colors)
		compress3, compress4 = fit.compress3, fit.compress4
	default:
		fit := newClusterFit(colors)
		compress3, compress4 = fit.compress3, fit.compress4
	}

	if f == FormatDXT1 {
		compress3(colorBlock)
		if !colors.transparent {
			compress4(colorBlock)
		}
	} else {
		compress4(colorBlock)
	}

	switch f {
	case FormatDXT3:
		compressAlphaDxt3(pixels, dst[:8])
	case FormatDXT5:
		compressAlphaDxt5(pixels, dst[:8])
	}
}
