package dxt

import "math"

// transparentIndex is the fixed palette index that 3-color DXT1 blocks
// reserve for transparent pixels.
const transparentIndex = 3

// argb extracts the channel at byte position pos (0..3 = blue, green, red,
// alpha) from a packed ARGB pixel.
func argb(color uint32, pos uint) uint32 {
	return (color >> ((pos & 3) << 3)) & 0xff
}

// colorSet reduces the 16 pixels of a block to its distinct colors.
//
// For DXT1 any pixel with alpha below 128 is excluded from the set and maps
// to the transparent index instead. Remaining pixels merge by exact RGB
// equality; each contributes a weight of (alpha+1)/256 so that even fully
// transparent pixels keep a non-zero pull on the fit, and the accumulated
// weights are square-rooted afterwards to damp stacks of low-alpha
// duplicates. Read-only once built.
type colorSet struct {
	points  [16]vec3
	weights [16]float32
	remap   [16]int

	count       int
	transparent bool
}

func newColorSet(pixels []uint32, f Format) *colorSet {
	s := &colorSet{}
	isDXT1 := f == FormatDXT1

	for i := 0; i < 16; i++ {
		if isDXT1 && argb(pixels[i], 3) < 128 {
			s.remap[i] = -1
			s.transparent = true
			continue
		}

		// look back for a pixel with the same color
		for j := 0; ; j++ {
			if j == i {
				// normalize coordinates to [0, 1]
				x := float32(argb(pixels[i], 2)) / 255.0
				y := float32(argb(pixels[i], 1)) / 255.0
				z := float32(argb(pixels[i], 0)) / 255.0
				w := float32(argb(pixels[i], 3)+1) / 256.0

				s.points[s.count] = vec3{x, y, z}
				s.weights[s.count] = w
				s.remap[i] = s.count
				s.count++
				break
			}

			match := argb(pixels[i], 0) == argb(pixels[j], 0) &&
				argb(pixels[i], 1) == argb(pixels[j], 1) &&
				argb(pixels[i], 2) == argb(pixels[j], 2) &&
				(argb(pixels[j], 3) >= 128 || !isDXT1)
			if match {
				index := s.remap[j]
				w := float32(argb(pixels[i], 3)+1) / 256.0
				s.weights[index] += w
				s.remap[i] = index
				break
			}
		}
	}

	for i := 0; i < s.count; i++ {
		s.weights[i] = float32(math.Sqrt(float64(s.weights[i])))
	}
	return s
}

// remapIndices spreads per-point palette indices back over the 16 original
// pixel slots, substituting the transparent index for excluded pixels.
func (s *colorSet) remapIndices(source []int, target *[16]int) {
	for i := 0; i < 16; i++ {
		j := s.remap[i]
		if j == -1 {
			target[i] = transparentIndex
		} else {
			target[i] = source[j]
		}
	}
}
