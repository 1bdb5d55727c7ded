package dxt

// sourceBlock is one precomputed endpoint pair for the single-color fit:
// raw 5- or 6-bit start/end levels plus the absolute channel error their
// reconstruction leaves against the target value.
type sourceBlock struct {
	start, end, err uint8
}

// singleColorLookup holds the best sourceBlock per index parity: entry 0
// reconstructs the target through codebook index 0, entry 1 through the
// interpolated codebook index 2.
type singleColorLookup [2]sourceBlock

// singleColorFit handles blocks that reduce to exactly one distinct color.
// Instead of searching, it reads the optimal endpoints per channel straight
// from the precomputed tables, making it the exact-fit baseline the
// iterative fitters are measured against.
type singleColorFit struct {
	colors *colorSet
	color  [3]int

	start     vec3
	end       vec3
	index     int
	err       int
	bestError int
}

func newSingleColorFit(colors *colorSet) *singleColorFit {
	fit := &singleColorFit{
		colors:    colors,
		bestError: int(^uint(0) >> 1),
	}
	value := colors.points[0]
	fit.color[0] = floatToInt(255.0*value.x, 255)
	fit.color[1] = floatToInt(255.0*value.y, 255)
	fit.color[2] = floatToInt(255.0*value.z, 255)
	return fit
}

func (fit *singleColorFit) compress3(block []byte) {
	lookups := [3]*[256]singleColorLookup{&lookup53, &lookup63, &lookup53}
	fit.computeEndPoints(&lookups)

	if fit.err < fit.bestError {
		var indices [16]int
		fit.colors.remapIndices([]int{fit.index}, &indices)
		writeColorBlock3(fit.start, fit.end, &indices, block)
		fit.bestError = fit.err
	}
}

func (fit *singleColorFit) compress4(block []byte) {
	lookups := [3]*[256]singleColorLookup{&lookup54, &lookup64, &lookup54}
	fit.computeEndPoints(&lookups)

	if fit.err < fit.bestError {
		var indices [16]int
		fit.colors.remapIndices([]int{fit.index}, &indices)
		writeColorBlock4(fit.start, fit.end, &indices, block)
		fit.bestError = fit.err
	}
}

// computeEndPoints tries both index parities and keeps the one with the
// lower summed squared per-channel error; parity 0 wins ties.
func (fit *singleColorFit) computeEndPoints(lookups *[3]*[256]singleColorLookup) {
	fit.err = int(^uint(0) >> 1)
	for index := 0; index < 2; index++ {
		var sources [3]sourceBlock
		err := 0
		for channel := 0; channel < 3; channel++ {
			sources[channel] = lookups[channel][fit.color[channel]][index]
			diff := int(sources[channel].err)
			err += diff * diff
		}

		if err < fit.err {
			fit.start = vec3{
				float32(sources[0].start) / 31.0,
				float32(sources[1].start) / 63.0,
				float32(sources[2].start) / 31.0,
			}
			fit.end = vec3{
				float32(sources[0].end) / 31.0,
				float32(sources[1].end) / 63.0,
				float32(sources[2].end) / 31.0,
			}
			fit.index = 2 * index
			fit.err = err
		}
	}
}
