package dxt

import "math"

// rangeFit projects every point onto the principal axis of the weighted
// color covariance and takes the minimum and maximum projections as the
// endpoints, snapped to the 565 grid. Cheap, and the only fitter that is
// well defined for an empty point set (a fully transparent DXT1 block).
type rangeFit struct {
	colors *colorSet
	metric vec3

	start     vec3
	end       vec3
	bestError float32
}

func newRangeFit(colors *colorSet) *rangeFit {
	fit := &rangeFit{
		colors:    colors,
		metric:    vec3{0.2126, 0.7152, 0.0722},
		bestError: math.MaxFloat32,
	}

	count := colors.count
	values := colors.points[:]

	covariance := computeWeightedCovariance(count, values, colors.weights[:])
	principle := computePrincipleComponent(covariance)

	var start, end vec3
	if count > 0 {
		start = values[0]
		end = values[0]
		min := values[0].dot(principle)
		max := min
		for i := 1; i < count; i++ {
			val := values[i].dot(principle)
			if val < min {
				start = values[i]
				min = val
			} else if val > max {
				end = values[i]
				max = val
			}
		}
	}

	one := vec3All(1.0)
	zero := vec3All(0.0)
	start = minVec3(one, maxVec3(zero, start))
	end = minVec3(one, maxVec3(zero, end))

	// snap to the 565 grid
	grid := vec3{31.0, 63.0, 31.0}
	gridrcp := vec3{1.0 / 31.0, 1.0 / 63.0, 1.0 / 31.0}
	half := vec3All(0.5)
	fit.start = grid.mul(start).add(half).truncate().mul(gridrcp)
	fit.end = grid.mul(end).add(half).truncate().mul(gridrcp)
	return fit
}

func (fit *rangeFit) compress3(block []byte) {
	codes := [3]vec3{
		fit.start,
		fit.end,
		fit.start.scale(0.5).add(fit.end.scale(0.5)),
	}
	fit.compress(block, codes[:], writeColorBlock3)
}

func (fit *rangeFit) compress4(block []byte) {
	codes := [4]vec3{
		fit.start,
		fit.end,
		fit.start.scale(2.0 / 3.0).add(fit.end.scale(1.0 / 3.0)),
		fit.start.scale(1.0 / 3.0).add(fit.end.scale(2.0 / 3.0)),
	}
	fit.compress(block, codes[:], writeColorBlock4)
}

// compress matches every point to its nearest codebook entry under the
// perceptual metric and writes the block if the accumulated error beats the
// best seen so far for this block.
func (fit *rangeFit) compress(block []byte, codes []vec3, write func(start, end vec3, indices *[16]int, block []byte)) {
	count := fit.colors.count
	values := fit.colors.points[:]

	var closest [16]int
	var errSum float32
	for i := 0; i < count; i++ {
		dist := float32(math.MaxFloat32)
		idx := 0
		for j := range codes {
			d := fit.metric.mul(values[i].sub(codes[j])).lengthSquared()
			if d < dist {
				dist = d
				idx = j
			}
		}
		closest[i] = idx
		errSum += dist
	}

	if errSum < fit.bestError {
		var indices [16]int
		fit.colors.remapIndices(closest[:], &indices)
		write(fit.start, fit.end, &indices, block)
		fit.bestError = errSum
	}
}
