package dxt

import "math"

// clusterFit is the quality fitter for blocks with two or more distinct
// colors. Points are ordered along an axis and every contiguous partition
// into 2 or 3 interior clusters is scored with a closed-form least-squares
// solve for the two endpoints, vectorized across channels through vec4
// (the w lane carries the weight sums). The ordering axis is iterated from
// the best endpoints found, stopping on convergence, on a repeated ordering
// or after the iteration cap.
type clusterFit struct {
	colors *colorSet

	order         [16 * clusterIterations]int
	pointsWeights [16]vec4

	principle vec3
	metric    vec4

	xsumWsum  vec4
	bestError vec4
}

const clusterIterations = 8

func newClusterFit(colors *colorSet) *clusterFit {
	fit := &clusterFit{
		colors:    colors,
		bestError: vec4All(math.MaxFloat32),
		metric:    vec4{0.2126, 0.7152, 0.0722, 0.0},
	}
	covariance := computeWeightedCovariance(colors.count, colors.points[:], colors.weights[:])
	fit.principle = computePrincipleComponent(covariance)
	return fit
}

func (fit *clusterFit) compress3(block []byte) {
	count := fit.colors.count
	two := vec4All(2.0)
	one := vec4All(1.0)
	halfHalf2 := vec4{0.5, 0.5, 0.5, 0.25}
	zero := vec4All(0.0)
	half := vec4All(0.5)
	grid := vec4{31.0, 63.0, 31.0, 0.0}
	gridrcp := vec4{1.0 / 31.0, 1.0 / 63.0, 1.0 / 31.0, 0.0}

	fit.constructOrdering(fit.principle, 0)

	var bestStart, bestEnd vec4
	bestError := fit.bestError
	bestIteration := 0
	bestI, bestJ := 0, 0

	// the split enumeration never puts all points in the first or last cluster
	for iterIndex := 0; ; {
		// first cluster [0, i) is at the start
		var part0 vec4
		for i := 0; i < count; i++ {
			// second cluster [i, j) is half along
			var part1 vec4
			jmin := i
			if i == 0 {
				part1 = fit.pointsWeights[0]
				jmin = 1
			}
			for j := jmin; ; {
				// last cluster [j, count) is at the end
				part2 := fit.xsumWsum.sub(part1).sub(part0)

				// least squares terms
				alphaXSum := multiplyAdd(part1, halfHalf2, part0)
				alpha2Sum := alphaXSum.splatW()

				betaXSum := multiplyAdd(part1, halfHalf2, part2)
				beta2Sum := betaXSum.splatW()

				alphaBetaSum := part1.mul(halfHalf2).splatW()

				// least squares optimal endpoints
				factor := negMulSub(alphaBetaSum, alphaBetaSum, alpha2Sum.mul(beta2Sum)).reciprocal()
				a := negMulSub(betaXSum, alphaBetaSum, alphaXSum.mul(beta2Sum)).mul(factor)
				b := negMulSub(alphaXSum, alphaBetaSum, betaXSum.mul(alpha2Sum)).mul(factor)

				// clamp to the grid
				a = minVec4(one, maxVec4(zero, a))
				b = minVec4(one, maxVec4(zero, b))
				a = multiplyAdd(grid, a, half).truncate().mul(gridrcp)
				b = multiplyAdd(grid, b, half).truncate().mul(gridrcp)

				// error, skipping the constant sum-of-squares term
				e1 := multiplyAdd(a.mul(a), alpha2Sum, b.mul(b).mul(beta2Sum))
				e2 := negMulSub(a, alphaXSum, a.mul(b).mul(alphaBetaSum))
				e3 := negMulSub(b, betaXSum, e2)
				e4 := multiplyAdd(two, e3, e1)

				e5 := e4.mul(fit.metric)
				errVal := e5.splatX().add(e5.splatY()).add(e5.splatZ())

				if compareAnyLessThan(errVal, bestError) {
					bestStart = a
					bestEnd = b
					bestI = i
					bestJ = j
					bestError = errVal
					bestIteration = iterIndex
				}

				if j == count {
					break
				}
				part1 = part1.add(fit.pointsWeights[j])
				j++
			}
			part0 = part0.add(fit.pointsWeights[i])
		}

		// stop if this iteration brought no improvement
		if bestIteration != iterIndex {
			break
		}

		iterIndex++
		if iterIndex == clusterIterations {
			break
		}

		// reorder along the new endpoint axis, stopping on a repeat
		axis := bestEnd.sub(bestStart).vec3()
		if !fit.constructOrdering(axis, iterIndex) {
			break
		}
	}

	if compareAnyLessThan(bestError, fit.bestError) {
		orderIdx := 16 * bestIteration
		var unordered [16]int
		for m := 0; m < bestI; m++ {
			unordered[fit.order[orderIdx+m]] = 0
		}
		for m := bestI; m < bestJ; m++ {
			unordered[fit.order[orderIdx+m]] = 2
		}
		for m := bestJ; m < count; m++ {
			unordered[fit.order[orderIdx+m]] = 1
		}

		var bestIndices [16]int
		fit.colors.remapIndices(unordered[:], &bestIndices)
		writeColorBlock3(bestStart.vec3(), bestEnd.vec3(), &bestIndices, block)
		fit.bestError = bestError
	}
}

func (fit *clusterFit) compress4(block []byte) {
	count := fit.colors.count
	two := vec4All(2.0)
	one := vec4All(1.0)
	oneThirdOneThird2 := vec4{1.0 / 3.0, 1.0 / 3.0, 1.0 / 3.0, 1.0 / 9.0}
	twoThirdsTwoThirds2 := vec4{2.0 / 3.0, 2.0 / 3.0, 2.0 / 3.0, 4.0 / 9.0}
	twoNineths := vec4All(2.0 / 9.0)
	zero := vec4All(0.0)
	half := vec4All(0.5)
	grid := vec4{31.0, 63.0, 31.0, 0.0}
	gridrcp := vec4{1.0 / 31.0, 1.0 / 63.0, 1.0 / 31.0, 0.0}

	fit.constructOrdering(fit.principle, 0)

	var bestStart, bestEnd vec4
	bestError := fit.bestError
	bestIteration := 0
	bestI, bestJ, bestK := 0, 0, 0

	// the split enumeration never puts all points in the first or last cluster
	for iterIndex := 0; ; {
		// first cluster [0, i) is at the start
		var part0 vec4
		for i := 0; i < count; i++ {
			// second cluster [i, j) is one third along
			var part1 vec4
			for j := i; ; {
				// third cluster [j, k) is two thirds along
				var part2 vec4
				kmin := j
				if j == 0 {
					part2 = fit.pointsWeights[0]
					kmin = 1
				}
				for k := kmin; ; {
					// last cluster [k, count) is at the end
					part3 := fit.xsumWsum.sub(part2).sub(part1).sub(part0)

					// least squares terms
					alphaXSum := multiplyAdd(part2, oneThirdOneThird2, multiplyAdd(part1, twoThirdsTwoThirds2, part0))
					alpha2Sum := alphaXSum.splatW()

					betaXSum := multiplyAdd(part1, oneThirdOneThird2, multiplyAdd(part2, twoThirdsTwoThirds2, part3))
					beta2Sum := betaXSum.splatW()

					alphaBetaSum := twoNineths.mul(part1.add(part2).splatW())

					// least squares optimal endpoints
					factor := negMulSub(alphaBetaSum, alphaBetaSum, alpha2Sum.mul(beta2Sum)).reciprocal()
					a := negMulSub(betaXSum, alphaBetaSum, alphaXSum.mul(beta2Sum)).mul(factor)
					b := negMulSub(alphaXSum, alphaBetaSum, betaXSum.mul(alpha2Sum)).mul(factor)

					// clamp to the grid
					a = minVec4(one, maxVec4(zero, a))
					b = minVec4(one, maxVec4(zero, b))
					a = multiplyAdd(grid, a, half).truncate().mul(gridrcp)
					b = multiplyAdd(grid, b, half).truncate().mul(gridrcp)

					// error, skipping the constant sum-of-squares term
					e1 := multiplyAdd(a.mul(a), alpha2Sum, b.mul(b).mul(beta2Sum))
					e2 := negMulSub(a, alphaXSum, a.mul(b).mul(alphaBetaSum))
					e3 := negMulSub(b, betaXSum, e2)
					e4 := multiplyAdd(two, e3, e1)

					e5 := e4.mul(fit.metric)
					errVal := e5.splatX().add(e5.splatY()).add(e5.splatZ())

					if compareAnyLessThan(errVal, bestError) {
						bestStart = a
						bestEnd = b
						bestError = errVal
						bestI = i
						bestJ = j
						bestK = k
						bestIteration = iterIndex
					}

					if k == count {
						break
					}
					part2 = part2.add(fit.pointsWeights[k])
					k++
				}
				if j == count {
					break
				}
				part1 = part1.add(fit.pointsWeights[j])
				j++
			}
			part0 = part0.add(fit.pointsWeights[i])
		}

		// stop if this iteration brought no improvement
		if bestIteration != iterIndex {
			break
		}

		iterIndex++
		if iterIndex == clusterIterations {
			break
		}

		// reorder along the new endpoint axis, stopping on a repeat
		axis := bestEnd.sub(bestStart).vec3()
		if !fit.constructOrdering(axis, iterIndex) {
			break
		}
	}

	if compareAnyLessThan(bestError, fit.bestError) {
		orderIdx := 16 * bestIteration
		var unordered [16]int
		for m := 0; m < bestI; m++ {
			unordered[fit.order[orderIdx+m]] = 0
		}
		for m := bestI; m < bestJ; m++ {
			unordered[fit.order[orderIdx+m]] = 2
		}
		for m := bestJ; m < bestK; m++ {
			unordered[fit.order[orderIdx+m]] = 3
		}
		for m := bestK; m < count; m++ {
			unordered[fit.order[orderIdx+m]] = 1
		}

		var bestIndices [16]int
		fit.colors.remapIndices(unordered[:], &bestIndices)
		writeColorBlock4(bestStart.vec3(), bestEnd.vec3(), &bestIndices, block)
		fit.bestError = bestError
	}
}

// constructOrdering sorts the points by their projection onto axis into the
// ordering slot for this iteration and rebuilds the weighted point sums.
// It returns false when the ordering duplicates one from an earlier
// iteration, which signals a cycle.
func (fit *clusterFit) constructOrdering(axis vec3, iteration int) bool {
	count := fit.colors.count
	values := fit.colors.points[:]

	var dps [16]float32
	orderIdx := 16 * iteration
	for i := 0; i < count; i++ {
		dps[i] = values[i].dot(axis)
		fit.order[orderIdx+i] = i
	}

	// stable insertion sort keeps equal projections in input order
	for i := 0; i < count; i++ {
		for j := i; j > 0 && dps[j] < dps[j-1]; j-- {
			dps[j], dps[j-1] = dps[j-1], dps[j]
			fit.order[orderIdx+j], fit.order[orderIdx+j-1] = fit.order[orderIdx+j-1], fit.order[orderIdx+j]
		}
	}

	for it := 0; it < iteration; it++ {
		prevIdx := 16 * it
		same := true
		for i := 0; i < count; i++ {
			if fit.order[orderIdx+i] != fit.order[prevIdx+i] {
				same = false
				break
			}
		}
		if same {
			return false
		}
	}

	weights := fit.colors.weights[:]
	fit.xsumWsum = vec4{}
	for i := 0; i < count; i++ {
		j := fit.order[orderIdx+i]
		p := vec4{values[j].x, values[j].y, values[j].z, 1.0}
		w := vec4All(weights[j])
		x := p.mul(w)
		fit.pointsWeights[i] = x
		fit.xsumWsum = fit.xsumWsum.add(x)
	}
	return true
}
