package dxt

import "math"

// Small fixed-size float32 vector kernel for the endpoint fitters.
//
// The compressed output is bit-exact with the upstream encoder, which means
// the exact multiply-add groupings and the float32 evaluation order below are
// part of the contract. Do not refactor the arithmetic.

type vec3 struct {
	x, y, z float32
}

func vec3All(s float32) vec3 {
	return vec3{s, s, s}
}

func (v vec3) add(o vec3) vec3 {
	return vec3{v.x + o.x, v.y + o.y, v.z + o.z}
}

func (v vec3) sub(o vec3) vec3 {
	return vec3{v.x - o.x, v.y - o.y, v.z - o.z}
}

func (v vec3) mul(o vec3) vec3 {
	return vec3{v.x * o.x, v.y * o.y, v.z * o.z}
}

func (v vec3) scale(s float32) vec3 {
	return vec3{v.x * s, v.y * s, v.z * s}
}

func (v vec3) dot(o vec3) float32 {
	return v.x*o.x + v.y*o.y + v.z*o.z
}

func (v vec3) lengthSquared() float32 {
	return v.x*v.x + v.y*v.y + v.z*v.z
}

// fixNaN substitutes zero for NaN components. Degenerate fits (all-zero
// weights) can produce NaN endpoints; they must not leak into the output.
func (v vec3) fixNaN() vec3 {
	if v.x != v.x {
		v.x = 0
	}
	if v.y != v.y {
		v.y = 0
	}
	if v.z != v.z {
		v.z = 0
	}
	return v
}

func minVec3(a, b vec3) vec3 {
	a = a.fixNaN()
	b = b.fixNaN()
	return vec3{min32(a.x, b.x), min32(a.y, b.y), min32(a.z, b.z)}
}

func maxVec3(a, b vec3) vec3 {
	a = a.fixNaN()
	b = b.fixNaN()
	return vec3{max32(a.x, b.x), max32(a.y, b.y), max32(a.z, b.z)}
}

// truncate rounds each component toward zero to a whole number.
func (v vec3) truncate() vec3 {
	return vec3{trunc32(v.x), trunc32(v.y), trunc32(v.z)}
}

type vec4 struct {
	x, y, z, w float32
}

func vec4All(s float32) vec4 {
	return vec4{s, s, s, s}
}

func (v vec4) vec3() vec3 {
	return vec3{v.x, v.y, v.z}
}

func (v vec4) splatX() vec4 { return vec4All(v.x) }
func (v vec4) splatY() vec4 { return vec4All(v.y) }
func (v vec4) splatZ() vec4 { return vec4All(v.z) }
func (v vec4) splatW() vec4 { return vec4All(v.w) }

func (v vec4) add(o vec4) vec4 {
	return vec4{v.x + o.x, v.y + o.y, v.z + o.z, v.w + o.w}
}

func (v vec4) sub(o vec4) vec4 {
	return vec4{v.x - o.x, v.y - o.y, v.z - o.z, v.w - o.w}
}

func (v vec4) mul(o vec4) vec4 {
	return vec4{v.x * o.x, v.y * o.y, v.z * o.z, v.w * o.w}
}

// multiplyAdd returns v1*v2 + v3 componentwise.
func multiplyAdd(v1, v2, v3 vec4) vec4 {
	return vec4{v1.x*v2.x + v3.x, v1.y*v2.y + v3.y, v1.z*v2.z + v3.z, v1.w*v2.w + v3.w}
}

// negMulSub returns v3 - v1*v2 componentwise.
func negMulSub(v1, v2, v3 vec4) vec4 {
	return vec4{v3.x - v1.x*v2.x, v3.y - v1.y*v2.y, v3.z - v1.z*v2.z, v3.w - v1.w*v2.w}
}

func (v vec4) reciprocal() vec4 {
	return vec4{1.0 / v.x, 1.0 / v.y, 1.0 / v.z, 1.0 / v.w}
}

func (v vec4) fixNaN() vec4 {
	if v.x != v.x {
		v.x = 0
	}
	if v.y != v.y {
		v.y = 0
	}
	if v.z != v.z {
		v.z = 0
	}
	if v.w != v.w {
		v.w = 0
	}
	return v
}

func minVec4(a, b vec4) vec4 {
	a = a.fixNaN()
	b = b.fixNaN()
	return vec4{min32(a.x, b.x), min32(a.y, b.y), min32(a.z, b.z), min32(a.w, b.w)}
}

func maxVec4(a, b vec4) vec4 {
	a = a.fixNaN()
	b = b.fixNaN()
	return vec4{max32(a.x, b.x), max32(a.y, b.y), max32(a.z, b.z), max32(a.w, b.w)}
}

func (v vec4) truncate() vec4 {
	return vec4{trunc32(v.x), trunc32(v.y), trunc32(v.z), trunc32(v.w)}
}

// compareAnyLessThan reports whether any component of a is less than the
// corresponding component of b.
func compareAnyLessThan(a, b vec4) bool {
	return a.x < b.x || a.y < b.y || a.z < b.z || a.w < b.w
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func trunc32(a float32) float32 {
	if a > 0 {
		return float32(math.Floor(float64(a)))
	}
	return float32(math.Ceil(float64(a)))
}

// floatToInt rounds to nearest via truncation of a+0.5 and clamps to
// [0, limit].
func floatToInt(a float32, limit int) int {
	i := int(a + 0.5)
	if i < 0 {
		i = 0
	} else if i > limit {
		i = limit
	}
	return i
}

// sym3x3 stores the upper triangle of a symmetric 3x3 matrix as
// [xx xy xz yy yz zz].
type sym3x3 [6]float32

const fltEpsilon = float32(1.1920929e-7)

// computeWeightedCovariance builds the weighted covariance matrix of the
// first count points about their weighted centroid.
func computeWeightedCovariance(count int, points []vec3, weights []float32) sym3x3 {
	var total float32
	var centroid vec3
	for i := 0; i < count; i++ {
		total += weights[i]
		centroid = centroid.add(points[i].scale(weights[i]))
	}
	centroid = centroid.scale(1.0 / total)

	var cov sym3x3
	for i := 0; i < count; i++ {
		a := points[i].sub(centroid)
		b := a.scale(weights[i])
		cov[0] += a.x * b.x
		cov[1] += a.x * b.y
		cov[2] += a.x * b.z
		cov[3] += a.y * b.y
		cov[4] += a.y * b.z
		cov[5] += a.z * b.z
	}
	return cov
}

// computePrincipleComponent returns the dominant eigenvector of the matrix
// using the closed-form solution of the cubic characteristic polynomial.
// The three discriminant branches cover a triple root (isotropic matrix),
// three distinct real roots and a repeated root.
func computePrincipleComponent(m sym3x3) vec3 {
	c0 := m[0]*m[3]*m[5] + 2.0*m[1]*m[2]*m[4] - m[0]*m[4]*m[4] - m[3]*m[2]*m[2] - m[5]*m[1]*m[1]
	c1 := m[0]*m[3] + m[0]*m[5] + m[3]*m[5] - m[1]*m[1] - m[2]*m[2] - m[4]*m[4]
	c2 := m[0] + m[3] + m[5]

	// reduce to the depressed cubic
	a := c1 - float32(1.0/3.0)*c2*c2
	b := float32(-2.0/27.0)*c2*c2*c2 + float32(1.0/3.0)*c1*c2 - c0

	q := 0.25*b*b + float32(1.0/27.0)*a*a*a

	switch {
	case fltEpsilon < q:
		// only one real root, which implies a multiple of the identity
		return vec3All(1.0)
	case q < -fltEpsilon:
		// three distinct roots, trigonometric solution
		theta := math.Atan2(math.Sqrt(float64(-q)), -0.5*float64(b))
		rho := math.Sqrt(0.25*float64(b)*float64(b) - float64(q))

		rt := float32(math.Pow(rho, 1.0/3.0))
		ct := float32(math.Cos(theta / 3.0))
		st := float32(math.Sin(theta / 3.0))

		l1 := float32(1.0/3.0)*c2 + 2.0*rt*ct
		l2 := float32(1.0/3.0)*c2 - rt*(ct+float32(math.Sqrt(3.0))*st)
		l3 := float32(1.0/3.0)*c2 - rt*(ct-float32(math.Sqrt(3.0))*st)

		// pick the eigenvalue of largest magnitude
		if abs32(l2) > abs32(l1) {
			l1 = l2
		}
		if abs32(l3) > abs32(l1) {
			l1 = l3
		}
		return multiplicity1Evector(m, l1)
	default:
		// repeated root
		var rt float32
		if b < 0 {
			rt = float32(-math.Pow(-0.5*float64(b), 1.0/3.0))
		} else {
			rt = float32(math.Pow(0.5*float64(b), 1.0/3.0))
		}

		l1 := float32(1.0/3.0)*c2 + rt // repeated
		l2 := float32(1.0/3.0)*c2 - 2.0*rt

		if abs32(l1) > abs32(l2) {
			return multiplicity2Evector(m, l1)
		}
		return multiplicity1Evector(m, l2)
	}
}

// multiplicity1Evector back-solves the eigenvector of a simple eigenvalue
// from the adjugate of (M - evalue*I), picking the column that contains the
// largest-magnitude cofactor.
func multiplicity1Evector(matrix sym3x3, evalue float32) vec3 {
	var m sym3x3
	m[0] = matrix[0] - evalue
	m[1] = matrix[1]
	m[2] = matrix[2]
	m[3] = matrix[3] - evalue
	m[4] = matrix[4]
	m[5] = matrix[5] - evalue

	var u sym3x3
	u[0] = m[3]*m[5] - m[4]*m[4]
	u[1] = m[2]*m[4] - m[1]*m[5]
	u[2] = m[1]*m[4] - m[2]*m[3]
	u[3] = m[0]*m[5] - m[2]*m[2]
	u[4] = m[1]*m[2] - m[4]*m[0]
	u[5] = m[0]*m[3] - m[1]*m[1]

	mc := abs32(u[0])
	mi := 0
	for i := 1; i < 6; i++ {
		if c := abs32(u[i]); c > mc {
			mc = c
			mi = i
		}
	}

	switch mi {
	case 0:
		return vec3{u[0], u[1], u[2]}
	case 1, 3:
		return vec3{u[1], u[3], u[4]}
	default:
		return vec3{u[2], u[4], u[5]}
	}
}

// multiplicity2Evector extracts a null-space vector of (M - evalue*I)
// directly for the repeated-eigenvalue case.
func multiplicity2Evector(matrix sym3x3, evalue float32) vec3 {
	var m sym3x3
	m[0] = matrix[0] - evalue
	m[1] = matrix[1]
	m[2] = matrix[2]
	m[3] = matrix[3] - evalue
	m[4] = matrix[4]
	m[5] = matrix[5] - evalue

	mc := abs32(m[0])
	mi := 0
	for i := 1; i < 6; i++ {
		if c := abs32(m[i]); c > mc {
			mc = c
			mi = i
		}
	}

	switch mi {
	case 0, 1:
		return vec3{-m[1], m[0], 0.0}
	case 2:
		return vec3{m[2], 0.0, -m[0]}
	case 3, 4:
		return vec3{0.0, -m[4], m[3]}
	default:
		return vec3{0.0, -m[5], m[4]}
	}
}

func abs32(a float32) float32 {
	if a < 0 {
		return -a
	}
	return a
}
