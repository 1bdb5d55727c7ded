package dxt

// Color half of a DXT block: two 565 endpoints followed by 16 2-bit palette
// indices packed low-to-high, four pixels per byte.

// floatTo565 snaps a [0,1] RGB vector to the 5-6-5 grid and packs it.
func floatTo565(color vec3) int {
	r := floatToInt(31.0*color.x, 31)
	g := floatToInt(63.0*color.y, 63)
	b := floatToInt(31.0*color.z, 31)
	return ((r << 11) | (g << 5) | b) & 0xffff
}

// writeColorBlock3 emits a 3-color block. The decoder convention requires
// packed(color0) <= packed(color1); when the endpoints arrive the other way
// they are swapped and the endpoint indices 0 and 1 exchanged (the midpoint
// index 2 and the transparent index 3 are unaffected).
func writeColorBlock3(start, end vec3, indices *[16]int, block []byte) {
	a := floatTo565(start)
	b := floatTo565(end)

	var remapped [16]int
	if a <= b {
		remapped = *indices
	} else {
		a, b = b, a
		for i := 0; i < 16; i++ {
			switch indices[i] {
			case 0:
				remapped[i] = 1
			case 1:
				remapped[i] = 0
			default:
				remapped[i] = indices[i]
			}
		}
	}

	writeColorBlock(a, b, &remapped, block)
}

// writeColorBlock4 emits a 4-color block, which requires
// packed(color0) > packed(color1). Equal endpoints collapse every index to 0.
func writeColorBlock4(start, end vec3, indices *[16]int, block []byte) {
	a := floatTo565(start)
	b := floatTo565(end)

	var remapped [16]int
	switch {
	case a < b:
		a, b = b, a
		for i := 0; i < 16; i++ {
			remapped[i] = (indices[i] ^ 1) & 3
		}
	case a == b:
		// remapped stays all zero
	default:
		remapped = *indices
	}

	writeColorBlock(a, b, &remapped, block)
}

func writeColorBlock(a, b int, indices *[16]int, block []byte) {
	block[0] = byte(a)
	block[1] = byte(a >> 8)
	block[2] = byte(b)
	block[3] = byte(b >> 8)

	for i := 0; i < 4; i++ {
		idx := 4 * i
		block[i+4] = byte(indices[idx] | indices[idx+1]<<2 | indices[idx+2]<<4 | indices[idx+3]<<6)
	}
}
