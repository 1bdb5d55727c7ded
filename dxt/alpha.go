package dxt

// Alpha halves of DXT3 and DXT5 blocks. Alpha compresses independently of
// color, straight from the raw pixels.

// compressAlphaDxt3 quantizes each alpha value to 4 bits and packs two per
// byte.
func compressAlphaDxt3(pixels []uint32, block []byte) {
	for i := 0; i < 8; i++ {
		alpha1 := float32(argb(pixels[2*i], 3)) * (15.0 / 255.0)
		alpha2 := float32(argb(pixels[2*i+1], 3)) * (15.0 / 255.0)
		quant1 := floatToInt(alpha1, 15)
		quant2 := floatToInt(alpha2, 15)
		block[i] = byte(quant1 | quant2<<4)
	}
}

// compressAlphaDxt5 fits the block's alpha values against both the 5-level
// codebook (which reserves two slots for exact 0 and 255) and the 7-level
// codebook, then emits whichever leaves less total squared error.
func compressAlphaDxt5(pixels []uint32, block []byte) {
	// extrema for both interpolation modes; the 5-level search ignores the
	// exact 0 and 255 values its codebook encodes for free
	min5, max5 := 255, 0
	min7, max7 := 255, 0
	for i := 0; i < 16; i++ {
		value := int(argb(pixels[i], 3))
		if value < min7 {
			min7 = value
		}
		if value > max7 {
			max7 = value
		}
		if value != 0 && value < min5 {
			min5 = value
		}
		if value != 255 && value > max5 {
			max5 = value
		}
	}

	if min5 > max5 {
		min5 = max5
	}
	if min7 > max7 {
		min7 = max7
	}

	min5, max5 = fixRange(min5, max5, 5)
	min7, max7 = fixRange(min7, max7, 7)

	var codes5 [8]int
	codes5[0] = min5
	codes5[1] = max5
	for i := 1; i < 5; i++ {
		codes5[i+1] = ((5-i)*min5 + i*max5) / 5
	}
	codes5[6] = 0
	codes5[7] = 255

	var codes7 [8]int
	codes7[0] = min7
	codes7[1] = max7
	for i := 1; i < 7; i++ {
		codes7[i+1] = ((7-i)*min7 + i*max7) / 7
	}

	var indices5, indices7 [16]int
	err5 := fitAlphaCodes(pixels, &codes5, &indices5)
	err7 := fitAlphaCodes(pixels, &codes7, &indices7)

	if err5 <= err7 {
		writeAlphaBlock5(min5, max5, &indices5, block)
	} else {
		writeAlphaBlock7(min7, max7, &indices7, block)
	}
}

// fixRange widens [min,max] so that max-min >= steps, staying inside
// [0,255]. The interpolated codebook entries degenerate on narrower ranges.
func fixRange(min, max, steps int) (int, int) {
	if max-min < steps {
		max = min + steps
		if max > 255 {
			max = 255
		}
	}
	if max-min < steps {
		min = max - steps
		if min < 0 {
			min = 0
		}
	}
	return min, max
}

// fitAlphaCodes assigns every alpha value its nearest codebook entry
// (lowest index wins ties) and returns the total squared error.
func fitAlphaCodes(pixels []uint32, codes *[8]int, indices *[16]int) int {
	err := 0
	for i := 0; i < 16; i++ {
		value := int(argb(pixels[i], 3))
		least := int(^uint(0) >> 1)
		index := 0
		for j := 0; j < 8; j++ {
			dist := value - codes[j]
			dist *= dist
			if dist < least {
				least = dist
				index = j
			}
		}
		indices[i] = index
		err += least
	}
	return err
}

func writeAlphaBlock(alpha0, alpha1 int, indices *[16]int, block []byte) {
	block[0] = byte(alpha0)
	block[1] = byte(alpha1)

	// 16 indices at 3 bits each, packed into two runs of 3 bytes
	srcIdx, dstIdx := 0, 2
	for i := 0; i < 2; i++ {
		value := 0
		for j := 0; j < 8; j++ {
			value |= indices[srcIdx] << (3 * j)
			srcIdx++
		}
		for j := 0; j < 3; j++ {
			block[dstIdx] = byte(value >> (8 * j))
			dstIdx++
		}
	}
}

// writeAlphaBlock5 normalizes endpoint order for 5-level blocks, which the
// decoder convention requires as alpha0 <= alpha1.
func writeAlphaBlock5(alpha0, alpha1 int, indices *[16]int, block []byte) {
	if alpha0 > alpha1 {
		var swapped [16]int
		for i := 0; i < 16; i++ {
			switch index := indices[i]; {
			case index == 0:
				swapped[i] = 1
			case index == 1:
				swapped[i] = 0
			case index <= 5:
				swapped[i] = 7 - index
			default:
				swapped[i] = index
			}
		}
		writeAlphaBlock(alpha1, alpha0, &swapped, block)
	} else {
		writeAlphaBlock(alpha0, alpha1, indices, block)
	}
}

// writeAlphaBlock7 normalizes endpoint order for 7-level blocks, which the
// decoder convention requires as alpha0 >= alpha1.
func writeAlphaBlock7(alpha0, alpha1 int, indices *[16]int, block []byte) {
	if alpha0 < alpha1 {
		var swapped [16]int
		for i := 0; i < 16; i++ {
			switch index := indices[i]; index {
			case 0:
				swapped[i] = 1
			case 1:
				swapped[i] = 0
			default:
				swapped[i] = 9 - index
			}
		}
		writeAlphaBlock(alpha1, alpha0, &swapped, block)
	} else {
		writeAlphaBlock(alpha0, alpha1, indices, block)
	}
}
