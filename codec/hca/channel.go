/*
NAME
  channel.go

DESCRIPTION
  channel.go implements the per-channel subband decode pipeline that runs
  once per block for every channel in a compressed-audio stream: scale
  factor decode, spectral coefficient decode, high-frequency subband
  reconstruction, intensity-stereo join, and the windowed inverse
  transform that produces eight 128-sample sub-frames.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package hca

import "math"

// channel kind values. A regular channel carries its own full spectrum.
// A primary channel donates its spectrum to the secondary channel that
// immediately follows it in a stereo pair.
const (
	channelRegular = iota
	channelPrimary
	channelSecondary
)

// channel holds the per-block decode state for one audio channel. wav3
// is the only field that must persist across blocks: it carries the
// windowed overlap tail into the next block's first sub-frame.
type channel struct {
	block     [0x80]float32
	baseTable [0x80]float32
	value     [0x80]int8
	scale     [0x80]int8
	value2    [8]int8
	kind      int32
	value3i   int32
	count     int32
	wav1      [0x80]float32
	wav2      [0x80]float32
	wav3      [0x80]float32
	wave      [8][0x80]float32
}

// decodeScaleFactors is stage 1: it reads the scale-factor mode and
// values for this block, derives the per-subband scale index from the
// ATH table and the running bias b, and builds baseTable from the
// resulting scale and value arrays.
func (c *channel) decodeScaleFactors(r *bitReader, r09 int32, b int32, athTable []byte) {
	v := r.take(3)
	switch {
	case v >= 6:
		for i := int32(0); i < c.count; i++ {
			c.value[i] = int8(r.take(6))
		}
	case v != 0:
		v1 := r.take(6)
		v2 := (int32(1) << uint(v)) - 1
		v3 := v2 >> 1
		c.value[0] = int8(v1)
		for i := int32(1); i < c.count; i++ {
			v4 := r.take(v)
			if v4 == v2 {
				v1 = r.take(6)
			} else {
				v1 += v4 - v3
			}
			c.value[i] = int8(v1)
		}
	default:
		c.value = [0x80]int8{}
	}

	if c.kind == channelSecondary {
		peeked := r.peek(4)
		c.value2[0] = int8(peeked)
		if peeked < 15 {
			for i := range c.value2 {
				c.value2[i] = int8(r.take(4))
			}
		}
	} else {
		for i := int32(0); i < r09; i++ {
			c.value[c.value3i+i] = int8(r.take(6))
		}
	}

	for i := int32(0); i < c.count; i++ {
		v := int32(c.value[i])
		if v != 0 {
			v = int32(athTable[i]) + ((b + i) >> 8) - v*5/2 + 1
			switch {
			case v < 0:
				v = 15
			case v >= 0x39:
				v = 1
			default:
				v = int32(scaleFactorBits[v])
			}
		}
		c.scale[i] = int8(v)
	}
	for i := c.count; i < 0x80; i++ {
		c.scale[i] = 0
	}

	for i := int32(0); i < c.count; i++ {
		var mul float32
		if c.value[i] >= 0 && c.value[i] < 64 {
			mul = math.Float32frombits(scaleStepBits[c.value[i]])
		}
		c.baseTable[i] = mul * math.Float32frombits(baseStepBits[c.scale[i]])
	}
}

// decodeSpectralCoefficients is stage 2: for every active subband, read
// a scale-indexed number of bits and translate them to a spectral
// coefficient, scaled by baseTable.
func (c *channel) decodeSpectralCoefficients(r *bitReader) {
	for i := int32(0); i < c.count; i++ {
		s := c.scale[i]
		bitSize := spectralBitSize[s]
		v := r.take(int32(bitSize))

		var f float32
		if s < 8 {
			v += int32(s) << 4
			r.skip(int32(spectralRewind[v]) - int32(bitSize))
			f = spectralValue[v]
		} else {
			v = (1 - ((v & 1) << 1)) * (v >> 1)
			if v == 0 {
				r.skip(-1)
			}
			f = float32(v)
		}
		c.block[i] = c.baseTable[i] * f
	}
	for i := c.count; i < 0x80; i++ {
		c.block[i] = 0
	}
}

// reconstructHighFrequency is stage 3: channels other than a stereo
// secondary mirror their low-frequency coefficients up into the high
// subbands using the ratio table, scaled by the distance between the
// source and destination value indices.
func (c *channel) reconstructHighFrequency(alpha, beta, gamma, delta int32) {
	if c.kind == channelSecondary || beta <= 0 {
		return
	}
	for i := int32(0); i < alpha; i++ {
		j := int32(0)
		k := gamma
		l := gamma - 1
		for j < beta && k < delta {
			ratioIdx := int32(c.value[c.value3i+i]) - int32(c.value[l])
			c.block[k] = math.Float32frombits(highFreqRatioBits[ratioIdx]) * c.block[l]
			k++
			j++
			l--
		}
	}
	c.block[0x7F] = 0
}

// joinIntensityStereo is stage 4: it reads primary's block to derive the
// secondary channel's spectrum, then rescales primary's own block in
// place. primary and secondary must be distinct channels; the method
// never aliases a channel with itself.
func joinIntensityStereo(primary, secondary *channel, subIndex int, a, b, c int32) {
	// The caller has already established primary/secondary by kind
	// (channels[i+1].kind == channelSecondary implies channels[i] is
	// its primary per the typing table in header.go); the only
	// remaining guard is whether this group actually has a
	// high-frequency tail to rescale.
	if c == 0 {
		return
	}
	f1 := math.Float32frombits(intensityRatioBits[secondary.value2[subIndex]])
	f2 := f1 - 2.0
	for p := int32(0); p < a; p++ {
		idx := b + p
		secondary.block[idx] = primary.block[idx] * f2
		primary.block[idx] *= f1
	}
}

// inverseTransform is stage 5: two seven-stage butterfly passes convert
// the block's spectral coefficients to time-domain samples, which are
// then windowed and overlap-added against the tail from the previous
// block to produce sub-frame wave[index].
func (c *channel) inverseTransform(index int) {
	srcIdx, dstIdx := 0, 0
	src := c.block[:]
	dst := c.wav1[:]

	count1, count2 := 1, 0x40
	for stage := 0; stage < 7; stage++ {
		d1 := dstIdx
		d2 := dstIdx + count2
		for range make([]struct{}, count1) {
			for range make([]struct{}, count2) {
				a := src[srcIdx]
				srcIdx++
				b := src[srcIdx]
				srcIdx++
				dst[d1] = b + a
				dst[d2] = a - b
				d1++
				d2++
			}
			d1 += count2
			d2 += count2
		}
		w := srcIdx - 0x80
		src, dst = dst, src
		srcIdx = dstIdx
		dstIdx = w
		count1 <<= 1
		count2 >>= 1
	}

	srcIdx, dstIdx = 0, 0
	src = c.wav1[:]
	dst = c.block[:]

	count1, count2 = 0x40, 1
	for stage := 0; stage < 7; stage++ {
		twiddleIdx := 0
		p1 := srcIdx
		p2 := p1 + count2
		d1 := dstIdx
		d2 := d1 + (count2*2 - 1)

		for range make([]struct{}, count1) {
			for range make([]struct{}, count2) {
				a := src[p1]
				p1++
				b := src[p2]
				p2++

				cosV := math.Float32frombits(butterflyCosBits[stage][twiddleIdx])
				sinV := math.Float32frombits(butterflySinBits[stage][twiddleIdx])
				twiddleIdx++

				dst[d1] = a*cosV - b*sinV
				d1++
				dst[d2] = a*sinV + b*cosV
				d2--
			}
			p1 += count2
			p2 += count2
			d1 += count2
			d2 += count2 * 3
		}

		src, dst = dst, src
		srcIdx, dstIdx = dstIdx, srcIdx
		count1 >>= 1
		count2 <<= 1
	}

	for i := 0; i < 0x80; i++ {
		c.wav2[i] = src[srcIdx+i]
	}

	s1, s2 := 0x40, 0
	for i := 0; i < 0x40; i++ {
		c.wave[index][i] = c.wav2[s1]*math.Float32frombits(windowForwardBits[i]) + c.wav3[s2]
		s1++
		s2++
	}
	for i := 0; i < 0x40; i++ {
		s1--
		c.wave[index][0x40+i] = math.Float32frombits(windowBackwardBits[i])*c.wav2[s1] - c.wav3[s2]
		s2++
	}

	s1 = 0x3F
	for i := 0; i < 0x40; i++ {
		wi := 0x3F - i
		c.wav3[i] = c.wav2[s1] * math.Float32frombits(windowBackwardBits[wi])
		s1--
	}
	s1 = 0
	for i := 0; i < 0x40; i++ {
		wi := 0x3F - i
		c.wav3[0x40+i] = math.Float32frombits(windowForwardBits[wi]) * c.wav2[s1]
		s1++
	}
}
