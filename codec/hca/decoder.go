/*
NAME
  decoder.go

DESCRIPTION
  decoder.go drives the per-block decode loop: it applies the header's
  cipher substitution to each block, dispatches the five channel decode
  stages in order, and quantizes the resulting sub-frames to PCM samples
  in a caller-selected sample format.

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

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// SampleMode selects the PCM quantization applied to decoded samples.
// Values match the bit-depth tags used by the rest of the pipeline.
type SampleMode int

const (
	SampleFloat32 SampleMode = 0x00
	SampleU8      SampleMode = 0x08
	SampleS16     SampleMode = 0x10
	SampleS24     SampleMode = 0x18
	SampleS32     SampleMode = 0x20
)

// BytesPerSample reports the on-disk width of one sample in this mode.
func (m SampleMode) BytesPerSample() int {
	if m == SampleFloat32 {
		return 4
	}
	return int(m) / 8
}

// BadBlockError is not returned: a bad sync word causes the offending
// block to be skipped, per policy. This type documents the condition
// for logging call sites that want to report it.
type BadBlockError struct {
	Block int
}

func (e *BadBlockError) Error() string {
	return fmt.Sprintf("hca: block %d: bad sync word, skipped", e.Block)
}

// Decoder drives the block loop for one audio file, given its parsed
// header and raw block payload.
type Decoder struct {
	hdr      *AudioHeader
	channels []channel
	scratch  []byte
}

// NewDecoder builds a Decoder bound to hdr. It takes ownership of the
// channel slice the header built; the caller should not reuse hdr's
// channels elsewhere.
func NewDecoder(hdr *AudioHeader) *Decoder {
	return &Decoder{
		hdr:      hdr,
		channels: hdr.Channels(),
		scratch:  make([]byte, hdr.BlockSize),
	}
}

// DecodeBlock decodes one raw block into its eight sub-frames, writing
// PCM samples for every channel to w in mode. onBadBlock, if non-nil, is
// called instead of decoding when the block's sync word does not
// validate; the block is then skipped entirely.
func (d *Decoder) DecodeBlock(blockIdx int, raw []byte, volume float32, mode SampleMode, w io.Writer, onBadBlock func(error)) error {
	copy(d.scratch, raw)
	for i, b := range d.scratch {
		d.scratch[i] = d.hdr.cipherTable[b]
	}

	r := newBitReader(d.scratch)
	sync := r.take(16)
	if sync != 0xFFFF {
		if onBadBlock != nil {
			onBadBlock(&BadBlockError{Block: blockIdx})
		}
		return nil
	}

	x := r.take(9)
	y := r.take(7)
	bias := (x << 8) - y

	for i := range d.channels {
		d.channels[i].decodeScaleFactors(r, d.hdr.r09, bias, d.hdr.athTable[:])
	}

	alpha, beta, gamma, delta := d.hdr.r09, d.hdr.r08, d.hdr.r06+d.hdr.r07, d.hdr.r05

	for sub := 0; sub < 8; sub++ {
		for i := range d.channels {
			d.channels[i].decodeSpectralCoefficients(r)
		}
		for i := range d.channels {
			d.channels[i].reconstructHighFrequency(alpha, beta, gamma, delta)
		}
		// Pairs are consecutive: a primary at group position 0 is
		// immediately followed by its secondary at position 1, per the
		// channel typing table built in header.go. channel_count - 1
		// bounds the scan so the last channel, which cannot start a
		// pair, is never read as a primary missing its partner.
		a, b, c := d.hdr.r05-d.hdr.r06, d.hdr.r06, d.hdr.r07
		for i := 0; i < len(d.channels)-1; i++ {
			if d.channels[i+1].kind == channelSecondary {
				joinIntensityStereo(&d.channels[i], &d.channels[i+1], sub, a, b, c)
			}
		}
		for i := range d.channels {
			d.channels[i].inverseTransform(sub)
		}
	}

	return d.emit(volume, mode, w)
}

// emit writes the eight decoded sub-frames, interleaved across
// channels, as quantized little-endian PCM samples.
func (d *Decoder) emit(volume float32, mode SampleMode, w io.Writer) error {
	buf := make([]byte, mode.BytesPerSample())
	for sub := 0; sub < 8; sub++ {
		for j := 0; j < 0x80; j++ {
			for k := range d.channels {
				f := d.channels[k].wave[sub][j] * volume
				if f > 1.0 {
					f = 1.0
				}
				if f < -1.0 {
					f = -1.0
				}
				quantize(f, mode, buf)
				if _, err := w.Write(buf); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// quantize truncates f into mode's on-disk representation, written
// little-endian into buf.
func quantize(f float32, mode SampleMode, buf []byte) {
	switch mode {
	case SampleFloat32:
		binary.LittleEndian.PutUint32(buf, math.Float32bits(f))
	case SampleU8:
		v := int32(f*127) + 128
		buf[0] = byte(v)
	case SampleS16:
		v := int32(f * 32767)
		binary.LittleEndian.PutUint16(buf, uint16(int16(v)))
	case SampleS24:
		v := int32(f * (0x800000 - 1))
		buf[0] = byte(v)
		buf[1] = byte(v >> 8)
		buf[2] = byte(v >> 16)
	case SampleS32:
		v := int64(f * 2147483647)
		binary.LittleEndian.PutUint32(buf, uint32(int32(v)))
	}
}
