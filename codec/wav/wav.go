/*
NAME
  wav.go

DESCRIPTION
  wav.go contains functions for processing wav.

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package wav provides functions for converting wav audio.
package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ConvertFormat converts the common name for a format in a string type to the specific
// integer required by the wav encoder.
var ConvertFormat = map[string]int{"pcm": PCMFormat, "float": IEEEFloatFormat}

const (
	PCMFormat       = 1 // PCMFormat defines the value for pcm audio as defined by the wav std.
	IEEEFloatFormat = 3 // IEEEFloatFormat defines the value for 32-bit float audio.
)

var (
	errInvalidFormat   = fmt.Errorf("invalid or no format defined")
	errInvalidRate     = fmt.Errorf("invalid or no sample rate defined")
	errInvalidChannels = fmt.Errorf("invalid or no number of channels defined")
	errInvalidBitDepth = fmt.Errorf("invalid or no bit depth defined")
)

// Metadata defines the format of the audio file for writing.
type Metadata struct {
	AudioFormat int
	Channels    int
	SampleRate  int
	BitDepth    int
}

func (m Metadata) validate() error {
	if m.AudioFormat != PCMFormat && m.AudioFormat != IEEEFloatFormat {
		return errInvalidFormat
	}
	if m.Channels == 0 {
		return errInvalidChannels
	}
	if m.SampleRate == 0 {
		return errInvalidRate
	}
	if m.BitDepth == 0 {
		return errInvalidBitDepth
	}
	return nil
}

func (m Metadata) header(dataSize uint32) []byte {
	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], dataSize+36)
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], uint16(m.AudioFormat))
	binary.LittleEndian.PutUint16(header[22:24], uint16(m.Channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(m.SampleRate))

	byteRate := uint32(m.SampleRate * m.BitDepth * m.Channels / 8)
	binary.LittleEndian.PutUint32(header[28:32], byteRate)

	blockAlign := uint16(m.BitDepth * m.Channels / 8)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], uint16(m.BitDepth))

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)
	return header
}

// Emitter writes a streaming RIFF/WAVE file: the header is written
// immediately using a data size computed from the block count up
// front, so sample data never needs to be buffered in memory before the
// header can be written.
type Emitter struct {
	w io.Writer
}

// NewEmitter writes the RIFF/WAVE header for dataSize bytes of
// subsequent PCM data to w, in the given format, and returns an Emitter
// ready to stream the sample data itself via io.Writer.
func NewEmitter(w io.Writer, md Metadata, dataSize uint32) (*Emitter, error) {
	if err := md.validate(); err != nil {
		return nil, err
	}
	if _, err := w.Write(md.header(dataSize)); err != nil {
		return nil, err
	}
	return &Emitter{w: w}, nil
}

// Write streams p directly through to the underlying writer as raw PCM
// sample bytes.
func (e *Emitter) Write(p []byte) (int, error) { return e.w.Write(p) }

// WAV is the legacy in-memory writer: it buffers the complete sample
// payload before producing a header, which is adequate for small clips
// but not for a full decoded audio stream. Prefer Emitter for anything
// sized off a block_count.
type WAV struct {
	Metadata Metadata
	Audio    []byte
}

// Write writes the given audio byte slice to the WAV, encoding the appropriate headings.
func (w *WAV) Write(p []byte) (n int, err error) {
	if err := w.Metadata.validate(); err != nil {
		return 0, err
	}
	w.Audio = append(w.Metadata.header(uint32(len(p))), p...)
	return len(p) + 44, nil
}
