/*
NAME
  usm.go

DESCRIPTION
  usm.go demuxes a proprietary cutscene container into a raw video
  elementary stream and one compressed-audio stream per channel number,
  decrypting the video payload in place using a key-derived rolling
  keystream. Audio payloads are copied verbatim; their own decryption
  happens inside the audio decoder.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package usm demuxes the container format that bundles a cutscene's
// video elementary stream with one or more per-language compressed-audio
// streams into a single interleaved file.
package usm

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// chunk signatures, compared against the raw big-endian uint32 read from
// the first four header bytes.
const (
	sigCRID = 0x43524944 // "CRID"
	sigSFV  = 0x40534656 // "@SFV"
	sigSFA  = 0x40534641 // "@SFA"
)

const chunkHeaderSize = 32

// BadContainerError reports chunk header size fields that cannot
// describe a valid chunk. A truncated chunk header or body is reported
// as a wrapped read error instead.
type BadContainerError struct {
	Reason string
}

func (e *BadContainerError) Error() string {
	return fmt.Sprintf("usm: bad container: %s", e.Reason)
}

// chunkInfo is the parsed 32-byte chunk header described in the
// container format.
type chunkInfo struct {
	sig         uint32
	dataSize    uint32
	dataOffset  uint8
	paddingSize uint16
	chno        uint8
	dataType    uint8
	frameTime   uint32
	frameRate   uint32
}

func parseChunkInfo(hdr [chunkHeaderSize]byte) chunkInfo {
	return chunkInfo{
		sig:         binary.BigEndian.Uint32(hdr[0:4]),
		dataSize:    binary.BigEndian.Uint32(hdr[4:8]),
		dataOffset:  hdr[9],
		paddingSize: binary.BigEndian.Uint16(hdr[10:12]),
		chno:        hdr[12],
		dataType:    hdr[15],
		frameTime:   binary.BigEndian.Uint32(hdr[16:20]),
		frameRate:   binary.BigEndian.Uint32(hdr[20:24]),
	}
}

// Demuxer holds the key-derived masks used to decrypt video payloads.
type Demuxer struct {
	mask1 [32]byte
	mask2 [32]byte
}

// NewDemuxer builds a Demuxer from the (high, low) key pair a keyring
// derivation or an explicit override produced.
func NewDemuxer(keyHigh, keyLow uint32) *Demuxer {
	d := &Demuxer{}
	d.initMasks(keyHigh, keyLow)
	return d
}

// initMasks derives the 32-byte video keystream masks from the key
// halves' four bytes each via the fixed mixing schedule. mask2 is
// mask1 with every byte complemented.
func (d *Demuxer) initMasks(keyHigh, keyLow uint32) {
	var key1, key2 [4]byte
	binary.LittleEndian.PutUint32(key1[:], keyLow)
	binary.LittleEndian.PutUint32(key2[:], keyHigh)

	m := &d.mask1
	m[0x00] = key1[0]
	m[0x01] = key1[1]
	m[0x02] = key1[2]
	m[0x03] = key1[3] - 0x34
	m[0x04] = key2[0] + 0xF9
	m[0x05] = key2[1] ^ 0x13
	m[0x06] = key2[2] + 0x61
	m[0x07] = m[0x00] ^ 0xFF
	m[0x08] = m[0x02] + m[0x01]
	m[0x09] = m[0x01] - m[0x07]
	m[0x0A] = m[0x02] ^ 0xFF
	m[0x0B] = m[0x01] ^ 0xFF
	m[0x0C] = m[0x0B] + m[0x09]
	m[0x0D] = m[0x08] - m[0x03]
	m[0x0E] = m[0x0D] ^ 0xFF
	// Canonical schedule subtracts mask1[0x0B] here; a deprecated
	// variant instead subtracts mask1[0x08].
	m[0x0F] = m[0x0A] - m[0x0B]
	m[0x10] = m[0x08] - m[0x0F]
	m[0x11] = m[0x10] ^ m[0x07]
	m[0x12] = m[0x0F] ^ 0xFF
	m[0x13] = m[0x03] ^ 0x10
	m[0x14] = m[0x04] - 0x32
	m[0x15] = m[0x05] + 0xED
	m[0x16] = m[0x06] ^ 0xF3
	m[0x17] = m[0x13] - m[0x0F]
	m[0x18] = m[0x15] + m[0x07]
	m[0x19] = 0x21 - m[0x13]
	m[0x1A] = m[0x14] ^ m[0x17]
	m[0x1B] = m[0x16] + m[0x16]
	m[0x1C] = m[0x17] + 0x44
	m[0x1D] = m[0x03] + m[0x04]
	m[0x1E] = m[0x05] - m[0x16]
	m[0x1F] = m[0x1D] ^ m[0x13]

	for i := range d.mask2 {
		d.mask2[i] = d.mask1[i] ^ 0xFF
	}
}

// decryptVideo decrypts body in place. The first 0x40 bytes are always
// left clear; bodies shorter than 0x40+0x200 bytes are left untouched
// entirely, matching short intro/credit clips that ship unencrypted.
func (d *Demuxer) decryptVideo(body []byte) {
	const dataOffset = 0x40
	if len(body) < dataOffset {
		return
	}
	n := len(body) - dataOffset
	if n < 0x200 {
		return
	}

	rolling := d.mask2
	for i := 0x100; i < n; i++ {
		idx := i & 0x1F
		body[i+dataOffset] ^= rolling[idx]
		rolling[idx] = body[i+dataOffset] ^ d.mask2[idx]
	}

	fixed := d.mask1
	for i := 0; i < 0x100; i++ {
		idx := i & 0x1F
		fixed[idx] ^= body[0x100+i+dataOffset]
		body[i+dataOffset] ^= fixed[idx]
	}
}

// AudioWriter opens (or reuses) a destination for one audio channel
// number, named by the orchestrator's convention (typically
// "<stem>_<chno>.hca").
type AudioWriter interface {
	ForChannel(chno uint8) (io.Writer, error)
}

// Demux reads a container from r, writing the decrypted video stream to
// video and each channel's audio stream through audio. It tolerates and
// skips unknown chunk signatures and any data_type other than 0.
func (d *Demuxer) Demux(r io.Reader, video io.Writer, audio AudioWriter) error {
	var hdr [chunkHeaderSize]byte
	for {
		_, err := io.ReadFull(r, hdr[:])
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "usm: truncated chunk header")
		}

		info := parseChunkInfo(hdr)
		if int(info.dataOffset) < 0x18 || uint32(info.dataOffset)+uint32(info.paddingSize) > info.dataSize {
			return &BadContainerError{"invalid chunk size fields"}
		}
		bodySize := info.dataSize - uint32(info.dataOffset) - uint32(info.paddingSize)

		if slack := int64(info.dataOffset) - 0x18; slack > 0 {
			if _, err := io.CopyN(io.Discard, r, slack); err != nil {
				return errors.Wrap(err, "usm: could not skip pre-body slack")
			}
		}

		body := make([]byte, bodySize)
		if _, err := io.ReadFull(r, body); err != nil {
			return errors.Wrap(err, "usm: truncated chunk body")
		}

		if info.paddingSize > 0 {
			if _, err := io.CopyN(io.Discard, r, int64(info.paddingSize)); err != nil {
				return errors.Wrap(err, "usm: could not skip chunk padding")
			}
		}

		switch info.sig {
		case sigSFV:
			if info.dataType == 0 {
				d.decryptVideo(body)
				if _, err := video.Write(body); err != nil {
					return errors.Wrap(err, "usm: could not write video body")
				}
			}
		case sigSFA:
			if info.dataType == 0 {
				w, err := audio.ForChannel(info.chno)
				if err != nil {
					return errors.Wrap(err, "usm: could not open audio channel output")
				}
				if _, err := w.Write(body); err != nil {
					return errors.Wrap(err, "usm: could not write audio body")
				}
			}
		case sigCRID:
			// Index chunk, nothing to extract.
		default:
			// Unknown signature: skip silently.
		}
	}
}
