/*
NAME
  decoder_test.go

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
	"bytes"
	"encoding/binary"
	"testing"
)

func TestBytesPerSample(t *testing.T) {
	cases := map[SampleMode]int{
		SampleFloat32: 4,
		SampleU8:      1,
		SampleS16:     2,
		SampleS24:     3,
		SampleS32:     4,
	}
	for mode, want := range cases {
		if got := mode.BytesPerSample(); got != want {
			t.Errorf("%v.BytesPerSample() = %d, want %d", mode, got, want)
		}
	}
}

func TestQuantizeS16RoundTrip(t *testing.T) {
	buf := make([]byte, 2)
	quantize(1.0, SampleS16, buf)
	got := int16(binary.LittleEndian.Uint16(buf))
	if got != 32767 {
		t.Fatalf("quantize(1.0) = %d, want 32767", got)
	}

	quantize(-1.0, SampleS16, buf)
	got = int16(binary.LittleEndian.Uint16(buf))
	if got != -32767 {
		t.Fatalf("quantize(-1.0) = %d, want -32767", got)
	}

	quantize(0, SampleS16, buf)
	if buf[0] != 0 || buf[1] != 0 {
		t.Fatalf("quantize(0) = %v, want zero bytes", buf)
	}
}

func TestDecodeBlockSkipsBadSyncWord(t *testing.T) {
	hdr := &AudioHeader{
		ChannelCount: 1,
		BlockSize:    32,
	}
	hdr.buildCipherTable(0, 0) // cipherNone default -> identity table.
	hdr.channels = make([]channel, 1)

	dec := NewDecoder(hdr)
	raw := make([]byte, hdr.BlockSize)
	raw[0], raw[1] = 0x00, 0x00 // not the 0xFFFF sync word.

	var out bytes.Buffer
	var skipped error
	err := dec.DecodeBlock(0, raw, 1.0, SampleS16, &out, func(e error) { skipped = e })
	if err != nil {
		t.Fatalf("DecodeBlock returned error: %v", err)
	}
	if skipped == nil {
		t.Fatal("onBadBlock was not invoked for a bad sync word")
	}
	if out.Len() != 0 {
		t.Fatalf("out.Len() = %d, want 0 for a skipped block", out.Len())
	}
}
