/*
NAME
  bitreader.go

DESCRIPTION
  bitreader.go implements a big-endian, bit-granular reader over a fixed
  byte buffer, used to parse compressed-audio blocks. The cursor can move
  backward as well as forward, since the spectral-coefficient decode in
  channel.go occasionally needs to push back bits it speculatively read.

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

// bitReader reads big-endian bits out of a byte buffer whose last two
// bytes are a trailing CRC and therefore excluded from the addressable
// bit range.
type bitReader struct {
	data []byte
	size int32 // addressable size in bits: len(data)*8 - 16.
	bit  int32 // cursor, in bits from the start of data.
}

// newBitReader wraps buf for bit-level reading. buf must include the
// trailing two-byte CRC; it is excluded automatically from size.
func newBitReader(buf []byte) *bitReader {
	return &bitReader{
		data: buf,
		size: int32(len(buf))*8 - 16,
	}
}

// peek returns the next n bits (0 <= n <= 16) without advancing the
// cursor. It returns 0 if the read would run past the addressable size.
func (r *bitReader) peek(n int32) int32 {
	if r.bit+n > r.size {
		return 0
	}
	byteOff := int(r.bit >> 3)
	var v int32
	v = int32(byteAt(r.data, byteOff))
	v = v<<8 | int32(byteAt(r.data, byteOff+1))
	v = v<<8 | int32(byteAt(r.data, byteOff+2))
	v &= peekMask[r.bit&7]
	v >>= uint(24 - (r.bit & 7) - n)
	return v
}

// take reads and consumes the next n bits.
func (r *bitReader) take(n int32) int32 {
	v := r.peek(n)
	r.bit += n
	return v
}

// skip moves the cursor by n bits, which may be negative to rewind
// previously consumed bits.
func (r *bitReader) skip(n int32) {
	r.bit += n
}

// byteAt returns data[i], or 0 if i is out of range, mirroring the
// zero-extension the reference decoder relies on near the buffer's end.
func byteAt(data []byte, i int) byte {
	if i < 0 || i >= len(data) {
		return 0
	}
	return data[i]
}
