/*
NAME
  bitreader_test.go

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

import "testing"

func TestBitReaderWorkedExample(t *testing.T) {
	buf := []byte{0xAB, 0xCD, 0xEF, 0x12, 0x34}
	r := newBitReader(buf)

	if got := r.take(12); got != 0xABC {
		t.Fatalf("take(12) = %#x, want 0xabc", got)
	}
	if got := r.take(4); got != 0xD {
		t.Fatalf("take(4) = %#x, want 0xd", got)
	}
	if got := r.take(8); got != 0xEF {
		t.Fatalf("take(8) = %#x, want 0xef", got)
	}
}

func TestBitReaderPeekTakeIdempotence(t *testing.T) {
	buf := []byte{0xAB, 0xCD, 0xEF, 0x12, 0x34}
	r := newBitReader(buf)
	for _, n := range []int32{3, 5, 9, 16, 4} {
		before := r.bit
		p := r.peek(n)
		if r.bit != before {
			t.Fatalf("peek(%d) advanced cursor", n)
		}
		tk := r.take(n)
		if p != tk {
			t.Fatalf("peek/take mismatch for n=%d: peek=%#x take=%#x", n, p, tk)
		}
		if r.bit != before+n {
			t.Fatalf("take(%d) advanced cursor by %d, want %d", n, r.bit-before, n)
		}
	}
}

func TestBitReaderBackwardSkip(t *testing.T) {
	buf := []byte{0xAB, 0xCD, 0xEF, 0x12, 0x34}
	r := newBitReader(buf)
	first := r.take(12)
	r.skip(-12)
	second := r.take(12)
	if first != second {
		t.Fatalf("rewound read = %#x, want %#x", second, first)
	}
}

func TestBitReaderAddressableSizeExcludesCRC(t *testing.T) {
	buf := []byte{0xFF, 0xFF}
	r := newBitReader(buf)
	if r.size != 0 {
		t.Fatalf("size = %d, want 0 (trailing 2 bytes are CRC-only)", r.size)
	}
	if got := r.peek(1); got != 0 {
		t.Fatalf("peek past addressable size = %d, want 0", got)
	}
}
