/*
NAME
  channel_test.go

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
	"math"
	"testing"
)

func TestJoinIntensityStereoSkipsWhenNoTail(t *testing.T) {
	primary := &channel{kind: channelPrimary}
	secondary := &channel{kind: channelSecondary}
	primary.block[5] = 1.23
	secondary.block[5] = 9.99

	joinIntensityStereo(primary, secondary, 0, 4, 5, 0) // c == 0: no tail.

	if secondary.block[5] != 9.99 {
		t.Fatalf("secondary.block[5] changed despite c == 0")
	}
	if primary.block[5] != 1.23 {
		t.Fatalf("primary.block[5] changed despite c == 0")
	}
}

func TestJoinIntensityStereoRescalesFromPrimary(t *testing.T) {
	primary := &channel{kind: channelPrimary}
	secondary := &channel{kind: channelSecondary}
	const b, a = 2, 3
	for i := int32(0); i < a; i++ {
		primary.block[b+i] = float32(i + 1)
	}
	secondary.value2[0] = 0

	joinIntensityStereo(primary, secondary, 0, a, b, 1)

	f1 := math.Float32frombits(intensityRatioBits[secondary.value2[0]])
	f2 := f1 - 2.0
	for i := int32(0); i < a; i++ {
		wantSecondary := float32(i+1) * f2
		if secondary.block[b+i] != wantSecondary {
			t.Errorf("secondary.block[%d] = %v, want %v", b+i, secondary.block[b+i], wantSecondary)
		}
		wantPrimary := float32(i+1) * f1
		if primary.block[b+i] != wantPrimary {
			t.Errorf("primary.block[%d] = %v, want %v (rescaled in place)", b+i, primary.block[b+i], wantPrimary)
		}
	}
}

func TestInverseTransformOverlapContinuity(t *testing.T) {
	// With an all-zero spectral block, the inverse transform's own
	// contribution is zero throughout, so the first 64 samples of the
	// sub-frame output reduce to exactly the incoming wav3 tail
	// (windowed-overlap-add of zero plus the carried tail): the
	// dependency on the prior block's final wav3 state is direct.
	var withTail channel
	withTail.wav3[3] = 0.5
	withTail.inverseTransform(0)

	var withoutTail channel
	withoutTail.inverseTransform(0)

	if withTail.wave[0][3] == withoutTail.wave[0][3] {
		t.Fatalf("sub-frame output did not depend on the prior block's wav3 tail")
	}
}
