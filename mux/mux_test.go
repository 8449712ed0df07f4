/*
NAME
  mux_test.go

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package mux

import "testing"

func TestMergeUnknownProgramFails(t *testing.T) {
	err := Merge("definitely-not-a-real-binary-xyz", "out.mkv", "video.ivf", []string{"a.wav", "b.wav"})
	if err == nil {
		t.Fatal("Merge with a nonexistent program should fail")
	}
	if _, ok := err.(*MuxFailedError); ok {
		t.Fatalf("expected an exec lookup error, got MuxFailedError (implies the program ran and exited non-zero)")
	}
}

func TestMuxFailedErrorMessage(t *testing.T) {
	err := &MuxFailedError{ExitCode: 3}
	if err.Error() == "" {
		t.Fatal("MuxFailedError.Error() returned empty string")
	}
}
