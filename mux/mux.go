/*
NAME
  mux.go

DESCRIPTION
  mux.go invokes an external ffmpeg-compatible binary to combine a
  decoded video elementary stream with its per-language audio tracks
  into a single playable container, tagging each audio track with the
  language metadata ffmpeg/mkvmerge expect.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package mux merges a video stream and its audio tracks into one
// output container by shelling out to an external muxer binary.
package mux

import (
	"fmt"
	"os"
	"os/exec"
)

// languageTrack names one audio track's ISO-639-3 hint and a
// human-readable title, in the channel order the source cutscenes use.
type languageTrack struct {
	hint, title string
}

// languageOrder is the channel-index-to-language convention audio
// tracks are produced in.
var languageOrder = []languageTrack{
	{"chi", "Chinese (汉语)"},
	{"eng", "English"},
	{"jpn", "Japanese (日本語)"},
	{"kor", "Korean (한국어)"},
}

// MuxFailedError reports a non-zero exit from the external muxer.
type MuxFailedError struct {
	ExitCode int
}

func (e *MuxFailedError) Error() string {
	return fmt.Sprintf("mux: muxer exited with code %d", e.ExitCode)
}

// Merge invokes program (typically "ffmpeg") to combine videoPath with
// the audio tracks in audioPaths (in channel order) into outPath,
// tagging each audio track with the corresponding languageOrder entry.
// Audio tracks beyond len(languageOrder) are still merged, just without
// a language tag. Stdin/stdout are inherited from the current process.
func Merge(program, outPath, videoPath string, audioPaths []string) error {
	args := []string{"-i", videoPath}
	mapArgs := []string{"-map", "0:v"}
	var metaArgs []string

	for i, audioPath := range audioPaths {
		args = append(args, "-i", audioPath)
		mapArgs = append(mapArgs, "-map", fmt.Sprintf("%d:a", i+1))

		if i < len(languageOrder) {
			track := languageOrder[i]
			metaArgs = append(metaArgs,
				fmt.Sprintf("-metadata:s:a:%d", i), "language="+track.hint,
				fmt.Sprintf("-metadata:s:a:%d", i), "title="+track.title,
			)
		}
	}

	args = append(args, mapArgs...)
	args = append(args, metaArgs...)
	args = append(args, "-c:v", "copy", "-c:a", "libopus", outPath)

	cmd := exec.Command(program, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			return err
		}
		return &MuxFailedError{ExitCode: exitErr.ExitCode()}
	}
	return nil
}
