/*
NAME
  orchestrator.go

DESCRIPTION
  orchestrator.go drives one container end to end: demux, decode every
  extracted audio channel to WAV, and optionally mux the results into a
  single playable file with an external muxer.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package orchestrator wires the demuxer, audio decoder, WAV emitter and
// external muxer together into the per-container pipeline.
package orchestrator

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ausocean/utils/logging"

	"github.com/ausocean/usmkit/codec/hca"
	"github.com/ausocean/usmkit/codec/wav"
	"github.com/ausocean/usmkit/container/usm"
	"github.com/ausocean/usmkit/keyring"
	"github.com/ausocean/usmkit/mux"
)

// Options configures one Orchestrator run.
type Options struct {
	KeyHigh, KeyLow *uint32
	Keyring         []keyring.Entry
	OutputDir       string // empty means alongside the input.
	SampleMode      hca.SampleMode
	Merge           bool
	MergeProgram    string
	Cleanup         bool // delete intermediates after a successful merge.
}

// Orchestrator runs the per-container pipeline.
type Orchestrator struct {
	opts Options
	log  logging.Logger
}

// New returns an Orchestrator using opts and l for diagnostics.
func New(opts Options, l logging.Logger) *Orchestrator {
	if opts.MergeProgram == "" {
		opts.MergeProgram = "ffmpeg"
	}
	return &Orchestrator{opts: opts, log: l}
}

// channelAudioWriter implements usm.AudioWriter, opening one file per
// distinct channel number the demuxer encounters, named
// "<stem>_<chno>.hca".
type channelAudioWriter struct {
	stem    string
	dir     string
	writers map[uint8]*os.File
	opened  []uint8
}

func newChannelAudioWriter(stem, dir string) *channelAudioWriter {
	return &channelAudioWriter{stem: stem, dir: dir, writers: make(map[uint8]*os.File)}
}

func (c *channelAudioWriter) ForChannel(chno uint8) (io.Writer, error) {
	if f, ok := c.writers[chno]; ok {
		return f, nil
	}
	path := filepath.Join(c.dir, fmt.Sprintf("%s_%d.hca", c.stem, chno))
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	c.writers[chno] = f
	c.opened = append(c.opened, chno)
	return f, nil
}

func (c *channelAudioWriter) close() {
	for _, f := range c.writers {
		f.Close()
	}
}

// paths returns the audio file paths in ascending channel-number order.
func (c *channelAudioWriter) paths() []string {
	sorted := append([]uint8(nil), c.opened...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	out := make([]string, len(sorted))
	for i, chno := range sorted {
		out[i] = filepath.Join(c.dir, fmt.Sprintf("%s_%d.hca", c.stem, chno))
	}
	return out
}

// ProcessContainer demuxes containerPath and decodes every extracted
// audio channel to WAV. On success it returns the video path and the
// ordered list of WAV paths produced.
func (o *Orchestrator) ProcessContainer(containerPath string) (videoPath string, wavPaths []string, err error) {
	in, err := os.Open(containerPath)
	if err != nil {
		return "", nil, fmt.Errorf("could not open container: %w", err)
	}
	defer in.Close()

	stem := strings.TrimSuffix(filepath.Base(containerPath), filepath.Ext(containerPath))
	dir := o.opts.OutputDir
	if dir == "" {
		dir = filepath.Dir(containerPath)
	}

	high, low, err := keyring.Derive(filepath.Base(containerPath), o.opts.Keyring, o.opts.KeyHigh, o.opts.KeyLow)
	if err != nil {
		return "", nil, fmt.Errorf("could not derive key: %w", err)
	}

	videoTmp := filepath.Join(dir, stem+".ivf.tmp")
	videoOut, err := os.Create(videoTmp)
	if err != nil {
		return "", nil, fmt.Errorf("could not create video output: %w", err)
	}

	audio := newChannelAudioWriter(stem, dir)
	demuxer := usm.NewDemuxer(high, low)
	demuxErr := demuxer.Demux(in, videoOut, audio)
	videoOut.Close()
	audio.close()
	if demuxErr != nil {
		os.Remove(videoTmp)
		return "", nil, fmt.Errorf("demux failed: %w", demuxErr)
	}

	videoPath = filepath.Join(dir, stem+".ivf")
	if err := os.Rename(videoTmp, videoPath); err != nil {
		return "", nil, fmt.Errorf("could not finalize video output: %w", err)
	}

	for _, audioPath := range audio.paths() {
		wavPath, err := o.DecodeAudioFile(audioPath, high, low)
		if err != nil {
			o.log.Error("could not decode audio channel", "path", audioPath, "error", err)
			continue
		}
		wavPaths = append(wavPaths, wavPath)
	}

	if o.opts.Merge {
		mkvPath := filepath.Join(dir, stem+".mkv")
		if err := mux.Merge(o.opts.MergeProgram, mkvPath, videoPath, wavPaths); err != nil {
			return videoPath, wavPaths, fmt.Errorf("merge failed: %w", err)
		}
		if o.opts.Cleanup {
			os.Remove(videoPath)
			for _, p := range wavPaths {
				os.Remove(p)
			}
			for _, p := range audio.paths() {
				os.Remove(p)
			}
		}
	}

	return videoPath, wavPaths, nil
}

// DecodeAudioFile reads one compressed-audio file and emits its decoded
// WAV into OutputDir (alongside the input when OutputDir is empty),
// writing to a temp path and renaming on success so a
// fatal mid-decode error never leaves a partial file claiming success.
// This is the same path ProcessContainer uses per extracted channel,
// exposed directly for standalone audio conversion.
func (o *Orchestrator) DecodeAudioFile(audioPath string, keyHigh, keyLow uint32) (string, error) {
	raw, err := os.ReadFile(audioPath)
	if err != nil {
		return "", fmt.Errorf("could not read audio file: %w", err)
	}

	hdr, err := hca.ParseHeader(raw, keyHigh, keyLow)
	if err != nil {
		return "", fmt.Errorf("could not parse audio header: %w", err)
	}
	if !hdr.CRCValid() {
		o.log.Warning("header CRC mismatch", "path", audioPath)
	}

	mode := o.opts.SampleMode
	if mode == 0 {
		mode = hca.SampleS16
	}
	bytesPerSample := mode.BytesPerSample()
	dataSize := uint32(hdr.BlockCount) * 0x80 * 8 * uint32(bytesPerSample*hdr.ChannelCount)

	wavPath := strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + ".wav"
	if o.opts.OutputDir != "" {
		wavPath = filepath.Join(o.opts.OutputDir, filepath.Base(wavPath))
	}
	tmpPath := wavPath + ".tmp"
	out, err := os.Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("could not create wav output: %w", err)
	}

	format := wav.PCMFormat
	if mode == hca.SampleFloat32 {
		format = wav.IEEEFloatFormat
	}
	emitter, err := wav.NewEmitter(out, wav.Metadata{
		AudioFormat: format,
		Channels:    hdr.ChannelCount,
		SampleRate:  int(hdr.SamplingRate),
		BitDepth:    bytesPerSample * 8,
	}, dataSize)
	if err != nil {
		out.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("could not write wav header: %w", err)
	}

	dec := hca.NewDecoder(hdr)
	blockSize := hdr.BlockSize
	body := bytes.NewReader(raw[hdr.DataOffset:])
	block := make([]byte, blockSize)
	for i := 0; i < int(hdr.BlockCount); i++ {
		if _, err := io.ReadFull(body, block); err != nil {
			out.Close()
			os.Remove(tmpPath)
			return "", fmt.Errorf("could not read block %d: %w", i, err)
		}
		err := dec.DecodeBlock(i, block, hdr.Volume, mode, emitter, func(err error) {
			o.log.Warning("skipped bad block", "path", audioPath, "error", err)
		})
		if err != nil {
			out.Close()
			os.Remove(tmpPath)
			return "", fmt.Errorf("could not decode block %d: %w", i, err)
		}
	}

	out.Close()
	if err := os.Rename(tmpPath, wavPath); err != nil {
		return "", fmt.Errorf("could not finalize wav output: %w", err)
	}
	return wavPath, nil
}
