/*
NAME
  usmtool - extracts and transcodes proprietary cutscene containers.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package usmtool is a command-line utility that demuxes cutscene
// containers into playable video and audio, and can additionally
// convert standalone compressed-audio files to WAV.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ausocean/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/usmkit/keyring"
	"github.com/ausocean/usmkit/orchestrator"
)

const (
	logPath      = "usmtool.log"
	logMaxSize   = 100 // MB
	logMaxBackup = 5
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
	logSuppress  = false
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: usmtool <demuxUsm|batchDemux|convertHca> [flags]")
		os.Exit(1)
	}

	l := newLogger()

	var err error
	switch os.Args[1] {
	case "demuxUsm":
		err = runDemuxUsm(os.Args[2:], l)
	case "batchDemux":
		err = runBatchDemux(os.Args[2:], l)
	case "convertHca":
		err = runConvertHca(os.Args[2:], l)
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", os.Args[1])
		os.Exit(1)
	}
	if err != nil {
		l.Error("fatal", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() logging.Logger {
	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	return logging.New(logVerbosity, io.MultiWriter(fileLog, os.Stderr), logSuppress)
}

// sharedFlags are accepted by every subcommand.
type sharedFlags struct {
	noCleanup    *bool
	mergeProgram *string
	output       *string
}

func addSharedFlags(fs *flag.FlagSet) *sharedFlags {
	s := &sharedFlags{}
	s.noCleanup = fs.Bool("no-cleanup", false, "keep intermediate files")
	fs.BoolVar(s.noCleanup, "nc", false, "alias for --no-cleanup")
	s.mergeProgram = fs.String("merge-program", "ffmpeg", "path to the external muxer binary")
	s.output = fs.String("output", "", "output folder (defaults alongside the input)")
	return s
}

func parseHexKey(s string) (*uint32, error) {
	if s == "" {
		return nil, nil
	}
	s = strings.TrimPrefix(s, "0x")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid hex key %q: %w", s, err)
	}
	v32 := uint32(v)
	return &v32, nil
}

func runDemuxUsm(args []string, l logging.Logger) error {
	fs := flag.NewFlagSet("demuxUsm", flag.ExitOnError)
	demuxFile := fs.String("demux-file", "", "the .usm file to demux")
	key1 := fs.String("key1", "", "4 lower bytes of the key, hex")
	key2 := fs.String("key2", "", "4 higher bytes of the key, hex")
	versionKeys := fs.String("version-keys", "version.json", "path to a keyring JSON file")
	merge := fs.Bool("merge", false, "mux the extracted streams into one container")
	fs.Bool("subtitles", false, "include subtitles in the merged output (unused: no subtitle stream is extracted)")
	shared := addSharedFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *demuxFile == "" {
		return fmt.Errorf("--demux-file is required")
	}

	low, err := parseHexKey(*key1)
	if err != nil {
		return err
	}
	high, err := parseHexKey(*key2)
	if err != nil {
		return err
	}

	var entries []keyring.Entry
	if low == nil || high == nil {
		entries, err = keyring.Load(*versionKeys)
		if err != nil {
			return err
		}
	}

	orch := orchestrator.New(orchestrator.Options{
		KeyHigh:      high,
		KeyLow:       low,
		Keyring:      entries,
		OutputDir:    *shared.output,
		Merge:        *merge,
		MergeProgram: *shared.mergeProgram,
		Cleanup:      !*shared.noCleanup,
	}, l)

	_, _, err = orch.ProcessContainer(*demuxFile)
	return err
}

func runBatchDemux(args []string, l logging.Logger) error {
	fs := flag.NewFlagSet("batchDemux", flag.ExitOnError)
	usmFolder := fs.String("usm-folder", "", "folder containing .usm files to demux")
	versionKeys := fs.String("version-keys", "version.json", "path to a keyring JSON file")
	merge := fs.Bool("merge", false, "mux the extracted streams into one container")
	fs.Bool("subtitles", false, "include subtitles in the merged output (unused: no subtitle stream is extracted)")
	shared := addSharedFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *usmFolder == "" {
		return fmt.Errorf("--usm-folder is required")
	}

	entries, err := keyring.Load(*versionKeys)
	if err != nil {
		return err
	}

	entriesList, err := os.ReadDir(*usmFolder)
	if err != nil {
		return fmt.Errorf("could not read usm folder: %w", err)
	}

	outDir := *shared.output
	if outDir == "" {
		outDir = *usmFolder
	}

	orch := orchestrator.New(orchestrator.Options{
		Keyring:      entries,
		OutputDir:    outDir,
		Merge:        *merge,
		MergeProgram: *shared.mergeProgram,
		Cleanup:      !*shared.noCleanup,
	}, l)

	var firstErr error
	for _, entry := range entriesList {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".usm") {
			continue
		}
		path := filepath.Join(*usmFolder, entry.Name())
		if _, _, err := orch.ProcessContainer(path); err != nil {
			l.Error("could not process container", "path", path, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		l.Info("processed container", "path", path)
	}
	return firstErr
}

func runConvertHca(args []string, l logging.Logger) error {
	fs := flag.NewFlagSet("convertHca", flag.ExitOnError)
	hcaInput := fs.String("hca-input", "", "the .hca file to convert")
	baseName := fs.String("base-name", "", "basename to use for key derivation (defaults to the input's own name)")
	key1 := fs.String("key1", "", "4 lower bytes of the key, hex")
	key2 := fs.String("key2", "", "4 higher bytes of the key, hex")
	versionKeys := fs.String("version-keys", "version.json", "path to a keyring JSON file")
	shared := addSharedFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *hcaInput == "" {
		return fmt.Errorf("--hca-input is required")
	}

	low, err := parseHexKey(*key1)
	if err != nil {
		return err
	}
	high, err := parseHexKey(*key2)
	if err != nil {
		return err
	}

	var entries []keyring.Entry
	if low == nil || high == nil {
		entries, err = keyring.Load(*versionKeys)
		if err != nil {
			return err
		}
	}

	name := *baseName
	if name == "" {
		name = filepath.Base(*hcaInput)
	}
	keyHigh, keyLow, err := keyring.Derive(name, entries, high, low)
	if err != nil {
		return err
	}

	orch := orchestrator.New(orchestrator.Options{
		OutputDir: *shared.output,
		Cleanup:   !*shared.noCleanup,
	}, l)

	wavPath, err := orch.DecodeAudioFile(*hcaInput, keyHigh, keyLow)
	if err != nil {
		return err
	}
	l.Info("converted audio file", "input", *hcaInput, "output", wavPath)
	return nil
}
