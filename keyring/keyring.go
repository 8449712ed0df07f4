/*
NAME
  keyring.go

DESCRIPTION
  keyring.go loads the JSON keyring mapping build identifiers to the
  video filenames they cover and a 64-bit decryption key, and derives
  the per-file key pair used by the container demuxer and the audio
  cipher from a filename and that keyring.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package keyring loads version keyrings and derives per-file decryption
// keys from a filename and an optional keyring entry.
package keyring

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Entry is one immutable keyring record: a build identifier, the set of
// video filenames it covers, and the 64-bit key shared by all of them.
type Entry struct {
	Version string   `json:"version"`
	Videos  []string `json:"videos"`
	Key     uint64   `json:"key"`
}

// containsVideo reports whether basename (no extension) is covered by e.
func (e Entry) containsVideo(basename string) bool {
	for _, v := range e.Videos {
		if v == basename {
			return true
		}
	}
	return false
}

// Load reads a keyring file, a JSON object with a single "list" key
// holding the entry array.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not read keyring file")
	}
	var doc struct {
		List []Entry `json:"list"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "could not parse keyring file")
	}
	return doc.List, nil
}

// introNames are the three intro cutscenes whose filename key is not
// taken from their own names: each maps to the filename key of the
// shared basename "MDAQ001_OP".
var introNames = map[string]bool{
	"MDAQ001_OPNew_Part1.usm":            true,
	"MDAQ001_OPNew_Part2_PlayerBoy.usm":  true,
	"MDAQ001_OPNew_Part2_PlayerGirl.usm": true,
}

// ErrNoKeyForVideo is returned when no keyring entry covers the
// requested filename and no explicit override was given.
var ErrNoKeyForVideo = errors.New("keyring: no key found for video")

// basename returns filename up to (not including) its first '.'.
func basename(filename string) string {
	if i := strings.IndexByte(filename, '.'); i >= 0 {
		return filename[:i]
	}
	return filename
}

// filenameKey folds the basename's bytes into a 56-bit key, substituting
// the shared intro basename for any of the three known intro cutscenes.
func filenameKey(filename string) uint64 {
	name := filename
	if introNames[filename] {
		name = "MDAQ001_OP"
	}
	name = basename(name)

	var acc uint64
	for i := 0; i < len(name); i++ {
		acc = acc*3 + uint64(name[i])
	}
	acc &= 0x00FFFFFFFFFFFFFF
	if acc == 0 {
		return 0x0100000000000000
	}
	return acc
}

// versionKey scans entries for one covering basename(filename) and
// returns its key, or ErrNoKeyForVideo if none matches.
func versionKey(filename string, entries []Entry) (uint64, error) {
	name := basename(filename)
	for _, e := range entries {
		if e.containsVideo(name) {
			return e.Key, nil
		}
	}
	return 0, errors.Wrapf(ErrNoKeyForVideo, "%q", name)
}

// Derive returns the (high, low) key pair for filename. If both override
// halves are non-nil, they are returned directly. Otherwise the filename
// key and the keyring's version key for filename are combined.
func Derive(filename string, entries []Entry, overrideHigh, overrideLow *uint32) (high, low uint32, err error) {
	if overrideHigh != nil && overrideLow != nil {
		return *overrideHigh, *overrideLow, nil
	}

	fk := filenameKey(filename)
	vk, err := versionKey(filename, entries)
	if err != nil {
		return 0, 0, err
	}

	combined := fk + vk
	if combined&0x00FFFFFFFFFFFFFF == 0 {
		combined = 0x0100000000000000
	} else {
		combined &= 0x00FFFFFFFFFFFFFF
	}

	return uint32(combined >> 32), uint32(combined & 0xFFFFFFFF), nil
}
