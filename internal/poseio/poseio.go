// Package poseio reads and writes landmark sequences and comparison reports
// as JSON.
//
// A sequence file has the shape
//
//	{"frames": [[[x, y, z, visibility], ...], ...]}
//
// where visibility may be omitted and then defaults to 1.
package poseio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/posealign/pose"
)

// ErrBadLandmark indicates a landmark entry that is not [x,y,z] or [x,y,z,v].
var ErrBadLandmark = errors.New("poseio: landmark must have 3 or 4 values")

type sequenceFile struct {
	Frames [][][]float64 `json:"frames"`
}

// ReadSequence decodes a sequence from r.
func ReadSequence(r io.Reader) ([]pose.Frame, error) {
	var sf sequenceFile
	if err := json.NewDecoder(r).Decode(&sf); err != nil {
		return nil, fmt.Errorf("decode sequence: %w", err)
	}

	seq := make([]pose.Frame, len(sf.Frames))
	for t, raw := range sf.Frames {
		f := make(pose.Frame, len(raw))
		for i, v := range raw {
			switch len(v) {
			case 3:
				f[i] = pose.Landmark{Pos: r3.Vec{X: v[0], Y: v[1], Z: v[2]}, Visibility: 1}
			case 4:
				f[i] = pose.Landmark{Pos: r3.Vec{X: v[0], Y: v[1], Z: v[2]}, Visibility: v[3]}
			default:
				return nil, fmt.Errorf("frame %d landmark %d has %d values: %w", t, i, len(v), ErrBadLandmark)
			}
		}
		seq[t] = f
	}

	return seq, nil
}

// LoadSequence reads a sequence from the JSON file at path.
func LoadSequence(path string) ([]pose.Frame, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	seq, err := ReadSequence(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return seq, nil
}

// WriteSequence encodes seq to w with visibilities included.
func WriteSequence(w io.Writer, seq []pose.Frame) error {
	sf := sequenceFile{Frames: make([][][]float64, len(seq))}
	for t, f := range seq {
		raw := make([][]float64, len(f))
		for i, lm := range f {
			raw[i] = []float64{lm.Pos.X, lm.Pos.Y, lm.Pos.Z, lm.Visibility}
		}
		sf.Frames[t] = raw
	}

	return json.NewEncoder(w).Encode(sf)
}

// WriteReport encodes v to w as indented JSON.
func WriteReport(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// SaveReport writes v as indented JSON to the file at path.
func SaveReport(path string, v any) (err error) {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return WriteReport(f, v)
}
