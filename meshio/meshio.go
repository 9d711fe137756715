// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshio writes (and reads back) [shape.Construct] meshes
// in standard 3D file formats, selected by file extension.
package meshio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/prims/shape"
)

// Encoder writes a mesh in one file format.
// This interface is implemented by the different format-specific encoders.
type Encoder interface {
	// Desc returns the description of this encoder.
	Desc() string

	// Encode writes the given mesh, with the given object name, to w.
	Encode(w io.Writer, name string, cs *shape.Construct) error
}

// Decoder reads a mesh in one file format.
type Decoder interface {
	// Desc returns the description of this decoder.
	Desc() string

	// Decode reads a mesh from r.
	Decode(r io.Reader) (*shape.Construct, error)
}

// Encoders is the master list of encoders, indexed by the primary extension.
var Encoders = map[string]Encoder{}

// Decoders is the master list of decoders, indexed by the primary extension.
var Decoders = map[string]Decoder{}

// Formats returns the extensions of all registered encoders, sorted.
func Formats() []string {
	exts := make([]string, 0, len(Encoders))
	for ext := range Encoders {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// EncoderFor returns the encoder for the extension of the given file name,
// or for the given bare format name such as "obj".
func EncoderFor(fname string) (Encoder, error) {
	ext := extension(fname)
	enc, has := Encoders[ext]
	if !has {
		return nil, fmt.Errorf("meshio.EncoderFor: file extension: %v not found in Encoders list for file %v", ext, fname)
	}
	return enc, nil
}

func extension(fname string) string {
	ext := filepath.Ext(fname)
	if ext == "" {
		ext = "." + fname
	}
	return strings.ToLower(ext)
}

// WriteFile writes the mesh to the given file using the encoder for
// its extension, with the given object name.
func WriteFile(fname, name string, cs *shape.Construct) error {
	enc, err := EncoderFor(fname)
	if err != nil {
		return err
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	err = enc.Encode(bw, name, cs)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// ReadFile reads a mesh from the given file using the decoder for its extension.
func ReadFile(fname string) (*shape.Construct, error) {
	ext := extension(fname)
	dec, has := Decoders[ext]
	if !has {
		return nil, fmt.Errorf("meshio.ReadFile: file extension: %v not found in Decoders list for file %v", ext, fname)
	}
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dec.Decode(bufio.NewReader(f))
}
