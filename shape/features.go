// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"
	"strings"
)

// Features is a bit flag set selecting which optional vertex attribute
// arrays a generator fills in. Positions are always generated.
type Features int64

const (
	// Normals generates a surface normal per vertex.
	Normals Features = 1 << iota

	// TexCoords generates texture coordinates per vertex, with the
	// width given by [Options.TexCoordDim].
	TexCoords

	// Colors generates a color per vertex, derived from the
	// unscaled shape coordinates. See [Options.ColorAlpha].
	Colors
)

// AllFeatures has every feature flag set.
const AllFeatures = Normals | TexCoords | Colors

var featureNames = []struct {
	flag Features
	name string
}{
	{Normals, "Normals"},
	{TexCoords, "TexCoords"},
	{Colors, "Colors"},
}

// Has returns whether all of the given flags are set.
func (f Features) Has(flags Features) bool {
	return f&flags == flags
}

// SetFlag sets the given flags on or off.
func (f *Features) SetFlag(on bool, flags Features) {
	if on {
		*f |= flags
	} else {
		*f &^= flags
	}
}

// String returns the set flag names joined by |, or "" if none are set.
func (f Features) String() string {
	var names []string
	for _, fn := range featureNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "|")
}

// SetString sets the flags from names separated by | or commas,
// ignoring case and surrounding space. An empty string clears all flags.
func (f *Features) SetString(s string) error {
	var nf Features
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' })
	for _, fld := range fields {
		fld = strings.TrimSpace(fld)
		if fld == "" {
			continue
		}
		found := false
		for _, fn := range featureNames {
			if strings.EqualFold(fld, fn.name) {
				nf |= fn.flag
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%q is not a valid value for type Features", fld)
		}
	}
	*f = nf
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (f Features) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (f *Features) UnmarshalText(text []byte) error {
	return f.SetString(string(text))
}
