// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"
	"slices"
)

// Options are the construction settings shared by all generators.
// The zero value produces positions only, in the generator's
// default topology.
type Options struct {

	// Topology is the requested output topology. [TopologyUnset]
	// selects the first topology the generator supports.
	Topology Topology

	// Features selects the optional attribute arrays to generate.
	Features Features

	// ColorAlpha generates RGBA instead of RGB colors when [Colors] is set.
	// The alpha channel is always 0.
	ColorAlpha bool

	// TexCoordDim is the width of texture coordinates, 2 or 3, when
	// [TexCoords] is set. 0 means 2.
	TexCoordDim int
}

// resolve checks the options against the topologies supported by the
// named generator, and fills in defaults. It is called before any
// geometry is allocated.
func (o Options) resolve(fn string, supported ...Topology) (Options, error) {
	if o.Topology == TopologyUnset {
		o.Topology = supported[0]
	} else if !slices.Contains(supported, o.Topology) {
		return o, fmt.Errorf("shape.%s: %w: %v, must be one of %v", fn, ErrUnsupportedTopology, o.Topology, supported)
	}
	if o.Features.Has(TexCoords) {
		switch o.TexCoordDim {
		case 0:
			o.TexCoordDim = 2
		case 2, 3:
		default:
			return o, fmt.Errorf("shape.%s: %w: TexCoordDim = %d, must be 2 or 3", fn, ErrInvalidParameter, o.TexCoordDim)
		}
	}
	return o, nil
}
