// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "errors"

// The errors returned by generators and [NewConstruct] wrap one of
// these, so callers can test for them with [errors.Is].
// No partial geometry is returned along with any of them.
var (
	// ErrInvalidParameter means a shape parameter violates a geometric
	// precondition, such as fewer than 3 slices.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvariantViolation means the attribute arrays given to
	// [NewConstruct] are not consistent with the topology.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrUnsupportedTopology means the generator cannot produce
	// the requested [Topology].
	ErrUnsupportedTopology = errors.New("unsupported topology")
)
