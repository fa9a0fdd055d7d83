// SPDX-License-Identifier: MIT
// Package: densub/builder
//
// errors.go — sentinel errors for the builder package.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n) is smaller than
// the allowed minimum for the requested constructor (Cycle/Path/Complete).
var ErrTooFewVertices = errors.New("builder: parameter too small")
