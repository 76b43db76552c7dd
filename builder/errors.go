// SPDX-License-Identifier: MIT
package builder

import "errors"

// ErrTooFewVertices indicates a numeric parameter (n, rows, cols) is
// smaller than the minimum the requested constructor needs.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates BuildGraph was handed a nil Constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
