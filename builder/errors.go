// SPDX-License-Identifier: MIT
package builder

import "errors"

// ErrTooFewVertices indicates a cycle-size parameter below the allowed
// minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")
