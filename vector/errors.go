// SPDX-License-Identifier: MIT

package vector

import "errors"

// ErrZeroLength is returned when an operation needs a direction but the
// vector (or the geometry it was derived from) has no length.
var ErrZeroLength = errors.New("vector: zero length")
