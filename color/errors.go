// SPDX-License-Identifier: MIT

package color

import "errors"

// ErrBadHex is returned by ParseHex for input that is not #rgb, #rrggbb or
// #rrggbbaa.
var ErrBadHex = errors.New("color: malformed hex color")
