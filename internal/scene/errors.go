// SPDX-License-Identifier: MIT

package scene

import "errors"

var (
	// ErrMissingName indicates a node or color without a name.
	ErrMissingName = errors.New("scene: missing name")

	// ErrDuplicateNode indicates two nodes sharing a name.
	ErrDuplicateNode = errors.New("scene: duplicate node")

	// ErrUnknownParent indicates a parent reference to a node that does not exist.
	ErrUnknownParent = errors.New("scene: unknown parent")

	// ErrCycle indicates a parent chain that loops back on itself.
	ErrCycle = errors.New("scene: parent cycle")

	// ErrBadVector indicates a vector field with the wrong number of
	// components, a zero rotation axis, or conflicting rotation fields.
	ErrBadVector = errors.New("scene: malformed vector")

	// ErrUnknownColor indicates a CSS name not known to color.Named.
	ErrUnknownColor = errors.New("scene: unknown color name")

	// ErrBadColor indicates a color entry with zero or several sources, or
	// out-of-range bytes.
	ErrBadColor = errors.New("scene: malformed color")
)
