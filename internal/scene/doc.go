// SPDX-License-Identifier: MIT

// Package scene resolves a YAML description of a transform hierarchy and a
// color palette into world-space values, using the lvmath packages.
//
// Input schema:
//
//	epsilon: 0.001              # comparison tolerance, default scalar.LargeEpsilon
//	nodes:
//	  - name: root
//	    position: [0, 0, 0]     # default origin
//	    rotation: {axis: [0, 0, 1], degrees: 90}
//	    scale: [1, 1, 1]        # default unit scale
//	  - name: arm
//	    parent: root
//	    euler: [0, 45, 0]       # roll, pitch, yaw in degrees; excludes rotation
//	colors:
//	  - name: sky
//	    named: CornflowerBlue   # or hex: "#6495ed", gamma: [r, g, b, a?], linear: [r, g, b, a?]
//
// Resolution:
//
//	Stage 1: validate names, parents and vectors.
//	Stage 2: order nodes parents-first with a depth-first walk; a parent
//	         chain that loops back fails with ErrCycle.
//	Stage 3: global = parent.global ⊗ local, then check that
//	         SetLocalTransform(parent.global, global) gives local back within
//	         epsilon.
//	Stage 4: resolve colors and their sRGB bytes and HDR multiplier.
//
// The package does not own a scene graph; it reads the document, computes
// and reports.
package scene
