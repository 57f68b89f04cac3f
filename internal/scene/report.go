// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/lvmath/angle"
	"github.com/katalvlaran/lvmath/vector"
)

// printZero is the magnitude below which reported values print as zero,
// so tiny residues never show up as "-0.0000".
const printZero = 5e-5

// Write prints a deterministic text report of r.
//
// Layout per node:
//
//	node <name> parent <parent|-> depth <n>
//	  position x y z        (world space, 4 decimals)
//	  euler    roll pitch yaw (world space, degrees in [0,360))
//	  scale    x y z
//	  round-trip ok|FAILED
func (r *Result) Write(w io.Writer) error {
	p := &printer{w: w}
	p.printf("epsilon %g\n", r.Epsilon)
	p.printf("nodes %d\n", len(r.Nodes))
	for _, n := range r.Nodes {
		parent := n.Parent
		if parent == "" {
			parent = "-"
		}
		p.printf("node %s parent %s depth %d\n", n.Name, parent, n.Depth)
		p.vec("position", n.Global.Position, 4)

		x, y, z := n.Global.Rotation.EulerAngles()
		p.vec("euler   ", vector.NewVec3(degrees(x), degrees(y), degrees(z)), 3)
		p.vec("scale   ", n.Global.Scale, 4)

		status := "ok"
		if !n.RoundTrip {
			status = "FAILED"
		}
		p.printf("  round-trip %s\n", status)
	}

	p.printf("colors %d\n", len(r.Colors))
	for _, c := range r.Colors {
		p.printf("color %s gamma %d %d %d %d hdr %.3f\n",
			c.Name, c.Gamma[0], c.Gamma[1], c.Gamma[2], c.Gamma[3], c.HdrMultiplier)
	}
	return p.err
}

// degrees maps a radian angle to [0,360) degrees for reporting.
func degrees(rad float64) float64 {
	d := angle.RadianToDegree(angle.NormalizeRadian(rad))
	if 360-d < printZero {
		return 0
	}
	return d
}

// printer keeps the first write error and drops later output.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) vec(label string, v vector.Vec3, prec int) {
	p.printf("  %s %.*f %.*f %.*f\n", label, prec, tidy(v.X), prec, tidy(v.Y), prec, tidy(v.Z))
}

func tidy(v float64) float64 {
	if math.Abs(v) < printZero {
		return 0
	}
	return v
}
