// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmath/angle"
	"github.com/katalvlaran/lvmath/color"
	"github.com/katalvlaran/lvmath/quat"
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/transform"
	"github.com/katalvlaran/lvmath/vector"
)

// Document is the decoded YAML input.
type Document struct {
	Epsilon float64     `yaml:"epsilon,omitempty"`
	Nodes   []NodeSpec  `yaml:"nodes"`
	Colors  []ColorSpec `yaml:"colors,omitempty"`
}

// NodeSpec describes one node's local transform.
type NodeSpec struct {
	Name     string        `yaml:"name"`
	Parent   string        `yaml:"parent,omitempty"`
	Position []float64     `yaml:"position,omitempty"`
	Rotation *RotationSpec `yaml:"rotation,omitempty"`
	Euler    []float64     `yaml:"euler,omitempty"`
	Scale    []float64     `yaml:"scale,omitempty"`
}

// RotationSpec is an axis and an angle in degrees. The axis need not be
// normalized.
type RotationSpec struct {
	Axis    []float64 `yaml:"axis"`
	Degrees float64   `yaml:"degrees"`
}

// ColorSpec names exactly one color source.
type ColorSpec struct {
	Name   string    `yaml:"name"`
	Named  string    `yaml:"named,omitempty"`
	Hex    string    `yaml:"hex,omitempty"`
	Gamma  []int     `yaml:"gamma,omitempty"`
	Linear []float64 `yaml:"linear,omitempty"`
}

// LoadYAML decodes a Document from r.
func LoadYAML(r io.Reader) (*Document, error) {
	var d Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	return &d, nil
}

// epsilon returns the document tolerance or scalar.LargeEpsilon.
func (d *Document) epsilon() float64 {
	if d.Epsilon <= 0 {
		return scalar.LargeEpsilon
	}
	return d.Epsilon
}

// Local builds the local transform of n.
func (n NodeSpec) Local() (transform.Transform, error) {
	t := transform.Identity()

	var err error
	if t.Position, err = vec3Field(n.Name, "position", n.Position, vector.Zero3()); err != nil {
		return t, err
	}
	if t.Scale, err = vec3Field(n.Name, "scale", n.Scale, vector.One3()); err != nil {
		return t, err
	}

	switch {
	case n.Rotation != nil && n.Euler != nil:
		return t, fmt.Errorf("%w: node %q sets both rotation and euler", ErrBadVector, n.Name)
	case n.Rotation != nil:
		axis, err := vec3Field(n.Name, "rotation.axis", n.Rotation.Axis, vector.Zero3())
		if err != nil {
			return t, err
		}
		if !axis.NormalizeIfNotZero(vector.Zero3(), scalar.SmallEpsilon) {
			return t, fmt.Errorf("%w: node %q has a zero rotation axis", ErrBadVector, n.Name)
		}
		t.Rotation.SetFromAxisAndAngle(axis, angle.DegreeToRadian(n.Rotation.Degrees))
	case n.Euler != nil:
		e, err := vec3Field(n.Name, "euler", n.Euler, vector.Zero3())
		if err != nil {
			return t, err
		}
		var q quat.Quat
		q.SetFromEulerAngles(angle.DegreeToRadian(e.X), angle.DegreeToRadian(e.Y), angle.DegreeToRadian(e.Z))
		t.Rotation = q
	}
	return t, nil
}

// Resolve decodes the color source of c.
func (c ColorSpec) Resolve() (color.Color, error) {
	sources := 0
	for _, set := range []bool{c.Named != "", c.Hex != "", c.Gamma != nil, c.Linear != nil} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return color.Color{}, fmt.Errorf("%w: color %q needs exactly one of named, hex, gamma, linear", ErrBadColor, c.Name)
	}

	switch {
	case c.Named != "":
		v, ok := color.Named(c.Named)
		if !ok {
			return color.Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, c.Named)
		}
		return v, nil
	case c.Hex != "":
		v, err := color.ParseHex(c.Hex)
		if err != nil {
			return color.Color{}, fmt.Errorf("%w: color %q: %v", ErrBadColor, c.Name, err)
		}
		return v, nil
	case c.Gamma != nil:
		if len(c.Gamma) != 3 && len(c.Gamma) != 4 {
			return color.Color{}, fmt.Errorf("%w: color %q gamma needs 3 or 4 bytes", ErrBadColor, c.Name)
		}
		b := [4]uint8{3: 255}
		for i, v := range c.Gamma {
			if v < 0 || v > 255 {
				return color.Color{}, fmt.Errorf("%w: color %q gamma byte %d out of range", ErrBadColor, c.Name, v)
			}
			b[i] = uint8(v)
		}
		return color.FromGammaBytesA(b[0], b[1], b[2], b[3]), nil
	default:
		if len(c.Linear) != 3 && len(c.Linear) != 4 {
			return color.Color{}, fmt.Errorf("%w: color %q linear needs 3 or 4 components", ErrBadColor, c.Name)
		}
		v := color.RGB(c.Linear[0], c.Linear[1], c.Linear[2])
		if len(c.Linear) == 4 {
			v.A = c.Linear[3]
		}
		return v, nil
	}
}

// vec3Field decodes a 3-component list, or returns def when the field is absent.
func vec3Field(node, field string, v []float64, def vector.Vec3) (vector.Vec3, error) {
	if v == nil {
		return def, nil
	}
	if len(v) != 3 {
		return def, fmt.Errorf("%w: node %q %s has %d components", ErrBadVector, node, field, len(v))
	}
	out := vector.NewVec3(v[0], v[1], v[2])
	if !out.IsValid() {
		return def, fmt.Errorf("%w: node %q %s is not finite", ErrBadVector, node, field)
	}
	return out, nil
}
