// SPDX-License-Identifier: MIT

package scene

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvmath/color"
	"github.com/katalvlaran/lvmath/transform"
)

// Node is a resolved node.
type Node struct {
	Name   string
	Parent string
	Depth  int
	Local  transform.Transform
	Global transform.Transform
	// RoundTrip reports whether the local transform recomputed from Global
	// matches Local within the document epsilon.
	RoundTrip bool
}

// Color is a resolved palette entry.
type Color struct {
	Name          string
	Value         color.Color
	Gamma         [4]uint8
	HdrMultiplier float64
}

// Result is the outcome of Document.Resolve. Nodes are parents-first,
// Colors in document order.
type Result struct {
	Epsilon float64
	Nodes   []Node
	Colors  []Color
}

// Resolve validates d and computes global transforms and colors. A nil
// log discards output.
func (d *Document) Resolve(ctx context.Context, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	eps := d.epsilon()

	specs, err := d.index()
	if err != nil {
		return nil, err
	}
	order, err := parentsFirst(ctx, d.Nodes)
	if err != nil {
		return nil, err
	}

	res := &Result{Epsilon: eps, Nodes: make([]Node, 0, len(order))}
	byName := make(map[string]int, len(order))

	for _, name := range order {
		spec := specs[name]
		local, err := spec.Local()
		if err != nil {
			return nil, err
		}

		n := Node{Name: name, Parent: spec.Parent, Local: local, Global: local, RoundTrip: true}
		if spec.Parent != "" {
			parent := res.Nodes[byName[spec.Parent]]
			n.Depth = parent.Depth + 1
			n.Global.SetGlobalTransform(parent.Global, local)

			var back transform.Transform
			back.SetLocalTransform(parent.Global, n.Global)
			n.RoundTrip = back.IsEqual(local, eps)
		}
		if !n.RoundTrip {
			log.Warn("local transform does not round-trip", zap.String("node", name), zap.Float64("epsilon", eps))
		}
		log.Debug("node resolved",
			zap.String("node", name),
			zap.String("parent", spec.Parent),
			zap.Int("depth", n.Depth),
			zap.Stringer("global", n.Global),
		)

		byName[name] = len(res.Nodes)
		res.Nodes = append(res.Nodes, n)
	}

	for _, cs := range d.Colors {
		if cs.Name == "" {
			return nil, fmt.Errorf("%w: color entry", ErrMissingName)
		}
		v, err := cs.Resolve()
		if err != nil {
			return nil, err
		}
		c := Color{Name: cs.Name, Value: v, HdrMultiplier: v.ComputeHdrMultiplier()}
		c.Gamma[0], c.Gamma[1], c.Gamma[2], c.Gamma[3] = v.GammaByteRGBA()
		res.Colors = append(res.Colors, c)
		log.Debug("color resolved", zap.String("color", cs.Name), zap.Stringer("linear", v))
	}

	log.Info("scene resolved",
		zap.Int("nodes", len(res.Nodes)),
		zap.Int("colors", len(res.Colors)),
		zap.Float64("epsilon", eps),
	)
	return res, nil
}

// index validates node names and parent references.
func (d *Document) index() (map[string]NodeSpec, error) {
	specs := make(map[string]NodeSpec, len(d.Nodes))
	for i, n := range d.Nodes {
		if n.Name == "" {
			return nil, fmt.Errorf("%w: node #%d", ErrMissingName, i)
		}
		if _, dup := specs[n.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, n.Name)
		}
		specs[n.Name] = n
	}
	for _, n := range d.Nodes {
		if n.Parent == "" {
			continue
		}
		if _, ok := specs[n.Parent]; !ok {
			return nil, fmt.Errorf("%w: node %q references %q", ErrUnknownParent, n.Name, n.Parent)
		}
	}
	return specs, nil
}
