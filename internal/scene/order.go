// SPDX-License-Identifier: MIT

package scene

import (
	"context"
	"fmt"
)

// Visitation states of the parents-first walk.
const (
	white = iota // not visited
	gray         // on the current parent chain
	black        // placed in the order
)

// orderer records a parents-first order over the node index.
type orderer struct {
	ctx    context.Context
	parent map[string]string // child name → parent name ("" for roots)
	state  map[string]int
	order  []string
}

// parentsFirst returns every node name so that each parent precedes its
// children. Ties follow document order. A parent chain that loops yields
// ErrCycle.
func parentsFirst(ctx context.Context, nodes []NodeSpec) ([]string, error) {
	o := &orderer{
		ctx:    ctx,
		parent: make(map[string]string, len(nodes)),
		state:  make(map[string]int, len(nodes)),
		order:  make([]string, 0, len(nodes)),
	}
	for _, n := range nodes {
		o.parent[n.Name] = n.Parent
	}
	for _, n := range nodes {
		if o.state[n.Name] == white {
			if err := o.visit(n.Name); err != nil {
				return nil, err
			}
		}
	}
	return o.order, nil
}

// visit places the parent chain of id, then id itself.
func (o *orderer) visit(id string) error {
	select {
	case <-o.ctx.Done():
		return o.ctx.Err()
	default:
	}

	switch o.state[id] {
	case gray:
		return fmt.Errorf("%w: through %q", ErrCycle, id)
	case black:
		return nil
	}
	o.state[id] = gray

	if p := o.parent[id]; p != "" {
		if err := o.visit(p); err != nil {
			return err
		}
	}

	o.state[id] = black
	o.order = append(o.order, id)
	return nil
}
