// Copyright (c) 2026, The ez3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image/color"
	"slices"
)

// Graph is the ordered set of nodes drawn by a [Renderer].
// A node is held at most once.
type Graph struct {

	// Background is the color the image is cleared to before drawing.
	Background color.RGBA

	nodes []Node
}

// NewGraph returns a new empty [Graph] with the given background.
func NewGraph(bg color.RGBA) *Graph {
	return &Graph{Background: bg}
}

// Add adds the given node, if it is not already in the graph.
func (g *Graph) Add(n Node) {
	if n == nil || g.Has(n) {
		return
	}
	g.nodes = append(g.nodes, n)
}

// Remove removes the given node; it does nothing if the node is absent.
func (g *Graph) Remove(n Node) {
	if i := slices.Index(g.nodes, n); i >= 0 {
		g.nodes = slices.Delete(g.nodes, i, i+1)
	}
}

// Has returns whether the given node is in the graph.
func (g *Graph) Has(n Node) bool {
	return slices.Contains(g.nodes, n)
}

// Nodes returns a copy of the nodes in insertion order.
func (g *Graph) Nodes() []Node {
	return slices.Clone(g.nodes)
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}
