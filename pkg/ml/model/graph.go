// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package model

import (
	"fmt"
	"strconv"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/onnxfixtures/pkg/core/dtypes"
	"github.com/gomlx/onnxfixtures/pkg/core/shapes"
)

// Layer is implemented by every layer that can be part of a model graph.
//
// A layer is created by a builder function (e.g.: layers.Dense) that also creates the Node holding
// its output. After the model is built, layers are read only.
type Layer interface {
	// Name of the layer, unique within a model. E.g.: "dense_1".
	Name() string

	// Type of the layer, as displayed in the summary. E.g.: "Dense".
	Type() string

	// Variables owned by the layer, possibly empty.
	Variables() []*Variable
}

// Graph holds the nodes created from one Input.
//
// It is created by Input, and it is shared by all the nodes derived from it.
type Graph struct {
	nodes []*Node

	// nameCounters holds the next suffix for each default name prefix.
	nameCounters map[string]int
	usedNames    map[string]bool
}

func newGraph() *Graph {
	return &Graph{
		nameCounters: make(map[string]int),
		usedNames:    make(map[string]bool),
	}
}

// NumNodes returns the number of nodes created in the graph so far.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// UniqueName returns a new layer name with the given prefix: the first call returns prefix, the following ones
// "<prefix>_1", "<prefix>_2", etc. Names already taken in the graph are skipped.
func (g *Graph) UniqueName(prefix string) string {
	for {
		count := g.nameCounters[prefix]
		g.nameCounters[prefix] = count + 1
		name := prefix
		if count > 0 {
			name = prefix + "_" + strconv.Itoa(count)
		}
		if !g.usedNames[name] {
			return name
		}
	}
}

// Node is the output of a layer in the model graph.
type Node struct {
	graph  *Graph
	id     int
	layer  Layer
	inputs []*Node
	shape  shapes.Shape
}

// NewNode creates a new node in the graph of the given inputs, holding the output of layer.
//
// It is used by the layer builders, and it panics if inputs don't all belong to the same graph.
func NewNode(layer Layer, shape shapes.Shape, inputs ...*Node) *Node {
	if len(inputs) == 0 {
		exceptions.Panicf("model.NewNode(%q): at least one input is required, use model.Input to create the input",
			layer.Name())
	}
	g := inputs[0].graph
	for _, input := range inputs[1:] {
		if input.graph != g {
			exceptions.Panicf("model.NewNode(%q): inputs from different graphs", layer.Name())
		}
	}
	return g.newNode(layer, shape, inputs)
}

func (g *Graph) newNode(layer Layer, shape shapes.Shape, inputs []*Node) *Node {
	node := &Node{
		graph:  g,
		id:     len(g.nodes),
		layer:  layer,
		inputs: inputs,
		shape:  shape,
	}
	g.nodes = append(g.nodes, node)
	g.usedNames[layer.Name()] = true
	return node
}

// Graph the node belongs to.
func (n *Node) Graph() *Graph { return n.graph }

// Id is the index of the node in its graph, in order of creation.
func (n *Node) Id() int { return n.id }

// Layer that outputs the node.
func (n *Node) Layer() Layer { return n.layer }

// Inputs of the node's layer.
func (n *Node) Inputs() []*Node { return n.inputs }

// Shape of the node's output. The leading axis is the (dynamic) batch axis.
func (n *Node) Shape() shapes.Shape { return n.shape }

// String implements fmt.Stringer.
func (n *Node) String() string {
	return fmt.Sprintf("#%d %s (%s) %s", n.id, n.layer.Name(), n.layer.Type(), n.shape)
}

// InputLayer is the layer of the model input: it has no variables and no computation.
type InputLayer struct {
	name string
}

// Name implements Layer.
func (l *InputLayer) Name() string { return l.name }

// Type implements Layer.
func (l *InputLayer) Type() string { return "InputLayer" }

// Variables implements Layer.
func (l *InputLayer) Variables() []*Variable { return nil }

// Input creates a new graph and returns its float32 input node, with shape `[batch, dimensions...]`, where the
// batch axis is dynamic. The name is used both for the layer and for the exported model input.
//
// Dimensions must be > 0.
func Input(name string, dimensions ...int) *Node {
	if name == "" {
		exceptions.Panicf("model.Input(): name cannot be empty")
	}
	for _, dim := range dimensions {
		if dim <= 0 {
			exceptions.Panicf("model.Input(%q, %v): dimensions must be > 0", name, dimensions)
		}
	}
	g := newGraph()
	return g.newNode(&InputLayer{name: name}, shapes.WithBatch(dtypes.Float32, dimensions...), nil)
}
