// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package model declares models as a graph of layers, from a single input to a single output.
//
// A model is declared by applying layers to nodes, starting from Input, and then calling Build with the
// input and output nodes:
//
//	x := model.Input("input", 7, 8, 9)
//	h := layers.Flatten(x)
//	h = layers.Dense(h, 128).Activation(activations.TypeRelu).Done()
//	y := layers.Dense(h, 2).Activation(activations.TypeSoftmax).Name("output").Done()
//	m := model.Build(x, y).Name("classifier").Done()
//	m.Compile().LossByName("categorical_crossentropy").OptimizerByName("adam").Metrics("accuracy").Done()
//	m.PrintSummary(os.Stdout)
//
// The model is only a declaration: it has its variables initialized, but it is never trained or executed
// here. See package export to convert it to an ONNX model.
//
// Errors while declaring a model are bugs in the calling code, and they are reported with panics
// (using github.com/gomlx/exceptions).
package model

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/onnxfixtures/pkg/core/shapes"
	"github.com/gomlx/onnxfixtures/pkg/ml/initializer"
	"k8s.io/klog/v2"
)

// DefaultName is the name of a model if none is given.
const DefaultName = "model"

// Model is a built graph of layers, from one input to one output, in topological order.
type Model struct {
	name          string
	input, output *Node
	nodes         []*Node
	layersByName  map[string]Layer
	compiled      *CompileConfig
}

// Builder for a Model, see Build.
type Builder struct {
	input, output *Node
	name          string
	seed          int64
}

// Build returns a builder for a model from input to output.
// Configure it with the optional settings and call Builder.Done to build the model.
//
// The input node must have been created with Input, and the output must be derived from it.
func Build(input, output *Node) *Builder {
	return &Builder{
		input:  input,
		output: output,
		name:   DefaultName,
	}
}

// Name of the model. Default is DefaultName.
func (b *Builder) Name(name string) *Builder {
	b.name = name
	return b
}

// Seed for the random number generator used to initialize the variables.
// The default is 0, which means a random seed, and each model built will have different weights.
func (b *Builder) Seed(seed int64) *Builder {
	b.seed = seed
	return b
}

// Done builds the model: it walks the graph from the output back to the input, checks that the output depends on
// the given input only, sorts the layers in topological order, checks layer names are unique, and initializes
// all variables.
//
// It panics if the graph is not valid.
func (b *Builder) Done() *Model {
	if b.input == nil || b.output == nil {
		exceptions.Panicf("model.Build(): input and output nodes must be given")
	}
	if _, ok := b.input.layer.(*InputLayer); !ok {
		exceptions.Panicf("model.Build(): input node %s must be created with model.Input()", b.input)
	}
	if b.input.graph != b.output.graph {
		exceptions.Panicf("model.Build(): output %s was not derived from input %s", b.output, b.input)
	}
	m := &Model{
		name:         b.name,
		input:        b.input,
		output:       b.output,
		layersByName: make(map[string]Layer),
	}

	// Depth-first search from the output: post-order is a topological order.
	visited := make(map[*Node]bool)
	var visit func(node *Node)
	visit = func(node *Node) {
		if visited[node] {
			return
		}
		visited[node] = true
		if len(node.inputs) == 0 && node != b.input {
			exceptions.Panicf("model.Build(): output %s depends on input %s, which is not the model input %s",
				b.output, node, b.input)
		}
		for _, input := range node.inputs {
			visit(input)
		}
		m.nodes = append(m.nodes, node)
	}
	visit(b.output)
	if !visited[b.input] {
		exceptions.Panicf("model.Build(): output %s doesn't depend on the input %s", b.output, b.input)
	}

	for _, node := range m.nodes {
		name := node.layer.Name()
		if _, found := m.layersByName[name]; found {
			exceptions.Panicf("model.Build(): layer name %q used more than once, layer names must be unique", name)
		}
		m.layersByName[name] = node.layer
	}

	rng := initializer.NewRNG(b.seed)
	for _, v := range m.Variables() {
		v.Initialize(rng)
	}
	klog.V(1).Infof("model %q built: %d layers, %d variables, %d parameters",
		m.name, len(m.nodes), len(m.Variables()), m.NumParams())
	return m
}

// Name of the model.
func (m *Model) Name() string { return m.name }

// Input node of the model.
func (m *Model) Input() *Node { return m.input }

// Output node of the model.
func (m *Model) Output() *Node { return m.output }

// InputShape returns the shape of the model input, including the dynamic batch axis.
func (m *Model) InputShape() shapes.Shape { return m.input.shape }

// OutputShape returns the shape of the model output, including the dynamic batch axis.
func (m *Model) OutputShape() shapes.Shape { return m.output.shape }

// Nodes of the model in topological order: the input is the first, and the output is the last.
func (m *Model) Nodes() []*Node { return m.nodes }

// Layers of the model in topological order.
func (m *Model) Layers() []Layer {
	layers := make([]Layer, len(m.nodes))
	for ii, node := range m.nodes {
		layers[ii] = node.layer
	}
	return layers
}

// Layer returns the layer with the given name, or nil if there is none.
func (m *Model) Layer(name string) Layer {
	return m.layersByName[name]
}

// Variables of all layers, in topological order of the layers.
func (m *Model) Variables() []*Variable {
	var vars []*Variable
	for _, node := range m.nodes {
		vars = append(vars, node.layer.Variables()...)
	}
	return vars
}

// NumParams returns the total number of scalar values in the model variables.
func (m *Model) NumParams() int {
	var total int
	for _, v := range m.Variables() {
		total += v.NumParams()
	}
	return total
}

// NumTrainableParams returns the number of scalar values in trainable variables.
func (m *Model) NumTrainableParams() int {
	var total int
	for _, v := range m.Variables() {
		if v.Trainable() {
			total += v.NumParams()
		}
	}
	return total
}

// NumNonTrainableParams returns the number of scalar values in non-trainable variables.
func (m *Model) NumNonTrainableParams() int {
	return m.NumParams() - m.NumTrainableParams()
}
