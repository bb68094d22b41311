// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package layers implements the layers used to declare a model: Flatten and Dense.
//
// Each layer function takes the node it is applied to and returns a new node (or a builder for it) in the
// same graph. See package model for how nodes are built into a model.
package layers

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/onnxfixtures/pkg/core/dtypes"
	"github.com/gomlx/onnxfixtures/pkg/core/shapes"
	"github.com/gomlx/onnxfixtures/pkg/ml/initializer"
	"github.com/gomlx/onnxfixtures/pkg/ml/layers/activations"
	"github.com/gomlx/onnxfixtures/pkg/ml/model"
)

// DenseLayer is a fully connected layer: `activation(x · kernel + bias)`.
type DenseLayer struct {
	name         string
	inputDim     int
	units        int
	activation   activations.Type
	kernel, bias *model.Variable
}

// Name implements model.Layer.
func (l *DenseLayer) Name() string { return l.name }

// Type implements model.Layer.
func (l *DenseLayer) Type() string { return "Dense" }

// Variables implements model.Layer.
func (l *DenseLayer) Variables() []*model.Variable {
	if l.bias == nil {
		return []*model.Variable{l.kernel}
	}
	return []*model.Variable{l.kernel, l.bias}
}

// InputDim is the number of input features.
func (l *DenseLayer) InputDim() int { return l.inputDim }

// Units is the number of output features.
func (l *DenseLayer) Units() int { return l.units }

// Activation applied after the linear transformation.
func (l *DenseLayer) Activation() activations.Type { return l.activation }

// Kernel variable, shaped `[inputDim, units]`.
func (l *DenseLayer) Kernel() *model.Variable { return l.kernel }

// Bias variable, shaped `[units]`. It is nil if the layer was created without bias.
func (l *DenseLayer) Bias() *model.Variable { return l.bias }

// DenseBuilder configures a Dense layer, see Dense.
type DenseBuilder struct {
	x                 *model.Node
	units             int
	name              string
	activation        activations.Type
	useBias           bool
	kernelInitializer initializer.Initializer
	biasInitializer   initializer.Initializer
}

// Dense returns a builder for a fully connected layer applied to x, with the given number of units.
// Configure it with its methods, and call DenseBuilder.Done to create the layer and its output node.
//
// The input x must be shaped `[batch, features]` (use Flatten before if needed), and the output is shaped
// `[batch, units]`.
//
// By default, there is no activation, bias is used, the kernel is initialized with initializer.GlorotUniform
// and the bias with zeros.
func Dense(x *model.Node, units int) *DenseBuilder {
	if units <= 0 {
		exceptions.Panicf("layers.Dense: units must be > 0, got %d", units)
	}
	return &DenseBuilder{
		x:                 x,
		units:             units,
		useBias:           true,
		kernelInitializer: initializer.GlorotUniform,
		biasInitializer:   initializer.Zero,
	}
}

// Activation sets the activation applied to the output. Default is activations.TypeNone.
func (b *DenseBuilder) Activation(activation activations.Type) *DenseBuilder {
	b.activation = activation
	return b
}

// UseBias sets whether a bias is added. Default is true.
func (b *DenseBuilder) UseBias(useBias bool) *DenseBuilder {
	b.useBias = useBias
	return b
}

// Name of the layer. Default is "dense", followed by a numeric suffix if already taken in the graph.
func (b *DenseBuilder) Name(name string) *DenseBuilder {
	b.name = name
	return b
}

// KernelInitializer sets the initializer of the kernel.
func (b *DenseBuilder) KernelInitializer(initializerFn initializer.Initializer) *DenseBuilder {
	b.kernelInitializer = initializerFn
	return b
}

// BiasInitializer sets the initializer of the bias.
func (b *DenseBuilder) BiasInitializer(initializerFn initializer.Initializer) *DenseBuilder {
	b.biasInitializer = initializerFn
	return b
}

// Done creates the layer and returns its output node.
func (b *DenseBuilder) Done() *model.Node {
	xShape := b.x.Shape()
	if xShape.Rank() != 2 || xShape.Dim(-1) == shapes.DynamicDim {
		exceptions.Panicf("layers.Dense: input must be shaped [batch, features] with static features, got %s"+
			" -- use layers.Flatten first", xShape)
	}
	name := b.name
	if name == "" {
		name = b.x.Graph().UniqueName("dense")
	}
	inputDim := xShape.Dim(-1)
	layer := &DenseLayer{
		name:       name,
		inputDim:   inputDim,
		units:      b.units,
		activation: b.activation,
		kernel:     model.NewVariable(name+"/kernel", shapes.Make(dtypes.Float32, inputDim, b.units), b.kernelInitializer),
	}
	if b.useBias {
		layer.bias = model.NewVariable(name+"/bias", shapes.Make(dtypes.Float32, b.units), b.biasInitializer)
	}
	outputShape := shapes.Make(xShape.DType, xShape.Dim(0), b.units)
	return model.NewNode(layer, outputShape, b.x)
}
