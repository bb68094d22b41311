// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package layers

import (
	"testing"

	"github.com/gomlx/onnxfixtures/pkg/core/shapes"
	"github.com/gomlx/onnxfixtures/pkg/ml/initializer"
	"github.com/gomlx/onnxfixtures/pkg/ml/layers/activations"
	"github.com/gomlx/onnxfixtures/pkg/ml/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	x := model.Input("input", 7, 8, 9)
	flat := Flatten(x)
	assert.Equal(t, []int{shapes.DynamicDim, 504}, flat.Shape().Dimensions)
	layer := flat.Layer().(*FlattenLayer)
	assert.Equal(t, "flatten", layer.Name())
	assert.Equal(t, "Flatten", layer.Type())
	assert.Equal(t, 504, layer.Size())
	assert.Empty(t, layer.Variables())

	// Flattening an already flat node is a no-op shape-wise, with a new name.
	flat2 := Flatten(flat)
	assert.Equal(t, []int{shapes.DynamicDim, 504}, flat2.Shape().Dimensions)
	assert.Equal(t, "flatten_1", flat2.Layer().Name())
}

func TestDense(t *testing.T) {
	x := Flatten(model.Input("input", 7, 8, 9))
	h := Dense(x, 16).Activation(activations.TypeRelu).Done()
	y := Dense(h, 2).Activation(activations.TypeSoftmax).Name("output").Done()
	h2 := Dense(h, 3).UseBias(false).Done()

	assert.Equal(t, []int{shapes.DynamicDim, 16}, h.Shape().Dimensions)
	assert.Equal(t, []int{shapes.DynamicDim, 2}, y.Shape().Dimensions)

	hidden := h.Layer().(*DenseLayer)
	assert.Equal(t, "dense", hidden.Name())
	assert.Equal(t, "Dense", hidden.Type())
	assert.Equal(t, 504, hidden.InputDim())
	assert.Equal(t, 16, hidden.Units())
	assert.Equal(t, activations.TypeRelu, hidden.Activation())
	assert.Equal(t, "dense/kernel", hidden.Kernel().Name())
	assert.Equal(t, []int{504, 16}, hidden.Kernel().Shape().Dimensions)
	assert.Equal(t, "dense/bias", hidden.Bias().Name())
	assert.Equal(t, []int{16}, hidden.Bias().Shape().Dimensions)

	output := y.Layer().(*DenseLayer)
	assert.Equal(t, "output", output.Name())
	assert.Equal(t, activations.TypeSoftmax, output.Activation())
	assert.Equal(t, (16+1)*2, output.Kernel().NumParams()+output.Bias().NumParams())

	noBias := h2.Layer().(*DenseLayer)
	assert.Equal(t, "dense_1", noBias.Name())
	assert.Nil(t, noBias.Bias())
	assert.Len(t, noBias.Variables(), 1)
}

func TestDenseInitializers(t *testing.T) {
	x := model.Input("input", 4)
	y := Dense(x, 3).
		KernelInitializer(initializer.One).
		BiasInitializer(initializer.Constant(0.5)).
		Done()
	model.Build(x, y).Seed(1).Done()
	layer := y.Layer().(*DenseLayer)
	assert.Equal(t, []float32{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, layer.Kernel().Value())
	assert.Equal(t, []float32{0.5, 0.5, 0.5}, layer.Bias().Value())
}

func TestDenseInvalid(t *testing.T) {
	x := model.Input("input", 7, 8, 9)
	require.Panics(t, func() { Dense(x, 10).Done() }, "Dense requires a rank-2 input")
	require.Panics(t, func() { Dense(Flatten(x), 0) }, "units must be > 0")
}
