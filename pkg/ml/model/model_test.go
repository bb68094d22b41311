// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package model_test

import (
	"testing"

	"github.com/gomlx/onnxfixtures/pkg/core/dtypes"
	"github.com/gomlx/onnxfixtures/pkg/core/shapes"
	"github.com/gomlx/onnxfixtures/pkg/ml/layers"
	"github.com/gomlx/onnxfixtures/pkg/ml/layers/activations"
	. "github.com/gomlx/onnxfixtures/pkg/ml/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildMLP builds a model with the given hidden widths, seeded with seed.
func buildMLP(seed int64, widths ...int) *Model {
	x := Input("input", 7, 8, 9)
	h := layers.Flatten(x)
	for _, width := range widths {
		h = layers.Dense(h, width).Activation(activations.TypeRelu).Done()
	}
	y := layers.Dense(h, 2).Activation(activations.TypeSoftmax).Name("output").Done()
	return Build(x, y).Name("mlp").Seed(seed).Done()
}

func TestBuild(t *testing.T) {
	m := buildMLP(42, 8, 4)
	assert.Equal(t, "mlp", m.Name())
	assert.Equal(t, []int{shapes.DynamicDim, 7, 8, 9}, m.InputShape().Dimensions)
	assert.Equal(t, []int{shapes.DynamicDim, 2}, m.OutputShape().Dimensions)

	var names []string
	for _, layer := range m.Layers() {
		names = append(names, layer.Name())
	}
	assert.Equal(t, []string{"input", "flatten", "dense", "dense_1", "output"}, names)
	assert.Equal(t, m.Input(), m.Nodes()[0])
	assert.Equal(t, m.Output(), m.Nodes()[len(m.Nodes())-1])
	require.NotNil(t, m.Layer("dense_1"))
	assert.Equal(t, "Dense", m.Layer("dense_1").Type())
	assert.Nil(t, m.Layer("dense_2"))

	// (in+1)*out for each dense layer.
	want := (504+1)*8 + (8+1)*4 + (4+1)*2
	assert.Equal(t, want, m.NumParams())
	assert.Equal(t, want, m.NumTrainableParams())
	assert.Equal(t, 0, m.NumNonTrainableParams())

	for _, v := range m.Variables() {
		require.True(t, v.IsInitialized(), "variable %s not initialized", v.Name())
		require.Len(t, v.Value(), v.Shape().Size())
	}
}

func TestBuildSeed(t *testing.T) {
	m1 := buildMLP(7, 8)
	m2 := buildMLP(7, 8)
	m3 := buildMLP(8, 8)
	for ii, v := range m1.Variables() {
		assert.Equal(t, v.Value(), m2.Variables()[ii].Value(), "variable %s", v.Name())
	}
	assert.NotEqual(t, m1.Variables()[0].Value(), m3.Variables()[0].Value())
}

func TestBuildErrors(t *testing.T) {
	x := Input("input", 4)
	y := layers.Dense(x, 2).Done()

	// Output doesn't depend on the input.
	other := Input("other", 4)
	require.Panics(t, func() { Build(other, y).Done() })

	// Input not created with Input.
	require.Panics(t, func() { Build(y, y).Done() })

	// Duplicate layer names.
	h := layers.Dense(x, 3).Name("same").Done()
	z := layers.Dense(h, 2).Name("same").Done()
	require.Panics(t, func() { Build(x, z).Done() })

	// Invalid input dimensions.
	require.Panics(t, func() { Input("input", 7, 0) })
	require.Panics(t, func() { Input("", 7) })
}

func TestVariable(t *testing.T) {
	v := NewVariable("dense/kernel", shapes.Make(dtypes.Float32, 2, 3), nil)
	assert.Equal(t, 6, v.NumParams())
	assert.True(t, v.Trainable())
	assert.False(t, v.IsInitialized())
	v.Initialize(nil)
	assert.Equal(t, make([]float32, 6), v.Value())
	require.Panics(t, func() { v.SetValue([]float32{1, 2}) })
	v.SetTrainable(false)
	assert.False(t, v.Trainable())
	require.Panics(t, func() { NewVariable("dynamic", shapes.WithBatch(dtypes.Float32, 2), nil) })
}

func TestCompile(t *testing.T) {
	m := buildMLP(1, 4)
	assert.Nil(t, m.Compiled())
	require.Panics(t, func() { m.Compile().Done() }, "loss is required")
	require.Panics(t, func() { m.Compile().LossByName("hinge") })
	require.Panics(t, func() { m.Compile().OptimizerByName("lion") })
	require.Panics(t, func() { m.Compile().Metrics("f1") })

	m.Compile().LossByName("categorical_crossentropy").OptimizerByName("adam").Metrics("accuracy").Done()
	config := m.Compiled()
	require.NotNil(t, config)
	assert.Equal(t, "categorical_crossentropy", config.Loss.String())
	assert.Equal(t, "adam", config.Optimizer.Name())
	assert.Equal(t, []string{"accuracy"}, config.MetricNames())

	// Recompiling replaces the configuration.
	m.Compile().LossByName("mse").Done()
	assert.Equal(t, "mean_squared_error", m.Compiled().Loss.String())
	assert.Equal(t, DefaultOptimizer, m.Compiled().Optimizer.Name())
	assert.Empty(t, m.Compiled().MetricNames())
}

func TestSummary(t *testing.T) {
	m := buildMLP(1, 8)
	summary := m.Summary()
	assert.Contains(t, summary, `Model: "mlp"`)
	assert.Contains(t, summary, "Layer (type)")
	assert.Contains(t, summary, "input (InputLayer)")
	assert.Contains(t, summary, "(None, 7, 8, 9)")
	assert.Contains(t, summary, "flatten (Flatten)")
	assert.Contains(t, summary, "(None, 504)")
	assert.Contains(t, summary, "output (Dense)")
	assert.Contains(t, summary, "4,040")
	assert.Contains(t, summary, "Total params: 4,058 (16 kB)")
	assert.Contains(t, summary, "Non-trainable params: 0 (0 B)")
	assert.NotContains(t, summary, "Loss:")
	assert.NotContains(t, summary, "\x1b[", "Summary() should be plain text")

	m.Compile().LossByName("categorical_crossentropy").OptimizerByName("adam").Metrics("accuracy").Done()
	summary = m.Summary()
	assert.Contains(t, summary, "Loss: categorical_crossentropy")
	assert.Contains(t, summary, "Optimizer: adam(beta_1=0.9, beta_2=0.999, epsilon=1e-07, learning_rate=0.001)")
	assert.Contains(t, summary, "Metrics: accuracy")
}
