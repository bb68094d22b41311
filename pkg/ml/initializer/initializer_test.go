// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package initializer

import (
	"math"
	"testing"

	"github.com/gomlx/onnxfixtures/pkg/core/dtypes"
	"github.com/gomlx/onnxfixtures/pkg/core/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstants(t *testing.T) {
	rng := NewRNG(1)
	shape := shapes.Make(dtypes.Float32, 2, 3)
	require.Equal(t, make([]float32, 6), Zero(rng, shape))
	require.Equal(t, []float32{1, 1, 1, 1, 1, 1}, One(rng, shape))
	require.Equal(t, []float32{0.5, 0.5}, Constant(0.5)(rng, shapes.Make(dtypes.Float32, 2)))
}

func TestGlorotUniform(t *testing.T) {
	rng := NewRNG(42)
	shape := shapes.Make(dtypes.Float32, 504, 128)
	values := GlorotUniform(rng, shape)
	require.Len(t, values, 504*128)
	limit := math.Sqrt(6.0 / (504 + 128))
	var sum float64
	for _, v := range values {
		require.LessOrEqual(t, math.Abs(float64(v)), limit)
		sum += float64(v)
	}
	// Mean should be close to 0.
	assert.InDelta(t, 0.0, sum/float64(len(values)), 0.01)

	// Bias is zero.
	require.Equal(t, make([]float32, 128), GlorotUniform(rng, shapes.Make(dtypes.Float32, 128)))
}

func TestSeeds(t *testing.T) {
	shape := shapes.Make(dtypes.Float32, 16, 2)
	require.Equal(t, GlorotUniform(NewRNG(7), shape), GlorotUniform(NewRNG(7), shape))
	require.NotEqual(t, GlorotUniform(NewRNG(7), shape), GlorotUniform(NewRNG(8), shape))
}

func TestHeAndNormal(t *testing.T) {
	rng := NewRNG(3)
	values := He(rng, shapes.Make(dtypes.Float32, 1000, 10))
	var sumSq float64
	for _, v := range values {
		sumSq += float64(v) * float64(v)
	}
	assert.InDelta(t, 2.0/1000.0, sumSq/float64(len(values)), 5e-4)
	require.Panics(t, func() { _ = Uniform(1, 0) })
}
