// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package losses

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromName(t *testing.T) {
	require.Equal(t, TypeCategoricalCrossentropy, FromName("categorical_crossentropy"))
	require.Equal(t, TypeCategoricalCrossentropy, FromName("CategoricalCrossentropy"))
	require.Equal(t, TypeMeanSquaredError, FromName("mse"))
	require.Equal(t, TypeMeanSquaredError, FromName("MeanSquaredError"))
	require.Equal(t, TypeBinaryCrossentropy, FromName("BinaryCrossentropy"))
	require.Equal(t, "sparse_categorical_crossentropy", TypeSparseCategoricalCrossentropy.String())
	require.Panics(t, func() { _ = FromName("hinge") })
}

func TestCategoricalCrossentropy(t *testing.T) {
	got := Compute(TypeCategoricalCrossentropy, []float32{0, 1}, []float32{0.25, 0.75})
	assert.InDelta(t, -math.Log(0.75), got, 1e-6)

	// Predictions are normalized before taking the log.
	got = Compute(TypeCategoricalCrossentropy, []float32{0, 1}, []float32{1, 3})
	assert.InDelta(t, -math.Log(0.75), got, 1e-6)

	// Clipped, so it doesn't go to infinity.
	got = Compute(TypeCategoricalCrossentropy, []float32{1, 0}, []float32{0, 1})
	assert.InDelta(t, -math.Log(Epsilon), got, 1e-3)

	require.Panics(t, func() { _ = Compute(TypeCategoricalCrossentropy, []float32{1}, []float32{0.5, 0.5}) })
}

func TestSparseCategoricalCrossentropy(t *testing.T) {
	got := Compute(TypeSparseCategoricalCrossentropy, []float32{1}, []float32{0.25, 0.75})
	assert.InDelta(t, -math.Log(0.75), got, 1e-6)
	require.Panics(t, func() { _ = Compute(TypeSparseCategoricalCrossentropy, []float32{2}, []float32{0.25, 0.75}) })
	require.Panics(t, func() { _ = Compute(TypeSparseCategoricalCrossentropy, []float32{0.5}, []float32{0.25, 0.75}) })
}

func TestRegressionLosses(t *testing.T) {
	labels := []float32{1, 2, 3}
	predictions := []float32{1, 3, 1}
	assert.InDelta(t, (0+1+4)/3.0, Compute(TypeMeanSquaredError, labels, predictions), 1e-6)
	assert.InDelta(t, (0+1+2)/3.0, Compute(TypeMeanAbsoluteError, labels, predictions), 1e-6)

	bce := Compute(TypeBinaryCrossentropy, []float32{1, 0}, []float32{0.9, 0.2})
	want := (-math.Log(0.9) - math.Log(0.8)) / 2
	assert.InDelta(t, want, bce, 1e-6)
}

func TestMean(t *testing.T) {
	labels := [][]float32{{0, 1}, {1, 0}}
	predictions := [][]float32{{0.5, 0.5}, {0.5, 0.5}}
	assert.InDelta(t, math.Log(2), Mean(TypeCategoricalCrossentropy, labels, predictions), 1e-6)
	assert.Equal(t, float32(0), Mean(TypeMeanSquaredError, nil, nil))
	require.Panics(t, func() { _ = Mean(TypeMeanSquaredError, labels, predictions[:1]) })
}
