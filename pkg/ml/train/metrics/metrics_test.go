// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccuracy(t *testing.T) {
	m := FromName("accuracy")
	require.Equal(t, "accuracy", m.Name())
	require.Equal(t, AccuracyMetricType, m.MetricType())
	assert.Equal(t, 0.0, m.Result())

	m.Update([]float32{0, 1}, []float32{0.2, 0.8}) // Correct.
	m.Update([]float32{1, 0}, []float32{0.4, 0.6}) // Wrong.
	m.Update([]float32{1}, []float32{0.1, 0.9})    // Sparse label, correct.
	m.Update([]float32{0}, []float32{0.7, 0.3})    // Sparse label, correct.
	assert.InDelta(t, 0.75, m.Result(), 1e-9)
	assert.Equal(t, "75.00%", PrettyPrint(m, m.Result()))

	m.Reset()
	assert.Equal(t, 0.0, m.Result())
	require.Panics(t, func() { m.Update([]float32{0, 1, 0}, []float32{0.5, 0.5}) })
}

func TestBinaryAccuracy(t *testing.T) {
	m := FromName("binary_accuracy")
	m.Update([]float32{1, 0, 1, 0}, []float32{0.9, 0.1, 0.4, 0.6})
	assert.InDelta(t, 0.5, m.Result(), 1e-9)
}

func TestMeanLoss(t *testing.T) {
	m := FromName("mse")
	require.Equal(t, "mse", m.ShortName())
	require.Equal(t, LossMetricType, m.MetricType())
	m.Update([]float32{1}, []float32{3})
	m.Update([]float32{1}, []float32{1})
	assert.InDelta(t, 2.0, m.Result(), 1e-9)
	assert.Equal(t, "2.0000", PrettyPrint(m, m.Result()))
}

func TestUnknownMetric(t *testing.T) {
	require.Panics(t, func() { _ = FromName("f1") })
}
