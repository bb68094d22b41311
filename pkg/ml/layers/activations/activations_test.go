// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package activations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromName(t *testing.T) {
	require.Equal(t, TypeRelu, FromName("relu"))
	require.Equal(t, TypeSoftmax, FromName("Softmax"))
	require.Equal(t, TypeNone, FromName(""))
	require.Equal(t, TypeNone, FromName("linear"))
	require.Panics(t, func() { _ = FromName("swish_42") })
	require.Equal(t, "softmax", TypeSoftmax.String())
	require.Len(t, TypeValues(), 5)
}

func TestApply(t *testing.T) {
	x := []float32{-1, 0, 2}
	Apply(TypeRelu, x)
	require.Equal(t, []float32{0, 0, 2}, x)

	x = []float32{0}
	Apply(TypeSigmoid, x)
	assert.InDelta(t, 0.5, x[0], 1e-6)

	x = []float32{0, 100}
	Apply(TypeTanh, x)
	assert.InDelta(t, 0.0, x[0], 1e-6)
	assert.InDelta(t, 1.0, x[1], 1e-6)

	x = []float32{-1, 3}
	Apply(TypeNone, x)
	require.Equal(t, []float32{-1, 3}, x)

	require.Panics(t, func() { Apply(Type(42), x) })
}

func TestSoftmax(t *testing.T) {
	x := []float32{1000, 1000}
	Softmax(x)
	assert.InDelta(t, 0.5, x[0], 1e-6)
	assert.InDelta(t, 0.5, x[1], 1e-6)

	x = []float32{1, 2, 3}
	Softmax(x)
	var sum float32
	for _, v := range x {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-5)
	assert.Less(t, x[0], x[1])
	assert.Less(t, x[1], x[2])
	assert.False(t, TypeSoftmax.IsElementWise())
	assert.True(t, TypeRelu.IsElementWise())

	Softmax(nil)
}
