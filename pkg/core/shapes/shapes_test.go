// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package shapes

import (
	"testing"

	"github.com/gomlx/onnxfixtures/pkg/core/dtypes"
	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	invalidShape := Invalid()
	require.False(t, invalidShape.Ok())

	shape0 := Make(dtypes.Float64)
	require.True(t, shape0.Ok())
	require.True(t, shape0.IsScalar())
	require.Equal(t, 0, shape0.Rank())
	require.Equal(t, 1, shape0.Size())
	require.Equal(t, 8, int(shape0.Memory()))

	shape1 := Make(dtypes.Float32, 4, 3, 2)
	require.False(t, shape1.IsScalar())
	require.False(t, shape1.IsDynamic())
	require.Equal(t, 3, shape1.Rank())
	require.Equal(t, 4*3*2, shape1.Size())
	require.Equal(t, 4*4*3*2, int(shape1.Memory()))
	require.Equal(t, "(Float32)[4 3 2]", shape1.String())

	require.Panics(t, func() { _ = Make(dtypes.Float32, 0) })
	require.Panics(t, func() { _ = Make(dtypes.Float32, -2) })
}

func TestDim(t *testing.T) {
	shape := Make(dtypes.Float32, 4, 3, 2)
	require.Equal(t, 4, shape.Dim(0))
	require.Equal(t, 2, shape.Dim(2))
	require.Equal(t, 4, shape.Dim(-3))
	require.Equal(t, 2, shape.Dim(-1))
	require.Panics(t, func() { _ = shape.Dim(3) })
	require.Panics(t, func() { _ = shape.Dim(-4) })
}

func TestWithBatch(t *testing.T) {
	shape := WithBatch(dtypes.Float32, 7, 8, 9)
	require.True(t, shape.IsDynamic())
	require.Equal(t, []int{DynamicDim, 7, 8, 9}, shape.Dimensions)
	require.Equal(t, "(Float32)[? 7 8 9]", shape.String())
	require.Equal(t, 504, shape.SizeWithoutBatch())
	require.Panics(t, func() { _ = shape.Size() })

	concrete := Make(dtypes.Float32, 3, 7, 8, 9)
	require.True(t, shape.Compatible(concrete))
	require.False(t, shape.Equal(concrete))
	require.False(t, shape.Compatible(Make(dtypes.Float32, 3, 7, 8, 10)))
	require.False(t, shape.Compatible(Make(dtypes.Float16, 3, 7, 8, 9)))
}

func TestStrides(t *testing.T) {
	require.Equal(t, []int{6, 2, 1}, Make(dtypes.Float32, 4, 3, 2).Strides())
	require.Nil(t, Make(dtypes.Float32).Strides())
}

func TestAsserts(t *testing.T) {
	shape := WithBatch(dtypes.Float32, 504)
	require.NotPanics(t, func() { AssertRank(shape, 2) })
	require.NotPanics(t, func() { AssertDims(shape, -1, 504) })
	require.Panics(t, func() { AssertDims(shape, -1, 503) })
	require.Panics(t, func() { AssertRank(shape, 3) })
}
