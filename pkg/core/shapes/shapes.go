// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package shapes defines Shape, the DType and dimensions of a tensor or of the output of a layer.
//
// A dimension may be DynamicDim, which means its size is only known when the model is executed.
// Models built with this module use it for the leading batch axis: the input declared with
// shape (7, 8, 9) has shape `(Float32)[? 7 8 9]`.
//
// ## Glossary
//
//   - Rank: number of axes (dimensions) of a tensor.
//   - Axis: the index of a dimension.
//   - Dimension: the size of a tensor in one of its axes.
//   - Batch axis: the leading axis, usually dynamic, indexing independent examples.
package shapes

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/onnxfixtures/pkg/core/dtypes"
)

// DynamicDim is the value of a dimension whose size is only known at execution time.
const DynamicDim = -1

// Shape represents the shape of a tensor or the expected shape of the output of a layer.
//
// Use Make to create a new shape.
type Shape struct {
	DType      dtypes.DType
	Dimensions []int
}

// HasShape is implemented by anything with a shape: Shape itself, model nodes, runtime tensors.
type HasShape interface {
	Shape() Shape
}

// Make returns a Shape structure filled with the values given.
// Dimensions must be > 0 or DynamicDim.
func Make(dtype dtypes.DType, dimensions ...int) Shape {
	s := Shape{Dimensions: slices.Clone(dimensions), DType: dtype}
	for _, dim := range dimensions {
		if dim <= 0 && dim != DynamicDim {
			exceptions.Panicf("shapes.Make(%s): cannot create a shape with an axis with dimension <= 0", s)
		}
	}
	return s
}

// WithBatch returns a shape with a leading dynamic batch axis followed by the given dimensions.
func WithBatch(dtype dtypes.DType, dimensions ...int) Shape {
	return Make(dtype, append([]int{DynamicDim}, dimensions...)...)
}

// Invalid returns an invalid shape.
func Invalid() Shape {
	return Shape{DType: dtypes.InvalidDType}
}

// Ok returns whether this is a valid Shape. A "zero" shape, that is just instantiating it with Shape{} will be invalid.
func (s Shape) Ok() bool { return s.DType != dtypes.InvalidDType }

// Rank of the shape, that is, the number of dimensions.
func (s Shape) Rank() int { return len(s.Dimensions) }

// IsScalar returns whether the shape represents a scalar, that is there are no dimensions (rank==0).
func (s Shape) IsScalar() bool { return s.Ok() && s.Rank() == 0 }

// Dim returns the dimension of the given axis. axis can take negative numbers, in which
// case it counts as starting from the end -- so axis=-1 refers to the last axis.
// Like with a slice indexing, it panics for an out-of-bound axis.
func (s Shape) Dim(axis int) int {
	adjustedAxis := axis
	if adjustedAxis < 0 {
		adjustedAxis += s.Rank()
	}
	if adjustedAxis < 0 || adjustedAxis >= s.Rank() {
		exceptions.Panicf("Shape.Dim(%d) out-of-bounds for rank %d (shape=%s)", axis, s.Rank(), s)
	}
	return s.Dimensions[adjustedAxis]
}

// Shape returns a shallow copy of itself. It implements the HasShape interface.
func (s Shape) Shape() Shape { return s }

// IsDynamic returns whether any of the axes has a DynamicDim.
func (s Shape) IsDynamic() bool {
	return slices.Contains(s.Dimensions, DynamicDim)
}

// String implements stringer, pretty-prints the shape. Dynamic axes are printed as "?".
func (s Shape) String() string {
	if s.Rank() == 0 {
		return fmt.Sprintf("(%s)", s.DType)
	}
	return fmt.Sprintf("(%s)[%s]", s.DType, s.DimsString())
}

// DimsString pretty-prints only the dimensions, separated by spaces. Dynamic axes are printed as "?".
func (s Shape) DimsString() string {
	parts := make([]string, len(s.Dimensions))
	for ii, dim := range s.Dimensions {
		if dim == DynamicDim {
			parts[ii] = "?"
		} else {
			parts[ii] = strconv.Itoa(dim)
		}
	}
	return strings.Join(parts, " ")
}

// Size returns the number of elements of DType needed for this shape. It's the product of all dimensions.
// It panics if the shape has a dynamic axis, see SizeWithoutBatch.
func (s Shape) Size() (size int) {
	size = 1
	for _, d := range s.Dimensions {
		if d == DynamicDim {
			exceptions.Panicf("Shape.Size() of a shape with dynamic axes (shape=%s)", s)
		}
		size *= d
	}
	return
}

// SizeWithoutBatch returns the number of elements of one example: the product of all dimensions but the first.
// It panics if the shape is a scalar or if any axis other than the first is dynamic.
func (s Shape) SizeWithoutBatch() int {
	if s.Rank() == 0 {
		exceptions.Panicf("Shape.SizeWithoutBatch() of a scalar (shape=%s)", s)
	}
	return Shape{DType: s.DType, Dimensions: s.Dimensions[1:]}.Size()
}

// Memory returns the memory used to store an array of the given shape, the same as the size in bytes.
func (s Shape) Memory() uintptr {
	return s.DType.Memory() * uintptr(s.Size())
}

// Equal compares two shapes for equality: dtype and dimensions are compared.
// Dynamic axes are only equal to other dynamic axes.
func (s Shape) Equal(s2 Shape) bool {
	return s.DType == s2.DType && slices.Equal(s.Dimensions, s2.Dimensions)
}

// Compatible returns whether the concrete shape s2 can be fed where s is expected:
// same dtype and rank, and every static axis of s matches.
func (s Shape) Compatible(s2 Shape) bool {
	if s.DType != s2.DType || s.Rank() != s2.Rank() {
		return false
	}
	for axis, dim := range s.Dimensions {
		if dim != DynamicDim && dim != s2.Dimensions[axis] {
			return false
		}
	}
	return true
}

// Clone returns a new deep copy of the shape.
func (s Shape) Clone() Shape {
	return Shape{DType: s.DType, Dimensions: slices.Clone(s.Dimensions)}
}

// Strides returns the strides for each axis of the shape, assuming a "row-major" layout.
// Notice the strides are **not in bytes**, but in indices.
func (s Shape) Strides() (strides []int) {
	rank := s.Rank()
	if rank == 0 {
		return
	}
	strides = make([]int, rank)
	currentStride := 1
	for axis := rank - 1; axis >= 0; axis-- {
		strides[axis] = currentStride
		currentStride *= s.Dimensions[axis]
	}
	return
}

// AssertRank checks that the shape of the given object has the given rank, and panics otherwise.
func AssertRank(shaped HasShape, rank int) {
	if shaped.Shape().Rank() != rank {
		exceptions.Panicf("assertion failed: rank %d required, got shape %s", rank, shaped.Shape())
	}
}

// AssertDims checks that the shape of the given object has the given dimensions. A value of -1 in
// dimensions means the axis is unchecked. It panics on mismatch.
func AssertDims(shaped HasShape, dimensions ...int) {
	shape := shaped.Shape()
	if shape.Rank() != len(dimensions) {
		exceptions.Panicf("assertion failed: dimensions %v required, got shape %s", dimensions, shape)
	}
	for axis, dim := range dimensions {
		if dim != -1 && shape.Dimensions[axis] != dim {
			exceptions.Panicf("assertion failed: dimensions %v required, got shape %s", dimensions, shape)
		}
	}
}
