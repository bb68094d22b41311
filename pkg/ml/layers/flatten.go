// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package layers

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/onnxfixtures/pkg/core/shapes"
	"github.com/gomlx/onnxfixtures/pkg/ml/model"
)

// FlattenLayer reshapes each example to a vector: `[batch, d1, ..., dk] -> [batch, d1*...*dk]`.
type FlattenLayer struct {
	name string
	size int
}

// Name implements model.Layer.
func (l *FlattenLayer) Name() string { return l.name }

// Type implements model.Layer.
func (l *FlattenLayer) Type() string { return "Flatten" }

// Variables implements model.Layer.
func (l *FlattenLayer) Variables() []*model.Variable { return nil }

// Size of the flattened example.
func (l *FlattenLayer) Size() int { return l.size }

// Flatten reshapes x, keeping the leading batch axis and collapsing all the others.
// It panics if x has rank < 2, or if any non-batch axis is dynamic.
func Flatten(x *model.Node) *model.Node {
	xShape := x.Shape()
	if xShape.Rank() < 2 {
		exceptions.Panicf("layers.Flatten: input must have a batch axis and at least one more axis, got %s", xShape)
	}
	for _, dim := range xShape.Dimensions[1:] {
		if dim == shapes.DynamicDim {
			exceptions.Panicf("layers.Flatten: only the batch axis can be dynamic, got %s", xShape)
		}
	}
	size := xShape.SizeWithoutBatch()
	layer := &FlattenLayer{
		name: x.Graph().UniqueName("flatten"),
		size: size,
	}
	return model.NewNode(layer, shapes.Make(xShape.DType, xShape.Dim(0), size), x)
}
