// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package onnx builds, reads and writes ONNX models.
//
// Models are represented by the protobuf messages generated in the protos sub-package (protos.ModelProto,
// protos.GraphProto, etc.), and this package adds the helpers to create the tensors, attributes and value
// infos of a feed-forward inference graph, and to inspect them back.
package onnx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gomlx/onnxfixtures/pkg/core/dtypes"
	"github.com/gomlx/onnxfixtures/pkg/core/shapes"
	"github.com/gomlx/onnxfixtures/pkg/onnx/protos"
)

// Opset returns the version of the operator set imported by the model for the given domain
// ("" is the default ONNX domain), or 0 if it is not imported.
func Opset(m *protos.ModelProto, domain string) int64 {
	for _, opset := range m.GetOpsetImport() {
		if opset.GetDomain() == domain {
			return opset.GetVersion()
		}
	}
	return 0
}

// Metadata returns the metadata properties of the model as a map.
func Metadata(m *protos.ModelProto) map[string]string {
	metadata := make(map[string]string, len(m.GetMetadataProps()))
	for _, entry := range m.GetMetadataProps() {
		metadata[entry.GetKey()] = entry.GetValue()
	}
	return metadata
}

// Initializer returns the graph initializer with the given name, or nil if not found.
func Initializer(g *protos.GraphProto, name string) *protos.TensorProto {
	for _, t := range g.GetInitializer() {
		if t.GetName() == name {
			return t
		}
	}
	return nil
}

// IntAttribute creates an INT attribute.
func IntAttribute(name string, value int64) *protos.AttributeProto {
	return &protos.AttributeProto{Name: name, Type: protos.AttributeProto_INT, I: value}
}

// GetIntAttribute returns the value of the node's INT attribute with the given name, or defaultValue if it is not set.
func GetIntAttribute(node *protos.NodeProto, name string, defaultValue int64) int64 {
	for _, attr := range node.GetAttribute() {
		if attr.GetName() == name && attr.GetType() == protos.AttributeProto_INT {
			return attr.GetI()
		}
	}
	return defaultValue
}

// NewTensorValueInfo describes a tensor of the given shape. Dynamic axes of the shape are named
// with dynamicParam (e.g.: "batch").
func NewTensorValueInfo(name string, shape shapes.Shape, dynamicParam string) *protos.ValueInfoProto {
	dims := make([]*protos.TensorShapeProto_Dimension, shape.Rank())
	for axis, dim := range shape.Dimensions {
		if dim == shapes.DynamicDim {
			dims[axis] = &protos.TensorShapeProto_Dimension{
				Value: &protos.TensorShapeProto_Dimension_DimParam{DimParam: dynamicParam}}
		} else {
			dims[axis] = &protos.TensorShapeProto_Dimension{
				Value: &protos.TensorShapeProto_Dimension_DimValue{DimValue: int64(dim)}}
		}
	}
	return &protos.ValueInfoProto{
		Name: name,
		Type: &protos.TypeProto{
			Value: &protos.TypeProto_TensorType{
				TensorType: &protos.TypeProto_Tensor{
					ElemType: shape.DType.ONNX(),
					Shape:    &protos.TensorShapeProto{Dim: dims},
				},
			},
		},
	}
}

// ValueInfoShape converts the tensor type of a value info to a shapes.Shape. Symbolic (or unknown)
// dimensions are converted to shapes.DynamicDim. It returns an invalid shape if the value is not a tensor.
func ValueInfoShape(vi *protos.ValueInfoProto) shapes.Shape {
	tensorType := vi.GetType().GetTensorType()
	if tensorType == nil {
		return shapes.Invalid()
	}
	dims := make([]int, len(tensorType.GetShape().GetDim()))
	for axis, dim := range tensorType.GetShape().GetDim() {
		if dim.GetDimParam() != "" || dim.GetDimValue() <= 0 {
			dims[axis] = shapes.DynamicDim
		} else {
			dims[axis] = int(dim.GetDimValue())
		}
	}
	return shapes.Shape{DType: dtypes.FromONNX(tensorType.GetElemType()), Dimensions: dims}
}

// DescribeValueInfo returns a one-line description of a tensor value info, e.g.: "input: (Float32)[batch 7 8 9]".
func DescribeValueInfo(vi *protos.ValueInfoProto) string {
	tensorType := vi.GetType().GetTensorType()
	parts := make([]string, len(tensorType.GetShape().GetDim()))
	for axis, dim := range tensorType.GetShape().GetDim() {
		if param := dim.GetDimParam(); param != "" {
			parts[axis] = param
		} else {
			parts[axis] = strconv.FormatInt(dim.GetDimValue(), 10)
		}
	}
	return fmt.Sprintf("%s: (%s)[%s]", vi.GetName(), dtypes.FromONNX(tensorType.GetElemType()), strings.Join(parts, " "))
}
