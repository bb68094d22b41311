// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package onnxtest holds test utilities to check exported ONNX models with an independent reader:
// github.com/gomlx/onnx-gomlx parses them, and executes them on the pure Go backend of GoMLX.
package onnxtest

import (
	"testing"

	"github.com/gomlx/gomlx/backends/simplego"
	. "github.com/gomlx/gomlx/pkg/core/graph" //nolint
	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/gomlx/gomlx/pkg/ml/context"
	"github.com/gomlx/onnx-gomlx/onnx"
	"github.com/gomlx/onnx-gomlx/onnx/parser"
	"github.com/stretchr/testify/require"
)

// Parse parses the ONNX model contents with onnx-gomlx, failing the test on error.
func Parse(t testing.TB, contents []byte) onnx.Model {
	t.Helper()
	model, err := parser.Parse(contents)
	require.NoError(t, err, "onnx-gomlx failed to parse the model")
	return model
}

// Signature returns the names of the inputs and outputs of the model, and their shapes formatted as strings,
// e.g.: "(Float32)[-1 7 8 9]" (dynamic axes are -1).
func Signature(model onnx.Model) (inputs, outputs map[string]string) {
	inputs, outputs = make(map[string]string), make(map[string]string)
	names, shapes := model.Inputs()
	for ii, name := range names {
		inputs[name] = shapes[ii].String()
	}
	names, shapes = model.Outputs()
	for ii, name := range names {
		outputs[name] = shapes[ii].String()
	}
	return
}

// Run executes the ONNX model contents on the pure Go backend, feeding the input named inputName with
// the given values and dimensions. It returns the flat values of each of the model outputs.
func Run(t testing.TB, contents []byte, inputName string, values []float32, dims ...int) [][]float32 {
	t.Helper()
	model := Parse(t, contents)
	defer func() { _ = model.Close() }()
	backend, err := simplego.New("")
	require.NoError(t, err)
	defer backend.Finalize()

	ctx := context.New()
	require.NoError(t, model.VariablesToContext(ctx))
	outputs, err := context.ExecOnceN(backend, ctx, func(ctx *context.Context, x *Node) []*Node {
		return model.CallGraph(ctx, x.Graph(), map[string]*Node{inputName: x})
	}, tensors.FromFlatDataAndDimensions(values, dims...))
	require.NoError(t, err, "failed to execute the model with onnx-gomlx")

	results := make([][]float32, len(outputs))
	for ii, output := range outputs {
		results[ii] = tensors.MustCopyFlatData[float32](output)
	}
	return results
}
