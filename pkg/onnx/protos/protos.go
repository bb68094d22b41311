// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package protos holds the Go code generated by protoc-gen-go from the ONNX protobuf definitions in onnx-ml.proto.
//
// The proto package is renamed to "onnxfixtures", so the messages don't conflict with other copies of the ONNX
// protos linked in the same binary. Names are not part of the wire format, so the files are still standard ONNX.
package protos

//go:generate protoc --proto_path=../../.. --go_out=../../.. --go_opt=paths=source_relative --go_opt=Mpkg/onnx/protos/onnx-ml.proto=github.com/gomlx/onnxfixtures/pkg/onnx/protos pkg/onnx/protos/onnx-ml.proto
