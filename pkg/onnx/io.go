// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package onnx

import (
	"os"

	"github.com/gomlx/onnxfixtures/pkg/onnx/protos"
	"github.com/gomlx/onnxfixtures/pkg/support/fsutil"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
	"k8s.io/klog/v2"
)

// Parse decodes an ONNX model from its binary (protobuf) contents.
func Parse(contents []byte) (*protos.ModelProto, error) {
	m := &protos.ModelProto{}
	if err := proto.Unmarshal(contents, m); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal ONNX ModelProto")
	}
	if m.GetGraph() == nil {
		return nil, errors.New("ONNX model has no graph")
	}
	return m, nil
}

// Load reads and parses an ONNX model from a file.
// A leading "~" in filePath is replaced by the home directory.
func Load(filePath string) (*protos.ModelProto, error) {
	filePath, err := fsutil.ExpandHome(filePath)
	if err != nil {
		return nil, err
	}
	contents, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read ONNX model from %q", filePath)
	}
	m, err := Parse(contents)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to parse ONNX model from %q", filePath)
	}
	return m, nil
}

// Marshal serializes the model. The output is deterministic: the same model always produces the same bytes.
func Marshal(m *protos.ModelProto) ([]byte, error) {
	contents, err := proto.MarshalOptions{Deterministic: true}.Marshal(m)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal ONNX ModelProto")
	}
	return contents, nil
}

// Save writes the model to filePath, overwriting any existing file.
func Save(m *protos.ModelProto, filePath string) error {
	contents, err := Marshal(m)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filePath, contents, 0644); err != nil {
		return errors.Wrapf(err, "failed to write ONNX model to %q", filePath)
	}
	klog.V(1).Infof("saved ONNX model to %q (%d bytes)", filePath, len(contents))
	return nil
}
