// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package fixtures builds the ONNX test fixtures: small feed-forward classifiers of a 7x8x9 input,
// compiled with a training configuration and exported to ONNX, to be loaded by inference runtimes in tests.
//
// There are two variants, Wide and Narrow, which differ only in the widths of their hidden layers.
package fixtures

import (
	"io"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/onnxfixtures/pkg/ml/export"
	"github.com/gomlx/onnxfixtures/pkg/ml/layers"
	"github.com/gomlx/onnxfixtures/pkg/ml/layers/activations"
	"github.com/gomlx/onnxfixtures/pkg/ml/model"
	"github.com/gomlx/onnxfixtures/pkg/ml/train/losses"
	"github.com/gomlx/onnxfixtures/pkg/ml/train/optimizers"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// DefaultOutputPath is where the fixture commands write the exported model.
const DefaultOutputPath = "./model.onnx"

// Variant describes one fixture model.
type Variant struct {
	// Name of the variant, also used as the model name.
	Name string

	// InputName and InputDims of the model input. The batch axis is implicit.
	InputName string
	InputDims []int

	// HiddenWidths are the units of the hidden Dense layers, in order.
	HiddenWidths     []int
	HiddenActivation activations.Type

	// OutputName is the name of the output layer, and of the exported model output.
	OutputName       string
	OutputUnits      int
	OutputActivation activations.Type
}

var (
	// Wide variant: 1024, 512, 256, 128 hidden units.
	Wide = Variant{
		Name:             "wide",
		InputName:        "input",
		InputDims:        []int{7, 8, 9},
		HiddenWidths:     []int{1024, 512, 256, 128},
		HiddenActivation: activations.TypeRelu,
		OutputName:       "output",
		OutputUnits:      2,
		OutputActivation: activations.TypeSoftmax,
	}

	// Narrow variant: 128, 64, 32, 16 hidden units.
	Narrow = Variant{
		Name:             "narrow",
		InputName:        "input",
		InputDims:        []int{7, 8, 9},
		HiddenWidths:     []int{128, 64, 32, 16},
		HiddenActivation: activations.TypeRelu,
		OutputName:       "output",
		OutputUnits:      2,
		OutputActivation: activations.TypeSoftmax,
	}
)

// Variants returns all the fixture variants.
func Variants() []Variant {
	return []Variant{Wide, Narrow}
}

// ByName returns the variant with the given name (case-insensitive).
func ByName(name string) (Variant, error) {
	for _, v := range Variants() {
		if strings.EqualFold(v.Name, name) {
			return v, nil
		}
	}
	return Variant{}, errors.Errorf("unknown fixture variant %q", name)
}

// NumParams returns the number of parameters of the variant, computed from its layer widths:
// each Dense layer has (in+1)*out parameters.
func (v Variant) NumParams() int {
	in := 1
	for _, dim := range v.InputDims {
		in *= dim
	}
	var total int
	for _, width := range append(slices.Clone(v.HiddenWidths), v.OutputUnits) {
		total += (in + 1) * width
		in = width
	}
	return total
}

// BuildModel declares the variant model and compiles it with categorical cross-entropy loss, the Adam
// optimizer and accuracy metric.
//
// The seed is used to initialize the weights, and 0 means a random seed. It panics on invalid variants.
func BuildModel(v Variant, seed int64) *model.Model {
	x := model.Input(v.InputName, v.InputDims...)
	h := layers.Flatten(x)
	for _, width := range v.HiddenWidths {
		h = layers.Dense(h, width).Activation(v.HiddenActivation).Done()
	}
	y := layers.Dense(h, v.OutputUnits).Activation(v.OutputActivation).Name(v.OutputName).Done()
	m := model.Build(x, y).Name(v.Name).Seed(seed).Done()
	m.Compile().
		Loss(losses.TypeCategoricalCrossentropy).
		Optimizer(optimizers.Adam().Done()).
		Metrics("accuracy").
		Done()
	return m
}

// Run builds and compiles the variant model, writes its summary to w, and exports it to outputPath,
// overwriting any existing file.
func Run(v Variant, outputPath string, w io.Writer) error {
	var m *model.Model
	err := exceptions.TryCatch[error](func() {
		m = BuildModel(v, 0)
	})
	if err != nil {
		return errors.WithMessagef(err, "failed to build fixture %q", v.Name)
	}
	if err = m.PrintSummary(w); err != nil {
		return err
	}
	if err = export.ONNX(m).Save(outputPath); err != nil {
		return err
	}
	klog.V(1).Infof("fixture %q (%d parameters) exported to %q", v.Name, m.NumParams(), outputPath)
	return nil
}
