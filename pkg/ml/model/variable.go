// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package model

import (
	"fmt"
	"math/rand/v2"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/onnxfixtures/pkg/core/dtypes"
	"github.com/gomlx/onnxfixtures/pkg/core/shapes"
	"github.com/gomlx/onnxfixtures/pkg/ml/initializer"
)

// Variable holds one weight of a model: a float32 array with a static shape.
//
// Its values are set by its initializer when the model is built (see Builder.Done), or explicitly with SetValue.
type Variable struct {
	name        string
	shape       shapes.Shape
	trainable   bool
	initializer initializer.Initializer
	value       []float32
}

// NewVariable creates a trainable variable, whose name is usually "<layer name>/<variable name>",
// e.g.: "dense/kernel".
//
// The shape must be static and float32. If initializerFn is nil, the variable is initialized with zeros.
func NewVariable(name string, shape shapes.Shape, initializerFn initializer.Initializer) *Variable {
	if shape.DType != dtypes.Float32 {
		exceptions.Panicf("model.NewVariable(%q): only Float32 variables are supported, got shape %s", name, shape)
	}
	if shape.IsDynamic() {
		exceptions.Panicf("model.NewVariable(%q): variables can't have dynamic axes, got shape %s", name, shape)
	}
	if initializerFn == nil {
		initializerFn = initializer.Zero
	}
	return &Variable{
		name:        name,
		shape:       shape,
		trainable:   true,
		initializer: initializerFn,
	}
}

// Name of the variable.
func (v *Variable) Name() string { return v.name }

// Shape of the variable.
func (v *Variable) Shape() shapes.Shape { return v.shape }

// Trainable returns whether the variable would be updated by training.
func (v *Variable) Trainable() bool { return v.trainable }

// SetTrainable sets whether the variable is trainable. It returns the variable itself, to allow chaining.
func (v *Variable) SetTrainable(trainable bool) *Variable {
	v.trainable = trainable
	return v
}

// NumParams returns the number of scalar values held by the variable.
func (v *Variable) NumParams() int { return v.shape.Size() }

// IsInitialized returns whether the variable has a value.
func (v *Variable) IsInitialized() bool { return v.value != nil }

// Initialize sets the variable value using its initializer and the given random number generator.
func (v *Variable) Initialize(rng *rand.Rand) {
	v.SetValue(v.initializer(rng, v.shape))
}

// Value returns the flat (row-major) values of the variable, or nil if not initialized.
// The returned slice is owned by the variable, and it shouldn't be changed.
func (v *Variable) Value() []float32 { return v.value }

// SetValue sets the values of the variable. It panics if the number of values doesn't match the shape.
func (v *Variable) SetValue(value []float32) {
	if len(value) != v.shape.Size() {
		exceptions.Panicf("Variable(%q).SetValue(): shape %s requires %d values, got %d",
			v.name, v.shape, v.shape.Size(), len(value))
	}
	v.value = value
}

// String implements fmt.Stringer.
func (v *Variable) String() string {
	return fmt.Sprintf("%s: %s", v.name, v.shape)
}
