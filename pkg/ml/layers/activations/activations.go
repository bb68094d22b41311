// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package activations enumerates the activation functions a layer can apply to its output,
// and implements them on feature vectors.
//
// Use FromName to convert an activation name (string) to its type, and Apply to evaluate it.
package activations

import (
	"math"

	"github.com/gomlx/exceptions"
)

// Type is an enum for the supported activation functions.
//
// It is converted to snake-format strings (e.g.: TypeRelu -> "relu"), and can be converted
// from string by using TypeString or FromName.
type Type int

const (
	TypeNone Type = iota
	TypeRelu
	TypeSigmoid
	TypeTanh

	// TypeSoftmax normalizes the whole feature vector into a probability distribution.
	// Unlike the others, it is not an element-wise activation.
	TypeSoftmax
)

//go:generate go tool enumer -type Type -trimprefix=Type -transform=snake -output=gen_type_enumer.go activations.go

// FromName converts the name of an activation to its type.
// It panics with a helpful message if name is invalid.
//
// An empty string is converted to TypeNone, and so is "linear" (the Keras name for no activation).
func FromName(activationName string) Type {
	if activationName == "" || activationName == "linear" {
		return TypeNone
	}
	activation, err := TypeString(activationName)
	if err != nil {
		exceptions.Panicf("invalid activation name %q: options are %v", activationName, TypeValues())
	}
	return activation
}

// IsElementWise returns whether the activation is applied to each element independently.
func (t Type) IsElementWise() bool {
	return t != TypeSoftmax
}

// Apply the given activation in-place to the feature vector x.
// The TypeNone activation is a no-op.
func Apply(activation Type, x []float32) {
	switch activation {
	case TypeNone:
		return
	case TypeRelu:
		Relu(x)
	case TypeSigmoid:
		Sigmoid(x)
	case TypeTanh:
		Tanh(x)
	case TypeSoftmax:
		Softmax(x)
	default:
		exceptions.Panicf("Apply got invalid activation value %q: options are %v", activation, TypeValues())
	}
}

// Relu returns max(x, 0) for each element, in-place.
func Relu(x []float32) {
	for ii, v := range x {
		if v < 0 {
			x[ii] = 0
		}
	}
}

// Sigmoid returns 1/(1+exp(-x)) for each element, in-place.
func Sigmoid(x []float32) {
	for ii, v := range x {
		x[ii] = float32(1.0 / (1.0 + math.Exp(-float64(v))))
	}
}

// Tanh returns the hyperbolic tangent of each element, in-place.
func Tanh(x []float32) {
	for ii, v := range x {
		x[ii] = float32(math.Tanh(float64(v)))
	}
}

// Softmax normalizes x in-place to exp(x_i)/sum(exp(x)).
// The max value is subtracted first, for numerical stability.
func Softmax(x []float32) {
	if len(x) == 0 {
		return
	}
	maxValue := x[0]
	for _, v := range x[1:] {
		maxValue = max(maxValue, v)
	}
	var sum float64
	for ii, v := range x {
		e := math.Exp(float64(v - maxValue))
		x[ii] = float32(e)
		sum += e
	}
	for ii := range x {
		x[ii] = float32(float64(x[ii]) / sum)
	}
}
