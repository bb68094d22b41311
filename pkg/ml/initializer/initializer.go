// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package initializer implements the functions that generate the initial values of the variables
// (weights) of a model.
//
// No training happens in this module, so the initial values are also the exported values.
package initializer

import (
	"math"
	"math/rand/v2"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/onnxfixtures/pkg/core/shapes"
)

// Initializer returns the flat (row-major) initial values for a variable of the given shape.
// The shape must be static (no dynamic axes).
type Initializer func(rng *rand.Rand, shape shapes.Shape) []float32

var (
	// Zero initializes variables with zero.
	Zero Initializer = func(_ *rand.Rand, shape shapes.Shape) []float32 {
		return make([]float32, shape.Size())
	}

	// One initializes variables with one.
	One Initializer = func(rng *rand.Rand, shape shapes.Shape) []float32 {
		return Constant(1)(rng, shape)
	}
)

// Constant returns an initializer that fills the variable with value.
func Constant(value float32) Initializer {
	return func(_ *rand.Rand, shape shapes.Shape) []float32 {
		values := make([]float32, shape.Size())
		for ii := range values {
			values[ii] = value
		}
		return values
	}
}

// Normal returns an initializer that generates random normal values with the given standard deviation
// and mean set to 0.
func Normal(stddev float64) Initializer {
	return func(rng *rand.Rand, shape shapes.Shape) []float32 {
		values := make([]float32, shape.Size())
		for ii := range values {
			values[ii] = float32(rng.NormFloat64() * stddev)
		}
		return values
	}
}

// Uniform returns an initializer that generates random uniform values from [min, max).
func Uniform(minValue, maxValue float64) Initializer {
	if maxValue < minValue {
		exceptions.Panicf("initializer.Uniform(%g, %g): minValue must be <= maxValue", minValue, maxValue)
	}
	return func(rng *rand.Rand, shape shapes.Shape) []float32 {
		values := make([]float32, shape.Size())
		for ii := range values {
			values[ii] = float32(minValue + rng.Float64()*(maxValue-minValue))
		}
		return values
	}
}

// GlorotUniform returns a Glorot uniform initializer, also called Xavier uniform initializer.
// It is the default for the kernel of dense layers.
//
// It draws samples from a uniform distribution within `[-limit, limit]`, where
// `limit = sqrt(6 / (fan_in + fan_out))` (`fan_in` is the number of input units in
// the weight tensor and fan_out is the number of output units).
//
// It initializes biases (anything with rank <= 1) to zeros.
func GlorotUniform(rng *rand.Rand, shape shapes.Shape) []float32 {
	if shape.Rank() <= 1 {
		// Zero-bias.
		return Zero(rng, shape)
	}
	fanIn, fanOut := computeFanInFanOut(shape)
	scale := max(1.0, float64(fanIn+fanOut))
	limit := math.Sqrt(6.0 / scale)
	return Uniform(-limit, limit)(rng, shape)
}

// He returns values drawn from a normal distribution with stddev sqrt(2/fan_in), which preserves
// a variance of 1 across layers with Relu activations.
//
// It initializes biases (anything with rank <= 1) to zeros.
func He(rng *rand.Rand, shape shapes.Shape) []float32 {
	if shape.Rank() <= 1 {
		return Zero(rng, shape)
	}
	fanIn, _ := computeFanInFanOut(shape)
	scale := max(1.0, float64(fanIn))
	return Normal(math.Sqrt(2.0/scale))(rng, shape)
}

// computeFanInFanOut of a variable expected to be the parameters of a dense layer.
func computeFanInFanOut(shape shapes.Shape) (fanIn, fanOut int) {
	rank := shape.Rank()
	switch rank {
	case 0: // Scalar.
		fanIn = 1
		fanOut = fanIn
	case 1: // 1D shape, like a bias term in a dense layer.
		fanIn = 0
		fanOut = fanIn
	case 2: // 2D shape, weights of a dense layer.
		fanIn = shape.Dimensions[0]
		fanOut = shape.Dimensions[1]
	default:
		receptiveFieldSize := 1
		for _, dim := range shape.Dimensions[:rank-2] {
			receptiveFieldSize *= dim
		}
		fanIn = shape.Dimensions[rank-2] * receptiveFieldSize
		fanOut = shape.Dimensions[rank-1] * receptiveFieldSize
	}
	return
}

// NewRNG returns a random number generator seeded with seed. A seed of 0 means
// a non-deterministic seed.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}
