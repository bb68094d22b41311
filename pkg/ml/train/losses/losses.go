// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package losses enumerates the loss functions a model can be compiled with, and implements them
// for single examples and for batches.
//
// Compiling a model only records the loss: nothing here is differentiated. The Go implementations are
// used to score the outputs of an exported model, e.g. in tests that execute it.
package losses

import (
	"math"
	"slices"
	"strings"
	"unicode"

	"github.com/gomlx/exceptions"
	"golang.org/x/exp/maps"
)

// Type is an enum for the supported loss functions.
//
// It is converted to snake-format strings (e.g.: TypeCategoricalCrossentropy -> "categorical_crossentropy"),
// matching the names Keras uses.
type Type int

const (
	// TypeCategoricalCrossentropy expects one-hot (or probability) labels and probabilities as predictions.
	TypeCategoricalCrossentropy Type = iota

	// TypeSparseCategoricalCrossentropy expects a single label with the class index, and probabilities as
	// predictions.
	TypeSparseCategoricalCrossentropy

	// TypeBinaryCrossentropy expects labels in {0, 1} and probabilities for each element.
	TypeBinaryCrossentropy

	TypeMeanSquaredError
	TypeMeanAbsoluteError
)

//go:generate go tool enumer -type Type -trimprefix=Type -transform=snake -output=gen_type_enumer.go losses.go

// Epsilon used to clip probabilities before taking their logarithm.
const Epsilon = 1e-7

// aliases accepted by FromName, on top of the enum names.
var aliases = map[string]Type{
	"mse":                       TypeMeanSquaredError,
	"mae":                       TypeMeanAbsoluteError,
	"categorical_cross_entropy": TypeCategoricalCrossentropy,
	"crossentropy":              TypeCategoricalCrossentropy,
}

// FromName converts the name of a loss to its type.
// Keras class names (e.g.: "CategoricalCrossentropy") are also accepted.
// It panics with a helpful message if name is invalid.
func FromName(name string) Type {
	name = snakeCase(name)
	if t, found := aliases[name]; found {
		return t
	}
	t, err := TypeString(name)
	if err != nil {
		aliasNames := maps.Keys(aliases)
		slices.Sort(aliasNames)
		exceptions.Panicf("unknown loss %q: valid values are %v or one of the aliases %v",
			name, TypeStrings(), aliasNames)
	}
	return t
}

// snakeCase converts "MeanSquaredError" to "mean_squared_error". Names already in snake case are returned as is.
func snakeCase(name string) string {
	var sb strings.Builder
	for ii, r := range name {
		if unicode.IsUpper(r) {
			if ii > 0 && name[ii-1] != '_' {
				sb.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Compute evaluates the loss for one example.
//
// For TypeSparseCategoricalCrossentropy labels must have one element, the class index.
// For all others labels and predictions must have the same length.
func Compute(lossType Type, labels, predictions []float32) float32 {
	if lossType != TypeSparseCategoricalCrossentropy && len(labels) != len(predictions) {
		exceptions.Panicf("losses.Compute(%s): labels (len=%d) and predictions (len=%d) must have the same length",
			lossType, len(labels), len(predictions))
	}
	if len(predictions) == 0 {
		exceptions.Panicf("losses.Compute(%s): empty predictions", lossType)
	}
	switch lossType {
	case TypeCategoricalCrossentropy:
		return categoricalCrossentropy(labels, predictions)
	case TypeSparseCategoricalCrossentropy:
		if len(labels) != 1 {
			exceptions.Panicf("losses.Compute(%s): labels must hold exactly one class index, got %d values",
				lossType, len(labels))
		}
		classIdx := int(labels[0])
		if classIdx < 0 || classIdx >= len(predictions) || float32(classIdx) != labels[0] {
			exceptions.Panicf("losses.Compute(%s): invalid class index %g for %d classes",
				lossType, labels[0], len(predictions))
		}
		return float32(-math.Log(clip(float64(predictions[classIdx]) / sum(predictions))))
	case TypeBinaryCrossentropy:
		var total float64
		for ii, pred := range predictions {
			p := clip(float64(pred))
			y := float64(labels[ii])
			total += -(y*math.Log(p) + (1-y)*math.Log(1-p))
		}
		return float32(total / float64(len(predictions)))
	case TypeMeanSquaredError:
		var total float64
		for ii, p := range predictions {
			diff := float64(labels[ii] - p)
			total += diff * diff
		}
		return float32(total / float64(len(predictions)))
	case TypeMeanAbsoluteError:
		var total float64
		for ii, p := range predictions {
			total += math.Abs(float64(labels[ii] - p))
		}
		return float32(total / float64(len(predictions)))
	default:
		exceptions.Panicf("losses.Compute: invalid loss type %d", int(lossType))
	}
	return 0
}

// Mean evaluates the loss for a batch of examples and returns the mean.
func Mean(lossType Type, labels, predictions [][]float32) float32 {
	if len(labels) != len(predictions) {
		exceptions.Panicf("losses.Mean(%s): got %d labels for %d predictions", lossType, len(labels), len(predictions))
	}
	if len(labels) == 0 {
		return 0
	}
	var total float64
	for ii := range labels {
		total += float64(Compute(lossType, labels[ii], predictions[ii]))
	}
	return float32(total / float64(len(labels)))
}

// categoricalCrossentropy normalizes the predictions to sum 1 before clipping, as Keras does.
func categoricalCrossentropy(labels, predictions []float32) float32 {
	norm := sum(predictions)
	var total float64
	for ii, p := range predictions {
		total -= float64(labels[ii]) * math.Log(clip(float64(p)/norm))
	}
	return float32(total)
}

func sum(values []float32) float64 {
	var total float64
	for _, v := range values {
		total += float64(v)
	}
	if total == 0 {
		return 1
	}
	return total
}

func clip(p float64) float64 {
	return min(max(p, Epsilon), 1-Epsilon)
}
