// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package metrics holds the metrics a model can be compiled with.
//
// Metrics are evaluated in Go, one example at a time, over the outputs of a model -- typically the
// exported model executed with an ONNX runtime.
package metrics

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/onnxfixtures/pkg/ml/train/losses"
	"golang.org/x/exp/maps"
)

// Interface for a Metric.
type Interface interface {
	// Name of the metric.
	Name() string

	// ShortName is a shortened version of the name (preferably a few characters) to display in tables.
	ShortName() string

	// MetricType is a key for metrics that share the same quantity or semantics. E.g.:
	// "accuracy" and "binary_accuracy" both have the "accuracy" metric type.
	MetricType() string

	// Update accumulates the metric for one example.
	Update(labels, predictions []float32)

	// Result returns the metric accumulated since the last Reset. It returns 0 if nothing was accumulated.
	Result() float64

	// Reset the metric's internal counters when starting a new evaluation.
	Reset()
}

const (
	// LossMetricType is the type of loss metrics.
	LossMetricType = "loss"

	// AccuracyMetricType is the type of accuracy metrics.
	AccuracyMetricType = "accuracy"
)

// KnownMetrics maps metric names, as given to Model.Compile, to their constructors.
var KnownMetrics = map[string]func() Interface{
	"accuracy":             func() Interface { return NewAccuracy() },
	"acc":                  func() Interface { return NewAccuracy() },
	"categorical_accuracy": func() Interface { return NewAccuracy() },
	"binary_accuracy":      func() Interface { return NewBinaryAccuracy(0.5) },
	"mse":                  func() Interface { return NewMeanLoss(losses.TypeMeanSquaredError) },
	"mae":                  func() Interface { return NewMeanLoss(losses.TypeMeanAbsoluteError) },
}

// FromName returns a new metric given its name. It panics if the name is unknown.
func FromName(name string) Interface {
	fn, found := KnownMetrics[strings.ToLower(name)]
	if !found {
		names := maps.Keys(KnownMetrics)
		slices.Sort(names)
		exceptions.Panicf("unknown metric %q: valid values are %v", name, names)
	}
	return fn()
}

// PrettyPrint a metric value in a short form: accuracies as percentages, anything else with 4 decimal places.
func PrettyPrint(metric Interface, value float64) string {
	if metric.MetricType() == AccuracyMetricType {
		return fmt.Sprintf("%.2f%%", 100.0*value)
	}
	return fmt.Sprintf("%.4f", value)
}

// meanMetric accumulates a per-example value and returns its mean.
type meanMetric struct {
	name, shortName, metricType string
	exampleFn                   func(labels, predictions []float32) float64
	total                       float64
	count                       int
}

func (m *meanMetric) Name() string       { return m.name }
func (m *meanMetric) ShortName() string  { return m.shortName }
func (m *meanMetric) MetricType() string { return m.metricType }
func (m *meanMetric) Reset()             { m.total, m.count = 0, 0 }

func (m *meanMetric) Update(labels, predictions []float32) {
	m.total += m.exampleFn(labels, predictions)
	m.count++
}

func (m *meanMetric) Result() float64 {
	if m.count == 0 {
		return 0
	}
	return m.total / float64(m.count)
}

// NewAccuracy returns the accuracy of a classifier: the fraction of examples whose highest
// probability class matches the label.
//
// Labels can either be one-hot (same length as predictions), or a single class index.
func NewAccuracy() Interface {
	return &meanMetric{
		name:       "accuracy",
		shortName:  "acc",
		metricType: AccuracyMetricType,
		exampleFn: func(labels, predictions []float32) float64 {
			var labelIdx int
			switch {
			case len(labels) == len(predictions):
				labelIdx = argMax(labels)
			case len(labels) == 1:
				labelIdx = int(labels[0])
			default:
				exceptions.Panicf("accuracy: labels (len=%d) must be one-hot or a class index for predictions (len=%d)",
					len(labels), len(predictions))
			}
			if argMax(predictions) == labelIdx {
				return 1
			}
			return 0
		},
	}
}

// NewBinaryAccuracy returns the fraction of elements whose prediction, thresholded, matches the {0, 1} label.
func NewBinaryAccuracy(threshold float32) Interface {
	return &meanMetric{
		name:       "binary_accuracy",
		shortName:  "bacc",
		metricType: AccuracyMetricType,
		exampleFn: func(labels, predictions []float32) float64 {
			if len(labels) != len(predictions) || len(labels) == 0 {
				exceptions.Panicf("binary_accuracy: labels (len=%d) and predictions (len=%d) must have the same non-zero length",
					len(labels), len(predictions))
			}
			var correct int
			for ii, p := range predictions {
				if (p > threshold) == (labels[ii] > 0.5) {
					correct++
				}
			}
			return float64(correct) / float64(len(labels))
		},
	}
}

// NewMeanLoss returns a metric with the mean of the given loss.
func NewMeanLoss(lossType losses.Type) Interface {
	name := lossType.String()
	return &meanMetric{
		name:       name,
		shortName:  shortName(name),
		metricType: LossMetricType,
		exampleFn: func(labels, predictions []float32) float64 {
			return float64(losses.Compute(lossType, labels, predictions))
		},
	}
}

// shortName takes the first letter of each word of a snake-case name: "mean_squared_error" -> "mse".
func shortName(name string) string {
	var sb strings.Builder
	for _, word := range strings.Split(name, "_") {
		if word != "" {
			sb.WriteByte(word[0])
		}
	}
	return sb.String()
}

func argMax(values []float32) int {
	best := 0
	for ii, v := range values {
		if v > values[best] {
			best = ii
		}
	}
	return best
}
