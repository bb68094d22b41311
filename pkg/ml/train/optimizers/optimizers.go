// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package optimizers holds the configuration of the optimizers a model can be compiled with.
//
// Models here are compiled but never trained, so an optimizer is only its name and hyperparameters:
// they are shown by the model summary and recorded in the exported model metadata.
package optimizers

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	"golang.org/x/exp/maps"
)

// Interface implemented by optimizer configurations.
type Interface interface {
	// Name of the optimizer, e.g.: "adam".
	Name() string

	// Hyperparameters returns the configured values, keyed by their Keras names (e.g.: "learning_rate").
	Hyperparameters() map[string]any
}

var (
	// KnownOptimizers is a map of known optimizers by name to their default constructors.
	KnownOptimizers = map[string]func() Interface{
		"sgd":     func() Interface { return StochasticGradientDescent().Done() },
		"adam":    func() Interface { return Adam().Done() },
		"adamax":  func() Interface { return Adam().Adamax().Done() },
		"adamw":   func() Interface { return Adam().WeightDecay(0.004).Done() },
		"rmsprop": func() Interface { return RMSProp().Done() },
	}

	// ParamLearningRate is the hyperparameter name for the learning rate, used by all optimizers.
	ParamLearningRate = "learning_rate"
)

// FromName returns a new optimizer with default hyperparameters, given its name.
// It panics with the list of valid names if name is unknown.
func FromName(name string) Interface {
	fn, found := KnownOptimizers[strings.ToLower(name)]
	if !found {
		names := maps.Keys(KnownOptimizers)
		slices.Sort(names)
		exceptions.Panicf("unknown optimizer %q: valid values are %v", name, names)
	}
	return fn()
}

// Describe returns the optimizer name followed by its hyperparameters sorted by name, e.g.:
// "adam(beta_1=0.9, beta_2=0.999, epsilon=1e-07, learning_rate=0.001)".
func Describe(opt Interface) string {
	params := opt.Hyperparameters()
	parts := make([]string, 0, len(params))
	keys := maps.Keys(params)
	slices.Sort(keys)
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", key, params[key]))
	}
	return fmt.Sprintf("%s(%s)", opt.Name(), strings.Join(parts, ", "))
}

// SGDConfig implements a Stochastic Gradient Descent optimizer.
type SGDConfig struct {
	learningRate float64
	momentum     float64
	nesterov     bool
}

// SGDDefaultLearningRate is the default learning rate used by the StochasticGradientDescent optimizer.
const SGDDefaultLearningRate = 0.01

// StochasticGradientDescent creates an optimizer that performs SGD, with no momentum by default.
func StochasticGradientDescent() *SGDConfig {
	return &SGDConfig{learningRate: SGDDefaultLearningRate}
}

// WithLearningRate sets the learning rate. The default value is SGDDefaultLearningRate.
//
// It returns itself to allow chaining.
func (sgd *SGDConfig) WithLearningRate(learningRate float64) *SGDConfig {
	if learningRate <= 0 {
		exceptions.Panicf("SGD learning rate must be > 0, got %g", learningRate)
	}
	sgd.learningRate = learningRate
	return sgd
}

// WithMomentum sets the momentum and whether to use Nesterov momentum.
func (sgd *SGDConfig) WithMomentum(momentum float64, nesterov bool) *SGDConfig {
	if momentum < 0 || momentum >= 1 {
		exceptions.Panicf("SGD momentum must be in [0, 1), got %g", momentum)
	}
	sgd.momentum = momentum
	sgd.nesterov = nesterov
	return sgd
}

// Done returns an optimizer.Interface.
// It's a no-op since SGDConfig itself implements optimizer.Interface, but it keeps it consistent with
// the builder pattern.
func (sgd *SGDConfig) Done() Interface {
	return sgd
}

// Name implements Interface.
func (sgd *SGDConfig) Name() string { return "sgd" }

// Hyperparameters implements Interface.
func (sgd *SGDConfig) Hyperparameters() map[string]any {
	return map[string]any{
		ParamLearningRate: sgd.learningRate,
		"momentum":        sgd.momentum,
		"nesterov":        sgd.nesterov,
	}
}
