// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package model

import (
	"fmt"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/onnxfixtures/pkg/ml/train/losses"
	"github.com/gomlx/onnxfixtures/pkg/ml/train/metrics"
	"github.com/gomlx/onnxfixtures/pkg/ml/train/optimizers"
	"k8s.io/klog/v2"
)

// CompileConfig is the training configuration attached to a model: it is only metadata, no training
// is performed.
type CompileConfig struct {
	Loss      losses.Type
	Optimizer optimizers.Interface
	Metrics   []metrics.Interface
}

// MetricNames returns the names of the configured metrics.
func (c *CompileConfig) MetricNames() []string {
	names := make([]string, len(c.Metrics))
	for ii, metric := range c.Metrics {
		names[ii] = metric.Name()
	}
	return names
}

// String implements fmt.Stringer.
func (c *CompileConfig) String() string {
	return fmt.Sprintf("loss=%s, optimizer=%s, metrics=[%s]",
		c.Loss, optimizers.Describe(c.Optimizer), strings.Join(c.MetricNames(), ", "))
}

// CompileBuilder configures the compilation of a model, see Model.Compile.
type CompileBuilder struct {
	model   *Model
	config  CompileConfig
	lossSet bool
}

// DefaultOptimizer is the name of the optimizer used if none is configured.
const DefaultOptimizer = "rmsprop"

// Compile returns a builder to attach a training configuration to the model.
// The loss must be set. The optimizer defaults to DefaultOptimizer, and there are no metrics by default.
//
// Call CompileBuilder.Done to attach the configuration. Compiling again replaces the previous configuration.
func (m *Model) Compile() *CompileBuilder {
	return &CompileBuilder{model: m}
}

// Loss sets the loss type.
func (b *CompileBuilder) Loss(lossType losses.Type) *CompileBuilder {
	if !lossType.IsAType() {
		exceptions.Panicf("Model.Compile().Loss(%d): invalid loss type", int(lossType))
	}
	b.config.Loss = lossType
	b.lossSet = true
	return b
}

// LossByName sets the loss by its name, see losses.FromName. It panics for unknown names.
func (b *CompileBuilder) LossByName(name string) *CompileBuilder {
	return b.Loss(losses.FromName(name))
}

// Optimizer sets the optimizer configuration.
func (b *CompileBuilder) Optimizer(opt optimizers.Interface) *CompileBuilder {
	b.config.Optimizer = opt
	return b
}

// OptimizerByName sets an optimizer with default hyperparameters, see optimizers.FromName.
// It panics for unknown names.
func (b *CompileBuilder) OptimizerByName(name string) *CompileBuilder {
	return b.Optimizer(optimizers.FromName(name))
}

// Metrics sets the metrics by name, see metrics.FromName. It panics for unknown names.
// It replaces any previously set metrics.
func (b *CompileBuilder) Metrics(names ...string) *CompileBuilder {
	b.config.Metrics = make([]metrics.Interface, 0, len(names))
	for _, name := range names {
		b.config.Metrics = append(b.config.Metrics, metrics.FromName(name))
	}
	return b
}

// Done attaches the configuration to the model, and returns the model.
func (b *CompileBuilder) Done() *Model {
	if !b.lossSet {
		exceptions.Panicf("Model(%q).Compile(): a loss must be configured", b.model.name)
	}
	if b.config.Optimizer == nil {
		b.config.Optimizer = optimizers.FromName(DefaultOptimizer)
	}
	config := b.config
	if b.model.compiled != nil {
		klog.V(1).Infof("model %q recompiled, replacing %s", b.model.name, b.model.compiled)
	}
	b.model.compiled = &config
	klog.V(1).Infof("model %q compiled: %s", b.model.name, b.model.compiled)
	return b.model
}

// Compiled returns the training configuration attached with Compile, or nil if the model was not compiled.
func (m *Model) Compiled() *CompileConfig { return m.compiled }
