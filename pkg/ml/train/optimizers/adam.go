// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package optimizers

import "github.com/gomlx/exceptions"

const (
	// AdamDefaultLearningRate is used by Adam if no learning rate is set.
	AdamDefaultLearningRate = 0.001

	// AdamDefaultEpsilon is the default epsilon, the same as Keras.
	AdamDefaultEpsilon = 1e-7
)

// Adam optimization is a stochastic gradient descent method based on an adaptive estimation of first-order and
// second-order moments. See [Kingma et al., 2014](http://arxiv.org/abs/1412.6980).
//
// It returns a configuration object that can be used to set its parameters. Once configured, call AdamConfig.Done.
func Adam() *AdamConfig {
	return &AdamConfig{
		learningRate: AdamDefaultLearningRate,
		beta1:        0.9,
		beta2:        0.999,
		epsilon:      AdamDefaultEpsilon,
	}
}

// RMSProp is an optimizer that divides the learning rate for a weight by a running average
// of the recent gradients magnitudes (L2) for that weight.
//
// It is configured with AdamConfig: it's somewhat equivalent to an Adam without the 1st moment of the
// gradients, and beta2 plays the role of "rho".
func RMSProp() *AdamConfig {
	c := Adam()
	c.rmsProp = true
	c.beta2 = 0.9
	return c
}

// AdamConfig holds the configuration for an Adam optimizer, create using Adam(), and once configured
// call Done to create an optimizers.Interface.
type AdamConfig struct {
	learningRate float64
	beta1, beta2 float64
	epsilon      float64
	amsGrad      bool
	adamax       bool    // Works as Adamax.
	weightDecay  float64 // Works as AdamW.
	rmsProp      bool    // Works as RMSProp.
}

// LearningRate sets the base learning rate. Default is AdamDefaultLearningRate.
func (c *AdamConfig) LearningRate(value float64) *AdamConfig {
	if value <= 0 {
		exceptions.Panicf("Adam learning rate must be > 0, got %g", value)
	}
	c.learningRate = value
	return c
}

// Betas sets the two moving averages constants (default to 0.9 and 0.999).
func (c *AdamConfig) Betas(beta1, beta2 float64) *AdamConfig {
	c.beta1 = beta1
	c.beta2 = beta2
	return c
}

// Epsilon used on the denominator as a small constant for stability.
func (c *AdamConfig) Epsilon(epsilon float64) *AdamConfig {
	c.epsilon = epsilon
	return c
}

// Adamax configures Adam to use an L-infinity (== max, which gives the name) for the second moment,
// instead of L2, as described in the same Adam paper.
func (c *AdamConfig) Adamax() *AdamConfig {
	c.adamax = true
	return c
}

// WeightDecay configures the optimizer to work as AdamW, with the given static weight decay.
func (c *AdamConfig) WeightDecay(weightDecay float64) *AdamConfig {
	c.weightDecay = weightDecay
	return c
}

// AMSGrad configures whether to use the AMSGrad variant of the algorithm.
func (c *AdamConfig) AMSGrad(amsGrad bool) *AdamConfig {
	c.amsGrad = amsGrad
	return c
}

// Done will finish the configuration and construct an optimizers.Interface.
func (c *AdamConfig) Done() Interface {
	if c.rmsProp && (c.adamax || c.weightDecay > 0 || c.amsGrad) {
		exceptions.Panicf("RMSProp cannot be combined with Adamax, WeightDecay or AMSGrad")
	}
	config := *c
	return &adam{config: &config}
}

// adam is the finished (immutable) configuration of the Adam family of optimizers.
type adam struct {
	config *AdamConfig
}

// Name implements Interface.
func (o *adam) Name() string {
	switch {
	case o.config.rmsProp:
		return "rmsprop"
	case o.config.adamax:
		return "adamax"
	case o.config.weightDecay > 0:
		return "adamw"
	default:
		return "adam"
	}
}

// Hyperparameters implements Interface.
func (o *adam) Hyperparameters() map[string]any {
	c := o.config
	if c.rmsProp {
		return map[string]any{
			ParamLearningRate: c.learningRate,
			"rho":             c.beta2,
			"epsilon":         c.epsilon,
		}
	}
	params := map[string]any{
		ParamLearningRate: c.learningRate,
		"beta_1":          c.beta1,
		"beta_2":          c.beta2,
		"epsilon":         c.epsilon,
	}
	if c.amsGrad {
		params["amsgrad"] = true
	}
	if c.weightDecay > 0 {
		params["weight_decay"] = c.weightDecay
	}
	return params
}
