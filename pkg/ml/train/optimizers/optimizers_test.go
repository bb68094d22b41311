// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package optimizers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromName(t *testing.T) {
	for name := range KnownOptimizers {
		opt := FromName(name)
		assert.Equal(t, name, opt.Name())
	}
	require.Equal(t, "adam", FromName("Adam").Name())
	require.Panics(t, func() { _ = FromName("lion") })
}

func TestAdam(t *testing.T) {
	opt := Adam().Done()
	params := opt.Hyperparameters()
	assert.Equal(t, 0.001, params[ParamLearningRate])
	assert.Equal(t, 0.9, params["beta_1"])
	assert.Equal(t, 0.999, params["beta_2"])
	assert.Equal(t, 1e-7, params["epsilon"])
	assert.Equal(t, "adam(beta_1=0.9, beta_2=0.999, epsilon=1e-07, learning_rate=0.001)", Describe(opt))

	// Done takes a snapshot: later changes to the builder don't affect it.
	config := Adam()
	opt = config.Done()
	config.LearningRate(0.5)
	assert.Equal(t, 0.001, opt.Hyperparameters()[ParamLearningRate])

	assert.Equal(t, "adamw", Adam().WeightDecay(0.01).Done().Name())
	assert.Equal(t, true, Adam().AMSGrad(true).Done().Hyperparameters()["amsgrad"])
	require.Panics(t, func() { _ = Adam().LearningRate(0) })
	require.Panics(t, func() { _ = RMSProp().Adamax().Done() })
}

func TestSGD(t *testing.T) {
	opt := StochasticGradientDescent().WithLearningRate(0.1).WithMomentum(0.9, true).Done()
	assert.Equal(t, "sgd(learning_rate=0.1, momentum=0.9, nesterov=true)", Describe(opt))
	require.Panics(t, func() { _ = StochasticGradientDescent().WithMomentum(1.5, false) })
}
