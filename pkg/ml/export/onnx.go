// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package export converts models to the ONNX format, for inference with other runtimes.
//
// Layers are converted the way tf2onnx converts Keras layers:
//
//   - Input: graph input, with the dynamic batch axis as a symbolic dimension (default "batch").
//   - Flatten: Reshape, with a constant shape `[-1, size]`.
//   - Dense: MatMul with the kernel, Add with the bias, followed by the activation (Relu, Sigmoid, Tanh or
//     Softmax over the last axis).
//
// The output of each layer is named after the layer, so the model output takes the name of the output layer.
//
// Example:
//
//	err := export.ONNX(m).Opset(13).Save("model.onnx")
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/onnxfixtures/pkg/core/dtypes"
	"github.com/gomlx/onnxfixtures/pkg/ml/layers"
	"github.com/gomlx/onnxfixtures/pkg/ml/layers/activations"
	"github.com/gomlx/onnxfixtures/pkg/ml/model"
	"github.com/gomlx/onnxfixtures/pkg/ml/train/optimizers"
	"github.com/gomlx/onnxfixtures/pkg/onnx"
	"github.com/gomlx/onnxfixtures/pkg/onnx/protos"
	"github.com/gomlx/onnxfixtures/pkg/support/fsutil"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

const (
	// DefaultOpset is the version of the default ONNX operator set used.
	DefaultOpset = 13

	// MinOpset is the oldest supported operator set: Softmax over the last axis requires 13.
	MinOpset = 13

	// DefaultProducerName is recorded in the model's producer_name.
	DefaultProducerName = "onnxfixtures"

	// DefaultProducerVersion is recorded in the model's producer_version.
	DefaultProducerVersion = "v0.1.0"

	// DefaultBatchDimName is the symbolic name given to the dynamic batch axis.
	DefaultBatchDimName = "batch"
)

// Metadata keys recorded in the exported model.
const (
	MetadataModelName = "model_name"
	MetadataExportID  = "export_id"
	MetadataLoss      = "loss"
	MetadataOptimizer = "optimizer"
	MetadataMetrics   = "metrics"
)

// Exporter converts a model to ONNX, see ONNX.
type Exporter struct {
	model                         *model.Model
	opset                         int
	producerName, producerVersion string
	weightsDType                  dtypes.DType
	batchDimName                  string
}

// ONNX returns an exporter of the model to the ONNX format.
// Configure it with its methods, and call Exporter.Done to get the ONNX model, or Exporter.Save to write it.
func ONNX(m *model.Model) *Exporter {
	return &Exporter{
		model:           m,
		opset:           DefaultOpset,
		producerName:    DefaultProducerName,
		producerVersion: DefaultProducerVersion,
		weightsDType:    dtypes.Float32,
		batchDimName:    DefaultBatchDimName,
	}
}

// Opset sets the version of the default ONNX operator set. It must be >= MinOpset.
func (e *Exporter) Opset(version int) *Exporter {
	if version < MinOpset {
		exceptions.Panicf("export.ONNX().Opset(%d): minimum supported opset is %d", version, MinOpset)
	}
	e.opset = version
	return e
}

// ProducerName sets the model's producer_name. Default is DefaultProducerName.
func (e *Exporter) ProducerName(name string) *Exporter {
	e.producerName = name
	return e
}

// ProducerVersion sets the model's producer_version. Default is DefaultProducerVersion.
func (e *Exporter) ProducerVersion(version string) *Exporter {
	e.producerVersion = version
	return e
}

// WeightsDType sets the dtype used to store the weights: dtypes.Float32 (default) or dtypes.Float16.
//
// With Float16 the weights take half the space, and Cast nodes convert them back to Float32, so the
// computation and the model input and output remain in Float32.
func (e *Exporter) WeightsDType(dtype dtypes.DType) *Exporter {
	if dtype != dtypes.Float32 && dtype != dtypes.Float16 {
		exceptions.Panicf("export.ONNX().WeightsDType(%s): only Float32 and Float16 are supported", dtype)
	}
	e.weightsDType = dtype
	return e
}

// BatchDimName sets the symbolic name of the dynamic batch axis. Default is DefaultBatchDimName.
func (e *Exporter) BatchDimName(name string) *Exporter {
	if name == "" {
		exceptions.Panicf("export.ONNX().BatchDimName(): name cannot be empty")
	}
	e.batchDimName = name
	return e
}

// irVersion returns the IR version that goes with the opset version.
func irVersion(opset int) int64 {
	switch {
	case opset <= 14:
		return 7
	case opset <= 18:
		return 8
	case opset <= 20:
		return 9
	default:
		return 10
	}
}

// Done converts the model and returns the ONNX model proto.
func (e *Exporter) Done() (*protos.ModelProto, error) {
	var onnxModel *protos.ModelProto
	err := exceptions.TryCatch[error](func() {
		g, err := e.convertGraph()
		if err != nil {
			panic(err)
		}
		onnxModel = &protos.ModelProto{
			IrVersion:       irVersion(e.opset),
			OpsetImport:     []*protos.OperatorSetIdProto{{Domain: "", Version: int64(e.opset)}},
			ProducerName:    e.producerName,
			ProducerVersion: e.producerVersion,
			ModelVersion:    1,
			Graph:           g,
			MetadataProps:   e.metadata(),
		}
	})
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to export model %q to ONNX", e.model.Name())
	}
	return onnxModel, nil
}

// Save converts the model and writes it to filePath, overwriting any existing file.
// A leading "~" in filePath is replaced by the home directory.
func (e *Exporter) Save(filePath string) error {
	start := time.Now()
	onnxModel, err := e.Done()
	if err != nil {
		return err
	}
	filePath, err = fsutil.ExpandHome(filePath)
	if err != nil {
		return err
	}
	exists, err := fsutil.FileExists(filePath)
	if err != nil {
		return err
	}
	if exists {
		klog.V(1).Infof("overwriting %q", filePath)
	}
	if err := onnx.Save(onnxModel, filePath); err != nil {
		return err
	}
	klog.V(1).Infof("model %q exported to %q in %s", e.model.Name(), filePath, time.Since(start))
	return nil
}

func (e *Exporter) metadata() []*protos.StringStringEntryProto {
	props := []*protos.StringStringEntryProto{
		{Key: MetadataModelName, Value: e.model.Name()},
		{Key: MetadataExportID, Value: uuid.NewString()},
	}
	if config := e.model.Compiled(); config != nil {
		props = append(props,
			&protos.StringStringEntryProto{Key: MetadataLoss, Value: config.Loss.String()},
			&protos.StringStringEntryProto{Key: MetadataOptimizer, Value: optimizers.Describe(config.Optimizer)},
			&protos.StringStringEntryProto{Key: MetadataMetrics, Value: strings.Join(config.MetricNames(), ",")},
		)
	}
	return props
}

// graphConverter accumulates the ONNX graph while visiting the model nodes.
type graphConverter struct {
	*Exporter
	g *protos.GraphProto
}

func (e *Exporter) convertGraph() (*protos.GraphProto, error) {
	c := &graphConverter{
		Exporter: e,
		g:        &protos.GraphProto{Name: e.model.Name()},
	}
	for _, node := range e.model.Nodes() {
		if err := c.convertNode(node); err != nil {
			return nil, err
		}
	}
	c.g.Output = []*protos.ValueInfoProto{
		onnx.NewTensorValueInfo(e.model.Output().Layer().Name(), e.model.OutputShape(), e.batchDimName),
	}
	klog.V(1).Infof("model %q converted to ONNX: %d nodes, %d initializers", e.model.Name(), len(c.g.Node),
		len(c.g.Initializer))
	return c.g, nil
}

func (c *graphConverter) convertNode(node *model.Node) error {
	switch layer := node.Layer().(type) {
	case *model.InputLayer:
		c.g.Input = append(c.g.Input, onnx.NewTensorValueInfo(layer.Name(), node.Shape(), c.batchDimName))
	case *layers.FlattenLayer:
		shapeName := layer.Name() + "/shape"
		c.g.Initializer = append(c.g.Initializer, onnx.NewInt64Tensor(shapeName, []int{2}, []int64{-1, int64(layer.Size())}))
		c.addNode(layer.Name(), "Reshape", layer.Name(), []string{tensorName(node.Inputs()[0]), shapeName})
	case *layers.DenseLayer:
		return c.convertDense(node, layer)
	default:
		return errors.Errorf("layer %q of type %s can't be converted to ONNX", layer.Name(), layer.Type())
	}
	return nil
}

func (c *graphConverter) convertDense(node *model.Node, layer *layers.DenseLayer) error {
	name := layer.Name()
	type step struct {
		opType string
		input  string
		attrs  []*protos.AttributeProto
	}
	steps := []step{{opType: "MatMul", input: c.addWeights(layer.Kernel())}}
	if layer.Bias() != nil {
		steps = append(steps, step{opType: "Add", input: c.addWeights(layer.Bias())})
	}
	switch layer.Activation() {
	case activations.TypeNone:
	case activations.TypeRelu:
		steps = append(steps, step{opType: "Relu"})
	case activations.TypeSigmoid:
		steps = append(steps, step{opType: "Sigmoid"})
	case activations.TypeTanh:
		steps = append(steps, step{opType: "Tanh"})
	case activations.TypeSoftmax:
		steps = append(steps, step{opType: "Softmax", attrs: []*protos.AttributeProto{onnx.IntAttribute("axis", -1)}})
	default:
		return errors.Errorf("dense layer %q activation %s can't be converted to ONNX", name, layer.Activation())
	}

	current := tensorName(node.Inputs()[0])
	for ii, s := range steps {
		output := name
		if ii < len(steps)-1 {
			output = fmt.Sprintf("%s/%s:0", name, s.opType)
		}
		inputs := []string{current}
		if s.input != "" {
			inputs = append(inputs, s.input)
		}
		c.addNode(name+"/"+s.opType, s.opType, output, inputs, s.attrs...)
		current = output
	}
	return nil
}

// addWeights adds the variable as an initializer, converted to the weights dtype, and returns the name
// of the Float32 tensor holding it.
func (c *graphConverter) addWeights(v *model.Variable) string {
	dims := v.Shape().Dimensions
	if c.weightsDType == dtypes.Float16 {
		c.g.Initializer = append(c.g.Initializer, onnx.NewFloat16Tensor(v.Name(), dims, v.Value()))
		castName := v.Name() + "/Cast"
		c.addNode(castName, "Cast", castName+":0", []string{v.Name()},
			onnx.IntAttribute("to", int64(dtypes.Float32.ONNX())))
		return castName + ":0"
	}
	c.g.Initializer = append(c.g.Initializer, onnx.NewFloat32Tensor(v.Name(), dims, v.Value()))
	return v.Name()
}

func (c *graphConverter) addNode(name, opType, output string, inputs []string, attrs ...*protos.AttributeProto) {
	c.g.Node = append(c.g.Node, &protos.NodeProto{
		Name:      name,
		OpType:    opType,
		Input:     inputs,
		Output:    []string{output},
		Attribute: attrs,
	})
}

// tensorName is the name of the ONNX tensor holding the output of the model node.
func tensorName(node *model.Node) string {
	return node.Layer().Name()
}
