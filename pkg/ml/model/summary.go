// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package model

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/onnxfixtures/pkg/core/dtypes"
	"github.com/gomlx/onnxfixtures/pkg/core/shapes"
	"github.com/gomlx/onnxfixtures/pkg/ml/train/optimizers"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
)

// Summary returns a plain-text (no colors or other terminal escape sequences) description of the model:
// its layers with their output shapes and number of parameters, the parameter totals and the compile
// configuration, if any.
func (m *Model) Summary() string {
	return m.renderSummary(lipgloss.NewRenderer(io.Discard, termenv.WithProfile(termenv.Ascii)))
}

// PrintSummary writes the model summary to w, styled according to the capabilities of w, if it is a terminal.
func (m *Model) PrintSummary(w io.Writer) error {
	_, err := io.WriteString(w, m.renderSummary(lipgloss.NewRenderer(w)))
	if err != nil {
		return errors.Wrapf(err, "failed to print summary of model %q", m.name)
	}
	return nil
}

func (m *Model) renderSummary(renderer *lipgloss.Renderer) string {
	var (
		titleStyle     = renderer.NewStyle().Bold(true)
		headerRowStyle = renderer.NewStyle().Reverse(true).
				Padding(0, 2, 0, 2).Align(lipgloss.Center)
		oddRowStyle = renderer.NewStyle().Faint(false).
				PaddingLeft(1).PaddingRight(1)
		evenRowStyle = renderer.NewStyle().Faint(true).
				PaddingLeft(1).PaddingRight(1)
		alignments = []lipgloss.Position{lipgloss.Left, lipgloss.Left, lipgloss.Right}
	)
	table := lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(renderer.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) (s lipgloss.Style) {
			switch {
			case row < 0:
				return headerRowStyle
			case row%2 == 0:
				s = oddRowStyle
			default:
				s = evenRowStyle
			}
			return s.Align(alignments[col])
		}).
		Headers("Layer (type)", "Output Shape", "Param #")
	for _, node := range m.nodes {
		var numParams int
		for _, v := range node.layer.Variables() {
			numParams += v.NumParams()
		}
		table.Row(
			fmt.Sprintf("%s (%s)", node.layer.Name(), node.layer.Type()),
			kerasShape(node.shape),
			humanize.Comma(int64(numParams)))
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("Model: %q", m.name)))
	sb.WriteString("\n")
	sb.WriteString(table.Render())
	sb.WriteString("\n")
	paramsLine := func(title string, numParams int) {
		memory := uint64(numParams) * uint64(dtypes.Float32.Memory())
		_, _ = fmt.Fprintf(&sb, "%s: %s (%s)\n", title, humanize.Comma(int64(numParams)), humanize.Bytes(memory))
	}
	paramsLine("Total params", m.NumParams())
	paramsLine("Trainable params", m.NumTrainableParams())
	paramsLine("Non-trainable params", m.NumNonTrainableParams())
	if m.compiled != nil {
		_, _ = fmt.Fprintf(&sb, "Loss: %s\n", m.compiled.Loss)
		_, _ = fmt.Fprintf(&sb, "Optimizer: %s\n", optimizers.Describe(m.compiled.Optimizer))
		metricNames := m.compiled.MetricNames()
		if len(metricNames) == 0 {
			metricNames = []string{"none"}
		}
		_, _ = fmt.Fprintf(&sb, "Metrics: %s\n", strings.Join(metricNames, ", "))
	}
	return sb.String()
}

// kerasShape formats a shape the way Keras summaries do, e.g.: "(None, 7, 8, 9)".
func kerasShape(shape shapes.Shape) string {
	parts := make([]string, shape.Rank())
	for axis, dim := range shape.Dimensions {
		if dim == shapes.DynamicDim {
			parts[axis] = "None"
		} else {
			parts[axis] = strconv.Itoa(dim)
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
