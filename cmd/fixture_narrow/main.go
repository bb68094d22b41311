// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// fixture_narrow builds the "narrow" fixture model (hidden layers with 128, 64, 32 and 16 units), prints its
// summary and exports it to ./model.onnx, overwriting any existing file.
//
// Only the logging flags (klog) are available, e.g.: `fixture_narrow -v=1`.
package main

import (
	"flag"
	"os"

	"github.com/gomlx/onnxfixtures/pkg/fixtures"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()
	must.M(fixtures.Run(fixtures.Narrow, fixtures.DefaultOutputPath, os.Stdout))
}
