// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package dtypes includes the DType enum for the data types that can be stored in an exported model.
//
// The enum values are the same as the ONNX `TensorProto.DataType` codes, so a DType can be written to
// (and read from) an ONNX file without any translation table.
//
// Float16 support uses the github.com/x448/float16 implementation.
package dtypes

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// DType is an enum that represents the data type of a tensor or of a variable.
type DType int32

const (
	// InvalidDType is the zero value, and it is not a valid type.
	InvalidDType DType = 0

	// Float32 is ONNX FLOAT.
	Float32 DType = 1

	// Uint8 is ONNX UINT8.
	Uint8 DType = 2

	// Int8 is ONNX INT8.
	Int8 DType = 3

	// Int32 is ONNX INT32.
	Int32 DType = 6

	// Int64 is ONNX INT64. It's used for shape tensors (e.g.: the target shape of a Reshape).
	Int64 DType = 7

	// Bool is ONNX BOOL.
	Bool DType = 9

	// Float16 is ONNX FLOAT16, the IEEE 754 half-precision format.
	Float16 DType = 10

	// Float64 is ONNX DOUBLE.
	Float64 DType = 11
)

// panicf panics with the formatted description.
//
// It is only used for "bugs in the code" -- when parameters don't follow the specifications.
func panicf(format string, args ...any) {
	panic(errors.Errorf(format, args...))
}

var (
	// MapOfNames to DType. It also includes the lower-case version of the names.
	MapOfNames = map[string]DType{
		"InvalidDType": InvalidDType,
		"Float32":      Float32,
		"F32":          Float32,
		"Uint8":        Uint8,
		"Int8":         Int8,
		"Int32":        Int32,
		"Int64":        Int64,
		"Bool":         Bool,
		"Float16":      Float16,
		"F16":          Float16,
		"Float64":      Float64,
		"F64":          Float64,
	}

	dtypeNames = map[DType]string{
		InvalidDType: "InvalidDType",
		Float32:      "Float32",
		Uint8:        "Uint8",
		Int8:         "Int8",
		Int32:        "Int32",
		Int64:        "Int64",
		Bool:         "Bool",
		Float16:      "Float16",
		Float64:      "Float64",
	}

	dtypeSizes = map[DType]int{
		Float32: 4,
		Uint8:   1,
		Int8:    1,
		Int32:   4,
		Int64:   8,
		Bool:    1,
		Float16: 2,
		Float64: 8,
	}
)

func init() {
	keys := slices.Collect(maps.Keys(MapOfNames))
	for _, key := range keys {
		lowerKey := strings.ToLower(key)
		if _, found := MapOfNames[lowerKey]; found {
			continue
		}
		MapOfNames[lowerKey] = MapOfNames[key]
	}
}

// FromName returns the DType for the given name. Names are case-insensitive, and
// a few short aliases ("f32", "f16") are accepted.
func FromName(name string) (DType, error) {
	dtype, found := MapOfNames[name]
	if !found {
		dtype, found = MapOfNames[strings.ToLower(name)]
	}
	if !found || dtype == InvalidDType {
		return InvalidDType, errors.Errorf("unknown dtype %q", name)
	}
	return dtype, nil
}

// String implements fmt.Stringer.
func (dtype DType) String() string {
	if name, found := dtypeNames[dtype]; found {
		return name
	}
	return "DType(" + strconv.Itoa(int(dtype)) + ")"
}

// IsSupported returns whether dtype is one of the known types.
func (dtype DType) IsSupported() bool {
	_, found := dtypeSizes[dtype]
	return found
}

// Size returns the number of bytes for the given DType, or 0 for an invalid DType.
func (dtype DType) Size() int {
	return dtypeSizes[dtype]
}

// Memory returns the number of bytes for the given DType.
// It's an alias to Size, converted to uintptr.
func (dtype DType) Memory() uintptr {
	return uintptr(dtype.Size())
}

// IsFloat returns whether dtype is a float type.
func (dtype DType) IsFloat() bool {
	return dtype == Float16 || dtype == Float32 || dtype == Float64
}

// IsInt returns whether dtype is an integer type.
func (dtype DType) IsInt() bool {
	return dtype == Uint8 || dtype == Int8 || dtype == Int32 || dtype == Int64
}

// ONNX returns the ONNX TensorProto.DataType code for the dtype.
func (dtype DType) ONNX() int32 {
	return int32(dtype)
}

// FromONNX converts an ONNX TensorProto.DataType code to a DType.
// It returns InvalidDType for types not known to this package.
func FromONNX(code int32) DType {
	dtype := DType(code)
	if !dtype.IsSupported() {
		return InvalidDType
	}
	return dtype
}

// Float32ToFloat16 converts a slice of float32 to their half-precision representation.
func Float32ToFloat16(values []float32) []float16.Float16 {
	converted := make([]float16.Float16, len(values))
	for ii, v := range values {
		converted[ii] = float16.Fromfloat32(v)
	}
	return converted
}

// Float16ToFloat32 converts a slice of half-precision values back to float32.
func Float16ToFloat32(values []float16.Float16) []float32 {
	converted := make([]float32, len(values))
	for ii, v := range values {
		converted[ii] = v.Float32()
	}
	return converted
}

// MustFromName is like FromName, but panics on unknown names.
func MustFromName(name string) DType {
	dtype, err := FromName(name)
	if err != nil {
		known := slices.DeleteFunc(slices.Sorted(maps.Values(dtypeNames)),
			func(n string) bool { return n == InvalidDType.String() })
		panicf("%v: known dtypes are %v", err, known)
	}
	return dtype
}
