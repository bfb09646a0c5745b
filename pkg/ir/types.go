// Copyright Silicore Systems Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package ir

import (
	"fmt"
	"strings"
)

// Type represents the type of a signal within a circuit.  Types are either
// ground (unsigned, signed, clock) or aggregate (vector, bundle).
type Type interface {
	// BitWidth returns the total number of bits required to represent any
	// value of this type in flattened form.
	BitWidth() uint
	// String returns a human-readable rendering of this type.
	String() string
}

// UIntType represents an unsigned integer of a fixed bit width.
type UIntType struct {
	Width uint
}

// NewUInt constructs an unsigned integer type of the given width.
func NewUInt(width uint) UIntType {
	return UIntType{width}
}

// Bool constructs the single-bit unsigned type used for enables, modes and
// mask indicators.
func Bool() UIntType {
	return UIntType{1}
}

// BitWidth implementation for the Type interface.
func (p UIntType) BitWidth() uint {
	return p.Width
}

func (p UIntType) String() string {
	return fmt.Sprintf("UInt<%d>", p.Width)
}

// SIntType represents a signed (two's complement) integer of a fixed bit
// width.
type SIntType struct {
	Width uint
}

// NewSInt constructs a signed integer type of the given width.
func NewSInt(width uint) SIntType {
	return SIntType{width}
}

// BitWidth implementation for the Type interface.
func (p SIntType) BitWidth() uint {
	return p.Width
}

func (p SIntType) String() string {
	return fmt.Sprintf("SInt<%d>", p.Width)
}

// ClockType represents a clock signal.
type ClockType struct{}

// BitWidth implementation for the Type interface.
func (p ClockType) BitWidth() uint {
	return 1
}

func (p ClockType) String() string {
	return "Clock"
}

// VectorType represents a homogeneous array of some element type.
type VectorType struct {
	// Type of every element.
	Element Type
	// Number of elements.
	Size uint
}

// NewVector constructs a vector type with the given element type and size.
func NewVector(element Type, size uint) VectorType {
	return VectorType{element, size}
}

// BitWidth implementation for the Type interface.
func (p VectorType) BitWidth() uint {
	return p.Element.BitWidth() * p.Size
}

func (p VectorType) String() string {
	return fmt.Sprintf("%s[%d]", p.Element.String(), p.Size)
}

// BundleType represents a record of named (and possibly flipped) fields.
type BundleType struct {
	Fields []Field
}

// NewBundle constructs a bundle type from the given fields.
func NewBundle(fields ...Field) BundleType {
	return BundleType{fields}
}

// BitWidth implementation for the Type interface.
func (p BundleType) BitWidth() uint {
	var width uint
	//
	for _, f := range p.Fields {
		width += f.Type.BitWidth()
	}
	//
	return width
}

// Field returns the field with the given name, or false if no such field
// exists.
func (p BundleType) Field(name string) (Field, bool) {
	for _, f := range p.Fields {
		if f.Name == name {
			return f, true
		}
	}
	//
	return Field{}, false
}

func (p BundleType) String() string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for i, f := range p.Fields {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(f.String())
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}

// Field is a single named member of a bundle.  A flipped field carries data
// in the opposite direction to the bundle as a whole.
type Field struct {
	Name string
	Flip bool
	Type Type
}

// NewField constructs an unflipped bundle field.
func NewField(name string, datatype Type) Field {
	return Field{name, false, datatype}
}

// NewFlippedField constructs a flipped bundle field.
func NewFlippedField(name string, datatype Type) Field {
	return Field{name, true, datatype}
}

func (p Field) String() string {
	if p.Flip {
		return fmt.Sprintf("flip %s : %s", p.Name, p.Type.String())
	}
	//
	return fmt.Sprintf("%s : %s", p.Name, p.Type.String())
}
