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

// Annotation is a directive attached to a circuit, carried alongside the
// module list and consumed by later passes or external tools.
type Annotation interface {
	// String returns a human-readable rendering of this annotation.
	String() string
}

// PinAnnotation names the I/O pins to be exposed from every memory macro
// extracted from the circuit.  At most one such annotation may be present on
// a circuit at a time.
type PinAnnotation struct {
	Pins []string
}

// NewPinAnnotation constructs a pin annotation exposing the given pins.
func NewPinAnnotation(pins ...string) PinAnnotation {
	return PinAnnotation{pins}
}

func (p PinAnnotation) String() string {
	return fmt.Sprintf("pins(%s)", strings.Join(p.Pins, ","))
}

// SinkAnnotation marks a single pin on a single (blackbox) module as a sink
// to be exposed by the macro compiler.
type SinkAnnotation struct {
	// Module the pin belongs to.
	Module string
	// Name of the pin.
	Pin string
}

// NewSinkAnnotation constructs a sink annotation for the given module and
// pin.
func NewSinkAnnotation(module string, pin string) SinkAnnotation {
	return SinkAnnotation{module, pin}
}

func (p SinkAnnotation) String() string {
	return fmt.Sprintf("sink(%s, %s)", p.Module, p.Pin)
}
