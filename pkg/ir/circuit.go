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

// Circuit is a whole design: an ordered sequence of modules, the name of the
// top-level module and an accompanying annotation sequence.
type Circuit struct {
	// Name of the top-level module.
	Main string
	// Modules making up this circuit, in order.
	Modules []Module
	// Annotations attached to this circuit.
	Annotations []Annotation
}

// NewCircuit constructs a circuit with the given top-level module name and
// modules.
func NewCircuit(main string, modules ...Module) *Circuit {
	return &Circuit{main, modules, nil}
}

// Module returns the module with the given name, or false if no such module
// exists.
func (p *Circuit) Module(name string) (Module, bool) {
	for _, m := range p.Modules {
		if m.Name() == name {
			return m, true
		}
	}
	//
	return nil, false
}
