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

import "fmt"

// Direction indicates which way data flows through a port.
type Direction uint8

const (
	// Input ports carry data into a module.
	Input Direction = iota
	// Output ports carry data out of a module.
	Output
)

func (p Direction) String() string {
	if p == Input {
		return "input"
	}
	//
	return "output"
}

// Port is a single named connection point of a module.
type Port struct {
	Name      string
	Direction Direction
	Type      Type
}

// NewPort constructs a port with the given name, direction and type.
func NewPort(name string, direction Direction, datatype Type) Port {
	return Port{name, direction, datatype}
}

func (p Port) String() string {
	return fmt.Sprintf("%s %s : %s", p.Direction.String(), p.Name, p.Type.String())
}

// Module is the common interface of regular and external modules.
type Module interface {
	// Name returns the name of this module.
	Name() string
	// Ports returns the ports of this module.
	Ports() []Port
	// IsExternal indicates whether this module is externally defined (i.e.
	// has no body within the circuit).
	IsExternal() bool
}

// DefModule is a regular module, defined by its ports and a statement body.
type DefModule struct {
	ModuleName string
	PortList   []Port
	Body       Block
}

// NewModule constructs a regular module with the given name, ports and body.
func NewModule(name string, ports []Port, body Block) *DefModule {
	return &DefModule{name, ports, body}
}

// Name implementation for the Module interface.
func (p *DefModule) Name() string {
	return p.ModuleName
}

// Ports implementation for the Module interface.
func (p *DefModule) Ports() []Port {
	return p.PortList
}

// IsExternal implementation for the Module interface.
func (p *DefModule) IsExternal() bool {
	return false
}

// ExtModule is an externally-defined (blackbox) module.  It has ports but no
// body; its implementation is supplied outside the circuit, for example by a
// memory compiler.
type ExtModule struct {
	ModuleName string
	PortList   []Port
}

// NewExtModule constructs an external module with the given name and ports.
func NewExtModule(name string, ports []Port) *ExtModule {
	return &ExtModule{name, ports}
}

// Name implementation for the Module interface.
func (p *ExtModule) Name() string {
	return p.ModuleName
}

// Ports implementation for the Module interface.
func (p *ExtModule) Ports() []Port {
	return p.PortList
}

// IsExternal implementation for the Module interface.
func (p *ExtModule) IsExternal() bool {
	return true
}
