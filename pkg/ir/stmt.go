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

	"github.com/silicore/go-seqmem/pkg/util"
)

// Stmt represents a statement within the body of a module.
type Stmt interface {
	// String returns a human-readable rendering of this statement.
	String() string
}

// Block is an ordered sequence of statements.
type Block struct {
	Stmts []Stmt
}

// NewBlock constructs a block from the given statements.
func NewBlock(stmts ...Stmt) Block {
	return Block{stmts}
}

func (p Block) String() string {
	var builder strings.Builder
	//
	for _, s := range p.Stmts {
		builder.WriteString(s.String())
		builder.WriteString("\n")
	}
	//
	return builder.String()
}

// Connect drives the location on the left from the expression on the right.
type Connect struct {
	Loc  Expr
	Expr Expr
}

// NewConnect constructs a connection of the given expression to the given
// location.
func NewConnect(loc Expr, expr Expr) Connect {
	return Connect{loc, expr}
}

func (p Connect) String() string {
	return fmt.Sprintf("%s <= %s", p.Loc.String(), p.Expr.String())
}

// DefInstance instantiates a module under a local name.
type DefInstance struct {
	// Local name of the instance.
	Name string
	// Name of the instantiated module.
	Module string
}

// NewInstance constructs an instantiation of the given module.
func NewInstance(name string, module string) DefInstance {
	return DefInstance{name, module}
}

func (p DefInstance) String() string {
	return fmt.Sprintf("inst %s of %s", p.Name, p.Module)
}

// MemRef identifies a memory declaration by the module which owns it and the
// name it was declared under.
type MemRef struct {
	Module string
	Memory string
}

func (p MemRef) String() string {
	return fmt.Sprintf("%s.%s", p.Module, p.Memory)
}

// DefMemory declares an abstract sequential memory.  The declaration carries
// the element type, the depth, the names of its read / write / read-write
// ports, an optional write-mask granularity and an optional canonical
// reference identifying another, physically-identical memory.
type DefMemory struct {
	// Name of this memory within its enclosing module.
	Name string
	// Type of each element held in the memory.  May be aggregate.
	DataType Type
	// Number of elements held in the memory.
	Depth uint64
	// Number of cycles a read takes to complete.
	ReadLatency uint
	// Number of cycles a write takes to complete.
	WriteLatency uint
	// Names of read-only ports.
	Readers []string
	// Names of write-only ports.
	Writers []string
	// Names of combined read-write ports.
	Readwriters []string
	// Number of data bits covered by a single write-mask bit.  An empty
	// option means writes are unmasked.
	MaskGran util.Option[uint]
	// When present, identifies the canonical memory declaration this one is
	// physically identical to.
	Canonical util.Option[MemRef]
}

func (p DefMemory) String() string {
	var builder strings.Builder
	//
	builder.WriteString(fmt.Sprintf("mem %s : %s[%d]", p.Name, p.DataType.String(), p.Depth))
	//
	for _, r := range p.Readers {
		builder.WriteString(fmt.Sprintf(" reader=%s", r))
	}
	//
	for _, w := range p.Writers {
		builder.WriteString(fmt.Sprintf(" writer=%s", w))
	}
	//
	for _, rw := range p.Readwriters {
		builder.WriteString(fmt.Sprintf(" readwriter=%s", rw))
	}
	//
	if p.MaskGran.HasValue() {
		builder.WriteString(fmt.Sprintf(" mask_gran=%d", p.MaskGran.Unwrap()))
	}
	//
	if p.Canonical.HasValue() {
		builder.WriteString(fmt.Sprintf(" canonical=%s", p.Canonical.Unwrap().String()))
	}
	//
	return builder.String()
}
