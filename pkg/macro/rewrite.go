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
package macro

import (
	"github.com/silicore/go-seqmem/pkg/conf"
	"github.com/silicore/go-seqmem/pkg/ir"
	"github.com/silicore/go-seqmem/pkg/util"
	log "github.com/sirupsen/logrus"
)

// rewriteContext threads the transform's shared mutable state through the
// per-module statement rewrite: the circuit-wide namespace, the identity map
// from memory declarations to wrapper names, the blackbox map from wrapper
// names to their generated blackboxes, the emitted-module accumulator and
// the macro configuration writer.  All maps are append-only.
type rewriteContext struct {
	// Circuit-wide registry of used names.
	ns *ir.Namespace
	// Identity map: (module, memory) to wrapper module name.  Canonical
	// declarations are entered by the discovery pass; aliases are appended
	// as they are rewritten.
	wrappers map[ir.MemRef]string
	// Blackbox map: wrapper name to (instance name, module name) of its
	// blackbox.  Instance and module names are identical by construction.
	blackboxes map[string]util.Pair[string, string]
	// Rewritten memories, in rewrite order.
	rewritten []ir.MemRef
	// Generated wrapper/blackbox modules, in creation order.
	emitted []ir.Module
	// Generated blackbox module names, in creation order.
	boxes []string
	// Macro configuration writer.
	writer conf.Writer
}

func newRewriteContext(ns *ir.Namespace, writer conf.Writer) *rewriteContext {
	return &rewriteContext{
		ns:         ns,
		wrappers:   make(map[ir.MemRef]string),
		blackboxes: make(map[string]util.Pair[string, string]),
		writer:     writer,
	}
}

// rewriteModule replaces every memory declared within the given module by an
// instance of its wrapper, generating the wrapper/blackbox pair on first
// encounter.
func (p *rewriteContext) rewriteModule(m *ir.DefModule) (*ir.DefModule, error) {
	body, err := p.rewriteBlock(m.ModuleName, m.Body)
	if err != nil {
		return nil, err
	}
	//
	return ir.NewModule(m.ModuleName, m.PortList, body), nil
}

func (p *rewriteContext) rewriteBlock(module string, block ir.Block) (ir.Block, error) {
	stmts := make([]ir.Stmt, len(block.Stmts))
	//
	for i, s := range block.Stmts {
		var err error
		//
		switch t := s.(type) {
		case ir.Block:
			stmts[i], err = p.rewriteBlock(module, t)
		case ir.DefMemory:
			stmts[i], err = p.rewriteMemory(module, &t)
		default:
			stmts[i] = s
		}
		//
		if err != nil {
			return ir.Block{}, err
		}
	}
	//
	return ir.NewBlock(stmts...), nil
}

// rewriteMemory replaces one memory declaration with an instance of its
// wrapper module.  Canonical declarations trigger generation of the wrapper
// and blackbox; aliases resolve against the wrapper already assigned to
// their canonical declaration.
func (p *rewriteContext) rewriteMemory(module string, mem *ir.DefMemory) (ir.Stmt, error) {
	var (
		ref     = ir.MemRef{Module: module, Memory: mem.Name}
		wrapper string
	)
	//
	if mem.Canonical.HasValue() {
		// Alias: reuse the wrapper of the canonical declaration.
		canon := mem.Canonical.Unwrap()
		//
		name, ok := p.wrappers[canon]
		if !ok {
			return nil, internalErrorf("unresolved canonical reference %s for memory %s", canon.String(), ref.String())
		}
		//
		wrapper = name
		p.wrappers[ref] = wrapper
		//
		log.Debug("collapsing memory \"", ref.String(), "\" into macro of \"", canon.String(), "\"")
	} else {
		// Canonical: wrapper name was assigned by the discovery pass.
		name, ok := p.wrappers[ref]
		if !ok {
			return nil, internalErrorf("memory %s missing from discovery pass", ref.String())
		}
		//
		wrapper = name
		//
		if err := p.extract(module, mem, wrapper); err != nil {
			return nil, err
		}
	}
	//
	p.rewritten = append(p.rewritten, ref)
	// The instance keeps the memory's name, so references into the module
	// remain valid.
	return ir.NewInstance(mem.Name, wrapper), nil
}

// extract generates the wrapper and blackbox modules for a canonical memory
// declaration, together with its macro configuration record.
func (p *rewriteContext) extract(module string, mem *ir.DefMemory, wrapper string) error {
	ports, err := buildMemPorts(mem)
	if err != nil {
		return &LayoutError{module, mem.Name, err}
	}
	//
	bbName := p.ns.Allocate(mem.Name + "_ext")
	//
	stmts := []ir.Stmt{ir.NewInstance(bbName, bbName)}
	stmts = append(stmts, wireMemory(bbName, mem, ports)...)
	//
	p.emitted = append(p.emitted,
		ir.NewModule(wrapper, ports.structured, ir.NewBlock(stmts...)),
		ir.NewExtModule(bbName, ports.flattened))
	p.boxes = append(p.boxes, bbName)
	p.blackboxes[wrapper] = util.NewPair(bbName, bbName)
	//
	p.writer.Append(confRecord(bbName, mem, ports))
	//
	log.Debug("extracting memory \"", module, ".", mem.Name, "\" as macro \"", bbName, "\"")
	//
	return nil
}

// wireMemory produces the statements adapting the wrapper's structured ports
// to the blackbox's flattened ports: direct pass-through for control and
// address signals, packing for written data and masks, unpacking for read
// data.
func wireMemory(bbName string, mem *ir.DefMemory, ports memPorts) []ir.Stmt {
	var (
		stmts []ir.Stmt
		bb    = ir.NewReference(bbName)
	)
	//
	for _, r := range mem.Readers {
		var (
			outer = ir.NewReference(r)
			inner = ir.NewSubField(bb, r)
		)
		//
		stmts = append(stmts, passThrough(inner, outer, "clk", "en", "addr")...)
		stmts = append(stmts, FromBits(ir.NewSubField(outer, "data"), mem.DataType, ir.NewSubField(inner, "data"))...)
	}
	//
	for _, w := range mem.Writers {
		var (
			outer = ir.NewReference(w)
			inner = ir.NewSubField(bb, w)
		)
		//
		stmts = append(stmts, passThrough(inner, outer, "clk", "en", "addr")...)
		stmts = append(stmts, ir.NewConnect(ir.NewSubField(inner, "data"), ToBits(ir.NewSubField(outer, "data"), mem.DataType)))
		//
		if mask := packedMask(ir.NewSubField(outer, "mask"), mem, ports); !ir.IsEmpty(mask) {
			stmts = append(stmts, ir.NewConnect(ir.NewSubField(inner, "mask"), mask))
		}
	}
	//
	for _, rw := range mem.Readwriters {
		var (
			outer = ir.NewReference(rw)
			inner = ir.NewSubField(bb, rw)
		)
		//
		stmts = append(stmts, passThrough(inner, outer, "clk", "en", "addr", "wmode")...)
		stmts = append(stmts, FromBits(ir.NewSubField(outer, "rdata"), mem.DataType, ir.NewSubField(inner, "rdata"))...)
		stmts = append(stmts, ir.NewConnect(ir.NewSubField(inner, "wdata"), ToBits(ir.NewSubField(outer, "wdata"), mem.DataType)))
		//
		if mask := packedMask(ir.NewSubField(outer, "wmask"), mem, ports); !ir.IsEmpty(mask) {
			stmts = append(stmts, ir.NewConnect(ir.NewSubField(inner, "wmask"), mask))
		}
	}
	//
	return stmts
}

// packedMask builds the packed mask expression for a write or read-write
// port.  When the memory is unmasked the field is always-enabled, so it
// collapses to the empty expression and is left unwired.
func packedMask(mask ir.Expr, mem *ir.DefMemory, ports memPorts) ir.Expr {
	if ports.mask.IsEmpty() {
		return ir.Empty{}
	}
	//
	return MaskBits(mask, mem.DataType, ports.mask.Unwrap().fill)
}

// passThrough connects the named bundle fields of the inner (blackbox)
// expression directly from the outer (wrapper port) expression.
func passThrough(inner ir.Expr, outer ir.Expr, fields ...string) []ir.Stmt {
	stmts := make([]ir.Stmt, len(fields))
	//
	for i, f := range fields {
		stmts[i] = ir.NewConnect(ir.NewSubField(inner, f), ir.NewSubField(outer, f))
	}
	//
	return stmts
}

// confRecord builds the macro configuration record for an extracted memory.
func confRecord(bbName string, mem *ir.DefMemory, ports memPorts) conf.Record {
	var (
		kinds  []string
		masked = ports.mask.HasValue()
		gran   = util.None[uint]()
	)
	//
	for range mem.Readers {
		kinds = append(kinds, conf.ReadPort)
	}
	//
	for range mem.Writers {
		if masked {
			kinds = append(kinds, conf.MaskedWritePort)
		} else {
			kinds = append(kinds, conf.WritePort)
		}
	}
	//
	for range mem.Readwriters {
		if masked {
			kinds = append(kinds, conf.MaskedReadWritePort)
		} else {
			kinds = append(kinds, conf.ReadWritePort)
		}
	}
	//
	if masked {
		gran = mem.MaskGran
	}
	//
	return conf.Record{
		Name:     bbName,
		Depth:    mem.Depth,
		Width:    mem.DataType.BitWidth(),
		Ports:    kinds,
		MaskGran: gran,
	}
}
