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

// Package macro implements the memory-macro extraction transform.  Every
// abstract memory declaration in a circuit is lowered into an externally
// defined blackbox module with a flattened bit-vector interface, plus a
// generated wrapper module adapting the original structured interface to it.
// Declarations marked as physically identical (via a canonical reference)
// share a single wrapper/blackbox pair across the whole circuit.  The
// transform additionally produces a rename map redirecting annotation
// targets from the removed memories to their replacement instances, and one
// configuration record per extracted macro for the external memory compiler.
package macro

import (
	"github.com/silicore/go-seqmem/pkg/conf"
	"github.com/silicore/go-seqmem/pkg/ir"
	log "github.com/sirupsen/logrus"
)

// Result carries the outputs of a successful transform: the rewritten
// circuit and the rename map to be applied to all subsequent annotation
// targets by the pipeline driver.
type Result struct {
	// Rewritten circuit, with generated modules appended.
	Circuit *ir.Circuit
	// Rename map covering every rewritten memory.
	Renames *ir.RenameMap
}

// Run applies the memory-macro extraction transform to the given circuit,
// appending one configuration record per extracted macro to the given writer
// and flushing it exactly once.  The transform is all-or-nothing: on error
// no output state is produced.
func Run(circuit *ir.Circuit, writer conf.Writer) (Result, error) {
	var (
		ns  = ir.NamespaceOf(circuit)
		ctx = newRewriteContext(ns, writer)
	)
	// Phase one: assign wrapper names to every canonical declaration, so
	// that aliases can resolve regardless of module order.
	ctx.wrappers = assignWrapperNames(circuit, ns)
	// Phase two: rewrite every module.
	modules := make([]ir.Module, 0, len(circuit.Modules))
	//
	for _, m := range circuit.Modules {
		dm, ok := m.(*ir.DefModule)
		if !ok {
			modules = append(modules, m)
			continue
		}
		//
		rewritten, err := ctx.rewriteModule(dm)
		if err != nil {
			return Result{}, err
		}
		//
		modules = append(modules, rewritten)
	}
	// Generated modules follow the rewritten originals, in creation order.
	modules = append(modules, ctx.emitted...)
	//
	renames, err := ctx.buildRenames()
	if err != nil {
		return Result{}, err
	}
	//
	annotations, err := ctx.reconcileAnnotations(circuit.Annotations)
	if err != nil {
		return Result{}, err
	}
	//
	if err := writer.Flush(); err != nil {
		return Result{}, err
	}
	//
	log.Debug("extracted ", len(ctx.boxes), " memory macro(s) from ", len(ctx.rewritten), " declaration(s)")
	//
	result := Result{
		Circuit: &ir.Circuit{
			Main:        circuit.Main,
			Modules:     modules,
			Annotations: annotations,
		},
		Renames: renames,
	}
	//
	return result, nil
}
