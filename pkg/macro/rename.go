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
	"github.com/silicore/go-seqmem/pkg/ir"
	"github.com/silicore/go-seqmem/pkg/util"
)

// buildRenames constructs the structural rename map covering every rewritten
// memory.  Each original (module, memory) target is redirected to the
// two-level path through the wrapper instance (which keeps the memory's
// name) down to the blackbox instance within the wrapper.  An entry is
// produced for every rewritten memory without exception; any annotation
// still naming the old target after this pass would otherwise silently fail
// to resolve.
func (p *rewriteContext) buildRenames() (*ir.RenameMap, error) {
	renames := ir.NewRenameMap()
	//
	for _, ref := range p.rewritten {
		wrapper, ok := p.wrappers[ref]
		if !ok {
			return nil, internalErrorf("rewritten memory %s missing from identity map", ref.String())
		}
		//
		bb, ok := p.blackboxes[wrapper]
		if !ok {
			return nil, internalErrorf("wrapper \"%s\" missing from blackbox map", wrapper)
		}
		//
		from := util.NewPath(ref.Module, ref.Memory)
		to := util.NewPath(ref.Module, ref.Memory, bb.Left)
		//
		renames.Rename(from, to)
	}
	//
	return renames, nil
}

// reconcileAnnotations redistributes the (at most one) pin annotation of the
// input circuit onto the generated blackboxes: every blackbox receives one
// sink annotation per pin, prepended to the input annotation sequence which
// otherwise passes through unchanged.  More than one pin annotation
// indicates an upstream pass malfunction and aborts the transform.
func (p *rewriteContext) reconcileAnnotations(annotations []ir.Annotation) ([]ir.Annotation, error) {
	var pins util.Option[ir.PinAnnotation]
	//
	for _, a := range annotations {
		if pa, ok := a.(ir.PinAnnotation); ok {
			if pins.HasValue() {
				return nil, internalErrorf("more than one pin annotation present")
			}
			//
			pins = util.Some(pa)
		}
	}
	//
	var result []ir.Annotation
	//
	if pins.HasValue() {
		for _, box := range p.boxes {
			for _, pin := range pins.Unwrap().Pins {
				result = append(result, ir.NewSinkAnnotation(box, pin))
			}
		}
	}
	//
	return append(result, annotations...), nil
}
