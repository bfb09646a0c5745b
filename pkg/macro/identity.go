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
)

// assignWrapperNames performs the discovery pass over the whole circuit,
// allocating one globally-unique wrapper module name for every canonical
// memory declaration (i.e. every declaration without a canonical reference).
// Declarations carrying a canonical reference are resolved against these
// entries later, during rewriting.  This pass must complete over all modules
// before rewriting begins, since a reference may point at a declaration
// visited later in module order.
func assignWrapperNames(circuit *ir.Circuit, ns *ir.Namespace) map[ir.MemRef]string {
	names := make(map[ir.MemRef]string)
	//
	for _, m := range circuit.Modules {
		dm, ok := m.(*ir.DefModule)
		if !ok {
			continue
		}
		//
		forEachMemory(dm.Body, func(mem *ir.DefMemory) {
			if mem.Canonical.IsEmpty() {
				ref := ir.MemRef{Module: dm.ModuleName, Memory: mem.Name}
				names[ref] = ns.Allocate(dm.ModuleName + "_" + mem.Name)
			}
		})
	}
	//
	return names
}

// forEachMemory applies the given function to every memory declared within a
// statement block, recursing through nested blocks.
func forEachMemory(block ir.Block, fn func(*ir.DefMemory)) {
	for _, s := range block.Stmts {
		switch t := s.(type) {
		case ir.Block:
			forEachMemory(t, fn)
		case ir.DefMemory:
			fn(&t)
		}
	}
}
