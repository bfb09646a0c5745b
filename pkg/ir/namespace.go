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

// Namespace is a registry of names already in use across a circuit.  It
// supports allocating fresh names which are guaranteed not to collide with
// any registered (or previously allocated) name.  Allocation is
// deterministic: colliding bases receive the suffixes _1, _2, ... in order,
// so repeated runs over the same circuit produce identical names.
type Namespace struct {
	used map[string]bool
}

// NewNamespace constructs a namespace containing the given names.
func NewNamespace(names ...string) *Namespace {
	used := make(map[string]bool, len(names))
	//
	for _, n := range names {
		used[n] = true
	}
	//
	return &Namespace{used}
}

// NamespaceOf constructs a namespace seeded with the names of every module in
// the given circuit.
func NamespaceOf(circuit *Circuit) *Namespace {
	ns := NewNamespace()
	//
	for _, m := range circuit.Modules {
		ns.used[m.Name()] = true
	}
	//
	return ns
}

// Contains determines whether the given name is already in use.
func (p *Namespace) Contains(name string) bool {
	return p.used[name]
}

// Allocate returns a fresh name derived from the given base, registering it
// as used.  The base itself is returned when free; otherwise the first free
// name of the form base_N is returned.
func (p *Namespace) Allocate(base string) string {
	name := base
	//
	for i := 1; p.used[name]; i++ {
		name = fmt.Sprintf("%s_%d", base, i)
	}
	//
	p.used[name] = true
	//
	return name
}
