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
	"github.com/silicore/go-seqmem/pkg/util"
)

// RenameMap records how component paths were renamed by a transform, so that
// annotation targets naming now-removed entities can be redirected to their
// replacements.  The map is append-only: entries are never removed or
// overwritten once recorded.
type RenameMap struct {
	// Insertion order of source paths, for deterministic iteration.
	order []util.Path
	// Mapping from source path (as string) to replacement paths.
	renames map[string][]util.Path
}

// NewRenameMap constructs an empty rename map.
func NewRenameMap() *RenameMap {
	return &RenameMap{nil, make(map[string][]util.Path)}
}

// Rename records that the given source path is replaced by one or more
// destination paths.
func (p *RenameMap) Rename(from util.Path, tos ...util.Path) {
	key := from.String()
	//
	if _, ok := p.renames[key]; !ok {
		p.order = append(p.order, from)
	}
	//
	p.renames[key] = append(p.renames[key], tos...)
}

// Get returns the replacement paths for the given source path, or false if
// the path was not renamed.
func (p *RenameMap) Get(from util.Path) ([]util.Path, bool) {
	tos, ok := p.renames[from.String()]
	return tos, ok
}

// Size returns the number of distinct source paths renamed.
func (p *RenameMap) Size() uint {
	return uint(len(p.order))
}

// Sources returns all renamed source paths, in insertion order.
func (p *RenameMap) Sources() []util.Path {
	return p.order
}
