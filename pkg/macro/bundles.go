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
	"math/bits"

	"github.com/silicore/go-seqmem/pkg/ir"
	"github.com/silicore/go-seqmem/pkg/util"
)

// memPorts holds the two port-level views of a single memory: the structured
// view presented by the wrapper module and the flattened view presented by
// the blackbox.  Both carry exactly the same port and field names.
type memPorts struct {
	// Ports of the wrapper module, with aggregate data and mask types.
	structured []ir.Port
	// Ports of the blackbox module, with flattened data and mask types.
	flattened []ir.Port
	// Mask layout, present only when the memory declares a granularity.
	mask util.Option[maskInfo]
}

// buildMemPorts constructs both port views for the given memory declaration.
// Masking over an unsupported element shape surfaces here as an error.
func buildMemPorts(mem *ir.DefMemory) (memPorts, error) {
	var (
		ports memPorts
		aw    = addrWidth(mem.Depth)
	)
	//
	if mem.MaskGran.HasValue() {
		info, err := newMaskInfo(mem.DataType, mem.MaskGran.Unwrap())
		if err != nil {
			return ports, err
		}
		//
		ports.mask = util.Some(info)
	}
	//
	for _, r := range mem.Readers {
		ports.structured = append(ports.structured, ir.NewPort(r, ir.Input, readerType(mem.DataType, aw)))
		ports.flattened = append(ports.flattened, ir.NewPort(r, ir.Input, readerType(FlattenType(mem.DataType), aw)))
	}
	//
	for _, w := range mem.Writers {
		ports.structured = append(ports.structured, ir.NewPort(w, ir.Input, writerType(mem.DataType, structuredMask(mem, ports), aw)))
		ports.flattened = append(ports.flattened, ir.NewPort(w, ir.Input, writerType(FlattenType(mem.DataType), flattenedMask(ports), aw)))
	}
	//
	for _, rw := range mem.Readwriters {
		ports.structured = append(ports.structured, ir.NewPort(rw, ir.Input, readWriterType(mem.DataType, structuredMask(mem, ports), aw)))
		ports.flattened = append(ports.flattened, ir.NewPort(rw, ir.Input, readWriterType(FlattenType(mem.DataType), flattenedMask(ports), aw)))
	}
	//
	return ports, nil
}

// structuredMask determines the structured mask type for a memory, or an
// empty option when writes are unmasked.
func structuredMask(mem *ir.DefMemory, ports memPorts) util.Option[ir.Type] {
	if ports.mask.HasValue() {
		return util.Some(CreateMask(mem.DataType))
	}
	//
	return util.None[ir.Type]()
}

// flattenedMask determines the flattened mask type for a memory, or an empty
// option when writes are unmasked.
func flattenedMask(ports memPorts) util.Option[ir.Type] {
	if ports.mask.HasValue() {
		return util.Some[ir.Type](ir.NewUInt(ports.mask.Unwrap().MaskWidth()))
	}
	//
	return util.None[ir.Type]()
}

// readerType constructs the bundle shape of a read port.
func readerType(data ir.Type, aw uint) ir.BundleType {
	return ir.NewBundle(
		ir.NewField("clk", ir.ClockType{}),
		ir.NewField("en", ir.Bool()),
		ir.NewField("addr", ir.NewUInt(aw)),
		ir.NewFlippedField("data", data),
	)
}

// writerType constructs the bundle shape of a write port.
func writerType(data ir.Type, mask util.Option[ir.Type], aw uint) ir.BundleType {
	fields := []ir.Field{
		ir.NewField("clk", ir.ClockType{}),
		ir.NewField("en", ir.Bool()),
		ir.NewField("addr", ir.NewUInt(aw)),
		ir.NewField("data", data),
	}
	//
	if mask.HasValue() {
		fields = append(fields, ir.NewField("mask", mask.Unwrap()))
	}
	//
	return ir.NewBundle(fields...)
}

// readWriterType constructs the bundle shape of a combined read-write port.
func readWriterType(data ir.Type, mask util.Option[ir.Type], aw uint) ir.BundleType {
	fields := []ir.Field{
		ir.NewField("clk", ir.ClockType{}),
		ir.NewField("en", ir.Bool()),
		ir.NewField("addr", ir.NewUInt(aw)),
		ir.NewField("wmode", ir.Bool()),
		ir.NewField("wdata", data),
		ir.NewFlippedField("rdata", data),
	}
	//
	if mask.HasValue() {
		fields = append(fields, ir.NewField("wmask", mask.Unwrap()))
	}
	//
	return ir.NewBundle(fields...)
}

// addrWidth computes the number of address bits required for the given
// depth, with a minimum of one.
func addrWidth(depth uint64) uint {
	if depth <= 2 {
		return 1
	}
	//
	return uint(bits.Len64(depth - 1))
}
