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
	"fmt"

	"github.com/silicore/go-seqmem/pkg/ir"
)

// FlattenType flattens any type to a single unsigned bit vector whose width
// equals the total bit width of the original.  Ground types of width w map
// to UInt<w>.
func FlattenType(datatype ir.Type) ir.UIntType {
	return ir.NewUInt(datatype.BitWidth())
}

// CreateMask produces a type with the same aggregate shape as the given data
// type, but with every ground leaf replaced by a single-bit indicator.  This
// is the structured mask type presented on wrapper write ports.
func CreateMask(datatype ir.Type) ir.Type {
	switch t := datatype.(type) {
	case ir.VectorType:
		return ir.NewVector(CreateMask(t.Element), t.Size)
	case ir.BundleType:
		fields := make([]ir.Field, len(t.Fields))
		//
		for i, f := range t.Fields {
			fields[i] = ir.NewField(f.Name, CreateMask(f.Type))
		}
		//
		return ir.NewBundle(fields...)
	default:
		return ir.Bool()
	}
}

// maskInfo captures the bit layout of a memory's write mask: the widths of
// the maskable data leaves, the declared granularity and whether the packed
// mask must be expanded to the full data width (fill mode).
type maskInfo struct {
	// Widths of the ground leaves of the data type, in element order.
	leaves []uint
	// Declared mask granularity.
	gran uint
	// Whether the packed mask is expanded to one bit per data bit.
	fill bool
}

// newMaskInfo validates the combination of element type and mask granularity,
// computing the resulting mask layout.  Masking over a bundle, or over a
// vector of aggregates, is rejected outright: the number of mask bits cannot
// be unambiguously derived from the macro configuration format for nested
// structures.
func newMaskInfo(datatype ir.Type, gran uint) (maskInfo, error) {
	var info maskInfo
	//
	leaves, err := maskLeaves(datatype)
	if err != nil {
		return info, err
	}
	//
	if len(leaves) == 0 {
		return info, fmt.Errorf("cannot mask empty type %s", datatype.String())
	}
	//
	if gran == 0 {
		return info, fmt.Errorf("mask granularity must be positive")
	}
	//
	if datatype.BitWidth()%gran != 0 {
		return info, fmt.Errorf("mask granularity %d does not evenly divide data width %d", gran, datatype.BitWidth())
	}
	// All leaves share one width by construction.
	leaf := leaves[0]
	//
	switch gran {
	case leaf:
		// One mask bit per element.
		info = maskInfo{leaves, gran, false}
	case 1:
		// One mask bit per data bit.  When elements are already single
		// bits this coincides with the compressed layout.
		info = maskInfo{leaves, gran, leaf > 1}
	default:
		return info, fmt.Errorf("mask granularity %d incompatible with element width %d", gran, leaf)
	}
	//
	return info, nil
}

// MaskWidth returns the number of bits in the packed mask, as presented on
// the blackbox write port.
func (p maskInfo) MaskWidth() uint {
	var width uint
	//
	for _, w := range p.leaves {
		width += w
	}
	//
	return width / p.gran
}

// maskLeaves determines the widths of the ground leaves of a maskable element
// type.  Only ground types and vectors of ground types are maskable.
func maskLeaves(datatype ir.Type) ([]uint, error) {
	switch t := datatype.(type) {
	case ir.BundleType:
		return nil, fmt.Errorf("cannot mask nested aggregate type %s", t.String())
	case ir.VectorType:
		switch t.Element.(type) {
		case ir.VectorType, ir.BundleType:
			return nil, fmt.Errorf("cannot mask nested aggregate type %s", t.String())
		}
		//
		leaves := make([]uint, t.Size)
		//
		for i := range leaves {
			leaves[i] = t.Element.BitWidth()
		}
		//
		return leaves, nil
	default:
		return []uint{t.BitWidth()}, nil
	}
}

// ToBits packs a structured expression of the given type into a single flat
// bit vector.  Within vectors the highest index occupies the most significant
// bits; within bundles the first field does.
func ToBits(expr ir.Expr, datatype ir.Type) ir.Expr {
	switch t := datatype.(type) {
	case ir.VectorType:
		parts := make([]ir.Expr, t.Size)
		//
		for i := uint(0); i < t.Size; i++ {
			parts[i] = ToBits(ir.NewSubIndex(expr, t.Size-1-i), t.Element)
		}
		//
		return ir.NewCat(parts...)
	case ir.BundleType:
		parts := make([]ir.Expr, len(t.Fields))
		//
		for i, f := range t.Fields {
			parts[i] = ToBits(ir.NewSubField(expr, f.Name), f.Type)
		}
		//
		return ir.NewCat(parts...)
	default:
		return expr
	}
}

// FromBits unpacks a flat bit vector into a structured location of the given
// type, producing one connection per ground leaf.  The layout mirrors ToBits
// exactly.
func FromBits(loc ir.Expr, datatype ir.Type, flat ir.Expr) []ir.Stmt {
	stmts, _ := fromBits(loc, datatype, flat, 0)
	return stmts
}

func fromBits(loc ir.Expr, datatype ir.Type, flat ir.Expr, offset uint) ([]ir.Stmt, uint) {
	switch t := datatype.(type) {
	case ir.VectorType:
		var stmts []ir.Stmt
		// Index 0 sits in the least significant bits.
		for i := uint(0); i < t.Size; i++ {
			var nstmts []ir.Stmt
			//
			nstmts, offset = fromBits(ir.NewSubIndex(loc, i), t.Element, flat, offset)
			stmts = append(stmts, nstmts...)
		}
		//
		return stmts, offset
	case ir.BundleType:
		var stmts []ir.Stmt
		// Last field sits in the least significant bits.
		for i := len(t.Fields) - 1; i >= 0; i-- {
			var (
				f      = t.Fields[i]
				nstmts []ir.Stmt
			)
			//
			nstmts, offset = fromBits(ir.NewSubField(loc, f.Name), f.Type, flat, offset)
			stmts = append(stmts, nstmts...)
		}
		//
		return stmts, offset
	default:
		width := t.BitWidth()
		stmt := ir.NewConnect(loc, ir.NewBits(flat, offset+width-1, offset))
		//
		return []ir.Stmt{stmt}, offset + width
	}
}

// MaskBits packs a structured mask expression into the flat layout expected
// on the blackbox write port.  With fill enabled the mask is expanded to the
// same flattened width as the data, one bit per data bit; otherwise the mask
// bits are packed directly, one per maskable group.
func MaskBits(mask ir.Expr, datatype ir.Type, fill bool) ir.Expr {
	switch t := datatype.(type) {
	case ir.VectorType:
		parts := make([]ir.Expr, t.Size)
		//
		for i := uint(0); i < t.Size; i++ {
			parts[i] = MaskBits(ir.NewSubIndex(mask, t.Size-1-i), t.Element, fill)
		}
		//
		return ir.NewCat(parts...)
	default:
		if width := t.BitWidth(); fill && width > 1 {
			return ir.NewRep(mask, width)
		}
		//
		return mask
	}
}
