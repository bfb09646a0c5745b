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

// Expr represents an expression over the signals of a module.  Only the
// structural forms required for memory extraction are provided: references,
// selections and the bit-manipulation primitives used for packing aggregate
// values into (and out of) flat bit vectors.
type Expr interface {
	// String returns a human-readable rendering of this expression.
	String() string
}

// Reference is a reference to a named port, instance or wire.
type Reference struct {
	Name string
}

// NewReference constructs a reference to the given name.
func NewReference(name string) Reference {
	return Reference{name}
}

func (p Reference) String() string {
	return p.Name
}

// SubField selects a named field from a bundle-typed expression.
type SubField struct {
	Expr Expr
	Name string
}

// NewSubField constructs a field selection on the given expression.
func NewSubField(expr Expr, name string) SubField {
	return SubField{expr, name}
}

func (p SubField) String() string {
	return fmt.Sprintf("%s.%s", p.Expr.String(), p.Name)
}

// SubIndex selects a single element from a vector-typed expression.
type SubIndex struct {
	Expr  Expr
	Index uint
}

// NewSubIndex constructs an element selection on the given expression.
func NewSubIndex(expr Expr, index uint) SubIndex {
	return SubIndex{expr, index}
}

func (p SubIndex) String() string {
	return fmt.Sprintf("%s[%d]", p.Expr.String(), p.Index)
}

// Bits extracts the (inclusive) bit range [High:Low] from an expression.
type Bits struct {
	Expr Expr
	High uint
	Low  uint
}

// NewBits constructs a bit-range extraction on the given expression.
func NewBits(expr Expr, high uint, low uint) Bits {
	return Bits{expr, high, low}
}

func (p Bits) String() string {
	return fmt.Sprintf("bits(%s, %d, %d)", p.Expr.String(), p.High, p.Low)
}

// Cat concatenates two expressions, with the left operand occupying the most
// significant bits of the result.
type Cat struct {
	Lhs Expr
	Rhs Expr
}

// NewCat concatenates the given expressions, folding left-to-right such that
// the first expression occupies the most significant bits.  At least one
// expression must be given.
func NewCat(exprs ...Expr) Expr {
	if len(exprs) == 0 {
		panic("cannot concatenate zero expressions")
	}
	//
	result := exprs[0]
	//
	for _, e := range exprs[1:] {
		result = Cat{result, e}
	}
	//
	return result
}

func (p Cat) String() string {
	return fmt.Sprintf("cat(%s, %s)", p.Lhs.String(), p.Rhs.String())
}

// Rep replicates an expression a fixed number of times, concatenating the
// copies together.
type Rep struct {
	Expr  Expr
	Count uint
}

// NewRep constructs a replication of the given expression.
func NewRep(expr Expr, count uint) Rep {
	return Rep{expr, count}
}

func (p Rep) String() string {
	return fmt.Sprintf("rep(%s, %d)", p.Expr.String(), p.Count)
}

// Empty is the distinguished empty expression.  It stands for a signal which
// is deliberately left unconnected, such as the mask field of an unmasked
// write port.
type Empty struct{}

func (p Empty) String() string {
	return ""
}

// IsEmpty determines whether the given expression is the distinguished empty
// expression.
func IsEmpty(expr Expr) bool {
	_, ok := expr.(Empty)
	return ok
}
