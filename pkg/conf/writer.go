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

// Package conf records the physical shape of every extracted memory macro in
// the line-oriented configuration format consumed by external memory
// compilers.
package conf

import (
	"fmt"
	"io"
	"strings"

	"github.com/silicore/go-seqmem/pkg/util"
)

// Port kind tokens, as they appear in the configuration format.  Masked
// variants apply only to memories declaring a mask granularity.
const (
	// ReadPort is a read-only port.
	ReadPort = "read"
	// WritePort is an unmasked write-only port.
	WritePort = "write"
	// MaskedWritePort is a masked write-only port.
	MaskedWritePort = "mwrite"
	// ReadWritePort is an unmasked combined read-write port.
	ReadWritePort = "rw"
	// MaskedReadWritePort is a masked combined read-write port.
	MaskedReadWritePort = "mrw"
)

// Record describes the physical shape of one extracted memory macro.
type Record struct {
	// Name of the macro (the blackbox module name).
	Name string
	// Number of elements.
	Depth uint64
	// Flattened width of each element, in bits.
	Width uint
	// Kinds of the macro's ports, in port order.
	Ports []string
	// Mask granularity, when writes are masked.
	MaskGran util.Option[uint]
}

// Return the configuration line for this record.
func (p Record) String() string {
	line := fmt.Sprintf("name %s depth %d width %d ports %s", p.Name, p.Depth, p.Width, strings.Join(p.Ports, ","))
	//
	if p.MaskGran.HasValue() {
		line = fmt.Sprintf("%s mask_gran %d", line, p.MaskGran.Unwrap())
	}
	//
	return line
}

// Writer accumulates macro configuration records and serialises them in one
// go.  Append never fails; Flush is expected to be called exactly once per
// transform invocation (further calls have no effect).
type Writer interface {
	// Append records one extracted macro.
	Append(record Record)
	// Flush serialises all accumulated records.
	Flush() error
}

// TextWriter is the standard Writer implementation, rendering one line per
// record to an underlying io.Writer.
type TextWriter struct {
	out     io.Writer
	records []Record
	flushed bool
}

// NewTextWriter constructs a text writer targeting the given output.
func NewTextWriter(out io.Writer) *TextWriter {
	return &TextWriter{out: out}
}

// Append implementation for the Writer interface.
func (p *TextWriter) Append(record Record) {
	p.records = append(p.records, record)
}

// Flush implementation for the Writer interface.
func (p *TextWriter) Flush() error {
	if p.flushed {
		return nil
	}
	//
	p.flushed = true
	//
	for _, r := range p.records {
		if _, err := fmt.Fprintln(p.out, r.String()); err != nil {
			return err
		}
	}
	//
	return nil
}
