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

// Package binfile provides a versioned binary container for circuits, so
// that pipeline stages can be run as separate processes.
package binfile

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"fmt"
	"io"

	"github.com/silicore/go-seqmem/pkg/ir"
)

// SEQMEMIR is the identifier found at the head of every circuit binary file.
var SEQMEMIR = [8]byte{'S', 'E', 'Q', 'M', 'E', 'M', 'I', 'R'}

// BINFILE_MAJOR_VERSION indicates the major version of the binary file
// format.  Files with a different major version are rejected.
const BINFILE_MAJOR_VERSION uint16 = 1

// BINFILE_MINOR_VERSION indicates the minor version of the binary file
// format.
const BINFILE_MINOR_VERSION uint16 = 0

// Header provides a structured header for the binary file format,
// supporting versioning of the payload encoding.
type Header struct {
	Identifier   [8]byte
	MajorVersion uint16
	MinorVersion uint16
}

// MarshalBinary converts the header into a sequence of bytes.
func (p *Header) MarshalBinary() ([]byte, error) {
	var (
		buffer       bytes.Buffer
		versionBytes [2]byte
	)
	// Write identifier
	buffer.Write(p.Identifier[:])
	// Write major version
	binary.BigEndian.PutUint16(versionBytes[:], p.MajorVersion)
	buffer.Write(versionBytes[:])
	// Write minor version
	binary.BigEndian.PutUint16(versionBytes[:], p.MinorVersion)
	buffer.Write(versionBytes[:])
	// Done
	return buffer.Bytes(), nil
}

// UnmarshalBinary initialises this header from the given reader.  This
// should match exactly the encoding above.
func (p *Header) UnmarshalBinary(reader io.Reader) error {
	var versionBytes [4]byte
	// Read identifier
	if _, err := io.ReadFull(reader, p.Identifier[:]); err != nil {
		return errors.New("malformed circuit file")
	}
	// Read versions
	if _, err := io.ReadFull(reader, versionBytes[:]); err != nil {
		return errors.New("malformed circuit file")
	}
	//
	p.MajorVersion = binary.BigEndian.Uint16(versionBytes[0:2])
	p.MinorVersion = binary.BigEndian.Uint16(versionBytes[2:4])
	//
	return nil
}

// Encode writes the given circuit to the given output, prefixed by the
// format header.
func Encode(writer io.Writer, circuit *ir.Circuit) error {
	header := Header{SEQMEMIR, BINFILE_MAJOR_VERSION, BINFILE_MINOR_VERSION}
	//
	headerBytes, err := header.MarshalBinary()
	if err != nil {
		return err
	}
	//
	if _, err := writer.Write(headerBytes); err != nil {
		return err
	}
	//
	return gob.NewEncoder(writer).Encode(circuit)
}

// Decode reads a circuit from the given input, validating the format header.
func Decode(reader io.Reader) (*ir.Circuit, error) {
	var (
		header  Header
		circuit ir.Circuit
	)
	//
	if err := header.UnmarshalBinary(reader); err != nil {
		return nil, err
	}
	//
	if header.Identifier != SEQMEMIR {
		return nil, errors.New("not a circuit file (invalid identifier)")
	}
	//
	if header.MajorVersion != BINFILE_MAJOR_VERSION {
		return nil, fmt.Errorf("unsupported circuit file version %d.%d", header.MajorVersion, header.MinorVersion)
	}
	//
	if err := gob.NewDecoder(reader).Decode(&circuit); err != nil {
		return nil, err
	}
	//
	return &circuit, nil
}

// Register the concrete types hiding behind the IR's interfaces, so that
// circuits can pass through gob intact.
func init() {
	// Types
	gob.Register(ir.UIntType{})
	gob.Register(ir.SIntType{})
	gob.Register(ir.ClockType{})
	gob.Register(ir.VectorType{})
	gob.Register(ir.BundleType{})
	// Expressions
	gob.Register(ir.Reference{})
	gob.Register(ir.SubField{})
	gob.Register(ir.SubIndex{})
	gob.Register(ir.Bits{})
	gob.Register(ir.Cat{})
	gob.Register(ir.Rep{})
	gob.Register(ir.Empty{})
	// Statements
	gob.Register(ir.Block{})
	gob.Register(ir.Connect{})
	gob.Register(ir.DefInstance{})
	gob.Register(ir.DefMemory{})
	// Modules
	gob.Register(&ir.DefModule{})
	gob.Register(&ir.ExtModule{})
	// Annotations
	gob.Register(ir.PinAnnotation{})
	gob.Register(ir.SinkAnnotation{})
}
