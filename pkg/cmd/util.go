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
package cmd

import (
	"fmt"
	"os"

	"github.com/silicore/go-seqmem/pkg/binfile"
	"github.com/silicore/go-seqmem/pkg/ir"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Read a circuit from a binary circuit file.
func readCircuitFile(filename string) *ir.Circuit {
	file, err := os.Open(filename)
	if err == nil {
		defer file.Close()
		//
		var circuit *ir.Circuit
		//
		if circuit, err = binfile.Decode(file); err == nil {
			return circuit
		}
	}
	// Handle error
	fmt.Println(err)
	os.Exit(2)
	// unreachable
	return nil
}

// Write a circuit to a binary circuit file.
func writeCircuitFile(filename string, circuit *ir.Circuit) {
	file, err := os.Create(filename)
	if err == nil {
		defer file.Close()
		//
		err = binfile.Encode(file, circuit)
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
}
