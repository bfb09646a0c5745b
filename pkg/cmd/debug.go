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

	"github.com/silicore/go-seqmem/pkg/ir"
	"github.com/spf13/cobra"
)

var debugCmd = &cobra.Command{
	Use:   "debug [flags] circuit_file",
	Short: "print a circuit file in human-readable form.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			stmts   = GetFlag(cmd, "stmts")
			circuit = readCircuitFile(args[0])
		)
		//
		fmt.Printf("circuit %s:\n", circuit.Main)
		//
		for _, m := range circuit.Modules {
			printModule(m, stmts)
		}
		//
		for _, a := range circuit.Annotations {
			fmt.Printf("annotation %s\n", a.String())
		}
	},
}

func printModule(m ir.Module, stmts bool) {
	if m.IsExternal() {
		fmt.Printf("  extmodule %s:\n", m.Name())
	} else {
		fmt.Printf("  module %s:\n", m.Name())
	}
	//
	for _, p := range m.Ports() {
		fmt.Printf("    %s\n", p.String())
	}
	//
	dm, ok := m.(*ir.DefModule)
	if !ok || !stmts {
		return
	}
	//
	for _, s := range dm.Body.Stmts {
		fmt.Printf("    %s\n", s.String())
	}
}

func init() {
	rootCmd.AddCommand(debugCmd)
	debugCmd.Flags().Bool("stmts", false, "include module statements")
}
