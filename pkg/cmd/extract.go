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

	"github.com/silicore/go-seqmem/pkg/conf"
	"github.com/silicore/go-seqmem/pkg/macro"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [flags] circuit_file",
	Short: "extract memory macros from a circuit.",
	Long: `Extract every abstract memory within the given circuit into a wrapper /
	 blackbox module pair, writing the rewritten circuit, the macro configuration
	 for the external memory compiler, and the rename map for downstream
	 annotation consumers.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		var (
			output   = GetString(cmd, "output")
			confFile = GetString(cmd, "conf")
			renames  = GetString(cmd, "renames")
			circuit  = readCircuitFile(args[0])
		)
		//
		confOut, err := os.Create(confFile)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		defer confOut.Close()
		// Run the transform
		result, err := macro.Run(circuit, conf.NewTextWriter(confOut))
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		// Write rewritten circuit
		writeCircuitFile(output, result.Circuit)
		// Write rename report (if requested)
		if renames != "" {
			writeRenameFile(renames, result)
		}
		//
		log.Info("extracted circuit written to ", output)
	},
}

// Write the rename map as a textual report, one redirection per line.
func writeRenameFile(filename string, result macro.Result) {
	file, err := os.Create(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	defer file.Close()
	//
	for _, from := range result.Renames.Sources() {
		tos, _ := result.Renames.Get(from)
		//
		for _, to := range tos {
			fmt.Fprintf(file, "%s -> %s\n", from.String(), to.String())
		}
	}
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringP("output", "o", "a.out.sir", "specify output circuit file.")
	extractCmd.Flags().StringP("conf", "c", "a.conf", "specify macro configuration file.")
	extractCmd.Flags().StringP("renames", "r", "", "write rename report to given file.")
}
