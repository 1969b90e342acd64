// Copyright Consensys Software Inc.
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

	"github.com/consensys/go-poly/pkg/poly"
	"github.com/consensys/go-poly/pkg/util/termio"
	"github.com/spf13/cobra"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse [flags] polynomial",
	Short: "Parse a polynomial and print its canonical form.",
	Long: `Parse a polynomial and print its canonical form, where similar monomials
	are merged and monomials are ordered by decreasing degree.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(2)
		}
		//
		p := readPolynomial(cmd, args[0])
		//
		if GetFlag(cmd, "table") {
			printMonomials(p, ansiEscapes(cmd))
		} else {
			fmt.Println(p.String())
		}
	},
}

// Print the monomials of a polynomial as a table, one per row.
func printMonomials(p *poly.Polynomial, ansi bool) {
	var (
		table  = termio.NewTablePrinter(3)
		header = termio.BoldAnsiEscape()
	)
	//
	table.AddRow("coefficient", "letters", "degree")
	//
	for col := uint(0); col < 3; col++ {
		table.SetEscape(col, 0, header)
	}
	//
	for _, t := range p.Terms() {
		table.AddRow(t.Coefficient().RatString(), t.Literal(), fmt.Sprintf("%d", t.Degree()))
		//
		if t.IsNegative() {
			table.SetEscape(0, table.Height()-1, termio.NewAnsiEscape().FgColour(termio.TERM_RED))
		}
	}
	//
	table.SetMaxWidths(termio.Width(os.Stdout) / 3)
	table.AnsiEscapes(ansi)
	table.Print(os.Stdout)
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().Bool("table", false, "print the monomials as a table")
}
