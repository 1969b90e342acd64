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
	"strconv"

	"github.com/consensys/go-poly/pkg/poly"
	"github.com/consensys/go-poly/pkg/util"
	"github.com/spf13/cobra"
)

// Construct a command which folds a binary operator over two or more
// polynomials (e.g. "add a b c" gives a + b + c).
func arithCommand(name string, short string, op func(*poly.Polynomial, *poly.Polynomial) *poly.Polynomial) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s [flags] polynomial polynomial...", name),
		Short: short,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 2 {
				fmt.Println(cmd.UsageString())
				os.Exit(2)
			}
			//
			var (
				stats = util.NewPerfStats()
				ps    = readPolynomials(cmd, args)
				res   = ps[0]
			)
			//
			for _, p := range ps[1:] {
				res = op(res, p)
			}
			//
			stats.Log(name)
			fmt.Println(res.String())
		},
	}
}

// powCmd represents the pow command
var powCmd = &cobra.Command{
	Use:   "pow [flags] polynomial exponent",
	Short: "Raise a polynomial to a non-negative integer power.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(2)
		}
		//
		p := readPolynomial(cmd, args[0])
		//
		n, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			fmt.Printf("invalid exponent \"%s\"\n", args[1])
			os.Exit(2)
		}
		//
		stats := util.NewPerfStats()
		res := p.Pow(uint(n))
		stats.Log("pow")
		//
		fmt.Println(res.String())
	},
}

func init() {
	rootCmd.AddCommand(arithCommand("add", "Add polynomials together.", (*poly.Polynomial).Add))
	rootCmd.AddCommand(arithCommand("sub", "Subtract polynomials from the first.", (*poly.Polynomial).Sub))
	rootCmd.AddCommand(arithCommand("mul", "Multiply polynomials together.", (*poly.Polynomial).Mul))
	rootCmd.AddCommand(powCmd)
}
