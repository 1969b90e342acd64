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
	"math/big"
	"os"

	"github.com/consensys/go-poly/pkg/calculus"
	"github.com/consensys/go-poly/pkg/poly"
	"github.com/spf13/cobra"
)

// derCmd represents the der command
var derCmd = &cobra.Command{
	Use:   "der [flags] polynomial",
	Short: "Differentiate a polynomial.",
	Long: `Differentiate a polynomial with respect to a given letter (or, by
	default, its first letter in alphabetical order).  Other letters are treated
	as constants.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(2)
		}
		//
		var (
			p      = readPolynomial(cmd, args[0])
			letter = letterOf(cmd, p)
		)
		//
		d, err := calculus.Derivative(p, letter, GetInt(cmd, "order"))
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		fmt.Println(d.String())
	},
}

// intCmd represents the int command
var intCmd = &cobra.Command{
	Use:   "int [flags] polynomial",
	Short: "Integrate a polynomial.",
	Long: `Integrate a polynomial with respect to a given letter (or, by default,
	its first letter in alphabetical order).  When both --from and --to are
	given, the definite integral of a univariate polynomial is printed instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(2)
		}
		//
		var (
			p      = readPolynomial(cmd, args[0])
			from   = GetString(cmd, "from")
			to     = GetString(cmd, "to")
			consts []*big.Rat
		)
		//
		if from != "" || to != "" {
			printDefiniteIntegral(p, from, to)
			return
		}
		//
		for _, c := range GetStringArray(cmd, "constant") {
			consts = append(consts, readRational(c))
		}
		//
		F, err := calculus.Integral(p, letterOf(cmd, p), GetInt(cmd, "order"), consts...)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		fmt.Println(F.String())
	},
}

func printDefiniteIntegral(p *poly.Polynomial, from, to string) {
	if from == "" || to == "" {
		fmt.Println("definite integral requires both --from and --to")
		os.Exit(2)
	}
	//
	v, err := calculus.DefiniteIntegral(p, readRational(from), readRational(to))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	fmt.Println(v.RatString())
}

// Determine the letter with respect to which an operation applies.
func letterOf(cmd *cobra.Command, p *poly.Polynomial) string {
	if letter := GetString(cmd, "letter"); letter != "" {
		return letter
	} else if letters := p.Letters(); len(letters) > 0 {
		return letters[0]
	}
	//
	return calculus.DEFAULT_LETTER
}

func init() {
	rootCmd.AddCommand(derCmd)
	rootCmd.AddCommand(intCmd)
	derCmd.Flags().StringP("letter", "l", "", "letter to differentiate with respect to")
	derCmd.Flags().IntP("order", "m", 1, "order of the derivative")
	intCmd.Flags().StringP("letter", "l", "", "letter to integrate with respect to")
	intCmd.Flags().IntP("order", "m", 1, "number of times to integrate")
	intCmd.Flags().StringArrayP("constant", "C", []string{}, "integration constant (in order of integration)")
	intCmd.Flags().String("from", "", "lower limit of a definite integral")
	intCmd.Flags().String("to", "", "upper limit of a definite integral")
}
