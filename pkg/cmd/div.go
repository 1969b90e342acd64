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

	"github.com/spf13/cobra"
)

// divCmd represents the div command
var divCmd = &cobra.Command{
	Use:   "div [flags] dividend divisor",
	Short: "Divide one polynomial by another.",
	Long: `Divide one polynomial by another, printing the quotient and remainder.
	With --fraction, the result of true division is printed instead.  This is a
	polynomial when the divisor divides exactly and, otherwise, an algebraic
	fraction.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(2)
		}
		//
		var (
			ps         = readPolynomials(cmd, args)
			a, b       = ps[0], ps[1]
			asFraction = GetFlag(cmd, "fraction")
		)
		//
		if asFraction {
			q, err := a.TrueDiv(b)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			//
			fmt.Println(q.String())
			//
			return
		}
		//
		q, r, err := a.DivMod(b)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		fmt.Printf("quotient: %s\n", q.String())
		fmt.Printf("remainder: %s\n", r.String())
	},
}

func init() {
	rootCmd.AddCommand(divCmd)
	divCmd.Flags().Bool("fraction", false, "perform true division")
}
