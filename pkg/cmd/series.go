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
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/consensys/go-poly/pkg/series"
	"github.com/spf13/cobra"
)

// seriesCmd represents the series command
var seriesCmd = &cobra.Command{
	Use:   "series [flags] name n",
	Short: "Generate the n-th element of a well-known polynomial sequence.",
	Long: fmt.Sprintf(`Generate the n-th element of a well-known polynomial sequence.
	Supported sequences are: %s.`, strings.Join(seriesNames(), ", ")),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(2)
		}
		//
		gen, ok := series.Generators[args[0]]
		if !ok {
			fmt.Printf("unknown sequence \"%s\" (expected one of %s)\n", args[0], strings.Join(seriesNames(), ", "))
			os.Exit(2)
		}
		//
		n, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Printf("invalid index \"%s\"\n", args[1])
			os.Exit(2)
		}
		//
		first := n
		if GetFlag(cmd, "all") {
			first = 0
		}
		//
		for i := first; i <= n; i++ {
			p, err := gen(i)
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			if first != n {
				fmt.Printf("%d: ", i)
			}
			//
			fmt.Println(p.String())
		}
	},
}

func seriesNames() []string {
	return slices.Sorted(maps.Keys(series.Generators))
}

func init() {
	rootCmd.AddCommand(seriesCmd)
	seriesCmd.Flags().Bool("all", false, "print all elements up to n")
}
