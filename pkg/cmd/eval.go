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
	"strings"

	"github.com/consensys/go-poly/pkg/poly"
	"github.com/spf13/cobra"
)

// evalCmd represents the eval command
var evalCmd = &cobra.Command{
	Use:   "eval [flags] polynomial [value...]",
	Short: "Evaluate a polynomial.",
	Long: `Evaluate a polynomial.  Values are either bound to letters explicitly
	(e.g. -D x=3), or given positionally in alphabetical order of the letters.
	When some letters remain unbound, the partially evaluated polynomial is
	printed instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(2)
		}
		//
		var (
			p        = readPolynomial(cmd, args[0])
			bindings = GetStringArray(cmd, "define")
		)
		//
		if len(bindings) > 0 && len(args) > 1 {
			fmt.Println("cannot mix positional values with explicit bindings")
			os.Exit(2)
		} else if len(bindings) == 0 {
			evalPositional(p, args[1:])
			return
		}
		//
		env := readBindings(bindings)
		// Check whether fully bound
		for _, l := range p.Letters() {
			if _, ok := env[l]; !ok {
				fmt.Println(p.Substitute(env).String())
				return
			}
		}
		//
		v, err := p.Eval(env)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		fmt.Println(v.RatString())
	},
}

func evalPositional(p *poly.Polynomial, args []string) {
	var values = make([]*big.Rat, len(args))
	//
	for i, arg := range args {
		values[i] = readRational(arg)
	}
	//
	v, err := p.Call(values...)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	fmt.Println(v.RatString())
}

// Read bindings of the form "x=3" into an environment.
func readBindings(bindings []string) map[string]*big.Rat {
	var env = make(map[string]*big.Rat)
	//
	for _, b := range bindings {
		letter, value, ok := strings.Cut(b, "=")
		if !ok || letter == "" {
			fmt.Printf("malformed binding \"%s\" (expected letter=value)\n", b)
			os.Exit(2)
		}
		//
		env[strings.TrimSpace(letter)] = readRational(value)
	}
	//
	return env
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringArrayP("define", "D", []string{}, "bind a letter to a value (e.g. x=3)")
}
