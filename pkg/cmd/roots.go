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
	"math"
	"math/big"
	"os"
	"slices"
	"strings"

	"github.com/consensys/go-poly/pkg/poly"
	"github.com/consensys/go-poly/pkg/roots"
	"github.com/consensys/go-poly/pkg/util"
	"github.com/spf13/cobra"
)

// ROOT_METHODS lists the supported root finding methods.
var ROOT_METHODS = []string{"ruffini", "zero", "quadratic", "newton", "halley", "bisection", "durand-kerner", "eigen"}

// rootsCmd represents the roots command
var rootsCmd = &cobra.Command{
	Use:   "roots [flags] polynomial",
	Short: "Find the roots of a univariate polynomial.",
	Long: `Find the roots of a univariate polynomial.  The exact methods (ruffini,
	zero) give rational roots, whilst the remaining methods give floating point
	approximations.  The iterative methods (newton, halley, bisection,
	durand-kerner) are controlled by --epsilon and --iterations.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(2)
		}
		//
		var (
			p      = readPolynomial(cmd, args[0])
			method = GetString(cmd, "method")
			cfg    = rootsConfig(cmd)
			stats  = util.NewPerfStats()
		)
		//
		if !slices.Contains(ROOT_METHODS, method) {
			fmt.Printf("unknown method \"%s\" (expected one of %s)\n", method, strings.Join(ROOT_METHODS, ", "))
			os.Exit(2)
		}
		//
		err := findRoots(cmd, p, method, cfg)
		stats.Log(method)
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

// Determine the root finder configuration, where flags given explicitly
// override the configuration file.
func rootsConfig(cmd *cobra.Command) roots.Config {
	var cfg = config.Roots
	//
	if cmd.Flags().Changed("epsilon") {
		cfg.Epsilon = GetFloat(cmd, "epsilon")
	}
	//
	if cmd.Flags().Changed("iterations") {
		cfg.MaxIterations = GetUint(cmd, "iterations")
	}
	//
	return cfg
}

func findRoots(cmd *cobra.Command, p *poly.Polynomial, method string, cfg roots.Config) error {
	var start = complex(GetFloat(cmd, "start"), GetFloat(cmd, "start-imag"))
	//
	switch method {
	case "ruffini":
		rs, err := roots.Ruffini(p)
		printRationals(rs...)
		//
		return err
	case "zero":
		r, err := roots.Zero(p)
		if err == nil {
			printRationals(r)
		}
		//
		return err
	case "quadratic":
		rs, err := roots.Quadratic(p)
		printComplexes(rs...)
		//
		return err
	case "newton":
		r, err := roots.Newton(p, start, cfg)
		if err == nil {
			printComplexes(r)
		}
		//
		return err
	case "halley":
		r, err := roots.Halley(p, start, cfg)
		if err == nil {
			printComplexes(r)
		}
		//
		return err
	case "bisection":
		r, err := roots.Bisection(p, GetFloat(cmd, "from"), GetFloat(cmd, "to"), cfg)
		if err == nil {
			fmt.Println(r)
		}
		//
		return err
	case "durand-kerner":
		rs, err := roots.DurandKerner(p, cfg)
		printComplexes(rs...)
		//
		return err
	default:
		rs, err := roots.Eigen(p)
		printComplexes(rs...)
		//
		return err
	}
}

func printRationals(rs ...*big.Rat) {
	for _, r := range rs {
		fmt.Println(r.RatString())
	}
}

func printComplexes(zs ...complex128) {
	for _, z := range zs {
		fmt.Println(formatComplex(z))
	}
}

// Format a complex number, omitting its imaginary part when this is
// negligible.
func formatComplex(z complex128) string {
	var (
		re = real(z)
		im = imag(z)
	)
	//
	switch {
	case math.Abs(im) < roots.SORT_TOLERANCE:
		return fmt.Sprintf("%g", re)
	case im < 0:
		return fmt.Sprintf("%g - %gi", re, -im)
	default:
		return fmt.Sprintf("%g + %gi", re, im)
	}
}

func init() {
	rootCmd.AddCommand(rootsCmd)
	rootsCmd.Flags().String("method", "ruffini", fmt.Sprintf("root finding method (%s)", strings.Join(ROOT_METHODS, ", ")))
	rootsCmd.Flags().Float64("start", 1, "starting point (real part) for newton and halley")
	rootsCmd.Flags().Float64("start-imag", 0, "starting point (imaginary part) for newton and halley")
	rootsCmd.Flags().Float64("from", -1, "lower end of the interval for bisection")
	rootsCmd.Flags().Float64("to", 1, "upper end of the interval for bisection")
	rootsCmd.Flags().Float64("epsilon", 0, "tolerance for the iterative methods")
	rootsCmd.Flags().Uint("iterations", 0, "maximum number of iterations for the iterative methods")
}
