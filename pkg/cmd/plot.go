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
	"os"

	"github.com/consensys/go-poly/pkg/poly"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PLOT_SAMPLES determines how many points of a polynomial are sampled.
const PLOT_SAMPLES = 500

// plotCmd represents the plot command
var plotCmd = &cobra.Command{
	Use:   "plot [flags] polynomial",
	Short: "Plot the graph of a univariate polynomial.",
	Long: `Plot the graph of a univariate polynomial over a given interval.  The
	image format is determined by the extension of the output file (e.g. png,
	svg or pdf).`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(2)
		}
		//
		var (
			p        = readPolynomial(cmd, args[0])
			from     = GetFloat(cmd, "from")
			to       = GetFloat(cmd, "to")
			filename = GetString(cmd, "output")
			dims     = config.Plot
		)
		//
		if len(p.Letters()) > 1 {
			fmt.Printf("cannot plot polynomial with letters %v\n", p.Letters())
			os.Exit(2)
		} else if from >= to {
			fmt.Println("empty interval")
			os.Exit(2)
		}
		//
		if cmd.Flags().Changed("width") {
			dims.Width = GetFloat(cmd, "width")
		}
		//
		if cmd.Flags().Changed("height") {
			dims.Height = GetFloat(cmd, "height")
		}
		//
		if err := plotPolynomial(p, from, to, dims, filename); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

// Render the graph of a polynomial over the interval [from,to] into a file.
func plotPolynomial(p *poly.Polynomial, from, to float64, dims PlotConfig, filename string) error {
	var (
		plt    = plot.New()
		fn     = plotter.NewFunction(func(x float64) float64 { return p.EvalFloat(x) })
		letter = "x"
	)
	//
	if letters := p.Letters(); len(letters) == 1 {
		letter = letters[0]
	}
	//
	plt.Title.Text = p.String()
	plt.X.Label.Text = letter
	plt.X.Min, plt.X.Max = from, to
	plt.Y.Min, plt.Y.Max = sampleRange(p, from, to)
	//
	fn.XMin, fn.XMax = from, to
	fn.Samples = PLOT_SAMPLES
	//
	plt.Add(plotter.NewGrid(), fn)
	log.Debugf("plotting %s over [%g,%g] into %s", p, from, to, filename)
	//
	return plt.Save(vg.Length(dims.Width)*vg.Point, vg.Length(dims.Height)*vg.Point, filename)
}

// Determine the range of values taken by a polynomial over an interval by
// sampling it.
func sampleRange(p *poly.Polynomial, from, to float64) (float64, float64) {
	var (
		lo   = math.Inf(1)
		hi   = math.Inf(-1)
		step = (to - from) / PLOT_SAMPLES
	)
	//
	for i := 0; i <= PLOT_SAMPLES; i++ {
		y := p.EvalFloat(from + float64(i)*step)
		lo, hi = math.Min(lo, y), math.Max(hi, y)
	}
	// Constant polynomials need some room
	if hi-lo < 1e-9 {
		lo, hi = lo-1, hi+1
	}
	//
	return lo, hi
}

func init() {
	rootCmd.AddCommand(plotCmd)
	plotCmd.Flags().Float64("from", -5, "lower end of the plotted interval")
	plotCmd.Flags().Float64("to", 5, "upper end of the plotted interval")
	plotCmd.Flags().StringP("output", "o", "plot.png", "output file")
	plotCmd.Flags().Float64("width", 0, "width of the plot (in points)")
	plotCmd.Flags().Float64("height", 0, "height of the plot (in points)")
}
