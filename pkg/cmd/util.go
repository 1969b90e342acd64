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
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/consensys/go-poly/pkg/poly"
	"github.com/consensys/go-poly/pkg/util/termio"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetInt gets an expected int, or exits if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetUint gets an expected unsigned int, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetFloat gets an expected float, or exits if an error arises.
func GetFloat(cmd *cobra.Command, flag string) float64 {
	r, err := cmd.Flags().GetFloat64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetStringArray gets an expected string array, or exits if an error arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// Parse a polynomial given on the command line, reporting a syntax error with
// appropriate highlighting (and exiting) if this fails.
func readPolynomial(cmd *cobra.Command, text string) *poly.Polynomial {
	p, err := poly.Parse(text)
	if err == nil {
		return p
	}
	//
	var perr *poly.ParseError
	//
	if errors.As(err, &perr) {
		printSyntaxError(os.Stdout, perr, ansiEscapes(cmd))
	} else {
		fmt.Println(err)
	}
	//
	os.Exit(2)
	// unreachable
	return nil
}

// Parse all polynomials given on the command line.
func readPolynomials(cmd *cobra.Command, args []string) []*poly.Polynomial {
	var ps = make([]*poly.Polynomial, len(args))
	//
	for i, arg := range args {
		ps[i] = readPolynomial(cmd, arg)
	}
	//
	return ps
}

// Parse a rational number (e.g. "3", "-1/2" or "0.25") given on the command
// line, or exit if this fails.
func readRational(text string) *big.Rat {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(text))
	if !ok {
		fmt.Printf("invalid number \"%s\"\n", text)
		os.Exit(2)
	}
	//
	return r
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(out io.Writer, err *poly.ParseError, ansi bool) {
	var (
		text              = []rune(err.Text())
		span              = err.Span()
		line, offset, num = findEnclosingLine(span.Start(), text)
		start, end        = span.Start() - offset, span.End() - offset
		highlight         = strings.Repeat("^", max(1, end-start))
	)
	// Print error + line number
	fmt.Fprintf(out, "%d:%d: %s\n", num, start+1, err.Message())
	// Highlight offending characters (if applicable)
	if ansi && end > start && end <= len(line) {
		escape := termio.BoldAnsiEscape().FgColour(termio.TERM_RED)
		fmt.Fprintln(out, string(line[:start])+escape.Wrap(string(line[start:end]))+string(line[end:]))
		fmt.Fprint(out, strings.Repeat(" ", start))
		fmt.Fprintln(out, escape.Wrap(highlight))
		//
		return
	}
	// Print line
	fmt.Fprintln(out, string(line))
	// Print indent (todo: account for tabs)
	fmt.Fprint(out, strings.Repeat(" ", start))
	// Print highlight
	fmt.Fprintln(out, highlight)
}

// Determine the enclosing line for the given index in some text, along with
// the offset of its first character and its line number.
func findEnclosingLine(index int, text []rune) ([]rune, int, int) {
	num := 1
	start := 0
	// Handle case where we've reached the end-of-file unexpectedly.  This
	// essentially means the error is reported at the end of the last physical
	// line.
	if index >= len(text) {
		index = len(text) - 1
	}
	// Find the line.
	for i := 0; i < index; i++ {
		if text[i] == '\n' {
			num++
			start = i + 1
		}
	}
	//
	return text[start:findEndOfLine(max(index, start), text)], start, num
}

// Find the end of the enclosing line
func findEndOfLine(index int, text []rune) int {
	for i := index; i < len(text); i++ {
		if text[i] == '\n' {
			return i
		}
	}
	// No end in sight!
	return len(text)
}
