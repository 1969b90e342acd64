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
package poly_test

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/go-poly/pkg/poly"
)

// ExampleParse shows that parsed polynomials are kept in canonical form.
func ExampleParse() {
	p, _ := poly.Parse("4xy + 2x^3 - 1 + 1")
	fmt.Println(p)
	fmt.Println(p.Len(), p.Degree(), p.Letters())
	// Output:
	// 2x^3 + 4xy
	// 2 3 [x y]
}

// ExamplePolynomial_DivMod divides 3x^3 + 2x^2 + x + 3 by 2x + 4.
func ExamplePolynomial_DivMod() {
	a := poly.MustParse("3x^3 + 2x^2 + x + 3")
	b := poly.MustParse("2x + 4")
	//
	q, r, _ := a.DivMod(b)
	fmt.Println(q)
	fmt.Println(r)
	// Output:
	// 3/2x^2 - 2x + 9/2
	// -15
}

// ExamplePolynomial_TrueDiv falls back to an algebraic fraction when the
// divisor has a greater degree.
func ExamplePolynomial_TrueDiv() {
	a := poly.MustParse("x")
	b := poly.MustParse("x^2 + 1")
	//
	_, _, err := a.DivMod(b)
	fmt.Println(errors.Is(err, poly.ErrNotDivisible))
	//
	q, _ := a.TrueDiv(b)
	fmt.Println(q.IsPolynomial())
	fmt.Println(q)
	// Output:
	// true
	// false
	// (x)/(x^2 + 1)
}

// ExamplePolynomial_Call binds values positionally to the sorted letters.
func ExamplePolynomial_Call() {
	p := poly.MustParse("3xy + x^2 - 4")
	v, _ := p.Call(big.NewRat(2, 1), big.NewRat(3, 1))
	fmt.Println(v.RatString())
	// Output:
	// 18
}

// ExampleParseError shows how to recover the position of a syntax error.
func ExampleParseError() {
	var perr *poly.ParseError
	//
	_, err := poly.Parse("3x^ + 1")
	if errors.As(err, &perr) {
		fmt.Println(perr.Span().Start(), perr.Message())
	}
	// Output:
	// 3 expected exponent
}
